package accommodation

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Available = "Available"
	Limited   = "Limited"
)

const day = 24 * time.Hour

// ─── Types ────────────────────────────────────────────────────────────────────

type Request struct {
	Destination  string
	CheckIn      time.Time
	CheckOut     time.Time
	Guests       int
	Currency     string
	TripDuration int
}

type ProviderOffer struct {
	Provider          string  `json:"provider"`
	Price             float64 `json:"price"`
	CommissionPercent float64 `json:"commissionPercent"`
	CommissionAmount  float64 `json:"commissionAmount"`
	BookingURL        string  `json:"bookingUrl"`
	Availability      string  `json:"availability"`
}

type Listing struct {
	ID            string          `json:"id"`
	Category      Tier            `json:"category"`
	Name          string          `json:"name"`
	Amenities     []string        `json:"amenities"`
	PricePerNight float64         `json:"pricePerNight"`
	TotalPrice    float64         `json:"totalPrice"`
	Nights        int             `json:"nights"`
	Rating        float64         `json:"rating"`
	Currency      string          `json:"currency"`
	Providers     []ProviderOffer `json:"providers"`
}

type CommissionSummary struct {
	TotalOffers       int     `json:"totalOffers"`
	TotalCommission   float64 `json:"totalCommission"`
	AverageCommission float64 `json:"averageCommission"`
	TopProvider       string  `json:"topProvider"`
	Currency          string  `json:"currency"`
}

// DateRangeError reports stay dates the simulator refuses to price. Exactly one
// of MinCheckOut and SuggestedCheckOut is set.
type DateRangeError struct {
	Message           string
	Nights            int
	MinCheckOut       time.Time
	SuggestedCheckOut time.Time
}

func (e *DateRangeError) Error() string { return e.Message }

// RandomSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// ─── Simulator ────────────────────────────────────────────────────────────────

// Simulator generates synthetic hotel listings. Prices are jittered on every call,
// so two identical requests will usually return different numbers.
type Simulator struct {
	rnd    RandomSource
	linker *Linker
}

type Option func(*Simulator)

// WithRandom replaces the random source. The source must be safe for the
// simulator's callers; a *rand.Rand is only safe from one goroutine.
func WithRandom(r RandomSource) Option {
	return func(s *Simulator) { s.rnd = r }
}

func WithLinker(l *Linker) Option {
	return func(s *Simulator) { s.linker = l }
}

func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{rnd: globalRand{}, linker: defaultLinker}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Nights counts started days between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(float64(checkOut.Sub(checkIn)) / float64(day)))
}

// Validate checks the stay against the trip length. A TripDuration of zero or
// less disables the upper bound.
func Validate(req Request) (int, error) {
	nights := Nights(req.CheckIn, req.CheckOut)
	if nights < 1 {
		return nights, &DateRangeError{
			Message:     "Check-out date must be after check-in date",
			Nights:      nights,
			MinCheckOut: req.CheckIn.Add(day),
		}
	}
	if req.TripDuration > 0 && nights > req.TripDuration {
		return nights, &DateRangeError{
			Message: fmt.Sprintf("Your stay of %d nights exceeds your trip duration of %d days", nights,
				req.TripDuration),
			Nights:            nights,
			SuggestedCheckOut: req.CheckIn.AddDate(0, 0, req.TripDuration),
		}
	}
	return nights, nil
}

// Simulate validates the stay and returns listings sorted by total price.
func (s *Simulator) Simulate(req Request) ([]Listing, error) {
	nights, err := Validate(req)
	if err != nil {
		return nil, err
	}

	currency := normalizeCurrency(req.Currency)
	base := BasePrice(req.Destination, currency)
	destination := strings.TrimSpace(req.Destination)

	var listings []Listing
	for _, spec := range tiers {
		for _, name := range propertyNames(destination, spec.tier) {
			nightly := math.Round(base * s.between(spec.minFactor, spec.maxFactor))
			total := nightly * float64(nights)

			l := Listing{
				ID:            uuid.NewString(),
				Category:      spec.tier,
				Name:          name,
				Amenities:     append([]string(nil), spec.amenities...),
				PricePerNight: nightly,
				TotalPrice:    total,
				Nights:        nights,
				Rating:        math.Round(s.between(spec.minRating, spec.maxRating)*10) / 10,
				Currency:      currency,
				Providers:     make([]ProviderOffer, 0, len(providers)),
			}
			for _, p := range providers {
				l.Providers = append(l.Providers, s.offer(p, spec, l, req, destination))
			}
			listings = append(listings, l)
		}
	}

	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].TotalPrice < listings[j].TotalPrice
	})
	return listings, nil
}

func (s *Simulator) offer(p Provider, spec tierSpec, l Listing, req Request, destination string) ProviderOffer {
	jitter := s.between(0.05, 0.10)
	if s.rnd.Float64() < 0.5 {
		jitter = -jitter
	}
	price := math.Round(l.TotalPrice * (1 + jitter))

	availability := Limited
	if s.rnd.Float64() < spec.availability {
		availability = Available
	}

	return ProviderOffer{
		Provider:          p.Name,
		Price:             price,
		CommissionPercent: p.CommissionPct,
		CommissionAmount:  roundCents(price * p.CommissionPct / 100),
		BookingURL:        s.linker.URL(p.Name, destination, req.CheckIn, req.CheckOut, req.Guests, l.Name),
		Availability:      availability,
	}
}

func (s *Simulator) between(lo, hi float64) float64 {
	return lo + s.rnd.Float64()*(hi-lo)
}

// Summarize totals the commission on offer across all listings.
func Summarize(listings []Listing) CommissionSummary {
	sum := CommissionSummary{Currency: "USD"}
	if len(listings) > 0 {
		sum.Currency = listings[0].Currency
	}

	byProvider := make(map[string]float64, len(providers))
	for _, l := range listings {
		for _, o := range l.Providers {
			sum.TotalOffers++
			sum.TotalCommission += o.CommissionAmount
			byProvider[o.Provider] += o.CommissionAmount
		}
	}
	if sum.TotalOffers > 0 {
		sum.AverageCommission = roundCents(sum.TotalCommission / float64(sum.TotalOffers))
	}
	sum.TotalCommission = roundCents(sum.TotalCommission)

	best := 0.0
	for _, p := range providers {
		if c := byProvider[p.Name]; c > best {
			best = c
			sum.TopProvider = p.Name
		}
	}
	return sum
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
