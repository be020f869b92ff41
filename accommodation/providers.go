package accommodation

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Provider is an affiliate booking platform.
type Provider struct {
	Name          string  `json:"name"`
	CommissionPct float64 `json:"commissionPercent"`
	BaseURL       string  `json:"baseUrl"`
}

const (
	BookingCom = "Booking.com"
	Expedia    = "Expedia"
	HotelsCom  = "Hotels.com"
	Agoda      = "Agoda"
	Trivago    = "Trivago"
	GoIbibo    = "GoIbibo"
	MakeMyTrip = "MakeMyTrip"
)

var providers = []Provider{
	{Name: BookingCom, CommissionPct: 4, BaseURL: "https://www.booking.com/searchresults.html"},
	{Name: Expedia, CommissionPct: 6, BaseURL: "https://www.expedia.com/Hotel-Search"},
	{Name: HotelsCom, CommissionPct: 5, BaseURL: "https://www.hotels.com/search.do"},
	{Name: Agoda, CommissionPct: 7, BaseURL: "https://www.agoda.com/search"},
	{Name: Trivago, CommissionPct: 3, BaseURL: "https://www.trivago.com/en-US/srl"},
	{Name: GoIbibo, CommissionPct: 8, BaseURL: "https://www.goibibo.com/hotels/find-hotels-in"},
	{Name: MakeMyTrip, CommissionPct: 8, BaseURL: "https://www.makemytrip.com/hotels/hotel-listing/"},
}

// Providers returns a copy of the provider table in display order.
func Providers() []Provider {
	return append([]Provider(nil), providers...)
}

// LookupProvider finds a provider by name, ignoring case.
func LookupProvider(name string) (Provider, bool) {
	name = strings.TrimSpace(name)
	for _, p := range providers {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Provider{}, false
}

// DefaultAffiliateIDs are used for any provider without a configured id.
var DefaultAffiliateIDs = map[string]string{
	BookingCom: "wayfarer-bkg",
	Expedia:    "wayfarer-exp",
	HotelsCom:  "wayfarer-htl",
	Agoda:      "wayfarer-agd",
	Trivago:    "wayfarer-trv",
	GoIbibo:    "wayfarer-gib",
	MakeMyTrip: "wayfarer-mmt",
}

// Linker builds affiliate booking URLs.
type Linker struct {
	ids map[string]string
}

// NewLinker overlays ids on DefaultAffiliateIDs. Empty values are ignored.
func NewLinker(ids map[string]string) *Linker {
	merged := make(map[string]string, len(DefaultAffiliateIDs))
	for k, v := range DefaultAffiliateIDs {
		merged[k] = v
	}
	for k, v := range ids {
		if p, ok := LookupProvider(k); ok && v != "" {
			merged[p.Name] = v
		}
	}
	return &Linker{ids: merged}
}

// GenerateAffiliateURL uses the default affiliate ids.
func GenerateAffiliateURL(provider, destination string, checkIn, checkOut time.Time, guests int, hotelName string) string {
	return defaultLinker.URL(provider, destination, checkIn, checkOut, guests, hotelName)
}

var defaultLinker = NewLinker(nil)

// URL returns the provider-specific search link, or "#" for an unknown provider.
func (l *Linker) URL(provider, destination string, checkIn, checkOut time.Time, guests int, hotelName string) string {
	p, ok := LookupProvider(provider)
	if !ok {
		return "#"
	}
	if guests < 1 {
		guests = 1
	}
	id := l.ids[p.Name]
	query := strings.TrimSpace(strings.TrimSpace(hotelName) + " " + strings.TrimSpace(destination))
	adults := strconv.Itoa(guests)
	in, out := checkIn.Format(time.DateOnly), checkOut.Format(time.DateOnly)

	v := url.Values{}
	base := p.BaseURL
	switch p.Name {
	case BookingCom:
		v.Set("ss", query)
		v.Set("checkin", in)
		v.Set("checkout", out)
		v.Set("group_adults", adults)
		v.Set("aid", id)
	case Expedia:
		v.Set("destination", query)
		v.Set("startDate", in)
		v.Set("endDate", out)
		v.Set("adults", adults)
		v.Set("affcid", id)
	case HotelsCom:
		v.Set("q-destination", query)
		v.Set("q-check-in", in)
		v.Set("q-check-out", out)
		v.Set("q-rooms", "1")
		v.Set("q-room-0-adults", adults)
		v.Set("rffrid", id)
	case Agoda:
		v.Set("textToSearch", query)
		v.Set("checkIn", in)
		v.Set("checkOut", out)
		v.Set("adults", adults)
		v.Set("cid", id)
	case Trivago:
		v.Set("query", query)
		v.Set("arrival", in)
		v.Set("departure", out)
		v.Set("adults", adults)
		v.Set("partner", id)
	case GoIbibo:
		base += "-" + slug(destination) + "/"
		v.Set("ci", in)
		v.Set("co", out)
		v.Set("adults", adults)
		v.Set("q", query)
		v.Set("utm_source", id)
	case MakeMyTrip:
		v.Set("city", strings.TrimSpace(destination))
		v.Set("searchText", query)
		v.Set("checkin", checkIn.Format("01022006"))
		v.Set("checkout", checkOut.Format("01022006"))
		v.Set("roomStayQualifier", adults+"e0e")
		v.Set("affiliate", id)
	}
	return base + "?" + v.Encode()
}

func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// ─── Revenue ──────────────────────────────────────────────────────────────────

type Revenue struct {
	BaseCommission  float64 `json:"baseCommission"`
	VolumeBonus     float64 `json:"volumeBonus"`
	TotalCommission float64 `json:"totalCommission"`
	Revenue         float64 `json:"revenue"`
}

var volumeTiers = []struct {
	minBookings int
	bonus       float64
}{
	{1000, 2.0},
	{500, 1.5},
	{100, 1.0},
	{50, 0.5},
}

// VolumeBonus is the extra commission, in percentage points, earned at a monthly
// booking volume.
func VolumeBonus(monthlyVolume int) float64 {
	for _, t := range volumeTiers {
		if monthlyVolume >= t.minBookings {
			return t.bonus
		}
	}
	return 0
}

// CalculateRevenue projects what one booking earns. Unknown providers earn nothing.
func CalculateRevenue(bookingValue float64, provider string, monthlyVolume int) Revenue {
	p, ok := LookupProvider(provider)
	if !ok {
		return Revenue{}
	}
	bonus := VolumeBonus(monthlyVolume)
	total := p.CommissionPct + bonus
	return Revenue{
		BaseCommission:  p.CommissionPct,
		VolumeBonus:     bonus,
		TotalCommission: total,
		Revenue:         roundCents(bookingValue * total / 100),
	}
}
