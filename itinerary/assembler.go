package itinerary

import (
	"errors"
	"fmt"
	"strings"

	"wayfarer/catalog"
)

// MaxDays caps the number of day blocks in one itinerary.
const MaxDays = 14

const anchorsPerDay = 3

var ErrInvalidDuration = errors.New("duration must be at least 1 day")

// ─── Types ────────────────────────────────────────────────────────────────────

type Request struct {
	Destination string
	Duration    int
	Budget      float64
	Currency    string
	Companion   catalog.Companion
}

type Transport struct {
	ToMorning    string `json:"toMorning"`
	BetweenSites string `json:"betweenSites"`
	ToDinner     string `json:"toDinner"`
	Tip          string `json:"tip"`
}

// DayPlan is one assembled day block.
type DayPlan struct {
	DayNumber     int                      `json:"dayNumber"`
	Theme         string                   `json:"theme"`
	Category      catalog.Category         `json:"category"`
	Morning       catalog.Place            `json:"morning"`
	Afternoon     *catalog.Place           `json:"afternoon,omitempty"`
	Evening       *catalog.Place           `json:"evening,omitempty"`
	Lunch         catalog.Restaurant       `json:"lunch"`
	Dinner        catalog.Restaurant       `json:"dinner"`
	Nightlife     *catalog.NightlifeOption `json:"nightlife,omitempty"`
	NightlifeNote string                   `json:"nightlifeNote,omitempty"`
	Transport     Transport                `json:"transport"`
	Budget        Allocation               `json:"budget"`
}

type Itinerary struct {
	Destination string            `json:"destination"`
	CityName    string            `json:"cityName"`
	Generic     bool              `json:"generic"`
	Duration    int               `json:"duration"`
	Budget      float64           `json:"budget"`
	Currency    string            `json:"currency"`
	Companion   catalog.Companion `json:"companion"`
	TripBudget  Allocation        `json:"tripBudget"`
	DailyBudget Allocation        `json:"dailyBudget"`
	Days        []DayPlan         `json:"days"`
}

// ─── Assembler ────────────────────────────────────────────────────────────────

// Assembler builds itineraries from a read-only catalog. It holds no per-request
// state and may be shared between goroutines.
type Assembler struct {
	catalog *catalog.Catalog
}

func NewAssembler(c *catalog.Catalog) *Assembler {
	return &Assembler{catalog: c}
}

// Assemble produces the day-by-day plan for req. Durations above MaxDays are
// clamped; unknown destinations fall back to a generic catalog entry.
func (a *Assembler) Assemble(req Request) (Itinerary, error) {
	if req.Duration < 1 {
		return Itinerary{}, ErrInvalidDuration
	}
	days := req.Duration
	if days > MaxDays {
		days = MaxDays
	}

	city := a.catalog.Resolve(req.Destination)
	categories := city.Categories()
	if len(categories) == 0 {
		// a table entry without places still gets a plan
		city = catalog.Generic(req.Destination)
		categories = city.Categories()
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}

	it := Itinerary{
		Destination: req.Destination,
		CityName:    city.Name,
		Generic:     city.Generic,
		Duration:    days,
		Budget:      req.Budget,
		Currency:    currency,
		Companion:   req.Companion,
		TripBudget:  Allocate(req.Budget),
		DailyBudget: PerDay(req.Budget, days),
		Days:        make([]DayPlan, 0, days),
	}

	used := make(map[catalog.Category]map[string]bool, len(categories))
	categoryIndex := 0

	for day := 1; day <= days; day++ {
		cat := categories[categoryIndex%len(categories)]
		anchors := pickAnchors(city.Places[cat], used, cat)

		plan := DayPlan{
			DayNumber: day,
			Theme:     theme(cat, day),
			Category:  cat,
			Morning:   anchors[0],
			Lunch:     rotate(city.Lunch[cat], day, catalog.GenericRestaurant(city.Name, "lunch")),
			Dinner:    rotate(city.Dinner, day, catalog.GenericRestaurant(city.Name, "dinner")),
			Transport: defaultTransport,
			Budget:    it.DailyBudget,
		}
		if len(anchors) > 1 {
			plan.Afternoon = &anchors[1]
		}
		if len(anchors) > 2 {
			plan.Evening = &anchors[2]
		}

		if nightlifeScheduled(day, days) {
			options := city.Nightlife[req.Companion]
			if len(options) > 0 {
				opt := options[(day-1)%len(options)]
				plan.Nightlife = &opt
			} else {
				plan.NightlifeNote = leisureNote(req.Companion)
			}
		}

		it.Days = append(it.Days, plan)

		categoryIndex++
		if categoryIndex >= len(categories) {
			categoryIndex = 0
		}
	}
	return it, nil
}

// pickAnchors returns up to anchorsPerDay unused places from one category and
// marks them used. When every place has been used the category starts over.
func pickAnchors(places []catalog.Place, used map[catalog.Category]map[string]bool, cat catalog.Category) []catalog.Place {
	seen := used[cat]
	if seen == nil {
		seen = make(map[string]bool)
		used[cat] = seen
	}

	available := unused(places, seen)
	if len(available) == 0 {
		clear(seen)
		available = places
	}

	if len(available) > anchorsPerDay {
		available = available[:anchorsPerDay]
	}
	out := make([]catalog.Place, len(available))
	copy(out, available)
	for _, p := range out {
		seen[p.Name] = true
	}
	return out
}

func unused(places []catalog.Place, seen map[string]bool) []catalog.Place {
	var out []catalog.Place
	for _, p := range places {
		if !seen[p.Name] {
			out = append(out, p)
		}
	}
	return out
}

func rotate(list []catalog.Restaurant, day int, fallback catalog.Restaurant) catalog.Restaurant {
	if len(list) == 0 {
		return fallback
	}
	return list[(day-1)%len(list)]
}

// nightlifeScheduled reports whether day (1-based) of an n-day trip carries a
// nightlife block.
func nightlifeScheduled(day, n int) bool {
	switch {
	case n <= 2:
		return day == n
	case n == 3:
		return day == 2
	case n <= 5:
		return day == 2 || day == 4
	default:
		return day%2 == 0
	}
}

func leisureNote(c catalog.Companion) string {
	if c == catalog.Family {
		return "Evening at leisure: an early dinner and a relaxed night in with the family."
	}
	return "Evening at leisure."
}

// ─── Static text ──────────────────────────────────────────────────────────────

var themes = map[catalog.Category][3]string{
	catalog.Historic: {
		"Arrival & Historic Heart",
		"Monuments & Old Quarters",
		"Layers of History",
	},
	catalog.Cultural: {
		"Museums & Local Culture",
		"Art, Galleries & Traditions",
		"Cultural Deep Dive",
	},
	catalog.Shopping: {
		"Markets & Souvenirs",
		"Boutiques & Bazaars",
		"Shop Like a Local",
	},
	catalog.Nature: {
		"Parks & Fresh Air",
		"Gardens & Scenic Views",
		"Into the Outdoors",
	},
	catalog.Entertainment: {
		"Landmarks & Fun",
		"Shows & Skylines",
		"Thrills & Entertainment",
	},
}

func theme(cat catalog.Category, day int) string {
	if day >= 1 && day <= 3 {
		if t, ok := themes[cat]; ok {
			return t[day-1]
		}
	}
	return fmt.Sprintf("%s Exploration Day %d", cat.Title(), day)
}

var defaultTransport = Transport{
	ToMorning:    "15-20 min by metro or taxi from your hotel",
	BetweenSites: "10-15 min on foot or a short ride between sites",
	ToDinner:     "20-30 min by taxi or ride-share to dinner",
	Tip:          "A day pass on local transport is usually cheaper than single tickets.",
}
