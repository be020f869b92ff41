package catalog

import (
	"sort"
	"strings"
)

// ─── Types ────────────────────────────────────────────────────────────────────

// NoCoordinates marks a place whose position is not known.
const NoCoordinates = "N/A"

// minPartialKey is the shortest input allowed to match as a fragment of a city key.
const minPartialKey = 4

type Category string

const (
	Historic      Category = "historic"
	Cultural      Category = "cultural"
	Shopping      Category = "shopping"
	Nature        Category = "nature"
	Entertainment Category = "entertainment"
)

// Categories is the fixed rotation order used by the day-plan assembler.
var Categories = []Category{Historic, Cultural, Shopping, Nature, Entertainment}

type Companion string

const (
	Family  Companion = "family"
	Friends Companion = "friends"
	Solo    Companion = "solo"
	Couple  Companion = "couple"
)

// ParseCompanion normalizes a free-text companion type. Anything unrecognized is
// treated as a solo traveller.
func ParseCompanion(s string) Companion {
	switch Companion(strings.ToLower(strings.TrimSpace(s))) {
	case Family:
		return Family
	case Friends:
		return Friends
	case Couple:
		return Couple
	default:
		return Solo
	}
}

type Place struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Coordinates string `json:"coordinates"`
	Description string `json:"description"`
}

type Restaurant struct {
	Name       string `json:"name"`
	Location   string `json:"location"`
	Cuisine    string `json:"cuisine"`
	Speciality string `json:"speciality"`
	MapLink    string `json:"mapLink"`
}

type NightlifeOption struct {
	Label string `json:"label"`
	Venue string `json:"venue"`
	Area  string `json:"area"`
}

// City is the catalog value for one destination.
type City struct {
	Key       string                          `json:"key"`
	Name      string                          `json:"name"`
	Generic   bool                            `json:"generic"`
	Places    map[Category][]Place            `json:"places"`
	Lunch     map[Category][]Restaurant       `json:"-"`
	Dinner    []Restaurant                    `json:"-"`
	Nightlife map[Companion][]NightlifeOption `json:"-"`
}

// Categories returns the categories this city has places for, in rotation order.
func (c *City) Categories() []Category {
	out := make([]Category, 0, len(Categories))
	for _, cat := range Categories {
		if len(c.Places[cat]) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

// Filter narrows the city's places by a requirement string. An empty requirement
// returns every category; a category name returns that category; anything else is
// matched as a keyword against name, location and description.
func (c *City) Filter(requirement string) map[Category][]Place {
	req := normalize(requirement)
	out := make(map[Category][]Place)

	if req == "" {
		for cat, places := range c.Places {
			out[cat] = append([]Place(nil), places...)
		}
		return out
	}

	for _, cat := range Categories {
		if string(cat) == req {
			if places := c.Places[cat]; len(places) > 0 {
				out[cat] = append([]Place(nil), places...)
			}
			return out
		}
	}

	for cat, places := range c.Places {
		for _, p := range places {
			haystack := strings.ToLower(p.Name + " " + p.Location + " " + p.Description)
			if strings.Contains(haystack, req) {
				out[cat] = append(out[cat], p)
			}
		}
	}
	return out
}

// ─── Catalog ──────────────────────────────────────────────────────────────────

// Catalog is a read-only table of cities keyed by normalized name. It is built once
// at startup and safe for concurrent readers.
type Catalog struct {
	cities map[string]*City
}

// New builds a catalog from the given cities. Keys are normalized.
func New(cities ...*City) *Catalog {
	c := &Catalog{cities: make(map[string]*City, len(cities))}
	for _, city := range cities {
		c.cities[normalize(city.Key)] = city
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(builtinCities()...)
}

// Cities lists the catalog keys in sorted order.
func (c *Catalog) Cities() []string {
	keys := make([]string, 0, len(c.cities))
	for k := range c.cities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve maps a free-text destination to a catalog entry. Exact key matches win,
// then substring matches in either direction ("Paris, France" → paris), and
// finally a generic city synthesized from the destination name. It never fails.
func (c *Catalog) Resolve(destination string) *City {
	key := normalize(destination)
	if key == "" {
		return Generic(destination)
	}
	if city, ok := c.cities[key]; ok {
		return city
	}

	// longest key first so "new york" beats any shorter overlapping key
	keys := c.Cities()
	sort.SliceStable(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	for _, k := range keys {
		if strings.Contains(key, k) || (len(key) >= minPartialKey && strings.Contains(k, key)) {
			return c.cities[k]
		}
	}
	return Generic(destination)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
