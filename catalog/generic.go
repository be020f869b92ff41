package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const genericSitesPerCategory = 4

// Title returns the display form of a category, e.g. "Historic".
func (c Category) Title() string {
	return cases.Title(language.English).String(string(c))
}

// Generic synthesizes a catalog entry for a destination that has no table of its
// own. Place names follow the "{Category} Site {n}" pattern.
func Generic(destination string) *City {
	name := strings.TrimSpace(destination)
	if name == "" {
		name = "Your Destination"
	}

	city := &City{
		Key:       normalize(name),
		Name:      cases.Title(language.English).String(name),
		Generic:   true,
		Places:    make(map[Category][]Place, len(Categories)),
		Lunch:     make(map[Category][]Restaurant, len(Categories)),
		Nightlife: make(map[Companion][]NightlifeOption, 3),
	}

	for _, cat := range Categories {
		for n := 1; n <= genericSitesPerCategory; n++ {
			city.Places[cat] = append(city.Places[cat], Place{
				Name:        fmt.Sprintf("%s Site %d", cat.Title(), n),
				Location:    "in " + city.Name,
				Coordinates: NoCoordinates,
				Description: fmt.Sprintf("A popular %s spot in %s.", cat, city.Name),
			})
		}
		city.Lunch[cat] = []Restaurant{GenericRestaurant(city.Name, "lunch")}
	}

	city.Dinner = []Restaurant{
		GenericRestaurant(city.Name, "dinner"),
		{
			Name:       "Chef's Table " + city.Name,
			Location:   "City Centre, " + city.Name,
			Cuisine:    "Regional tasting menu",
			Speciality: "Seasonal local produce",
			MapLink:    mapLink("Chef's Table " + city.Name),
		},
	}

	city.Nightlife[Friends] = []NightlifeOption{
		{Label: "🍻 Bar hopping", Venue: "Old Town bar strip", Area: "Old Town, " + city.Name},
		{Label: "🎶 Live music", Venue: "Local music hall", Area: "City Centre, " + city.Name},
	}
	city.Nightlife[Couple] = []NightlifeOption{
		{Label: "🍷 Wine bar", Venue: "Riverside wine bar", Area: "Waterfront, " + city.Name},
		{Label: "🌃 Evening stroll", Venue: "Lit-up promenade", Area: "Promenade, " + city.Name},
	}
	city.Nightlife[Solo] = []NightlifeOption{
		{Label: "☕ Late café", Venue: "Night owl café", Area: "City Centre, " + city.Name},
		{Label: "🌙 Night market", Venue: "Evening market", Area: "Market Square, " + city.Name},
	}
	return city
}

// GenericRestaurant is used whenever a city table has no pick for a meal.
func GenericRestaurant(cityName, meal string) Restaurant {
	name := "Local Bistro"
	if meal == "dinner" {
		name = "Traditional Kitchen"
	}
	return Restaurant{
		Name:       name,
		Location:   "City Centre, " + cityName,
		Cuisine:    "Local",
		Speciality: "Ask for the dish of the day",
		MapLink:    mapLink(name + " " + cityName),
	}
}

func mapLink(query string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(query)
}
