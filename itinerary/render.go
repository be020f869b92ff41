package itinerary

import (
	"fmt"
	"math"
	"strings"

	"wayfarer/catalog"
)

// RenderText flattens an itinerary into the plain-text document used by the
// email and PDF paths.
func RenderText(it Itinerary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🌍 %d-DAY TRIP TO %s\n", it.Duration, strings.ToUpper(it.CityName))
	fmt.Fprintf(&b, "Travelling: %s | Budget: %s %s\n", it.Companion, Amount(it.Budget), it.Currency)
	if it.Generic {
		b.WriteString("Note: we don't have a curated guide for this destination yet, so sites are suggestions.\n")
	}
	b.WriteString("\n")

	w := DefaultWeights
	b.WriteString("💰 TRIP BUDGET BREAKDOWN\n")
	fmt.Fprintf(&b, "Accommodation (%d%%): %s %s\n", w.Accommodation, Amount(it.TripBudget.Accommodation), it.Currency)
	fmt.Fprintf(&b, "Food (%d%%): %s %s\n", w.Food, Amount(it.TripBudget.Food), it.Currency)
	fmt.Fprintf(&b, "Activities (%d%%): %s %s\n", w.Activities, Amount(it.TripBudget.Activities), it.Currency)
	fmt.Fprintf(&b, "Transport (%d%%): %s %s\n", w.Transport, Amount(it.TripBudget.Transport), it.Currency)
	fmt.Fprintf(&b, "Total: %s %s\n", Amount(it.Budget), it.Currency)

	for _, d := range it.Days {
		b.WriteString("\n")
		renderDay(&b, d, it.Currency)
	}
	return b.String()
}

func renderDay(b *strings.Builder, d DayPlan, currency string) {
	fmt.Fprintf(b, "DAY %d: %s\n", d.DayNumber, d.Theme)
	writePlace(b, "🌅 MORNING", d.Morning)
	writeRestaurant(b, "🍽️ LUNCH", d.Lunch)
	if d.Afternoon != nil {
		writePlace(b, "☀️ AFTERNOON", *d.Afternoon)
	}
	if d.Evening != nil {
		writePlace(b, "🌆 EVENING", *d.Evening)
	}
	switch {
	case d.Nightlife != nil:
		fmt.Fprintf(b, "🌙 NIGHTLIFE: %s at %s, %s\n", d.Nightlife.Label, d.Nightlife.Venue, d.Nightlife.Area)
	case d.NightlifeNote != "":
		fmt.Fprintf(b, "🌙 NIGHTLIFE: %s\n", d.NightlifeNote)
	}
	writeRestaurant(b, "🍷 DINNER", d.Dinner)
	fmt.Fprintf(b, "🚕 TRANSPORT: %s; %s; %s\n", d.Transport.ToMorning, d.Transport.BetweenSites, d.Transport.ToDinner)
	fmt.Fprintf(b, "   Tip: %s\n", d.Transport.Tip)
	fmt.Fprintf(b, "💵 DAILY BUDGET: Accommodation %s | Food %s | Activities %s | Transport %s (%s)\n",
		Amount(d.Budget.Accommodation), Amount(d.Budget.Food), Amount(d.Budget.Activities),
		Amount(d.Budget.Transport), currency)
}

func writePlace(b *strings.Builder, label string, p catalog.Place) {
	fmt.Fprintf(b, "%s: %s (%s)\n", label, p.Name, p.Location)
	if p.Description != "" {
		fmt.Fprintf(b, "   %s\n", p.Description)
	}
	if p.Coordinates != "" && p.Coordinates != catalog.NoCoordinates {
		fmt.Fprintf(b, "   📍 %s\n", p.Coordinates)
	}
}

func writeRestaurant(b *strings.Builder, label string, r catalog.Restaurant) {
	fmt.Fprintf(b, "%s: %s, %s (%s: %s)\n", label, r.Name, r.Location, r.Cuisine, r.Speciality)
	if r.MapLink != "" {
		fmt.Fprintf(b, "   🗺️ %s\n", r.MapLink)
	}
}

// Amount formats money without a trailing ".00" for whole values.
func Amount(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// Prompt builds the text-generation prompt for an itinerary request.
func Prompt(req Request) string {
	days := req.Duration
	if days > MaxDays {
		days = MaxDays
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}

	return fmt.Sprintf(`[INST] You are an experienced travel planner. Create a %d-day itinerary for %s.
Travellers: %s. Total budget: %s %s (40%% accommodation, 30%% food, 20%% activities, 10%% transport).

For every day write a heading "Day N: <theme>" followed by morning, lunch, afternoon, dinner and transport suggestions with real place names. Keep each day under 120 words. [/INST]`,
		days, strings.TrimSpace(req.Destination), req.Companion, Amount(req.Budget), currency)
}
