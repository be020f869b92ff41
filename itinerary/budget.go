package itinerary

import "math"

// Weights are the fixed budget split, in whole percent.
type Weights struct {
	Accommodation int `json:"accommodation"`
	Food          int `json:"food"`
	Activities    int `json:"activities"`
	Transport     int `json:"transport"`
}

// Sum is always 100 for DefaultWeights.
func (w Weights) Sum() int {
	return w.Accommodation + w.Food + w.Activities + w.Transport
}

var DefaultWeights = Weights{Accommodation: 40, Food: 30, Activities: 20, Transport: 10}

// Allocation is an amount of money split across the four spending buckets.
type Allocation struct {
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
}

func (a Allocation) Total() float64 {
	return a.Accommodation + a.Food + a.Activities + a.Transport
}

// Allocate splits a trip total by DefaultWeights.
func Allocate(total float64) Allocation {
	w := DefaultWeights
	return Allocation{
		Accommodation: total * float64(w.Accommodation) / 100,
		Food:          total * float64(w.Food) / 100,
		Activities:    total * float64(w.Activities) / 100,
		Transport:     total * float64(w.Transport) / 100,
	}
}

// PerDay divides each bucket of the trip split by days and rounds to the nearest
// whole unit. The rounded values are not reconciled against the trip total, so
// days × PerDay may drift from Allocate by up to a few units per bucket.
func PerDay(total float64, days int) Allocation {
	if days <= 0 {
		return Allocation{}
	}
	trip := Allocate(total)
	d := float64(days)
	return Allocation{
		Accommodation: math.Round(trip.Accommodation / d),
		Food:          math.Round(trip.Food / d),
		Activities:    math.Round(trip.Activities / d),
		Transport:     math.Round(trip.Transport / d),
	}
}
