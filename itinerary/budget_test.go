package itinerary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWeightsSumTo100(t *testing.T) {
	assert.Equal(t, 100, DefaultWeights.Sum())
}

func TestAllocate(t *testing.T) {
	a := Allocate(1000)
	assert.Equal(t, Allocation{Accommodation: 400, Food: 300, Activities: 200, Transport: 100}, a)

	for _, total := range []float64{0, 1, 99.99, 1234.5, 75000} {
		assert.InDelta(t, total, Allocate(total).Total(), 1e-9)
	}
}

func TestPerDayRoundsWithoutReconciling(t *testing.T) {
	// 1000 over 3 days: 133.33, 100, 66.67, 33.33
	got := PerDay(1000, 3)
	assert.Equal(t, Allocation{Accommodation: 133, Food: 100, Activities: 67, Transport: 33}, got)
	assert.NotEqual(t, 1000.0, got.Total()*3)
}

func TestPerDayDriftIsBounded(t *testing.T) {
	for days := 1; days <= MaxDays; days++ {
		for _, total := range []float64{100, 777, 1000, 2500.5, 9999} {
			trip := Allocate(total)
			day := PerDay(total, days)
			d := float64(days)
			assert.LessOrEqual(t, math.Abs(day.Accommodation*d-trip.Accommodation), d)
			assert.LessOrEqual(t, math.Abs(day.Food*d-trip.Food), d)
			assert.LessOrEqual(t, math.Abs(day.Activities*d-trip.Activities), d)
			assert.LessOrEqual(t, math.Abs(day.Transport*d-trip.Transport), d)
		}
	}
}

func TestPerDayNonPositiveDays(t *testing.T) {
	assert.Equal(t, Allocation{}, PerDay(1000, 0))
	assert.Equal(t, Allocation{}, PerDay(1000, -2))
}
