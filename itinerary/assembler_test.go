package itinerary

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/catalog"
)

func newTestAssembler() *Assembler {
	return NewAssembler(catalog.Default())
}

func TestAssembleDayCount(t *testing.T) {
	a := newTestAssembler()
	for _, dest := range append(catalog.Default().Cities(), "Reykjavik") {
		for n := 1; n <= MaxDays; n++ {
			it, err := a.Assemble(Request{Destination: dest, Duration: n, Budget: 1500, Currency: "usd", Companion: catalog.Solo})
			require.NoError(t, err)
			require.Len(t, it.Days, n, "%s/%d", dest, n)
			for i, d := range it.Days {
				assert.Equal(t, i+1, d.DayNumber)
			}
			assert.Equal(t, "USD", it.Currency)
		}
	}
}

func TestAssembleClampsDuration(t *testing.T) {
	it, err := newTestAssembler().Assemble(Request{Destination: "Tokyo", Duration: 30, Budget: 5000})
	require.NoError(t, err)
	assert.Equal(t, MaxDays, it.Duration)
	assert.Len(t, it.Days, MaxDays)
	assert.Equal(t, PerDay(5000, MaxDays), it.DailyBudget)
}

func TestAssembleRejectsInvalidDuration(t *testing.T) {
	_, err := newTestAssembler().Assemble(Request{Destination: "Paris", Duration: 0})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestAssembleRotatesCategories(t *testing.T) {
	it, err := newTestAssembler().Assemble(Request{Destination: "Goa", Duration: 6})
	require.NoError(t, err)

	// goa has no shopping table
	want := []catalog.Category{
		catalog.Historic, catalog.Cultural, catalog.Nature, catalog.Entertainment,
		catalog.Historic, catalog.Cultural,
	}
	for i, d := range it.Days {
		assert.Equal(t, want[i], d.Category, "day %d", d.DayNumber)
	}
}

func TestAssembleNoRepeatsBeforeExhaustion(t *testing.T) {
	cat := catalog.Default()
	a := NewAssembler(cat)

	for _, dest := range append(cat.Cities(), "Lima") {
		it, err := a.Assemble(Request{Destination: dest, Duration: MaxDays, Companion: catalog.Friends})
		require.NoError(t, err)
		city := cat.Resolve(dest)

		seen := map[catalog.Category]map[string]bool{}
		for _, d := range it.Days {
			if seen[d.Category] == nil {
				seen[d.Category] = map[string]bool{}
			}
			for _, p := range anchorsOf(d) {
				if seen[d.Category][p.Name] {
					require.Len(t, seen[d.Category], len(city.Places[d.Category]),
						"%s: %q repeated before %s was exhausted", dest, p.Name, d.Category)
					seen[d.Category] = map[string]bool{}
				}
				seen[d.Category][p.Name] = true
			}
		}
	}
}

func TestAssembleNoRepeatWithinADay(t *testing.T) {
	it, err := newTestAssembler().Assemble(Request{Destination: "Dubai", Duration: MaxDays})
	require.NoError(t, err)
	for _, d := range it.Days {
		names := map[string]bool{}
		for _, p := range anchorsOf(d) {
			assert.False(t, names[p.Name], "day %d repeats %s", d.DayNumber, p.Name)
			names[p.Name] = true
		}
	}
}

func TestNightlifeSchedule(t *testing.T) {
	tests := []struct {
		n    int
		days []int
	}{
		{1, []int{1}},
		{2, []int{2}},
		{3, []int{2}},
		{4, []int{2, 4}},
		{5, []int{2, 4}},
		{6, []int{2, 4, 6}},
		{9, []int{2, 4, 6, 8}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			it, err := newTestAssembler().Assemble(Request{Destination: "London", Duration: tt.n, Companion: catalog.Couple})
			require.NoError(t, err)

			var got []int
			for _, d := range it.Days {
				if d.Nightlife != nil {
					got = append(got, d.DayNumber)
				}
			}
			assert.Equal(t, tt.days, got)
		})
	}
}

func TestNightlifeRotatesByDay(t *testing.T) {
	it, err := newTestAssembler().Assemble(Request{Destination: "Paris", Duration: 8, Companion: catalog.Friends})
	require.NoError(t, err)

	options := catalog.Default().Resolve("paris").Nightlife[catalog.Friends]
	for _, d := range it.Days {
		if d.Nightlife == nil {
			continue
		}
		assert.Equal(t, options[(d.DayNumber-1)%len(options)], *d.Nightlife)
	}
}

func TestFamilyGetsLeisureEvening(t *testing.T) {
	it, err := newTestAssembler().Assemble(Request{Destination: "Paris", Duration: 3, Companion: catalog.Family})
	require.NoError(t, err)

	day2 := it.Days[1]
	assert.Nil(t, day2.Nightlife)
	assert.Contains(t, day2.NightlifeNote, "Evening at leisure")
	assert.Empty(t, it.Days[0].NightlifeNote)
}

func TestLunchAndDinnerRotation(t *testing.T) {
	it, err := newTestAssembler().Assemble(Request{Destination: "Paris", Duration: 5})
	require.NoError(t, err)

	paris := catalog.Default().Resolve("paris")
	for _, d := range it.Days {
		lunch := paris.Lunch[d.Category]
		assert.Equal(t, lunch[(d.DayNumber-1)%len(lunch)], d.Lunch)
		assert.Equal(t, paris.Dinner[(d.DayNumber-1)%len(paris.Dinner)], d.Dinner)
		assert.NotEqual(t, d.Lunch.Name, d.Dinner.Name)
	}
}

func TestThemes(t *testing.T) {
	assert.Equal(t, "Arrival & Historic Heart", theme(catalog.Historic, 1))
	assert.Equal(t, "Shop Like a Local", theme(catalog.Shopping, 3))
	assert.Equal(t, "Nature Exploration Day 4", theme(catalog.Nature, 4))
	assert.Equal(t, "Historic Exploration Day 11", theme(catalog.Historic, 11))
}

func TestGenericDestination(t *testing.T) {
	it, err := newTestAssembler().Assemble(Request{Destination: "lima", Duration: 2, Budget: 800})
	require.NoError(t, err)

	assert.True(t, it.Generic)
	assert.Equal(t, "Lima", it.CityName)
	assert.Equal(t, "Historic Site 1", it.Days[0].Morning.Name)
	assert.Equal(t, "in Lima", it.Days[0].Morning.Location)
	assert.Equal(t, "Cultural Site 1", it.Days[1].Morning.Name)
}

func TestParisFriendsEndToEnd(t *testing.T) {
	it, err := newTestAssembler().Assemble(Request{
		Destination: "Paris",
		Duration:    3,
		Budget:      1000,
		Currency:    "USD",
		Companion:   catalog.Friends,
	})
	require.NoError(t, err)

	text := RenderText(it)
	assert.Equal(t, 3, strings.Count(text, "\nDAY "))
	assert.Contains(t, text, "DAY 1: ")
	assert.Contains(t, text, "DAY 3: ")
	assert.Contains(t, text, "Total: 1000 USD")

	require.NotNil(t, it.Days[1].Nightlife)
	assert.Equal(t, "Le Mary Celeste", it.Days[1].Nightlife.Venue)

	day2 := text[strings.Index(text, "DAY 2:"):strings.Index(text, "DAY 3:")]
	assert.Contains(t, day2, "Le Mary Celeste")
}

func TestAssembleConcurrentCalls(t *testing.T) {
	a := newTestAssembler()
	want, err := a.Assemble(Request{Destination: "Jaipur", Duration: 10, Budget: 40000, Currency: "INR"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := a.Assemble(Request{Destination: "Jaipur", Duration: 10, Budget: 40000, Currency: "INR"})
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func anchorsOf(d DayPlan) []catalog.Place {
	out := []catalog.Place{d.Morning}
	if d.Afternoon != nil {
		out = append(out, *d.Afternoon)
	}
	if d.Evening != nil {
		out = append(out, *d.Evening)
	}
	return out
}
