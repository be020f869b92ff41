package accommodation

import "strings"

type Tier string

const (
	TierBudget   Tier = "Budget"
	TierMidRange Tier = "Mid-Range"
	TierLuxury   Tier = "Luxury"
)

type tierSpec struct {
	tier         Tier
	minFactor    float64
	maxFactor    float64
	availability float64
	minRating    float64
	maxRating    float64
	amenities    []string
}

var tiers = []tierSpec{
	{
		tier: TierBudget, minFactor: 0.3, maxFactor: 0.5, availability: 0.90,
		minRating: 3.2, maxRating: 4.0,
		amenities: []string{"Free WiFi", "24h Reception", "Shared Lounge"},
	},
	{
		tier: TierMidRange, minFactor: 0.6, maxFactor: 1.0, availability: 0.93,
		minRating: 3.8, maxRating: 4.5,
		amenities: []string{"Free WiFi", "Breakfast Included", "Air Conditioning", "Fitness Centre"},
	},
	{
		tier: TierLuxury, minFactor: 2.0, maxFactor: 4.0, availability: 0.95,
		minRating: 4.5, maxRating: 5.0,
		amenities: []string{"Free WiFi", "Spa", "Pool", "Concierge", "Fine Dining", "Airport Transfer"},
	},
}

type cityPrice struct {
	city  string
	price float64
}

// basePrices are nightly reference rates by currency. Lookups match the city as
// a substring of the destination, so order matters for overlapping names.
var basePrices = map[string][]cityPrice{
	"USD": {{"new york", 250}, {"london", 200}, {"paris", 180}, {"dubai", 170}, {"tokyo", 160}, {"goa", 60}, {"jaipur", 50}},
	"EUR": {{"new york", 230}, {"london", 185}, {"paris", 165}, {"dubai", 155}, {"tokyo", 150}, {"goa", 55}, {"jaipur", 45}},
	"GBP": {{"new york", 200}, {"london", 160}, {"paris", 140}, {"dubai", 135}, {"tokyo", 125}, {"goa", 45}, {"jaipur", 40}},
	"INR": {{"new york", 21000}, {"london", 17000}, {"paris", 15000}, {"dubai", 14000}, {"tokyo", 13000}, {"goa", 5000}, {"jaipur", 4000}},
}

var defaultBasePrice = map[string]float64{
	"USD": 120,
	"EUR": 110,
	"GBP": 95,
	"INR": 8000,
}

// normalizeCurrency upper-cases a currency code, mapping anything without a
// price table to USD.
func normalizeCurrency(currency string) string {
	c := strings.ToUpper(strings.TrimSpace(currency))
	if _, ok := defaultBasePrice[c]; !ok {
		return "USD"
	}
	return c
}

// BasePrice returns the nightly reference rate for a destination.
func BasePrice(destination, currency string) float64 {
	c := normalizeCurrency(currency)
	dest := strings.ToLower(destination)
	for _, cp := range basePrices[c] {
		if strings.Contains(dest, cp.city) {
			return cp.price
		}
	}
	return defaultBasePrice[c]
}

var properties = map[string]map[Tier][]string{
	"paris": {
		TierBudget:   {"Generator Paris", "St Christopher's Inn Canal", "Hôtel du Nord", "Ibis Paris Montmartre"},
		TierMidRange: {"Hôtel Fabric", "Le Citizen Hotel", "Hôtel des Grands Boulevards", "Mercure Paris Centre Tour Eiffel"},
		TierLuxury:   {"Le Meurice", "Hôtel Plaza Athénée", "Shangri-La Paris", "Le Bristol"},
	},
	"london": {
		TierBudget:   {"Wombat's City Hostel", "Point A Hotel Kings Cross", "Premier Inn Southwark"},
		TierMidRange: {"The Hoxton Holborn", "citizenM Tower of London", "The Resident Covent Garden"},
		TierLuxury:   {"The Savoy", "Claridge's", "The Ritz London", "Shangri-La The Shard"},
	},
	"tokyo": {
		TierBudget:   {"Khaosan Tokyo Kabuki", "Nine Hours Shinjuku", "Sakura Hotel Jimbocho"},
		TierMidRange: {"Hotel Gracery Shinjuku", "Mitsui Garden Ginza", "Shibuya Stream Excel"},
		TierLuxury:   {"Aman Tokyo", "Park Hyatt Tokyo", "The Peninsula Tokyo"},
	},
	"new york": {
		TierBudget:   {"HI NYC Hostel", "Pod 51", "The Jane Hotel"},
		TierMidRange: {"citizenM Times Square", "Arlo SoHo", "The Hoxton Williamsburg"},
		TierLuxury:   {"The Plaza", "The Carlyle", "Aman New York", "The St. Regis New York"},
	},
	"dubai": {
		TierBudget:   {"Rove Downtown", "Ibis Al Rigga", "Premier Inn Dubai Silicon Oasis"},
		TierMidRange: {"Hyatt Place Al Rigga", "Novotel World Trade Centre", "Vida Dubai Marina"},
		TierLuxury:   {"Burj Al Arab", "Atlantis The Royal", "Armani Hotel Dubai", "One&Only The Palm"},
	},
	"goa": {
		TierBudget:   {"Zostel Goa", "The Hosteller Anjuna", "Jungle by Sturmfrei"},
		TierMidRange: {"Novotel Goa Candolim", "Lemon Tree Amarante", "Fairfield by Marriott Anjuna"},
		TierLuxury:   {"Taj Exotica", "W Goa", "The Leela Goa", "Grand Hyatt Goa"},
	},
	"jaipur": {
		TierBudget:   {"Zostel Jaipur", "Moustache Hostel", "Hotel Pearl Palace"},
		TierMidRange: {"Alsisar Haveli", "Shahpura House", "Lemon Tree Premier Jaipur"},
		TierLuxury:   {"Rambagh Palace", "The Oberoi Rajvilas", "Fairmont Jaipur", "ITC Rajputana"},
	},
}

// propertyOrder keeps multi-word keys ahead of shorter overlapping ones.
var propertyOrder = []string{"new york", "london", "paris", "dubai", "tokyo", "jaipur", "goa"}

const maxPropertiesPerTier = 6

func propertyNames(destination string, tier Tier) []string {
	dest := strings.ToLower(destination)
	for _, key := range propertyOrder {
		if strings.Contains(dest, key) {
			names := properties[key][tier]
			if len(names) > maxPropertiesPerTier {
				names = names[:maxPropertiesPerTier]
			}
			return names
		}
	}
	return genericProperties(destination, tier)
}

func genericProperties(destination string, tier Tier) []string {
	city := strings.TrimSpace(destination)
	if city == "" {
		city = "City"
	}
	switch tier {
	case TierBudget:
		return []string{city + " Backpackers", city + " Budget Inn", city + " Central Hostel"}
	case TierMidRange:
		return []string{city + " Comfort Suites", city + " Plaza Hotel", city + " Garden Hotel"}
	default:
		return []string{"Grand " + city + " Palace", city + " Royal Resort", "The " + city + " Ritz"}
	}
}
