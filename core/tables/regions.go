// Package tables - Regional rate profiles
package tables

// RateTiers holds hourly rates by seniority. Within a profile the rates are
// monotonic: Junior <= Middle <= Senior.
type RateTiers struct {
	// Junior is the junior hourly rate.
	Junior float64 `json:"junior"`

	// Middle is the typical (mid-level) hourly rate.
	Middle float64 `json:"middle"`

	// Senior is the senior hourly rate.
	Senior float64 `json:"senior"`
}

// RegionalRates is one labor market's currency and hourly rate profile.
type RegionalRates struct {
	// Region is the profile id.
	Region string `json:"region"`

	// Currency is the ISO currency code.
	Currency string `json:"currency"`

	// Symbol is the currency symbol used for display.
	Symbol string `json:"symbol"`

	// Rates holds the hourly rates by seniority.
	Rates RateTiers `json:"rates"`
}

// DefaultRegion is used when a caller names no region or an unknown one.
const DefaultRegion = "eu"

// regionOrder fixes iteration order for deterministic output.
var regionOrder = []string{"ua", "ua_compliance", "pl", "eu", "de", "uk", "us", "in"}

// regionalRates is the fixed set of 8 rate profiles.
var regionalRates = map[string]RegionalRates{
	"ua": {
		Region:   "ua",
		Currency: "USD",
		Symbol:   "$",
		Rates:    RateTiers{Junior: 15, Middle: 25, Senior: 40},
	},
	"ua_compliance": {
		Region:   "ua_compliance",
		Currency: "USD",
		Symbol:   "$",
		Rates:    RateTiers{Junior: 25, Middle: 40, Senior: 60},
	},
	"pl": {
		Region:   "pl",
		Currency: "PLN",
		Symbol:   "zł",
		Rates:    RateTiers{Junior: 100, Middle: 160, Senior: 250},
	},
	"eu": {
		Region:   "eu",
		Currency: "EUR",
		Symbol:   "€",
		Rates:    RateTiers{Junior: 35, Middle: 55, Senior: 85},
	},
	"de": {
		Region:   "de",
		Currency: "EUR",
		Symbol:   "€",
		Rates:    RateTiers{Junior: 55, Middle: 80, Senior: 120},
	},
	"uk": {
		Region:   "uk",
		Currency: "GBP",
		Symbol:   "£",
		Rates:    RateTiers{Junior: 45, Middle: 65, Senior: 100},
	},
	"us": {
		Region:   "us",
		Currency: "USD",
		Symbol:   "$",
		Rates:    RateTiers{Junior: 50, Middle: 75, Senior: 120},
	},
	"in": {
		Region:   "in",
		Currency: "INR",
		Symbol:   "₹",
		Rates:    RateTiers{Junior: 800, Middle: 1500, Senior: 2500},
	},
}

// RatesFor returns the rate profile for a region. Unknown regions fall back
// to the default profile.
func RatesFor(region string) RegionalRates {
	if r, ok := regionalRates[region]; ok {
		return r
	}
	return regionalRates[DefaultRegion]
}

// RegionIDs returns the region ids in stable order.
func RegionIDs() []string {
	out := make([]string, len(regionOrder))
	copy(out, regionOrder)
	return out
}

// AllRegionalRates returns every profile in stable order.
func AllRegionalRates() []RegionalRates {
	out := make([]RegionalRates, 0, len(regionOrder))
	for _, id := range regionOrder {
		out = append(out, regionalRates[id])
	}
	return out
}
