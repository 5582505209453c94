// Package regional converts effort hours to currency across the fixed set
// of regional rate profiles. Pure table lookup and multiplication.
package regional

import (
	"github.com/shopspring/decimal"

	"devcost/core/tables"
	"devcost/internal/errors"
)

// RegionCost is one region's cost view of an hours figure, rounded to
// whole currency units.
type RegionCost struct {
	// Currency is the ISO currency code.
	Currency string `json:"currency"`

	// Symbol is the display symbol.
	Symbol string `json:"symbol"`

	// Min is hours × junior rate.
	Min decimal.Decimal `json:"min"`

	// Typical is hours × middle rate.
	Typical decimal.Decimal `json:"typical"`

	// Max is hours × senior rate.
	Max decimal.Decimal `json:"max"`
}

// AllRegionsResult maps every region to its cost view.
type AllRegionsResult struct {
	// Hours echoes the input.
	Hours float64 `json:"hours"`

	// Regions is keyed by region id.
	Regions map[string]RegionCost `json:"regions"`
}

// Converter computes regional costs from the rate tables.
type Converter struct{}

// NewConverter creates a regional cost converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ForRegion converts hours at one region's rates. Unknown regions use the
// default profile.
func (c *Converter) ForRegion(region string, hours float64) (RegionCost, error) {
	if hours < 0 {
		return RegionCost{}, errors.Inputf("hours must be non-negative, got %g", hours)
	}
	return regionCost(tables.RatesFor(region), hours), nil
}

// AllRegions converts hours at every region's rates.
func (c *Converter) AllRegions(hours float64) (*AllRegionsResult, error) {
	if hours < 0 {
		return nil, errors.Inputf("hours must be non-negative, got %g", hours)
	}
	out := &AllRegionsResult{
		Hours:   hours,
		Regions: make(map[string]RegionCost, len(tables.RegionIDs())),
	}
	for _, profile := range tables.AllRegionalRates() {
		out.Regions[profile.Region] = regionCost(profile, hours)
	}
	return out, nil
}

func regionCost(profile tables.RegionalRates, hours float64) RegionCost {
	h := decimal.NewFromFloat(hours)
	at := func(rate float64) decimal.Decimal {
		return h.Mul(decimal.NewFromFloat(rate)).Round(0)
	}
	return RegionCost{
		Currency: profile.Currency,
		Symbol:   profile.Symbol,
		Min:      at(profile.Rates.Junior),
		Typical:  at(profile.Rates.Middle),
		Max:      at(profile.Rates.Senior),
	}
}
