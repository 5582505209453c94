// Package roi computes return-on-investment figures: payback period,
// multi-year NPV and ROI percentages.
package roi

import (
	"math"

	"github.com/shopspring/decimal"

	"devcost/core/tables"
	"devcost/internal/errors"
)

// PaybackNever is the sentinel for investments that never pay back
// (net annual benefit is zero or negative).
const PaybackNever = "never"

// Input parameterizes an ROI calculation. The four savings/gain terms
// default to zero; maintenance percent defaults to 20.
type Input struct {
	// InvestmentCost is the up-front cost being evaluated.
	InvestmentCost float64

	// AnnualSupportSavings is yearly support cost avoided.
	AnnualSupportSavings float64

	// AnnualTrainingSavings is yearly training cost avoided.
	AnnualTrainingSavings float64

	// AnnualEfficiencyGain is yearly value of productivity gained.
	AnnualEfficiencyGain float64

	// AnnualRiskReduction is yearly value of risk retired.
	AnnualRiskReduction float64

	// MaintenancePercent is the annual maintenance cost as a percent of
	// the investment.
	MaintenancePercent float64
}

// DefaultInput returns an input with the documented defaults.
func DefaultInput(investmentCost float64) Input {
	return Input{InvestmentCost: investmentCost, MaintenancePercent: 20}
}

// Payback is the payback period. Never is set (and Months zero) when the
// investment does not pay back.
type Payback struct {
	// Months is the payback period in months when one exists.
	Months float64 `json:"months,omitempty"`

	// Never is the explicit sentinel for a non-recoverable investment.
	Never bool `json:"never,omitempty"`
}

// String renders the payback for display.
func (p Payback) String() string {
	if p.Never {
		return PaybackNever
	}
	return decimal.NewFromFloat(p.Months).Round(1).String() + " months"
}

// Result is the complete ROI view.
type Result struct {
	// AnnualBenefit is the sum of the four savings/gain terms.
	AnnualBenefit decimal.Decimal `json:"annual_benefit"`

	// AnnualMaintenanceCost is investment × maintenance percent.
	AnnualMaintenanceCost decimal.Decimal `json:"annual_maintenance_cost"`

	// NetAnnualBenefit is benefit minus maintenance.
	NetAnnualBenefit decimal.Decimal `json:"net_annual_benefit"`

	// PaybackPeriod is months to recover the investment, or never.
	PaybackPeriod Payback `json:"payback_period"`

	// NPV3Yr discounts three years of net benefit minus the investment.
	NPV3Yr decimal.Decimal `json:"npv_3yr"`

	// ROI1YrPercent is first-year return on investment.
	ROI1YrPercent float64 `json:"roi_1yr_percent"`

	// ROI3YrPercent is three-year return on investment.
	ROI3YrPercent float64 `json:"roi_3yr_percent"`
}

// Calculator computes ROI results. Independent of the other estimators.
type Calculator struct{}

// NewCalculator creates an ROI calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate computes payback, NPV and ROI percentages.
func (c *Calculator) Calculate(in Input) (*Result, error) {
	if in.InvestmentCost < 0 {
		return nil, errors.Inputf("investment cost must be non-negative, got %g", in.InvestmentCost)
	}
	if in.MaintenancePercent < 0 {
		return nil, errors.Inputf("maintenance percent must be non-negative, got %g", in.MaintenancePercent)
	}

	annualBenefit := in.AnnualSupportSavings + in.AnnualTrainingSavings +
		in.AnnualEfficiencyGain + in.AnnualRiskReduction
	maintenance := in.InvestmentCost * in.MaintenancePercent / 100.0
	net := annualBenefit - maintenance

	result := &Result{
		AnnualBenefit:         money(annualBenefit),
		AnnualMaintenanceCost: money(maintenance),
		NetAnnualBenefit:      money(net),
	}

	if net > 0 {
		result.PaybackPeriod = Payback{Months: round1(in.InvestmentCost / (net / 12.0))}
	} else {
		result.PaybackPeriod = Payback{Never: true}
	}

	// NPV over three years of net benefit at the fixed discount rate.
	npv := -in.InvestmentCost
	for year := 1; year <= 3; year++ {
		npv += net / math.Pow(1.0+tables.DiscountRate, float64(year))
	}
	result.NPV3Yr = money(npv)

	if in.InvestmentCost > 0 {
		result.ROI1YrPercent = round1(net / in.InvestmentCost * 100.0)
		result.ROI3YrPercent = round1((3.0*net - in.InvestmentCost) / in.InvestmentCost * 100.0)
	}

	return result, nil
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
