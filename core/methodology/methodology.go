// Package methodology routes estimation requests to the 8 published
// methodologies and aggregates their disagreement into a PERT summary.
//
// Each methodology is a small estimator registered by id; unknown ids are
// reported with the valid id list so batch callers can continue.
package methodology

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"devcost/core/pert"
	"devcost/core/tables"
	"devcost/core/types"
	"devcost/internal/errors"
)

// Currency for methodology cost blocks; hourly rates are quoted in USD.
const costCurrency = "USD"

// Input carries the signals a methodology estimate is computed from.
type Input struct {
	// LOC is the project size in lines of code. Required for software
	// methodologies; documentation methodologies can derive volume from
	// it when no doc inputs are given.
	LOC int

	// Complexity scales the formula output. Valid range 0.5-3.0.
	Complexity float64

	// HourlyRate converts hours to cost.
	HourlyRate float64

	// DocWords is the documentation volume in words.
	DocWords int

	// DocPages is the documentation volume in pages.
	DocPages float64
}

// DefaultInput returns an input with the documented defaults:
// complexity 1.0, hourly rate 35.
func DefaultInput(loc int) Input {
	return Input{LOC: loc, Complexity: 1.0, HourlyRate: 35}
}

// validate enforces the shared input contract.
func (in Input) validate() error {
	if in.LOC <= 0 && in.DocWords <= 0 && in.DocPages <= 0 {
		return errors.Input("loc, doc_words or doc_pages required")
	}
	if in.LOC < 0 {
		return errors.Inputf("loc must be positive, got %d", in.LOC)
	}
	if in.Complexity < 0.5 || in.Complexity > 3.0 {
		return errors.Inputf("complexity must be in [0.5, 3.0], got %g", in.Complexity)
	}
	return nil
}

// pages resolves the documentation volume in pages: explicit pages, then
// words at 500 words/page, then 10 pages per KLOC of code.
func (in Input) pages() float64 {
	if in.DocPages > 0 {
		return in.DocPages
	}
	if in.DocWords > 0 {
		return float64(in.DocWords) / 500.0
	}
	return float64(in.LOC) / 1000.0 * 10.0
}

// Estimator is one methodology's formula.
type Estimator interface {
	// Definition returns the methodology metadata.
	Definition() tables.Methodology

	// Hours converts the input to effort hours.
	Hours(in Input) float64
}

// Dispatcher routes requests to registered methodology estimators.
type Dispatcher struct {
	estimators map[string]Estimator
	order      []string
	pert       *pert.Analyzer
}

// NewDispatcher creates a dispatcher with all 8 methodologies registered.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		estimators: make(map[string]Estimator),
		pert:       pert.NewAnalyzer(),
	}
	for _, est := range []Estimator{
		&cocomoEstimator{},
		&gartnerEstimator{},
		&slimEstimator{},
		&functionPointsEstimator{},
		&pmiEstimator{},
		&ieeeEstimator{},
		&microsoftEstimator{},
		&googleEstimator{},
	} {
		d.register(est)
	}
	return d
}

func (d *Dispatcher) register(est Estimator) {
	id := est.Definition().ID
	d.estimators[id] = est
	d.order = append(d.order, id)
}

// EstimateOne runs a single methodology. Unknown ids return a structured
// not-found error enumerating the valid ids.
func (d *Dispatcher) EstimateOne(id string, in Input) (*types.Payload, error) {
	est, ok := d.estimators[id]
	if !ok {
		return nil, errors.UnknownMethodology(id, tables.MethodologyIDs())
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	return d.run(est, in), nil
}

// run builds the uniform payload for one estimator.
func (d *Dispatcher) run(est Estimator, in Input) *types.Payload {
	def := est.Definition()
	hours := est.Hours(in)
	cost := decimal.NewFromFloat(hours).
		Mul(decimal.NewFromFloat(in.HourlyRate)).
		Round(2)

	// Echo the floored size the formulas actually consumed; doc-only
	// inputs have no code size to echo.
	klocEcho := 0.0
	if in.LOC > 0 {
		klocEcho = round2(kloc(in.LOC))
	}

	return &types.Payload{
		Methodology: def.ID,
		Name:        def.Name,
		Formula:     def.Formula,
		Inputs: types.Inputs{
			LOC:        in.LOC,
			KLOC:       klocEcho,
			Complexity: in.Complexity,
			HourlyRate: in.HourlyRate,
			DocWords:   in.DocWords,
			DocPages:   round1(in.DocPages),
		},
		Hours: &types.HoursBlock{Typical: round1(hours)},
		Cost:  &types.CostBlock{Currency: costCurrency, Expected: cost},
	}
}

// BatchResult aggregates the applicable methodologies plus a PERT summary
// over their disagreement.
type BatchResult struct {
	// Mode is the estimation mode the batch was filtered by.
	Mode string `json:"estimation_mode"`

	// Results holds one payload per applicable methodology.
	Results []*types.Payload `json:"results"`

	// PertSummary treats the min/median/max hours across methodologies
	// as a three-point estimate, giving a spread-based confidence
	// interval over methodology disagreement.
	PertSummary *types.PertResult `json:"pert_summary,omitempty"`

	// SummaryCost converts the PERT summary to currency.
	SummaryCost *types.CostBlock `json:"summary_cost,omitempty"`
}

// EstimateAll runs every methodology whose domain matches the mode
// (software, documentation or all; software is the default).
func (d *Dispatcher) EstimateAll(in Input, mode string) (*BatchResult, error) {
	switch mode {
	case "":
		mode = string(tables.DomainSoftware)
	case string(tables.DomainSoftware), string(tables.DomainDocumentation), "all":
	default:
		return nil, errors.NotSupported("estimation mode " + mode)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	batch := &BatchResult{Mode: mode}
	var hours []float64
	for _, id := range d.order {
		est := d.estimators[id]
		if !est.Definition().Domain.Matches(mode) {
			continue
		}
		payload := d.run(est, in)
		batch.Results = append(batch.Results, payload)
		hours = append(hours, payload.Hours.Typical)
	}

	if len(hours) >= 2 {
		sorted := make([]float64, len(hours))
		copy(sorted, hours)
		sort.Float64s(sorted)

		summary, err := d.pert.Analyze(pert.Input{
			Optimistic:  sorted[0],
			MostLikely:  median(sorted),
			Pessimistic: sorted[len(sorted)-1],
		})
		if err != nil {
			return nil, errors.Internal("pert summary over methodology spread", err)
		}
		batch.PertSummary = summary
		batch.SummaryCost = pert.AttachCost(summary, in.HourlyRate, costCurrency)
	}

	return batch, nil
}

// median of an already-sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
