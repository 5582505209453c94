// Package estimator wires the estimation components together behind the
// validation gate. Collaborators are injected at construction, resolved
// once at process start.
package estimator

import (
	"devcost/core/aicomp"
	"devcost/core/cocomo"
	"devcost/core/methodology"
	"devcost/core/pert"
	"devcost/core/regional"
	"devcost/core/roi"
	"devcost/core/tables"
	"devcost/core/types"
	"devcost/core/validate"
)

// Service exposes every estimation operation through validation-aware
// entry points.
type Service struct {
	engine     *cocomo.Engine
	dispatcher *methodology.Dispatcher
	analyzer   *pert.Analyzer
	comparator *aicomp.Comparator
	converter  *regional.Converter
	roi        *roi.Calculator
	gate       *validate.Gate
}

// New creates a service with explicitly supplied collaborators.
func New(
	engine *cocomo.Engine,
	dispatcher *methodology.Dispatcher,
	analyzer *pert.Analyzer,
	comparator *aicomp.Comparator,
	converter *regional.Converter,
	calculator *roi.Calculator,
	gate *validate.Gate,
) *Service {
	return &Service{
		engine:     engine,
		dispatcher: dispatcher,
		analyzer:   analyzer,
		comparator: comparator,
		converter:  converter,
		roi:        calculator,
		gate:       gate,
	}
}

// NewDefault creates a service with default components and the given
// validation bounds.
func NewDefault(bounds validate.Bounds) *Service {
	return New(
		cocomo.NewEngine(),
		methodology.NewDispatcher(),
		pert.NewAnalyzer(),
		aicomp.NewComparator(),
		regional.NewConverter(),
		roi.NewCalculator(),
		validate.NewGate(bounds),
	)
}

// Modern runs the Modern COCOMO estimate through the gate.
func (s *Service) Modern(in cocomo.ModernInput) (*types.Payload, error) {
	payload, err := s.engine.Modern(in)
	if err != nil {
		return nil, err
	}
	return s.gate.Apply(payload, cocomo.KLOC(in.LOC), 0)
}

// Classic runs the Classic COCOMO estimate through the gate.
func (s *Service) Classic(in cocomo.ClassicInput) (*types.Payload, error) {
	payload, err := s.engine.Classic(in)
	if err != nil {
		return nil, err
	}
	return s.gate.Apply(payload, cocomo.KLOC(in.LOC), 0)
}

// Methodology runs a single methodology through the gate. Documentation-only
// inputs carry no code size, so the productivity check is skipped for them.
func (s *Service) Methodology(id string, in methodology.Input) (*types.Payload, error) {
	payload, err := s.dispatcher.EstimateOne(id, in)
	if err != nil {
		return nil, err
	}
	kloc := 0.0
	if in.LOC > 0 {
		kloc = cocomo.KLOC(in.LOC)
	}
	return s.gate.Apply(payload, kloc, in.HourlyRate)
}

// Comprehensive runs every applicable methodology. Validation is attached
// per result but never replaces one inside the batch, so callers can
// always see the full spread.
func (s *Service) Comprehensive(in methodology.Input, mode string) (*methodology.BatchResult, error) {
	batch, err := s.dispatcher.EstimateAll(in, mode)
	if err != nil {
		return nil, err
	}
	kloc := 0.0
	if in.LOC > 0 {
		kloc = cocomo.KLOC(in.LOC)
	}
	for _, payload := range batch.Results {
		payload.Validation = s.gate.Check(payload, kloc, in.HourlyRate)
	}
	return batch, nil
}

// Pert runs a three-point analysis, attaches cost at the hourly rate and
// routes the payload through the gate.
func (s *Service) Pert(in pert.Input, hourlyRate float64) (*types.Payload, error) {
	result, err := s.analyzer.Analyze(in)
	if err != nil {
		return nil, err
	}
	payload := &types.Payload{
		Methodology: "pert",
		Name:        "PERT Three-Point",
		Formula:     "Expected = (O + 4×M + P) / 6, σ = (P − O) / 6",
		Inputs:      types.Inputs{HourlyRate: hourlyRate},
		Hours:       &types.HoursBlock{Expected: result.Expected},
		PERT:        result,
	}
	if hourlyRate > 0 {
		payload.Cost = pert.AttachCost(result, hourlyRate, "USD")
	}
	return s.gate.Apply(payload, 0, hourlyRate)
}

// AIEfficiency compares human, AI-assisted and hybrid productivity.
func (s *Service) AIEfficiency(in aicomp.Input) (*aicomp.Comparison, error) {
	return s.comparator.Compare(in)
}

// ROI computes the return-on-investment view.
func (s *Service) ROI(in roi.Input) (*roi.Result, error) {
	return s.roi.Calculate(in)
}

// RegionalCosts converts hours to currency across every region.
func (s *Service) RegionalCosts(hours float64) (*regional.AllRegionsResult, error) {
	return s.converter.AllRegions(hours)
}

// Methodologies lists the registered methodology definitions.
func (s *Service) Methodologies() []tables.Methodology {
	return tables.AllMethodologies()
}
