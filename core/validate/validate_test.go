package validate

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"devcost/core/types"
	"devcost/internal/errors"
)

func payloadWith(hours, cost float64) *types.Payload {
	return &types.Payload{
		Methodology: "cocomo",
		Hours:       &types.HoursBlock{Typical: hours},
		Cost: &types.CostBlock{
			Currency: "USD",
			Expected: decimal.NewFromFloat(cost).Round(2),
		},
	}
}

func TestCheckPlausibleEstimate(t *testing.T) {
	gate := NewGate(DefaultBounds())

	// 500 hours over 10 KLOC at $35/hr: 50 h/KLOC, both in bounds.
	result := gate.Check(payloadWith(500, 17500), 10, 35)

	if !result.Valid {
		t.Fatalf("expected valid result, got errors %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
	if result.HoursPerKLOC != 50 {
		t.Errorf("hours/KLOC = %g, want 50", result.HoursPerKLOC)
	}
	if result.HourlyRate != 35 {
		t.Errorf("hourly rate = %g, want 35", result.HourlyRate)
	}
	if result.TotalHours != 500 {
		t.Errorf("total hours = %g, want 500", result.TotalHours)
	}
}

func TestCheckHoursPerKLOCBreachIsError(t *testing.T) {
	gate := NewGate(DefaultBounds())

	// 10 hours over 10 KLOC is 1 h/KLOC, below the minimum of 2.
	result := gate.Check(payloadWith(10, 350), 10, 35)
	if result.Valid {
		t.Fatal("expected invalid result for 1 h/KLOC")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "below minimum") {
		t.Fatalf("errors = %v, want one below-minimum error", result.Errors)
	}

	// 5000 hours over 10 KLOC is 500 h/KLOC, above the maximum of 200.
	result = gate.Check(payloadWith(5000, 175000), 10, 35)
	if result.Valid {
		t.Fatal("expected invalid result for 500 h/KLOC")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "above maximum") {
		t.Fatalf("errors = %v, want one above-maximum error", result.Errors)
	}
}

func TestCheckRateBreachIsWarningOnly(t *testing.T) {
	gate := NewGate(DefaultBounds())

	// Rate $500/hr is out of bounds but hours/KLOC is fine: the estimate
	// stays valid with a warning attached.
	result := gate.Check(payloadWith(500, 250000), 10, 500)
	if !result.Valid {
		t.Fatalf("rate breach must not invalidate, got errors %v", result.Errors)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "above maximum") {
		t.Fatalf("warnings = %v, want one above-maximum warning", result.Warnings)
	}

	result = gate.Check(payloadWith(500, 1000), 10, 2)
	if !result.Valid {
		t.Fatal("low rate must not invalidate")
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "below minimum") {
		t.Fatalf("warnings = %v, want one below-minimum warning", result.Warnings)
	}
}

func TestCheckDerivesRateFromCost(t *testing.T) {
	gate := NewGate(DefaultBounds())

	// No explicit rate: 17500 / 500 hours = $35/hr.
	result := gate.Check(payloadWith(500, 17500), 10, 0)
	if result.HourlyRate != 35 {
		t.Errorf("derived rate = %g, want 35", result.HourlyRate)
	}
}

func TestCheckSkipsRatiosWithoutSize(t *testing.T) {
	gate := NewGate(DefaultBounds())

	// PERT estimates carry no KLOC; the productivity check is skipped.
	result := gate.Check(payloadWith(500, 17500), 0, 35)
	if !result.Valid {
		t.Fatalf("expected valid result, got errors %v", result.Errors)
	}
	if result.HoursPerKLOC != 0 {
		t.Errorf("hours/KLOC = %g, want 0 when size is unknown", result.HoursPerKLOC)
	}
}

func TestApplyStrictReplacesFailingEstimate(t *testing.T) {
	gate := NewGate(DefaultBounds())

	payload, err := gate.Apply(payloadWith(10, 350), 10, 35)
	if err == nil {
		t.Fatal("expected validation error in strict mode")
	}
	if payload != nil {
		t.Fatal("strict mode must not return the failing payload")
	}
	if !errors.IsType(err, errors.TypeValidation) {
		t.Fatalf("error type = %v, want VALIDATION_ERROR", err)
	}

	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatal("expected typed error")
	}
	if _, ok := e.Context["validation"].(*types.ValidationResult); !ok {
		t.Fatal("validation error must carry the result in context")
	}
}

func TestApplyLenientAttachesFindings(t *testing.T) {
	bounds := DefaultBounds()
	bounds.Strict = false
	gate := NewGate(bounds)

	payload, err := gate.Apply(payloadWith(10, 350), 10, 35)
	if err != nil {
		t.Fatalf("lenient mode must return the payload, got %v", err)
	}
	if payload.Validation == nil || payload.Validation.Valid {
		t.Fatal("expected attached failing validation result")
	}
}

func TestApplyPassingEstimateKeepsResult(t *testing.T) {
	gate := NewGate(DefaultBounds())

	payload, err := gate.Apply(payloadWith(500, 17500), 10, 35)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Validation == nil || !payload.Validation.Valid {
		t.Fatal("expected attached passing validation result")
	}
}

func TestBoundsFromEnv(t *testing.T) {
	t.Setenv("STRICT_ESTIMATION", "false")
	t.Setenv("RATE_MIN", "10")
	t.Setenv("HOURS_PER_KLOC_MAX", "150")

	b := BoundsFromEnv(DefaultBounds())
	if b.Strict {
		t.Error("STRICT_ESTIMATION=false must disable strict mode")
	}
	if b.RateMin != 10 {
		t.Errorf("RateMin = %g, want 10", b.RateMin)
	}
	if b.HoursPerKLOCMax != 150 {
		t.Errorf("HoursPerKLOCMax = %g, want 150", b.HoursPerKLOCMax)
	}
	if b.RateMax != 300 || b.HoursPerKLOCMin != 2 {
		t.Error("unset variables must keep base values")
	}
}

func TestBoundsFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("RATE_MAX", "not-a-number")

	b := BoundsFromEnv(DefaultBounds())
	if b.RateMax != 300 {
		t.Errorf("RateMax = %g, want base value kept on parse failure", b.RateMax)
	}
}
