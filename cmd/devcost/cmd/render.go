// Package cmd - Output rendering helpers
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"devcost/core/types"
	"devcost/internal/logging"
)

var (
	headline = color.New(color.FgCyan, color.Bold)
	label    = color.New(color.FgWhite)
	good     = color.New(color.FgGreen)
	warn     = color.New(color.FgYellow)
	bad      = color.New(color.FgRed)
)

// emitJSON renders any result as indented JSON on stdout.
func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderPayload prints the human-readable view of an estimate payload.
func renderPayload(p *types.Payload) {
	headline.Printf("%s\n", p.Name)
	if p.Formula != "" {
		label.Printf("  formula: %s\n", p.Formula)
	}
	if p.Fallback != "" {
		warn.Printf("  note: %s\n", p.Fallback)
	}
	if p.EffortPM > 0 {
		label.Printf("  effort: %.2f person-months, schedule: %.1f months, team: %.1f\n",
			p.EffortPM, p.ScheduleMonths, p.TeamSize)
	}
	if p.Hours != nil {
		if p.Hours.Typical > 0 {
			label.Printf("  hours: %.0f typical (%.0f - %.0f)\n",
				p.Hours.Typical, p.Hours.Min, p.Hours.Max)
		} else {
			label.Printf("  hours: %.2f expected\n", p.Hours.Expected)
		}
	}
	if p.Cost != nil {
		label.Printf("  cost: %s %s\n", p.Cost.Expected.StringFixed(2), p.Cost.Currency)
	}
	if p.PERT != nil {
		label.Printf("  σ: %.2f, 68%%: [%.2f, %.2f], 95%%: [%.2f, %.2f]\n",
			p.PERT.StdDev,
			p.PERT.Confidence68.Min, p.PERT.Confidence68.Max,
			p.PERT.Confidence95.Min, p.PERT.Confidence95.Max)
	}
	renderValidation(p.Validation)
}

// renderValidation prints the attached plausibility verdict, if any.
func renderValidation(v *types.ValidationResult) {
	if v == nil {
		return
	}
	logging.Debug("validation verdict",
		zap.Bool("valid", v.Valid),
		zap.Float64("hours_per_kloc", v.HoursPerKLOC),
		zap.Int("warnings", len(v.Warnings)),
		zap.Int("errors", len(v.Errors)))
	if v.Valid && len(v.Warnings) == 0 {
		good.Println("  validation: ok")
		return
	}
	for _, e := range v.Errors {
		bad.Printf("  validation error: %s\n", e)
	}
	for _, w := range v.Warnings {
		warn.Printf("  validation warning: %s\n", w)
	}
}

// renderMoney formats a decimal with a currency symbol.
func renderMoney(symbol string, v decimal.Decimal) string {
	return fmt.Sprintf("%s%s", symbol, v.StringFixed(0))
}
