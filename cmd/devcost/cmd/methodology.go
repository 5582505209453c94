// Package cmd - Methodology commands
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"devcost/core/methodology"
	"devcost/internal/config"
	"devcost/internal/logging"
)

var (
	methID         string
	methLOC        int
	methComplexity float64
	methRate       float64
	methDocWords   int
	methDocPages   float64

	compMode string
)

// methodologyCmd runs a single methodology estimate
var methodologyCmd = &cobra.Command{
	Use:   "methodology",
	Short: "Estimate with a single methodology",
	RunE:  runMethodology,
}

// comprehensiveCmd runs all applicable methodologies
var comprehensiveCmd = &cobra.Command{
	Use:   "comprehensive",
	Short: "Estimate with every applicable methodology plus a PERT summary",
	RunE:  runComprehensive,
}

// formulasCmd lists all formulas
var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "List every methodology formula and constant table",
	RunE:  runFormulas,
}

func init() {
	for _, c := range []*cobra.Command{methodologyCmd, comprehensiveCmd} {
		c.Flags().IntVar(&methLOC, "loc", 0, "lines of code")
		c.Flags().Float64Var(&methComplexity, "complexity", 1.0, "complexity factor 0.5-3.0")
		c.Flags().Float64Var(&methRate, "rate", 0, "hourly rate (default from config)")
		c.Flags().IntVar(&methDocWords, "doc-words", 0, "documentation volume in words")
		c.Flags().Float64Var(&methDocPages, "doc-pages", 0, "documentation volume in pages")
	}
	methodologyCmd.Flags().StringVar(&methID, "id", "", "methodology id (required)")
	_ = methodologyCmd.MarkFlagRequired("id")

	comprehensiveCmd.Flags().StringVar(&compMode, "mode", "software", "estimation mode (software, documentation, all)")
}

func methodologyInput() methodology.Input {
	rate := methRate
	if rate == 0 {
		rate = config.Get().Estimation.DefaultHourlyRate
	}
	return methodology.Input{
		LOC:        methLOC,
		Complexity: methComplexity,
		HourlyRate: rate,
		DocWords:   methDocWords,
		DocPages:   methDocPages,
	}
}

func runMethodology(cmd *cobra.Command, args []string) error {
	logging.Info("starting methodology estimate",
		zap.String("id", methID), zap.Int("loc", methLOC))
	payload, err := service.Methodology(methID, methodologyInput())
	if err != nil {
		return err
	}
	if jsonOutput {
		return emitJSON(payload)
	}
	renderPayload(payload)
	return nil
}

func runComprehensive(cmd *cobra.Command, args []string) error {
	logging.Info("starting comprehensive estimate",
		zap.String("mode", compMode), zap.Int("loc", methLOC))
	batch, err := service.Comprehensive(methodologyInput(), compMode)
	if err != nil {
		return err
	}
	logging.Debug("comprehensive batch complete",
		zap.Int("results", len(batch.Results)))
	if jsonOutput {
		return emitJSON(batch)
	}

	for _, payload := range batch.Results {
		renderPayload(payload)
	}
	if batch.PertSummary != nil {
		headline.Println("Spread summary (PERT over methodology disagreement)")
		label.Printf("  expected: %.1f h, σ: %.1f, 68%%: [%.1f, %.1f], 95%%: [%.1f, %.1f]\n",
			batch.PertSummary.Expected, batch.PertSummary.StdDev,
			batch.PertSummary.Confidence68.Min, batch.PertSummary.Confidence68.Max,
			batch.PertSummary.Confidence95.Min, batch.PertSummary.Confidence95.Max)
		if batch.SummaryCost != nil {
			label.Printf("  expected cost: %s %s\n",
				batch.SummaryCost.Expected.StringFixed(2), batch.SummaryCost.Currency)
		}
	}
	return nil
}

func runFormulas(cmd *cobra.Command, args []string) error {
	result := struct {
		Formulas  []any `json:"formulas"`
		Constants any   `json:"constants"`
	}{
		Constants: service.ConstantsSnapshot(),
	}
	for _, f := range service.Formulas() {
		result.Formulas = append(result.Formulas, f)
	}
	if jsonOutput {
		return emitJSON(result)
	}

	headline.Println("Formulas")
	for _, f := range service.Formulas() {
		label.Printf("  %-24s [%s] %s\n", f.ID, f.Domain, f.Formula)
	}
	return nil
}
