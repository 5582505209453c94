// Package cmd - PERT, AI efficiency, ROI and regional cost commands
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"devcost/core/aicomp"
	"devcost/core/pert"
	"devcost/core/roi"
	"devcost/core/tables"
	"devcost/internal/config"
	"devcost/internal/logging"
)

var (
	pertOptimistic  float64
	pertMostLikely  float64
	pertPessimistic float64
	pertRate        float64

	aiLOC        int
	aiRate       float64
	aiComplexity float64

	roiInvestment      float64
	roiSupportSavings  float64
	roiTrainingSavings float64
	roiEfficiencyGain  float64
	roiRiskReduction   float64
	roiMaintenance     float64

	regionsHours float64
)

// pertCmd runs a three-point analysis
var pertCmd = &cobra.Command{
	Use:   "pert",
	Short: "PERT three-point analysis with confidence intervals",
	RunE:  runPert,
}

// aiCmd compares human, AI-assisted and hybrid productivity
var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Compare pure-human, AI-assisted and hybrid development",
	RunE:  runAI,
}

// roiCmd computes the return-on-investment view
var roiCmd = &cobra.Command{
	Use:   "roi",
	Short: "Payback period, 3-year NPV and ROI percentages",
	RunE:  runROI,
}

// regionsCmd prices an hours figure in every region
var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Convert hours to cost across all regional rate profiles",
	RunE:  runRegions,
}

func init() {
	pertCmd.Flags().Float64Var(&pertOptimistic, "optimistic", 0, "optimistic hours (required)")
	pertCmd.Flags().Float64Var(&pertMostLikely, "most-likely", 0, "most likely hours (required)")
	pertCmd.Flags().Float64Var(&pertPessimistic, "pessimistic", 0, "pessimistic hours (required)")
	pertCmd.Flags().Float64Var(&pertRate, "rate", 0, "hourly rate for the cost block")
	_ = pertCmd.MarkFlagRequired("optimistic")
	_ = pertCmd.MarkFlagRequired("most-likely")
	_ = pertCmd.MarkFlagRequired("pessimistic")

	aiCmd.Flags().IntVar(&aiLOC, "loc", 0, "lines of code (required)")
	aiCmd.Flags().Float64Var(&aiRate, "rate", 0, "hourly rate (default from config)")
	aiCmd.Flags().Float64Var(&aiComplexity, "complexity", 1.0, "complexity factor")
	_ = aiCmd.MarkFlagRequired("loc")

	roiCmd.Flags().Float64Var(&roiInvestment, "investment", 0, "investment cost (required)")
	roiCmd.Flags().Float64Var(&roiSupportSavings, "support-savings", 0, "annual support savings")
	roiCmd.Flags().Float64Var(&roiTrainingSavings, "training-savings", 0, "annual training savings")
	roiCmd.Flags().Float64Var(&roiEfficiencyGain, "efficiency-gain", 0, "annual efficiency gain")
	roiCmd.Flags().Float64Var(&roiRiskReduction, "risk-reduction", 0, "annual risk reduction")
	roiCmd.Flags().Float64Var(&roiMaintenance, "maintenance-percent", 20, "annual maintenance percent of investment")
	_ = roiCmd.MarkFlagRequired("investment")

	regionsCmd.Flags().Float64Var(&regionsHours, "hours", 0, "effort hours (required)")
	_ = regionsCmd.MarkFlagRequired("hours")
}

func runPert(cmd *cobra.Command, args []string) error {
	logging.Info("starting pert analysis",
		zap.Float64("optimistic", pertOptimistic),
		zap.Float64("most_likely", pertMostLikely),
		zap.Float64("pessimistic", pertPessimistic))
	rate := pertRate
	if rate == 0 {
		rate = config.Get().Estimation.DefaultHourlyRate
	}
	payload, err := service.Pert(pert.Input{
		Optimistic:  pertOptimistic,
		MostLikely:  pertMostLikely,
		Pessimistic: pertPessimistic,
	}, rate)
	if err != nil {
		return err
	}
	if jsonOutput {
		return emitJSON(payload)
	}
	renderPayload(payload)
	return nil
}

func runAI(cmd *cobra.Command, args []string) error {
	logging.Info("starting ai efficiency comparison", zap.Int("loc", aiLOC))
	rate := aiRate
	if rate == 0 {
		rate = config.Get().Estimation.DefaultHourlyRate
	}
	comparison, err := service.AIEfficiency(aicomp.Input{
		LOC:        aiLOC,
		HourlyRate: rate,
		Complexity: aiComplexity,
	})
	if err != nil {
		return err
	}
	if jsonOutput {
		return emitJSON(comparison)
	}

	headline.Println("AI efficiency comparison")
	render := func(name string, b aicomp.Branch) {
		label.Printf("  %-12s %6.1f h  $%s  (%.1f h/KLOC)\n",
			name, b.Hours, b.Cost.StringFixed(2), b.HoursPerKLOC)
	}
	render("pure human", comparison.PureHuman)
	render("ai assisted", comparison.AIAssisted)
	render("hybrid", comparison.Hybrid)
	good.Printf("  ai assisted saves %.1f h (%.1f%%), $%s (%.1f%%)\n",
		comparison.AIAssistedSavings.Hours, comparison.AIAssistedSavings.HoursPercent,
		comparison.AIAssistedSavings.Cost.StringFixed(2), comparison.AIAssistedSavings.CostPercent)
	good.Printf("  hybrid saves %.1f h (%.1f%%), $%s (%.1f%%)\n",
		comparison.HybridSavings.Hours, comparison.HybridSavings.HoursPercent,
		comparison.HybridSavings.Cost.StringFixed(2), comparison.HybridSavings.CostPercent)
	return nil
}

func runROI(cmd *cobra.Command, args []string) error {
	logging.Info("starting roi analysis", zap.Float64("investment", roiInvestment))
	result, err := service.ROI(roi.Input{
		InvestmentCost:        roiInvestment,
		AnnualSupportSavings:  roiSupportSavings,
		AnnualTrainingSavings: roiTrainingSavings,
		AnnualEfficiencyGain:  roiEfficiencyGain,
		AnnualRiskReduction:   roiRiskReduction,
		MaintenancePercent:    roiMaintenance,
	})
	if err != nil {
		return err
	}
	if jsonOutput {
		return emitJSON(result)
	}

	headline.Println("ROI analysis")
	label.Printf("  annual benefit: $%s, maintenance: $%s, net: $%s\n",
		result.AnnualBenefit.StringFixed(2),
		result.AnnualMaintenanceCost.StringFixed(2),
		result.NetAnnualBenefit.StringFixed(2))
	if result.PaybackPeriod.Never {
		bad.Println("  payback: never")
	} else {
		good.Printf("  payback: %s\n", result.PaybackPeriod)
	}
	label.Printf("  NPV (3yr): $%s, ROI: %.1f%% (1yr), %.1f%% (3yr)\n",
		result.NPV3Yr.StringFixed(2), result.ROI1YrPercent, result.ROI3YrPercent)
	return nil
}

func runRegions(cmd *cobra.Command, args []string) error {
	logging.Info("starting regional conversion", zap.Float64("hours", regionsHours))
	result, err := service.RegionalCosts(regionsHours)
	if err != nil {
		return err
	}
	if jsonOutput {
		return emitJSON(result)
	}

	headline.Printf("Cost of %.0f hours by region\n", result.Hours)
	for _, id := range tables.RegionIDs() {
		rc := result.Regions[id]
		label.Printf("  %-14s %s - %s (typical %s, %s)\n", id,
			renderMoney(rc.Symbol, rc.Min), renderMoney(rc.Symbol, rc.Max),
			renderMoney(rc.Symbol, rc.Typical), rc.Currency)
	}
	return nil
}
