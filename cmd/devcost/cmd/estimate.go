// Package cmd - COCOMO estimate commands
package cmd

import (
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"devcost/core/cocomo"
	"devcost/core/estimator"
	"devcost/core/tables"
	"devcost/internal/config"
	"devcost/internal/logging"
)

var (
	estLOC        int
	estTechDebt   int
	estExperience string
	estRegion     string

	classicLOC  int
	classicType string

	fullLOC        int
	fullTechDebt   int
	fullExperience string
	fullRegion     string

	compareActual float64
	compareLOC    int
	compareRegion string
	compareHours  float64
)

// estimateCmd runs the standard production estimate
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Standard estimate (Modern COCOMO II with regional costs)",
	RunE:  runEstimate,
}

// classicCmd runs the Classic COCOMO estimate
var classicCmd = &cobra.Command{
	Use:   "classic",
	Short: "Classic COCOMO II estimate (organic, semi, embedded)",
	RunE:  runClassic,
}

// fullCmd runs the full project valuation
var fullCmd = &cobra.Command{
	Use:   "full",
	Short: "Full project valuation (cost, IP value, maintenance, timeline)",
	RunE:  runFull,
}

// compareCmd compares an actual cost against the estimate
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare an actual cost against the COCOMO estimate",
	RunE:  runCompare,
}

func init() {
	estimateCmd.Flags().IntVar(&estLOC, "loc", 0, "lines of code (required)")
	estimateCmd.Flags().IntVar(&estTechDebt, "tech-debt", 10, "tech debt score 0-15 (higher is healthier)")
	estimateCmd.Flags().StringVar(&estExperience, "experience", "nominal", "team experience (low, nominal, high)")
	estimateCmd.Flags().StringVar(&estRegion, "region", "", "region for local cost display")
	_ = estimateCmd.MarkFlagRequired("loc")

	classicCmd.Flags().IntVar(&classicLOC, "loc", 0, "lines of code (required)")
	classicCmd.Flags().StringVar(&classicType, "type", "semi", "project type (organic, semi, embedded)")
	_ = classicCmd.MarkFlagRequired("loc")

	fullCmd.Flags().IntVar(&fullLOC, "loc", 0, "lines of code (required)")
	fullCmd.Flags().IntVar(&fullTechDebt, "tech-debt", 10, "tech debt score 0-15")
	fullCmd.Flags().StringVar(&fullExperience, "experience", "nominal", "team experience")
	fullCmd.Flags().StringVar(&fullRegion, "region", "", "region for local cost")
	_ = fullCmd.MarkFlagRequired("loc")

	compareCmd.Flags().Float64Var(&compareActual, "actual", 0, "actual cost paid (required)")
	compareCmd.Flags().IntVar(&compareLOC, "loc", 0, "lines of code (required)")
	compareCmd.Flags().StringVar(&compareRegion, "region", "ua", "region whose typical rate prices the estimate")
	compareCmd.Flags().Float64Var(&compareHours, "actual-hours", 0, "actual hours spent, if known")
	_ = compareCmd.MarkFlagRequired("actual")
	_ = compareCmd.MarkFlagRequired("loc")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	logging.Info("starting standard estimate",
		zap.Int("loc", estLOC), zap.Int("tech_debt", estTechDebt))
	result, err := service.Standard(estimator.StandardInput{
		Modern: cocomo.ModernInput{
			LOC:            estLOC,
			TechDebtScore:  estTechDebt,
			TeamExperience: tables.TeamExperience(estExperience),
		},
		Region: regionFlag(estRegion),
	})
	if err != nil {
		return err
	}
	if jsonOutput {
		return emitJSON(result)
	}

	renderPayload(result.Estimate)
	label.Printf("  complexity: %s, tech-debt multiplier: %.2f\n",
		result.Complexity, result.TechDebtMultiplier)

	headline.Println("Hours breakdown")
	activities := make([]string, 0, len(result.HoursBreakdown))
	for activity := range result.HoursBreakdown {
		activities = append(activities, activity)
	}
	sort.Strings(activities)
	for _, activity := range activities {
		label.Printf("  %-20s %6.0f h\n", activity, result.HoursBreakdown[activity])
	}

	headline.Println("Cost by region")
	for _, id := range tables.RegionIDs() {
		rc := result.CostByRegion[id]
		label.Printf("  %-14s %s - %s (typical %s)\n", id,
			renderMoney(rc.Symbol, rc.Min), renderMoney(rc.Symbol, rc.Max),
			renderMoney(rc.Symbol, rc.Typical))
	}
	return nil
}

func runClassic(cmd *cobra.Command, args []string) error {
	logging.Info("starting classic estimate",
		zap.Int("loc", classicLOC), zap.String("type", classicType))
	payload, err := service.Classic(cocomo.ClassicInput{
		LOC:         classicLOC,
		ProjectType: tables.ProjectType(classicType),
	})
	if err != nil {
		return err
	}
	if jsonOutput {
		return emitJSON(payload)
	}
	renderPayload(payload)
	return nil
}

func runFull(cmd *cobra.Command, args []string) error {
	logging.Info("starting full valuation",
		zap.Int("loc", fullLOC), zap.String("region", regionFlag(fullRegion)))
	result, err := service.Full(estimator.FullInput{
		LOC:            fullLOC,
		TechDebtScore:  fullTechDebt,
		TeamExperience: tables.TeamExperience(fullExperience),
		Region:         regionFlag(fullRegion),
	})
	if err != nil {
		return err
	}
	if jsonOutput {
		return emitJSON(result)
	}

	renderPayload(result.Estimate)
	label.Printf("  local cost (%s): %s - %s\n", result.Region,
		renderMoney(result.DevCostLocal.Symbol, result.DevCostLocal.Min),
		renderMoney(result.DevCostLocal.Symbol, result.DevCostLocal.Max))
	label.Printf("  normalized cost: $%s, IP value: $%s\n",
		result.DevCostUSD.StringFixed(0), result.IPValueUSD.StringFixed(0))
	label.Printf("  maintenance: $%s/month, timeline: %.1f weeks\n",
		result.MaintenanceCostMonthly.StringFixed(2), result.TimelineWeeks)
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	logging.Info("starting cost comparison",
		zap.Float64("actual", compareActual), zap.Int("loc", compareLOC))
	result, err := service.CompareCost(estimator.CompareInput{
		ActualCost:  compareActual,
		LOC:         compareLOC,
		Region:      compareRegion,
		ActualHours: compareHours,
	})
	if err != nil {
		return err
	}
	if jsonOutput {
		return emitJSON(result)
	}

	headline.Println("Cost comparison")
	label.Printf("  actual: $%s, estimated: $%s (%.0f h)\n",
		result.ActualCost.StringFixed(0), result.EstimatedCost.StringFixed(0),
		result.EstimatedHours)
	if !result.ActualRatePerHour.IsZero() {
		label.Printf("  actual rate: $%s/h\n", result.ActualRatePerHour.StringFixed(2))
	}
	switch result.Verdict {
	case estimator.VerdictWithinRange:
		good.Printf("  %s (%.1f%%): %s\n", result.Verdict, result.DeviationPercent, result.Advice)
	default:
		warn.Printf("  %s (%.1f%%): %s\n", result.Verdict, result.DeviationPercent, result.Advice)
	}
	return nil
}

// regionFlag falls back to the configured default region.
func regionFlag(region string) string {
	if region != "" {
		return region
	}
	return config.Get().Estimation.DefaultRegion
}
