// Package cmd provides the CLI commands for devcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"devcost/core/estimator"
	"devcost/internal/config"
	"devcost/internal/logging"
)

var (
	cfgFile    string
	verbose    bool
	jsonOutput bool

	service *estimator.Service
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "devcost",
	Short: "Estimate software development effort, schedule and cost",
	Long: `devcost estimates development effort, schedule, team size and cost
from project signals using multiple published estimation methodologies,
and cross-checks every estimate against plausibility bounds.

Examples:
  devcost estimate --loc 50000
  devcost comprehensive --loc 50000 --mode software
  devcost pert --optimistic 80 --most-likely 120 --pessimistic 200
  devcost roi --investment 250000 --support-savings 60000`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (json, yaml or hcl)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of text")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(classicCmd)
	rootCmd.AddCommand(comprehensiveCmd)
	rootCmd.AddCommand(methodologyCmd)
	rootCmd.AddCommand(pertCmd)
	rootCmd.AddCommand(aiCmd)
	rootCmd.AddCommand(roiCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(fullCmd)
	rootCmd.AddCommand(formulasCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	logging.Debug("configuration loaded",
		zap.String("file", cfgFile),
		zap.Bool("strict", cfg.Validation.Strict),
		zap.String("default_region", cfg.Estimation.DefaultRegion))

	service = estimator.NewDefault(cfg.Validation)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("devcost version 0.1.0")
	},
}
