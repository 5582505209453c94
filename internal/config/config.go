// Package config provides application configuration: validation bounds,
// default region, output and logging settings. Files may be JSON, YAML or
// HCL, selected by extension; environment overrides for validation bounds
// are applied once at load.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"devcost/core/tables"
	"devcost/core/validate"
	"devcost/internal/errors"
	"devcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Validation holds the plausibility bounds for the estimation gate
	Validation validate.Bounds `json:"validation" yaml:"validation"`

	// Estimation contains estimation defaults
	Estimation EstimationConfig `json:"estimation" yaml:"estimation"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// EstimationConfig contains estimation defaults
type EstimationConfig struct {
	// DefaultRegion selects the rate profile used when none is given
	DefaultRegion string `json:"default_region" yaml:"default_region"`

	// DefaultHourlyRate is the blended rate used when none is given
	DefaultHourlyRate float64 `json:"default_hourly_rate" yaml:"default_hourly_rate"`

	// DefaultTeamExperience is the assumed team level
	DefaultTeamExperience string `json:"default_team_experience" yaml:"default_team_experience"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (text, json)
	DefaultFormat string `json:"default_format" yaml:"default_format"`

	// ShowValidation includes the validation block in rendered output
	ShowValidation bool `json:"show_validation" yaml:"show_validation"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:    "1.0",
		Validation: validate.DefaultBounds(),
		Estimation: EstimationConfig{
			DefaultRegion:         tables.DefaultRegion,
			DefaultHourlyRate:     35,
			DefaultTeamExperience: string(tables.ExperienceNominal),
		},
		Output: OutputConfig{
			DefaultFormat:  "text",
			ShowValidation: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// hclConfig is the flat HCL schema; hclsimple needs explicit hcl tags.
type hclConfig struct {
	Version               string   `hcl:"version,optional"`
	Strict                *bool    `hcl:"strict,optional"`
	RateMin               *float64 `hcl:"rate_min,optional"`
	RateMax               *float64 `hcl:"rate_max,optional"`
	HoursPerKLOCMin       *float64 `hcl:"hours_per_kloc_min,optional"`
	HoursPerKLOCMax       *float64 `hcl:"hours_per_kloc_max,optional"`
	DefaultRegion         string   `hcl:"default_region,optional"`
	DefaultHourlyRate     *float64 `hcl:"default_hourly_rate,optional"`
	DefaultTeamExperience string   `hcl:"default_team_experience,optional"`
	OutputFormat          string   `hcl:"output_format,optional"`
	LogLevel              string   `hcl:"log_level,optional"`
}

// Load loads configuration from a file. An empty path yields the default
// configuration; a named file that is missing, unreadable or unparsable
// fails closed.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		cfg.Validation = validate.BoundsFromEnv(cfg.Validation)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("reading config file", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.Config("parsing JSON config", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Config("parsing YAML config", err)
		}
	case ".hcl":
		var hc hclConfig
		if err := hclsimple.Decode(path, data, nil, &hc); err != nil {
			return nil, errors.Config("parsing HCL config", err)
		}
		applyHCL(cfg, hc)
	default:
		return nil, errors.Config("unsupported config format: "+filepath.Ext(path), nil)
	}

	cfg.Validation = validate.BoundsFromEnv(cfg.Validation)
	return cfg, nil
}

// applyHCL overlays the flat HCL fields onto the structured config.
func applyHCL(cfg *Config, hc hclConfig) {
	if hc.Version != "" {
		cfg.Version = hc.Version
	}
	if hc.Strict != nil {
		cfg.Validation.Strict = *hc.Strict
	}
	if hc.RateMin != nil {
		cfg.Validation.RateMin = *hc.RateMin
	}
	if hc.RateMax != nil {
		cfg.Validation.RateMax = *hc.RateMax
	}
	if hc.HoursPerKLOCMin != nil {
		cfg.Validation.HoursPerKLOCMin = *hc.HoursPerKLOCMin
	}
	if hc.HoursPerKLOCMax != nil {
		cfg.Validation.HoursPerKLOCMax = *hc.HoursPerKLOCMax
	}
	if hc.DefaultRegion != "" {
		cfg.Estimation.DefaultRegion = hc.DefaultRegion
	}
	if hc.DefaultHourlyRate != nil {
		cfg.Estimation.DefaultHourlyRate = *hc.DefaultHourlyRate
	}
	if hc.DefaultTeamExperience != "" {
		cfg.Estimation.DefaultTeamExperience = hc.DefaultTeamExperience
	}
	if hc.OutputFormat != "" {
		cfg.Output.DefaultFormat = hc.OutputFormat
	}
	if hc.LogLevel != "" {
		cfg.Logging.Level = hc.LogLevel
	}
}

// Save saves configuration to a file as JSON
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
