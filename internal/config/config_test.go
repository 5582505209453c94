package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devcost/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "1.0", cfg.Version)
	assert.True(t, cfg.Validation.Strict)
	assert.Equal(t, 5.0, cfg.Validation.RateMin)
	assert.Equal(t, 300.0, cfg.Validation.RateMax)
	assert.Equal(t, 2.0, cfg.Validation.HoursPerKLOCMin)
	assert.Equal(t, 200.0, cfg.Validation.HoursPerKLOCMax)
	assert.Equal(t, "eu", cfg.Estimation.DefaultRegion)
	assert.Equal(t, 35.0, cfg.Estimation.DefaultHourlyRate)
	assert.Equal(t, "text", cfg.Output.DefaultFormat)
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Estimation, cfg.Estimation)
}

func TestLoadNamedMissingFileFailsClosed(t *testing.T) {
	// A path the user asked for but that doesn't exist is a mistake, not
	// a request for defaults.
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"validation": {
			"strict": false,
			"rate_min": 10,
			"rate_max": 250,
			"hours_per_kloc_min": 2,
			"hours_per_kloc_max": 150
		},
		"estimation": {"default_region": "us", "default_hourly_rate": 75}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Validation.Strict)
	assert.Equal(t, 10.0, cfg.Validation.RateMin)
	assert.Equal(t, 150.0, cfg.Validation.HoursPerKLOCMax)
	assert.Equal(t, "us", cfg.Estimation.DefaultRegion)
	assert.Equal(t, 75.0, cfg.Estimation.DefaultHourlyRate)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
validation:
  strict: false
  rate_min: 20
estimation:
  default_region: pl
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Validation.Strict)
	assert.Equal(t, 20.0, cfg.Validation.RateMin)
	assert.Equal(t, "pl", cfg.Estimation.DefaultRegion)
	// Untouched fields keep their defaults.
	assert.Equal(t, 300.0, cfg.Validation.RateMax)
}

func TestLoadHCL(t *testing.T) {
	path := writeFile(t, "config.hcl", `
strict             = false
rate_max           = 200
default_region     = "de"
default_hourly_rate = 80
log_level          = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Validation.Strict)
	assert.Equal(t, 200.0, cfg.Validation.RateMax)
	assert.Equal(t, "de", cfg.Estimation.DefaultRegion)
	assert.Equal(t, 80.0, cfg.Estimation.DefaultHourlyRate)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset HCL fields keep defaults.
	assert.Equal(t, 5.0, cfg.Validation.RateMin)
}

func TestLoadMalformedFailsClosed(t *testing.T) {
	path := writeFile(t, "config.json", `{"validation": `)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "config.toml", `strict = false`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestEnvOverridesApplyAtLoad(t *testing.T) {
	t.Setenv("STRICT_ESTIMATION", "false")
	t.Setenv("RATE_MAX", "500")

	path := writeFile(t, "config.json", `{"validation": {"strict": true, "rate_max": 250}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	// Environment wins over the file.
	assert.False(t, cfg.Validation.Strict)
	assert.Equal(t, 500.0, cfg.Validation.RateMax)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Estimation.DefaultRegion = "uk"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "uk", loaded.Estimation.DefaultRegion)
}
