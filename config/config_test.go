package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: agency
  log:
    pretty: false
    level: debug
agency:
  name: ""
inventory:
  seedFile: ""
report:
  minPrice: 100.0
  maxPrice: 900.0
  streetName: main street
  minBedrooms: 1
  maxBedrooms: 3
  propertyType: retail
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	t.Chdir(writeConfig(t, "agencytest", testConfigYAML))

	cfg, err := LoadWithEnv[Config]("agencytest")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.False(t, cfg.Env.Log.Pretty)
	assert.Equal(t, 100.0, cfg.Report.MinPrice)
	assert.Equal(t, 900.0, cfg.Report.MaxPrice)
	assert.Equal(t, "main street", cfg.Report.StreetName)
	assert.Equal(t, 3, cfg.Report.MaxBedrooms)
	assert.Equal(t, "retail", cfg.Report.PropertyType)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	t.Chdir(writeConfig(t, "agencytest", testConfigYAML))
	t.Setenv("AGENCY_NAME", "Override Realty")
	t.Setenv("INVENTORY_SEEDFILE", "/tmp/listings.yaml")
	t.Setenv("REPORT_MAXBEDROOMS", "7")

	cfg, err := LoadWithEnv[Config]("agencytest")
	require.NoError(t, err)

	assert.Equal(t, "Override Realty", cfg.Agency.Name)
	assert.Equal(t, "/tmp/listings.yaml", cfg.Inventory.SeedFile)
	assert.Equal(t, 7, cfg.Report.MaxBedrooms)
}

func TestLoadWithEnv_IgnoresUnrelatedEnv(t *testing.T) {
	t.Chdir(writeConfig(t, "agencytest", testConfigYAML))
	t.Setenv("ENV", "production")
	t.Setenv("REPORT", "weekly")
	t.Setenv("ENV_LOG", "verbose")
	t.Setenv("HOSTNAME", "build-7")
	t.Setenv("REPORT_MINBEDROOMS", "2")

	cfg, err := LoadWithEnv[Config]("agencytest")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, "main street", cfg.Report.StreetName)
	assert.Equal(t, 2, cfg.Report.MinBedrooms)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.ErrorContains(t, err, "config file does-not-exist.yaml not found")
}

func TestApplyReportDefaults(t *testing.T) {
	report := ReportConfig{}
	applyReportDefaults(&report)

	assert.Equal(t, ReportConfig{
		MinPrice:     1000000.0,
		MaxPrice:     5000000.0,
		StreetName:   "elm street",
		MinBedrooms:  2,
		MaxBedrooms:  5,
		PropertyType: "residence",
	}, report)

	custom := ReportConfig{MaxPrice: 10, StreetName: "gretzky way", MaxBedrooms: 1, PropertyType: "retail"}
	applyReportDefaults(&custom)

	assert.Equal(t, ReportConfig{MaxPrice: 10, StreetName: "gretzky way", MaxBedrooms: 1, PropertyType: "retail"}, custom)
}
