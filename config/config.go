package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultReportMinPrice     = 1000000.0
	defaultReportMaxPrice     = 5000000.0
	defaultReportStreetName   = "elm street"
	defaultReportMinBedrooms  = 2
	defaultReportMaxBedrooms  = 5
	defaultReportPropertyType = "residence"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Agency overrides the agency declared by the inventory seed
	Agency AgencyConfig `json:"agency" yaml:"agency"`

	// Inventory selects the listings loaded at startup
	Inventory InventoryConfig `json:"inventory" yaml:"inventory"`

	// Report holds the bounds used by the inventory report queries
	Report ReportConfig `json:"report" yaml:"report"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AgencyConfig defines agency-level overrides
type AgencyConfig struct {
	// Name replaces the agency name from the seed when set
	Name string `json:"name" yaml:"name"`
}

// InventoryConfig defines where listings are loaded from
type InventoryConfig struct {
	// Path to a YAML seed file; the embedded sample inventory is used when empty
	SeedFile string `json:"seedFile" yaml:"seedFile"`
}

// ReportConfig defines the inventory report query bounds
type ReportConfig struct {
	MinPrice     float64 `json:"minPrice" yaml:"minPrice"`
	MaxPrice     float64 `json:"maxPrice" yaml:"maxPrice"`
	StreetName   string  `json:"streetName" yaml:"streetName"`
	MinBedrooms  int     `json:"minBedrooms" yaml:"minBedrooms"`
	MaxBedrooms  int     `json:"maxBedrooms" yaml:"maxBedrooms"`
	PropertyType string  `json:"propertyType" yaml:"propertyType"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: INVENTORY_SEEDFILE -> inventory.seedFile (not inventory.seedfile)
			// Unrelated variables such as PATH or a bare ENV are dropped.
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyReportDefaults(&cfg.Report)

	return cfg, nil
}

// applyReportDefaults fills unset report bounds with the sample report values.
func applyReportDefaults(report *ReportConfig) {
	if report.MinPrice == 0 && report.MaxPrice == 0 {
		report.MinPrice = defaultReportMinPrice
		report.MaxPrice = defaultReportMaxPrice
	}
	if strings.TrimSpace(report.StreetName) == "" {
		report.StreetName = defaultReportStreetName
	}
	if report.MinBedrooms == 0 && report.MaxBedrooms == 0 {
		report.MinBedrooms = defaultReportMinBedrooms
		report.MaxBedrooms = defaultReportMaxBedrooms
	}
	if strings.TrimSpace(report.PropertyType) == "" {
		report.PropertyType = defaultReportPropertyType
	}
}

// canonicalizeEnvKey maps ENV_VAR_NAME onto a dotted koanf path that reuses the
// casing of the keys already loaded from YAML. It returns "" for variables that
// do not belong to a known top-level section or that would replace a whole
// section with a scalar, so the env provider skips them.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing
	section := false

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		matched, next, isMap, ok := findExistingSegment(current, segment)
		if !ok {
			if len(canonical) == 0 {
				return ""
			}
			canonical = append(canonical, segment)
			current = nil
			section = false

			continue
		}

		canonical = append(canonical, matched)
		current = next
		section = isMap
	}

	if len(canonical) == 0 || section {
		return ""
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, isMap, ok bool) {
	if len(current) == 0 {
		return "", nil, false, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, isSection := value.(map[string]any)

		return key, child, isSection, true
	}

	return "", nil, false, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
