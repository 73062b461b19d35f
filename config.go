package celestial

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigEnv names the environment variable holding the configuration directory.
	ConfigEnv = "CELESTIAL_CONFIG"
	envPrefix = "CELESTIAL"
)

// Config is the run configuration, read from `conf.toml`.
type Config struct {
	Latitude, Longitude float64 // observer, in degrees (east positive)
	UTCOffset           int     // observer clock offset in seconds
	MinElevation        float64 // observer elevation mask, in degrees
	Tolerance           float64 // Kepler solver absolute tolerance
	MaxIterations       int     // Kepler solver iteration cap
	CatalogPath         string
	OutputDir           string
	MetricsFile         string
	LogLevel            string
}

// NewViper returns a viper instance with the defaults set and environment
// overrides enabled (e.g. CELESTIAL_OBSERVER_LATITUDE).
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("observer.latitude", 0.0)
	v.SetDefault("observer.longitude", 0.0)
	v.SetDefault("observer.utc_offset", 0)
	v.SetDefault("observer.min_elevation", 0.0)
	v.SetDefault("solver.tolerance", DefaultTolerance)
	v.SetDefault("solver.max_iterations", DefaultMaxIterations)
	v.SetDefault("catalog.path", "")
	v.SetDefault("general.output_path", ".")
	v.SetDefault("general.metrics_file", "")
	v.SetDefault("log.level", "info")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadConfigInto reads the configuration at path into v. If path is a
// directory, `conf.toml` is looked up in it.
func ReadConfigInto(v *viper.Viper, path string) error {
	if info, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "configuration not found")
	} else if info.IsDir() {
		v.SetConfigName("conf")
		v.SetConfigType("toml")
		v.AddConfigPath(path)
	} else {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "could not read %s", filepath.Clean(path))
	}
	return nil
}

// ConfigFrom extracts and validates the configuration held by v.
func ConfigFrom(v *viper.Viper) (Config, error) {
	c := Config{
		Latitude:      v.GetFloat64("observer.latitude"),
		Longitude:     v.GetFloat64("observer.longitude"),
		UTCOffset:     v.GetInt("observer.utc_offset"),
		MinElevation:  v.GetFloat64("observer.min_elevation"),
		Tolerance:     v.GetFloat64("solver.tolerance"),
		MaxIterations: v.GetInt("solver.max_iterations"),
		CatalogPath:   v.GetString("catalog.path"),
		OutputDir:     v.GetString("general.output_path"),
		MetricsFile:   v.GetString("general.metrics_file"),
		LogLevel:      strings.ToLower(v.GetString("log.level")),
	}
	return c, c.Validate()
}

// Validate checks the ranges of the configuration.
func (c Config) Validate() error {
	if !(c.Tolerance > 0) {
		return errors.Errorf("solver.tolerance must be positive (got %g)", c.Tolerance)
	}
	if c.MaxIterations <= 0 {
		return errors.Errorf("solver.max_iterations must be positive (got %d)", c.MaxIterations)
	}
	if math.Abs(c.Latitude) > 90 {
		return errors.Errorf("observer.latitude must be within [-90, 90] (got %g)", c.Latitude)
	}
	if math.Abs(c.MinElevation) > 90 {
		return errors.Errorf("observer.min_elevation must be within [-90, 90] (got %g)", c.MinElevation)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log.level `%s`", c.LogLevel)
	}
	return nil
}

// LoadConfig loads the configuration at path, or only the defaults and
// environment overrides if path is empty.
func LoadConfig(path string) (Config, error) {
	v := NewViper()
	if path != "" {
		if err := ReadConfigInto(v, path); err != nil {
			return Config{}, err
		}
	}
	return ConfigFrom(v)
}

// ConfigFromEnv loads the configuration from the directory in CELESTIAL_CONFIG.
func ConfigFromEnv() (Config, error) {
	return LoadConfig(os.Getenv(ConfigEnv))
}
