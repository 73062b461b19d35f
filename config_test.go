package celestial

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	conf, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if conf.Tolerance != DefaultTolerance || conf.MaxIterations != DefaultMaxIterations {
		t.Fatalf("unexpected solver settings %+v", conf)
	}
	if conf.LogLevel != "info" || conf.OutputDir != "." || conf.Latitude != 0 {
		t.Fatalf("unexpected defaults %+v", conf)
	}
}

func TestConfigFromDirectory(t *testing.T) {
	dir := t.TempDir()
	toml := `[observer]
latitude = 60.17
longitude = 24.94
utc_offset = 7200

[solver]
tolerance = 1e-10
max_iterations = 30

[catalog]
path = "stars.csv"

[log]
level = "DEBUG"
`
	if err := os.WriteFile(filepath.Join(dir, "conf.toml"), []byte(toml), 0644); err != nil {
		t.Fatal(err)
	}
	conf, err := LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Latitude != 60.17 || conf.Longitude != 24.94 || conf.UTCOffset != 7200 {
		t.Fatalf("observer not read: %+v", conf)
	}
	if conf.Tolerance != 1e-10 || conf.MaxIterations != 30 {
		t.Fatalf("solver not read: %+v", conf)
	}
	if conf.CatalogPath != "stars.csv" || conf.LogLevel != "debug" {
		t.Fatalf("unexpected %+v", conf)
	}
	t.Setenv(ConfigEnv, dir)
	if envConf, err := ConfigFromEnv(); err != nil || envConf != conf {
		t.Fatalf("environment configuration differs: %+v (%v)", envConf, err)
	}
}

func TestConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "observer.toml")
	if err := os.WriteFile(path, []byte("[observer]\nlatitude = -33.9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	conf, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Latitude != -33.9 {
		t.Fatalf("latitude = %f", conf.Latitude)
	}
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("CELESTIAL_OBSERVER_LATITUDE", "45.5")
	t.Setenv("CELESTIAL_SOLVER_MAX_ITERATIONS", "7")
	conf, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if conf.Latitude != 45.5 || conf.MaxIterations != 7 {
		t.Fatalf("environment not used: %+v", conf)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{Tolerance: 1e-9, MaxIterations: 20, LogLevel: "warn", Latitude: -90}
	if err := valid.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, mod := range []func(*Config){
		func(c *Config) { c.Tolerance = 0 },
		func(c *Config) { c.MaxIterations = -1 },
		func(c *Config) { c.Latitude = 95 },
		func(c *Config) { c.LogLevel = "verbose" },
	} {
		c := valid
		mod(&c)
		if err := c.Validate(); err == nil {
			t.Fatalf("expected an error for %+v", c)
		}
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error for a missing configuration")
	}
}
