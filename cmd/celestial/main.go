package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vsr83/celestial"
)

var cfgPath string

// session is what every command needs once the configuration is loaded.
type session struct {
	conf     celestial.Config
	logger   kitlog.Logger
	registry *prometheus.Registry
	eph      *celestial.Ephemeris
	jt       celestial.JulianTime
}

func main() {
	v := celestial.NewViper()
	if err := rootCmd(v).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "celestial",
		Short:         "Apparent positions of planets and stars",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&cfgPath, "config", os.Getenv(celestial.ConfigEnv), "configuration file, or directory holding conf.toml")
	flags.String("time", "", "observation time (RFC3339), defaults to now")
	flags.Int("utc-offset", 0, "observer clock offset from UTC in seconds")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("metrics-file", "", "write solver metrics to this file (Prometheus text format)")
	bindFlags(v, flags, map[string]string{
		"time":                 "time",
		"observer.utc_offset":  "utc-offset",
		"log.level":            "log-level",
		"general.metrics_file": "metrics-file",
	})
	root.AddCommand(planetsCmd(v), starsCmd(v))
	return root
}

func planetsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planets",
		Short: "Heliocentric ecliptic coordinates of the planets",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(v)
			if err != nil {
				return err
			}
			bodies, err := selectBodies(v.GetString("bodies"))
			if err != nil {
				return err
			}
			positions := s.eph.Bodies(bodies, s.jt.JT)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Julian Time     : %f\n", s.jt.JT)
			if v.GetBool("csv") {
				err = celestial.WriteBodyCSV(out, positions)
			} else {
				err = celestial.WriteBodyReport(out, positions)
			}
			if err != nil {
				return err
			}
			return s.close()
		},
	}
	cmd.Flags().String("bodies", "", "comma separated list of planets (default all)")
	cmd.Flags().Bool("csv", false, "write CSV instead of the text report")
	bindFlags(v, cmd.Flags(), map[string]string{
		"bodies": "bodies",
		"csv":    "csv",
	})
	return cmd
}

func starsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stars",
		Short: "Azimuth and altitude of catalog stars for the observer",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(v)
			if err != nil {
				return err
			}
			if s.conf.CatalogPath == "" {
				return fmt.Errorf("no star catalog set (use --catalog or catalog.path)")
			}
			stars, err := celestial.LoadStarCatalog(s.conf.CatalogPath)
			if err != nil {
				return err
			}
			obs := celestial.ObserverFromConfig(s.conf)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Julian Time     : %f\n", s.jt.JT)
			fmt.Fprintf(out, "Sidereal Time   : %f\n", obs.LocalSiderealTime(s.jt).Deg())
			positions := s.eph.Observe(obs, stars, s.jt)
			if v.GetBool("visible") {
				visible := positions[:0]
				for _, sp := range positions {
					if sp.Visible {
						visible = append(visible, sp)
					}
				}
				positions = visible
			}
			if err := celestial.WriteStarReport(out, positions); err != nil {
				return err
			}
			return s.close()
		},
	}
	cmd.Flags().String("catalog", "", "star catalog CSV")
	cmd.Flags().Float64("latitude", 0, "observer latitude in degrees")
	cmd.Flags().Float64("longitude", 0, "observer east longitude in degrees")
	cmd.Flags().Float64("min-elevation", 0, "elevation mask in degrees")
	cmd.Flags().Bool("visible", false, "only list the stars above the elevation mask")
	bindFlags(v, cmd.Flags(), map[string]string{
		"catalog.path":           "catalog",
		"observer.latitude":      "latitude",
		"observer.longitude":     "longitude",
		"observer.min_elevation": "min-elevation",
		"visible":                "visible",
	})
	return cmd
}

// bindFlags binds each viper key to the named flag. A missing flag is a
// programming error.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("could not bind %s to --%s: %s", key, name, err))
		}
	}
}

func newSession(v *viper.Viper) (*session, error) {
	if cfgPath != "" {
		if err := celestial.ReadConfigInto(v, cfgPath); err != nil {
			return nil, err
		}
	}
	conf, err := celestial.ConfigFrom(v)
	if err != nil {
		return nil, err
	}
	logger := celestial.NewLogger(os.Stderr, conf.LogLevel)
	registry := prometheus.NewRegistry()
	metrics, err := celestial.NewMetrics(registry, conf.MaxIterations)
	if err != nil {
		return nil, err
	}
	jt, err := observationTime(v.GetString("time"), conf.UTCOffset)
	if err != nil {
		return nil, err
	}
	level.Info(logger).Log("msg", "configuration loaded", "config", cfgPath, "jt", jt.JT, "utc", jt.UTC.Format(time.RFC3339))
	eph := celestial.NewEphemeris(
		celestial.WithLogger(logger),
		celestial.WithMetrics(metrics),
		celestial.WithSolver(conf.Tolerance, conf.MaxIterations),
	)
	return &session{conf, logger, registry, eph, jt}, nil
}

// observationTime parses an RFC3339 time; without a zone the time is read on
// the observer clock. An empty string means now.
func observationTime(s string, utcOffset int) (celestial.JulianTime, error) {
	if s == "" {
		return celestial.NewJulianTime(time.Now()), nil
	}
	if dt, err := time.Parse(time.RFC3339, s); err == nil {
		return celestial.NewJulianTime(dt), nil
	}
	dt, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return celestial.JulianTime{}, fmt.Errorf("could not understand time `%s`: %s", s, err)
	}
	return celestial.NewJulianTimeFromLocal(dt.Year(), dt.Month(), dt.Day(), dt.Hour(), dt.Minute(), dt.Second(), utcOffset), nil
}

func selectBodies(list string) ([]celestial.CelestialObject, error) {
	if strings.TrimSpace(list) == "" {
		return celestial.Planets(), nil
	}
	var bodies []celestial.CelestialObject
	for _, name := range strings.Split(list, ",") {
		obj, err := celestial.CelestialObjectFromString(name)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, obj)
	}
	return bodies, nil
}

func (s *session) close() error {
	if s.conf.MetricsFile == "" {
		return nil
	}
	path := s.conf.MetricsFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.conf.OutputDir, path)
	}
	if err := prometheus.WriteToTextfile(path, s.registry); err != nil {
		return fmt.Errorf("could not write metrics: %s", err)
	}
	level.Info(s.logger).Log("msg", "metrics written", "file", path)
	return nil
}
