package glidescore

import (
	"fmt"
	"os"
	"sync"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

// Default tunables, per spec.md §3 ("L = 6 (default), legacy
// configurations use 7") and §4.5 ("H = 1000 m").
const (
	DefaultLegs        = 6
	LegacyLegs         = 7
	DefaultHeightLimit = 1000.0 // metres
	// DefaultMaxFixes is the N_max memory ceiling suggested in spec.md
	// §9. DistanceMatrix is a full N×N mat64.Dense of float64 (spec.md
	// §4.2 trades memory for the DP's contiguous row access), so at
	// N=30000 it alone is already ~7.2GB, twice the float32 figure
	// spec.md's illustration quotes for the same N.
	DefaultMaxFixes = 30000
	// EarthRadiusKm is R from the GLOSSARY's haversine definition.
	EarthRadiusKm = 6371.0
)

// Config governs a Scorer: leg count, altitude threshold, the memory
// ceiling on fix count, and the logger used for diagnostics. Zero
// value is not ready to use; build one with NewConfig or
// DefaultConfig.
type Config struct {
	Legs        int
	HeightLimit float64
	MaxFixes    int
	Logger      kitlog.Logger
}

// Option configures a Config constructed by NewConfig.
type Option func(*Config)

// WithLegs overrides the leg count.
func WithLegs(legs int) Option {
	return func(c *Config) { c.Legs = legs }
}

// WithHeightLimit overrides the altitude-difference threshold in metres.
func WithHeightLimit(h float64) Option {
	return func(c *Config) { c.HeightLimit = h }
}

// WithMaxFixes overrides the memory-ceiling guard.
func WithMaxFixes(n int) Option {
	return func(c *Config) { c.MaxFixes = n }
}

// WithLogger overrides the logger; nil disables logging.
func WithLogger(l kitlog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// NewConfig builds a Config from DefaultConfig() with the given options applied.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// DefaultConfig returns the spec-mandated defaults: 6 legs, a 1000m
// height limit, and a logger that writes to stderr.
func DefaultConfig() Config {
	return Config{
		Legs:        DefaultLegs,
		HeightLimit: DefaultHeightLimit,
		MaxFixes:    DefaultMaxFixes,
		Logger:      kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr)),
	}
}

// LegacyConfig returns a Config matching the original scorer's
// default of 7 legs (spec.md §9's open question references a second
// revision that used a different layer count).
func LegacyConfig() Config {
	c := DefaultConfig()
	c.Legs = LegacyLegs
	return c
}

var (
	envConfigOnce sync.Once
	envConfig     Config
)

// ConfigFromEnvironment loads overrides for Legs/HeightLimit/MaxFixes
// from a config file named by the GLIDESCORE_CONFIG environment
// variable (a directory containing a "glidescore.{yaml,toml,json,...}"
// file, resolved by viper), falling back to DefaultConfig when the
// variable is unset (silently) or the file can't be read (after
// printing a one-line note to stderr). Unlike the
// teacher's smdConfig(), this never panics: a missing config is a
// perfectly normal way to run this library.
func ConfigFromEnvironment() Config {
	envConfigOnce.Do(func() {
		envConfig = DefaultConfig()

		confDir := os.Getenv("GLIDESCORE_CONFIG")
		if confDir == "" {
			return
		}

		v := viper.New()
		v.SetConfigName("glidescore")
		v.AddConfigPath(confDir)
		v.SetDefault("legs", DefaultLegs)
		v.SetDefault("height_limit", DefaultHeightLimit)
		v.SetDefault("max_fixes", DefaultMaxFixes)

		if err := v.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "glidescore: %s/glidescore.* not found, using defaults: %s\n", confDir, err)
			return
		}

		envConfig.Legs = v.GetInt("legs")
		envConfig.HeightLimit = v.GetFloat64("height_limit")
		envConfig.MaxFixes = v.GetInt("max_fixes")
	})
	return envConfig
}

// logger returns a non-nil logger, substituting a no-op when the
// Config was built without one.
func (c Config) logger() kitlog.Logger {
	if c.Logger == nil {
		return kitlog.NewNopLogger()
	}
	return c.Logger
}
