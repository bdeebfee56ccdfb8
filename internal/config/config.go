// Package config loads server settings from defaults, environment variables,
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"net"
	"sort"
	"strconv"
	"strings"

	"life-web/internal/sim"
)

// EnvPrefix is prepended to upper-cased keys to form environment variable
// names, e.g. "log-dir" is read from GAME_OF_LIFE_LOG_DIR.
const EnvPrefix = "GAME_OF_LIFE_"

// Keys lists every setting understood by Apply, Bind and FromEnv.
var Keys = []string{
	"addr", "port", "debug", "log-dir",
	"min-size", "max-size",
	"min-velocity", "max-velocity", "velocity",
	"width", "height", "seed",
}

// Config holds the server settings.
type Config struct {
	Addr   string
	Port   int
	Debug  bool
	LogDir string

	MinSize     int
	MaxSize     int
	MinVelocity float64
	MaxVelocity float64
	Velocity    float64

	// Width and Height size the world created at startup.
	Width  int
	Height int
	Seed   int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Addr:        "0.0.0.0",
		Port:        3000,
		LogDir:      "logs",
		MinSize:     4,
		MaxSize:     30,
		MinVelocity: 0.1,
		MaxVelocity: 5,
		Velocity:    1,
		Width:       25,
		Height:      25,
	}
}

// FromMap populates a Config from a string map, starting from defaults.
func FromMap(m map[string]string) Config {
	c := DefaultConfig()
	c.Apply(m)
	return c
}

// Apply overrides fields from a string map and returns the keys whose values
// could not be parsed. Unknown keys and bad values are ignored.
func (c *Config) Apply(m map[string]string) []string {
	var rejected []string
	reject := func(k string) { rejected = append(rejected, k) }
	for k, v := range m {
		switch k {
		case "addr":
			c.Addr = v
		case "log-dir":
			c.LogDir = v
		case "port":
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				c.Port = parsed
			} else {
				reject(k)
			}
		case "debug":
			if parsed, err := strconv.ParseBool(v); err == nil {
				c.Debug = parsed
			} else {
				reject(k)
			}
		case "min-size", "max-size", "width", "height":
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed <= 0 {
				reject(k)
				continue
			}
			*c.intField(k) = parsed
		case "min-velocity", "max-velocity", "velocity":
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed <= 0 {
				reject(k)
				continue
			}
			*c.floatField(k) = parsed
		case "seed":
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				c.Seed = parsed
			} else {
				reject(k)
			}
		}
	}
	sort.Strings(rejected)
	return rejected
}

func (c *Config) intField(k string) *int {
	switch k {
	case "min-size":
		return &c.MinSize
	case "max-size":
		return &c.MaxSize
	case "width":
		return &c.Width
	default:
		return &c.Height
	}
}

func (c *Config) floatField(k string) *float64 {
	switch k {
	case "min-velocity":
		return &c.MinVelocity
	case "max-velocity":
		return &c.MaxVelocity
	default:
		return &c.Velocity
	}
}

// EnvName returns the environment variable that carries key.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// FromEnv collects the set environment variables into a map keyed like Apply.
func FromEnv(getenv func(string) string) map[string]string {
	m := map[string]string{}
	for _, k := range Keys {
		if v := getenv(EnvName(k)); v != "" {
			m[k] = v
		}
	}
	return m
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "address to listen on")
	fs.IntVar(&c.Port, "port", c.Port, "port to listen on")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.BoolVar(&c.Debug, "d", c.Debug, "shorthand for -debug")
	fs.StringVar(&c.LogDir, "log-dir", c.LogDir, "directory for the error log file (empty disables it)")
	fs.IntVar(&c.MinSize, "min-size", c.MinSize, "smallest accepted world width/height")
	fs.IntVar(&c.MaxSize, "max-size", c.MaxSize, "largest accepted world width/height")
	fs.Float64Var(&c.MinVelocity, "min-velocity", c.MinVelocity, "smallest accepted seconds per generation")
	fs.Float64Var(&c.MaxVelocity, "max-velocity", c.MaxVelocity, "largest accepted seconds per generation")
	fs.Float64Var(&c.Velocity, "velocity", c.Velocity, "default seconds per generation")
	fs.IntVar(&c.Width, "width", c.Width, "width of the world created at startup")
	fs.IntVar(&c.Height, "height", c.Height, "height of the world created at startup")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
}

// Load builds a Config from defaults, the environment and args. The returned
// slice names environment variables whose values were ignored. A -h or -help
// argument yields flag.ErrHelp after the usage text is printed.
func Load(args []string, getenv func(string) string) (Config, []string, error) {
	c := DefaultConfig()
	var ignored []string
	for _, k := range c.Apply(FromEnv(getenv)) {
		ignored = append(ignored, EnvName(k))
	}

	fs := flag.NewFlagSet("life-server", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return c, ignored, err
	}
	return c, ignored, c.Validate()
}

// Validate checks that ranges are ordered and the defaults fall inside them.
func (c Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.MinSize <= 0 || c.MinSize > c.MaxSize {
		errs = append(errs, fmt.Errorf("size range %d..%d is invalid", c.MinSize, c.MaxSize))
	}
	if !(c.MinVelocity > 0 && c.MinVelocity <= c.MaxVelocity && !math.IsInf(c.MaxVelocity, 0)) {
		errs = append(errs, fmt.Errorf("velocity range %g..%g is invalid", c.MinVelocity, c.MaxVelocity))
	}
	if !(c.Velocity >= c.MinVelocity && c.Velocity <= c.MaxVelocity) {
		errs = append(errs, fmt.Errorf("default velocity %g outside %g..%g", c.Velocity, c.MinVelocity, c.MaxVelocity))
	}
	if c.Width < c.MinSize || c.Width > c.MaxSize || c.Height < c.MinSize || c.Height > c.MaxSize {
		errs = append(errs, fmt.Errorf("initial world %dx%d outside %d..%d", c.Width, c.Height, c.MinSize, c.MaxSize))
	}
	return errors.Join(errs...)
}

// ListenAddr joins Addr and Port.
func (c Config) ListenAddr() string {
	return net.JoinHostPort(c.Addr, strconv.Itoa(c.Port))
}

// Sim returns the simulation settings derived from c.
func (c Config) Sim() sim.Config {
	return sim.Config{
		Limits: sim.Limits{
			MinSize:     c.MinSize,
			MaxSize:     c.MaxSize,
			MinVelocity: c.MinVelocity,
			MaxVelocity: c.MaxVelocity,
		},
		DefaultVelocity: c.Velocity,
		Seed:            c.Seed,
	}
}
