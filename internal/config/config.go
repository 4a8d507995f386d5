// Package config assembles runtime settings from, in increasing priority:
// built-in defaults, an optional YAML file, the environment (including a
// .env file) and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const envPrefix = "MINESWEEPER_"

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the application's settings.
type Config struct {
	Width    int     `yaml:"width"`     // 0 asks the player
	Height   int     `yaml:"height"`    // 0 asks the player
	Density  float64 `yaml:"density"`   // share of cells holding a mine
	Seed     int64   `yaml:"seed"`      // 0 seeds from the clock
	LogLevel string  `yaml:"log_level"` // logrus level name
	LogFile  string  `yaml:"log_file"`  // empty logs to stderr
	Color    string  `yaml:"color"`     // auto, always or never
}

func Default() Config {
	return Config{
		Density:  0.2,
		LogLevel: "warn",
		Color:    ColorAuto,
	}
}

// Load parses args (without the program name). envFiles default to ".env";
// a missing env file is not an error.
func Load(args []string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()
	var (
		path  string
		flags Config
	)
	set := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	set.StringVar(&path, "config", os.Getenv(envPrefix+"CONFIG"), "YAML config file")
	set.IntVar(&flags.Width, "width", 0, "board width, 5-50 (0 asks)")
	set.IntVar(&flags.Height, "height", 0, "board height, 5-50 (0 asks)")
	set.Float64Var(&flags.Density, "density", cfg.Density, "share of cells holding a mine")
	set.Int64Var(&flags.Seed, "seed", 0, "random seed (0 = time based)")
	set.StringVar(&flags.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	set.StringVar(&flags.LogFile, "log-file", "", "write logs to this file instead of stderr")
	set.StringVar(&flags.Color, "color", cfg.Color, "auto|always|never")
	if err := set.Parse(args); err != nil {
		return Config{}, err
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	set.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = flags.Width
		case "height":
			cfg.Height = flags.Height
		case "density":
			cfg.Density = flags.Density
		case "seed":
			cfg.Seed = flags.Seed
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		case "log-file":
			cfg.LogFile = flags.LogFile
		case "color":
			cfg.Color = flags.Color
		}
	})
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	var err error
	if v, ok := lookup("WIDTH"); ok {
		if c.Width, err = strconv.Atoi(v); err != nil {
			return envError("WIDTH", err)
		}
	}
	if v, ok := lookup("HEIGHT"); ok {
		if c.Height, err = strconv.Atoi(v); err != nil {
			return envError("HEIGHT", err)
		}
	}
	if v, ok := lookup("DENSITY"); ok {
		if c.Density, err = strconv.ParseFloat(v, 64); err != nil {
			return envError("DENSITY", err)
		}
	}
	if v, ok := lookup("SEED"); ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return envError("SEED", err)
		}
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := lookup("COLOR"); ok {
		c.Color = v
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	return strings.TrimSpace(v), ok
}

func envError(key string, err error) error {
	return fmt.Errorf("environment variable %s%s: %w", envPrefix, key, err)
}

// Validate checks values that do not depend on the game rules; board
// dimensions are range-checked when the round is created.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("negative board size %dx%d", c.Width, c.Height)
	}
	if c.Density < 0 || c.Density >= 1 {
		return fmt.Errorf("density %.2f outside [0,1)", c.Density)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	return nil
}
