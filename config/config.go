// Package config resolves host settings from defaults, an optional TOML file,
// ARENA_ environment variables and command-line flags, in rising precedence
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/input"
	"github.com/lixenwraith/storm-arena/parameter"
)

const (
	// FileName is the config file base name searched for without --config
	FileName = "storm-arena"

	// EnvPrefix namespaces environment overrides, e.g. ARENA_BOTS, ARENA_MAP_WIDTH
	EnvPrefix = "ARENA"

	DefaultLogFile = "logs/storm-arena.log"
	DefaultEnvFile = ".env"
)

// Size is a width/height pair in world units
type Size struct {
	Width  float64 `mapstructure:"width" json:"width" jsonschema:"exclusiveMinimum=0,description=Horizontal extent in world units"`
	Height float64 `mapstructure:"height" json:"height" jsonschema:"exclusiveMinimum=0,description=Vertical extent in world units"`
}

// Config is the resolved host configuration
type Config struct {
	Bots    int     `mapstructure:"bots" json:"bots" jsonschema:"minimum=0,description=Bots spawned at every match start"`
	Seed    uint64  `mapstructure:"seed" json:"seed" jsonschema:"description=Random seed; 0 derives one from the clock"`
	MaxStep float64 `mapstructure:"max_step" json:"max_step" jsonschema:"exclusiveMinimum=0,maximum=1,description=Largest simulated step per tick in seconds"`
	FPS     int     `mapstructure:"fps" json:"fps" jsonschema:"minimum=1,maximum=240,description=Host frame rate"`
	Debug   bool    `mapstructure:"debug" json:"debug" jsonschema:"description=Write debug logs to log_file"`
	LogFile string  `mapstructure:"log_file" json:"log_file" jsonschema:"description=Debug log path"`

	Map  Size `mapstructure:"map" json:"map" jsonschema:"description=Arena size"`
	View Size `mapstructure:"view" json:"view" jsonschema:"description=Viewport size in world units"`

	// Keys overrides default bindings, key name -> action name ("none" unbinds)
	Keys map[string]string `mapstructure:"keys" json:"keys,omitempty" jsonschema:"description=Key binding overrides from key name to action name; none unbinds"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Bots:    parameter.BotCount,
		MaxStep: parameter.MaxStep,
		FPS:     parameter.FrameRate,
		LogFile: DefaultLogFile,
		Map:     Size{Width: parameter.MapWidth, Height: parameter.MapHeight},
		View:    Size{Width: parameter.ViewWidth, Height: parameter.ViewHeight},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("bots", d.Bots)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("max_step", d.MaxStep)
	v.SetDefault("fps", d.FPS)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("map.width", d.Map.Width)
	v.SetDefault("map.height", d.Map.Height)
	v.SetDefault("view.width", d.View.Width)
	v.SetDefault("view.height", d.View.Height)
}

// flagKeys maps command-line flag names to config keys
var flagKeys = map[string]string{
	"bots":     "bots",
	"seed":     "seed",
	"max-step": "max_step",
	"fps":      "fps",
	"debug":    "debug",
	"log-file": "log_file",
}

func newFlagSet(name string) *pflag.FlagSet {
	d := Default()
	set := pflag.NewFlagSet(name, pflag.ContinueOnError)
	set.String("config", "", "path to a TOML config file")
	set.String("env-file", DefaultEnvFile, "dotenv file loaded before reading the environment")
	set.Int("bots", d.Bots, "bots spawned per match")
	set.Uint64("seed", d.Seed, "random seed, 0 for time-based")
	set.Float64("max-step", d.MaxStep, "largest simulated step in seconds")
	set.Int("fps", d.FPS, "frame rate")
	set.Bool("debug", d.Debug, "enable debug logging")
	set.String("log-file", d.LogFile, "debug log path")
	return set
}

// Load resolves configuration from args (without the program name)
// Precedence: flags > environment (.env included) > config file > defaults
func Load(args []string) (*Config, error) {
	flags := newFlagSet(FileName)
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	envFile, _ := flags.GetString("env-file")
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	for flagName, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(flagName)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flagName, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, _ := flags.GetString("config")
	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFile populates the process environment from a dotenv file
// A missing file is not an error; existing variables are never overwritten
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// readConfigFile reads an explicit path, or searches the default locations
// Only an explicitly named file is required to exist
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/" + FileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	var errs []error
	if c.Bots < 0 {
		errs = append(errs, fmt.Errorf("bots must be >= 0, got %d", c.Bots))
	}
	if c.MaxStep <= 0 || c.MaxStep > 1 {
		errs = append(errs, fmt.Errorf("max_step must be in (0,1], got %g", c.MaxStep))
	}
	if c.FPS < 1 || c.FPS > 240 {
		errs = append(errs, fmt.Errorf("fps must be in [1,240], got %d", c.FPS))
	}

	// Spawning draws from the map inset by the spawn margin on each side
	minMap := 2 * parameter.BotSpawnMargin
	if c.Map.Width <= minMap || c.Map.Height <= minMap {
		errs = append(errs, fmt.Errorf("map must exceed %gx%g, got %gx%g", minMap, minMap, c.Map.Width, c.Map.Height))
	}
	if c.View.Width <= 0 || c.View.Height <= 0 {
		errs = append(errs, fmt.Errorf("view must be positive, got %gx%g", c.View.Width, c.View.Height))
	}
	if c.Debug && c.LogFile == "" {
		errs = append(errs, errors.New("log_file is required with debug"))
	}
	if _, err := input.ParseKeyBindings(c.Keys); err != nil {
		errs = append(errs, fmt.Errorf("keys: %w", err))
	}
	return errors.Join(errs...)
}

// KeyTable returns the default bindings with the configured overrides applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.ParseKeyBindings(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

// WorldConfig converts the host settings into simulation settings
func (c *Config) WorldConfig() engine.WorldConfig {
	return engine.WorldConfig{
		Width:      c.Map.Width,
		Height:     c.Map.Height,
		ViewWidth:  c.View.Width,
		ViewHeight: c.View.Height,
		BotCount:   c.Bots,
		MaxStep:    c.MaxStep,
	}
}
