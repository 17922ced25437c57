package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/marcus/dropdown/pkg/dropdown"
)

const configFile = ".dropdown/config.json"

// EnvPrefix prefixes environment overrides, e.g. DROPDOWN_PLACEMENT or
// DROPDOWN_TYPEAHEAD_TIMEOUT.
const EnvPrefix = "DROPDOWN"

// ErrUnknownKey is returned by Set for keys outside Keys().
var ErrUnknownKey = errors.New("unknown config key")

// Config holds the defaults applied to dropdowns created by the CLI.
type Config struct {
	Placement      string          `mapstructure:"placement"`
	Trigger        string          `mapstructure:"trigger"`
	Inline         bool            `mapstructure:"inline"`
	ArrowIcon      bool            `mapstructure:"arrow_icon"`
	DismissOnClick bool            `mapstructure:"dismiss_on_click"`
	MaxVisible     int             `mapstructure:"max_visible"`
	Typeahead      TypeaheadConfig `mapstructure:"typeahead"`
	Log            LogConfig       `mapstructure:"log"`
}

// TypeaheadConfig holds typeahead settings.
type TypeaheadConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Fuzzy   bool          `mapstructure:"fuzzy"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Placement:      "",
		Trigger:        string(dropdown.TriggerClick),
		ArrowIcon:      true,
		DismissOnClick: true,
		MaxVisible:     10,
		Typeahead:      TypeaheadConfig{Timeout: dropdown.DefaultTypeaheadTimeout},
		Log:            LogConfig{Level: "info"},
	}
}

// Keys lists every settable key.
func Keys() []string {
	return []string{
		"placement",
		"trigger",
		"inline",
		"arrow_icon",
		"dismiss_on_click",
		"max_visible",
		"typeahead.timeout",
		"typeahead.fuzzy",
		"log.level",
		"log.file",
	}
}

// Path returns the config file location under baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("placement", d.Placement)
	v.SetDefault("trigger", d.Trigger)
	v.SetDefault("inline", d.Inline)
	v.SetDefault("arrow_icon", d.ArrowIcon)
	v.SetDefault("dismiss_on_click", d.DismissOnClick)
	v.SetDefault("max_visible", d.MaxVisible)
	v.SetDefault("typeahead.timeout", d.Typeahead.Timeout.String())
	v.SetDefault("typeahead.fuzzy", d.Typeahead.Fuzzy)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// Load reads the config file under baseDir, if any, and applies
// environment overrides on top of the defaults.
func Load(baseDir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := Path(baseDir)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the enumerated and numeric settings.
func (c Config) Validate() error {
	if c.Placement != "" {
		if _, err := dropdown.ParsePlacement(c.Placement); err != nil {
			return fmt.Errorf("config placement: %w", err)
		}
	}
	if _, err := dropdown.ParseTriggerMode(c.Trigger); err != nil {
		return fmt.Errorf("config trigger: %w", err)
	}
	if c.MaxVisible < 0 {
		return fmt.Errorf("config max_visible: must be >= 0, got %d", c.MaxVisible)
	}
	if c.Typeahead.Timeout < 0 {
		return fmt.Errorf("config typeahead.timeout: must be >= 0, got %s", c.Typeahead.Timeout)
	}
	return nil
}

// Save writes cfg to the config file under baseDir.
func Save(baseDir string, cfg Config) error {
	path := Path(baseDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("placement", cfg.Placement)
	v.Set("trigger", cfg.Trigger)
	v.Set("inline", cfg.Inline)
	v.Set("arrow_icon", cfg.ArrowIcon)
	v.Set("dismiss_on_click", cfg.DismissOnClick)
	v.Set("max_visible", cfg.MaxVisible)
	v.Set("typeahead.timeout", cfg.Typeahead.Timeout.String())
	v.Set("typeahead.fuzzy", cfg.Typeahead.Fuzzy)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Set parses value for key and stores it in the config file under baseDir.
// Environment overrides are not written back.
func Set(baseDir, key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	cfg, err := loadFile(baseDir)
	if err != nil {
		return err
	}

	switch key {
	case "placement":
		cfg.Placement = value
	case "trigger":
		cfg.Trigger = value
	case "inline":
		cfg.Inline, err = strconv.ParseBool(value)
	case "arrow_icon":
		cfg.ArrowIcon, err = strconv.ParseBool(value)
	case "dismiss_on_click":
		cfg.DismissOnClick, err = strconv.ParseBool(value)
	case "max_visible":
		cfg.MaxVisible, err = strconv.Atoi(value)
	case "typeahead.timeout":
		cfg.Typeahead.Timeout, err = time.ParseDuration(value)
	case "typeahead.fuzzy":
		cfg.Typeahead.Fuzzy, err = strconv.ParseBool(value)
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	}
	if err != nil {
		return fmt.Errorf("config %s: %w", key, err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return Save(baseDir, cfg)
}

// loadFile reads defaults plus the config file, ignoring the environment.
func loadFile(baseDir string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("json")

	path := Path(baseDir)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Options converts the config into dropdown options.
func (c Config) Options() []dropdown.Option {
	var opts []dropdown.Option
	if c.Placement != "" {
		if p, err := dropdown.ParsePlacement(c.Placement); err == nil {
			opts = append(opts, dropdown.WithPlacement(p))
		}
	}
	if mode, err := dropdown.ParseTriggerMode(c.Trigger); err == nil {
		opts = append(opts, dropdown.WithTrigger(mode))
	}
	return append(opts,
		dropdown.WithInline(c.Inline),
		dropdown.WithArrowIcon(c.ArrowIcon),
		dropdown.WithDismissOnClick(c.DismissOnClick),
		dropdown.WithMaxVisible(c.MaxVisible),
		dropdown.WithTypeaheadTimeout(c.Typeahead.Timeout),
		dropdown.WithFuzzyTypeahead(c.Typeahead.Fuzzy),
	)
}
