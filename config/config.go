// Package config loads and persists the button mapping configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goPadKeys/gamepad"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "gamepad_config.json"

	configKeyButtonMappings   = "button_mappings"
	configKeyTriggerThreshold = "trigger_threshold"
	configKeyPollingRate      = "polling_rate"
	configKeyAutoRestart      = "auto_restart"

	envPrefix = "PADKEYS"

	defaultTriggerThreshold = 0.5
	defaultPollingRate      = 60
	defaultAutoRestart      = true

	// maxPollingRate keeps the poll interval at a millisecond or more.
	maxPollingRate = 1000
)

var (
	// ErrMalformed marks a config file that exists but could not be parsed.
	ErrMalformed = errors.New("malformed config")

	// ErrWrite marks a config that could not be persisted.
	ErrWrite = errors.New("config not written")
)

// Config is the mapping configuration. It is loaded once at startup and
// not modified afterwards.
type Config struct {
	ButtonMappings   map[gamepad.Button]string
	TriggerThreshold float64
	PollingRate      int
	AutoRestart      bool
}

// fileConfig is the on-disk shape of Config.
type fileConfig struct {
	ButtonMappings   map[string]string `json:"button_mappings" yaml:"button_mappings"`
	TriggerThreshold float64           `json:"trigger_threshold" yaml:"trigger_threshold"`
	PollingRate      int               `json:"polling_rate" yaml:"polling_rate"`
	AutoRestart      bool              `json:"auto_restart" yaml:"auto_restart"`
}

// DefaultMappings returns the built-in button mappings.
func DefaultMappings() map[gamepad.Button]string {
	return map[gamepad.Button]string{
		gamepad.ButtonA:            "space",
		gamepad.ButtonB:            "escape",
		gamepad.ButtonX:            "return",
		gamepad.ButtonY:            "tab",
		gamepad.ButtonStart:        "f11",
		gamepad.ButtonSelect:       "f12",
		gamepad.ButtonLeftTrigger:  "ctrl",
		gamepad.ButtonRightTrigger: "shift",
		gamepad.ButtonDpadUp:       "up",
		gamepad.ButtonDpadDown:     "down",
		gamepad.ButtonDpadLeft:     "left",
		gamepad.ButtonDpadRight:    "right",
	}
}

// Default returns a fully-populated Config with defaults.
func Default() Config {
	return Config{
		ButtonMappings:   DefaultMappings(),
		TriggerThreshold: defaultTriggerThreshold,
		PollingRate:      defaultPollingRate,
		AutoRestart:      defaultAutoRestart,
	}
}

// PollInterval is the pause between two polls of the device.
func (c Config) PollInterval() time.Duration {
	if c.PollingRate <= 0 || c.PollingRate > maxPollingRate {
		return time.Second / defaultPollingRate
	}
	return time.Second / time.Duration(c.PollingRate)
}

// Load reads the config at path. A missing file is replaced by the
// defaults, which are written back. Load always returns a usable config;
// a non-nil error wraps ErrMalformed or ErrWrite and is meant to be
// reported, not treated as fatal.
func Load(path string, logger *zap.SugaredLogger) (Config, error) {
	logger = logger.Named("config")

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logger.Infow("Config file not found, writing defaults", "path", path)
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		logger.Warnw("Failed to read config", "path", path, "error", err)
		cfg := Default()
		cfg.ButtonMappings = map[gamepad.Button]string{}
		return cfg, fmt.Errorf("%w: read %s: %v", ErrMalformed, path, err)
	}

	cfg := populate(v, logger)
	logger.Infow("Loaded config",
		"path", path,
		"mappings", len(cfg.ButtonMappings),
		"triggerThreshold", cfg.TriggerThreshold,
		"pollingRate", cfg.PollingRate,
		"autoRestart", cfg.AutoRestart)
	return cfg, nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(configType(path))

	v.SetDefault(configKeyTriggerThreshold, defaultTriggerThreshold)
	v.SetDefault(configKeyPollingRate, defaultPollingRate)
	v.SetDefault(configKeyAutoRestart, defaultAutoRestart)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

func populate(v *viper.Viper, logger *zap.SugaredLogger) Config {
	cfg := Default()

	// viper folds keys to lower case; button names are matched case-insensitively.
	if v.IsSet(configKeyButtonMappings) {
		raw := v.GetStringMapString(configKeyButtonMappings)
		cfg.ButtonMappings = make(map[gamepad.Button]string, len(raw))
		for name, action := range raw {
			b, ok := gamepad.ParseButton(name)
			if !ok {
				logger.Warnw("Unknown button in mapping, ignoring", "button", name, "action", action)
				continue
			}
			cfg.ButtonMappings[b] = action
		}
	}

	cfg.TriggerThreshold = v.GetFloat64(configKeyTriggerThreshold)
	if cfg.TriggerThreshold <= 0 || cfg.TriggerThreshold > 1 {
		logger.Warnw("Invalid trigger threshold specified, using default value",
			"key", configKeyTriggerThreshold,
			"invalidValue", cfg.TriggerThreshold,
			"defaultValue", defaultTriggerThreshold)
		cfg.TriggerThreshold = defaultTriggerThreshold
	}

	cfg.PollingRate = v.GetInt(configKeyPollingRate)
	if cfg.PollingRate <= 0 || cfg.PollingRate > maxPollingRate {
		logger.Warnw("Invalid polling rate specified, using default value",
			"key", configKeyPollingRate,
			"invalidValue", cfg.PollingRate,
			"defaultValue", defaultPollingRate)
		cfg.PollingRate = defaultPollingRate
	}

	cfg.AutoRestart = v.GetBool(configKeyAutoRestart)

	return cfg
}

// Save writes cfg to path, as YAML for .yaml/.yml files and JSON otherwise.
func Save(path string, cfg Config) error {
	doc := fileConfig{
		ButtonMappings:   make(map[string]string, len(cfg.ButtonMappings)),
		TriggerThreshold: cfg.TriggerThreshold,
		PollingRate:      cfg.PollingRate,
		AutoRestart:      cfg.AutoRestart,
	}
	for b, action := range cfg.ButtonMappings {
		doc.ButtonMappings[string(b)] = action
	}

	var (
		b   []byte
		err error
	)
	if configType(path) == "yaml" {
		b, err = yaml.Marshal(doc)
	} else {
		b, err = json.MarshalIndent(doc, "", "  ")
		b = append(b, '\n')
	}
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrWrite, err)
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
