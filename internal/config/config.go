package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// this is a pointer so that if someone attempts to use it before loading it will
// panic and force them to load it first.
// it is also private so that it cannot be modified after loading.
var _loaded *Config

// Config is the main configuration structure
type Config struct {
	Common Common `yaml:"common"`
}

// Load loads the configuration following proper precedence: defaults → config file → environment variables
func Load() {
	// Start with defaults
	_loaded = &defaultConfig

	// Try to load from config file and merge over defaults
	configFile := os.Getenv("USERD_CONFIG_FILE")
	if configFile == "" {
		configFile = "userd.yaml"
	}

	if err := LoadFromFile(configFile); err != nil {
		log.Printf("Failed to load config file: %v, using defaults", err)
	}

	// Apply environment variable overrides (highest priority)
	ApplyEnvOverrides()
}

func LoadDefault() {
	config := defaultConfig
	_loaded = &config
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := defaultConfig

	// Merge YAML values over defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	_loaded = &cfg
	return nil
}

// ApplyEnvOverrides applies environment variable overrides on top of the loaded config
func ApplyEnvOverrides() {
	if _loaded == nil {
		LoadDefault()
	}

	if httpHost := os.Getenv("USERD_HTTP_HOST"); httpHost != "" {
		_loaded.Common.Http.Host = httpHost
	}
	if httpPort := os.Getenv("USERD_HTTP_PORT"); httpPort != "" {
		if port, err := strconv.Atoi(httpPort); err == nil {
			_loaded.Common.Http.Port = port
		}
	}

	if logLevel := os.Getenv("USERD_LOG_LEVEL"); logLevel != "" {
		_loaded.Common.Log.Level = logLevel
	}
	if logFormat := os.Getenv("USERD_LOG_FORMAT"); logFormat != "" {
		_loaded.Common.Log.Format = logFormat
	}

	if seedDisabled := os.Getenv("USERD_SEED_DISABLED"); seedDisabled != "" {
		if disabled, err := strconv.ParseBool(seedDisabled); err == nil {
			_loaded.Common.Seed.Disabled = disabled
		}
	}
}

// set sane defaults for all of the config options. when loading the config from
// the file, any options that are not set will be set to these defaults.
var defaultConfig = Config{
	Common: Common{
		Log: logConfig{
			Level:  "info",
			Format: "json",
		},
		Http: httpConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			MaxRequestSize: 1048576,
		},
		Seed: seedConfig{
			Disabled: false,
		},
	},
}

type Common struct {
	Log  logConfig  `yaml:"log"`
	Http httpConfig `yaml:"http"`
	Seed seedConfig `yaml:"seed"`
}

type logConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type httpConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxRequestSize int64  `yaml:"max_request_size"`
}

type seedConfig struct {
	Disabled bool `yaml:"disabled"` // skip seeding the startup records
}

// there should be a getter for each top level field in the config struct.
// these getters will panic if the config has not been loaded.

func Logger() logConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.Log
}

func Http() httpConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.Http
}

func Seed() seedConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.Seed
}

func Get() *Config {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded
}
