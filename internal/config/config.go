package config

import (
	"errors"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pokerhands/internal/util"
)

// EnvPrefix prefixes every environment variable that overrides the config file
const EnvPrefix = "pokerhands"

// Config provides configuration for the poker hands service
type Config struct {
	loaded bool
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
	Equity Equity `yaml:"equity"`
}

// Log configures logging
type Log struct {
	Level             string `yaml:"level"`
	Format            string `yaml:"format"`
	DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
}

// Server configures the HTTP server. Timeouts are in seconds.
type Server struct {
	Addr         string   `yaml:"addr"`
	ReadTimeout  int      `yaml:"readTimeout" envconfig:"read_timeout"`
	WriteTimeout int      `yaml:"writeTimeout" envconfig:"write_timeout"`
	IdleTimeout  int      `yaml:"idleTimeout" envconfig:"idle_timeout"`
	CORSOrigins  []string `yaml:"corsOrigins" envconfig:"cors_origins"`
}

// Equity configures equity calculations
type Equity struct {
	// Iterations is the number of Monte Carlo samples when a request names none
	Iterations int `yaml:"iterations"`

	// MaxIterations caps what a request may ask for
	MaxIterations int `yaml:"maxIterations" envconfig:"max_iterations"`

	// Workers is the number of goroutines per calculation, zero for one per CPU
	Workers int `yaml:"workers"`
}

var config Config

// DefaultConfig returns the configuration used when neither the config file
// nor the environment say otherwise
func DefaultConfig() Config {
	return Config{
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Server: Server{
			Addr:         ":5000",
			ReadTimeout:  15,
			WriteTimeout: 30,
			IdleTimeout:  60,
			CORSOrigins:  []string{"http://localhost:3000"},
		},
		Equity: Equity{
			Iterations:    10000,
			MaxIterations: 1000000,
		},
	}
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// A missing config file is not an error; the defaults are used instead.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("POKERHANDS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
