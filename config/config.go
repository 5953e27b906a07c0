// Package config loads runtime tuning for the sequence engine from
// environment variables, an optional .env file and an optional YAML file.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"seqcore/logger"
)

// EnvPrefix prefixes every environment variable, e.g. SEQCORE_PARALLEL_WORKERS.
const EnvPrefix = "SEQCORE"

const DefaultBatchSize = 64

// Config is the root configuration.
type Config struct {
	Parallel Parallel      `yaml:"parallel" mapstructure:"parallel"`
	Log      logger.Config `yaml:"log" mapstructure:"log"`
}

// Parallel tunes the ParallelMap worker pool.
type Parallel struct {
	// Workers is the pool size; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" mapstructure:"workers" validate:"gte=1"`
	// BatchSize is the number of elements handed to a worker at once.
	BatchSize int `yaml:"batch_size" mapstructure:"batch_size" validate:"gte=1"`
}

// ApplyDefaults applies default values to parallel configuration.
func (p *Parallel) ApplyDefaults() {
	if p.Workers == 0 {
		p.Workers = runtime.GOMAXPROCS(0)
	}
	if p.BatchSize == 0 {
		p.BatchSize = DefaultBatchSize
	}
}

// ApplyDefaults applies default values to every section.
func (c *Config) ApplyDefaults() {
	c.Parallel.ApplyDefaults()
	c.Log.ApplyDefaults()
}

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the struct tags of every section.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// LoaderConfig holds optional file overrides.
type LoaderConfig struct {
	ConfigFile string // YAML config file path (optional)
	EnvFile    string // .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load builds a Config from, in increasing priority: defaults, the YAML
// file, and SEQCORE_* environment variables (including those read from the
// .env file). The result is validated.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.EnvFile != "" {
		if _, err := os.Stat(lc.EnvFile); err == nil {
			if err := godotenv.Load(lc.EnvFile); err != nil {
				return nil, fmt.Errorf("config: load env file %s: %w", lc.EnvFile, err)
			}
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about; register every leaf so the
	// environment can override it. Zero values are filled in by ApplyDefaults.
	for key, zero := range map[string]any{
		"parallel.workers":    0,
		"parallel.batch_size": 0,
		"log.level":           "",
		"log.format":          "",
		"log.output":          "",
		"log.no_color":        false,
		"log.timestamp":       false,
	} {
		v.SetDefault(key, zero)
	}

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", lc.ConfigFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
