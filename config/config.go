// Package config holds the run configuration of the sociograph CLI: which
// file to load, how to map its columns, how to weight edges and how to log.
//
// Configuration is YAML, overlaid on Default(), then overridden by
// SOCIOGRAPH_* environment variables, then validated.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sociograph/loader"
	"github.com/katalvlaran/sociograph/weight"
)

// Environment variables consulted by Resolve and ApplyEnv.
const (
	EnvConfigPath = "SOCIOGRAPH_CONFIG"
	EnvInput      = "SOCIOGRAPH_INPUT"
	EnvFormat     = "SOCIOGRAPH_FORMAT"
	EnvLogLevel   = "SOCIOGRAPH_LOG_LEVEL"
)

// DefaultTopN is the centrality list length when none is configured.
const DefaultTopN = 5

// ErrConfig indicates an unreadable or invalid configuration.
var ErrConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root of the YAML document.
type Config struct {
	Input      string           `yaml:"input"`
	Format     string           `yaml:"format" validate:"omitempty,oneof=csv json"`
	Columns    loader.ColumnMap `yaml:"columns"`
	Weight     WeightConfig     `yaml:"weight"`
	Centrality CentralityConfig `yaml:"centrality"`
	Log        LogConfig        `yaml:"log"`
}

// WeightConfig selects the edge weight strategy. No attributes means the
// default Euclidean formula over activity, interaction and connection count.
type WeightConfig struct {
	Attributes []string  `yaml:"attributes" validate:"omitempty,dive,required"`
	Scales     []float64 `yaml:"scales" validate:"omitempty,dive,gte=0"`
}

// CentralityConfig configures the centrality command.
type CentralityConfig struct {
	TopN int `yaml:"top_n" validate:"gte=0"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Development bool   `yaml:"development"`
	Level       string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Columns:    loader.DefaultColumns,
		Centrality: CentralityConfig{TopN: DefaultTopN},
		Log:        LogConfig{Level: "info"},
	}
}

// Resolve picks the config path: the explicit flag value wins, then
// $SOCIOGRAPH_CONFIG. An empty result means "use defaults".
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}

	return os.Getenv(EnvConfigPath)
}

// Load reads path (if non-empty), applies environment overrides and validates.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %w", ErrConfig, path, err)
		}
		if err = cfg.decode(data); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML data over the defaults and validates the result.
// Environment variables are not consulted.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decode applies data over c. A columns section replaces the default column
// map as a whole, so unnamed columns are unset rather than inherited.
func (c *Config) decode(data []byte) error {
	var sections struct {
		Columns *yaml.Node `yaml:"columns"`
	}
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return fmt.Errorf("%w: parsing yaml: %w", ErrConfig, err)
	}
	if sections.Columns != nil {
		c.Columns = loader.ColumnMap{}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: parsing yaml: %w", ErrConfig, err)
	}

	return nil
}

// ApplyEnv overrides fields from SOCIOGRAPH_INPUT, SOCIOGRAPH_FORMAT and
// SOCIOGRAPH_LOG_LEVEL when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvInput); v != "" {
		c.Input = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

// Validate checks struct tags, the column map and the weight settings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if _, err := c.WeightFunc(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return nil
}

// WeightFunc builds the configured weight strategy.
func (c *Config) WeightFunc() (weight.Func, error) {
	if len(c.Weight.Attributes) == 0 {
		if len(c.Weight.Scales) != 0 {
			return nil, fmt.Errorf("%w: scales given without attributes", weight.ErrConfig)
		}
		return weight.Euclidean, nil
	}

	return weight.NewWeighted(c.Weight.Attributes, c.Weight.Scales)
}

// LoaderOptions translates the configuration into loader options.
func (c *Config) LoaderOptions(logger *zap.Logger) ([]loader.Option, error) {
	fn, err := c.WeightFunc()
	if err != nil {
		return nil, err
	}

	return []loader.Option{
		loader.WithColumns(c.Columns),
		loader.WithWeightFunc(fn),
		loader.WithLogger(logger),
	}, nil
}

// Logger builds a zap logger: development (console, debug) or production
// (JSON) encoding, at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	var zc zap.Config
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	if c.Log.Level != "" {
		lvl, err := zapcore.ParseLevel(c.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: log level: %w", ErrConfig, err)
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}

	return zc.Build()
}
