// Package config loads fieldcarbon settings from
// $FIELDCARBON_HOME/config.yaml, an optional project overlay and
// FIELDCARBON_* environment variables, in that order of precedence
// (later wins).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rshade/fieldcarbon/internal/logging"
	"github.com/rshade/fieldcarbon/internal/reference"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidConfig is returned for unparseable or out-of-range settings.
const ErrInvalidConfig = constError("invalid configuration")

// Output formats accepted by output.default_format.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

const (
	configFileName   = "config.yaml"
	defaultPrecision = 3
	defaultFI        = 1.0
)

// Config is the full settings tree.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
	Reference ReferenceConfig `yaml:"reference"`
	Engine    EngineConfig    `yaml:"engine"`

	configPath string
	loadErr    error
}

// OutputConfig controls how estimates are rendered.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" validate:"oneof=table json ndjson"`
	Precision     int    `yaml:"precision"      validate:"min=0,max=10"`
}

// LoggingConfig controls the zerolog setup.
type LoggingConfig struct {
	Level  string `yaml:"level"  validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`

	// File, when set, receives JSON logs instead of stderr.
	File string `yaml:"file,omitempty"`
}

// ReferenceConfig points at replacement coefficient data.
type ReferenceConfig struct {
	// CatalogFile replaces the embedded reference catalog.
	CatalogFile string `yaml:"catalog_file,omitempty"`

	// GeoFile replaces the embedded geo location registry.
	GeoFile string `yaml:"geo_file,omitempty"`

	// Compatible is the semver range a catalog version must satisfy.
	Compatible string `yaml:"compatible"`
}

// EngineConfig tunes the emissions calculator.
type EngineConfig struct {
	// FIFallback is the input factor used when no rule matches.
	FIFallback float64 `yaml:"fi_fallback" validate:"gt=0"`

	// StrictFI disables the fallback: an unmatched practice set fails.
	StrictFI bool `yaml:"strict_fi"`

	// Concurrency bounds batch evaluation; 0 means one per CPU.
	Concurrency int `yaml:"concurrency" validate:"min=0"`
}

// Default returns the built-in settings without reading any file.
func Default() *Config {
	return &Config{
		Output:    defaultOutput(),
		Logging:   defaultLogging(),
		Reference: defaultReference(),
		Engine:    defaultEngine(),
	}
}

func defaultOutput() OutputConfig {
	return OutputConfig{DefaultFormat: FormatTable, Precision: defaultPrecision}
}

func defaultLogging() LoggingConfig {
	return LoggingConfig{Level: "info", Format: logging.FormatConsole}
}

func defaultReference() ReferenceConfig {
	return ReferenceConfig{Compatible: reference.DefaultConstraint}
}

func defaultEngine() EngineConfig {
	return EngineConfig{FIFallback: defaultFI}
}

// New returns the global configuration: defaults, then the config file
// under GetConfigDir if it exists, then environment overrides. A config
// file that cannot be parsed leaves the defaults in place and is kept as
// LoadError, which Validate reports.
func New() *Config {
	cfg := Default()
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
		if _, statErr := os.Stat(cfg.configPath); statErr == nil {
			loaded, loadErr := LoadFile(cfg.configPath)
			if loadErr != nil {
				cfg.loadErr = loadErr
			} else {
				cfg = loaded
			}
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// LoadFile reads settings from path over the defaults. Unknown keys are
// rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	cfg.configPath = path
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays FIELDCARBON_* environment variables.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	overrides := []struct {
		key string
		dst *string
	}{
		{"FIELDCARBON_LOG_LEVEL", &c.Logging.Level},
		{"FIELDCARBON_LOG_FORMAT", &c.Logging.Format},
		{"FIELDCARBON_OUTPUT_FORMAT", &c.Output.DefaultFormat},
		{"FIELDCARBON_CATALOG_FILE", &c.Reference.CatalogFile},
		{"FIELDCARBON_GEO_FILE", &c.Reference.GeoFile},
	}
	for _, o := range overrides {
		if v, ok := lookupEnv(o.key); ok && strings.TrimSpace(v) != "" {
			*o.dst = strings.TrimSpace(v)
		}
	}
}

// Validate checks every section and returns ErrInvalidConfig describing
// the first offending fields.
func (c *Config) Validate() error {
	if c.loadErr != nil {
		return c.loadErr
	}
	if err := validate().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Reference.Compatible != "" {
		if _, err := semver.NewConstraint(c.Reference.Compatible); err != nil {
			return fmt.Errorf("%w: reference.compatible %q: %w", ErrInvalidConfig, c.Reference.Compatible, err)
		}
	}
	for _, p := range []struct{ key, path string }{
		{"reference.catalog_file", c.Reference.CatalogFile},
		{"reference.geo_file", c.Reference.GeoFile},
	} {
		if p.path == "" {
			continue
		}
		if _, err := os.Stat(p.path); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, p.key, err)
		}
	}
	return nil
}

// FIFallback returns the configured fallback, or nil in strict mode.
func (c *Config) FIFallback() *float64 {
	if c.Engine.StrictFI {
		return nil
	}
	v := c.Engine.FIFallback
	return &v
}

// LoadError is the parse error of the config file New skipped, if any.
func (c *Config) LoadError() error {
	return c.loadErr
}

// ConfigPath is where Save writes.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML to ConfigPath.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

//nolint:gochecknoglobals // validator caches struct metadata; one instance per process.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func validate() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validatorInst
}
