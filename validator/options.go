package validator

import (
	"fmt"

	"github.com/rignaneseleo/groups-for-nomads/parser"
	"github.com/rignaneseleo/groups-for-nomads/schema"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Input source (exactly one must be set)
	dataFile *string
	parsed   *parser.ParseResult

	// Schema source (at most one; otherwise the search order applies)
	schema     *schema.Schema
	schemaPath string

	failFast bool
	logger   parser.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.dataFile == nil && cfg.parsed == nil {
		return nil, fmt.Errorf("validator: must specify an input source (use WithDataFile or WithParsed)")
	}
	if cfg.dataFile != nil && cfg.parsed != nil {
		return nil, fmt.Errorf("validator: must specify exactly one input source")
	}
	if cfg.schema != nil && cfg.schemaPath != "" {
		return nil, fmt.Errorf("validator: WithSchema and WithSchemaPath are mutually exclusive")
	}

	return cfg, nil
}

// WithDataFile specifies a data file path as the input source
func WithDataFile(path string) Option {
	return func(cfg *validateConfig) error {
		if path == "" {
			return fmt.Errorf("validator: data file path cannot be empty")
		}
		cfg.dataFile = &path
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *validateConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithSchema supplies an already compiled schema, bypassing the search order.
func WithSchema(s *schema.Schema) Option {
	return func(cfg *validateConfig) error {
		if s == nil {
			return fmt.Errorf("validator: schema cannot be nil")
		}
		cfg.schema = s
		return nil
	}
}

// WithSchemaPath sets the explicit schema path tried first by the search order.
func WithSchemaPath(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.schemaPath = path
		return nil
	}
}

// WithFailFast reduces the findings to the single deepest-path one.
// Default: false (all findings are reported)
func WithFailFast(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.failFast = enabled
		return nil
	}
}

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger parser.Logger) Option {
	return func(cfg *validateConfig) error {
		cfg.logger = logger
		return nil
	}
}
