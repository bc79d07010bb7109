package parser

import (
	"fmt"
	"io"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger      Logger
	maxFileSize int64
}

// WithFilePath sets the input source to a file path.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		if path == "" {
			return fmt.Errorf("file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader sets the input source to an io.Reader.
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes sets the input source to a byte slice.
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithMaxFileSize sets the maximum input size in bytes.
func WithMaxFileSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return fmt.Errorf("max file size cannot be negative")
		}
		cfg.maxFileSize = size
		return nil
	}
}

// applyOptions applies all options and validates that exactly one input
// source was selected.
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.reader != nil {
		sources++
	}
	if cfg.bytes != nil {
		sources++
	}
	if sources == 0 {
		return nil, fmt.Errorf("no input source specified: use WithFilePath, WithReader, or WithBytes")
	}
	if sources > 1 {
		return nil, fmt.Errorf("multiple input sources specified: use exactly one of WithFilePath, WithReader, or WithBytes")
	}
	return cfg, nil
}

// ParseWithOptions parses a groups data file using functional options.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("groups.yaml"),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		Logger:      cfg.logger,
		MaxFileSize: cfg.maxFileSize,
	}

	switch {
	case cfg.filePath != nil:
		return p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		return p.ParseReader(cfg.reader)
	default:
		return p.ParseBytes(cfg.bytes)
	}
}
