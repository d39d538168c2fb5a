// Package output handles serialization of the report for the optional
// saved copy. The stdout contract (one line of compact JSON) lives in
// the report package; these writers cover file output in json, jsonl
// or yaml.
package output

import (
	"fmt"
	"io"
)

// Format represents output format types.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Writer handles output serialization.
type Writer interface {
	// Write outputs a single document.
	Write(data any) error

	// Close flushes and releases resources.
	Close() error
}

// WriterOption configures a writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	pretty bool
	indent string
}

// WithPretty enables pretty-printing for JSON output.
func WithPretty(enabled bool) WriterOption {
	return func(c *writerConfig) {
		c.pretty = enabled
	}
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (Writer, error) {
	cfg := &writerConfig{indent: "  "}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case FormatJSON:
		return newJSONWriter(w, cfg.pretty, cfg.indent), nil
	case FormatJSONL:
		return newJSONLWriter(w), nil
	case FormatYAML:
		return newYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
