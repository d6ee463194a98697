// Package datasheet provides an in-memory grid of typed cells loaded from
// delimited text, with column queries, mutations and aggregates.
package datasheet

import "go.uber.org/zap"

// DefaultDelimiter separates fields when Options.Delimiter is unset.
const DefaultDelimiter = ','

// Options configures loading, insertion and export behavior.
type Options struct {
	// Delimiter separates fields. Zero means DefaultDelimiter.
	Delimiter rune
	// TrimFields specifies whether fields are trimmed before type inference.
	// If nil, defaults to true.
	TrimFields *bool
	// Logger receives debug output. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default sheet options.
func DefaultOptions() Options {
	return Options{
		Delimiter: DefaultDelimiter,
	}
}

// FieldDelimiter returns the configured delimiter.
func (o Options) FieldDelimiter() rune {
	if o.Delimiter == 0 {
		return DefaultDelimiter
	}
	return o.Delimiter
}

// ShouldTrimFields returns whether fields are trimmed before parsing.
func (o Options) ShouldTrimFields() bool {
	if o.TrimFields != nil {
		return *o.TrimFields
	}
	return true
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
