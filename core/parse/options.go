package parse

import (
	"github.com/leofalp/sectionparse/core/shape"
	"github.com/leofalp/sectionparse/providers/observability"
)

// Option is a functional option for configuring the Parser.
type Option func(*Parser)

// WithLogger sets the logger for the whole pipeline. When it also
// implements observability.Metrics, run counters and durations are recorded
// on it. Without this option the logger is taken from the context passed to
// Parse, if any.
func WithLogger(logger observability.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithRegistry replaces the built-in shape registry.
func WithRegistry(registry *shape.Registry) Option {
	return func(p *Parser) {
		p.registry = registry
	}
}

// WithJSONRepair enables repairing candidates that fail to decode (single
// quotes, trailing commas, unquoted keys) before reporting a hard error.
func WithJSONRepair(enabled bool) Option {
	return func(p *Parser) {
		p.repair = enabled
	}
}

// WithTruncationRecovery accepts an unterminated object when JSON repair
// can close it. The result carries a warning.
func WithTruncationRecovery(enabled bool) Option {
	return func(p *Parser) {
		p.recoverTruncated = enabled
	}
}

// WithHTMLNormalization converts HTML responses with <pre> or <code> blocks
// to markdown before extraction.
func WithHTMLNormalization(enabled bool) Option {
	return func(p *Parser) {
		p.normalizeHTML = enabled
	}
}
