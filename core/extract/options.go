package extract

import "github.com/leofalp/sectionparse/providers/observability"

// Option is a functional option for configuring the Extractor.
type Option func(*Extractor)

// WithLogger sets the logger receiving debug events about each strategy.
func WithLogger(logger observability.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithTruncationRecovery makes Extract return the tail from the first '{'
// as a truncated candidate when no complete object is found.
func WithTruncationRecovery(enabled bool) Option {
	return func(e *Extractor) {
		e.recoverTruncated = enabled
	}
}

// WithHTMLNormalization converts HTML responses containing <pre> or <code>
// blocks to markdown before any strategy runs, so rendered code blocks
// become fences.
func WithHTMLNormalization(enabled bool) Option {
	return func(e *Extractor) {
		e.normalizeHTML = enabled
	}
}
