// Package observability defines the logging capability and optional metrics
// the parsing pipeline reports through, plus the attribute-key conventions
// used when recording them.
//
// The pipeline only needs a [Logger] (Debug, Warn, Error). A Logger that
// also implements [Metrics] gets run counters and durations as well. A nil
// Logger is valid everywhere and means no observability at all; [OrNop]
// turns it into a discarding implementation. A Logger can travel through a
// [context.Context] with [ContextWithLogger] and [LoggerFromContext].
//
// The semconv.go file contains all standard attribute-key and metric-name
// constants.
package observability
