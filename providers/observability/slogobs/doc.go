// Package slogobs provides an observability.Provider implementation backed by
// Go's standard library log/slog package.
// It supports levelled logging through a handler that emits compact or JSON
// lines, and keeps counters in memory.
// The main entry point is [New]; output format and log level can be tuned with
// [WithFormat], [WithLevel], [WithOutput] and [WithLogger].
package slogobs
