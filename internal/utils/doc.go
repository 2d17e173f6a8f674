// Package utils holds small helpers shared by the parsing packages: rune-safe
// previews for log attributes, key normalization for count lookups, JSON
// rendering for CLI output, and a stopwatch used for duration metrics.
package utils
