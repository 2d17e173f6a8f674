// Package normalize turns one raw section object into validated content. For
// each section it runs, in order:
//
//   - legacy conversion of pipe-joined aggregate fields into indexed fields
//   - per-field processing: kind-specific handling from the descriptor,
//     type and emptiness checks, pipe canonicalization, length rules, and
//     fallback substitution for invalid values
//   - aligned-group correction of pipe lists that must have equal counts
//   - shape validation: required fields, pairs, and item counts
//
// Nothing in this package fails a section. Problems become warnings and the
// outcome is flagged as having issues.
package normalize
