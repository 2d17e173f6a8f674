// Package content defines the canonical representation of normalized section
// content. A field value is either a single string ([Scalar]) or a list of
// non-empty strings ([List]); no untyped "string or array" value survives
// normalization. A [Section] keeps its fields in insertion order so output
// mirrors the order the model produced them in.
//
// Pipe-joined strings ("a|b|c") are the canonical wire form for multi-item
// fields; [SplitPipe] and [JoinPipe] are the only conversion points between
// the two representations.
package content
