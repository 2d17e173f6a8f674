package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultMaxStringLength is the default maximum length for truncated strings
	DefaultMaxStringLength = 500

	// DefaultPreviewLength bounds previews of raw model output in log attributes.
	DefaultPreviewLength = 200
)

// JSONToString serialises object to its JSON representation. When indent is
// true the output uses two-space indentation. On marshalling failure it
// returns a JSON-formatted error string, so the result is always printable.
func JSONToString(object interface{}, indent ...bool) string {
	var encoded []byte
	var err error
	if len(indent) > 0 && indent[0] {
		encoded, err = json.MarshalIndent(object, "", "  ")
	} else {
		encoded, err = json.Marshal(object)
	}
	if err != nil {
		return "{\"error\": \"failed to marshal to JSON: " + err.Error() + "\"}"
	}
	return string(encoded)
}

// TruncateString shortens s to at most maxLen runes, appending a suffix that
// records the original rune count. If maxLen is zero or negative,
// [DefaultMaxStringLength] is used instead. Multi-byte characters are never
// split.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	total := utf8.RuneCountInString(s)
	if total <= maxLen {
		return s
	}
	runes := []rune(s)
	return fmt.Sprintf("%s... (truncated, total: %d chars)", string(runes[:maxLen]), total)
}

// Preview returns a single-line, truncated rendering of s for log output.
func Preview(s string) string {
	return TruncateString(strings.Join(strings.Fields(s), " "), DefaultPreviewLength)
}

// RuneLength returns the number of characters in s after trimming surrounding
// whitespace.
func RuneLength(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// NormalizeKey lowercases s and drops every character that is not a letter or
// digit, so "Text-List Transformation" and "textlisttransformation" compare
// equal.
func NormalizeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
