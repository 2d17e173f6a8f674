package parse

import (
	"errors"
	"strings"
)

// Hard errors. Any of these makes Result.Success false.
var (
	// ErrNoJSON is returned when no object-shaped candidate exists in the input.
	ErrNoJSON = errors.New("no valid JSON found in AI response")
	// ErrInvalidJSON wraps the decoder error of a candidate that could not be
	// decoded or repaired.
	ErrInvalidJSON = errors.New("JSON parsing failed")
	// ErrNotObject is returned when the decoded root is not a JSON object.
	ErrNotObject = errors.New("content must be an object")
	// ErrNoSections is returned when the root, after unwrapping, has no keys.
	ErrNoSections = errors.New("no sections found in content")
)

// hardErrorMessage renders err the way Result.Errors reports it.
func hardErrorMessage(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
