package parse

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tidwall/gjson"

	"github.com/leofalp/sectionparse/core/extract"
	"github.com/leofalp/sectionparse/core/normalize"
)

// wrapperKeys are root keys models put the real payload under.
var wrapperKeys = []string{"data", "content", "response"}

// lowSectionCount is the largest section count reported as low.
const lowSectionCount = 2

// decode parses a candidate. Truncated candidates are only accepted after a
// successful repair; other candidates are repaired only when repair is set.
// The returned note is a warning describing a repair, or empty.
func decode(cand extract.Candidate, repair bool) (gjson.Result, string, error) {
	if cand.Truncated {
		repaired, err := jsonrepair.JSONRepair(cand.Text)
		if err != nil {
			return gjson.Result{}, "", fmt.Errorf("%w: unterminated object could not be repaired: %v", ErrInvalidJSON, err)
		}
		if !gjson.Valid(repaired) {
			return gjson.Result{}, "", fmt.Errorf("%w: unterminated object could not be repaired", ErrInvalidJSON)
		}
		return gjson.Parse(repaired), "Recovered truncated JSON", nil
	}

	if gjson.Valid(cand.Text) {
		return gjson.Parse(cand.Text), "", nil
	}

	decodeErr := syntaxError(cand.Text)
	if repair {
		// If decoding fails, attempt to repair the JSON and retry
		repaired, err := jsonrepair.JSONRepair(cand.Text)
		if err == nil && gjson.Valid(repaired) {
			return gjson.Parse(repaired), "Repaired malformed JSON: " + decodeErr.Error(), nil
		}
	}
	return gjson.Result{}, "", fmt.Errorf("%w: %v", ErrInvalidJSON, decodeErr)
}

// syntaxError returns the encoding/json error for text, which names the
// offending character and is what callers expect to read.
func syntaxError(text string) error {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return err
	}
	return errors.New("invalid JSON")
}

// structure is the validated root: its sections in source order and the
// soft issues found on the way.
type structure struct {
	sections normalize.Raw
	wrapper  string
	warnings []string
	partial  bool
}

// validateStructure checks the decoded root, unwraps one wrapper level and
// flags low section counts. On ErrNoSections the returned structure still
// carries partial=true.
func validateStructure(root gjson.Result) (structure, error) {
	var st structure
	if !root.IsObject() {
		return st, ErrNotObject
	}

	sections := normalize.FromJSON(root)
	if key, inner, ok := unwrap(sections); ok {
		st.wrapper = key
		st.warnings = append(st.warnings, fmt.Sprintf("Unwrapped content from %q wrapper", key))
		for _, f := range sections {
			if f.Name != key {
				st.warnings = append(st.warnings, fmt.Sprintf("Ignored %q beside %q wrapper", f.Name, key))
			}
		}
		sections = inner
	}
	st.sections = sections

	switch n := len(sections); {
	case n == 0:
		st.partial = true
		return st, ErrNoSections
	case n <= lowSectionCount:
		st.partial = true
		st.warnings = append(st.warnings, fmt.Sprintf("Low section count: only %d section(s) found", n))
	}
	return st, nil
}

// unwrap returns the members of a wrapper key when it is the only
// object-valued root member and itself holds at least one object. Scalar
// siblings of the wrapper are metadata and are not sections.
func unwrap(root normalize.Raw) (string, normalize.Raw, bool) {
	objects := 0
	for _, f := range root {
		if f.Value.IsObject() {
			objects++
		}
	}
	if objects != 1 {
		return "", nil, false
	}

	for _, key := range wrapperKeys {
		v, ok := root.Get(key)
		if !ok || !v.IsObject() {
			continue
		}
		inner := normalize.FromJSON(v)
		for _, f := range inner {
			if f.Value.IsObject() {
				return key, inner, true
			}
		}
	}
	return "", nil, false
}
