package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PipeSeparator joins the items of a multi-item field in its scalar form.
const PipeSeparator = "|"

// Kind tells which variant a Value holds.
type Kind int

const (
	KindScalar Kind = iota
	KindList
)

// String returns "scalar" or "list".
func (k Kind) String() string {
	if k == KindList {
		return "list"
	}
	return "scalar"
}

// Value is a normalized field value: a scalar string or a list of strings.
// The zero value is an empty scalar.
type Value struct {
	kind   Kind
	scalar string
	items  []string
}

// Scalar wraps s as a scalar value.
func Scalar(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// List builds a list value. Blank entries are dropped and the remaining
// entries are trimmed, so a List never carries an empty item.
func List(items ...string) Value {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return Value{kind: KindList, items: kept}
}

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

// IsList reports whether v is a list.
func (v Value) IsList() bool { return v.kind == KindList }

// Text returns the scalar string, or the pipe-joined items of a list.
func (v Value) Text() string {
	if v.kind == KindList {
		return JoinPipe(v.items)
	}
	return v.scalar
}

// Items returns the list items, or the pipe-split items of a scalar.
func (v Value) Items() []string {
	if v.kind == KindList {
		out := make([]string, len(v.items))
		copy(out, v.items)
		return out
	}
	return SplitPipe(v.scalar)
}

// IsEmpty reports whether the value carries no visible text.
func (v Value) IsEmpty() bool {
	if v.kind == KindList {
		return len(v.items) == 0
	}
	return strings.TrimSpace(v.scalar) == ""
}

// Equal reports whether two values have the same variant and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindScalar {
		return v.scalar == other.scalar
	}
	if len(v.items) != len(other.items) {
		return false
	}
	for i := range v.items {
		if v.items[i] != other.items[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.kind == KindList {
		return fmt.Sprintf("%q", v.items)
	}
	return v.scalar
}

// MarshalJSON encodes a scalar as a JSON string and a list as a string array.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindList {
		items := v.items
		if items == nil {
			items = []string{}
		}
		return json.Marshal(items)
	}
	return json.Marshal(v.scalar)
}

// UnmarshalJSON accepts a JSON string or an array of strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Scalar(s)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("content value must be a string or an array of strings: %w", err)
	}
	*v = List(items...)
	return nil
}

// SplitPipe splits s on the pipe separator, trimming items and dropping
// blanks.
func SplitPipe(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, PipeSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinPipe joins items with the pipe separator.
func JoinPipe(items []string) string {
	return strings.Join(items, PipeSeparator)
}
