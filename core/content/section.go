package content

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Section is an ordered mapping of field name to Value.
// The zero value is an empty section ready to use.
type Section struct {
	keys   []string
	values map[string]Value
}

// NewSection returns an empty section with room for n fields.
func NewSection(n int) *Section {
	return &Section{
		keys:   make([]string, 0, n),
		values: make(map[string]Value, n),
	}
}

// Set stores v under key. A new key is appended; an existing key keeps its
// position and has its value replaced.
func (s *Section) Set(key string, v Value) {
	if s.values == nil {
		s.values = make(map[string]Value)
	}
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

// Get returns the value stored under key.
func (s *Section) Get(key string) (Value, bool) {
	if s == nil || s.values == nil {
		return Value{}, false
	}
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key holds a non-empty value.
func (s *Section) Has(key string) bool {
	v, ok := s.Get(key)
	return ok && !v.IsEmpty()
}

// Keys returns the field names in insertion order.
func (s *Section) Keys() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of fields.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Range calls fn for every field in order until fn returns false.
func (s *Section) Range(fn func(key string, v Value) bool) {
	if s == nil {
		return
	}
	for _, k := range s.keys {
		if !fn(k, s.values[k]) {
			return
		}
	}
}

// MarshalJSON writes the fields as a JSON object in insertion order.
func (s *Section) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if s != nil {
		for i, k := range s.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			val, err := s.values[k].MarshalJSON()
			if err != nil {
				return nil, fmt.Errorf("marshal field %q: %w", k, err)
			}
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of string or string-array fields,
// keeping the document order.
func (s *Section) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("section must be a JSON object")
	}
	*s = Section{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var v Value
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		s.Set(key, v)
	}
	_, err = dec.Token()
	return err
}
