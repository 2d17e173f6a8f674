package normalize

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Field is one raw field of a section as it appeared in the source.
type Field struct {
	Name  string
	Value gjson.Result
}

// Raw is a section's fields in source order.
type Raw []Field

// FromJSON collects the members of a JSON object in source order. A repeated
// key keeps its first position and takes the last value. Non-objects yield
// nil.
func FromJSON(obj gjson.Result) Raw {
	if !obj.IsObject() {
		return nil
	}
	var raw Raw
	positions := make(map[string]int)
	obj.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if i, ok := positions[name]; ok {
			raw[i].Value = value
			return true
		}
		positions[name] = len(raw)
		raw = append(raw, Field{Name: name, Value: value})
		return true
	})
	return raw
}

// Get returns the value of the named field.
func (r Raw) Get(name string) (gjson.Result, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return gjson.Result{}, false
}

// Names returns the field names in order.
func (r Raw) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// stringValue builds a gjson string result, used for fields synthesized by
// legacy conversion.
func stringValue(s string) gjson.Result {
	quoted, _ := json.Marshal(s)
	return gjson.Result{Type: gjson.String, Str: s, Raw: string(quoted)}
}

// typeName describes a JSON value the way warnings report it.
func typeName(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Null:
		return "null"
	case gjson.JSON:
		if v.IsArray() {
			return "array"
		}
		return "object"
	default:
		return "undefined"
	}
}
