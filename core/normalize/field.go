package normalize

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/leofalp/sectionparse/core/content"
	"github.com/leofalp/sectionparse/internal/utils"
)

// FieldResult is the outcome of processing one field. When Valid is false
// the caller stores Fallback instead of Value.
type FieldResult struct {
	Value    content.Value
	Valid    bool
	Fallback content.Value
	Warnings []string
}

// Final returns Value for valid fields and Fallback otherwise.
func (r FieldResult) Final() content.Value {
	if r.Valid {
		return r.Value
	}
	return r.Fallback
}

// ProcessField validates and canonicalizes one field value.
func ProcessField(sectionID, field string, v gjson.Result) FieldResult {
	res := FieldResult{Valid: true, Fallback: Fallback(field)}
	prefix := sectionID + "." + field + ": "
	invalid := func(format string, args ...any) FieldResult {
		res.Valid = false
		res.Warnings = append(res.Warnings, prefix+fmt.Sprintf(format, args...))
		return res
	}

	if v.Type != gjson.String && !v.IsArray() {
		return invalid("Expected string or array, got %s", typeName(v))
	}

	pipe := IsPipeField(field)
	text := v.Str
	isList := v.IsArray()

	if isList && pipe {
		items, bad := textItems(v.Array())
		if bad > 0 {
			return invalid("Contains %d invalid items in array", bad)
		}
		text, isList = content.JoinPipe(items), false
	} else if !isList && pipe {
		trimmed := strings.TrimSpace(text)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			if gjson.Valid(trimmed) {
				items, bad := textItems(gjson.Parse(trimmed).Array())
				if bad > 0 {
					return invalid("Stringified array contains %d invalid items", bad)
				}
				text = content.JoinPipe(items)
			} else {
				res.Warnings = append(res.Warnings, prefix+"Failed to parse potential JSON array: "+utils.TruncateString(trimmed, 80))
			}
		}
	}

	if isList {
		elems := v.Array()
		if len(elems) == 0 {
			return invalid("Empty array")
		}
		items, bad := textItems(elems)
		if bad > 0 {
			return invalid("Contains %d invalid items", bad)
		}
		res.Value = content.List(items...)
		return res
	}

	if strings.TrimSpace(text) == "" {
		return invalid("Empty string")
	}

	rule := LengthRuleFor(field)
	if n := utils.RuneLength(text); n < rule.Min || n > rule.Max {
		msg := fmt.Sprintf("Too short (%d chars, min %d)", n, rule.Min)
		if n > rule.Max {
			msg = fmt.Sprintf("Too long (%d chars, max %d)", n, rule.Max)
		}
		if rule.Severity == SeverityError {
			return invalid("%s", msg)
		}
		res.Warnings = append(res.Warnings, prefix+msg)
	}

	res.Value = content.Scalar(text)
	return res
}

// textItems returns the trimmed string entries of elems and the number of
// entries that were not non-empty strings.
func textItems(elems []gjson.Result) ([]string, int) {
	items := make([]string, 0, len(elems))
	bad := 0
	for _, e := range elems {
		if e.Type != gjson.String || strings.TrimSpace(e.Str) == "" {
			bad++
			continue
		}
		items = append(items, strings.TrimSpace(e.Str))
	}
	return items, bad
}
