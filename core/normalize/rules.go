package normalize

import (
	"strings"

	"github.com/leofalp/sectionparse/core/content"
)

// Severity of a length violation.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// LengthRule bounds the trimmed character count of a text field.
type LengthRule struct {
	Field    string
	Min, Max int
	Severity Severity
}

// lengthRules is matched exactly first, then by substring in this order.
var lengthRules = []LengthRule{
	{Field: "headline", Min: 10, Max: 100, Severity: SeverityWarning},
	{Field: "subheadline", Min: 15, Max: 150, Severity: SeverityWarning},
	{Field: "cta_text", Min: 5, Max: 30, Severity: SeverityError},
	{Field: "description", Min: 20, Max: 300, Severity: SeverityWarning},
	{Field: "quote", Min: 20, Max: 200, Severity: SeverityWarning},
}

var defaultLengthRule = LengthRule{Min: 1, Max: 500, Severity: SeverityWarning}

// LengthRuleFor returns the length rule for a field name.
func LengthRuleFor(field string) LengthRule {
	for _, rule := range lengthRules {
		if rule.Field == field {
			return rule
		}
	}
	for _, rule := range lengthRules {
		if strings.Contains(field, rule.Field) {
			return rule
		}
	}
	return defaultLengthRule
}

// pipeTokens mark fields whose canonical form is a pipe-joined scalar.
var pipeTokens = []string{"titles", "descriptions", "quotes", "names", "items", "labels", "steps", "list"}

// IsPipeField reports whether a field's canonical form is pipe-joined.
func IsPipeField(field string) bool {
	return containsAny(field, pipeTokens)
}

type fallback struct {
	field string
	items []string
}

// fallbacks is matched exactly first, then by substring in this order.
var fallbacks = []fallback{
	{"headline", []string{"Transform Your Business Today"}},
	{"subheadline", []string{"Join thousands of companies already seeing results"}},
	{"cta_text", []string{"Get Started"}},
	{"description", []string{"Discover how our solution can help you achieve your goals"}},
	{"quote", []string{"This solution changed everything for our business"}},
	{"testimonial_author", []string{"Satisfied Customer"}},
	{"feature_titles", []string{"Feature 1", "Feature 2", "Feature 3"}},
	{"feature_descriptions", []string{"Benefit description 1", "Benefit description 2", "Benefit description 3"}},
	{"testimonial_quotes", []string{"Great product!", "Highly recommended", "Best investment we made"}},
	{"questions", []string{"How does it work?", "Is it secure?", "What's included?"}},
	{"answers", []string{"It works seamlessly", "Yes, enterprise-grade security", "Everything you need"}},
}

// arrayTokens mark fields whose generic fallback is a list.
var arrayTokens = []string{"titles", "descriptions", "quotes", "questions", "answers", "items", "list"}

const defaultFallbackText = "Default content"

// Fallback returns the value substituted for an invalid field. List
// fallbacks of pipe fields are joined into their canonical scalar form.
func Fallback(field string) content.Value {
	items, isList := fallbackItems(field)
	switch {
	case !isList:
		return content.Scalar(items[0])
	case IsPipeField(field):
		return content.Scalar(content.JoinPipe(items))
	default:
		return content.List(items...)
	}
}

func fallbackItems(field string) ([]string, bool) {
	for _, f := range fallbacks {
		if f.field == field {
			return f.items, len(f.items) > 1
		}
	}
	for _, f := range fallbacks {
		if strings.Contains(field, f.field) {
			return f.items, len(f.items) > 1
		}
	}
	return []string{defaultFallbackText}, containsAny(field, arrayTokens)
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}
