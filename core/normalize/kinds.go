package normalize

import (
	"fmt"
	"strings"

	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
	"github.com/tidwall/gjson"

	"github.com/leofalp/sectionparse/core/content"
	"github.com/leofalp/sectionparse/core/shape"
)

// applyRule handles a field governed by a descriptor FieldRule.
func applyRule(sectionID, field string, v gjson.Result, rule shape.FieldRule, d *shape.Descriptor) FieldResult {
	switch rule.Kind {
	case shape.KindIcon:
		return iconField(sectionID, field, v, d)
	case shape.KindBool:
		return boolField(v)
	case shape.KindPipeList:
		return pipeListField(sectionID, field, v, rule)
	default:
		return ProcessField(sectionID, field, v)
	}
}

func iconField(sectionID, field string, v gjson.Result, d *shape.Descriptor) FieldResult {
	fallback := content.Scalar(d.IconFor(field))
	text := strings.TrimSpace(v.String())
	if text == "" {
		return FieldResult{Value: fallback, Valid: true, Fallback: fallback}
	}
	if icon, ok := FirstEmoji(text); ok {
		return FieldResult{Value: content.Scalar(icon), Valid: true, Fallback: fallback}
	}
	return FieldResult{
		Fallback: fallback,
		Warnings: []string{fmt.Sprintf("%s: %s had invalid icon format, using default", sectionID, field)},
	}
}

func boolField(v gjson.Result) FieldResult {
	text := strings.ToLower(strings.TrimSpace(v.String()))
	value := "false"
	switch text {
	case "", "true", "yes", "1":
		value = "true"
	}
	return FieldResult{Value: content.Scalar(value), Valid: true, Fallback: content.Scalar("true")}
}

func pipeListField(sectionID, field string, v gjson.Result, rule shape.FieldRule) FieldResult {
	res := FieldResult{Valid: true, Fallback: Fallback(field)}
	if rule.AllowEmpty {
		res.Fallback = content.Scalar("")
	}

	var items []string
	switch {
	case v.IsArray():
		items, _ = textItems(v.Array())
	case v.Type == gjson.String:
		items = content.SplitPipe(v.Str)
	default:
		res.Valid = false
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s.%s: Expected string or array, got %s", sectionID, field, typeName(v)))
		return res
	}

	if len(items) == 0 {
		if rule.AllowEmpty {
			res.Value = content.Scalar("")
			return res
		}
		res.Valid = false
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %s has invalid pipe-separated format", sectionID, field))
		return res
	}

	if rule.MinItems > 0 && len(items) < rule.MinItems {
		noun := rule.Noun
		if noun == "" {
			noun = "items"
		}
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %s should have at least %d %s", sectionID, field, rule.MinItems, noun))
	}
	res.Value = content.Scalar(content.JoinPipe(items))
	return res
}

// FirstEmoji returns the first grapheme cluster of s that is an emoji,
// including modifiers, variation selectors and ZWJ sequences.
func FirstEmoji(s string) (string, bool) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		if isEmoji(cluster) {
			return cluster, true
		}
	}
	return "", false
}

// isEmoji reports whether cluster is a known emoji. A base written without
// its presentation selector, such as a bare "⚠", matches its emoji form.
func isEmoji(cluster string) bool {
	if _, err := gomoji.GetInfo(cluster); err == nil {
		return true
	}
	if strings.HasSuffix(cluster, variationSelector16) {
		return false
	}
	_, err := gomoji.GetInfo(cluster + variationSelector16)
	return err == nil
}

const variationSelector16 = "\uFE0F"
