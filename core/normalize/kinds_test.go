package normalize

import (
	"reflect"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/leofalp/sectionparse/core/content"
	"github.com/leofalp/sectionparse/core/shape"
)

func TestFirstEmoji(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"🚀 Launch", "🚀", true},
		{"Go ✅", "✅", true},
		{"👍🏽", "👍🏽", true},
		{"⚠️ careful", "⚠️", true},
		{"1️⃣ first", "1️⃣", true},
		{"👩‍💻 dev", "👩‍💻", true},
		{"⚠ bare", "⚠", true},
		{"↔️ swap", "↔️", true},
		{"→ go", "", false},
		{"■ box", "", false},
		{"abc 123", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := FirstEmoji(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FirstEmoji(%q) = %q, %v, want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

// runRule applies the descriptor rule for field to a JSON literal.
func runRule(t *testing.T, d *shape.Descriptor, field, js string) FieldResult {
	t.Helper()
	rule, ok := d.RuleFor(field)
	if !ok {
		t.Fatalf("descriptor %s has no rule for %s", d.Name, field)
	}
	return applyRule("sec", field, gjson.Parse(js), rule, d)
}

func TestApplyRule_Icon(t *testing.T) {
	d := shape.Default().Select("ba_BeforeAfterSlider")

	tests := []struct {
		name         string
		field        string
		json         string
		want         string
		wantValid    bool
		wantWarnings []string
	}{
		{"empty uses field default", "before_icon", `""`, "⚠️", true, nil},
		{"keeps first emoji", "before_icon", `"✅ done"`, "✅", true, nil},
		{"missing emoji", "after_icon", `"check"`, "✅", false, []string{"sec: after_icon had invalid icon format, using default"}},
		{"arrow is not an icon", "before_icon", `"→ go"`, "⚠️", false, []string{"sec: before_icon had invalid icon format, using default"}},
		{"unknown icon field", "badge_icon", `"x"`, shape.DefaultIcon, false, []string{"sec: badge_icon had invalid icon format, using default"}},
		{"hint default", "hint_icon", `null`, "👆", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runRule(t, d, tt.field, tt.json)
			if got.Valid != tt.wantValid {
				t.Errorf("icon valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if got.Final().Text() != tt.want {
				t.Errorf("icon = %q, want %q", got.Final().Text(), tt.want)
			}
			if !reflect.DeepEqual(got.Warnings, tt.wantWarnings) {
				t.Errorf("icon warnings = %v, want %v", got.Warnings, tt.wantWarnings)
			}
		})
	}
}

func TestApplyRule_Bool(t *testing.T) {
	d := shape.Default().Select("ba_BeforeAfterSlider")

	tests := []struct {
		json string
		want string
	}{
		{`""`, "true"},
		{`"true"`, "true"},
		{`"YES"`, "true"},
		{`"1"`, "true"},
		{`true`, "true"},
		{`"no"`, "false"},
		{`false`, "false"},
		{`"maybe"`, "false"},
	}

	for _, tt := range tests {
		got := runRule(t, d, "show_interaction_hint", tt.json)
		if !got.Valid || got.Final().Text() != tt.want {
			t.Errorf("bool(%s) = %q (valid %v), want %q", tt.json, got.Final().Text(), got.Valid, tt.want)
		}
		if len(got.Warnings) != 0 {
			t.Errorf("bool(%s) warnings = %v, want none", tt.json, got.Warnings)
		}
	}
}

func TestApplyRule_PipeList(t *testing.T) {
	registry := shape.Default()

	tests := []struct {
		name         string
		sectionID    string
		field        string
		json         string
		want         content.Value
		wantValid    bool
		wantWarnings []string
	}{
		{
			name:      "array is trimmed and joined",
			sectionID: "ba_TextListTransformation",
			field:     "before_list",
			json:      `["a", " b ", ""]`,
			want:      content.Scalar("a|b"),
			wantValid: true,
		},
		{
			name:      "string is re-joined without blanks",
			sectionID: "ba_TextListTransformation",
			field:     "after_list",
			json:      `"a | |b"`,
			want:      content.Scalar("a|b"),
			wantValid: true,
		},
		{
			name:         "wrong type",
			sectionID:    "ba_TextListTransformation",
			field:        "before_list",
			json:         `42`,
			want:         content.Scalar("Default content"),
			wantWarnings: []string{"sec.before_list: Expected string or array, got number"},
		},
		{
			name:         "no items",
			sectionID:    "ba_TextListTransformation",
			field:        "before_list",
			json:         `" | "`,
			want:         content.Scalar("Default content"),
			wantWarnings: []string{"sec: before_list has invalid pipe-separated format"},
		},
		{
			name:         "below minimum keeps the value",
			sectionID:    "mech_ProcessFlowDiagram",
			field:        "process_steps",
			json:         `"Discover"`,
			want:         content.Scalar("Discover"),
			wantValid:    true,
			wantWarnings: []string{"sec: process_steps should have at least 2 items"},
		},
		{
			name:         "custom noun",
			sectionID:    "mech_PropertyComparisonMatrix",
			field:        "us_values",
			json:         `"Fast|Cheap"`,
			want:         content.Scalar("Fast|Cheap"),
			wantValid:    true,
			wantWarnings: []string{"sec: us_values should have at least 3 comparison points"},
		},
		{
			name:      "empty allowed",
			sectionID: "results_EmojiOutcomeGrid",
			field:     "descriptions",
			json:      `""`,
			want:      content.Scalar(""),
			wantValid: true,
		},
		{
			name:      "contains match",
			sectionID: "ba_StatComparison",
			field:     "before_stats",
			json:      `["10%","20%"]`,
			want:      content.Scalar("10%|20%"),
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runRule(t, registry.Select(tt.sectionID), tt.field, tt.json)
			if got.Valid != tt.wantValid {
				t.Errorf("pipe list valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if !got.Final().Equal(tt.want) {
				t.Errorf("pipe list = %v, want %v", got.Final(), tt.want)
			}
			if !reflect.DeepEqual(got.Warnings, tt.wantWarnings) {
				t.Errorf("pipe list warnings = %v, want %v", got.Warnings, tt.wantWarnings)
			}
		})
	}
}
