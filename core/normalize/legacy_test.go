package normalize

import (
	"reflect"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/leofalp/sectionparse/core/shape"
)

// rawOf parses a JSON object literal into ordered raw fields.
func rawOf(t *testing.T, js string) Raw {
	t.Helper()
	if !gjson.Valid(js) {
		t.Fatalf("invalid test JSON: %s", js)
	}
	return FromJSON(gjson.Parse(js))
}

func texts(raw Raw) map[string]string {
	out := make(map[string]string, len(raw))
	for _, f := range raw {
		out[f.Name] = f.Value.String()
	}
	return out
}

func TestConvertLegacy(t *testing.T) {
	registry := shape.Default()

	tests := []struct {
		name         string
		sectionID    string
		json         string
		wantNames    []string
		wantValues   map[string]string
		wantWarnings []string
	}{
		{
			name:      "equal counts produce one pair per item",
			sectionID: "faq_InlineQnAList",
			json:      `{"headline":"FAQ","questions":"Q1?|Q2?|Q3?","answers":"A1|A2|A3"}`,
			wantNames: []string{
				"question_1", "answer_1", "question_2", "answer_2", "question_3", "answer_3",
				"headline", "questions", "answers",
			},
			wantValues:   map[string]string{"question_2": "Q2?", "answer_3": "A3"},
			wantWarnings: []string{"faq_InlineQnAList: Converted legacy pipe-separated format to individual Q&A fields"},
		},
		{
			name:      "mismatched counts zip to the shorter list",
			sectionID: "faq_AccordionFAQ",
			json:      `{"questions":"Q1?|Q2?|Q3?","answers":"A1|A2"}`,
			wantNames: []string{
				"question_1", "answer_1", "question_2", "answer_2",
				"questions", "answers",
			},
			wantWarnings: []string{"faq_AccordionFAQ: Converted legacy pipe-separated format to individual Q&A fields"},
		},
		{
			name:      "capped at the descriptor maximum",
			sectionID: "faq_InlineQnAList",
			json:      `{"questions":"1|2|3|4|5|6|7","answers":"a|b|c|d|e|f|g"}`,
			wantNames: []string{
				"question_1", "answer_1", "question_2", "answer_2", "question_3", "answer_3",
				"question_4", "answer_4", "question_5", "answer_5", "question_6", "answer_6",
				"questions", "answers",
			},
			wantWarnings: []string{"faq_InlineQnAList: Converted legacy pipe-separated format to individual Q&A fields"},
		},
		{
			name:      "canonical fields present",
			sectionID: "faq_InlineQnAList",
			json:      `{"question_1":"Q?","questions":"Q1?|Q2?","answers":"A1|A2"}`,
			wantNames: []string{"question_1", "questions", "answers"},
		},
		{
			name:      "missing companion source",
			sectionID: "faq_InlineQnAList",
			json:      `{"questions":"Q1?|Q2?"}`,
			wantNames: []string{"questions"},
		},
		{
			name:      "blank source",
			sectionID: "faq_InlineQnAList",
			json:      `{"questions":"  ","answers":"A1"}`,
			wantNames: []string{"questions", "answers"},
		},
		{
			name:      "array source is not legacy",
			sectionID: "faq_InlineQnAList",
			json:      `{"questions":["Q1?"],"answers":["A1"]}`,
			wantNames: []string{"questions", "answers"},
		},
		{
			name:      "two columns split three per column",
			sectionID: "faq_TwoColumnFAQ",
			json:      `{"questions":"Q1|Q2|Q3|Q4","answers":"A1|A2|A3|A4"}`,
			wantNames: []string{
				"left_question_1", "left_answer_1", "left_question_2", "left_answer_2",
				"left_question_3", "left_answer_3", "right_question_1", "right_answer_1",
				"questions", "answers",
			},
			wantValues:   map[string]string{"right_question_1": "Q4", "left_answer_3": "A3"},
			wantWarnings: []string{"faq_TwoColumnFAQ: Converted legacy format to two-column Q&A fields"},
		},
		{
			name:      "tabs convert labels and questions",
			sectionID: "faq_SegmentedFAQTabs",
			json:      `{"tab_labels":"Billing|Setup","questions":"Q1|Q2|Q3|Q4","answers":"A1|A2|A3|A4"}`,
			wantNames: []string{
				"tab_1_label", "tab_2_label",
				"tab_1_question_1", "tab_1_answer_1", "tab_1_question_2", "tab_1_answer_2",
				"tab_1_question_3", "tab_1_answer_3", "tab_2_question_1", "tab_2_answer_1",
				"tab_labels", "questions", "answers",
			},
			wantValues: map[string]string{"tab_2_label": "Setup", "tab_2_answer_1": "A4"},
			wantWarnings: []string{
				"faq_SegmentedFAQTabs: Converted legacy tab_labels to individual tab label fields",
				"faq_SegmentedFAQTabs: Converted legacy format to tab-specific Q&A fields",
			},
		},
		{
			name:      "companions fall back to their default",
			sectionID: "faq_QuoteStyleAnswers",
			json:      `{"questions":"Q1|Q2","quote_answers":"Quote one|Quote two","quote_attributions":"Ana"}`,
			wantNames: []string{
				"question_1", "quote_answer_1", "attribution_1",
				"question_2", "quote_answer_2", "attribution_2",
				"questions", "quote_answers", "quote_attributions",
			},
			wantValues:   map[string]string{"attribution_1": "Ana", "attribution_2": "Anonymous"},
			wantWarnings: []string{"faq_QuoteStyleAnswers: Converted legacy format to individual quote Q&A fields"},
		},
		{
			name:      "companion without default is skipped",
			sectionID: "faq_ChatBubbleFAQ",
			json:      `{"questions":"Q1|Q2","answers":"A1|A2","chat_personas":"Bot"}`,
			wantNames: []string{
				"question_1", "answer_1", "persona_1",
				"question_2", "answer_2",
				"questions", "answers", "chat_personas",
			},
			wantWarnings: []string{"faq_ChatBubbleFAQ: Converted legacy format to individual chat Q&A fields"},
		},
		{
			name:      "single source requires a pipe",
			sectionID: "mech_AlgorithmExplainer",
			json:      `{"algorithm_steps":"Only one step"}`,
			wantNames: []string{"algorithm_steps"},
		},
		{
			name:         "single source with pipes",
			sectionID:    "mech_AlgorithmExplainer",
			json:         `{"algorithm_steps":"Collect|Score"}`,
			wantNames:    []string{"algorithm_step_1", "algorithm_step_2", "algorithm_steps"},
			wantWarnings: []string{"mech_AlgorithmExplainer: Converted legacy algorithm_steps to individual step fields"},
		},
		{
			name:      "generic descriptor has nothing to convert",
			sectionID: "pricing",
			json:      `{"questions":"Q1|Q2","answers":"A1|A2"}`,
			wantNames: []string{"questions", "answers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := ConvertLegacy(tt.sectionID, rawOf(t, tt.json), registry.Select(tt.sectionID))

			if !reflect.DeepEqual(got.Names(), tt.wantNames) {
				t.Errorf("ConvertLegacy() names = %v, want %v", got.Names(), tt.wantNames)
			}
			values := texts(got)
			for name, want := range tt.wantValues {
				if values[name] != want {
					t.Errorf("ConvertLegacy() %s = %q, want %q", name, values[name], want)
				}
			}
			if !reflect.DeepEqual(warnings, tt.wantWarnings) {
				t.Errorf("ConvertLegacy() warnings = %v, want %v", warnings, tt.wantWarnings)
			}
		})
	}
}

func TestFromJSON_DuplicateKeys(t *testing.T) {
	raw := FromJSON(gjson.Parse(`{"a":"1","b":"2","a":"3"}`))

	if got := raw.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("FromJSON() names = %v, want [a b]", got)
	}
	if v, _ := raw.Get("a"); v.String() != "3" {
		t.Errorf("FromJSON() a = %q, want %q", v.String(), "3")
	}
	if FromJSON(gjson.Parse(`["a"]`)) != nil {
		t.Error("FromJSON() of an array should be nil")
	}
}
