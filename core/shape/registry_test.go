package shape

import (
	"testing"
)

func TestRegistry_Select(t *testing.T) {
	registry := Default()

	tests := []struct {
		sectionID string
		want      string
	}{
		{"faq_InlineQnAList_1", "inline-qna"},
		{"AccordionFAQ", "accordion-faq"},
		{"faq_TwoColumnFAQ", "two-column-faq"},
		{"SegmentedFAQTabs_main", "segmented-faq-tabs"},
		{"QuoteStyleAnswers", "quote-style-answers"},
		{"IconWithAnswers", "icon-with-answers"},
		{"TestimonialFAQs", "testimonial-faqs"},
		{"ChatBubbleFAQ", "chat-bubble-faq"},
		{"beforeAfter_BeforeAfterSlider", "before-after-slider"},
		{"SideBySideBlocks", "side-by-side-blocks"},
		{"TextListTransformation", "text-list-transformation"},
		{"StatComparison", "before-after-generic"},
		{"PersonaJourney_2", "before-after-generic"},
		{"results_EmojiOutcomeGrid", "emoji-outcome-grid"},
		{"AlgorithmExplainer", "algorithm-explainer"},
		{"InnovationTimeline", "innovation-timeline"},
		{"MethodologyBreakdown", "methodology-breakdown"},
		{"ProcessFlowDiagram", "process-flow-diagram"},
		{"PropertyComparisonMatrix", "property-comparison-matrix"},
		{"SecretSauceReveal", "secret-sauce-reveal"},
		{"StackedHighlights", "stacked-highlights"},
		{"SystemArchitecture", "system-architecture"},
		{"TechnicalAdvantage", "technical-advantage"},
		{"hero", "hero"},
		{"LeftCopyRightImage_Hero", "hero"},
		{"pricing", "generic"},
		{"", "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.sectionID, func(t *testing.T) {
			if got := registry.Select(tt.sectionID).Name; got != tt.want {
				t.Errorf("Select(%q) = %q, want %q", tt.sectionID, got, tt.want)
			}
		})
	}
}

func TestRegistry_FirstMatchWins(t *testing.T) {
	// Matches both the AccordionFAQ and hero entries.
	if got := Default().Select("HeroAccordionFAQ").Name; got != "accordion-faq" {
		t.Errorf("Select() = %q, want accordion-faq", got)
	}

	first := &Descriptor{Name: "first"}
	second := &Descriptor{Name: "second"}
	registry := NewRegistry([]Entry{
		{Match: Contains("FAQ"), Descriptor: first},
		{Match: Contains("AccordionFAQ"), Descriptor: second},
	})
	if got := registry.Select("AccordionFAQ").Name; got != "first" {
		t.Errorf("Select() = %q, want first", got)
	}
}

func TestRegistry_EntriesOrder(t *testing.T) {
	registry := Default()
	names := registry.Names()

	if len(names) != 24 {
		t.Fatalf("Names() has %d entries, want 24", len(names))
	}
	if names[0] != "inline-qna" || names[22] != "hero" || names[23] != "generic" {
		t.Errorf("Names() order = %v", names)
	}

	entries := registry.Entries()
	entries[0] = Entry{}
	if registry.Entries()[0].Descriptor == nil {
		t.Error("Entries() should return a copy")
	}
}

func TestRegistry_Cache(t *testing.T) {
	for _, size := range []int{0, 1, DefaultCacheSize} {
		registry := Default(WithCacheSize(size))
		for i := 0; i < 3; i++ {
			if got := registry.Select("AccordionFAQ").Name; got != "accordion-faq" {
				t.Errorf("size %d: Select() = %q, want accordion-faq", size, got)
			}
			if got := registry.Select("other").Name; got != "generic" {
				t.Errorf("size %d: Select() = %q, want generic", size, got)
			}
		}
	}
}

func TestRegistry_WithGeneric(t *testing.T) {
	fallback := &Descriptor{Name: "strict", Required: []string{"headline"}}
	registry := NewRegistry(nil, WithGeneric(fallback))

	if got := registry.Select("anything"); got != fallback {
		t.Errorf("Select() = %v, want custom generic", got.Name)
	}
}

func TestContainsFold(t *testing.T) {
	match := ContainsFold("Hero")
	for _, id := range []string{"hero", "HERO_1", "mainHero"} {
		if !match(id) {
			t.Errorf("ContainsFold(Hero)(%q) = false, want true", id)
		}
	}
	if match("features") {
		t.Error("ContainsFold(Hero)(features) = true, want false")
	}
}
