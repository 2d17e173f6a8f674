package shape

// Families used as expected-count fallback keys.
const (
	FamilyFAQ         = "faq"
	FamilyBeforeAfter = "before-after"
	FamilyEmojiGrid   = "emoji-outcome-grid"
	FamilyMechanism   = "unique-mechanism"
	FamilyHero        = "hero"
)

var (
	questionMember = Member{Pattern: "question_{i}", Label: "question"}
	answerMember   = Member{Pattern: "answer_{i}", Label: "answer"}

	beforeAfterPairs = []PairSpec{
		{Left: Member{Pattern: "before_label", Label: "before label"}, Right: Member{Pattern: "after_label", Label: "after label"}},
		{Left: Member{Pattern: "before_description", Label: "before description"}, Right: Member{Pattern: "after_description", Label: "after description"}},
	}

	trustItemsRule = FieldRule{Field: "trust_items", Kind: KindPipeList, MinItems: 1}
	iconRule       = FieldRule{Field: "icon", Match: MatchContains, Kind: KindIcon}
)

// Builtin returns the built-in entries in evaluation order. Each call returns
// fresh descriptors.
func Builtin() []Entry {
	return []Entry{
		{Contains("InlineQnAList"), qnaDescriptor("inline-qna")},
		{Contains("AccordionFAQ"), qnaDescriptor("accordion-faq")},
		{Contains("TwoColumnFAQ"), twoColumnFAQ()},
		{Contains("SegmentedFAQTabs"), segmentedFAQTabs()},
		{Contains("QuoteStyleAnswers"), quoteStyleAnswers()},
		{Contains("IconWithAnswers"), iconWithAnswers()},
		{Contains("TestimonialFAQs"), testimonialFAQs()},
		{Contains("ChatBubbleFAQ"), chatBubbleFAQ()},
		{Contains("BeforeAfterSlider"), beforeAfterSlider()},
		{Contains("SideBySideBlocks"), sideBySideBlocks()},
		{Contains("TextListTransformation"), textListTransformation()},
		{Contains("StatComparison", "StackedTextVisual", "VisualStoryline", "PersonaJourney", "SplitCard"), beforeAfterGeneric()},
		{Contains("EmojiOutcomeGrid"), emojiOutcomeGrid()},
		{Contains("AlgorithmExplainer"), singleLegacy("algorithm-explainer", "algorithm_steps", "algorithm_step_{i}", "Converted legacy algorithm_steps to individual step fields")},
		{Contains("InnovationTimeline"), singleLegacy("innovation-timeline", "timeline_items", "timeline_item_{i}", "Converted legacy timeline_items to individual item fields")},
		{Contains("MethodologyBreakdown"), methodologyBreakdown()},
		{Contains("ProcessFlowDiagram"), pipeLists("process-flow-diagram", "process_steps", 2, "items", "process_steps", "step_descriptions", "benefit_titles", "benefit_descriptions")},
		{Contains("PropertyComparisonMatrix"), pipeLists("property-comparison-matrix", "properties", 3, "comparison points", "properties", "us_values", "competitors_values")},
		{Contains("SecretSauceReveal"), &Descriptor{Name: "secret-sauce-reveal", Family: FamilyMechanism}},
		{Contains("StackedHighlights"), pipeLists("stacked-highlights", "highlight_titles", 3, "highlights", "highlight_titles", "highlight_descriptions")},
		{Contains("SystemArchitecture"), singleLegacy("system-architecture", "architecture_components", "component_{i}", "Converted legacy architecture_components to individual component fields")},
		{Contains("TechnicalAdvantage"), pipeLists("technical-advantage", "advantages", 3, "advantages", "advantages", "advantage_descriptions")},
		{ContainsFold("hero"), &Descriptor{Name: "hero", Family: FamilyHero, Required: []string{"headline", "cta_text"}}},
	}
}

func qnaDescriptor(name string) *Descriptor {
	return &Descriptor{
		Name:     name,
		Family:   FamilyFAQ,
		Required: []string{"headline"},
		Pairs:    []PairSpec{{Left: questionMember, Right: answerMember}},
		Legacy: []LegacySpec{{
			Sources: []LegacySource{
				{Field: "questions", Target: "question_{i}"},
				{Field: "answers", Target: "answer_{i}"},
			},
			Max:     6,
			Message: "Converted legacy pipe-separated format to individual Q&A fields",
		}},
		MinItems:    1,
		MaxItems:    6,
		CountFamily: "question_{i}",
	}
}

func twoColumnFAQ() *Descriptor {
	return &Descriptor{
		Name:     "two-column-faq",
		Family:   FamilyFAQ,
		Required: []string{"headline"},
		Buckets:  []Bucket{{Key: "left_", Label: "Left column"}, {Key: "right_", Label: "Right column"}},
		Pairs: []PairSpec{{
			Left:  Member{Pattern: "{b}question_{i}", Label: "question"},
			Right: Member{Pattern: "{b}answer_{i}", Label: "answer"},
		}},
		Legacy: []LegacySpec{{
			Sources: []LegacySource{
				{Field: "questions", Target: "{b}question_{i}"},
				{Field: "answers", Target: "{b}answer_{i}"},
			},
			Max:       6,
			PerBucket: 3,
			Message:   "Converted legacy format to two-column Q&A fields",
		}},
		MinItems:    1,
		MaxItems:    6,
		CountFamily: "{b}question_{i}",
	}
}

func segmentedFAQTabs() *Descriptor {
	return &Descriptor{
		Name:     "segmented-faq-tabs",
		Family:   FamilyFAQ,
		Required: []string{"headline"},
		Buckets:  []Bucket{{Key: "1", Label: "Tab 1"}, {Key: "2", Label: "Tab 2"}, {Key: "3", Label: "Tab 3"}},
		Pairs: []PairSpec{{
			Left:  Member{Pattern: "tab_{b}_question_{i}", Label: "question"},
			Right: Member{Pattern: "tab_{b}_answer_{i}", Label: "answer"},
		}},
		Legacy: []LegacySpec{
			{
				Sources: []LegacySource{{Field: "tab_labels", Target: "tab_{i}_label"}},
				Max:     3,
				Message: "Converted legacy tab_labels to individual tab label fields",
			},
			{
				Sources: []LegacySource{
					{Field: "questions", Target: "tab_{b}_question_{i}"},
					{Field: "answers", Target: "tab_{b}_answer_{i}"},
				},
				Max:       9,
				PerBucket: 3,
				Message:   "Converted legacy format to tab-specific Q&A fields",
			},
		},
		MinItems:    1,
		MaxItems:    9,
		CountFamily: "tab_{b}_question_{i}",
	}
}

func quoteStyleAnswers() *Descriptor {
	quote := Member{Pattern: "quote_answer_{i}", Label: "quote answer"}
	return &Descriptor{
		Name:     "quote-style-answers",
		Family:   FamilyFAQ,
		Required: []string{"headline"},
		Pairs:    []PairSpec{{Left: questionMember, Right: quote}},
		Requires: []Requirement{{Field: quote.Pattern, Needs: "attribution_{i}", Label: "Quote answer", Message: "has no attribution"}},
		Legacy: []LegacySpec{{
			Sources: []LegacySource{
				{Field: "questions", Target: "question_{i}"},
				{Field: "quote_answers", Target: quote.Pattern},
			},
			Companions: []LegacySource{{Field: "quote_attributions", Target: "attribution_{i}", Default: "Anonymous"}},
			Max:        5,
			Message:    "Converted legacy format to individual quote Q&A fields",
		}},
		MinItems:    1,
		MaxItems:    5,
		CountFamily: "question_{i}",
	}
}

func iconWithAnswers() *Descriptor {
	return &Descriptor{
		Name:     "icon-with-answers",
		Family:   FamilyFAQ,
		Required: []string{"headline"},
		Pairs:    []PairSpec{{Left: questionMember, Right: answerMember}},
		Requires: []Requirement{{Field: "question_{i}", Needs: "icon_{i}", Label: "Question", Message: "has no corresponding icon"}},
		Legacy: []LegacySpec{{
			Sources: []LegacySource{
				{Field: "questions", Target: "question_{i}"},
				{Field: "answers", Target: "answer_{i}"},
			},
			Companions: []LegacySource{{Field: "icon_labels", Target: "icon_{i}", Default: "❓"}},
			Max:        6,
			Message:    "Converted legacy format to individual icon Q&A fields",
		}},
		MinItems:    1,
		MaxItems:    6,
		CountFamily: "question_{i}",
	}
}

func testimonialFAQs() *Descriptor {
	testimonial := Member{Pattern: "testimonial_answer_{i}", Label: "testimonial answer"}
	return &Descriptor{
		Name:     "testimonial-faqs",
		Family:   FamilyFAQ,
		Required: []string{"headline"},
		Pairs:    []PairSpec{{Left: questionMember, Right: testimonial}},
		Requires: []Requirement{{Field: testimonial.Pattern, Needs: "customer_name_{i}", Label: "Testimonial answer", Message: "has no customer name"}},
		Legacy: []LegacySpec{{
			Sources: []LegacySource{
				{Field: "questions", Target: "question_{i}"},
				{Field: "testimonial_answers", Target: testimonial.Pattern},
			},
			Companions: []LegacySource{
				{Field: "customer_names", Target: "customer_name_{i}", Default: "Anonymous Customer"},
				{Field: "customer_titles", Target: "customer_title_{i}"},
			},
			Max:     5,
			Message: "Converted legacy format to individual testimonial Q&A fields",
		}},
		MinItems:    1,
		MaxItems:    5,
		CountFamily: "question_{i}",
	}
}

func chatBubbleFAQ() *Descriptor {
	return &Descriptor{
		Name:     "chat-bubble-faq",
		Family:   FamilyFAQ,
		Required: []string{"headline"},
		Pairs:    []PairSpec{{Left: questionMember, Right: answerMember, Label: "Chat"}},
		Legacy: []LegacySpec{{
			Sources: []LegacySource{
				{Field: "questions", Target: "question_{i}"},
				{Field: "answers", Target: "answer_{i}"},
			},
			Companions: []LegacySource{{Field: "chat_personas", Target: "persona_{i}"}},
			Max:        5,
			Message:    "Converted legacy format to individual chat Q&A fields",
		}},
		MinItems:    1,
		MaxItems:    5,
		CountFamily: "question_{i}",
	}
}

func beforeAfterSlider() *Descriptor {
	return &Descriptor{
		Name:     "before-after-slider",
		Family:   FamilyBeforeAfter,
		Required: []string{"before_label", "after_label"},
		Pairs:    beforeAfterPairs,
		Rules: []FieldRule{
			trustItemsRule,
			iconRule,
			{Field: "show_interaction_hint", Kind: KindBool},
		},
		IconDefaults: map[string]string{"before_icon": "⚠️", "after_icon": "✅", "hint_icon": "👆"},
		IconDefault:  DefaultIcon,
	}
}

func sideBySideBlocks() *Descriptor {
	return &Descriptor{
		Name:         "side-by-side-blocks",
		Family:       FamilyBeforeAfter,
		Required:     []string{"before_label", "after_label"},
		Pairs:        beforeAfterPairs,
		Rules:        []FieldRule{trustItemsRule, iconRule},
		IconDefaults: map[string]string{"before_icon": "⚠️", "after_icon": "✅"},
		IconDefault:  DefaultIcon,
	}
}

func textListTransformation() *Descriptor {
	pairs := append([]PairSpec{{
		Left:  Member{Pattern: "before_list", Label: "before list"},
		Right: Member{Pattern: "after_list", Label: "after list"},
	}}, beforeAfterPairs...)
	return &Descriptor{
		Name:   "text-list-transformation",
		Family: FamilyBeforeAfter,
		Pairs:  pairs,
		Rules: []FieldRule{
			{Field: "before_list", Kind: KindPipeList, MinItems: 1},
			{Field: "after_list", Kind: KindPipeList, MinItems: 1},
			trustItemsRule,
			iconRule,
		},
		IconDefaults: map[string]string{"before_icon": "❌", "after_icon": "✅", "transformation_icon": "➡️"},
		IconDefault:  DefaultIcon,
	}
}

func beforeAfterGeneric() *Descriptor {
	return &Descriptor{
		Name:   "before-after-generic",
		Family: FamilyBeforeAfter,
		Rules: []FieldRule{
			{Field: "stats", Match: MatchContains, Kind: KindPipeList, MinItems: 1},
			{Field: "steps", Match: MatchContains, Kind: KindPipeList, MinItems: 1},
			{Field: "journey", Match: MatchContains, Kind: KindPipeList, MinItems: 1},
			trustItemsRule,
			iconRule,
			{Field: "show_", Match: MatchContains, Kind: KindBool},
		},
		IconDefault: "📊",
	}
}

func emojiOutcomeGrid() *Descriptor {
	fields := []string{"emojis", "outcomes", "descriptions"}
	rules := make([]FieldRule, 0, len(fields))
	for _, f := range fields {
		rules = append(rules, FieldRule{Field: f, Kind: KindPipeList, AllowEmpty: true})
	}
	return &Descriptor{
		Name:     "emoji-outcome-grid",
		Family:   FamilyEmojiGrid,
		Required: []string{"emojis", "outcomes"},
		Rules:    rules,
		Aligned: []AlignedGroup{{
			Fields: fields,
			Defaults: map[string][]string{
				"emojis":       {"🚀", "💡", "⭐", "🎯", "📈", "✨"},
				"outcomes":     {"Amazing Result", "Great Outcome", "Success Achieved", "Goal Reached", "Milestone Hit", "Victory Won"},
				"descriptions": {"Experience incredible improvements", "See remarkable transformations", "Achieve outstanding results", "Reach new heights", "Unlock new potential", "Discover new possibilities"},
			},
			DefaultCount: 3,
		}},
		MinItems:   1,
		MaxItems:   6,
		CountField: "emojis",
	}
}

func singleLegacy(name, field string, target Pattern, message string) *Descriptor {
	return &Descriptor{
		Name:   name,
		Family: FamilyMechanism,
		Legacy: []LegacySpec{{
			Sources:     []LegacySource{{Field: field, Target: target}},
			RequirePipe: true,
			Message:     message,
		}},
	}
}

func methodologyBreakdown() *Descriptor {
	spec := func(field string, target Pattern, noun string) LegacySpec {
		return LegacySpec{
			Sources:     []LegacySource{{Field: field, Target: target}},
			RequirePipe: true,
			Message:     "Converted legacy " + field + " to individual " + noun + " fields",
		}
	}
	return &Descriptor{
		Name:   "methodology-breakdown",
		Family: FamilyMechanism,
		Pairs: []PairSpec{{
			Left:  Member{Pattern: "principle_{i}", Label: "principle"},
			Right: Member{Pattern: "detail_{i}", Label: "detail"},
		}},
		Legacy: []LegacySpec{
			spec("key_principles", "principle_{i}", "principle"),
			spec("principle_details", "detail_{i}", "detail"),
			spec("result_metrics", "result_metric_{i}", "metric"),
			spec("result_labels", "result_label_{i}", "label"),
		},
	}
}

func pipeLists(name, required string, minItems int, noun string, fields ...string) *Descriptor {
	rules := make([]FieldRule, 0, len(fields))
	for _, f := range fields {
		rules = append(rules, FieldRule{Field: f, Kind: KindPipeList, MinItems: minItems, Noun: noun})
	}
	return &Descriptor{
		Name:     name,
		Family:   FamilyMechanism,
		Required: []string{required},
		Rules:    rules,
	}
}
