package extract

import (
	"context"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leofalp/sectionparse/internal/utils"
	"github.com/leofalp/sectionparse/providers/observability"
)

// Strategy names the rule that produced a candidate.
type Strategy string

const (
	StrategyLabeledFence   Strategy = "labeled_fence"
	StrategyUnlabeledFence Strategy = "unlabeled_fence"
	StrategyBalancedScan   Strategy = "balanced_scan"
	StrategyGreedy         Strategy = "greedy"
	StrategyTruncated      Strategy = "truncated"
)

// Candidate is a substring believed to hold one JSON object.
type Candidate struct {
	Text     string
	Strategy Strategy
	// Truncated is set when the object never closes; Text is then only
	// usable after JSON repair.
	Truncated bool
}

var (
	preamblePattern   = regexp.MustCompile("(?i)^\\s*(?:here(?:'s|’s)?|based on|sure|certainly)\\b[^\\n{`]*?:[ \\t]*")
	jsonMarkerPattern = regexp.MustCompile(`(?i)^\s*\*\*json\*\*:?\s*`)
	fenceHintPattern  = regexp.MustCompile("(?i)```[ \\t]*json")
	labeledFence      = regexp.MustCompile("(?s)```json[ \\t]*\\r?\\n?(.*?)```")
	unlabeledFence    = regexp.MustCompile("(?s)```[ \\t]*\\r?\\n?(.*?)```")
	htmlCodePattern   = regexp.MustCompile(`(?i)<(?:pre|code)[\s>]`)
)

// Extractor finds JSON object candidates in raw model output. It holds no
// per-call state and is safe for concurrent use.
type Extractor struct {
	logger           observability.Logger
	recoverTruncated bool
	normalizeHTML    bool
}

// New creates an Extractor. Without options it does not log, leaves HTML
// untouched, and never returns truncated candidates.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the best candidate in raw and true, or false when no
// strategy produced one.
func (e *Extractor) Extract(ctx context.Context, raw string) (Candidate, bool) {
	logger := observability.OrNop(e.logger)

	text := raw
	if e.normalizeHTML {
		text = e.htmlToMarkdown(ctx, text)
	}
	text = StripPreamble(text)

	for _, try := range []struct {
		strategy Strategy
		find     func(string) (string, bool)
	}{
		{StrategyLabeledFence, func(s string) (string, bool) { return firstBalancedFence(labeledFence, s) }},
		{StrategyUnlabeledFence, func(s string) (string, bool) { return firstBalancedFence(unlabeledFence, s) }},
		{StrategyBalancedScan, ScanBalanced},
		{StrategyGreedy, greedy},
	} {
		if found, ok := try.find(text); ok {
			logger.Debug(ctx, "JSON candidate extracted",
				observability.String(observability.AttrExtractStrategy, string(try.strategy)),
				observability.Int(observability.AttrCandidateLength, len(found)),
				observability.String(observability.AttrCandidatePreview, utils.Preview(found)),
			)
			return Candidate{Text: found, Strategy: try.strategy}, true
		}
	}

	if e.recoverTruncated {
		if tail, ok := truncatedTail(text); ok {
			logger.Debug(ctx, "Unterminated JSON object offered for repair",
				observability.String(observability.AttrExtractStrategy, string(StrategyTruncated)),
				observability.Int(observability.AttrCandidateLength, len(tail)),
			)
			return Candidate{Text: tail, Strategy: StrategyTruncated, Truncated: true}, true
		}
	}

	logger.Debug(ctx, "No JSON candidate found",
		observability.Int(observability.AttrInputLength, len(raw)),
		observability.String(observability.AttrInputPreview, utils.Preview(raw)),
	)
	return Candidate{}, false
}

// StripPreamble removes a leading prose lead-in such as "Here's the JSON:" or
// a "**JSON**" marker, and rewrites "``` json" fence openers to "```json".
func StripPreamble(s string) string {
	s = preamblePattern.ReplaceAllString(s, "")
	s = jsonMarkerPattern.ReplaceAllString(s, "")
	return fenceHintPattern.ReplaceAllString(s, "```json")
}

// IsBalanced reports whether the trimmed text starts with '{', ends with '}',
// and its brace count never goes negative and ends at zero. Braces inside
// string literals are counted too.
func IsBalanced(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// ScanBalanced walks s from its first '{' and returns the object ending at
// the matching '}'. Braces inside string literals and escaped quotes are
// skipped. It reports false when there is no '{' or the object never closes.
func ScanBalanced(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func firstBalancedFence(pattern *regexp.Regexp, s string) (string, bool) {
	for _, match := range pattern.FindAllStringSubmatch(s, -1) {
		body := strings.TrimSpace(match[1])
		if IsBalanced(body) {
			return body, true
		}
	}
	return "", false
}

func greedy(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return "", false
	}
	candidate := s[start : end+1]
	return candidate, IsBalanced(candidate)
}

// truncatedTail returns everything from the first '{', minus a trailing
// fence closer.
func truncatedTail(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	tail := strings.TrimSpace(s[start:])
	tail = strings.TrimSpace(strings.TrimSuffix(tail, "```"))
	return tail, tail != ""
}

func (e *Extractor) htmlToMarkdown(ctx context.Context, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "<") || !htmlCodePattern.MatchString(trimmed) {
		return raw
	}
	markdown, err := htmltomarkdown.ConvertString(trimmed)
	if err != nil {
		observability.OrNop(e.logger).Debug(ctx, "HTML normalization failed, using raw input",
			observability.Error(err),
		)
		return raw
	}
	return markdown
}
