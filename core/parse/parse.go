package parse

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/leofalp/sectionparse/core/content"
	"github.com/leofalp/sectionparse/core/extract"
	"github.com/leofalp/sectionparse/core/normalize"
	"github.com/leofalp/sectionparse/core/shape"
	"github.com/leofalp/sectionparse/internal/utils"
	"github.com/leofalp/sectionparse/providers/observability"
)

// Parser runs the extraction, validation and normalization pipeline. It
// holds no per-call state and is safe for concurrent use.
type Parser struct {
	logger           observability.Logger
	registry         *shape.Registry
	repair           bool
	recoverTruncated bool
	normalizeHTML    bool
}

// New creates a Parser. Without options it uses the built-in shape registry,
// does not log, and reports malformed JSON as a hard error.
//
// Example usage:
//
//	p := parse.New(
//	    parse.WithLogger(slogobs.New()),
//	    parse.WithJSONRepair(true),
//	    parse.WithTruncationRecovery(true),
//	)
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.registry == nil {
		p.registry = shape.Default()
	}
	return p
}

// Parse parses raw model output with a default Parser.
func Parse(ctx context.Context, raw string) *Result {
	return New().Parse(ctx, Input{Raw: raw})
}

// Parse runs the pipeline over in. It never fails: hard errors are reported
// in Result.Errors.
func (p *Parser) Parse(ctx context.Context, in Input) *Result {
	logger := p.logger
	if logger == nil {
		logger = observability.LoggerFromContext(ctx)
	}
	runID := uuid.NewString()
	timer := utils.NewTimer()
	res := newResult()

	if logger != nil {
		logger.Debug(ctx, "Parse started",
			observability.String(observability.AttrRunID, runID),
			observability.Int(observability.AttrInputLength, len(in.Raw)),
			observability.String(observability.AttrInputPreview, utils.Preview(in.Raw)),
		)
	}
	defer p.finish(ctx, logger, runID, timer, res)

	// 1. Extract a candidate object.
	extractor := extract.New(
		extract.WithLogger(logger),
		extract.WithTruncationRecovery(p.recoverTruncated),
		extract.WithHTMLNormalization(p.normalizeHTML),
	)
	cand, ok := extractor.Extract(ctx, in.Raw)
	if !ok {
		res.fail(ErrNoJSON)
		return res
	}

	// 2. Decode it, repairing if allowed.
	root, note, err := decode(cand, p.repair)
	if err != nil {
		res.fail(err)
		return res
	}
	if note != "" {
		res.warn(note)
	}

	// 3. Validate the root and find the sections.
	st, err := validateStructure(root)
	res.warn(st.warnings...)
	if st.partial {
		res.IsPartial = true
	}
	if err != nil {
		res.fail(err)
		return res
	}
	if logger != nil {
		attrs := []observability.Attribute{
			observability.String(observability.AttrRunID, runID),
			observability.Strings(observability.AttrRootKeys, st.sections.Names()),
			observability.Int(observability.AttrSectionsCount, len(st.sections)),
		}
		if st.wrapper != "" {
			attrs = append(attrs, observability.String(observability.AttrWrapperKey, st.wrapper))
		}
		logger.Debug(ctx, "Structure validated", attrs...)
	}

	// 4. Normalize every section. A section is never dropped.
	normalizer := normalize.New(normalize.WithLogger(logger))
	for _, f := range st.sections {
		res.addSection(f.Name, p.section(ctx, logger, normalizer, f.Name, f.Value, in.ExpectedCounts))
	}

	return res
}

// section normalizes one section, converting a panic into a warning and the
// section's raw fields.
func (p *Parser) section(ctx context.Context, logger observability.Logger, n *normalize.Normalizer, id string, value gjson.Result, counts normalize.ExpectedCounts) (out normalize.Outcome) {
	if !value.IsObject() {
		return normalize.Outcome{
			Content:   content.NewSection(0),
			Warnings:  []string{fmt.Sprintf("Section %s has invalid format", id)},
			HasIssues: true,
		}
	}

	raw := normalize.FromJSON(value)
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("%s: section processing failed: %v", id, r)
			if logger != nil {
				logger.Error(ctx, "Section processing failed",
					observability.String(observability.AttrSectionID, id),
					observability.String("panic", fmt.Sprint(r)),
				)
			}
			out = normalize.Outcome{
				Content:   normalize.BestEffort(raw),
				Warnings:  []string{msg},
				HasIssues: true,
			}
		}
	}()

	return n.Section(ctx, id, raw, p.registry.Select(id), counts)
}

// finish seals the result and emits the run summary and metrics.
func (p *Parser) finish(ctx context.Context, logger observability.Logger, runID string, timer *utils.Timer, res *Result) {
	res.seal()
	duration := timer.Stop()
	if logger == nil {
		return
	}

	attrs := []observability.Attribute{
		observability.String(observability.AttrRunID, runID),
		observability.Bool(observability.AttrSuccess, res.Success),
		observability.Bool(observability.AttrPartial, res.IsPartial),
		observability.Int(observability.AttrSectionsCount, len(res.SectionOrder)),
		observability.Int(observability.AttrWarningsCount, len(res.Warnings)),
		observability.Int(observability.AttrErrorsCount, len(res.Errors)),
		observability.Duration(observability.AttrDuration, duration),
	}
	switch {
	case !res.Success:
		logger.Error(ctx, "Parse failed", append(attrs, observability.Strings("errors", res.Errors))...)
	case res.IsPartial:
		logger.Warn(ctx, "Parse completed with warnings", attrs...)
	default:
		logger.Debug(ctx, "Parse completed", attrs...)
	}

	metrics, ok := logger.(observability.Metrics)
	if !ok {
		return
	}
	status := observability.Bool(observability.AttrSuccess, res.Success)
	metrics.Counter(observability.MetricRuns).Add(ctx, 1, status)
	metrics.Counter(observability.MetricSections).Add(ctx, int64(len(res.SectionOrder)))
	metrics.Counter(observability.MetricWarnings).Add(ctx, int64(len(res.Warnings)))
	metrics.Counter(observability.MetricHardErrors).Add(ctx, int64(len(res.Errors)))
	metrics.Histogram(observability.MetricDurationMs).Record(ctx, timer.Milliseconds(), status)
}
