package normalize

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/leofalp/sectionparse/core/content"
	"github.com/leofalp/sectionparse/core/shape"
	"github.com/leofalp/sectionparse/providers/observability"
)

// Outcome is the processed content of one section and what went wrong.
type Outcome struct {
	Content   *content.Section
	Warnings  []string
	HasIssues bool
}

// Option is a functional option for configuring the Normalizer.
type Option func(*Normalizer)

// WithLogger sets the logger receiving per-section debug events.
func WithLogger(logger observability.Logger) Option {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

// Normalizer applies a descriptor to raw sections. It holds no per-call state
// and is safe for concurrent use.
type Normalizer struct {
	logger observability.Logger
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Section normalizes one section against d. counts may be nil.
func (n *Normalizer) Section(ctx context.Context, sectionID string, raw Raw, d *shape.Descriptor, counts ExpectedCounts) Outcome {
	fields, warnings := ConvertLegacy(sectionID, raw, d)

	sec := content.NewSection(len(fields))
	for _, f := range fields {
		var res FieldResult
		if rule, ok := d.RuleFor(f.Name); ok {
			res = applyRule(sectionID, f.Name, f.Value, rule, d)
		} else {
			res = ProcessField(sectionID, f.Name, f.Value)
		}
		sec.Set(f.Name, res.Final())
		warnings = append(warnings, res.Warnings...)
	}

	warnings = append(warnings, alignGroups(sectionID, sec, d)...)
	warnings = append(warnings, ValidateShape(sectionID, sec, d, counts)...)

	if n.logger != nil {
		n.logger.Debug(ctx, "Section normalized",
			observability.String(observability.AttrSectionID, sectionID),
			observability.String(observability.AttrShapeName, d.Name),
			observability.Int(observability.AttrFieldsCount, sec.Len()),
			observability.Int(observability.AttrWarningsCount, len(warnings)),
		)
	}

	return Outcome{Content: sec, Warnings: warnings, HasIssues: len(warnings) > 0}
}

// BestEffort copies raw fields into a section without validation: strings
// as scalars, arrays as lists of their textual entries, anything else as its
// JSON text.
func BestEffort(raw Raw) *content.Section {
	sec := content.NewSection(len(raw))
	for _, f := range raw {
		switch {
		case f.Value.IsArray():
			var items []string
			for _, e := range f.Value.Array() {
				items = append(items, e.String())
			}
			sec.Set(f.Name, content.List(items...))
		case f.Value.Type == gjson.String:
			sec.Set(f.Name, content.Scalar(f.Value.Str))
		default:
			sec.Set(f.Name, content.Scalar(f.Value.Raw))
		}
	}
	return sec
}
