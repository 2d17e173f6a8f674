package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across the pipeline stages.

// --- Run Attributes ---

const (
	// AttrRunID identifies a single parse invocation
	AttrRunID = "parse.run_id"

	// AttrInputLength is the length of the raw model output in bytes
	AttrInputLength = "parse.input.length"

	// AttrInputPreview is a truncated preview of the raw model output
	AttrInputPreview = "parse.input.preview"

	// AttrSuccess reports whether the run produced no hard errors
	AttrSuccess = "parse.success"

	// AttrPartial reports whether the run carries warnings
	AttrPartial = "parse.partial"

	// AttrWarningsCount is the number of warnings in the result
	AttrWarningsCount = "parse.warnings.count"

	// AttrErrorsCount is the number of hard errors in the result
	AttrErrorsCount = "parse.errors.count"

	// AttrDuration is the wall time of the run
	AttrDuration = "parse.duration"
)

// --- Extraction Attributes ---

const (
	// AttrExtractStrategy names the extraction strategy that produced the candidate
	AttrExtractStrategy = "extract.strategy"

	// AttrCandidateLength is the length of the extracted candidate
	AttrCandidateLength = "extract.candidate.length"

	// AttrCandidatePreview is a truncated preview of the extracted candidate
	AttrCandidatePreview = "extract.candidate.preview"
)

// --- Structure Attributes ---

const (
	// AttrRootKeys lists the top-level keys of the parsed object
	AttrRootKeys = "structure.root.keys"

	// AttrSectionsCount is the number of sections found
	AttrSectionsCount = "structure.sections.count"

	// AttrWrapperKey names the wrapper key that was unwrapped
	AttrWrapperKey = "structure.wrapper"
)

// --- Section Attributes ---

const (
	// AttrSectionID is the id of the section being processed
	AttrSectionID = "section.id"

	// AttrShapeName is the name of the shape descriptor selected for a section
	AttrShapeName = "section.shape"

	// AttrFieldName is the field being processed
	AttrFieldName = "section.field"

	// AttrFieldsCount is the number of fields in a section
	AttrFieldsCount = "section.fields.count"
)

// --- Metric Names ---

const (
	// MetricRuns counts parse invocations
	MetricRuns = "sectionparse.runs"

	// MetricSections counts sections processed
	MetricSections = "sectionparse.sections"

	// MetricWarnings counts warnings emitted
	MetricWarnings = "sectionparse.warnings"

	// MetricHardErrors counts hard errors emitted
	MetricHardErrors = "sectionparse.hard_errors"

	// MetricDurationMs records run duration in milliseconds
	MetricDurationMs = "sectionparse.duration_ms"
)
