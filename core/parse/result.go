package parse

import (
	"github.com/leofalp/sectionparse/core/content"
	"github.com/leofalp/sectionparse/core/normalize"
)

// Input is one model response to parse.
type Input struct {
	// Raw is the model output, verbatim.
	Raw string `json:"raw"`
	// ExpectedCounts optionally maps section ids, normalized ids or family
	// keys to the number of items the caller asked for. It is only read.
	ExpectedCounts normalize.ExpectedCounts `json:"expectedCounts,omitempty"`
}

// Result is the outcome of one Parse call. Success is true exactly when
// Errors is empty.
type Result struct {
	Success   bool                        `json:"success"`
	Content   map[string]*content.Section `json:"content"`
	IsPartial bool                        `json:"isPartial"`
	Warnings  []string                    `json:"warnings"`
	Errors    []string                    `json:"errors"`
	// SectionOrder lists the keys of Content in source order.
	SectionOrder []string `json:"sectionOrder"`
}

func newResult() *Result {
	return &Result{
		Content:      map[string]*content.Section{},
		Warnings:     []string{},
		Errors:       []string{},
		SectionOrder: []string{},
	}
}

// Section returns the content of the named section, or nil.
func (r *Result) Section(id string) *content.Section {
	return r.Content[id]
}

// fail records a hard error.
func (r *Result) fail(err error) {
	r.Errors = append(r.Errors, hardErrorMessage(err))
	r.Success = false
}

// warn records soft issues. Any warning makes the result partial.
func (r *Result) warn(warnings ...string) {
	if len(warnings) == 0 {
		return
	}
	r.Warnings = append(r.Warnings, warnings...)
	r.IsPartial = true
}

// addSection stores one section outcome, keeping source order.
func (r *Result) addSection(id string, out normalize.Outcome) {
	if _, seen := r.Content[id]; !seen {
		r.SectionOrder = append(r.SectionOrder, id)
	}
	r.Content[id] = out.Content
	r.warn(out.Warnings...)
	if out.HasIssues {
		r.IsPartial = true
	}
}

// seal derives Success from Errors.
func (r *Result) seal() {
	r.Success = len(r.Errors) == 0
}
