package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/leofalp/sectionparse/core/content"
	"github.com/leofalp/sectionparse/core/parse"
)

// MetadataParseSectionContent describes the parse_section_content tool.
var MetadataParseSectionContent = &mcp.Tool{
	Name: "parse_section_content",
	Description: "Parse the raw output of a language model that should contain one JSON object of page " +
		"sections, and return validated, normalized section content. " +
		"Prose, markdown fences and wrapper objects are tolerated. " +
		"Fields are checked against the section's shape (required fields, question/answer pairs, " +
		"item counts); invalid fields are replaced by fallbacks and reported as warnings. " +
		"success is false only when no usable object could be extracted.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw model output to parse",
			},
			"expected_counts": map[string]interface{}{
				"type":                 "object",
				"description":          "Optional expected item counts keyed by section id, normalized id, or family (faq, before-after, emoji-outcome-grid).",
				"additionalProperties": map[string]interface{}{"type": "integer"},
			},
		},
	},
}

// InputParseSectionContent is the input for the ParseSectionContent tool.
type InputParseSectionContent struct {
	Content        string         `json:"content"`
	ExpectedCounts map[string]int `json:"expected_counts,omitempty"`
}

// OutputParseSectionContent is the output for the ParseSectionContent tool.
type OutputParseSectionContent struct {
	Success   bool `json:"success"`
	IsPartial bool `json:"is_partial"`
	// Sections holds the normalized content in source order.
	Sections []OutputSection `json:"sections"`
	Warnings []string        `json:"warnings"`
	Errors   []string        `json:"errors"`
}

// OutputSection is one section of OutputParseSectionContent.
type OutputSection struct {
	ID     string        `json:"id"`
	Fields []OutputField `json:"fields"`
}

// OutputField is one field value. Scalars set Value, lists set Items.
type OutputField struct {
	Name  string   `json:"name"`
	Value string   `json:"value,omitempty"`
	Items []string `json:"items,omitempty"`
}

// defaultParser is used by ParseSectionContent. Tool callers paste model
// output as-is, so repair and truncation recovery are on.
var defaultParser = parse.New(
	parse.WithJSONRepair(true),
	parse.WithTruncationRecovery(true),
	parse.WithHTMLNormalization(true),
)

// ParseSectionContent parses the provided model output with the default
// parser.
func ParseSectionContent(ctx context.Context, req *mcp.CallToolRequest, input InputParseSectionContent) (*mcp.CallToolResult, OutputParseSectionContent, error) {
	return NewParseSectionContent(defaultParser)(ctx, req, input)
}

// NewParseSectionContent returns a parse_section_content handler backed by p.
func NewParseSectionContent(p *parse.Parser) mcp.ToolHandlerFor[InputParseSectionContent, OutputParseSectionContent] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input InputParseSectionContent) (*mcp.CallToolResult, OutputParseSectionContent, error) {
		if strings.TrimSpace(input.Content) == "" {
			return nil, OutputParseSectionContent{}, fmt.Errorf("content is required")
		}

		res := p.Parse(ctx, parse.Input{Raw: input.Content, ExpectedCounts: input.ExpectedCounts})
		return nil, toOutput(res), nil
	}
}

// Register adds the parse_section_content tool, backed by p, to server.
func Register(server *mcp.Server, p *parse.Parser) {
	mcp.AddTool(server, MetadataParseSectionContent, NewParseSectionContent(p))
}

func toOutput(res *parse.Result) OutputParseSectionContent {
	out := OutputParseSectionContent{
		Success:   res.Success,
		IsPartial: res.IsPartial,
		Sections:  make([]OutputSection, 0, len(res.SectionOrder)),
		Warnings:  res.Warnings,
		Errors:    res.Errors,
	}
	for _, id := range res.SectionOrder {
		section := OutputSection{ID: id, Fields: []OutputField{}}
		res.Section(id).Range(func(name string, v content.Value) bool {
			field := OutputField{Name: name}
			if v.IsList() {
				field.Items = v.Items()
			} else {
				field.Value = v.Text()
			}
			section.Fields = append(section.Fields, field)
			return true
		})
		out.Sections = append(out.Sections, section)
	}
	return out
}
