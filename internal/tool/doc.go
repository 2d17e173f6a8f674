// Package tool exposes the section parser as a Model Context Protocol tool,
// parse_section_content, so agents can hand over model output and get
// validated section content back.
package tool
