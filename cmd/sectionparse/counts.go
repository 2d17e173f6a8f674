package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/leofalp/sectionparse/core/normalize"
)

// loadExpectedCounts reads a flat map of section id (or family) to item
// count. YAML and JSON files are both accepted.
//
//	faq: 4
//	hero_EmojiOutcomeGrid: 3
func loadExpectedCounts(path string) (normalize.ExpectedCounts, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("expected counts: %w", err)
	}
	var counts map[string]int
	if err := yaml.Unmarshal(data, &counts); err != nil {
		return nil, fmt.Errorf("expected counts: parse %s: %w", path, err)
	}
	for key, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("expected counts: %s has negative count %d", key, n)
		}
	}
	return normalize.ExpectedCounts(counts), nil
}
