package normalize

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leofalp/sectionparse/core/content"
	"github.com/leofalp/sectionparse/core/shape"
	"github.com/leofalp/sectionparse/internal/utils"
)

// ExpectedCounts maps a section id, a normalized id, or a family key to the
// number of items the caller expects in that section.
type ExpectedCounts map[string]int

// Lookup resolves the expected count for a section: by exact id, then by
// normalized id, then by family key. Keys that normalize alike are tried in
// sorted order.
func (c ExpectedCounts) Lookup(sectionID, family string) (int, bool) {
	if len(c) == 0 {
		return 0, false
	}
	if n, ok := c[sectionID]; ok {
		return n, true
	}
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if n, ok := c.normalized(keys, sectionID); ok {
		return n, true
	}
	if family == "" {
		return 0, false
	}
	if n, ok := c[family]; ok {
		return n, true
	}
	return c.normalized(keys, family)
}

func (c ExpectedCounts) normalized(keys []string, id string) (int, bool) {
	want := utils.NormalizeKey(id)
	for _, key := range keys {
		if utils.NormalizeKey(key) == want {
			return c[key], true
		}
	}
	return 0, false
}

// ValidateShape checks a processed section against its descriptor and
// returns warnings. It never fails.
func ValidateShape(sectionID string, sec *content.Section, d *shape.Descriptor, counts ExpectedCounts) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, sectionID+": "+fmt.Sprintf(format, args...))
	}

	for _, field := range d.Required {
		if !sec.Has(field) {
			warn("Missing required field %s", field)
		}
	}

	for _, pair := range d.Pairs {
		for _, msg := range checkPair(sec, d.Buckets, pair) {
			warn("%s", msg)
		}
	}

	for _, req := range d.Requires {
		for _, b := range bucketsFor(req.Field, d.Buckets) {
			for _, i := range populated(sec, req.Field.ForBucket(b.Key)) {
				if !sec.Has(req.Needs.ForBucket(b.Key).Format("", i)) {
					warn("%s %d %s", req.Label, i, req.Message)
				}
			}
		}
	}

	for _, spec := range d.Legacy {
		if msg, ok := legacyMismatch(sec, spec); ok {
			warn("%s", msg)
		}
	}

	if d.Counted() {
		realized := RealizedCount(sec, d)
		if expected, ok := counts.Lookup(sectionID, d.Family); ok {
			if realized != expected {
				warn("Expected %d items, found %d", expected, realized)
			}
		} else if d.MinItems > 0 && realized < d.MinItems {
			warn("Found %d items, minimum is %d", realized, d.MinItems)
		} else if d.MaxItems > 0 && realized > d.MaxItems {
			warn("Found %d items, maximum is %d", realized, d.MaxItems)
		}
	}

	return warnings
}

// RealizedCount returns the number of populated CountFamily indices, or the
// item count of CountField.
func RealizedCount(sec *content.Section, d *shape.Descriptor) int {
	if d.CountFamily != "" {
		n := 0
		for _, b := range bucketsFor(d.CountFamily, d.Buckets) {
			n += len(populated(sec, d.CountFamily.ForBucket(b.Key)))
		}
		return n
	}
	if v, ok := sec.Get(d.CountField); ok {
		return len(v.Items())
	}
	return 0
}

func checkPair(sec *content.Section, buckets []shape.Bucket, pair shape.PairSpec) []string {
	if !pair.Left.Pattern.Indexed() {
		left, right := sec.Has(string(pair.Left.Pattern)), sec.Has(string(pair.Right.Pattern))
		switch {
		case left && !right:
			return []string{fmt.Sprintf("%s exists without corresponding %s", sentence(pair.Left.Label), pair.Right.Label)}
		case right && !left:
			return []string{fmt.Sprintf("%s exists without corresponding %s", sentence(pair.Right.Label), pair.Left.Label)}
		}
		return nil
	}

	var msgs []string
	complete := 0
	for _, b := range bucketsFor(pair.Left.Pattern, buckets) {
		left := pair.Left.Pattern.ForBucket(b.Key)
		right := pair.Right.Pattern.ForBucket(b.Key)
		label := pair.Label
		if b.Label != "" {
			label = b.Label
		}

		for _, i := range union(populated(sec, left), populated(sec, right)) {
			hasLeft, hasRight := sec.Has(left.Format("", i)), sec.Has(right.Format("", i))
			switch {
			case hasLeft && hasRight:
				complete++
			case hasLeft:
				msgs = append(msgs, fmt.Sprintf("%s %d has no corresponding %s", sentence(label, pair.Left.Label), i, pair.Right.Label))
			case hasRight:
				msgs = append(msgs, fmt.Sprintf("%s %d has no corresponding %s", sentence(label, pair.Right.Label), i, pair.Left.Label))
			}
		}
	}

	if pair.MinPairs > 0 && complete < pair.MinPairs {
		msgs = append(msgs, fmt.Sprintf("Only %d complete %s/%s pairs, expected at least %d", complete, pair.Left.Label, pair.Right.Label, pair.MinPairs))
	}
	return msgs
}

// legacyMismatch reports aggregate sources of one spec whose item counts
// differ. Conversion stops at the shortest list, so the surplus is dropped.
func legacyMismatch(sec *content.Section, spec shape.LegacySpec) (string, bool) {
	if len(spec.Sources) < 2 {
		return "", false
	}
	counts := make([]string, 0, len(spec.Sources))
	first, differ := -1, false
	for _, src := range spec.Sources {
		v, ok := sec.Get(src.Field)
		if !ok {
			return "", false
		}
		n := len(v.Items())
		if first < 0 {
			first = n
		} else if n != first {
			differ = true
		}
		counts = append(counts, fmt.Sprintf("%d %s", n, src.Field))
	}
	if !differ {
		return "", false
	}
	return "Legacy field counts do not match: " + strings.Join(counts, ", "), true
}

// alignGroups reconciles pipe fields whose item counts must agree, trimming
// to the shortest non-empty list or filling empty fields from defaults.
func alignGroups(sectionID string, sec *content.Section, d *shape.Descriptor) []string {
	var warnings []string
	for _, group := range d.Aligned {
		lists := make([][]string, len(group.Fields))
		minCount, maxCount := -1, 0
		parts := make([]string, len(group.Fields))
		for i, field := range group.Fields {
			if v, ok := sec.Get(field); ok {
				lists[i] = v.Items()
			}
			n := len(lists[i])
			parts[i] = fmt.Sprintf("%d %s", n, field)
			if minCount < 0 || n < minCount {
				minCount = n
			}
			if n > maxCount {
				maxCount = n
			}
		}
		if maxCount == minCount || maxCount == 0 {
			continue
		}

		warnings = append(warnings, fmt.Sprintf("%s: Mismatched counts: %s", sectionID, strings.Join(parts, ", ")))
		for i, field := range group.Fields {
			switch {
			case minCount > 0:
				sec.Set(field, content.Scalar(content.JoinPipe(lists[i][:minCount])))
			case len(lists[i]) == 0:
				defaults := group.Defaults[field]
				n := maxCount
				if n == 0 {
					n = group.DefaultCount
				}
				if n > len(defaults) {
					n = len(defaults)
				}
				sec.Set(field, content.Scalar(content.JoinPipe(defaults[:n])))
			}
		}
		warnings = append(warnings, fmt.Sprintf("%s: Applied automatic correction to match %s counts", sectionID, strings.Join(group.Fields, "/")))
	}
	return warnings
}

// populated returns the sorted indices of non-empty fields matching an
// unbucketed pattern.
func populated(sec *content.Section, p shape.Pattern) []int {
	var indices []int
	sec.Range(func(key string, v content.Value) bool {
		if i, ok := p.Match(key, nil); ok && i > 0 && !v.IsEmpty() {
			indices = append(indices, i)
		}
		return true
	})
	sort.Ints(indices)
	return indices
}

func union(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	var out []int
	for _, list := range [][]int{a, b} {
		for _, i := range list {
			if !seen[i] {
				seen[i] = true
				out = append(out, i)
			}
		}
	}
	sort.Ints(out)
	return out
}

// bucketsFor returns the buckets a pattern iterates: the descriptor's
// buckets for "{b}" patterns, otherwise a single empty bucket.
func bucketsFor(p shape.Pattern, buckets []shape.Bucket) []shape.Bucket {
	if p.Bucketed() && len(buckets) > 0 {
		return buckets
	}
	return []shape.Bucket{{}}
}

// sentence joins words and upper-cases the first letter.
func sentence(words ...string) string {
	s := strings.TrimSpace(strings.Join(words, " "))
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
