package shape

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Pattern is a field-name template. "{i}" stands for a 1-based item index and
// "{b}" for a bucket key from the descriptor's Buckets, as in
// "question_{i}" or "tab_{b}_answer_{i}".
type Pattern string

const (
	indexPlaceholder  = "{i}"
	bucketPlaceholder = "{b}"
)

var patternCache sync.Map // string -> *regexp.Regexp

// Indexed reports whether the pattern contains an item index.
func (p Pattern) Indexed() bool {
	return strings.Contains(string(p), indexPlaceholder)
}

// Bucketed reports whether the pattern contains a bucket placeholder.
func (p Pattern) Bucketed() bool {
	return strings.Contains(string(p), bucketPlaceholder)
}

// Format fills in the bucket key and index.
func (p Pattern) Format(bucket string, index int) string {
	return strings.ReplaceAll(string(p.ForBucket(bucket)), indexPlaceholder, strconv.Itoa(index))
}

// ForBucket returns the pattern with its bucket placeholder filled in.
func (p Pattern) ForBucket(key string) Pattern {
	return Pattern(strings.ReplaceAll(string(p), bucketPlaceholder, key))
}

// Match reports whether name is an instance of the pattern for any of the
// given buckets, and returns the index it carries (0 when unindexed).
func (p Pattern) Match(name string, buckets []Bucket) (int, bool) {
	m := p.regexp(buckets).FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	if len(m) < 2 || m[1] == "" {
		return 0, true
	}
	index, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return index, true
}

func (p Pattern) regexp(buckets []Bucket) *regexp.Regexp {
	keys := make([]string, 0, len(buckets))
	for _, b := range buckets {
		keys = append(keys, regexp.QuoteMeta(b.Key))
	}
	cacheKey := string(p) + "\x00" + strings.Join(keys, "\x00")
	if re, ok := patternCache.Load(cacheKey); ok {
		return re.(*regexp.Regexp)
	}

	expr := regexp.QuoteMeta(string(p))
	expr = strings.ReplaceAll(expr, regexp.QuoteMeta(bucketPlaceholder), "(?:"+strings.Join(keys, "|")+")")
	if p.Indexed() {
		expr = strings.Replace(expr, regexp.QuoteMeta(indexPlaceholder), `(\d+)`, 1)
	} else {
		expr += "()"
	}
	re := regexp.MustCompile("^" + expr + "$")
	patternCache.Store(cacheKey, re)
	return re
}
