package normalize

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/leofalp/sectionparse/core/content"
	"github.com/leofalp/sectionparse/core/shape"
)

// ConvertLegacy expands the legacy aggregate fields declared by d into
// indexed fields. A LegacySpec applies when every source is a non-empty
// string (containing "|" if RequirePipe is set) and no field already matches
// one of its targets. Sources are zipped to the shortest list, capped at Max.
// Converted fields are placed ahead of the original ones; the aggregates are
// kept. One warning is returned per conversion.
func ConvertLegacy(sectionID string, raw Raw, d *shape.Descriptor) (Raw, []string) {
	var converted Raw
	var warnings []string

	for _, spec := range d.Legacy {
		fields, ok := convertOne(raw, d.Buckets, spec)
		if !ok {
			continue
		}
		converted = append(converted, fields...)
		warnings = append(warnings, fmt.Sprintf("%s: %s", sectionID, spec.Message))
	}

	if len(converted) == 0 {
		return raw, nil
	}

	out := make(Raw, 0, len(converted)+len(raw))
	out = append(out, converted...)
	for _, f := range raw {
		if _, dup := converted.Get(f.Name); !dup {
			out = append(out, f)
		}
	}
	return out, warnings
}

func convertOne(raw Raw, buckets []shape.Bucket, spec shape.LegacySpec) (Raw, bool) {
	if len(spec.Sources) == 0 {
		return nil, false
	}

	sources := make([][]string, 0, len(spec.Sources))
	count := -1
	for _, src := range spec.Sources {
		v, ok := raw.Get(src.Field)
		if !ok || v.Type != gjson.String || strings.TrimSpace(v.Str) == "" {
			return nil, false
		}
		if spec.RequirePipe && !strings.Contains(v.Str, content.PipeSeparator) {
			return nil, false
		}
		items := content.SplitPipe(v.Str)
		sources = append(sources, items)
		if count < 0 || len(items) < count {
			count = len(items)
		}
	}
	if hasTarget(raw, buckets, spec) {
		return nil, false
	}
	if spec.Max > 0 && count > spec.Max {
		count = spec.Max
	}
	if count <= 0 {
		return nil, false
	}

	companions := make([][]string, len(spec.Companions))
	for i, c := range spec.Companions {
		if v, ok := raw.Get(c.Field); ok && v.Type == gjson.String {
			companions[i] = content.SplitPipe(v.Str)
		}
	}

	var out Raw
	for k := 0; k < count; k++ {
		bucket, index, ok := slot(k, buckets, spec)
		if !ok {
			break
		}
		for s, src := range spec.Sources {
			out = append(out, Field{Name: src.Target.Format(bucket, index), Value: stringValue(sources[s][k])})
		}
		for c, comp := range spec.Companions {
			value := comp.Default
			if k < len(companions[c]) {
				value = companions[c][k]
			}
			if value == "" {
				continue
			}
			out = append(out, Field{Name: comp.Target.Format(bucket, index), Value: stringValue(value)})
		}
	}
	return out, len(out) > 0
}

// slot maps the k-th converted item to a bucket key and 1-based index.
func slot(k int, buckets []shape.Bucket, spec shape.LegacySpec) (string, int, bool) {
	if spec.PerBucket <= 0 || !spec.Sources[0].Target.Bucketed() {
		return "", k + 1, true
	}
	b := k / spec.PerBucket
	if b >= len(buckets) {
		return "", 0, false
	}
	return buckets[b].Key, k%spec.PerBucket + 1, true
}

// hasTarget reports whether any field already matches a source target.
func hasTarget(raw Raw, buckets []shape.Bucket, spec shape.LegacySpec) bool {
	for _, f := range raw {
		for _, src := range spec.Sources {
			if _, ok := src.Target.Match(f.Name, buckets); ok {
				return true
			}
		}
	}
	return false
}
