// Package parse turns raw language-model output into validated section
// content. Because models wrap JSON in prose, markdown fences, or wrapper
// objects, and sometimes stop mid-object, the [Parser] runs a fixed pipeline:
// candidate extraction, structural validation with optional JSON repair,
// per-section shape normalization, and aggregation into one [Result].
//
// Parse never returns an error and never panics. Problems that make the
// whole response unusable are reported in [Result.Errors]; everything else
// is a warning and marks the result as partial. Every section present in
// the extracted object appears in [Result.Content], degraded if necessary.
//
// Example usage:
//
//	p := parse.New(parse.WithJSONRepair(true))
//	res := p.Parse(ctx, parse.Input{Raw: modelOutput})
//	if !res.Success {
//	    return fmt.Errorf("unusable response: %v", res.Errors)
//	}
//	hero := res.Content["hero"]
package parse
