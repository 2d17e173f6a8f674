package shape

import (
	"strings"
)

// FieldKind selects shape-specific handling for a field ahead of the
// generic field rules.
type FieldKind int

const (
	// KindIcon keeps the first emoji of the value, or substitutes a default.
	KindIcon FieldKind = iota + 1
	// KindBool normalizes the value to "true" or "false".
	KindBool
	// KindPipeList splits on "|", trims, drops blanks and re-joins.
	KindPipeList
)

func (k FieldKind) String() string {
	switch k {
	case KindIcon:
		return "icon"
	case KindBool:
		return "bool"
	case KindPipeList:
		return "pipe_list"
	default:
		return "text"
	}
}

// MatchMode controls how a FieldRule compares field names.
type MatchMode int

const (
	MatchExact MatchMode = iota
	MatchPrefix
	MatchContains
)

// FieldRule binds a FieldKind to the fields whose name matches Field.
type FieldRule struct {
	Field string
	Match MatchMode
	Kind  FieldKind
	// MinItems is the smallest acceptable item count for KindPipeList.
	MinItems int
	// Noun names the items in the below-minimum warning. Defaults to "items".
	Noun string
	// AllowEmpty keeps an empty KindPipeList value instead of falling back.
	AllowEmpty bool
}

// Matches reports whether the rule applies to the field name.
func (r FieldRule) Matches(name string) bool {
	switch r.Match {
	case MatchPrefix:
		return strings.HasPrefix(name, r.Field)
	case MatchContains:
		return strings.Contains(name, r.Field)
	default:
		return name == r.Field
	}
}

// Bucket is one value of the "{b}" placeholder, with the label used in
// pairing warnings ("Left column", "Tab 2").
type Bucket struct {
	Key   string
	Label string
}

// Member is one side of a PairSpec.
type Member struct {
	Pattern Pattern
	Label   string
}

// PairSpec names two field families that must be populated together: for
// every index (and bucket) where one side is present the other must be too.
// Unindexed patterns pair two single fields.
type PairSpec struct {
	Left, Right Member
	// Label prefixes warnings ("Chat question 2 has ...").
	Label string
	// MinPairs, when positive, is the smallest acceptable number of
	// complete pairs.
	MinPairs int
}

// Requirement says that each populated Field index needs a populated Needs
// field at the same index.
type Requirement struct {
	Field   Pattern
	Needs   Pattern
	Label   string
	Message string
}

// LegacySource maps one aggregate field onto an indexed target pattern.
type LegacySource struct {
	Field  string
	Target Pattern
	// Default fills a companion target when the companion has fewer items.
	// Empty means the target is skipped for missing items.
	Default string
}

// LegacySpec describes an older aggregate representation: Sources are
// pipe-joined fields that are split and zipped into indexed targets, and
// Companions are optional aggregates aligned with them.
type LegacySpec struct {
	Sources    []LegacySource
	Companions []LegacySource
	// Max caps the number of items converted. Zero means no cap.
	Max int
	// PerBucket is the number of items per bucket for "{b}" targets.
	PerBucket int
	// RequirePipe only converts aggregates that actually contain "|".
	RequirePipe bool
	// Message is recorded as a warning for each conversion.
	Message string
}

// AlignedGroup lists pipe fields whose item counts must agree. Defaults
// holds replacement items per field, used when a field is empty.
type AlignedGroup struct {
	Fields       []string
	Defaults     map[string][]string
	DefaultCount int
}

// Descriptor is the content contract of one section family.
type Descriptor struct {
	Name string
	// Family is the key consulted in expected-count maps when neither the
	// section id nor its normalized form is present.
	Family   string
	Required []string
	Buckets  []Bucket
	Pairs    []PairSpec
	Requires []Requirement
	Legacy   []LegacySpec
	Rules    []FieldRule
	Aligned  []AlignedGroup

	// IconDefaults maps icon field names to their default emoji;
	// IconDefault covers the rest.
	IconDefaults map[string]string
	IconDefault  string

	// MinItems and MaxItems bound the realized item count when no expected
	// count is supplied. Zero disables a bound.
	MinItems int
	MaxItems int
	// CountFamily or CountField determines the realized item count: the
	// number of populated CountFamily indices, or the number of items in
	// CountField.
	CountFamily Pattern
	CountField  string
}

// RuleFor returns the first rule matching the field name.
func (d *Descriptor) RuleFor(name string) (FieldRule, bool) {
	for _, rule := range d.Rules {
		if rule.Matches(name) {
			return rule, true
		}
	}
	return FieldRule{}, false
}

// IconFor returns the default emoji for an icon field.
func (d *Descriptor) IconFor(name string) string {
	if icon, ok := d.IconDefaults[name]; ok {
		return icon
	}
	if d.IconDefault != "" {
		return d.IconDefault
	}
	return DefaultIcon
}

// Counted reports whether the descriptor declares an item count.
func (d *Descriptor) Counted() bool {
	return d.CountFamily != "" || d.CountField != ""
}

// DefaultIcon is used for icon fields when a descriptor declares no default.
const DefaultIcon = "📌"
