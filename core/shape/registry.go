package shape

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the id -> descriptor memo of a Registry.
const DefaultCacheSize = 256

// Matcher decides whether a section id belongs to a descriptor.
type Matcher func(sectionID string) bool

// Contains matches ids containing any of the substrings.
func Contains(substrings ...string) Matcher {
	return func(id string) bool {
		for _, s := range substrings {
			if strings.Contains(id, s) {
				return true
			}
		}
		return false
	}
}

// ContainsFold matches ids containing the substring, ignoring case.
func ContainsFold(substring string) Matcher {
	lowered := strings.ToLower(substring)
	return func(id string) bool {
		return strings.Contains(strings.ToLower(id), lowered)
	}
}

// Entry is one (matcher, descriptor) row of a Registry.
type Entry struct {
	Match      Matcher
	Descriptor *Descriptor
}

// Option is a functional option for configuring a Registry.
type Option func(*registryConfig)

type registryConfig struct {
	cacheSize int
	generic   *Descriptor
}

// WithCacheSize sets the number of resolved ids remembered. Zero or a
// negative size disables the cache.
func WithCacheSize(size int) Option {
	return func(c *registryConfig) {
		c.cacheSize = size
	}
}

// WithGeneric replaces the descriptor used when no entry matches.
func WithGeneric(d *Descriptor) Option {
	return func(c *registryConfig) {
		c.generic = d
	}
}

// Registry resolves section ids to descriptors. Entries are evaluated in
// registration order and the first match wins. It is safe for concurrent use.
type Registry struct {
	entries []Entry
	generic *Descriptor
	cache   *lru.Cache[string, *Descriptor]
}

// NewRegistry creates a Registry over the given entries.
func NewRegistry(entries []Entry, opts ...Option) *Registry {
	cfg := &registryConfig{cacheSize: DefaultCacheSize, generic: Generic()}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Registry{
		entries: append([]Entry(nil), entries...),
		generic: cfg.generic,
	}
	if cfg.cacheSize > 0 {
		// lru.New only fails for a non-positive size.
		r.cache, _ = lru.New[string, *Descriptor](cfg.cacheSize)
	}
	return r
}

// Default returns a Registry over the built-in section families.
func Default(opts ...Option) *Registry {
	return NewRegistry(Builtin(), opts...)
}

// Select returns the descriptor of the first entry matching sectionID, or
// the generic descriptor.
func (r *Registry) Select(sectionID string) *Descriptor {
	if r.cache != nil {
		if d, ok := r.cache.Get(sectionID); ok {
			return d
		}
	}

	d := r.generic
	for _, entry := range r.entries {
		if entry.Match(sectionID) {
			d = entry.Descriptor
			break
		}
	}

	if r.cache != nil {
		r.cache.Add(sectionID, d)
	}
	return d
}

// Entries returns the entries in evaluation order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Names returns descriptor names in evaluation order, followed by the
// generic descriptor's name.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries)+1)
	for _, entry := range r.entries {
		names = append(names, entry.Descriptor.Name)
	}
	return append(names, r.generic.Name)
}

// Generic returns a descriptor with no requirements, used for ids no
// entry matches.
func Generic() *Descriptor {
	return &Descriptor{Name: "generic", Family: "generic"}
}
