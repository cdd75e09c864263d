// Package catalog holds the hand-authored language entries shipped with
// codemaster. The catalog is built once at process start and never mutated.
package catalog

import (
	"strings"

	"codemaster/internal/errors"
	"codemaster/internal/types"
)

// Catalog is an immutable, ordered set of language entries.
type Catalog struct {
	entries []types.LanguageEntity
}

// New builds a catalog from entries. Entries are normalized and validated;
// duplicate IDs are rejected so lookups stay deterministic.
func New(entries []types.LanguageEntity) (*Catalog, error) {
	seen := make(map[string]bool, len(entries))
	out := make([]types.LanguageEntity, 0, len(entries))
	for _, e := range entries {
		e := *e.Clone()
		e.Normalize()
		if err := e.Validate(); err != nil {
			return nil, errors.Wrap(err, "catalog entry")
		}
		id := strings.ToLower(e.ID)
		if id != e.ID {
			return nil, errors.Newf("catalog entry %q: id must be lowercase", e.ID)
		}
		if seen[id] {
			return nil, errors.Newf("duplicate catalog id %q", id)
		}
		seen[id] = true
		out = append(out, e)
	}
	return &Catalog{entries: out}, nil
}

// MustNew is New that panics on error. Only used for the built-in data.
func MustNew(entries []types.LanguageEntity) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return builtin
}

var builtin = MustNew(builtinEntries())

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns copies of every entry in catalog order.
func (c *Catalog) All() []*types.LanguageEntity {
	out := make([]*types.LanguageEntity, len(c.entries))
	for i := range c.entries {
		out[i] = c.entries[i].Clone()
	}
	return out
}

// Get returns the entry with the given ID.
func (c *Catalog) Get(id string) (*types.LanguageEntity, bool) {
	for i := range c.entries {
		if c.entries[i].ID == id {
			return c.entries[i].Clone(), true
		}
	}
	return nil, false
}

// Lookup matches an already-normalized query (trimmed, lowercased) against
// entry names and IDs. The first match in catalog order wins.
func (c *Catalog) Lookup(normalized string) (*types.LanguageEntity, bool) {
	if normalized == "" {
		return nil, false
	}
	for i := range c.entries {
		e := &c.entries[i]
		if strings.ToLower(e.Name) == normalized || e.ID == normalized {
			return e.Clone(), true
		}
	}
	return nil, false
}
