package session

import (
	"context"
	"sync"

	"codemaster/internal/catalog"
	"codemaster/internal/errors"
	"codemaster/internal/logging"
	"codemaster/internal/metrics"
	"codemaster/internal/types"
)

// Resolver resolves a search string to one entity.
type Resolver interface {
	Resolve(ctx context.Context, query string, loc types.Locale) (*types.LanguageEntity, error)
}

// Selection is the search/selection flow. It holds the currently displayed
// entity, which only a successful search or a direct pick replaces.
type Selection struct {
	mu       sync.RWMutex
	selected *types.LanguageEntity
	query    string

	resolver Resolver
	catalog  *catalog.Catalog
	flag     *busyFlag
}

// NewSelection creates the flow over the built-in catalog.
func NewSelection(r Resolver, m *metrics.Metrics) *Selection {
	return &Selection{
		resolver: r,
		catalog:  catalog.Default(),
		flag:     newBusyFlag(FlowSearch, m),
	}
}

// Search resolves query and, on success, makes it the selection. On failure
// the previous selection stays exactly as it was. A search submitted while
// another is in flight is ignored with ErrFlowBusy.
func (s *Selection) Search(ctx context.Context, query string, loc types.Locale) (*types.LanguageEntity, error) {
	if s.resolver == nil {
		return nil, errors.New("selection: no resolver configured")
	}
	release, err := s.flag.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	logging.Session("search started: query=%q locale=%s", query, loc)
	entity, err := s.resolver.Resolve(ctx, query, loc)
	if err != nil {
		logging.SessionWarn("search failed, keeping selection: query=%q error=%v", query, err)
		return nil, err
	}

	s.mu.Lock()
	s.selected = entity
	s.query = query
	s.mu.Unlock()

	logging.Session("selected %s (synthesized=%t)", entity.ID, entity.Synthesized())
	return entity.Clone(), nil
}

// Select picks a catalog entry by ID directly, without a search.
func (s *Selection) Select(id string) (*types.LanguageEntity, error) {
	entity, ok := s.catalog.Get(id)
	if !ok {
		return nil, errors.Mark(errors.Newf("no catalog entry %q", id), errors.ErrLanguageNotFound)
	}
	s.mu.Lock()
	s.selected = entity
	s.query = ""
	s.mu.Unlock()
	logging.SessionDebug("selected %s from catalog", id)
	return entity.Clone(), nil
}

// Selected returns a copy of the current selection, or nil.
func (s *Selection) Selected() *types.LanguageEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected.Clone()
}

// Query returns the search text that produced the selection, empty for a
// direct pick.
func (s *Selection) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Clear deselects.
func (s *Selection) Clear() {
	s.mu.Lock()
	s.selected = nil
	s.query = ""
	s.mu.Unlock()
}

// Busy reports whether a search is in flight.
func (s *Selection) Busy() bool {
	return s.flag.busy()
}

// Catalog returns the catalog the flow picks from.
func (s *Selection) Catalog() *catalog.Catalog {
	return s.catalog
}
