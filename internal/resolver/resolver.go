// Package resolver turns a search string into a single LanguageEntity,
// preferring the static catalog and falling back to one guide generation.
package resolver

import (
	"context"
	"strings"

	"codemaster/internal/catalog"
	"codemaster/internal/errors"
	"codemaster/internal/generation"
	"codemaster/internal/logging"
	"codemaster/internal/metrics"
	"codemaster/internal/types"
)

// GuideFetcher is the part of the generation client the resolver uses.
type GuideFetcher interface {
	FetchLanguageGuide(ctx context.Context, query string, loc types.Locale) (*generation.LanguageGuide, error)
}

// Resolver is stateless: it holds the catalog and the fetcher and nothing
// else, so identical queries are resolved afresh every time.
type Resolver struct {
	catalog *catalog.Catalog
	guides  GuideFetcher
	metrics *metrics.Metrics
}

// New creates a Resolver. m may be nil.
func New(cat *catalog.Catalog, guides GuideFetcher, m *metrics.Metrics) *Resolver {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Resolver{catalog: cat, guides: guides, metrics: m}
}

// Normalize trims and lowercases a query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// SynthesizedID derives an entity ID from a normalized query by collapsing
// whitespace runs to "-".
func SynthesizedID(normalized string) string {
	return strings.Join(strings.Fields(normalized), "-")
}

// Resolve returns the entity for query. A catalog hit issues no external call;
// a miss issues exactly one. Failure of that call is reported as
// ErrLanguageNotFound with the underlying cause kept in the chain.
func (r *Resolver) Resolve(ctx context.Context, query string, loc types.Locale) (*types.LanguageEntity, error) {
	normalized := Normalize(query)
	if normalized == "" {
		return nil, errors.Wrap(errors.ErrEmptyInput, "search")
	}

	if entity, ok := r.catalog.Lookup(normalized); ok {
		r.metrics.RecordCatalogLookup(true)
		logging.ResolverDebug("catalog hit: query=%q id=%s", query, entity.ID)
		return entity, nil
	}
	r.metrics.RecordCatalogLookup(false)

	if r.guides == nil {
		return nil, errors.Mark(
			errors.Newf("no catalog entry for %q and guide generation is unavailable", strings.TrimSpace(query)),
			errors.ErrLanguageNotFound,
		)
	}

	logging.Resolver("catalog miss, requesting guide: query=%q locale=%s", query, loc)
	guide, err := r.guides.FetchLanguageGuide(ctx, strings.TrimSpace(query), loc)
	if err != nil {
		logging.Get(logging.CategoryResolver).Warn("guide generation failed for %q: %v", query, err)
		return nil, errors.Mark(errors.Wrapf(err, "resolve %q", strings.TrimSpace(query)), errors.ErrLanguageNotFound)
	}

	entity := Synthesize(query, guide, loc)
	if err := entity.Validate(); err != nil {
		logging.Get(logging.CategoryResolver).Warn("synthesized entity rejected for %q: %v", query, err)
		return nil, errors.Mark(
			errors.Mark(errors.Wrapf(err, "resolve %q", strings.TrimSpace(query)), errors.ErrGenerationParse),
			errors.ErrLanguageNotFound,
		)
	}
	logging.Resolver("synthesized entity: id=%s use_cases=%d tools=%d", entity.ID, len(entity.UseCases), len(entity.Tools))
	return entity, nil
}

// Synthesize builds an entity from a guide response. Only the active locale's
// description is filled; catalog entries carry both, synthesized ones do not.
// Each tool gets its single returned description in both locales.
func Synthesize(query string, guide *generation.LanguageGuide, loc types.Locale) *types.LanguageEntity {
	tools := make([]types.Tool, 0, len(guide.Tools))
	for _, t := range guide.Tools {
		tools = append(tools, types.Tool{
			Name:        t.Name,
			Platform:    t.Platform,
			URL:         t.URL,
			Description: types.LocalizedText{EN: t.Description, AR: t.Description},
		})
	}

	entity := &types.LanguageEntity{
		ID:          SynthesizedID(Normalize(query)),
		Name:        strings.TrimSpace(query),
		Icon:        types.SynthesizedIcon,
		Color:       types.SynthesizedColor,
		Difficulty:  types.DifficultyIntermediate,
		UseCases:    append([]string{}, guide.UseCases...),
		Description: types.Only(loc, guide.Description),
		Tools:       tools,
		HelloWorld:  guide.HelloWorld,
	}
	return entity.Normalize()
}
