package session

import (
	"context"
	"sync"

	"codemaster/internal/errors"
	"codemaster/internal/logging"
	"codemaster/internal/metrics"
	"codemaster/internal/types"
)

// RoadmapGenerator produces a roadmap for an idea.
type RoadmapGenerator interface {
	GenerateRoadmap(ctx context.Context, idea string, loc types.Locale) (*types.ProjectRoadmap, error)
}

// RoadmapFlow holds the latest roadmap and nothing else.
type RoadmapFlow struct {
	mu      sync.RWMutex
	current *types.ProjectRoadmap
	idea    string

	gen  RoadmapGenerator
	flag *busyFlag
}

// NewRoadmapFlow creates an empty flow.
func NewRoadmapFlow(gen RoadmapGenerator, m *metrics.Metrics) *RoadmapFlow {
	return &RoadmapFlow{gen: gen, flag: newBusyFlag(FlowRoadmap, m)}
}

// Generate requests a roadmap for idea. The held roadmap is replaced only on
// success; on failure it is left as is and the error is returned for display
// next to the roadmap, not as a global alert.
func (f *RoadmapFlow) Generate(ctx context.Context, idea string, loc types.Locale) (*types.ProjectRoadmap, error) {
	if f.gen == nil {
		return nil, errors.New("roadmap: no generator configured")
	}
	release, err := f.flag.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	logging.Session("roadmap requested: idea=%q locale=%s", idea, loc)
	roadmap, err := f.gen.GenerateRoadmap(ctx, idea, loc)
	if err != nil {
		logging.SessionWarn("roadmap failed, keeping previous: %v", err)
		return nil, err
	}

	f.mu.Lock()
	f.current = roadmap
	f.idea = idea
	f.mu.Unlock()

	logging.Session("roadmap ready: title=%q steps=%d", roadmap.Title, len(roadmap.Steps))
	return roadmap.Clone(), nil
}

// Current returns a copy of the held roadmap, or nil.
func (f *RoadmapFlow) Current() *types.ProjectRoadmap {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current.Clone()
}

// Idea returns the idea the held roadmap was generated from.
func (f *RoadmapFlow) Idea() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.idea
}

// Clear drops the held roadmap.
func (f *RoadmapFlow) Clear() {
	f.mu.Lock()
	f.current = nil
	f.idea = ""
	f.mu.Unlock()
}

// Busy reports whether a generation is in flight.
func (f *RoadmapFlow) Busy() bool {
	return f.flag.busy()
}
