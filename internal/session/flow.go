// Package session holds the presentation-state flows: search/selection,
// roadmap generation and the tutor conversation. Each flow owns its own state
// slice and permits at most one outstanding call; flows never share state.
package session

import (
	"sync/atomic"

	"codemaster/internal/errors"
	"codemaster/internal/logging"
	"codemaster/internal/metrics"

	"golang.org/x/sync/semaphore"
)

// Flow names used in logs and the rejected-submissions metric.
const (
	FlowSearch  = "search"
	FlowRoadmap = "roadmap"
	FlowChat    = "chat"
)

// busyFlag is a non-queueing single-slot guard. A submission that finds the
// slot taken is rejected, not waited on.
type busyFlag struct {
	name     string
	sem      *semaphore.Weighted
	inflight atomic.Bool
	metrics  *metrics.Metrics
}

func newBusyFlag(name string, m *metrics.Metrics) *busyFlag {
	return &busyFlag{name: name, sem: semaphore.NewWeighted(1), metrics: m}
}

// enter takes the slot or returns ErrFlowBusy. The caller must call the
// returned release exactly once.
func (b *busyFlag) enter() (release func(), err error) {
	if !b.sem.TryAcquire(1) {
		b.metrics.RecordRejected(b.name)
		logging.Get(logging.CategorySession).With("flow", b.name).Debug("submission ignored, call already in flight")
		return nil, errors.Wrapf(errors.ErrFlowBusy, "%s", b.name)
	}
	b.inflight.Store(true)
	return func() {
		b.inflight.Store(false)
		b.sem.Release(1)
	}, nil
}

// busy reports whether a call is in flight.
func (b *busyFlag) busy() bool {
	return b.inflight.Load()
}

// Deps bundles what the flows need. Any field may be nil in tests that do not
// exercise the corresponding flow.
type Deps struct {
	Resolver Resolver
	Roadmaps RoadmapGenerator
	Tutor    Conversant
	Metrics  *metrics.Metrics
}

// State is the full presentation state of one running app: three independent
// flows constructed from shared dependencies.
type State struct {
	Selection    *Selection
	Roadmap      *RoadmapFlow
	Conversation *Conversation
}

// NewState builds all three flows.
func NewState(d Deps) *State {
	return &State{
		Selection:    NewSelection(d.Resolver, d.Metrics),
		Roadmap:      NewRoadmapFlow(d.Roadmaps, d.Metrics),
		Conversation: NewConversation(d.Tutor, d.Metrics),
	}
}
