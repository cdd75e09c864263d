// Package generationtest provides a scripted ContentGenerator for tests.
package generationtest

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

// Call records one GenerateContent invocation.
type Call struct {
	Model    string
	Contents []*genai.Content
	Config   *genai.GenerateContentConfig
}

// Reply is one scripted answer.
type Reply struct {
	Text string
	Err  error
}

// Generator answers GenerateContent from a script. When the script runs out
// the last reply repeats. If Gate is non-nil every call blocks until it is
// closed or receives a value, which lets tests hold a call in flight.
type Generator struct {
	mu      sync.Mutex
	replies []Reply
	calls   []Call

	Gate    chan struct{}
	Started chan struct{}
}

// New returns a generator that answers with replies in order.
func New(replies ...Reply) *Generator {
	return &Generator{replies: replies, Started: make(chan struct{}, 64)}
}

// Text is shorthand for a generator that always answers text.
func Text(text string) *Generator {
	return New(Reply{Text: text})
}

// Failing is shorthand for a generator that always fails with err.
func Failing(err error) *Generator {
	return New(Reply{Err: err})
}

// GenerateContent implements generation.ContentGenerator.
func (g *Generator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	g.mu.Lock()
	g.calls = append(g.calls, Call{Model: model, Contents: contents, Config: cfg})
	var reply Reply
	if len(g.replies) > 0 {
		reply = g.replies[0]
		if len(g.replies) > 1 {
			g.replies = g.replies[1:]
		}
	}
	g.mu.Unlock()

	select {
	case g.Started <- struct{}{}:
	default:
	}

	if g.Gate != nil {
		select {
		case <-g.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if reply.Err != nil {
		return nil, reply.Err
	}
	return TextResponse(reply.Text), nil
}

// Calls returns a copy of the recorded calls.
func (g *Generator) Calls() []Call {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Call(nil), g.calls...)
}

// CallCount returns how many calls were made.
func (g *Generator) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

// TextResponse wraps text in a single-candidate response.
func TextResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(text, genai.RoleModel)},
		},
	}
}
