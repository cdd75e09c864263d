package generation

import (
	"context"
	"time"

	"codemaster/internal/logging"
	"codemaster/internal/metrics"

	"google.golang.org/genai"
)

// Operation names used as log fields and metric labels.
const (
	OpGuide   = "guide"
	OpRoadmap = "roadmap"
	OpChat    = "chat"
)

type operationKey struct{}

// WithOperation tags ctx with the logical operation being performed.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey{}, op)
}

// OperationFrom returns the operation tag on ctx, or "unknown".
func OperationFrom(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey{}).(string); ok && op != "" {
		return op
	}
	return "unknown"
}

// instrumentedGenerator wraps any ContentGenerator and records every call.
// All Client calls flow through this wrapper.
type instrumentedGenerator struct {
	underlying ContentGenerator
	metrics    *metrics.Metrics
}

// Instrument wraps gen with call logging and metrics. m may be nil.
func Instrument(gen ContentGenerator, m *metrics.Metrics) ContentGenerator {
	if ig, ok := gen.(*instrumentedGenerator); ok {
		gen = ig.underlying
	}
	return &instrumentedGenerator{underlying: gen, metrics: m}
}

// GenerateContent implements ContentGenerator with logging and metrics.
func (g *instrumentedGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	op := OperationFrom(ctx)
	structured := cfg != nil && cfg.ResponseSchema != nil

	start := time.Now()
	logging.APIDebug("generate started: op=%s model=%s contents=%d structured=%t", op, model, len(contents), structured)

	resp, err := g.underlying.GenerateContent(ctx, model, contents, cfg)

	duration := time.Since(start)
	g.metrics.RecordGeneration(op, duration, err)
	if err != nil {
		logging.APIError("generate failed: op=%s model=%s duration=%v error=%v", op, model, duration, err)
		return nil, err
	}

	tokens := int32(0)
	if resp != nil && resp.UsageMetadata != nil {
		tokens = resp.UsageMetadata.TotalTokenCount
	}
	logging.API("generate completed: op=%s model=%s duration=%v tokens=%d", op, model, duration, tokens)
	return resp, nil
}
