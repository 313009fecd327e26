// Package tracer is the tracing seam for calls to the AI enrichment backend.
//
// The enrichment service depends on the small Tracer interface below rather
// than on OpenTelemetry directly. NoopTracer serves tests; OTelTracer is wired
// in cmd/server.
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span. A non-nil err marks it failed.
	// End must be called exactly once, typically via defer.
	End(err error)

	SetAttributes(attrs ...Attribute)

	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start opens a span and returns a context carrying it.
	//
	//   ctx, span := t.Start(ctx, tracer.SpanGenerate,
	//       tracer.String(tracer.AttrKind, "company"),
	//   )
	//   defer span.End(err)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration records value in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

const (
	SpanEnrichCompany    = "enrichment.company"
	SpanDescribeImpact   = "enrichment.impact_description"
	SpanGenerate         = "enrichment.generate"
	EventBreakerRejected = "breaker.rejected"
)

const (
	AttrKind         = "enrichment.kind"
	AttrModel        = "enrichment.model"
	AttrPromptChars  = "enrichment.prompt_chars"
	AttrOutputChars  = "enrichment.output_chars"
	AttrBreakerState = "breaker.state"
	AttrLatencyMs    = "enrichment.latency_ms"
)
