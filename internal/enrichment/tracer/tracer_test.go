package tracer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopTracer(t *testing.T) {
	ctx := context.Background()
	newCtx, span := NewNoop().Start(ctx, SpanGenerate, String(AttrKind, "company"))

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)
	span.SetAttributes(Int64(AttrOutputChars, 42))
	span.AddEvent(EventBreakerRejected)
	span.End(errors.New("upstream said no"))
}

func TestAttributeConstructors(t *testing.T) {
	assert.Equal(t, Attribute{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Attribute{Key: "k", Value: true}, Bool("k", true))
	assert.Equal(t, Attribute{Key: "k", Value: int64(7)}, Int64("k", 7))
	assert.Equal(t, Attribute{Key: "k", Value: int64(150)}, Duration("k", 150*time.Millisecond))
}

func TestToOTelAttributes(t *testing.T) {
	got := toOTelAttributes([]Attribute{
		String(AttrKind, "impact_description"),
		Bool("cached", false),
		Int64(AttrPromptChars, 120),
		{Key: "n", Value: 3},
		{Key: "ratio", Value: 0.5},
		{Key: "ignored", Value: []string{"x"}},
	})

	assert.Equal(t, []attribute.KeyValue{
		attribute.String(AttrKind, "impact_description"),
		attribute.Bool("cached", false),
		attribute.Int64(AttrPromptChars, 120),
		attribute.Int("n", 3),
		attribute.Float64("ratio", 0.5),
	}, got)
	assert.Nil(t, toOTelAttributes(nil))
}

func TestNewOTelUsesGlobalProvider(t *testing.T) {
	tr := NewOTel()
	ctx, span := tr.Start(context.Background(), SpanEnrichCompany)

	require.NotNil(t, ctx)
	span.SetAttributes(String(AttrModel, "gemini"))
	span.AddEvent(EventBreakerRejected)
	span.End(nil)
}
