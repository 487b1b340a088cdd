package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sandeepsanjusplr/buck/internal/adapters/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func TestOTelTracer_Start(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	ctx, span := tracer.Start(context.Background(), "cell.rule_types")
	span.SetAttribute("cell_root", "/repo")
	span.SetAttribute("rules", 12)
	span.SetAttribute("polyglot", true)
	span.SetAttribute("syntaxes", []string{"hcl", "yaml"})
	span.SetAttribute("other", struct{ A int }{1})
	span.End()
	require.NotNil(t, ctx)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "cell.rule_types", spans[0].Name())

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "/repo", attrs["cell_root"].AsString())
	assert.Equal(t, int64(12), attrs["rules"].AsInt64())
	assert.True(t, attrs["polyglot"].AsBool())
	assert.Equal(t, []string{"hcl", "yaml"}, attrs["syntaxes"].AsStringSlice())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	_, span := tracer.Start(context.Background(), "parse")
	span.RecordError(nil)
	span.RecordError(errors.New("boom"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()
	got, span := telemetry.NewNoOpTracer().Start(ctx, "x")
	assert.Equal(t, ctx, got)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
