package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/builddeps/internal/adapters/telemetry"
	"go.trai.ch/builddeps/internal/core/ports"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOTelTracer_Start_WithAttributes(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "build", ports.WithAttribute(telemetry.PackageKey, "bar:1.0.0"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "build", spans[0].Name())
	assert.Equal(t, "bar:1.0.0", attrs(spans[0])[telemetry.PackageKey].AsString())
}

func TestNewTracerFromProvider_IgnoresGlobalProvider(t *testing.T) {
	global := setupRecorder(t)

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tracer := telemetry.NewTracerFromProvider(tp, "test")
	_, span := tracer.Start(t.Context(), "build")
	span.End()

	require.Len(t, sr.Ended(), 1)
	assert.Empty(t, global.Ended())
}

func TestOTelTracer_Start_NestsSpans(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	ctx, parent := tracer.Start(t.Context(), "build-deps")
	_, child := tracer.Start(ctx, "build")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "build")
	span.SetAttribute("name", "bar")
	span.SetAttribute("count", 3)
	span.SetAttribute("count64", int64(4))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("release", true)
	span.SetAttribute("deps", []string{"a", "b"})
	span.SetAttribute("other", struct{ X int }{X: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	got := attrs(spans[0])
	assert.Equal(t, "bar", got["name"].AsString())
	assert.Equal(t, int64(3), got["count"].AsInt64())
	assert.Equal(t, int64(4), got["count64"].AsInt64())
	assert.InDelta(t, 0.5, got["ratio"].AsFloat64(), 0)
	assert.True(t, got["release"].AsBool())
	assert.Equal(t, []string{"a", "b"}, got["deps"].AsStringSlice())
	assert.Equal(t, "{1}", got["other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "build")
	span.RecordError(errors.New("exit status 1"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "exit status 1", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := t.Context()

	gotCtx, span := tracer.Start(ctx, "build", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, gotCtx)

	require.NotPanics(t, func() {
		span.SetAttribute("k", 1)
		span.RecordError(errors.New("boom"))
		span.End()
	})
}
