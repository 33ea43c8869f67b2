package instrumentation

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
	"go.opentelemetry.io/otel/trace"
)

// withRecorder installs a recording tracer provider for the duration of the test.
func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func spanAttr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestStartZoomAPISpan(t *testing.T) {
	recorder := withRecorder(t)

	_, span := StartZoomAPISpan(context.Background(), OperationCurrentUser)
	SetSpanStatusCode(span, 200)
	SetSpanSuccess(span)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "zoom.current_user", spans[0].Name())
	assert.Equal(t, trace.SpanKindClient, spans[0].SpanKind())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)

	op, ok := spanAttr(spans[0], SpanAttrOperation)
	require.True(t, ok)
	assert.Equal(t, OperationCurrentUser, op.AsString())

	code, ok := spanAttr(spans[0], SpanAttrStatusCode)
	require.True(t, ok)
	assert.Equal(t, int64(200), code.AsInt64())
}

func TestStartToolSpan(t *testing.T) {
	recorder := withRecorder(t)

	_, span := StartToolSpan(context.Background(), "zoom_list_users", attribute.String("extra", "x"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "tool.zoom_list_users", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())

	tool, ok := spanAttr(spans[0], SpanAttrTool)
	require.True(t, ok)
	assert.Equal(t, "zoom_list_users", tool.AsString())
	_, ok = spanAttr(spans[0], "extra")
	assert.True(t, ok)
}

func TestSetSpanError(t *testing.T) {
	recorder := withRecorder(t)

	_, span := StartSpan(context.Background(), "test-span")
	SetSpanError(span, nil) // no-op
	SetSpanError(span, errors.New("boom"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	assert.Len(t, spans[0].Events(), 1)
}

func TestGetTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	withRecorder(t)
	ctx, span := StartSpan(context.Background(), "test-span")
	defer span.End()

	assert.Len(t, GetTraceID(ctx), 32)
}
