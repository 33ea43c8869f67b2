package instrumentation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp.Meter("test"))
	require.NoError(t, err)
	return m, reader
}

func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) map[attribute.Distinct]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[attribute.Distinct]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				out[dp.Attributes.Equivalent()] += dp.Value
			}
		}
	}
	return out
}

func TestMetrics_RecordZoomAPIOperation(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordZoomAPIOperation(ctx, OperationCurrentUser, 200, 40*time.Millisecond)
	m.RecordZoomAPIOperation(ctx, OperationCurrentUser, 200, 10*time.Millisecond)
	m.RecordZoomAPIOperation(ctx, OperationAccountInfo, 403, 5*time.Millisecond)

	sums := collectSum(t, reader, "zoom_api_operations_total")

	ok := attribute.NewSet(
		attribute.String(attrOperation, OperationCurrentUser),
		attribute.String(attrStatus, StatusSuccess),
		attribute.String(attrStatusCode, "200"),
	)
	forbidden := attribute.NewSet(
		attribute.String(attrOperation, OperationAccountInfo),
		attribute.String(attrStatus, StatusError),
		attribute.String(attrStatusCode, "403"),
	)
	assert.Equal(t, int64(2), sums[ok.Equivalent()])
	assert.Equal(t, int64(1), sums[forbidden.Equivalent()])
}

func TestMetrics_RecordOAuthExchange(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordOAuthExchange(ctx, OAuthResultSuccess)
	m.RecordOAuthExchange(ctx, OAuthResultFailure)
	m.RecordOAuthExchange(ctx, OAuthResultFailure)

	sums := collectSum(t, reader, "oauth_exchange_total")

	failure := attribute.NewSet(attribute.String(attrResult, OAuthResultFailure))
	assert.Equal(t, int64(2), sums[failure.Equivalent()])
}

func TestMetrics_RecordToolInvocation(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordToolInvocation(context.Background(), "zoom_current_user", StatusSuccess, time.Second)

	sums := collectSum(t, reader, "mcp_tool_invocations_total")

	set := attribute.NewSet(
		attribute.String(attrTool, "zoom_current_user"),
		attribute.String(attrStatus, StatusSuccess),
	)
	assert.Equal(t, int64(1), sums[set.Equivalent()])
}

func TestMetrics_NilSafe(t *testing.T) {
	ctx := context.Background()

	var nilMetrics *Metrics
	assert.NotPanics(t, func() {
		nilMetrics.RecordZoomAPIOperation(ctx, OperationListUsers, 200, time.Millisecond)
		nilMetrics.RecordOAuthExchange(ctx, OAuthResultSuccess)
		nilMetrics.RecordToolInvocation(ctx, "tool", StatusError, time.Millisecond)
	})

	empty := &Metrics{}
	assert.NotPanics(t, func() {
		empty.RecordZoomAPIOperation(ctx, OperationListUsers, 500, time.Millisecond)
		empty.RecordOAuthExchange(ctx, OAuthResultFailure)
		empty.RecordToolInvocation(ctx, "tool", StatusSuccess, time.Millisecond)
	})
}
