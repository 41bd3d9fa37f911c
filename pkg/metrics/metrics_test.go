package metrics_test

import (
	"context"
	"testing"

	"github.com/architeacher/imagekit/pkg/metrics"
	"github.com/architeacher/imagekit/pkg/metrics/noop"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	result := make(map[string]metricdata.Metrics)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			result[m.Name] = m
		}
	}

	return result
}

func TestOtelClient_Inc(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	client := metrics.NewOtelClient(provider.Meter("test"), map[string]metrics.Descriptor{
		"queries.listfiles.duration": {Description: "list duration", Unit: "s"},
	})

	ctx := context.Background()
	client.Inc(ctx, "queries.listfiles.success", 1, attribute.String("kind", "query"))
	client.Inc(ctx, "queries.listfiles.success", int64(2), attribute.String("kind", "query"))
	client.Inc(ctx, "queries.listfiles.duration", 0.25)
	client.Inc(ctx, "ignored", "not a number")

	collected := collect(t, reader)

	counter, ok := collected["queries.listfiles.success"]
	require.True(t, ok)

	sum, ok := counter.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	require.Equal(t, int64(3), sum.DataPoints[0].Value)

	histogram, ok := collected["queries.listfiles.duration"]
	require.True(t, ok)
	require.Equal(t, "list duration", histogram.Description)
	require.Equal(t, "s", histogram.Unit)

	data, ok := histogram.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, data.DataPoints, 1)
	require.Equal(t, uint64(1), data.DataPoints[0].Count)

	require.NotContains(t, collected, "ignored")
	require.NoError(t, client.Shutdown(ctx))
}

func TestNoopClient(t *testing.T) {
	t.Parallel()

	var client metrics.Client = noop.NewMetricsClient()

	client.Inc(context.Background(), "anything", 1)
	require.NoError(t, client.Shutdown(context.Background()))
}
