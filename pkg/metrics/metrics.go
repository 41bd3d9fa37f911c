package metrics

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type (
	Client interface {
		// Inc records value under key. Integer values feed a counter, float
		// values feed a histogram.
		Inc(ctx context.Context, key string, value any, attributes ...attribute.KeyValue)
		Shutdown(ctx context.Context) error
	}

	// Descriptor defines metadata used when registering OTEL instruments.
	Descriptor struct {
		Description string
		Unit        string
	}

	// OtelClient records through instruments of an OpenTelemetry meter,
	// registering each instrument on first use.
	OtelClient struct {
		meter       metric.Meter
		descriptors map[string]Descriptor

		mu         sync.Mutex
		counters   map[string]metric.Int64Counter
		histograms map[string]metric.Float64Histogram
	}
)

var _ Client = (*OtelClient)(nil)

// NewOtelClient creates a client on meter. descriptors optionally describe
// instruments by key.
func NewOtelClient(meter metric.Meter, descriptors map[string]Descriptor) *OtelClient {
	return &OtelClient{
		meter:       meter,
		descriptors: descriptors,
		counters:    make(map[string]metric.Int64Counter),
		histograms:  make(map[string]metric.Float64Histogram),
	}
}

func (c *OtelClient) Inc(ctx context.Context, key string, value any, attributes ...attribute.KeyValue) {
	options := metric.WithAttributes(attributes...)

	switch v := value.(type) {
	case int:
		c.addInt(ctx, key, int64(v), options)
	case int32:
		c.addInt(ctx, key, int64(v), options)
	case int64:
		c.addInt(ctx, key, v, options)
	case uint:
		c.addInt(ctx, key, int64(v), options)
	case uint32:
		c.addInt(ctx, key, int64(v), options)
	case float32:
		c.record(ctx, key, float64(v), options)
	case float64:
		c.record(ctx, key, v, options)
	}
}

func (c *OtelClient) Shutdown(_ context.Context) error {
	return nil
}

func (c *OtelClient) addInt(ctx context.Context, key string, value int64, options metric.AddOption) {
	counter, err := c.counter(key)
	if err != nil {
		return
	}

	counter.Add(ctx, value, options)
}

func (c *OtelClient) record(ctx context.Context, key string, value float64, options metric.RecordOption) {
	histogram, err := c.histogram(key)
	if err != nil {
		return
	}

	histogram.Record(ctx, value, options)
}

func (c *OtelClient) counter(key string) (metric.Int64Counter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if counter, ok := c.counters[key]; ok {
		return counter, nil
	}

	counter, err := RegisterInt64Counter(c.meter, c.descriptors[key], key)
	if err != nil {
		return nil, err
	}

	c.counters[key] = counter

	return counter, nil
}

func (c *OtelClient) histogram(key string) (metric.Float64Histogram, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if histogram, ok := c.histograms[key]; ok {
		return histogram, nil
	}

	histogram, err := RegisterFloat64Histogram(c.meter, c.descriptors[key], key)
	if err != nil {
		return nil, err
	}

	c.histograms[key] = histogram

	return histogram, nil
}

// RegisterInt64Counter creates an Int64 counter using the provided descriptor.
func RegisterInt64Counter(m metric.Meter, descriptor Descriptor, name string) (metric.Int64Counter, error) {
	counter, err := m.Int64Counter(
		name,
		metric.WithDescription(descriptor.Description),
		metric.WithUnit(descriptor.Unit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", name, err)
	}

	return counter, nil
}

// RegisterFloat64Histogram creates a Float64 histogram using the provided descriptor.
func RegisterFloat64Histogram(m metric.Meter, descriptor Descriptor, name string) (metric.Float64Histogram, error) {
	histogram, err := m.Float64Histogram(
		name,
		metric.WithDescription(descriptor.Description),
		metric.WithUnit(descriptor.Unit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s histogram: %w", name, err)
	}

	return histogram, nil
}
