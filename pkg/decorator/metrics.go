package decorator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/architeacher/imagekit/pkg/metrics"
)

type (
	commandMetricsDecorator[C Command, R any] struct {
		base   CommandHandler[C, R]
		client metrics.Client
	}

	queryMetricsDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		client metrics.Client
	}
)

func (d commandMetricsDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	start := time.Now()

	actionName := strings.ToLower(generateActionName(cmd))

	defer func() {
		record(ctx, d.client, "commands."+actionName, time.Since(start), err)
	}()

	return d.base.Handle(ctx, cmd)
}

func (d queryMetricsDecorator[Q, R]) Execute(ctx context.Context, query Q) (result R, err error) {
	start := time.Now()

	actionName := strings.ToLower(generateActionName(query))

	defer func() {
		record(ctx, d.client, "queries."+actionName, time.Since(start), err)
	}()

	return d.base.Execute(ctx, query)
}

func record(ctx context.Context, client metrics.Client, prefix string, elapsed time.Duration, err error) {
	if client == nil {
		return
	}

	client.Inc(ctx, fmt.Sprintf("%s.duration", prefix), elapsed.Seconds())

	if err == nil {
		client.Inc(ctx, fmt.Sprintf("%s.success", prefix), 1)
	} else {
		client.Inc(ctx, fmt.Sprintf("%s.failure", prefix), 1)
	}
}
