package decorator

import (
	"context"
	"fmt"
	"strings"

	"github.com/architeacher/imagekit/pkg/logger"
	"github.com/architeacher/imagekit/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Command any

	CommandHandler[C Command, R any] interface {
		Handle(context.Context, C) (R, error)
	}
)

func ApplyCommandDecorators[C Command, R any](
	handler CommandHandler[C, R],
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CommandHandler[C, R] {
	return commandLoggingDecorator[C, R]{
		base: commandMetricsDecorator[C, R]{
			base: commandTracingDecorator[C, R]{
				base:           handler,
				tracerProvider: tracerProvider,
			},
			client: metricsClient,
		},
		logger: log,
	}
}

// generateActionName turns a value of type queries.ListFilesQuery into
// "ListFilesQuery".
func generateActionName(handler any) string {
	name := fmt.Sprintf("%T", handler)
	if index := strings.LastIndex(name, "."); index >= 0 {
		name = name[index+1:]
	}

	return strings.TrimPrefix(name, "*")
}
