package decorator

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelTrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/architeacher/imagekit/pkg/decorator"

type (
	commandTracingDecorator[C Command, R any] struct {
		base           CommandHandler[C, R]
		tracerProvider otelTrace.TracerProvider
	}

	queryTracingDecorator[Q Query, R Result] struct {
		base           QueryHandler[Q, R]
		tracerProvider otelTrace.TracerProvider
	}
)

func (d commandTracingDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	if d.tracerProvider == nil {
		return d.base.Handle(ctx, cmd)
	}

	actionName := generateActionName(cmd)

	ctx, span := d.tracerProvider.Tracer(tracerName).Start(
		ctx,
		"command."+actionName,
		otelTrace.WithAttributes(attribute.String("imagekit.action", actionName)),
	)
	defer func() {
		endSpan(span, err)
	}()

	return d.base.Handle(ctx, cmd)
}

func (d queryTracingDecorator[Q, R]) Execute(ctx context.Context, query Q) (result R, err error) {
	if d.tracerProvider == nil {
		return d.base.Execute(ctx, query)
	}

	actionName := generateActionName(query)

	ctx, span := d.tracerProvider.Tracer(tracerName).Start(
		ctx,
		"query."+actionName,
		otelTrace.WithAttributes(attribute.String("imagekit.action", actionName)),
	)
	defer func() {
		endSpan(span, err)
	}()

	return d.base.Execute(ctx, query)
}

func endSpan(span otelTrace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	span.End()
}
