package queries

import (
	"context"

	"github.com/architeacher/imagekit/internal/ports"
	"github.com/architeacher/imagekit/pkg/decorator"
	"github.com/architeacher/imagekit/pkg/logger"
	"github.com/architeacher/imagekit/pkg/media"
	"github.com/architeacher/imagekit/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	ListFilesQuery struct {
		Options media.ListOptions
	}

	ListFilesQueryHandler = decorator.QueryHandler[ListFilesQuery, []media.File]

	listFilesQueryHandler struct {
		mediaService ports.MediaService
	}
)

func NewListFilesQueryHandler(
	svc ports.MediaService,
	log logger.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient metrics.Client,
) ListFilesQueryHandler {
	return decorator.ApplyQueryDecorators[ListFilesQuery, []media.File](
		listFilesQueryHandler{mediaService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listFilesQueryHandler) Execute(ctx context.Context, query ListFilesQuery) ([]media.File, error) {
	return h.mediaService.ListFiles(ctx, query.Options)
}
