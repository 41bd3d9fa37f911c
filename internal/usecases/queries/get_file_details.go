package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/architeacher/imagekit/internal/ports"
	"github.com/architeacher/imagekit/pkg/decorator"
	"github.com/architeacher/imagekit/pkg/logger"
	"github.com/architeacher/imagekit/pkg/media"
	"github.com/architeacher/imagekit/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	GetFileDetailsQuery struct {
		FileID string
	}

	GetFileDetailsQueryHandler = decorator.QueryHandler[GetFileDetailsQuery, *media.File]

	getFileDetailsQueryHandler struct {
		mediaService ports.MediaService
	}
)

func NewGetFileDetailsQueryHandler(
	svc ports.MediaService,
	log logger.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient metrics.Client,
) GetFileDetailsQueryHandler {
	return decorator.ApplyQueryDecorators[GetFileDetailsQuery, *media.File](
		getFileDetailsQueryHandler{mediaService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getFileDetailsQueryHandler) Execute(ctx context.Context, query GetFileDetailsQuery) (*media.File, error) {
	if strings.TrimSpace(query.FileID) == "" {
		return nil, fmt.Errorf("%w: file id is required", ErrInvalidQuery)
	}

	return h.mediaService.GetFileDetails(ctx, query.FileID)
}
