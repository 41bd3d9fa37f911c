package commands

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
	UploadFileCommand struct {
		Options media.UploadOptions
	}

	UploadFileCommandHandler = decorator.CommandHandler[UploadFileCommand, *media.File]

	uploadFileCommandHandler struct {
		mediaService ports.MediaService
	}
)

func NewUploadFileCommandHandler(
	svc ports.MediaService,
	log logger.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient metrics.Client,
) UploadFileCommandHandler {
	return decorator.ApplyCommandDecorators[UploadFileCommand, *media.File](
		uploadFileCommandHandler{mediaService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h uploadFileCommandHandler) Handle(ctx context.Context, cmd UploadFileCommand) (*media.File, error) {
	if err := cmd.Options.Validate(); err != nil {
		return nil, err
	}

	return h.mediaService.UploadFile(ctx, cmd.Options)
}
