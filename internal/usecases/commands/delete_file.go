package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/architeacher/imagekit/internal/ports"
	"github.com/architeacher/imagekit/pkg/decorator"
	"github.com/architeacher/imagekit/pkg/logger"
	"github.com/architeacher/imagekit/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	DeleteFileCommand struct {
		FileID string
	}

	DeleteFileResult struct {
		Success bool
	}

	DeleteFileCommandHandler = decorator.CommandHandler[DeleteFileCommand, DeleteFileResult]

	deleteFileCommandHandler struct {
		mediaService ports.MediaService
	}
)

func NewDeleteFileCommandHandler(
	svc ports.MediaService,
	log logger.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient metrics.Client,
) DeleteFileCommandHandler {
	return decorator.ApplyCommandDecorators[DeleteFileCommand, DeleteFileResult](
		deleteFileCommandHandler{mediaService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h deleteFileCommandHandler) Handle(ctx context.Context, cmd DeleteFileCommand) (DeleteFileResult, error) {
	if strings.TrimSpace(cmd.FileID) == "" {
		return DeleteFileResult{Success: false}, fmt.Errorf("%w: file id is required", ErrInvalidCommand)
	}

	if err := h.mediaService.DeleteFile(ctx, cmd.FileID); err != nil {
		return DeleteFileResult{Success: false}, err
	}

	return DeleteFileResult{Success: true}, nil
}
