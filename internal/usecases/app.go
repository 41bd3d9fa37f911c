package usecases

import (
	"github.com/architeacher/imagekit/internal/ports"
	"github.com/architeacher/imagekit/internal/usecases/commands"
	"github.com/architeacher/imagekit/internal/usecases/queries"
	"github.com/architeacher/imagekit/pkg/logger"
	"github.com/architeacher/imagekit/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Commands struct {
		UploadFile commands.UploadFileCommandHandler
		DeleteFile commands.DeleteFileCommandHandler
	}

	Queries struct {
		GetFileDetails queries.GetFileDetailsQueryHandler
		ListFiles      queries.ListFilesQueryHandler
	}

	Application struct {
		Commands Commands
		Queries  Queries
	}
)

func NewApplication(
	mediaSvc ports.MediaService,
	log logger.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient metrics.Client,
) *Application {
	return &Application{
		Commands: Commands{
			UploadFile: commands.NewUploadFileCommandHandler(mediaSvc, log, tracerProvider, metricsClient),
			DeleteFile: commands.NewDeleteFileCommandHandler(mediaSvc, log, tracerProvider, metricsClient),
		},
		Queries: Queries{
			GetFileDetails: queries.NewGetFileDetailsQueryHandler(mediaSvc, log, tracerProvider, metricsClient),
			ListFiles:      queries.NewListFilesQueryHandler(mediaSvc, log, tracerProvider, metricsClient),
		},
	}
}
