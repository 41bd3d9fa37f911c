// Package imagekit is a client for the ImageKit.io media library: file
// upload, deletion, metadata lookup, listing with search expressions and
// transformation URL generation.
//
//	ik, err := imagekit.New("public_key", "private_key", "https://ik.imagekit.io/demo")
//	if err != nil {
//		return err
//	}
//
//	url, err := ik.URL(transformation.NewOptions(transformation.New().Width(300)).Path("/ferris.jpg"))
package imagekit

import (
	"context"

	"github.com/architeacher/imagekit/internal/adapters/outbound/rest"
	"github.com/architeacher/imagekit/internal/adapters/services"
	"github.com/architeacher/imagekit/internal/config"
	"github.com/architeacher/imagekit/internal/usecases"
	"github.com/architeacher/imagekit/internal/usecases/commands"
	"github.com/architeacher/imagekit/internal/usecases/queries"
	"github.com/architeacher/imagekit/pkg/logger"
	"github.com/architeacher/imagekit/pkg/media"
	"github.com/architeacher/imagekit/pkg/metrics/noop"
	"github.com/architeacher/imagekit/pkg/transformation"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

// ImageKit is safe for concurrent use. Its settings are fixed at
// construction.
type ImageKit struct {
	config *config.ServiceConfig
	app    *usecases.Application
	logger logger.Logger
}

// New creates a client for the given account. Endpoints, timeouts and
// logging default from the IMAGEKIT_* environment.
func New(publicKey, privateKey, urlEndpoint string, opts ...Option) (*ImageKit, error) {
	cfg, err := config.WithCredentials(publicKey, privateKey, urlEndpoint)
	if err != nil {
		return nil, err
	}

	return newImageKit(cfg, opts)
}

// NewFromEnv creates a client configured entirely by IMAGEKIT_PUBLIC_KEY,
// IMAGEKIT_PRIVATE_KEY, IMAGEKIT_URL_ENDPOINT and the optional IMAGEKIT_*
// settings.
func NewFromEnv(opts ...Option) (*ImageKit, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, err
	}

	return newImageKit(cfg, opts)
}

// NewFromFile creates a client from a TOML settings file on top of the
// IMAGEKIT_* environment. An empty path reads
// ~/.config/imagekit/config.toml.
func NewFromFile(path string, opts ...Option) (*ImageKit, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return newImageKit(cfg, opts)
}

func newImageKit(cfg *config.ServiceConfig, opts []Option) (*ImageKit, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	o.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if o.logger != nil {
		log = *o.logger
	}

	tracerProvider := o.tracerProvider
	if tracerProvider == nil {
		tracerProvider = otelNoop.NewTracerProvider()
	}

	metricsClient := o.metricsClient
	if metricsClient == nil {
		metricsClient = noop.NewMetricsClient()
	}

	restOpts := []rest.Option{
		rest.WithLogger(log),
		rest.WithTracerProvider(tracerProvider),
	}

	if o.httpClient != nil {
		restOpts = append(restOpts, rest.WithHTTPClient(o.httpClient))
	}

	client := rest.NewClient(cfg, restOpts...)
	mediaSvc := services.NewMediaService(client)

	return &ImageKit{
		config: cfg,
		app:    usecases.NewApplication(mediaSvc, log, tracerProvider, metricsClient),
		logger: log,
	}, nil
}

// URL builds the delivery URL described by opts. Options without a URL
// endpoint use the client's.
func (ik *ImageKit) URL(opts transformation.Options) (string, error) {
	return transformation.BuildURL(ik.config.Endpoints.URL, opts)
}

// Upload uploads a file to the media library.
func (ik *ImageKit) Upload(ctx context.Context, opts media.UploadOptions) (*media.File, error) {
	return ik.app.Commands.UploadFile.Handle(ctx, commands.UploadFileCommand{Options: opts})
}

// Delete deletes the file with the given id.
func (ik *ImageKit) Delete(ctx context.Context, fileID string) error {
	if _, err := ik.app.Commands.DeleteFile.Handle(ctx, commands.DeleteFileCommand{FileID: fileID}); err != nil {
		return err
	}

	return nil
}

// GetFileDetails retrieves the metadata of a file.
func (ik *ImageKit) GetFileDetails(ctx context.Context, fileID string) (*media.File, error) {
	return ik.app.Queries.GetFileDetails.Execute(ctx, queries.GetFileDetailsQuery{FileID: fileID})
}

// ListFiles lists the files matching opts. No match yields an empty slice.
func (ik *ImageKit) ListFiles(ctx context.Context, opts media.ListOptions) ([]media.File, error) {
	return ik.app.Queries.ListFiles.Execute(ctx, queries.ListFilesQuery{Options: opts})
}

func (ik *ImageKit) PublicKey() string {
	return ik.config.Credentials.PublicKey
}

func (ik *ImageKit) URLEndpoint() string {
	return ik.config.Endpoints.URL
}

func (ik *ImageKit) UploadEndpoint() string {
	return ik.config.Endpoints.Upload
}

func (ik *ImageKit) FilesEndpoint() string {
	return ik.config.Endpoints.Files
}
