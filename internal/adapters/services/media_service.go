package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/architeacher/imagekit/internal/adapters/outbound/rest"
	"github.com/architeacher/imagekit/internal/ports"
	"github.com/architeacher/imagekit/pkg/media"
)

// MediaService coordinates media operations using the REST outbound adapter.
// It handles decoding and error translation.
type MediaService struct {
	client *rest.Client
}

var _ ports.MediaService = (*MediaService)(nil)

// NewMediaService creates a new service over client.
// The client lifecycle is managed by the caller.
func NewMediaService(client *rest.Client) *MediaService {
	return &MediaService{
		client: client,
	}
}

// UploadFile uploads a file and returns the record the service created.
func (s *MediaService) UploadFile(ctx context.Context, opts media.UploadOptions) (*media.File, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	body, contentType, release, err := uploadBody(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", media.ErrInvalidUpload, err)
	}
	defer release()

	resp, err := s.client.Upload(ctx, body, contentType)
	if err != nil {
		return nil, mapTransportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, mapResponseError(resp)
	}

	file, err := decode[media.File](resp)
	if err != nil {
		return nil, err
	}

	return &file, nil
}

// DeleteFile deletes a file. The service answers 204 on success.
func (s *MediaService) DeleteFile(ctx context.Context, fileID string) error {
	resp, err := s.client.Delete(ctx, fileID)
	if err != nil {
		return mapTransportError(err)
	}

	if resp.StatusCode != http.StatusNoContent {
		return mapResponseError(resp)
	}

	return nil
}

// GetFileDetails retrieves the record of a file.
func (s *MediaService) GetFileDetails(ctx context.Context, fileID string) (*media.File, error) {
	resp, err := s.client.GetDetails(ctx, fileID)
	if err != nil {
		return nil, mapTransportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, mapResponseError(resp)
	}

	file, err := decode[media.File](resp)
	if err != nil {
		return nil, err
	}

	return &file, nil
}

// ListFiles lists the files matching opts.
func (s *MediaService) ListFiles(ctx context.Context, opts media.ListOptions) ([]media.File, error) {
	resp, err := s.client.List(ctx, opts.Values())
	if err != nil {
		return nil, mapTransportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, mapResponseError(resp)
	}

	files, err := decode[[]media.File](resp)
	if err != nil {
		return nil, err
	}

	if files == nil {
		files = []media.File{}
	}

	return files, nil
}
