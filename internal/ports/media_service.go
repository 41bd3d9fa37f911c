//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/media_service.go . MediaService

import (
	"context"

	"github.com/architeacher/imagekit/pkg/media"
)

// MediaService defines the remote media operations.
type MediaService interface {
	// UploadFile uploads a file and returns its record.
	UploadFile(ctx context.Context, opts media.UploadOptions) (*media.File, error)

	// DeleteFile deletes the file with the given id.
	DeleteFile(ctx context.Context, fileID string) error

	// GetFileDetails retrieves the record of a file.
	GetFileDetails(ctx context.Context, fileID string) (*media.File, error)

	// ListFiles lists or searches files.
	ListFiles(ctx context.Context, opts media.ListOptions) ([]media.File, error)
}
