// Package media holds the records exchanged with the media library API and
// the error kinds its transport surfaces.
package media

import (
	"encoding/json"
	"time"
)

type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeNonImage FileType = "non-image"
)

type (
	VersionInfo struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	AITag struct {
		Name       string  `json:"name"`
		Confidence float32 `json:"confidence"`
		Source     string  `json:"source"`
	}

	// File is the metadata record returned by upload, details and list calls.
	File struct {
		FileID        string      `json:"fileId"`
		Name          string      `json:"name"`
		Size          uint64      `json:"size"`
		VersionInfo   VersionInfo `json:"versionInfo"`
		FilePath      string      `json:"filePath"`
		URL           string      `json:"url"`
		FileType      FileType    `json:"fileType"`
		Mime          string      `json:"mime,omitempty"`
		Height        *uint64     `json:"height,omitempty"`
		Width         *uint64     `json:"width,omitempty"`
		ThumbnailURL  string      `json:"thumbnailUrl,omitempty"`
		Tags          []string    `json:"tags,omitempty"`
		IsPrivateFile bool        `json:"isPrivateFile"`
		AITags        []AITag     `json:"AITags,omitempty"`
		CreatedAt     *time.Time  `json:"createdAt,omitempty"`
		UpdatedAt     *time.Time  `json:"updatedAt,omitempty"`
	}

	fileAlias File

	// fileWire accepts the alternative spellings the service uses for some
	// fields depending on the endpoint.
	fileWire struct {
		fileAlias
		ThumbnailSnake *string `json:"thumbnail_url"`
		Thumbnail      *string `json:"thumbnail"`
		AITagsCamel    []AITag `json:"aiTags"`
	}
)

func (f *File) UnmarshalJSON(data []byte) error {
	var wire fileWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*f = File(wire.fileAlias)

	// Upload responses use thumbnailUrl while listings use thumbnail; neither
	// spelling is treated as authoritative.
	if f.ThumbnailURL == "" {
		switch {
		case wire.ThumbnailSnake != nil:
			f.ThumbnailURL = *wire.ThumbnailSnake
		case wire.Thumbnail != nil:
			f.ThumbnailURL = *wire.Thumbnail
		}
	}

	if f.AITags == nil && wire.AITagsCamel != nil {
		f.AITags = wire.AITagsCamel
	}

	return nil
}

func (f File) IsImage() bool { return f.FileType == FileTypeImage }
