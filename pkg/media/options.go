package media

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/architeacher/imagekit/pkg/search"
)

type (
	// UploadOptions describes a file to upload.
	//
	// Refer: https://docs.imagekit.io/api-reference/upload-file-api/server-side-file-upload
	UploadOptions struct {
		Source Source
		// FileName may only contain a-z, A-Z, 0-9, ".", "_" and "-".
		FileName          string
		Folder            string
		Tags              []string
		UseUniqueFileName *bool
		IsPrivateFile     bool
	}

	// ListOptions filters a list/search call.
	//
	// Refer: https://docs.imagekit.io/api-reference/media-api/list-and-search-files
	ListOptions struct {
		SearchQuery search.Expression
		Path        string
		Tags        string
		Skip        *uint32
		Limit       *uint32
	}
)

func NewUploadOptions(source Source, fileName string) UploadOptions {
	return UploadOptions{Source: source, FileName: fileName}
}

func (o UploadOptions) WithFolder(folder string) UploadOptions {
	o.Folder = folder

	return o
}

func (o UploadOptions) WithTags(tags ...string) UploadOptions {
	o.Tags = append([]string(nil), tags...)

	return o
}

func (o UploadOptions) WithUniqueFileName(unique bool) UploadOptions {
	o.UseUniqueFileName = &unique

	return o
}

func (o UploadOptions) WithPrivateFile(private bool) UploadOptions {
	o.IsPrivateFile = private

	return o
}

func (o UploadOptions) Validate() error {
	if o.Source == nil || o.Source.Reader() == nil {
		return fmt.Errorf("%w: file source is required", ErrInvalidUpload)
	}

	if strings.TrimSpace(o.FileName) == "" {
		return fmt.Errorf("%w: file name is required", ErrInvalidUpload)
	}

	return nil
}

// Fields returns the non-file form fields of the multipart upload body.
func (o UploadOptions) Fields() [][2]string {
	fields := [][2]string{{"fileName", o.FileName}}

	if o.Folder != "" {
		fields = append(fields, [2]string{"folder", o.Folder})
	}

	if len(o.Tags) > 0 {
		fields = append(fields, [2]string{"tags", strings.Join(o.Tags, ",")})
	}

	if o.UseUniqueFileName != nil {
		fields = append(fields, [2]string{"useUniqueFileName", strconv.FormatBool(*o.UseUniqueFileName)})
	}

	if o.IsPrivateFile {
		fields = append(fields, [2]string{"isPrivateFile", "true"})
	}

	return fields
}

func NewListOptions() ListOptions {
	return ListOptions{}
}

func (o ListOptions) WithSearchQuery(query search.Expression) ListOptions {
	o.SearchQuery = query

	return o
}

func (o ListOptions) WithPath(path string) ListOptions {
	o.Path = path

	return o
}

// WithTags takes the comma-separated tag filter of the listing API.
func (o ListOptions) WithTags(tags string) ListOptions {
	o.Tags = tags

	return o
}

func (o ListOptions) WithSkip(skip uint32) ListOptions {
	o.Skip = &skip

	return o
}

func (o ListOptions) WithLimit(limit uint32) ListOptions {
	o.Limit = &limit

	return o
}

// Values renders the query string of the listing request.
func (o ListOptions) Values() url.Values {
	values := url.Values{}

	if !o.SearchQuery.IsZero() {
		values.Set("searchQuery", o.SearchQuery.String())
	}

	if o.Path != "" {
		values.Set("path", o.Path)
	}

	if o.Tags != "" {
		values.Set("tags", o.Tags)
	}

	if o.Skip != nil {
		values.Set("skip", strconv.FormatUint(uint64(*o.Skip), 10))
	}

	if o.Limit != nil {
		values.Set("limit", strconv.FormatUint(uint64(*o.Limit), 10))
	}

	return values
}
