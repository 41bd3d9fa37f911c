package services

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"

	"github.com/architeacher/imagekit/pkg/media"
)

const defaultContentType = "application/octet-stream"

// uploadBody returns the multipart body of an upload and its content type.
// Buffered sources are encoded up front; streams are encoded while the
// request is sent. The returned close func releases a pending stream.
func uploadBody(opts media.UploadOptions) (io.Reader, string, func(), error) {
	if _, known := opts.Source.Size(); known {
		var buf bytes.Buffer

		writer := multipart.NewWriter(&buf)
		if err := writeForm(writer, opts); err != nil {
			return nil, "", nil, err
		}

		return &buf, writer.FormDataContentType(), func() {}, nil
	}

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeForm(writer, opts))
	}()

	return pr, writer.FormDataContentType(), func() { _ = pr.Close() }, nil
}

func writeForm(writer *multipart.Writer, opts media.UploadOptions) error {
	for _, field := range opts.Fields() {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return fmt.Errorf("unable to write %s field: %w", field[0], err)
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, opts.FileName))
	header.Set("Content-Type", contentTypeOf(opts.FileName))

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("unable to create file part: %w", err)
	}

	if _, err := io.Copy(part, opts.Source.Reader()); err != nil {
		return fmt.Errorf("unable to write file part: %w", err)
	}

	return writer.Close()
}

func contentTypeOf(fileName string) string {
	if contentType := mime.TypeByExtension(filepath.Ext(fileName)); contentType != "" {
		return contentType
	}

	return defaultContentType
}
