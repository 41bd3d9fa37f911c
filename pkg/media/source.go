package media

import (
	"bytes"
	"io"
)

// Source is the content of an upload: either a stream of unknown length or
// an in-memory buffer. Implementations are FromReader and FromBytes.
type Source interface {
	// Reader returns the bytes to upload. A stream can only be read once.
	Reader() io.Reader
	// Size reports the length in bytes when it is known up front.
	Size() (int64, bool)
}

type (
	streamSource struct {
		reader io.Reader
	}

	bufferSource struct {
		data []byte
	}
)

// FromReader streams r to the service, e.g. an *os.File.
func FromReader(r io.Reader) Source {
	return streamSource{reader: r}
}

// FromBytes uploads an in-memory buffer.
func FromBytes(data []byte) Source {
	return bufferSource{data: data}
}

func (s streamSource) Reader() io.Reader   { return s.reader }
func (s streamSource) Size() (int64, bool) { return -1, false }

func (s bufferSource) Reader() io.Reader   { return bytes.NewReader(s.data) }
func (s bufferSource) Size() (int64, bool) { return int64(len(s.data)), true }
