// Package transformation renders image transformation parameters and
// assembles transformation URLs.
package transformation

import (
	"strconv"
	"strings"
)

// Transformation is a set of optional resize and shape parameters.
// Setters return a copy, so a Transformation can be shared safely.
type Transformation struct {
	width       *uint32
	height      *uint32
	aspectRatio *string
}

func New() Transformation {
	return Transformation{}
}

func (t Transformation) Width(pixels uint32) Transformation {
	t.width = &pixels

	return t
}

func (t Transformation) Height(pixels uint32) Transformation {
	t.height = &pixels

	return t
}

// AspectRatio sets the ar token. It is inserted verbatim and must already be
// in the service's format, e.g. "16-9".
func (t Transformation) AspectRatio(ratio string) Transformation {
	t.aspectRatio = &ratio

	return t
}

func (t Transformation) IsEmpty() bool {
	return t.width == nil && t.height == nil && t.aspectRatio == nil
}

// Transform renders the parameters as "w-{w},h-{h},ar-{ar}", skipping the
// unset ones. Order is fixed.
func (t Transformation) Transform() (string, error) {
	var builder strings.Builder

	if t.width != nil {
		builder.WriteString(",w-")
		builder.WriteString(strconv.FormatUint(uint64(*t.width), 10))
	}

	if t.height != nil {
		builder.WriteString(",h-")
		builder.WriteString(strconv.FormatUint(uint64(*t.height), 10))
	}

	if t.aspectRatio != nil {
		builder.WriteString(",ar-")
		builder.WriteString(*t.aspectRatio)
	}

	if builder.Len() == 0 {
		return "", ErrEmptyTransformation
	}

	return strings.Trim(builder.String(), ","), nil
}
