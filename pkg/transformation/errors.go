package transformation

import "errors"

var (
	ErrConflictingInputs    = errors.New("either path or src is required, not both")
	ErrEmptyTransformation  = errors.New("no transformation applied")
	ErrMissingRequiredField = errors.New("missing required field")
)
