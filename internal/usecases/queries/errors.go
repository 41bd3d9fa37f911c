package queries

import "errors"

var ErrInvalidQuery = errors.New("invalid query")
