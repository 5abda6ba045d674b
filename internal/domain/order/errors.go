package order

import "errors"

var (
	ErrNotFound     = errors.New("order not found")
	ErrMissingField = errors.New("required field is missing")
)
