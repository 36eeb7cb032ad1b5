package feed

import "errors"

var (
	ErrRecordNotFound = errors.New("feed record not found")
	ErrUnavailable    = errors.New("feed unavailable")
)
