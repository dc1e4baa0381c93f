package uri

import "github.com/ghettovoice/urlcanon/internal/errorutil"

type Error = errorutil.Error

const (
	// ErrEmptyInput is returned when there is nothing to parse.
	ErrEmptyInput Error = "empty input"
	// ErrInvalidURL is returned for input that canonicalizes into an invalid URL.
	ErrInvalidURL Error = "invalid URL"
	// ErrResolveFailed is returned when a reference can't be resolved against a base.
	ErrResolveFailed Error = "resolve failed"
)
