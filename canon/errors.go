package canon

import "github.com/ghettovoice/urlcanon/internal/errorutil"

type Error = errorutil.Error

const (
	// ErrSchemesLocked is returned when a scheme is added to a locked [SchemeRegistry].
	ErrSchemesLocked Error = "scheme registry is locked"
	// ErrInvalidScheme is returned for a scheme name that can't be registered.
	ErrInvalidScheme Error = "invalid scheme"
	// ErrUnknownCharset is returned by [NewCharsetConverter] for unsupported charsets.
	ErrUnknownCharset Error = "unknown charset"
)
