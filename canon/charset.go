package canon

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"braces.dev/errtrace"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/ghettovoice/urlcanon/internal/errorutil"
)

// EncodingConverter is a [CharsetConverter] backed by a golang.org/x/text encoding.
type EncodingConverter struct {
	enc encoding.Encoding
}

// NewEncodingConverter returns a converter into enc.
func NewEncodingConverter(enc encoding.Encoding) *EncodingConverter {
	return &EncodingConverter{enc: enc}
}

// NewCharsetConverter returns a converter for the charset with the given
// WHATWG label, like "windows-1251" or "shift_jis".
func NewCharsetConverter(name string) (*EncodingConverter, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownCharset, "%q: %v", name, err))
	}
	return NewEncodingConverter(enc), nil
}

// ConvertFromUTF16 implements [CharsetConverter].
func (c *EncodingConverter) ConvertFromUTF16(units []uint16) []byte {
	enc := c.enc.NewEncoder()
	out := make([]byte, 0, len(units))
	var buf [utf8.UTFMax]byte
	for _, r := range utf16.Decode(units) {
		n := utf8.EncodeRune(buf[:], r)
		b, err := enc.Bytes(buf[:n])
		if err != nil {
			out = append(out, "%26%23"...)
			out = strconv.AppendInt(out, int64(r), 10)
			out = append(out, "%3B"...)
			continue
		}
		out = append(out, b...)
	}
	return out
}
