package canon_test

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/text/encoding/charmap"

	"github.com/ghettovoice/urlcanon/canon"
	"github.com/ghettovoice/urlcanon/canon/canonmock"
)

func TestNewCharsetConverter(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"windows-1251", "shift_jis", "ISO-8859-1", "utf-8"} {
		if _, err := canon.NewCharsetConverter(name); err != nil {
			t.Errorf("canon.NewCharsetConverter(%q) error = %v, want nil", name, err)
		}
	}
	if _, err := canon.NewCharsetConverter("no-such-charset"); !errors.Is(err, canon.ErrUnknownCharset) {
		t.Errorf("canon.NewCharsetConverter(\"no-such-charset\") error = %v, want %v", err, canon.ErrUnknownCharset)
	}
}

func TestEncodingConverter_ConvertFromUTF16(t *testing.T) {
	t.Parallel()

	conv := canon.NewEncodingConverter(charmap.ISO8859_1)
	cases := []struct {
		name string
		in   []uint16
		want string
	}{
		{"ASCII", []uint16{'a', '=', 'b'}, "a=b"},
		{"latin", []uint16{0xE9}, "\xe9"},
		{"unmappable", []uint16{0x416}, "%26%231046%3B"},
		{"surrogate pair", []uint16{0xD83D, 0xDCA9}, "%26%23128169%3B"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := string(conv.ConvertFromUTF16(c.in)); got != c.want {
				t.Errorf("conv.ConvertFromUTF16(%v) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestCanonicalizeQuery_Converter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	conv := canonmock.NewMockCharsetConverter(ctrl)
	conv.EXPECT().ConvertFromUTF16([]uint16{'q', '=', 0xE9, 0xFFFD}).Return([]byte("q=\xe9?"))

	in := "q=é\xff"
	var out canon.Buffer
	canon.CanonicalizeQuery(in, whole(in), conv, &out)
	if got, want := out.String(), "?q=%E9?"; got != want {
		t.Errorf("canon.CanonicalizeQuery(%q) = %q, want %q", in, got, want)
	}

	// ASCII queries never reach the converter
	out.Reset()
	canon.CanonicalizeQuery("a=b", whole("a=b"), conv, &out)
	if got, want := out.String(), "?a=b"; got != want {
		t.Errorf("canon.CanonicalizeQuery(\"a=b\") = %q, want %q", got, want)
	}
}
