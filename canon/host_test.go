package canon_test

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/urlcanon/canon"
	"github.com/ghettovoice/urlcanon/canon/canonmock"
	"github.com/ghettovoice/urlcanon/parse"
)

func TestCanonicalizeHostVerbose(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in         string
		want       string
		wantFamily canon.HostFamily
	}{
		{"www.Google.com", "www.google.com", canon.HostNeutral},
		{"%41.com", "a.com", canon.HostNeutral},
		{"a b.com", "a%20b.com", canon.HostNeutral},
		{"a_b-c+d", "a_b-c+d", canon.HostNeutral},
		{"a/b", "a%2Fb", canon.HostBroken},
		{"%zz.com", "%25zz.com", canon.HostBroken},
		{"Bücher.de", "xn--bcher-kva.de", canon.HostNeutral},
		{"B%C3%BCcher.de", "xn--bcher-kva.de", canon.HostNeutral},
		{"192.168.0.1", "192.168.0.1", canon.HostIPv4},
		{"0x7f.1", "127.0.0.1", canon.HostIPv4},
		{"%30x7f.1", "127.0.0.1", canon.HostIPv4},
		{"1.2.3.256", "1.2.3.256", canon.HostBroken},
		{"[::1]", "[::1]", canon.HostIPv6},
		{"[0:0::1]", "[::1]", canon.HostIPv6},
		{"[x", "[x", canon.HostBroken},
		{"a:b", "a:b", canon.HostBroken},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			var out canon.Buffer
			info := canon.CanonicalizeHostVerbose(c.in, whole(c.in), nil, &out)
			if got := out.String(); got != c.want || info.Family != c.wantFamily {
				t.Errorf("canon.CanonicalizeHostVerbose(%q) = %q, %v, want %q, %v", c.in, got, info.Family, c.want, c.wantFamily)
			}
			if info.OutHost != whole(out.String()) {
				t.Errorf("canon.CanonicalizeHostVerbose(%q) host component = %v, want %v", c.in, info.OutHost, whole(out.String()))
			}
		})
	}
}

func TestCanonicalizeHost_Empty(t *testing.T) {
	t.Parallel()

	for _, host := range []parse.Component{none, c(0, 0)} {
		var out canon.Buffer
		comp, ok := canon.CanonicalizeHost("", host, nil, &out)
		if !ok || comp.IsValid() || out.Len() != 0 {
			t.Errorf("canon.CanonicalizeHost(%v) = %q, %v, %v, want empty output, absent component and success",
				host, out.String(), comp, ok)
		}
	}
}

func TestCanonicalizeHost_Transcoder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	idn := canonmock.NewMockHostTranscoder(ctrl)
	idn.EXPECT().ToASCII("ü.example").Return("XN--TDA.example", nil)
	idn.EXPECT().ToASCII("ö.example").Return("", errors.New("disallowed rune"))
	idn.EXPECT().ToASCII("ä.example").Return("ä.example", nil)

	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"ü.example", "xn--tda.example", true},
		{"ö.example", "%C3%B6.example", false},
		{"ä.example", "ä.example", false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			var out canon.Buffer
			_, ok := canon.CanonicalizeHost(c.in, whole(c.in), idn, &out)
			if got := out.String(); got != c.want || ok != c.wantOK {
				t.Errorf("canon.CanonicalizeHost(%q) = %q, %v, want %q, %v", c.in, got, ok, c.want, c.wantOK)
			}
		})
	}
}

func TestCanonicalizeHost_InvalidUTF8(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	idn := canonmock.NewMockHostTranscoder(ctrl)
	idn.EXPECT().ToASCII(gomock.Any()).Times(0)

	in := "a\xffb"
	var out canon.Buffer
	_, ok := canon.CanonicalizeHost(in, whole(in), idn, &out)
	if got, want := out.String(), "a%EF%BF%BDb"; got != want || ok {
		t.Errorf("canon.CanonicalizeHost(%q) = %q, %v, want %q, false", in, got, ok, want)
	}
}

func TestCanonicalizeIPAddress(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in         string
		want       string
		wantFamily canon.HostFamily
		wantComps  int
	}{
		{"192.168.0.1", "192.168.0.1", canon.HostIPv4, 4},
		{"0300.0250.00.01", "192.168.0.1", canon.HostIPv4, 4},
		{"0xC0.0Xa8.0x0.0x1", "192.168.0.1", canon.HostIPv4, 4},
		{"192.168.1", "192.168.0.1", canon.HostIPv4, 3},
		{"192.11010049", "192.168.0.1", canon.HostIPv4, 2},
		{"4294967295", "255.255.255.255", canon.HostIPv4, 1},
		{"0x", "0.0.0.0", canon.HostIPv4, 1},
		{"192.168.0.1.", "192.168.0.1", canon.HostIPv4, 4},
		{"4294967296", "", canon.HostBroken, 0},
		{"1.2.3.256", "", canon.HostBroken, 0},
		{"256.1.1.1", "", canon.HostBroken, 0},
		{"0x100000000000000001", "", canon.HostBroken, 0},
		{"1.2.3.4.5", "", canon.HostNeutral, 0},
		{"09.1.1.1", "", canon.HostNeutral, 0},
		{"192.168.9.com", "", canon.HostNeutral, 0},
		{"www.google.com", "", canon.HostNeutral, 0},
		{"1..2", "", canon.HostNeutral, 0},
		{"[0:0:0:0:0:0:0:1]", "[::1]", canon.HostIPv6, 0},
		{"[2001:DB8::1]", "[2001:db8::1]", canon.HostIPv6, 0},
		{"[1:0:0:2::3:0]", "[1::2:0:0:3:0]", canon.HostIPv6, 0},
		{"[1:0:2:3:4:5:6:7]", "[1:0:2:3:4:5:6:7]", canon.HostIPv6, 0},
		{"[::192.168.0.1]", "[::c0a8:1]", canon.HostIPv6, 0},
		{"[::ffff:0x7f.1]", "", canon.HostBroken, 0},
		{"[::]", "[::]", canon.HostIPv6, 0},
		{"[1::]", "[1::]", canon.HostIPv6, 0},
		{"[1:2:3:4:5:6:7:8]", "[1:2:3:4:5:6:7:8]", canon.HostIPv6, 0},
		{"[1:2:3:4:5:6:7:8:9]", "", canon.HostBroken, 0},
		{"[::1::2]", "", canon.HostBroken, 0},
		{"[12345::]", "", canon.HostBroken, 0},
		{"[:1]", "", canon.HostBroken, 0},
		{"[1:]", "", canon.HostBroken, 0},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			var out canon.Buffer
			info := canon.CanonicalizeIPAddress(c.in, whole(c.in), &out)
			if got := out.String(); got != c.want || info.Family != c.wantFamily {
				t.Errorf("canon.CanonicalizeIPAddress(%q) = %q, %v, want %q, %v", c.in, got, info.Family, c.want, c.wantFamily)
			}
			if info.Family == canon.HostIPv4 && info.NumIPv4Components != c.wantComps {
				t.Errorf("canon.CanonicalizeIPAddress(%q) components = %d, want %d", c.in, info.NumIPv4Components, c.wantComps)
			}
		})
	}
}

func TestHostInfo_Address(t *testing.T) {
	t.Parallel()

	in := "[2001:db8::ff00:42:8329]"
	var out canon.Buffer
	info := canon.CanonicalizeIPAddress(in, whole(in), &out)
	if !info.IsIPAddress() || info.AddressLength() != 16 {
		t.Fatalf("canon.CanonicalizeIPAddress(%q) = %v, %d bytes, want an IPv6 address", in, info.Family, info.AddressLength())
	}
	want := [16]byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0xff, 0x00, 0x00, 0x42, 0x83, 0x29}
	if info.Address != want {
		t.Errorf("canon.CanonicalizeIPAddress(%q) address = % x, want % x", in, info.Address, want)
	}
}

func BenchmarkCanonicalizeHost(b *testing.B) {
	in := "WWW.Example.COM"
	out := canon.NewBuffer(64)
	for b.Loop() {
		out.Reset()
		canon.CanonicalizeHost(in, whole(in), nil, out)
	}
}
