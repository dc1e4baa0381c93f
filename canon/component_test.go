package canon_test

import (
	"testing"

	"github.com/ghettovoice/urlcanon/canon"
	"github.com/ghettovoice/urlcanon/parse"
)

func TestCanonicalizeScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"http", "http:", true},
		{"HTTP", "http:", true},
		{"svn+SSH", "svn+ssh:", true},
		{"", ":", true},
		{"1http", "%31http:", false},
		{"ht%tp", "ht%tp:", false},
		{"h t", "h%20t:", false},
		{"hü", "h%C3%BC:", false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			var out canon.Buffer
			comp, ok := canon.CanonicalizeScheme(c.in, whole(c.in), &out)
			if got := out.String(); got != c.want || ok != c.wantOK {
				t.Errorf("canon.CanonicalizeScheme(%q) = %q, %v, want %q, %v", c.in, got, ok, c.want, c.wantOK)
			}
			if got, want := parse.Substr(out.String(), comp), c.want[:len(c.want)-1]; got != want {
				t.Errorf("canon.CanonicalizeScheme(%q) component = %q, want %q", c.in, got, want)
			}
		})
	}
}

func TestCanonicalizeUserInfo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		spec       string
		user, pass parse.Component
		want       string
		wantUser   string
		wantPass   string
	}{
		{"user:pass", c(0, 4), c(5, 4), "user:pass@", "user", "pass"},
		{"user", c(0, 4), none, "user@", "user", "<absent>"},
		{"user:", c(0, 4), c(5, 0), "user:@", "user", ""},
		{":pass", c(0, 0), c(1, 4), ":pass@", "", "pass"},
		{"us er:p@ss", c(0, 5), c(6, 4), "us%20er:p%40ss@", "us%20er", "p%40ss"},
		{"ü", c(0, 2), none, "%C3%BC@", "%C3%BC", "<absent>"},
		{"", none, none, "", "<absent>", "<absent>"},
		{":", c(0, 0), c(1, 0), "", "<absent>", "<absent>"},
	}

	for _, tc := range cases {
		t.Run(tc.spec, func(t *testing.T) {
			t.Parallel()

			var out canon.Buffer
			user, pass, ok := canon.CanonicalizeUserInfo(tc.spec, tc.user, tc.pass, &out)
			if !ok {
				t.Errorf("canon.CanonicalizeUserInfo(%q) reported failure", tc.spec)
			}
			if got := out.String(); got != tc.want {
				t.Errorf("canon.CanonicalizeUserInfo(%q) = %q, want %q", tc.spec, got, tc.want)
			}
			if got := substrOrAbsent(out.String(), user); got != tc.wantUser {
				t.Errorf("canon.CanonicalizeUserInfo(%q) username = %q, want %q", tc.spec, got, tc.wantUser)
			}
			if got := substrOrAbsent(out.String(), pass); got != tc.wantPass {
				t.Errorf("canon.CanonicalizeUserInfo(%q) password = %q, want %q", tc.spec, got, tc.wantPass)
			}
		})
	}
}

func TestCanonicalizePort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in          string
		defaultPort int
		want        string
		wantOK      bool
	}{
		{"80", 80, "", true},
		{"0080", 80, "", true},
		{"8080", 80, ":8080", true},
		{"00", 80, ":0", true},
		{"443", parse.PortUnspecified, ":443", true},
		{"", 80, "", true},
		{"65536", 80, ":65536", false},
		{"8a", 80, ":8a", false},
		{"8 0", 80, ":8%200", false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			var out canon.Buffer
			comp, ok := canon.CanonicalizePort(c.in, whole(c.in), c.defaultPort, &out)
			if got := out.String(); got != c.want || ok != c.wantOK {
				t.Errorf("canon.CanonicalizePort(%q, %d) = %q, %v, want %q, %v", c.in, c.defaultPort, got, ok, c.want, c.wantOK)
			}
			if c.want == "" && comp.IsValid() {
				t.Errorf("canon.CanonicalizePort(%q, %d) component = %v, want absent", c.in, c.defaultPort, comp)
			}
		})
	}
}

func TestDefaultPortForScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scheme string
		want   int
	}{
		{"http", 80},
		{"https", 443},
		{"ftp", 21},
		{"gopher", 70},
		{"ws", 80},
		{"wss", 443},
		{"file", parse.PortUnspecified},
		{"HTTP", parse.PortUnspecified},
	}

	for _, c := range cases {
		t.Run(c.scheme, func(t *testing.T) {
			t.Parallel()

			if got := canon.DefaultPortForScheme(c.scheme); got != c.want {
				t.Errorf("canon.DefaultPortForScheme(%q) = %d, want %d", c.scheme, got, c.want)
			}
		})
	}
}

func TestCanonicalizePath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"", "/", true},
		{"/", "/", true},
		{"foo", "/foo", true},
		{"/a/./b/../c", "/a/c", true},
		{"/a/b/..", "/a/", true},
		{"/a/b/.", "/a/b/", true},
		{"/..", "/", true},
		{"/../../x", "/x", true},
		{`/a\b`, "/a/b", true},
		{"/%7Ex", "/~x", true},
		{"/%41%2fb", "/A%2fb", true},
		{"/%2e/x", "/x", true},
		{"/a/%2E%2e", "/", true},
		{"/a.b/..c", "/a.b/..c", true},
		{"/a b", "/a%20b", true},
		{"/a?b", "/a%3Fb", true},
		{"/a%", "/a%", true},
		{"/ü", "/%C3%BC", true},
		{"/a\x00b", "/a%00b", false},
		{"/a%00b", "/a%00b", false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			var out canon.Buffer
			comp, ok := canon.CanonicalizePath(c.in, whole(c.in), &out)
			if got := out.String(); got != c.want || ok != c.wantOK {
				t.Errorf("canon.CanonicalizePath(%q) = %q, %v, want %q, %v", c.in, got, ok, c.want, c.wantOK)
			}
			if comp != whole(out.String()) {
				t.Errorf("canon.CanonicalizePath(%q) component = %v, want %v", c.in, comp, whole(out.String()))
			}
		})
	}
}

func TestCanonicalizeQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", "?"},
		{"a=b&c=d", "?a=b&c=d"},
		{"a=b c", "?a=b%20c"},
		{`q="x"`, "?q=%22x%22"},
		{"q=<'>", "?q=%3C%27%3E"},
		{"q=ü", "?q=%C3%BC"},
		{"q=\x01", "?q=%01"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			var out canon.Buffer
			canon.CanonicalizeQuery(c.in, whole(c.in), nil, &out)
			if got := out.String(); got != c.want {
				t.Errorf("canon.CanonicalizeQuery(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}

	var out canon.Buffer
	if comp := canon.CanonicalizeQuery("", none, nil, &out); comp.IsValid() || out.Len() != 0 {
		t.Errorf("canon.CanonicalizeQuery(absent) = %q, %v, want empty output and absent component", out.String(), comp)
	}
}

func TestCanonicalizeRef(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", "#"},
		{"frag", "#frag"},
		{"a b", "#a b"},
		{"a\x00b", "#ab"},
		{"a\x01", "#a%01"},
		{"ü", "#ü"},
		{"\xff", "#�"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			var out canon.Buffer
			canon.CanonicalizeRef(c.in, whole(c.in), &out)
			if got := out.String(); got != c.want {
				t.Errorf("canon.CanonicalizeRef(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func c(begin, length int) parse.Component { return parse.Component{Begin: begin, Len: length} }

var none = parse.Absent()

func substrOrAbsent(s string, comp parse.Component) string {
	if !comp.IsValid() {
		return "<absent>"
	}
	return parse.Substr(s, comp)
}
