package uri_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urlkit/uri"
)

func TestURL_MakeAbsolute(t *testing.T) {
	t.Parallel()

	const base = "http://user:pw@example.com:8080/a/b/c"

	cases := []struct {
		name    string
		input   string
		base    any
		want    string
		wantErr error
	}{
		{"sibling file", "d", base, "http://user:pw@example.com:8080/a/b/d", nil},
		{"parent with query and fragment", "../d?x=1#f", base, "http://user:pw@example.com:8080/a/d?x=1#f", nil},
		{"root relative", "/x/./y", base, "http://user:pw@example.com:8080/x/y", nil},
		{"empty", "", base, "http://user:pw@example.com:8080/a/b/", nil},
		{"query only", "?q", base, "http://user:pw@example.com:8080/a/b/?q", nil},
		{"dot", ".", base, "http://user:pw@example.com:8080/a/b/", nil},
		{"dotdot above root", "../../../../d", base, "http://user:pw@example.com:8080/d", nil},
		{"absolute input", "https://other.com/p/../q", base, "https://other.com/q", nil},
		{"scheme relative", "//x.com/p", base, "http://x.com/p", nil},
		{"scheme relative standard port", "//x.com:443/p", "https://example.com/", "https://x.com/p", nil},
		{"base without user info", "d", "http://example.com/a/", "http://example.com/a/d", nil},
		{"base without path", "d", "http://example.com", "http://example.com/d", nil},
		{"relative base", "d", "/a/b", "", uri.ErrCannotResolve},
		{"scheme relative base", "d", "//example.com/a", "", uri.ErrCannotResolve},
		{"malformed base", "d", "http://[::1", "", uri.ErrMalformedInput},
		{"nil base", "d", nil, "", uri.ErrInvalidArgument},
		{"unsupported base", "d", 42, "", uri.ErrInvalidArgument},
		{"nil URL pointer base", "d", (*uri.URL)(nil), "", uri.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := uri.MustParse(c.input).MakeAbsolute(c.base)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.MustParse(%q).MakeAbsolute(%v) error = %v, want %v\ndiff (-got +want):\n%v",
					c.input, c.base, err, c.wantErr, diff)
			}
			if got := u.String(); got != c.want {
				t.Errorf("uri.MustParse(%q).MakeAbsolute(%v) = %q, want %q", c.input, c.base, got, c.want)
			}
		})
	}
}

func TestURL_MakeAbsolute_BaseTypes(t *testing.T) {
	t.Parallel()

	const (
		base = "https://example.com/docs/guide/"
		want = "https://example.com/docs/api/index.html"
	)

	b := uri.MustParse(base)
	stdURL, err := url.Parse(base)
	if err != nil {
		t.Fatalf("url.Parse(%q) error = %v, want nil", base, err)
	}

	bases := map[string]any{
		"string":      base,
		"bytes":       []byte(base),
		"URL":         b,
		"URL pointer": &b,
		"net/url.URL": stdURL,
	}

	u := uri.MustParse("../api/index.html")
	for name, base := range bases {
		got, err := u.MakeAbsolute(base)
		if err != nil {
			t.Errorf("%s: u.MakeAbsolute(%v) error = %v, want nil", name, base, err)
			continue
		}
		if got.String() != want {
			t.Errorf("%s: u.MakeAbsolute(%v) = %q, want %q", name, base, got, want)
		}
	}
}

func TestURL_MakeRelative(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		base     any
		wantPath string
		want     string
		wantErr  error
	}{
		{"sibling of dir", "http://example.com/a/c", "http://example.com/a/b/", "../c", "../c", nil},
		{"same file", "http://example.com/a/b/c", "http://example.com/a/b/c", "c", "c", nil},
		{"same dir", "http://example.com/a/b/", "http://example.com/a/b/", ".", "", nil},
		{"query and fragment kept", "http://example.com/x?q#f", "http://example.com/a/b", "../x", "../x?q#f", nil},
		{"base query ignored", "http://example.com/a/x", "http://example.com/a/b?q=1", "x", "x", nil},
		{"child dir", "http://example.com/a/b/", "http://example.com/a/c", "b/", "b/", nil},
		{"ancestor root", "http://example.com/", "http://example.com/a/b/", "../..", "../..", nil},
		{"empty path", "http://example.com", "http://example.com/a/b", "..", "..", nil},
		{"relative input", "d/e", "http://example.com/a/b/c", "d/e", "d/e", nil},
		{"explicit standard port", "http://example.com:80/a/b", "http://example.com/a/", "b", "b", nil},
		{"different host", "http://b.com/1", "http://a.com/2", "", "", uri.ErrCannotRelativize},
		{"different scheme", "https://example.com/a", "http://example.com/", "", "", uri.ErrCannotRelativize},
		{"different port", "http://example.com:8080/a", "http://example.com/", "", "", uri.ErrCannotRelativize},
		{"different user", "http://u@example.com/a", "http://example.com/", "", "", uri.ErrCannotRelativize},
		{"relative base", "http://example.com/a", "/a", "", "", uri.ErrCannotRelativize},
		{"unsupported base", "http://example.com/a", 3.14, "", "", uri.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := uri.MustParse(c.input).MakeRelative(c.base)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.MustParse(%q).MakeRelative(%v) error = %v, want %v\ndiff (-got +want):\n%v",
					c.input, c.base, err, c.wantErr, diff)
			}
			if got := u.Path(); got != c.wantPath {
				t.Errorf("uri.MustParse(%q).MakeRelative(%v).Path() = %q, want %q", c.input, c.base, got, c.wantPath)
			}
			if got := u.String(); got != c.want {
				t.Errorf("uri.MustParse(%q).MakeRelative(%v) = %q, want %q", c.input, c.base, got, c.want)
			}
			if err == nil && (u.Scheme() != "" || u.Authority() != "") {
				t.Errorf("uri.MustParse(%q).MakeRelative(%v) = %q has scheme or authority", c.input, c.base, u)
			}
		})
	}
}

func TestURL_MakeRelative_NoBase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    string
		wantErr error
	}{
		{"http://user:pw@example.com:8080/a/./b?q=1#f", "/a/b?q=1#f", nil},
		{"http://example.com", "/", nil},
		{"//example.com/x", "/x", nil},
		{"/already/rooted", "/already/rooted", nil},
		{"a/b", "", uri.ErrCannotRelativize},
		{"", "", uri.ErrCannotRelativize},
	}

	for _, c := range cases {
		u, err := uri.MustParse(c.input).MakeRelative(nil)
		if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("uri.MustParse(%q).MakeRelative(nil) error = %v, want %v\ndiff (-got +want):\n%v",
				c.input, err, c.wantErr, diff)
		}
		if got := u.String(); got != c.want {
			t.Errorf("uri.MustParse(%q).MakeRelative(nil) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestURL_ResolutionRoundTrip(t *testing.T) {
	t.Parallel()

	targets := []string{
		"http://example.com/",
		"http://example.com/a",
		"http://example.com/a/",
		"http://example.com/a/b/c",
		"http://example.com/a/b/c/",
		"http://example.com/x/y/z?q=1#f",
		"http://example.com/a/./b/../c/",
	}
	bases := []string{
		"http://example.com/",
		"http://example.com/a",
		"http://example.com/a/b/",
		"http://example.com/a/b/c",
		"http://example.com/a/b/c/d/",
		"http://example.com/x/q",
	}

	for _, target := range targets {
		for _, base := range bases {
			u := uri.MustParse(target)
			rel, err := u.MakeRelative(base)
			if err != nil {
				t.Errorf("uri.MustParse(%q).MakeRelative(%q) error = %v, want nil", target, base, err)
				continue
			}
			back, err := rel.MakeAbsolute(base)
			if err != nil {
				t.Errorf("rel(%q).MakeAbsolute(%q) error = %v, want nil", rel, base, err)
				continue
			}
			if !back.Equal(u) {
				t.Errorf("round trip of %q against %q via %q = %q, want %q", target, base, rel.Path(), back, u)
			}
		}
	}
}
