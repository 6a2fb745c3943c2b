// Package urlpath implements lexical operations on slash-separated URL paths:
// dot-segment canonicalization and conversion between absolute and relative forms.
//
// A path is absolute when it starts with "/" and relative otherwise, the empty path
// included. A trailing "/" marks a directory path; the operations keep that mark
// wherever the result still names a directory.
//
//	urlpath.Canonicalize("/a/./b/../c")        // "/a/c"
//	urlpath.MakeRelative("/a/c", "/a/b/")      // "../c"
//	urlpath.MakeAbsolute("../../d", "/a/b/c/") // "/a/d"
//
// All functions are pure and safe for concurrent use.
package urlpath

//go:generate go tool errtrace -w .

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/util"
)

// Error represents a path resolution error.
// See [errorutil.Error].
type Error = errorutil.Error

// ErrIncompatibleBase is returned when a path cannot be resolved against the given base:
// the absoluteness of both differs or an absolute result is requested from a relative base.
const ErrIncompatibleBase Error = "incompatible base path"

const (
	sep    = "/"
	dot    = "."
	dotdot = ".."
)

// IsAbsolute reports whether p starts with "/".
func IsAbsolute(p string) bool { return strings.HasPrefix(p, sep) }

// IsRelative reports whether p is not absolute. The empty path is relative.
func IsRelative(p string) bool { return !IsAbsolute(p) }

// IsDir reports whether p ends with "/".
func IsDir(p string) bool { return strings.HasSuffix(p, sep) }

// Segments returns the non-empty segments of p.
// Dot-segments are returned as is.
func Segments(p string) []string {
	segs := strings.Split(p, sep)
	out := segs[:0]
	for _, s := range segs {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Dir returns p up to and including its last "/".
// It returns "" when p has no "/".
func Dir(p string) string {
	before, _, ok := util.CutLast(p, sep)
	if !ok {
		return ""
	}
	return before + sep
}

// Canonicalize removes empty and "." segments from p and resolves ".." segments.
//
// Leading ".." segments of a relative path are kept, while ".." segments reaching above
// the root of an absolute path are dropped. The trailing "/" of p is preserved.
// When nothing remains, the result is "/" for an absolute path, "./" for a relative
// directory path and "" otherwise. The empty path is returned unchanged.
func Canonicalize(p string) string {
	if p == "" {
		return ""
	}

	abs, dir := IsAbsolute(p), IsDir(p)
	segs := strings.Split(p, sep)
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		switch s {
		case "", dot:
		case dotdot:
			if n := len(out); n > 0 && out[n-1] != dotdot {
				out = out[:n-1]
			} else if !abs {
				out = append(out, dotdot)
			}
		default:
			out = append(out, s)
		}
	}

	res := strings.Join(out, sep)
	switch {
	case res == "" && abs:
		return sep
	case res == "" && dir:
		return dot + sep
	case res == "":
		return ""
	}
	if abs {
		res = sep + res
	}
	if dir {
		res += sep
	}
	return res
}

// MakeRelative returns a relative path that leads from the directory of base to p.
//
// The directory of base is base itself when it ends with "/", otherwise base without
// its last segment. Both paths are canonicalized first and must be either absolute or
// relative, otherwise [ErrIncompatibleBase] is returned. The result keeps the trailing
// "/" of a directory p and is "." when p is the directory of base.
func MakeRelative(p, base string) (string, error) {
	if IsAbsolute(p) != IsAbsolute(base) {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrIncompatibleBase,
			"path %q and base %q are not both absolute or relative", p, base))
	}

	p, base = Canonicalize(p), Canonicalize(base)
	// the canonical current directory "./" has a single "." segment
	ps, bs := slices.DeleteFunc(Segments(p), isDot), slices.DeleteFunc(Segments(base), isDot)
	if !IsDir(base) && len(bs) > 0 {
		bs = bs[:len(bs)-1]
	}

	var n int
	for n < len(ps) && n < len(bs) && ps[n] == bs[n] {
		n++
	}

	rel := make([]string, 0, len(bs)-n+len(ps)-n+1)
	for range bs[n:] {
		rel = append(rel, dotdot)
	}
	rel = append(rel, ps[n:]...)
	if len(rel) == 0 {
		return dot, nil
	}
	if IsDir(p) && p != sep {
		rel = append(rel, "")
	}
	return strings.Join(rel, sep), nil
}

func isDot(s string) bool { return s == dot }

// MakeAbsolute resolves p against the directory of base and returns the canonical result.
//
// An absolute p is canonicalized and returned as is, base is not inspected.
// Otherwise base must be absolute, or [ErrIncompatibleBase] is returned.
// The empty path and "." resolve to the directory of base.
func MakeAbsolute(p, base string) (string, error) {
	if IsAbsolute(p) {
		return Canonicalize(p), nil
	}
	if IsRelative(base) {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrIncompatibleBase,
			"base %q of path %q is not absolute", base, p))
	}

	dir := Dir(base)
	if p == "" || p == dot {
		// dir always ends with "/", so does its canonical form
		return Canonicalize(dir), nil
	}
	return Canonicalize(dir + p), nil
}
