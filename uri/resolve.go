package uri

import (
	"net/url"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/urlpath"
)

// MakeAbsolute resolves the URL against the absolute base URL.
//
// The base may be a string, []byte, [URL], *[URL] or *[net/url.URL].
// If the base is not absolute, [ErrCannotResolve] is returned.
//
// An absolute URL only gets its path canonicalized. A scheme-relative URL ("//host/path")
// takes the scheme of the base. Any other URL takes scheme, host, port and, if the base has
// any, user info of the base, while its path is resolved against the base path.
// Query and fragment are never taken from the base.
func (u URL) MakeAbsolute(base any) (URL, error) {
	b, err := toBase(base)
	if err != nil {
		return URL{}, errtrace.Wrap(err)
	}
	if !b.IsAbsolute() {
		return URL{}, errtrace.Wrap(errorutil.NewWrapperError(ErrCannotResolve, "base %q is not absolute", b))
	}
	return errtrace.Wrap2(u.resolve(b))
}

// MakeRelative returns a relative URL that leads from the base URL to u.
// The result carries only path, query and fragment.
//
// With nil base the root-relative form of u is returned: scheme and authority are dropped,
// path, query and fragment are kept as is. [ErrCannotRelativize] is returned if the path is relative.
//
// Otherwise the base may be a string, []byte, [URL], *[URL] or *[net/url.URL] and must be
// absolute. A relative u is resolved against the base first, see [URL.MakeAbsolute].
// The scheme and authority of u and the base must match, or [ErrCannotRelativize] is returned.
// The path is made relative to the base path, see [urlpath.MakeRelative].
func (u URL) MakeRelative(base any) (URL, error) {
	if base == nil {
		path := rootedPath(u)
		if urlpath.IsRelative(path) {
			return URL{}, errtrace.Wrap(errorutil.NewWrapperError(ErrCannotRelativize,
				"path %q is relative and no base given", path))
		}
		return URL{path: path, query: u.query, fragment: u.fragment}, nil
	}

	b, err := toBase(base)
	if err != nil {
		return URL{}, errtrace.Wrap(err)
	}
	if !b.IsAbsolute() {
		return URL{}, errtrace.Wrap(errorutil.NewWrapperError(ErrCannotRelativize, "base %q is not absolute", b))
	}

	t, err := u.resolve(b)
	if err != nil {
		return URL{}, errtrace.Wrap(err)
	}
	if t.scheme != b.scheme || t.Authority() != b.Authority() {
		return URL{}, errtrace.Wrap(errorutil.NewWrapperError(ErrCannotRelativize,
			"%q and base %q differ in scheme or authority", t, b))
	}

	path, err := urlpath.MakeRelative(rootedPath(t), rootedPath(b))
	if err != nil {
		return URL{}, errtrace.Wrap(err)
	}
	return URL{path: path, query: t.query, fragment: t.fragment}, nil
}

// resolve expects an absolute base.
func (u URL) resolve(b URL) (URL, error) {
	switch {
	case u.IsAbsolute():
		u.path = urlpath.Canonicalize(u.path)
		return u, nil
	case u.scheme == "" && u.host != "":
		u.scheme = b.scheme
		u.path = urlpath.Canonicalize(u.path)
		return u, nil
	}

	path, err := urlpath.MakeAbsolute(u.path, rootedPath(b))
	if err != nil {
		return URL{}, errtrace.Wrap(err)
	}
	u.scheme, u.host, u.port = b.scheme, b.host, b.port
	if b.user.usrname != "" {
		u.user = b.user
	}
	u.path = path
	return u, nil
}

// rootedPath returns "/" for the empty path of a URL with authority.
func rootedPath(u URL) string {
	if u.path == "" && u.host != "" {
		return "/"
	}
	return u.path
}

func toBase(base any) (URL, error) {
	switch b := base.(type) {
	case URL:
		return b, nil
	case *URL:
		if b == nil {
			break
		}
		return *b, nil
	case string:
		return errtrace.Wrap2(Parse(b))
	case []byte:
		return errtrace.Wrap2(Parse(b))
	case *url.URL:
		if b == nil {
			break
		}
		return errtrace.Wrap2(Parse(b.String()))
	}
	return URL{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("unsupported base %T", base))
}
