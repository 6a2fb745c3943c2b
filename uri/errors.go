package uri

import (
	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/grammar"
	"github.com/ghettovoice/urlkit/urlpath"
)

// Error represents a URL error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrInvalidArgument is returned when a base of unsupported type is passed to
	// [URL.MakeAbsolute] or [URL.MakeRelative].
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrEmptyInput is returned by [StdParser.Parse] for the empty string.
	ErrEmptyInput = grammar.ErrEmptyInput
	// ErrMalformedInput is returned when a URL string could not be split into components.
	ErrMalformedInput = grammar.ErrMalformedInput
	// ErrInvalidScheme is returned when a non-empty scheme does not match
	// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
	ErrInvalidScheme Error = "invalid scheme"
	// ErrInvalidPort is returned when a port is outside the 1-65535 range.
	ErrInvalidPort Error = "invalid port"
	// ErrIncompatibleBase is returned when the path of a URL cannot be resolved against the base path.
	ErrIncompatibleBase = urlpath.ErrIncompatibleBase
	// ErrCannotResolve is returned by [URL.MakeAbsolute] when the base URL is not absolute.
	ErrCannotResolve Error = "cannot make URL absolute"
	// ErrCannotRelativize is returned by [URL.MakeRelative] when the base URL is not absolute,
	// the base URL has another origin or no base is given for a URL with a relative path.
	ErrCannotRelativize Error = "cannot make URL relative"
)
