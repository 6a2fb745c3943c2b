// Package grammar holds syntactic predicates for URL components
// and the errors raised when input does not match them.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/urlkit/internal/errorutil"
)

func init() {
	abnf.EnableNodeCache(1024)
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

// NewMalformedInputErr wraps args with [ErrMalformedInput].
// See [errorutil.NewWrapperError] for the accepted argument patterns.
func NewMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

const (
	MinPort = 1
	MaxPort = 65535
)

// IsScheme reports whether s is a syntactically valid URI scheme:
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
func IsScheme[T ~string | ~[]byte](s T) bool { return matchAll(rules().scheme, s) }

// IsPortDigits reports whether s is a non-empty run of decimal digits:
//
//	port = 1*DIGIT
//
// Range is checked separately by [IsPort].
func IsPortDigits[T ~string | ~[]byte](s T) bool { return matchAll(rules().port, s) }

// IsPort reports whether p is inside the [MinPort, MaxPort] range.
func IsPort(p int) bool { return p >= MinPort && p <= MaxPort }
