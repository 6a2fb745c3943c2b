package uri

//go:generate go tool mockgen -destination ../internal/testutil/parsermock/parser.go -package parsermock . Parser

import (
	"net/url"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/constraints"
	"github.com/ghettovoice/urlkit/internal/grammar"
	"github.com/ghettovoice/urlkit/internal/util"
)

// Components are the raw parts of a URL string as returned by a [Parser].
// Optional password and port are flagged with HasPassword and HasPort.
type Components struct {
	Scheme      string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	User        string `json:"user,omitempty" yaml:"user,omitempty"`
	Password    string `json:"pass,omitempty" yaml:"pass,omitempty"`
	HasPassword bool   `json:"-" yaml:"-"`
	Host        string `json:"host,omitempty" yaml:"host,omitempty"`
	Port        int    `json:"port,omitempty" yaml:"port,omitempty"`
	HasPort     bool   `json:"-" yaml:"-"`
	Path        string `json:"path,omitempty" yaml:"path,omitempty"`
	Query       string `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment    string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
}

// Parser splits a non-empty URL string into components.
// It returns an error for syntactically invalid input.
type Parser interface {
	Parse(s string) (Components, error)
}

// StdParser is a [Parser] backed by [net/url.Parse].
//
// Opaque URLs like "mailto:user@example.com" are reported with the opaque part as path.
// Path, query and fragment are reported as they appear in the input, IPv6 hosts without brackets.
// Parse failures wrap [ErrMalformedInput], the empty input results in [ErrEmptyInput].
type StdParser struct{}

// Parse implements [Parser].
func (StdParser) Parse(s string) (Components, error) {
	if s == "" {
		return Components{}, errtrace.Wrap(ErrEmptyInput)
	}

	u, err := url.Parse(s)
	if err != nil {
		return Components{}, errtrace.Wrap(grammar.NewMalformedInputErr(err))
	}

	c := Components{
		Scheme:   u.Scheme,
		Host:     u.Hostname(),
		Query:    u.RawQuery,
		Fragment: u.RawFragment,
	}
	// net/url keeps the raw form only when it differs from the default encoding
	if c.Fragment == "" {
		c.Fragment = u.EscapedFragment()
	}
	switch {
	case u.Opaque != "":
		c.Path = u.Opaque
	case u.RawPath != "":
		c.Path = u.RawPath
	default:
		c.Path = u.EscapedPath()
	}
	if u.User != nil {
		c.User = u.User.Username()
		c.Password, c.HasPassword = u.User.Password()
	}
	if p := u.Port(); p != "" {
		if !grammar.IsPortDigits(p) {
			return Components{}, errtrace.Wrap(grammar.NewMalformedInputErr("invalid port %q", p))
		}
		c.Port, err = strconv.Atoi(p)
		if err != nil {
			return Components{}, errtrace.Wrap(grammar.NewMalformedInputErr(err))
		}
		c.HasPort = true
	}
	return c, nil
}

// Parse parses a URL from the given input s (string or []byte) with [StdParser].
// The empty input results in the empty URL.
//
// See [ParseWith].
func Parse[T constraints.Byteseq](s T) (URL, error) {
	return errtrace.Wrap2(ParseWith(StdParser{}, string(s)))
}

// MustParse is like [Parse] but panics on error.
func MustParse[T constraints.Byteseq](s T) URL {
	return util.Must2(Parse(s))
}

// ParseWith parses a URL from s with the given parser.
//
// The empty input results in the empty URL, the parser is not called.
// Errors of the parser are returned unchanged, components it returns are validated
// like in [FromComponents]. A nil parser means [StdParser].
func ParseWith(p Parser, s string) (URL, error) {
	if s == "" {
		return URL{}, nil
	}
	if p == nil {
		p = StdParser{}
	}

	c, err := p.Parse(s)
	if err != nil {
		return URL{}, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(FromComponents(c))
}

// FromComponents builds a URL from the components.
// The scheme and the port are validated as in [URL.WithScheme] and [URL.WithPort].
func FromComponents(c Components) (URL, error) {
	var u URL
	if err := u.setScheme(c.Scheme); err != nil {
		return URL{}, errtrace.Wrap(err)
	}
	if c.HasPassword {
		u.user = UserPassword(c.User, c.Password)
	} else {
		u.user = User(c.User)
	}
	u.setHost(c.Host)
	if c.HasPort {
		if err := u.setPort(c.Port); err != nil {
			return URL{}, errtrace.Wrap(err)
		}
	}
	u.path, u.query, u.fragment = c.Path, c.Query, c.Fragment
	return u, nil
}
