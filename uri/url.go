package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/grammar"
	"github.com/ghettovoice/urlkit/internal/ioutil"
	"github.com/ghettovoice/urlkit/internal/util"
	"github.com/ghettovoice/urlkit/urlpath"
)

// URL is an immutable URL value.
//
// The zero value is the empty URL. Every With* method and the resolution methods
// return a new value and leave the receiver untouched.
type URL struct {
	scheme   string
	user     UserInfo
	host     string
	port     int // 0 means no port
	path     string
	query    string
	fragment string
}

// RenderOptions contains options for rendering URLs.
type RenderOptions struct {
	// RawPath renders the stored path as is, without dot-segment canonicalization.
	RawPath bool `json:"raw_path,omitempty"`
}

// Scheme returns the lower-cased scheme or "" if the URL has no scheme.
func (u URL) Scheme() string { return u.scheme }

// Username returns the username of the user info.
func (u URL) Username() string { return u.user.usrname }

// Password returns the password, in case it is set, and a bool flag indicating whether it is set.
func (u URL) Password() (string, bool) { return u.user.Password() }

// UserInfo returns "username" or "username:password".
// It is empty when the username is empty.
func (u URL) UserInfo() string { return u.user.String() }

// Host returns the lower-cased host or "" if the URL has no authority.
func (u URL) Host() string { return u.host }

// Port returns the port and true, unless the port is not set
// or equals the standard port of the current scheme.
func (u URL) Port() (int, bool) {
	if u.port == 0 {
		return 0, false
	}
	if sp, ok := standardPorts[u.scheme]; ok && sp == u.port {
		return 0, false
	}
	return u.port, true
}

// Authority returns "[userinfo@]host[:port]" or "" if the host is empty.
func (u URL) Authority() string {
	if u.host == "" {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if ui := u.UserInfo(); ui != "" {
		sb.WriteString(ui)
		sb.WriteByte('@')
	}
	if strings.Contains(u.host, ":") {
		// IPv6 literal, the zone delimiter is escaped as in RFC 6874
		ip := strings.TrimSuffix(strings.TrimPrefix(u.host, "["), "]")
		sb.WriteByte('[')
		sb.WriteString(strings.ReplaceAll(ip, "%", "%25"))
		sb.WriteByte(']')
	} else {
		sb.WriteString(u.host)
	}
	if p, ok := u.Port(); ok {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(p))
	}
	return sb.String()
}

// Path returns the stored path. It is never canonicalized on store.
func (u URL) Path() string { return u.path }

// Query returns the query without the leading "?".
func (u URL) Query() string { return u.query }

// Fragment returns the fragment without the leading "#".
func (u URL) Fragment() string { return u.fragment }

// IsAbsolute reports whether the URL has both scheme and authority.
func (u URL) IsAbsolute() bool { return u.scheme != "" && u.Authority() != "" }

// IsRelative reports whether the URL is not absolute.
func (u URL) IsRelative() bool { return !u.IsAbsolute() }

// IsZero reports whether all components of the URL are empty.
func (u URL) IsZero() bool { return u == URL{} }

// IsValid reports whether the host is a well-formed domain name or IP literal.
// A URL without host is valid when it carries no user info and no port either.
func (u URL) IsValid() bool {
	if u.scheme != "" && !grammar.IsScheme(u.scheme) {
		return false
	}
	if u.host == "" {
		return u.user.IsZero() && u.port == 0
	}
	ip, _, _ := strings.Cut(strings.Trim(u.host, "[]"), "%")
	if net.ParseIP(ip) != nil {
		return true
	}
	_, ok := dns.IsDomainName(u.host)
	return ok
}

// Components returns the stored components of the URL.
// Unlike [URL.Port] the port is reported even when it equals the standard port.
func (u URL) Components() Components {
	c := Components{
		Scheme:   u.scheme,
		User:     u.user.usrname,
		Host:     u.host,
		Path:     u.path,
		Query:    u.query,
		Fragment: u.fragment,
	}
	c.Password, c.HasPassword = u.user.Password()
	if u.port != 0 {
		c.Port, c.HasPort = u.port, true
	}
	return c
}

// WithScheme returns a copy of the URL with the scheme replaced.
// An empty scheme removes it, any other must be a valid scheme name or [ErrInvalidScheme] is returned.
func (u URL) WithScheme(scheme string) (URL, error) {
	if err := u.setScheme(scheme); err != nil {
		return URL{}, errtrace.Wrap(err)
	}
	return u, nil
}

// WithUserInfo returns a copy of the URL with the user info replaced.
// See [User] and [UserPassword].
func (u URL) WithUserInfo(ui UserInfo) URL {
	u.user = ui
	return u
}

// WithHost returns a copy of the URL with the host replaced.
// An empty host removes the authority.
func (u URL) WithHost(host string) URL {
	u.setHost(host)
	return u
}

// WithPort returns a copy of the URL with the port replaced.
// The port must be in the 1-65535 range or [ErrInvalidPort] is returned.
func (u URL) WithPort(port int) (URL, error) {
	if err := u.setPort(port); err != nil {
		return URL{}, errtrace.Wrap(err)
	}
	return u, nil
}

// WithoutPort returns a copy of the URL without port.
func (u URL) WithoutPort() URL {
	u.port = 0
	return u
}

// WithPath returns a copy of the URL with the path replaced. The path is stored verbatim.
func (u URL) WithPath(path string) URL {
	u.path = path
	return u
}

// WithQuery returns a copy of the URL with the query replaced. The query is stored verbatim.
func (u URL) WithQuery(query string) URL {
	u.query = query
	return u
}

// WithFragment returns a copy of the URL with the fragment replaced. The fragment is stored verbatim.
func (u URL) WithFragment(fragment string) URL {
	u.fragment = fragment
	return u
}

func (u *URL) setScheme(scheme string) error {
	if scheme != "" && !grammar.IsScheme(scheme) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme, "%q", scheme))
	}
	u.scheme = util.LCase(scheme)
	return nil
}

func (u *URL) setHost(host string) { u.host = util.LCase(host) }

func (u *URL) setPort(port int) error {
	if !grammar.IsPort(port) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort,
			"%d is out of range %d-%d", port, grammar.MinPort, grammar.MaxPort))
	}
	u.port = port
	return nil
}

// RenderTo writes the URL to the provided writer.
//
// The path is canonicalized unless [RenderOptions.RawPath] is set.
// A relative path following an authority is prefixed with "/".
func (u URL) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if u.scheme != "" {
		cw.WriteStrings(u.scheme, ":")
	}

	path := u.path
	if opts == nil || !opts.RawPath {
		path = urlpath.Canonicalize(path)
	}
	if auth := u.Authority(); auth != "" {
		cw.WriteStrings("//", auth)
		if path != "" && urlpath.IsRelative(path) {
			cw.WriteStrings("/")
		}
	}
	cw.WriteStrings(path)

	if u.query != "" {
		cw.WriteStrings("?", u.query)
	}
	if u.fragment != "" {
		cw.WriteStrings("#", u.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URL.
func (u URL) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URL with canonical path.
func (u URL) String() string { return u.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the URL.
//
//   - %s and %v render the URL, %+s renders it with the raw stored path;
//   - %q renders the quoted URL;
//   - %+v, %#v and other verbs print the underlying struct.
func (u URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, &RenderOptions{RawPath: true}) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		if verb == 'v' && !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, u.String())
			return
		}

		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), URL(u))
		return
	}
}

// Equal reports whether val is a URL with the same string representation.
func (u URL) Equal(val any) bool {
	var other URL
	switch v := val.(type) {
	case URL:
		other = v
	case *URL:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return u.String() == other.String()
}

// MarshalText implements [encoding.TextMarshaler].
func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URL{}
		return errtrace.Wrap(err)
	}
	*u = u1
	return nil
}
