package uri

import "github.com/ghettovoice/urlkit/internal/util"

// standardPorts maps lower-cased scheme names to their registered default ports.
var standardPorts = map[string]int{
	"ftp":    21,
	"ssh":    22,
	"sftp":   22,
	"telnet": 23,
	"smtp":   25,
	"tftp":   69,
	"gopher": 70,
	"http":   80,
	"ws":     80,
	"pop3":   110,
	"nntp":   119,
	"imap":   143,
	"snmp":   161,
	"ldap":   389,
	"https":  443,
	"wss":    443,
	"rtsp":   554,
	"ldaps":  636,
	"imaps":  993,
	"pop3s":  995,
}

// StandardPort returns the registered default port of the scheme.
// The scheme is matched case-insensitively.
func StandardPort(scheme string) (int, bool) {
	p, ok := standardPorts[util.LCase(scheme)]
	return p, ok
}
