package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/util"
	"github.com/ghettovoice/urlkit/uri"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(util.LCase(s)); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	}
	return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown output format %q", s))
}

// result is a single command output record.
type result interface {
	text() string
}

// write prints the results in the configured format.
// Text output is one record per line, json and yaml output is always a list.
func (a *app) write(w io.Writer, rs []result) error {
	switch a.output {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errtrace.Wrap(enc.Encode(rs))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rs); err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(enc.Close())
	default:
		for _, r := range rs {
			if _, err := fmt.Fprintln(w, r.text()); err != nil {
				return errtrace.Wrap(err)
			}
		}
		return nil
	}
}

type pathResult struct {
	Path   string `json:"path" yaml:"path"`
	Base   string `json:"base,omitempty" yaml:"base,omitempty"`
	Result string `json:"result" yaml:"result"`
}

func (r pathResult) text() string { return r.Result }

type urlResult struct {
	URL    string `json:"url" yaml:"url"`
	Base   string `json:"base,omitempty" yaml:"base,omitempty"`
	Result string `json:"result" yaml:"result"`
}

func (r urlResult) text() string { return r.Result }

type parseResult struct {
	Input    string `json:"input" yaml:"input"`
	URL      string `json:"url" yaml:"url"`
	Absolute bool   `json:"absolute" yaml:"absolute"`
	Valid    bool   `json:"valid" yaml:"valid"`

	uri.Components `yaml:",inline"`
}

func newParseResult(in string, u uri.URL, opts *uri.RenderOptions) parseResult {
	return parseResult{
		Input:      in,
		URL:        u.Render(opts),
		Absolute:   u.IsAbsolute(),
		Valid:      u.IsValid(),
		Components: u.Components(),
	}
}

func (r parseResult) text() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(r.URL)
	field := func(k, v string) {
		if v != "" {
			sb.WriteString("\n  " + k + ": " + v)
		}
	}
	field("scheme", r.Scheme)
	field("user", r.User)
	if r.HasPassword {
		sb.WriteString("\n  pass: " + r.Password)
	}
	field("host", r.Host)
	if r.HasPort {
		field("port", strconv.Itoa(r.Port))
	}
	field("path", r.Path)
	field("query", r.Query)
	field("fragment", r.Fragment)
	field("absolute", strconv.FormatBool(r.Absolute))
	field("valid", strconv.FormatBool(r.Valid))
	return sb.String()
}
