package main

import (
	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/log"
	"github.com/ghettovoice/urlkit/uri"
)

func newURLCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Work with URLs",
		Long: `Work with URLs.

Scheme and host are lower-cased, the standard port of the scheme is elided
and the path is canonicalized on output.`,
	}

	var rawPath bool
	parseCmd := &cobra.Command{
		Use:     "parse URL...",
		Short:   "Parse URLs and print their components",
		Example: "  urlres url parse 'HTTPS://user@Example.com:443/a/../b?q=1' -o yaml",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &uri.RenderOptions{RawPath: rawPath}
			rs := make([]result, 0, len(args))
			var errs []error
			for _, in := range args {
				u, err := uri.Parse(in)
				if err != nil {
					a.logger.Debug("failed to parse URL", "input", log.StringValue(in),
						"malformed", errorutil.IsGrammarErr(err), "error", err)
					errs = append(errs, err)
					continue
				}
				a.logger.Debug("URL parsed", "input", log.StringValue(in), "url", u, "components", u.Components())
				rs = append(rs, newParseResult(in, u, opts))
			}
			if err := a.write(cmd.OutOrStdout(), rs); err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(errorutil.JoinPrefix("parse URLs:", errs...))
		},
	}
	parseCmd.Flags().BoolVar(&rawPath, "raw-path", false, "print the URL with the path as given")
	cmd.AddCommand(parseCmd)

	cmd.AddCommand(&cobra.Command{
		Use:     "abs URL BASE",
		Short:   "Resolve a URL against an absolute base URL",
		Example: "  urlres url abs ../d?x=1 http://example.com/a/b/c",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uri.Parse(args[0])
			if err != nil {
				return errtrace.Wrap(err)
			}
			res, err := u.MakeAbsolute(args[1])
			if err != nil {
				return errtrace.Wrap(err)
			}
			a.logger.Debug("URL resolved", "url", u, "base", args[1], "result", res)
			return errtrace.Wrap(a.write(cmd.OutOrStdout(), []result{
				urlResult{URL: args[0], Base: args[1], Result: res.String()},
			}))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rel URL [BASE]",
		Short: "Compute a URL relative to a base URL",
		Long: `Compute a URL relative to a base URL.

Without BASE the root-relative form of URL is printed: scheme and authority
are dropped, path, query and fragment are kept.`,
		Example: "  urlres url rel http://example.com/a/c http://example.com/a/b/",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uri.Parse(args[0])
			if err != nil {
				return errtrace.Wrap(err)
			}

			var (
				base    any
				baseStr string
			)
			if len(args) > 1 {
				base, baseStr = args[1], args[1]
			}
			res, err := u.MakeRelative(base)
			if err != nil {
				return errtrace.Wrap(err)
			}
			a.logger.Debug("URL relativized", "url", u, "base", baseStr, "result", res)
			return errtrace.Wrap(a.write(cmd.OutOrStdout(), []result{
				urlResult{URL: args[0], Base: baseStr, Result: res.String()},
			}))
		},
	})

	return cmd
}
