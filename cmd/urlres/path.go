package main

import (
	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/urlkit/internal/log"
	"github.com/ghettovoice/urlkit/urlpath"
)

func newPathCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Work with URL paths",
		Long: `Work with URL paths.

Paths are plain "/"-separated strings. A path starting with "/" is absolute,
a path ending with "/" denotes a directory.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "canon PATH...",
		Short:   "Collapse . and .. segments of paths",
		Example: "  urlres path canon /a/./b/../c a/../",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs := make([]result, 0, len(args))
			for _, p := range args {
				r := pathResult{Path: p, Result: urlpath.Canonicalize(p)}
				a.logger.Debug("path canonicalized", "path", p, "result", r.Result,
					"segments", log.FmtValue(urlpath.Segments(r.Result), false))
				rs = append(rs, r)
			}
			return errtrace.Wrap(a.write(cmd.OutOrStdout(), rs))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "abs PATH BASE",
		Short:   "Resolve a path against an absolute base path",
		Example: "  urlres path abs ../../d /a/b/c/",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return errtrace.Wrap(a.runPathOp(cmd, "path resolved", urlpath.MakeAbsolute, args[0], args[1]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rel PATH BASE",
		Short:   "Compute a path relative to a base path",
		Example: "  urlres path rel /a/c /a/b/",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return errtrace.Wrap(a.runPathOp(cmd, "path relativized", urlpath.MakeRelative, args[0], args[1]))
		},
	})

	return cmd
}

func (a *app) runPathOp(cmd *cobra.Command, msg string, op func(p, base string) (string, error), p, base string) error {
	res, err := op(p, base)
	if err != nil {
		return errtrace.Wrap(err)
	}
	a.logger.Debug(msg, "path", p, "base", base, "result", res)
	return errtrace.Wrap(a.write(cmd.OutOrStdout(), []result{pathResult{Path: p, Base: base, Result: res}}))
}
