package main

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/log"
	"github.com/ghettovoice/urlkit/internal/util"
)

const envPrefix = "URLRES"

// Exit codes.
const (
	exitFailure   = 1
	exitMalformed = 2
)

// levelOff is the log level that disables logging.
const levelOff = "off"

// app holds the state shared by all commands of a single invocation.
type app struct {
	cfg    *viper.Viper
	logger *slog.Logger
	output outputFormat
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{
		cfg:    viper.New(),
		logger: log.New(stderr, slog.LevelError, false),
		output: formatText,
	}

	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Error("command failed", "error", err)
		return exitCode(err)
	}
	return 0
}

// exitCode maps a command error to the process exit code.
// Input that could not be split into URL components has its own code.
func exitCode(err error) int {
	if errorutil.IsGrammarErr(err) {
		return exitMalformed
	}
	return exitFailure
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urlres",
		Short: "Canonicalize, resolve and relativize URL paths and URLs",
		Long: `urlres canonicalizes, resolves and relativizes URL paths and URLs.

Paths are handled purely as "/"-separated strings: "." and ".." segments are
collapsed, a trailing "/" marks a directory. URLs are parsed into components,
standard ports are elided and paths are canonicalized on output.

Every global flag can also be set through an environment variable with the
URLRES_ prefix, e.g. URLRES_OUTPUT=json.

Exit status is 0 on success, 2 if some input is not a well-formed URL
and 1 on any other failure.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return errtrace.Wrap(a.configure(cmd.ErrOrStderr()))
		},
	}

	fs := cmd.PersistentFlags()
	fs.String("log-level", "error", "minimal log level: debug, info, warn, error or off")
	fs.Bool("dev-log", false, "use the development log handler")
	fs.StringP("output", "o", string(formatText), "output format: text, json or yaml")
	bindFlags(a.cfg, fs)

	cmd.AddCommand(newPathCommand(a), newURLCommand(a))
	return cmd
}

// bindFlags makes every flag of fs readable from cfg,
// with URLRES_* environment variables as fallback for flags not set explicitly.
func bindFlags(cfg *viper.Viper, fs *pflag.FlagSet) {
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	fs.VisitAll(func(f *pflag.Flag) {
		cfg.BindPFlag(f.Name, f) //nolint:errcheck
	})
}

func (a *app) configure(stderr io.Writer) error {
	if s := a.cfg.GetString("log-level"); util.EqFold(s, levelOff) {
		a.logger = log.Noop
	} else {
		lvl, err := log.ParseLevel(s)
		if err != nil {
			return errtrace.Wrap(err)
		}
		a.logger = log.New(stderr, lvl, a.cfg.GetBool("dev-log"))
	}

	var err error
	a.output, err = parseOutputFormat(a.cfg.GetString("output"))
	if err != nil {
		return errtrace.Wrap(err)
	}
	return nil
}
