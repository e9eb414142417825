// Package cli implements the hexstr command-line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/hexstr/codec"
	"github.com/hupe1980/hexstr/internal/config"
	"github.com/hupe1980/hexstr/internal/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

type app struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	getenv     func(string) string
	isTerminal func(io.Writer) bool

	cfg    config.Config
	codec  codec.Codec
	logger *logging.Logger
}

// Option configures the command built by New.
type Option func(*app)

// WithIO replaces the process streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *app) {
		a.stdin = stdin
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithGetenv replaces the environment lookup.
func WithGetenv(getenv func(string) string) Option {
	return func(a *app) {
		a.getenv = getenv
	}
}

// WithTerminalCheck replaces the check used by decode to refuse writing
// binary data to a terminal.
func WithTerminalCheck(fn func(io.Writer) bool) Option {
	return func(a *app) {
		a.isTerminal = fn
	}
}

// New builds the hexstr command.
func New(version string, optFns ...Option) *cli.Command {
	a := &app{
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		getenv:     os.Getenv,
		isTerminal: isTerminal,
	}

	for _, fn := range optFns {
		fn(a)
	}

	return &cli.Command{
		Name:                   "hexstr",
		Usage:                  "Convert between bytes and canonical lowercase hexadecimal text",
		Version:                version,
		UseShortOptionHandling: true,
		Reader:                 a.stdin,
		Writer:                 a.stdout,
		ErrWriter:              a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load settings from a TOML file",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Codec for encoded values (text, json, go-json)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (text, json)",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "Inputs converted in parallel",
			},
			&cli.BoolFlag{
				Name:  "no-newline",
				Usage: "Do not terminate encoded values with a newline",
			},
		},
		Commands: []*cli.Command{
			{
				Name:            "encode",
				Usage:           "Encode files (or stdin) as hexadecimal text",
				ArgsUsage:       "[FILE | -]...",
				SkipFlagParsing: true, // keep "-" as a positional
				Action:          a.action(a.encode),
			},
			{
				Name:      "decode",
				Usage:     "Decode hexadecimal text (argument, or stdin when absent or -) to raw bytes",
				ArgsUsage: "[TEXT | -]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Write binary output even when stdout is a terminal",
					},
				},
				Action: a.action(a.decode),
			},
			{
				Name:      "check",
				Usage:     "Validate hexadecimal text",
				ArgsUsage: "TEXT...",
				Action:    a.action(a.check),
			},
		},
	}
}

// Execute runs the hexstr CLI with the given version string.
func Execute(version string) {
	cmd := New(version)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// action resolves settings before running fn.
func (a *app) action(fn cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if err := a.setup(cmd); err != nil {
			return err
		}
		return fn(ctx, cmd)
	}
}

// setup resolves defaults, file, environment and flags, in that order.
func (a *app) setup(cmd *cli.Command) error {
	cfg := config.Default()

	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if err := config.ApplyEnv(&cfg, a.getenv); err != nil {
		return err
	}

	if cmd.IsSet("format") {
		cfg.Format = cmd.String("format")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = cmd.String("log-format")
	}
	if cmd.IsSet("jobs") {
		cfg.Jobs = cmd.Int("jobs")
	}
	if cmd.Bool("no-newline") {
		cfg.Newline = false
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(a.stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}

	c, _ := codec.ByName(cfg.Format)

	a.cfg = cfg
	a.codec = c
	a.logger = logger.WithFormat(c.Name())

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
