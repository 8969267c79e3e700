package main

import (
	"fmt"
	"io"
	"log/slog"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutalyzer/hgvsparse/internal/parser"
	"github.com/mutalyzer/hgvsparse/internal/printer"
	"github.com/mutalyzer/hgvsparse/internal/tree"
)

const (
	exitAccepted = 0
	exitFailed   = 1
)

// run drives the cobra command against args, mirroring
// original_source/src/hgvs_parser.c's HGVS_parse: print the input line,
// print the rendered tree (or diagnostic chain), print an accepted/failed
// verdict, and return a process exit code that is zero iff the verdict is
// accepted.
func run(args []string, stdout, stderr io.Writer) int {
	var noColor bool
	var debug bool

	exitCode := exitAccepted

	cmd := &cobra.Command{
		Use:           "hgvsparse <description>",
		Short:         "Parse and pretty-print an HGVS nucleotide-variant description",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			input := args[0]
			logger.Debug("parsing description", "input", input)

			node, err := parser.ParseWithError(input)

			format := printer.DetectFormat(stdout, !noColor)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, input)
			printer.Print(out, format, input, node)
			fmt.Fprintln(out)

			if err != nil {
				logger.Debug("parse failed", "error", err, "allocation_error", tree.IsAllocationError(node))
				printer.Verdict(out, format, true)
				exitCode = exitFailed
				return nil
			}

			logger.Debug("parse accepted")
			printer.Verdict(out, format, false)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colorized output even on a terminal")
	cmd.Flags().BoolVar(&debug, "debug", false, "log the input and the parse outcome to stderr")

	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, pkgerrors.Wrap(err, "hgvsparse"))
		return exitFailed
	}
	return exitCode
}
