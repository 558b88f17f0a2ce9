package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/berlinclock/internal/clock"
)

type convertOpts struct {
	stdin     bool
	copy      bool
	noHistory bool
}

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

func (a *App) convertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert HH:MM:SS...",
		Short: "Print the lamp rows for one or more times",
		Long: `Print the Berlin clock lamp rows for each time.

Times are 24-hour HH:MM:SS. 24:00:00 is accepted as end of day.
Rows are printed top to bottom: seconds, five hours, hours, five minutes,
minutes. Lamps are Y (yellow), R (red) and O (off).

Several times print one block each, separated by a blank line. The first
invalid time stops the command with an error.`,
		Example: `  berlinclock convert 13:17:01
  berlinclock convert 00:00:00 24:00:00
  cat times.txt | berlinclock convert --stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !opts.stdin {
				return fmt.Errorf("requires at least one time, or --stdin")
			}
			return a.runConvert(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "Read one time per line from stdin")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the last output to the clipboard")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "Do not record this conversion")
	return cmd
}

func (a *App) runConvert(cmd *cobra.Command, args []string, opts convertOpts) error {
	inputs := args
	if opts.stdin {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		inputs = append(inputs, lines...)
	}

	ctx := commandContext(cmd)
	w := cmd.OutOrStdout()

	var last string
	for i, input := range inputs {
		out, err := a.converter.Convert(input)
		if !opts.noHistory {
			a.record(ctx, input, out, err)
		}
		if err != nil {
			return err
		}
		if i > 0 {
			printf(w, "\n")
		}
		printf(w, "%s\n", out)
		last = out
	}

	if opts.copy && last != "" {
		if err := copyToClipboard(last); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
	}
	return nil
}

// readLines returns the non-blank lines of r without trailing CR.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

func (a *App) nowCmd() *cobra.Command {
	var (
		showTime  bool
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the lamp rows for the current local time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := clock.FromTime(a.now())
			out := clock.Encode(t).String()

			if !noHistory {
				a.record(commandContext(cmd), t.String(), out, nil)
			}

			w := cmd.OutOrStdout()
			if showTime {
				printf(w, "%s\n", formatHeader(t.String()))
			}
			printf(w, "%s\n", out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTime, "time", false, "Print HH:MM:SS above the lamps")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this conversion")
	return cmd
}
