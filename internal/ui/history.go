package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/berlinclock/internal/clock"
	"github.com/javiermolinar/berlinclock/internal/dateutil"
	"github.com/javiermolinar/berlinclock/internal/history"
)

// maxInputWidth caps the input column; recorded input is arbitrary text.
const maxInputWidth = 16

// errHistoryDisabled is returned by history commands when recording is off.
var errHistoryDisabled = errors.New("history is disabled (set storage.history = true)")

func (a *App) historyCmd() *cobra.Command {
	var (
		limit int
		since string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversions",
		Long: `List recorded conversions, newest first.

--since accepts YYYY-MM-DD, today, yesterday, a weekday name (most recent
occurrence) or a duration such as 90m.`,
		Example: `  berlinclock history
  berlinclock history --limit=5
  berlinclock history --since=yesterday`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.requireHistory()
			if err != nil {
				return err
			}

			bound, err := dateutil.ParseSince(since, a.now())
			if err != nil {
				return err
			}

			entries, err := repo.List(commandContext(cmd), history.ListOptions{Limit: limit, Since: bound})
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}

			w := cmd.OutOrStdout()
			if len(entries) == 0 {
				printf(w, "No conversions recorded.\n")
				return nil
			}
			printf(w, "%s\n", renderHistoryTable(entries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries (0 for all)")
	cmd.Flags().StringVar(&since, "since", "", "Only entries at or after this date")

	cmd.AddCommand(a.historyShowCmd())
	cmd.AddCommand(a.historyClearCmd())
	return cmd
}

func (a *App) historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print a recorded conversion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.requireHistory()
			if err != nil {
				return err
			}

			e, err := repo.Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("fetching entry %s: %w", args[0], err)
			}

			w := cmd.OutOrStdout()
			printf(w, "%s %s\n", formatHeader(e.Input), formatMuted(e.CreatedAt.Local().Format("2006-01-02 15:04:05")))
			if !e.Succeeded() {
				printf(w, "%s\n", formatFailed("rejected: "+e.ErrorKind))
				return nil
			}
			printf(w, "%s\n", e.Output)
			return nil
		},
	}
}

func (a *App) historyClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded conversions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.requireHistory()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !yes {
				reader := bufio.NewReader(cmd.InOrStdin())
				if !promptYesNo(w, reader, "Delete all recorded conversions?") {
					printf(w, "Aborted.\n")
					return nil
				}
			}

			n, err := repo.Clear(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("clearing history: %w", err)
			}
			printf(w, "Deleted %d %s.\n", n, plural(n, "entry", "entries"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (a *App) requireHistory() (history.Repository, error) {
	if !a.historyEnabled() {
		return nil, errHistoryDisabled
	}
	return a.historyRepo()
}

// renderHistoryTable renders entries as a bordered table.
func renderHistoryTable(entries []*history.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		result := formatOK("ok")
		lamps := strings.ReplaceAll(e.Output, clock.RowSeparator, " ")
		if !e.Succeeded() {
			result = formatFailed(e.ErrorKind)
			lamps = ""
		}
		rows = append(rows, []string{
			shortID(e.ID),
			humanize.Time(e.CreatedAt),
			runewidth.Truncate(e.Input, maxInputWidth, "…"),
			result,
			lamps,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "WHEN", "INPUT", "RESULT", "LAMPS").
		Rows(rows...).
		String()
}

// shortID returns the first block of a UUID.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
