package ui

import (
	"github.com/spf13/cobra"

	"github.com/javiermolinar/berlinclock/internal/clock"
	"github.com/javiermolinar/berlinclock/internal/logger"
	"github.com/javiermolinar/berlinclock/internal/tui"
	"github.com/javiermolinar/berlinclock/internal/tui/theme"
)

// runTUI is swapped out in tests.
var runTUI = tui.Run

func (a *App) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show a live Berlin clock",
		Long: `Show the current time on a live Berlin clock, updated every second.

Press / to pin a specific time (24:00:00 included), esc to return to the
live clock and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runWatch()
		},
	}
}

func (a *App) runWatch() error {
	th, err := theme.Load(a.config.UI.Theme)
	if err != nil {
		return err
	}

	// Console logging would draw over the alternate screen, so rejected
	// pins are only logged when a log file is configured.
	converter := clock.NewConverter(nil)
	if a.config.Log.File != "" {
		converter = clock.NewConverter(logger.Named("tui"))
	}

	return runTUI(tui.WithTheme(th), tui.WithConverter(converter))
}
