// Package ui implements the berlinclock command line.
package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/berlinclock/internal/clock"
	"github.com/javiermolinar/berlinclock/internal/config"
	"github.com/javiermolinar/berlinclock/internal/db"
	"github.com/javiermolinar/berlinclock/internal/history"
	"github.com/javiermolinar/berlinclock/internal/logger"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo       history.Repository
	ownsRepo   bool // repo was opened by the app and must be closed by it
	config     *config.Config
	converter  *clock.Converter
	root       *cobra.Command
	now        func() time.Time
	configPath string
	loadConfig bool // config was not injected and is read from disk in setup
	noColor    bool
	debug      bool
}

// NewApp creates a new CLI application with the given history repository and config.
// A nil repo is opened lazily from the configured db path when history is enabled.
// A nil cfg starts from defaults and is loaded from disk once flags are parsed.
func NewApp(repo history.Repository, cfg *config.Config) *App {
	a := &App{
		repo:      repo,
		config:    cfg,
		converter: clock.NewConverter(nil),
		now:       time.Now,
	}
	if cfg == nil {
		a.config = config.Default()
		a.loadConfig = true
	}

	a.root = &cobra.Command{
		Use:   "berlinclock [HH:MM:SS]",
		Short: "Show times on a Berlin set theory clock",
		Long: `berlinclock renders times as the five lamp rows of the Berlin
set theory clock (Mengenlehreuhr).

With a time argument it prints that time's lamps. Without arguments it
starts the live clock.`,
		Example: `  berlinclock 13:17:01
  berlinclock now
  berlinclock watch`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.runConvert(cmd, args, convertOpts{})
			}
			return a.runWatch()
		},
	}

	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ~/.config/berlinclock/config.toml)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.convertCmd())
	a.root.AddCommand(a.nowCmd())
	a.root.AddCommand(a.historyCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.watchCmd())

	return a
}

// setup loads config (--config, or the default path) and initializes logging and color.
func (a *App) setup(_ *cobra.Command, _ []string) error {
	switch {
	case a.configPath != "":
		cfg, err := config.LoadFrom(a.configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	case a.loadConfig:
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	}
	return a.initRuntime()
}

// initRuntime applies --debug and --no-color and starts the logger.
func (a *App) initRuntime() error {
	if a.debug {
		a.config.Log.Level = "debug"
	}

	if err := logger.Init(logger.FromConfig(a.config.Log)); err != nil {
		return err
	}
	a.converter = clock.NewConverter(logger.Named("clock"))

	mode := a.config.UI.Color
	if a.noColor {
		mode = "never"
	}
	ConfigureColor(mode)

	logger.Named("cli").Debug().
		Str("theme", a.config.UI.Theme).
		Bool("history", a.historyEnabled()).
		Msg("config loaded")
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "berlinclock %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the history repository if the app opened it, and the log file.
func (a *App) Close() error {
	var err error
	if a.ownsRepo && a.repo != nil {
		err = a.repo.Close()
		a.repo = nil
	}
	if lerr := logger.Close(); err == nil {
		err = lerr
	}
	return err
}

// historyEnabled reports whether recording is on. An injected repo stands
// in for db_path but does not override storage.history.
func (a *App) historyEnabled() bool {
	if a.repo != nil {
		return a.config.Storage.History
	}
	return a.config.HistoryEnabled()
}

// historyRepo returns the repository, opening it on first use.
func (a *App) historyRepo() (history.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	repo, err := db.Open(config.ExpandPath(a.config.Storage.DBPath))
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	a.repo = repo
	a.ownsRepo = true
	return repo, nil
}

// record stores a conversion attempt. Storage failures are logged, never returned.
func (a *App) record(ctx context.Context, input, output string, convErr error) {
	if !a.historyEnabled() {
		return
	}
	log := logger.Named("history")

	kind := ""
	if convErr != nil {
		kind = "unknown"
		if k, ok := clock.KindOf(convErr); ok {
			kind = k.String()
		}
	}

	repo, err := a.historyRepo()
	if err != nil {
		log.Warn().Err(err).Msg("history unavailable")
		return
	}
	if err := repo.Record(ctx, history.New(input, output, kind)); err != nil {
		log.Warn().Err(err).Str("input", input).Msg("recording conversion")
	}
}

// printf writes to w, ignoring errors like fmt.Printf does.
func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
