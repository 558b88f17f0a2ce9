package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/berlinclock/internal/config"
	"github.com/javiermolinar/berlinclock/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  berlinclock config`,
		// The file may be invalid; this command is how it gets fixed.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.initRuntime()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), path)
		},
	}
}

func runConfigInteractive(in io.Reader, w io.Writer, configPath string) error {
	printf(w, "Config file: %s\n\n", configPath)

	// Load the file as written, without env overrides or validation
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		printf(w, "No config file found. Creating with default values...\n")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		printf(w, "Created %s\n\n", configPath)
	}

	printConfig(w, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(w, reader, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Log.Level = promptValue(w, reader, "Log level (trace, debug, info, warn, error, disabled)", cfg.Log.Level)
	cfg.Log.Format = promptValue(w, reader, "Log format (console, json)", cfg.Log.Format)
	cfg.Log.File = promptValue(w, reader, "Log file (empty for stderr)", cfg.Log.File)
	cfg.Storage.History = promptBool(w, reader, "Record history", cfg.Storage.History)
	cfg.Storage.DBPath = promptValue(w, reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(w, reader, cfg.UI.Theme)
	cfg.UI.Color = promptValue(w, reader, "Color (auto, always, never)", cfg.UI.Color)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	printf(w, "\nConfiguration saved!\n")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	printf(w, "Current configuration:\n")
	printf(w, "──────────────────────\n")
	printf(w, "[log]\n")
	printf(w, "  level    = %s\n", cfg.Log.Level)
	printf(w, "  format   = %s\n", cfg.Log.Format)
	if cfg.Log.File != "" {
		printf(w, "  file     = %s\n", cfg.Log.File)
	}
	printf(w, "\n[storage]\n")
	printf(w, "  history  = %t\n", cfg.Storage.History)
	printf(w, "  db_path  = %s\n", cfg.Storage.DBPath)
	printf(w, "\n[ui]\n")
	printf(w, "  theme    = %s\n", cfg.UI.Theme)
	printf(w, "  color    = %s\n", cfg.UI.Color)
}

func promptYesNo(w io.Writer, reader *bufio.Reader, question string) bool {
	printf(w, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(w io.Writer, reader *bufio.Reader, label, current string) string {
	value, _ := promptAnswer(w, reader, label, current)
	return value
}

// promptAnswer is promptValue that also reports whether input remains.
func promptAnswer(w io.Writer, reader *bufio.Reader, label, current string) (string, bool) {
	if current == "" {
		printf(w, "  %s: ", label)
	} else {
		printf(w, "  %s [%s]: ", label, current)
	}
	input, err := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current, err == nil
	}
	return input, true
}

// promptBool re-asks until the answer is a bool. At end of input the
// current value is kept.
func promptBool(w io.Writer, reader *bufio.Reader, label string, current bool) bool {
	for {
		value := promptValue(w, reader, label, strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		printf(w, "  Invalid value %q. Use true or false.\n", value)
	}
}

// promptTheme re-asks until the theme exists. At end of input the current
// value is returned and left to validation.
func promptTheme(w io.Writer, reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value, more := promptAnswer(w, reader, label, current)
		value = strings.ToLower(value)
		if theme.IsAvailable(value) || !more {
			return value
		}
		printf(w, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
