package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Errors: bold red
	colorError = color.New(color.FgRed, color.Bold)

	// Success markers in history
	colorOK = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// isTerminal reports whether stdout is a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ConfigureColor applies a color mode: "always", "never" or "auto".
// Auto enables color only on a terminal and honors NO_COLOR.
func ConfigureColor(mode string) {
	switch mode {
	case "always":
		EnableColor()
	case "never":
		DisableColor()
	default:
		if os.Getenv("NO_COLOR") != "" || !isTerminal() {
			DisableColor()
		} else {
			EnableColor()
		}
	}
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output.
func EnableColor() {
	color.NoColor = false
}

// FormatError formats an error for stderr.
func FormatError(err error) string {
	return colorError.Sprint("error:") + " " + err.Error()
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatOK formats text as a success marker.
func formatOK(s string) string {
	return colorOK.Sprint(s)
}

// formatFailed formats text as a failure marker.
func formatFailed(s string) string {
	return colorError.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
