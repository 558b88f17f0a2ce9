package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/berlinclock/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err))
		os.Exit(1)
	}
}

func run() error {
	// Config is loaded after flag parsing so --config takes effect.
	app := ui.NewApp(nil, nil)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
