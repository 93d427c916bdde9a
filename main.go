// Package main is the entry point for the campuspath application.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/toommyliu/cs146-finalproject/internal/app"
	"github.com/toommyliu/cs146-finalproject/internal/config"
	"github.com/toommyliu/cs146-finalproject/internal/tui"
	"github.com/toommyliu/cs146-finalproject/internal/tui/events"
)

func main() {
	os.Exit(report(os.Stderr, run()))
}

// run starts the TUI and returns once it exits, so deferred cleanup
// happens before main picks an exit code
func run() error {
	workingDir, err := os.Getwd()
	if err != nil {
		workingDir = "."
	}

	cfgManager := config.NewManager(workingDir)
	if err := cfgManager.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := cfgManager.Get()

	if cfg.Debug {
		f, err := openDebugLog(cfgManager.DataDir())
		if err != nil {
			return err
		}
		defer f.Close()
	}

	eventBroker := events.NewBroker()
	appInstance, err := app.New(cfg, eventBroker)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	p := tea.NewProgram(tui.New(appInstance, eventBroker), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// openDebugLog sends the standard logger to debug.log under dataDir
func openDebugLog(dataDir string) (io.Closer, error) {
	f, err := tea.LogToFile(filepath.Join(dataDir, "debug.log"), "campuspath")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return f, nil
}

// report prints err to w and returns the process exit code for it
func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}
