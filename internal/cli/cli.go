// Package cli implements the cardstack command-line interface.
//
// This package provides the interactive stacking-cards demo and an offline
// layout command that measures a deck and writes the computed placements as
// JSON. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - demo: Run the interactive stacking-cards TUI
//   - layout: Measure a deck and write its computed layout to JSON
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardstack/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "cardstack"

	// defaultCardWidth is the outer card width in columns when no terminal
	// size is known yet.
	defaultCardWidth = 44

	// defaultFPS drives the animation frame loop.
	defaultFPS = 60
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Cardstack animates notification cards in your terminal",
		Long:         `Cardstack is a terminal demo of the iOS-lock-screen "stacking cards" effect: a deck of colored message cards toggles between a compact pile and an expanded list with staggered spring animations.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Attach the logger so commands can retrieve it from their context.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.completionCommand())

	return root
}
