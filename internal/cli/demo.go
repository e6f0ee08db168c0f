package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardstack/pkg/deck"
	"github.com/matzehuels/cardstack/pkg/stack"
)

// terminalParams returns layout constants sized for terminal rows and
// columns rather than the engine's abstract default units.
func terminalParams() stack.Params {
	return stack.Params{
		StackStep:      1,
		InsetStep:      2,
		Spacing:        1,
		FallbackHeight: 12,
		Stagger:        60 * time.Millisecond,
	}
}

// demoCommand creates the demo command for the interactive TUI.
func (c *CLI) demoCommand() *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "demo [deck.toml]",
		Short: "Run the interactive stacking-cards demo",
		Long: `Run the interactive stacking-cards demo.

Without arguments the built-in deck is used. Pass a TOML deck file to show
your own cards; its optional [layout] table overrides spacing, insets and
stagger timing.

Press space to toggle between the stacked pile and the expanded list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return c.runDemo(cmd.Context(), path, fps)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", defaultFPS, "animation frames per second")

	return cmd
}

// runDemo loads the deck and runs the TUI until quit.
func (c *CLI) runDemo(ctx context.Context, path string, fps int) error {
	d, params, err := loadDeck(path)
	if err != nil {
		return err
	}

	if d.Len() == 0 {
		printWarning("deck has no cards, showing an empty frame")
	}

	loggerFromContext(ctx).Debug("starting demo", "cards", d.Len(), "fps", fps)

	model := NewCardStackModel(d, params, fps)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// loadDeck returns the deck at path, or the built-in deck when path is
// empty. Layout constants come from the terminal defaults plus any deck
// overrides.
func loadDeck(path string) (*deck.Deck, stack.Params, error) {
	if path == "" {
		return deck.Builtin(), terminalParams(), nil
	}
	return deck.Load(path, terminalParams())
}
