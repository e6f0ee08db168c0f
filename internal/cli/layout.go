package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardstack/pkg/cards"
	"github.com/matzehuels/cardstack/pkg/errors"
	"github.com/matzehuels/cardstack/pkg/stack"
)

// layoutCommand creates the layout command for computing card placements
// offline.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		mode   string
		width  int
	)

	cmd := &cobra.Command{
		Use:   "layout [deck.toml]",
		Short: "Compute card placements for a deck and write them as JSON",
		Long: `Compute card placements for a deck and write them as JSON.

The layout command measures every card at the given width, feeds the
heights into the layout engine, and writes the resulting placements
(offsets, insets, clip flags, draw order, stagger delays) plus the
container height to a layout.json file. This is the same computation the
demo animates, captured as a single static frame.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return c.runLayout(cmd.Context(), path, stack.Mode(mode), width, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVarP(&mode, "mode", "m", string(stack.ModeStacked), "layout mode: stacked (default), unstacked")
	cmd.Flags().IntVarP(&width, "width", "w", defaultCardWidth, "card width in columns for measurement")

	return cmd
}

// runLayout measures the deck, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, mode stack.Mode, width int, output string) error {
	if !mode.Valid() {
		return errors.New(errors.ErrCodeInvalidMode, "unknown mode %q (want stacked or unstacked)", mode)
	}

	d, params, err := loadDeck(input)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))

	renderer := cards.NewRenderer(width)
	heights := stack.HeightTable{}
	for _, card := range d.Cards {
		heights.Set(card.ID, renderer.Measure(card))
	}
	prog.done(fmt.Sprintf("Measured %d cards", d.Len()))

	layout := stack.Compute(d.IDs(), heights, mode, params)

	outputPath := output
	if outputPath == "" {
		base := "deck"
		if input != "" {
			base = strings.TrimSuffix(input, filepath.Ext(input))
		}
		outputPath = base + ".layout.json"
	}

	if err := stack.WriteLayoutFile(layout, outputPath); err != nil {
		printError("Layout failed")
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(d.Len(), len(heights))
	printNewline()

	return nil
}
