// Package cards renders deck cards as terminal boxes and composites them
// into a frame.
//
// It is the layout engine's measurement collaborator: card heights are only
// known after a render pass, so [Renderer.Measure] renders a card at the
// current width and reports how many rows it takes. The TUI feeds those
// measurements into a stack.HeightTable and recomputes placements.
package cards

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cardstack/pkg/deck"
)

// =============================================================================
// Color Palette
// =============================================================================

// palette maps the friendly color names used in deck files to terminal
// colors. Anything not listed here is passed to lipgloss verbatim, so hex
// values and raw ANSI codes also work.
var palette = map[string]lipgloss.Color{
	"purple": lipgloss.Color("135"),
	"blue":   lipgloss.Color("75"),
	"green":  lipgloss.Color("35"),
	"orange": lipgloss.Color("208"),
	"pink":   lipgloss.Color("205"),
	"red":    lipgloss.Color("167"),
	"teal":   lipgloss.Color("36"),
	"yellow": lipgloss.Color("220"),
	"gray":   lipgloss.Color("245"),
}

// resolveColor returns the terminal color for a deck color name.
func resolveColor(name string) lipgloss.Color {
	if c, ok := palette[name]; ok {
		return c
	}
	if name == "" {
		return palette["gray"]
	}
	return lipgloss.Color(name)
}

// =============================================================================
// Renderer
// =============================================================================

// Renderer draws cards at a fixed outer width. Rendering the same card at
// the same width is deterministic, so measured heights stay valid until the
// width changes.
type Renderer struct {
	width int
}

// NewRenderer creates a renderer for the given outer card width in columns.
// Widths below the minimum usable box are clamped.
func NewRenderer(width int) *Renderer {
	if width < 8 {
		width = 8
	}
	return &Renderer{width: width}
}

// Width returns the outer card width in columns.
func (r *Renderer) Width() int { return r.width }

// Render draws a card as a rounded-border box, wrapping the message to fit.
func (r *Renderer) Render(c deck.Card) string {
	color := resolveColor(c.Color)
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(lipgloss.Color("255")).
		Padding(0, 1).
		Width(r.width - 2) // border adds a column on each side
	return style.Render(c.Message)
}

// Measure returns the rendered height of a card in rows. The result is
// only meaningful for the width this renderer was created with.
func (r *Renderer) Measure(c deck.Card) float64 {
	return float64(lipgloss.Height(r.Render(c)))
}

// =============================================================================
// Compositing
// =============================================================================

// Placed is a card positioned for compositing. Lines are the rendered card
// rows; MaxRows, when positive, clips the card to that many rows.
type Placed struct {
	Lines   []string
	Offset  int // rows from the top of the container
	Leading int // columns of left padding
	MaxRows int // 0 means natural height
}

// rows returns the number of rows the card occupies after clipping.
func (p Placed) rows() int {
	n := len(p.Lines)
	if p.MaxRows > 0 && p.MaxRows < n {
		n = p.MaxRows
	}
	return n
}

// Compose paints cards into a frame of the given height. Cards must be
// given front to back: for each row the first card covering it wins,
// which is exactly the opaque-card occlusion the stacked mode needs.
func Compose(front []Placed, height int) string {
	if height < 0 {
		height = 0
	}

	rows := make([]string, height)
	for r := 0; r < height; r++ {
		for _, p := range front {
			if r < p.Offset || r >= p.Offset+p.rows() {
				continue
			}
			rows[r] = strings.Repeat(" ", p.Leading) + p.Lines[r-p.Offset]
			break
		}
	}
	return strings.Join(rows, "\n")
}
