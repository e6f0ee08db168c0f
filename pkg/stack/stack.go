package stack

import (
	"time"
)

// =============================================================================
// Parameters
// =============================================================================

// Params holds the fixed layout constants. All lengths are in abstract user
// units; the TUI passes terminal rows/columns, the layout command uses the
// defaults below.
type Params struct {
	// StackStep is the vertical offset between consecutive cards while
	// stacked, producing the shallow cascading reveal of card edges.
	StackStep float64

	// InsetStep is the horizontal indentation increment per card index
	// while stacked.
	InsetStep float64

	// Spacing is the vertical gap between consecutive cards while
	// unstacked.
	Spacing float64

	// FallbackHeight is the container height used before any card has
	// been measured, preventing a collapsed container on the first frame.
	FallbackHeight float64

	// Stagger is the per-index animation delay, producing the waterfall
	// effect on toggle.
	Stagger time.Duration
}

// DefaultParams returns the standard layout constants.
func DefaultParams() Params {
	return Params{
		StackStep:      6,
		InsetStep:      4,
		Spacing:        12,
		FallbackHeight: 200,
		Stagger:        50 * time.Millisecond,
	}
}

// =============================================================================
// Mode
// =============================================================================

// Mode selects between the two card arrangements.
type Mode string

const (
	// ModeStacked is the compact overlapping pile.
	ModeStacked Mode = "stacked"

	// ModeUnstacked is the fully expanded list.
	ModeUnstacked Mode = "unstacked"
)

// Toggled returns the opposite mode.
func (m Mode) Toggled() Mode {
	if m == ModeStacked {
		return ModeUnstacked
	}
	return ModeStacked
}

// Valid reports whether m is one of the two known modes.
func (m Mode) Valid() bool {
	return m == ModeStacked || m == ModeUnstacked
}

// =============================================================================
// HeightTable
// =============================================================================

// HeightTable maps card ID to measured content height. Entries appear
// incrementally as the renderer measures cards; a missing key means "not
// measured yet" and must not be conflated with zero. The last report for a
// given ID wins.
type HeightTable map[string]float64

// Set records a measurement, replacing any previous value for id.
func (t HeightTable) Set(id string, height float64) {
	if height < 0 {
		height = 0
	}
	t[id] = height
}

// Lookup returns the measured height for id and whether one exists.
func (t HeightTable) Lookup(id string) (float64, bool) {
	h, ok := t[id]
	return h, ok
}

// =============================================================================
// Layout Computation
// =============================================================================

// Placement positions a single card. FixedHeight is nil when the card keeps
// its natural content height.
type Placement struct {
	ID            string        `json:"id"`
	OffsetY       float64       `json:"offset_y"`
	LeadingInset  float64       `json:"leading_inset"`
	TrailingInset float64       `json:"trailing_inset"`
	FixedHeight   *float64      `json:"fixed_height,omitempty"`
	Clip          bool          `json:"clip,omitempty"`
	ZOrder        int           `json:"z_order"`
	Delay         time.Duration `json:"delay"`
}

// Layout is the complete output of one computation pass.
type Layout struct {
	Mode            Mode        `json:"mode"`
	ContainerHeight float64     `json:"container_height"`
	Placements      []Placement `json:"placements,omitempty"`
}

// Compute derives placements for the cards identified by ids, in order.
// It is a pure function: identical inputs always produce identical output,
// and nothing is mutated. Degenerate inputs (no cards, empty height table)
// yield benign defaults rather than errors.
func Compute(ids []string, heights HeightTable, mode Mode, p Params) Layout {
	n := len(ids)
	if n == 0 {
		return Layout{Mode: mode, ContainerHeight: p.FallbackHeight}
	}

	firstHeight, firstKnown := heights.Lookup(ids[0])
	collapsed := mode == ModeStacked && firstKnown

	// Trailing inset is the last card's stacked inset, applied uniformly
	// so that card edges line up in both modes.
	maxInset := float64(n-1)*p.InsetStep + p.InsetStep

	placements := make([]Placement, n)
	var cum float64 // running offset for unstacked mode
	var total float64
	for i, id := range ids {
		pl := Placement{
			ID:            id,
			TrailingInset: maxInset,
			ZOrder:        n - i,
			Delay:         time.Duration(i) * p.Stagger,
		}

		if mode == ModeStacked {
			pl.OffsetY = float64(i) * p.StackStep
			pl.LeadingInset = float64(i)*p.InsetStep + p.InsetStep
		} else {
			pl.OffsetY = cum
			pl.LeadingInset = maxInset
		}

		if collapsed {
			h := firstHeight
			pl.FixedHeight = &h
			pl.Clip = true
		}

		h, ok := heights.Lookup(id)
		if ok {
			total += h
		}
		// Unmeasured cards contribute no height; the offset catches up
		// once their measurements arrive.
		cum += h + p.Spacing

		placements[i] = pl
	}

	return Layout{
		Mode:            mode,
		ContainerHeight: containerHeight(mode, n, firstKnown, firstHeight, total, p),
		Placements:      placements,
	}
}

// containerHeight picks the overall height for the current mode, falling
// back to a constant while nothing has been measured.
func containerHeight(mode Mode, n int, firstKnown bool, firstHeight, total float64, p Params) float64 {
	switch {
	case mode == ModeStacked && firstKnown:
		return firstHeight + float64(n-1)*p.StackStep
	case mode == ModeUnstacked && total > 0:
		return total + float64(n-1)*p.Spacing
	default:
		return p.FallbackHeight
	}
}
