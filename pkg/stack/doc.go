// Package stack computes card placements for the stacking-cards view.
//
// The package is a pure layout calculator: given an ordered list of card IDs,
// a table of measured heights, and a display mode, [Compute] derives every
// card's vertical offset, horizontal insets, fixed-or-natural height, clip
// flag, draw order, and stagger delay, plus the overall container height.
// It holds no state of its own; the renderer owns the mode flag and the
// height table and calls [Compute] whenever either changes.
//
// # Modes
//
// There are exactly two modes:
//
//	stack.ModeStacked    // compact pile, all cards collapse to the first card's height
//	stack.ModeUnstacked  // expanded list, each card at its own measured height
//
// The only transition is a toggle, in either direction, with no guards. The
// spring animation layered on top is a rendering concern (see pkg/motion);
// logically the switch is instantaneous.
//
// # Measured heights
//
// Heights arrive asynchronously from the renderer, keyed by card ID. A
// missing entry means "not measured yet" and is distinct from zero: offsets
// and container heights treat unmeasured predecessors as contributing
// nothing, and the container falls back to [Params.FallbackHeight] until at
// least one measurement lands. Layouts computed mid-measurement are
// transient undercounts that self-correct on the next pass.
//
// # Serialization
//
// [Layout] marshals to JSON for the offline `cardstack layout` command:
//
//	layout := stack.Compute(ids, heights, stack.ModeStacked, stack.DefaultParams())
//	stack.WriteLayoutFile(layout, "deck.layout.json")
package stack
