// Package pkg provides the core libraries for the cardstack demo.
//
// # Overview
//
// Cardstack recreates the iOS lock-screen "stacking cards" effect in the
// terminal. The pkg directory is organized into small, reusable pieces:
//
//  1. [stack] - Pure layout engine (offsets, insets, clip, draw order)
//  2. [deck] - Card model and TOML deck files
//  3. [motion] - Spring animation of numeric properties
//  4. [cards] - Card rendering, height measurement, compositing
//  5. [errors] - Structured error codes
//  6. [buildinfo] - ldflags version information
//
// # Architecture
//
// The typical data flow through cardstack:
//
//	Deck file (TOML)
//	       ↓
//	deck.Load → cards.Renderer.Measure → stack.HeightTable
//	                                           ↓
//	stack.Compute(ids, heights, mode) → Placements + ContainerHeight
//	                                           ↓
//	motion.Animator (spring toward targets) → cards.Compose → frame
//
// The engine never interpolates and the animator never lays out: pkg/stack
// emits target values plus stagger delays, pkg/motion moves properties
// toward them frame by frame, and pkg/cards paints whatever the animator
// currently holds.
package pkg
