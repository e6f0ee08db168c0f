// Package motion animates numeric properties toward target values with
// damped springs.
//
// The layout engine (pkg/stack) emits target values plus per-card stagger
// delays; it never interpolates. This package owns the interpolation: an
// [Animator] tracks a set of named properties, each with a position,
// velocity, target, and remaining delay, and advances them one fixed-FPS
// frame at a time using a harmonica spring. The renderer calls [Animator.Step]
// on every tick and paints whatever [Animator.Value] returns.
//
// Springs asymptote rather than arrive, so positions snap to their target
// once they are within a small tolerance. [Animator.Settled] reports when
// every property has landed, letting the render loop stop ticking.
package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// settleTolerance is the distance and velocity below which a property is
// considered to have reached its target.
const settleTolerance = 0.01

// Transition describes a single property's pending move: animate from the
// current position to To, starting after Delay.
type Transition struct {
	To    float64
	Delay time.Duration
}

type property struct {
	pos, vel float64
	target   float64
	delay    time.Duration
}

// Animator advances a set of named properties toward their targets with a
// shared spring. It is not safe for concurrent use; the Bubble Tea update
// loop is its single owner.
type Animator struct {
	spring harmonica.Spring
	frame  time.Duration
	props  map[string]*property
}

// NewAnimator creates an animator stepping at the given frames per second.
// Frequency and damping follow harmonica's conventions: frequency is the
// angular velocity of the spring, damping below 1 overshoots and oscillates,
// 1.0 critically damps.
func NewAnimator(fps int, frequency, damping float64) *Animator {
	if fps <= 0 {
		fps = 60
	}
	return &Animator{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		frame:  time.Second / time.Duration(fps),
		props:  make(map[string]*property),
	}
}

// Set retargets a property. An unknown key snaps straight to the target
// with no animation (first layout pass); a known key keeps its current
// position and velocity and springs toward the new target after delay.
func (a *Animator) Set(key string, t Transition) {
	p, ok := a.props[key]
	if !ok {
		a.props[key] = &property{pos: t.To, target: t.To}
		return
	}
	p.target = t.To
	p.delay = t.Delay
}

// Snap moves a property to value immediately, cancelling any animation.
func (a *Animator) Snap(key string, value float64) {
	a.props[key] = &property{pos: value, target: value}
}

// Value returns the current animated position for key, or 0 if unknown.
func (a *Animator) Value(key string) float64 {
	if p, ok := a.props[key]; ok {
		return p.pos
	}
	return 0
}

// Target returns the destination for key, or 0 if unknown.
func (a *Animator) Target(key string) float64 {
	if p, ok := a.props[key]; ok {
		return p.target
	}
	return 0
}

// Step advances every property by one frame. Properties still inside their
// stagger delay hold position; the rest spring toward their targets and
// snap once within tolerance.
func (a *Animator) Step() {
	for _, p := range a.props {
		if p.delay > 0 {
			p.delay -= a.frame
			if p.delay < 0 {
				p.delay = 0
			}
			continue
		}

		p.pos, p.vel = a.spring.Update(p.pos, p.vel, p.target)
		if math.Abs(p.pos-p.target) < settleTolerance && math.Abs(p.vel) < settleTolerance {
			p.pos = p.target
			p.vel = 0
		}
	}
}

// Settled reports whether every property has reached its target with no
// pending delay.
func (a *Animator) Settled() bool {
	for _, p := range a.props {
		if p.delay > 0 || p.pos != p.target || p.vel != 0 {
			return false
		}
	}
	return true
}
