// Package deck defines the card model and TOML deck files.
//
// A deck is an ordered, immutable list of cards. Each card gets a UUID at
// creation time; the ID is the stable identity used by the layout engine
// and the height table, and is never reused or regenerated. Card order is
// fixed for the life of the deck.
//
// Deck files are TOML:
//
//	[layout]
//	stack_step = 1
//	spacing = 1
//
//	[[card]]
//	color = "purple"
//	message = "Your package was delivered."
//
// The [layout] table is optional and overrides individual layout constants;
// unset keys keep their defaults.
package deck

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/cardstack/pkg/errors"
	"github.com/matzehuels/cardstack/pkg/stack"
)

// =============================================================================
// Card & Deck
// =============================================================================

// Card is a single entry in a deck. Color and Message are opaque to the
// layout engine; only ID and position matter for placement.
type Card struct {
	ID      string
	Color   string
	Message string
}

// NewCard creates a card with a freshly generated stable ID.
func NewCard(color, message string) Card {
	return Card{
		ID:      uuid.NewString(),
		Color:   color,
		Message: message,
	}
}

// Deck is an ordered list of cards. The order never changes after creation.
type Deck struct {
	Cards []Card
}

// IDs returns the card IDs in deck order.
func (d *Deck) IDs() []string {
	ids := make([]string, len(d.Cards))
	for i, c := range d.Cards {
		ids[i] = c.ID
	}
	return ids
}

// Len returns the number of cards.
func (d *Deck) Len() int { return len(d.Cards) }

// ByID returns the card with the given ID, if present.
func (d *Deck) ByID(id string) (Card, bool) {
	for _, c := range d.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// =============================================================================
// TOML Loading
// =============================================================================

// maxCards bounds deck size so stagger delays and the compositor stay
// within a usable terminal frame.
const maxCards = 64

// deckFile is the on-disk TOML shape.
type deckFile struct {
	Layout layoutOverrides `toml:"layout"`
	Cards  []cardEntry     `toml:"card"`
}

type cardEntry struct {
	Color   string `toml:"color"`
	Message string `toml:"message"`
}

// layoutOverrides holds optional per-deck layout constants. Pointer fields
// distinguish "not set" from an explicit zero.
type layoutOverrides struct {
	StackStep      *float64 `toml:"stack_step"`
	InsetStep      *float64 `toml:"inset_step"`
	Spacing        *float64 `toml:"spacing"`
	FallbackHeight *float64 `toml:"fallback_height"`
	StaggerMS      *int     `toml:"stagger_ms"`
}

func (o layoutOverrides) apply(p stack.Params) stack.Params {
	if o.StackStep != nil {
		p.StackStep = *o.StackStep
	}
	if o.InsetStep != nil {
		p.InsetStep = *o.InsetStep
	}
	if o.Spacing != nil {
		p.Spacing = *o.Spacing
	}
	if o.FallbackHeight != nil {
		p.FallbackHeight = *o.FallbackHeight
	}
	if o.StaggerMS != nil {
		p.Stagger = time.Duration(*o.StaggerMS) * time.Millisecond
	}
	return p
}

// Load reads a TOML deck file and returns the deck plus its layout
// parameters (base overridden by the file's [layout] table). Every card is
// assigned a fresh ID; loading the same file twice produces distinct
// identities.
func Load(path string, base stack.Params) (*Deck, stack.Params, error) {
	if err := errors.ValidateDeckPath(path); err != nil {
		return nil, base, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, base, errors.Wrap(errors.ErrCodeFileNotFound, err, "deck file not found: %s", path)
		}
		return nil, base, fmt.Errorf("read deck %s: %w", path, err)
	}

	var file deckFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, base, errors.Wrap(errors.ErrCodeInvalidDeck, err, "parse deck %s", path)
	}

	if len(file.Cards) > maxCards {
		return nil, base, errors.New(errors.ErrCodeInvalidDeck, "deck has %d cards (max %d)", len(file.Cards), maxCards)
	}

	d := &Deck{Cards: make([]Card, 0, len(file.Cards))}
	for i, entry := range file.Cards {
		if err := errors.ValidateCardMessage(entry.Message); err != nil {
			return nil, base, errors.Wrap(errors.ErrCodeInvalidDeck, err, "card %d in %s", i, path)
		}
		d.Cards = append(d.Cards, NewCard(entry.Color, entry.Message))
	}

	return d, file.Layout.apply(base), nil
}

// Builtin returns the default demo deck used when no deck file is given.
func Builtin() *Deck {
	return &Deck{Cards: []Card{
		NewCard("purple", "Is your pet hiding a secret? Your cat has walked 2.3 miles today."),
		NewCard("blue", "Reminder: design sync at 10:30 with the growth team."),
		NewCard("green", "Your package was delivered. Left at the front door."),
		NewCard("orange", "Battery at 20%. Low power mode is on."),
		NewCard("pink", "New follower: @cardstack is now following you."),
	}}
}
