package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/cardstack/pkg/errors"
	"github.com/matzehuels/cardstack/pkg/stack"
)

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeDeck(t, `
[layout]
stack_step = 1
spacing = 2
stagger_ms = 80

[[card]]
color = "purple"
message = "first card"

[[card]]
color = "blue"
message = "second card"
`)

	d, params, err := Load(path, stack.DefaultParams())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	if d.Cards[0].Color != "purple" || d.Cards[1].Color != "blue" {
		t.Errorf("card colors = %q, %q", d.Cards[0].Color, d.Cards[1].Color)
	}

	// Overridden values
	if params.StackStep != 1 || params.Spacing != 2 {
		t.Errorf("params = %+v, overrides not applied", params)
	}
	if params.Stagger != 80*time.Millisecond {
		t.Errorf("Stagger = %v, want 80ms", params.Stagger)
	}
	// Untouched values keep their defaults
	if params.InsetStep != stack.DefaultParams().InsetStep {
		t.Errorf("InsetStep = %v, want default", params.InsetStep)
	}
	if params.FallbackHeight != stack.DefaultParams().FallbackHeight {
		t.Errorf("FallbackHeight = %v, want default", params.FallbackHeight)
	}
}

func TestLoadGeneratesUniqueStableIDs(t *testing.T) {
	path := writeDeck(t, `
[[card]]
color = "green"
message = "a"

[[card]]
color = "green"
message = "b"
`)

	d, _, err := Load(path, stack.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	if d.Cards[0].ID == d.Cards[1].ID {
		t.Error("cards share an ID")
	}
	if d.Cards[0].ID == "" {
		t.Error("empty card ID")
	}

	// IDs are stable across lookups
	ids := d.IDs()
	for i, id := range ids {
		c, ok := d.ByID(id)
		if !ok {
			t.Fatalf("ByID(%q) missing", id)
		}
		if c.ID != d.Cards[i].ID {
			t.Errorf("ByID returned wrong card for index %d", i)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{
			name:    "empty message",
			content: "[[card]]\ncolor = \"red\"\nmessage = \"\"\n",
			code:    errors.ErrCodeInvalidDeck,
		},
		{
			name:    "invalid toml",
			content: "[[card\n",
			code:    errors.ErrCodeInvalidDeck,
		},
		{
			name:    "too many cards",
			content: strings.Repeat("[[card]]\ncolor = \"red\"\nmessage = \"x\"\n\n", maxCards+1),
			code:    errors.ErrCodeInvalidDeck,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDeck(t, tt.content)
			_, _, err := Load(path, stack.DefaultParams())
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"), stack.DefaultParams())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestBuiltin(t *testing.T) {
	d := Builtin()
	if d.Len() == 0 {
		t.Fatal("builtin deck is empty")
	}

	seen := map[string]bool{}
	for _, c := range d.Cards {
		if c.Message == "" {
			t.Error("builtin card with empty message")
		}
		if seen[c.ID] {
			t.Errorf("duplicate ID %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestEmptyDeckIsValid(t *testing.T) {
	// Zero cards is a benign degenerate input, not an error.
	path := writeDeck(t, "# no cards\n")
	d, _, err := Load(path, stack.DefaultParams())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}
}
