package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/cardstack/pkg/errors"
	"github.com/matzehuels/cardstack/pkg/stack"
)

func newTestCLI() *CLI {
	return New(&bytes.Buffer{}, LogInfo)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := map[string]bool{"demo": false, "layout": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRunLayoutWritesFile(t *testing.T) {
	c := newTestCLI()
	dir := t.TempDir()

	deckPath := filepath.Join(dir, "demo.toml")
	content := "[[card]]\ncolor = \"blue\"\nmessage = \"hello there\"\n\n[[card]]\ncolor = \"green\"\nmessage = \"second card\"\n"
	if err := os.WriteFile(deckPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.json")
	if err := c.runLayout(context.Background(), deckPath, stack.ModeStacked, 40, out); err != nil {
		t.Fatalf("runLayout: %v", err)
	}

	layout, err := stack.ReadLayoutFile(out)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if layout.Mode != stack.ModeStacked {
		t.Errorf("Mode = %v, want stacked", layout.Mode)
	}
	if len(layout.Placements) != 2 {
		t.Fatalf("placements = %d, want 2", len(layout.Placements))
	}
	// Both cards collapse to the first card's measured height.
	if layout.Placements[0].FixedHeight == nil || layout.Placements[1].FixedHeight == nil {
		t.Error("stacked placements should carry a fixed height")
	}
}

func TestRunLayoutDefaultOutputPath(t *testing.T) {
	c := newTestCLI()
	dir := t.TempDir()

	deckPath := filepath.Join(dir, "demo.toml")
	content := "[[card]]\ncolor = \"blue\"\nmessage = \"hi\"\n"
	if err := os.WriteFile(deckPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := c.runLayout(context.Background(), deckPath, stack.ModeUnstacked, 40, ""); err != nil {
		t.Fatalf("runLayout: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "demo.layout.json")); err != nil {
		t.Errorf("default output file missing: %v", err)
	}
}

func TestRunLayoutRejectsUnknownMode(t *testing.T) {
	c := newTestCLI()
	err := c.runLayout(context.Background(), "", "sideways", 40, filepath.Join(t.TempDir(), "o.json"))
	if !errors.Is(err, errors.ErrCodeInvalidMode) {
		t.Errorf("error = %v, want INVALID_MODE", err)
	}
}

func TestLoadDeckBuiltinFallback(t *testing.T) {
	d, params, err := loadDeck("")
	if err != nil {
		t.Fatalf("loadDeck: %v", err)
	}
	if d.Len() == 0 {
		t.Error("builtin deck is empty")
	}
	if params != terminalParams() {
		t.Errorf("params = %+v, want terminal defaults", params)
	}
}
