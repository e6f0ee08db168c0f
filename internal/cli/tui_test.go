package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/cardstack/pkg/deck"
	"github.com/matzehuels/cardstack/pkg/stack"
)

func newTestModel() CardStackModel {
	return NewCardStackModel(deck.Builtin(), terminalParams(), 60)
}

// measure feeds a fixed height for every card, simulating a completed
// measurement pass.
func measure(t *testing.T, m CardStackModel, height float64) CardStackModel {
	t.Helper()
	for _, c := range m.Deck.Cards {
		updated, _ := m.Update(cardMeasuredMsg{id: c.ID, height: height})
		m = updated.(CardStackModel)
	}
	return m
}

func TestModelStartsStacked(t *testing.T) {
	m := newTestModel()
	if m.Mode != stack.ModeStacked {
		t.Errorf("Mode = %v, want stacked", m.Mode)
	}
	if m.Init() == nil {
		t.Error("Init should schedule measurement")
	}
}

func TestMeasurementUpdatesLayout(t *testing.T) {
	m := measure(t, newTestModel(), 3)

	// Stacked container: firstHeight + (n-1)*stackStep.
	want := 3 + float64(m.Deck.Len()-1)*m.Params.StackStep
	if m.layout.ContainerHeight != want {
		t.Errorf("ContainerHeight = %v, want %v", m.layout.ContainerHeight, want)
	}

	for _, c := range m.Deck.Cards {
		if h, ok := m.heights.Lookup(c.ID); !ok || h != 3 {
			t.Errorf("height for %s = %v, %v; want 3, true", c.ID, h, ok)
		}
	}
}

func TestLastMeasurementWins(t *testing.T) {
	m := newTestModel()
	id := m.Deck.Cards[0].ID

	updated, _ := m.Update(cardMeasuredMsg{id: id, height: 3})
	m = updated.(CardStackModel)
	updated, _ = m.Update(cardMeasuredMsg{id: id, height: 5})
	m = updated.(CardStackModel)

	if h, _ := m.heights.Lookup(id); h != 5 {
		t.Errorf("height = %v, want 5 (last report wins)", h)
	}
}

func TestToggleFlipsModeAndAnimates(t *testing.T) {
	m := measure(t, newTestModel(), 3)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(CardStackModel)

	if m.Mode != stack.ModeUnstacked {
		t.Errorf("Mode = %v, want unstacked after toggle", m.Mode)
	}
	if cmd == nil {
		t.Error("toggle should start the frame loop")
	}
	if !m.animating {
		t.Error("model should be animating after toggle")
	}

	// Run frames until the springs settle.
	for i := 0; i < 2000 && m.animating; i++ {
		updated, _ = m.Update(frameMsg{})
		m = updated.(CardStackModel)
	}
	if m.animating {
		t.Fatal("animation never settled")
	}

	// Positions should have landed on the unstacked targets.
	last := m.layout.Placements[len(m.layout.Placements)-1]
	if got := m.anim.Value(last.ID + "/y"); got != last.OffsetY {
		t.Errorf("final offset = %v, want %v", got, last.OffsetY)
	}
}

func TestToggleBackRestacks(t *testing.T) {
	m := measure(t, newTestModel(), 3)

	for _, key := range []tea.KeyMsg{{Type: tea.KeyEnter}, {Type: tea.KeyEnter}} {
		updated, _ := m.Update(key)
		m = updated.(CardStackModel)
	}
	if m.Mode != stack.ModeStacked {
		t.Errorf("Mode = %v, want stacked after double toggle", m.Mode)
	}
}

func TestWindowResizeTriggersRemeasure(t *testing.T) {
	m := measure(t, newTestModel(), 3)

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 30, Height: 40})
	m = updated.(CardStackModel)

	if cmd == nil {
		t.Error("resize should schedule a new measurement pass")
	}
	if m.renderer.Width() >= defaultCardWidth {
		t.Errorf("renderer width = %d, should shrink for a 30-column terminal", m.renderer.Width())
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce a QuitMsg")
	}
}

func TestViewBeforeMeasurement(t *testing.T) {
	m := newTestModel()
	if m.View() == "" {
		t.Error("View should render a placeholder before any measurement")
	}
}

func TestViewAfterMeasurement(t *testing.T) {
	m := measure(t, newTestModel(), 3)
	if m.View() == "" {
		t.Error("View should render the composed cards")
	}
}
