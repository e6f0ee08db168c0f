package cli

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cardstack/pkg/cards"
	"github.com/matzehuels/cardstack/pkg/deck"
	"github.com/matzehuels/cardstack/pkg/motion"
	"github.com/matzehuels/cardstack/pkg/stack"
)

// Spring tuning for the toggle transition. Damping below 1 gives the
// slight overshoot the lock-screen effect is known for.
const (
	springFrequency = 7.0
	springDamping   = 0.8
)

// =============================================================================
// Messages
// =============================================================================

// cardMeasuredMsg reports one card's rendered height. Measurements arrive
// per card after a render pass; the latest report for an ID wins.
type cardMeasuredMsg struct {
	id     string
	height float64
}

// frameMsg drives one animation step.
type frameMsg time.Time

// =============================================================================
// Key Bindings
// =============================================================================

type keyMap struct {
	Toggle key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle}, {k.Help, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "stack/unstack"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// =============================================================================
// CardStackModel - Interactive stacking cards view
// =============================================================================

// CardStackModel is the bubbletea model for the stacking-cards demo. It
// owns the mode flag and the height table; placements are recomputed from
// scratch on every toggle and every measurement report.
type CardStackModel struct {
	Deck   *deck.Deck
	Params stack.Params
	Mode   stack.Mode

	heights  stack.HeightTable
	layout   stack.Layout
	anim     *motion.Animator
	renderer *cards.Renderer
	rendered map[string][]string // card lines at the current width, by ID

	fps       int
	animating bool
	width     int
	height    int

	keys keyMap
	help help.Model
}

// NewCardStackModel creates the demo model. Cards start stacked.
func NewCardStackModel(d *deck.Deck, params stack.Params, fps int) CardStackModel {
	if fps <= 0 {
		fps = defaultFPS
	}
	m := CardStackModel{
		Deck:     d,
		Params:   params,
		Mode:     stack.ModeStacked,
		heights:  stack.HeightTable{},
		anim:     motion.NewAnimator(fps, springFrequency, springDamping),
		renderer: cards.NewRenderer(defaultCardWidth),
		rendered: make(map[string][]string),
		fps:      fps,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	// Before any measurement lands the layout still has a usable
	// container height via the fallback constant.
	m.applyLayout(false)
	return m
}

func (m CardStackModel) Init() tea.Cmd {
	return m.measureAll()
}

// measureAll re-renders every card at the current width and reports each
// height as its own message, mirroring the per-item measurement pass of
// the rendering layer.
func (m CardStackModel) measureAll() tea.Cmd {
	cmds := make([]tea.Cmd, 0, m.Deck.Len())
	for _, c := range m.Deck.Cards {
		cmds = append(cmds, measureCard(m.renderer, c))
	}
	return tea.Batch(cmds...)
}

func measureCard(r *cards.Renderer, c deck.Card) tea.Cmd {
	return func() tea.Msg {
		return cardMeasuredMsg{id: c.ID, height: r.Measure(c)}
	}
}

func (m CardStackModel) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m CardStackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Toggle):
			m.Mode = m.Mode.Toggled()
			m.applyLayout(true)
			return m, m.startTicking()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.renderer = cards.NewRenderer(m.cardWidth())
		m.rendered = make(map[string][]string)
		// Heights are stale at the new width; fresh measurements
		// supersede them as they arrive.
		return m, m.measureAll()

	case cardMeasuredMsg:
		m.heights.Set(msg.id, msg.height)
		if c, ok := m.Deck.ByID(msg.id); ok {
			m.rendered[msg.id] = strings.Split(m.renderer.Render(c), "\n")
		}
		// Measurement updates are not staggered; only the toggle is.
		m.applyLayout(false)
		return m, m.startTicking()

	case frameMsg:
		m.anim.Step()
		if m.anim.Settled() {
			m.animating = false
			return m, nil
		}
		return m, m.frame()
	}

	return m, nil
}

// cardWidth fits the card box plus both insets into the terminal.
func (m CardStackModel) cardWidth() int {
	if m.width == 0 {
		return defaultCardWidth
	}
	maxInset := int(float64(m.Deck.Len()) * m.Params.InsetStep)
	w := m.width - 2*maxInset - 2
	if w > defaultCardWidth {
		w = defaultCardWidth
	}
	return w
}

// applyLayout recomputes placements and retargets the animator. Stagger
// delays apply only to mode toggles; measurement catch-up moves directly.
func (m *CardStackModel) applyLayout(staggered bool) {
	m.layout = stack.Compute(m.Deck.IDs(), m.heights, m.Mode, m.Params)
	for _, pl := range m.layout.Placements {
		delay := time.Duration(0)
		if staggered {
			delay = pl.Delay
		}
		m.anim.Set(pl.ID+"/y", motion.Transition{To: pl.OffsetY, Delay: delay})
		m.anim.Set(pl.ID+"/inset", motion.Transition{To: pl.LeadingInset, Delay: delay})
	}
}

// startTicking begins the frame loop unless it is already running or
// everything is in place.
func (m *CardStackModel) startTicking() tea.Cmd {
	if m.animating || m.anim.Settled() {
		return nil
	}
	m.animating = true
	return m.frame()
}

func (m CardStackModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Stacking Cards"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(string(m.Mode)))
	b.WriteString("\n\n")

	b.WriteString(m.composeCards())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// composeCards paints the deck front to back at the current animated
// positions. The frame is tall enough for both the engine's container
// target and any card still in flight past it.
func (m CardStackModel) composeCards() string {
	placed := make([]cards.Placed, 0, m.Deck.Len())
	frame := int(math.Round(m.layout.ContainerHeight))

	for _, pl := range m.layout.Placements {
		lines, ok := m.rendered[pl.ID]
		if !ok {
			continue // not measured yet, nothing to paint
		}

		p := cards.Placed{
			Lines:   lines,
			Offset:  int(math.Round(m.anim.Value(pl.ID + "/y"))),
			Leading: int(math.Round(m.anim.Value(pl.ID + "/inset"))),
		}
		rows := len(p.Lines)
		if pl.FixedHeight != nil {
			p.MaxRows = int(math.Round(*pl.FixedHeight))
			if p.MaxRows < rows {
				rows = p.MaxRows
			}
		}
		if extent := p.Offset + rows; extent > frame {
			frame = extent
		}
		placed = append(placed, p)
	}

	if len(placed) == 0 {
		return lipgloss.NewStyle().
			Height(int(m.Params.FallbackHeight)).
			Render(StyleDim.Render("measuring..."))
	}
	return cards.Compose(placed, frame)
}
