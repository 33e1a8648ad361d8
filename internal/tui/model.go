// Package tui renders the county cartogram dashboard: a grid of 47 tiles
// colored from the audit-status ramps, with mouse hover, click-to-pin,
// keyboard navigation, auto-rotation, and a detail popover. All interaction
// state lives in the interaction.Coordinator; the model here only owns
// screen concerns (geometry, cursor, which surfaces are open).
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kauntidev/kaunti/internal/interaction"
	"github.com/kauntidev/kaunti/internal/match"
	"github.com/kauntidev/kaunti/internal/tooltip"
	"github.com/kauntidev/kaunti/internal/tui/themes"
)

// cell addresses one grid position on the cartogram.
type cell struct {
	col int
	row int
}

// Model holds the dashboard TUI state.
type Model struct {
	ctx         context.Context
	config      Config
	theme       themes.Theme
	keymap      KeyMap
	coordinator *interaction.Coordinator
	popover     *tooltip.Lifecycle
	memo        *match.Memo
	tiles       []Tile
	grid        map[cell]int
	detail      table.Model
	lastError   error
	fiscalYear  string
	zone        zone
	cursor      int
	width       int
	height      int
	tickGen     int
	refreshing  bool
	showHelp    bool
	showDetail  bool
	quitting    bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	ts := Boundaries()
	grid := make(map[cell]int, len(ts))
	for i, t := range ts {
		grid[cell{col: t.Col, row: t.Row}] = i
	}

	fy := cfg.FiscalYear
	if fy == "" && !cfg.Dataset.Empty() {
		fy = cfg.Dataset.Records[0].FiscalYear
	}

	return Model{
		ctx:         ctx,
		config:      cfg,
		theme:       cfg.Theme,
		keymap:      DefaultKeyMap(),
		coordinator: interaction.New(cfg.Dataset),
		popover:     &tooltip.Lifecycle{},
		memo:        match.NewMemo(match.NewResolver(cfg.Aliases)),
		tiles:       ts,
		grid:        grid,
		detail:      newDetailTable(cfg.Theme),
		fiscalYear:  fy,
		width:       cfg.Width,
		height:      cfg.Height,
		showDetail:  cfg.ShowDetail,
	}
}

func newDetailTable(theme themes.Theme) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Metric", Width: 15},
			{Title: "Value", Width: 17},
		}),
		table.WithHeight(10),
		table.WithFocused(false),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(theme.Foreground)
	s.Selected = s.Cell
	t.SetStyles(s)
	return t
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return rotateCmd(m.coordinator.State().AnimationMode, m.tickGen)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The popover's screen rectangle just moved out from under the
		// pointer; drop it instead of hit-testing against stale geometry.
		m.popover.Reset()
		m.zone = zone{}
		return m, nil

	case rotateMsg:
		if msg.gen != m.tickGen {
			// A timer armed under a previous animation mode. Let it die.
			return m, nil
		}
		m.coordinator.Tick()
		return m, rotateCmd(m.coordinator.State().AnimationMode, m.tickGen)

	case refreshedMsg:
		m.refreshing = false
		m.lastError = nil
		m.coordinator.SetDataset(msg.ds)
		m.popover.Reset()
		m.zone = zone{}
		if !msg.ds.Empty() {
			m.fiscalYear = msg.ds.Records[0].FiscalYear
		}
		return m, nil

	case refreshFailedMsg:
		m.refreshing = false
		m.lastError = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		default:
			m.showHelp = false
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keymap.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keymap.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keymap.Right):
		m.moveCursor(1, 0)

	case key.Matches(msg, m.keymap.Next):
		m.stepRotation(1)
	case key.Matches(msg, m.keymap.Prev):
		m.stepRotation(-1)

	case key.Matches(msg, m.keymap.Select):
		m.clickTile(m.tiles[m.cursor])
	case key.Matches(msg, m.keymap.Deselect):
		m.coordinator.ClearSelection()

	case key.Matches(msg, m.keymap.ToggleFocus):
		m.coordinator.ToggleDisplayMode()
	case key.Matches(msg, m.keymap.CycleAnimation):
		m.coordinator.CycleAnimationMode()
		m.tickGen++
		return m, rotateCmd(m.coordinator.State().AnimationMode, m.tickGen)
	case key.Matches(msg, m.keymap.ToggleDetail):
		m.showDetail = !m.showDetail
	case key.Matches(msg, m.keymap.ToggleHelp):
		m.showHelp = true

	case key.Matches(msg, m.keymap.Refresh):
		if m.config.Refresh != nil && !m.refreshing {
			m.refreshing = true
			return m, m.refreshCmd()
		}
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.applyPointerMove(m.zoneAt(msg.X, msg.Y))

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			break
		}
		z := m.zoneAt(msg.X, msg.Y)
		m.applyPointerMove(z)
		if z.kind == zoneTile {
			if i, ok := m.tileIndex(z.name); ok {
				m.cursor = i
				m.clickTile(m.tiles[i])
			}
		}
	}
	return m, nil
}

// applyPointerMove feeds a zone change into the coordinator and the popover
// lifecycle. Enters fire before leaves: on a hand-off between zones both
// consumers see the new zone armed before the old one disarms, which is
// what keeps the popover up and the hover stable across the gap.
func (m *Model) applyPointerMove(next zone) {
	prev := m.zone
	if next == prev {
		return
	}
	m.zone = next

	switch next.kind {
	case zoneTile:
		m.coordinator.PointerEnter(next.name)
		m.popover.EnterRegion(next.name)
	case zonePopover:
		m.popover.EnterPopover()
	}

	switch prev.kind {
	case zoneTile:
		m.popover.LeaveRegion(prev.name)
		if next.kind == zoneNone {
			m.coordinator.PointerLeave(prev.name)
		}
	case zonePopover:
		hovered := m.popover.Current()
		m.popover.LeavePopover()
		if next.kind == zoneNone {
			m.coordinator.PointerLeave(hovered)
		}
	}
}

// clickTile toggles the selection on the record the tile resolves to.
// Unmatched tiles swallow the click.
func (m *Model) clickTile(t Tile) {
	ds := m.coordinator.Dataset()
	if i, ok := m.memo.Resolve(t.Name, ds); ok {
		m.coordinator.Click(ds.Records[i].ID)
	}
}

// moveCursor moves the keyboard cursor one step. Horizontal moves stay in
// the row; vertical moves land on the nearest occupied column in the next
// occupied row. The cursor hovers the tile it lands on, exactly like the
// pointer would.
func (m *Model) moveCursor(dx, dy int) {
	cur := m.tiles[m.cursor]

	if dx != 0 {
		best := -1
		for i, t := range m.tiles {
			if t.Row != cur.Row {
				continue
			}
			if dx > 0 && t.Col > cur.Col && (best == -1 || t.Col < m.tiles[best].Col) {
				best = i
			}
			if dx < 0 && t.Col < cur.Col && (best == -1 || t.Col > m.tiles[best].Col) {
				best = i
			}
		}
		if best >= 0 {
			m.setCursor(best)
		}
		return
	}

	for step := 1; step < gridRows; step++ {
		row := cur.Row + dy*step
		if row < 0 || row >= gridRows {
			return
		}
		best, bestDist := -1, 0
		for i, t := range m.tiles {
			if t.Row != row {
				continue
			}
			d := t.Col - cur.Col
			if d < 0 {
				d = -d
			}
			if best == -1 || d < bestDist {
				best, bestDist = i, d
			}
		}
		if best >= 0 {
			m.setCursor(best)
			return
		}
	}
}

func (m *Model) setCursor(i int) {
	m.cursor = i
	m.applyPointerMove(zone{kind: zoneTile, name: m.tiles[i].Name})
}

// stepRotation nudges the rotation cursor by delta with wraparound, clearing
// any pin so the nudge is visible immediately.
func (m *Model) stepRotation(delta int) {
	n := m.coordinator.Len()
	if n == 0 {
		return
	}
	i := m.coordinator.State().RotationIndex + delta
	m.coordinator.SetIndex(((i % n) + n) % n)
}

func (m Model) tileIndex(name string) (int, bool) {
	for i, t := range m.tiles {
		if t.Name == name {
			return i, true
		}
	}
	return 0, false
}

func (m Model) refreshCmd() tea.Cmd {
	refresh := m.config.Refresh
	ctx := m.ctx
	return func() tea.Msg {
		ds, err := refresh(ctx)
		if err != nil {
			return refreshFailedMsg{err: err}
		}
		return refreshedMsg{ds: ds}
	}
}

// matchedCount reports how many tiles resolve to a record right now.
func (m Model) matchedCount() int {
	ds := m.coordinator.Dataset()
	n := 0
	for _, t := range m.tiles {
		if _, ok := m.memo.Resolve(t.Name, ds); ok {
			n++
		}
	}
	return n
}
