package tui

// Screen geometry. The View render and the mouse hit-testing both derive
// from the same numbers here; if they ever disagree, hover breaks in ways
// that are miserable to debug, so nothing below may depend on rendered
// output.

const (
	tileWideW   = 8
	tileWideH   = 2
	tileNarrowW = 5
	tileNarrowH = 1
	tileGap     = 1

	mapLeft = 1
	mapTop  = 3 // title, subtitle, blank

	popoverW = 46
	popoverH = 7 // rounded border around five content lines

	detailPanelW = 38

	// Below these the dashboard refuses to lay out at all.
	minWidth  = 56
	minHeight = 22
)

type geometry struct {
	tileW, tileH int
	mapX, mapY   int
	popX, popY   int
	popW, popH   int
	compact      bool
	detail       bool
}

// layout computes the frame geometry for the current terminal size.
func (m Model) layout() geometry {
	g := geometry{
		tileW: tileWideW,
		tileH: tileWideH,
		mapX:  mapLeft,
		mapY:  mapTop,
		popW:  popoverW,
		popH:  popoverH,
	}
	if m.width < 84 || m.height < 32 {
		g.tileW = tileNarrowW
		g.tileH = tileNarrowH
		g.compact = true
	}
	// The popover sits one blank line under the map. That line counts as
	// popover padding, so the pointer can cross from the bottom tile row
	// onto the popover without the popover blinking out en route.
	g.popX = g.mapX + 2
	g.popY = g.mapY + gridRows*g.tileH + 1
	g.detail = !g.compact && m.showDetail && m.width >= mapLeft+gridCols*(tileWideW+tileGap)+detailPanelW
	return g
}

// mapWidth returns the rendered width of the cartogram in cells.
func (g geometry) mapWidth() int {
	return gridCols*(g.tileW+tileGap) - tileGap
}

type zoneKind int

const (
	zoneNone zoneKind = iota
	zoneTile
	zonePopover
)

// zone is what sits under the pointer: a county tile, the popover box
// (including its one-cell padding ring), or nothing.
type zone struct {
	kind zoneKind
	name string // boundary name when kind == zoneTile
}

// zoneAt classifies a screen cell. The popover zone only exists while the
// popover is on screen; its padding ring never blocks tiles because the two
// rectangles do not overlap.
func (m Model) zoneAt(x, y int) zone {
	g := m.layout()
	if m.popover.Visible() &&
		x >= g.popX-1 && x <= g.popX+g.popW &&
		y >= g.popY-1 && y <= g.popY+g.popH {
		return zone{kind: zonePopover}
	}
	if t, ok := m.tileAt(g, x, y); ok {
		return zone{kind: zoneTile, name: t.Name}
	}
	return zone{}
}

// tileAt maps a screen cell to the tile drawn there, if any. The gap column
// between tiles belongs to no tile.
func (m Model) tileAt(g geometry, x, y int) (Tile, bool) {
	relX := x - g.mapX
	relY := y - g.mapY
	if relX < 0 || relY < 0 {
		return Tile{}, false
	}
	row := relY / g.tileH
	stride := g.tileW + tileGap
	col := relX / stride
	if row >= gridRows || col >= gridCols || relX%stride >= g.tileW {
		return Tile{}, false
	}
	i, ok := m.grid[cell{col: col, row: row}]
	if !ok {
		return Tile{}, false
	}
	return m.tiles[i], true
}

// tileOrigin returns the top-left screen cell of a tile.
func (g geometry) tileOrigin(t Tile) (x, y int) {
	return g.mapX + t.Col*(g.tileW+tileGap), g.mapY + t.Row*g.tileH
}
