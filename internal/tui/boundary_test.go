package tui

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauntidev/kaunti/internal/match"
	"github.com/kauntidev/kaunti/internal/provider"
)

func TestBoundaries_FortySevenCounties(t *testing.T) {
	ts := Boundaries()
	require.Len(t, ts, 47)

	names := make(map[string]bool, len(ts))
	codes := make(map[string]bool, len(ts))
	cells := make(map[cell]bool, len(ts))
	for _, tile := range ts {
		assert.True(t, strings.HasSuffix(tile.Name, " County"), "atlas names carry the County suffix: %q", tile.Name)
		assert.Len(t, tile.Code, 3, "tile code %q", tile.Code)
		assert.False(t, names[tile.Name], "duplicate name %q", tile.Name)
		assert.False(t, codes[tile.Code], "duplicate code %q", tile.Code)
		assert.False(t, cells[cell{col: tile.Col, row: tile.Row}], "cell collision at %d,%d", tile.Col, tile.Row)
		names[tile.Name] = true
		codes[tile.Code] = true
		cells[cell{col: tile.Col, row: tile.Row}] = true

		assert.GreaterOrEqual(t, tile.Col, 0)
		assert.Less(t, tile.Col, gridCols)
		assert.GreaterOrEqual(t, tile.Row, 0)
		assert.Less(t, tile.Row, gridRows)
	}
}

func TestBoundaries_RowMajorOrder(t *testing.T) {
	ts := Boundaries()
	for i := 1; i < len(ts); i++ {
		prev, cur := ts[i-1], ts[i]
		inOrder := cur.Row > prev.Row || (cur.Row == prev.Row && cur.Col > prev.Col)
		assert.True(t, inOrder, "tiles out of row-major order at %d: %s then %s", i, prev.Name, cur.Name)
	}
}

// TestBoundaries_ResolveAgainstSample pins the whole point of the atlas
// spellings: every tile except Lamu and Isiolo (absent from the sample
// year) must land on a record, including the two renamed counties and the
// apostrophe in Murang'a.
func TestBoundaries_ResolveAgainstSample(t *testing.T) {
	ds := provider.SampleDataset()
	r := match.NewResolver(nil)

	var unmatched []string
	for _, tile := range Boundaries() {
		if _, ok := r.Resolve(tile.Name, ds); !ok {
			unmatched = append(unmatched, tile.Name)
		}
	}
	assert.ElementsMatch(t, []string{"Lamu County", "Isiolo County"}, unmatched)

	i, ok := r.Resolve("Keiyo-Marakwet County", ds)
	require.True(t, ok)
	assert.Equal(t, "Elgeyo Marakwet", ds.Records[i].Name)

	i, ok = r.Resolve("Tharaka County", ds)
	require.True(t, ok)
	assert.Equal(t, "Tharaka Nithi", ds.Records[i].Name)
}

// sketchCartogram renders the grid as plain tile codes, one cell per
// four-character column.
func sketchCartogram(ts []Tile) string {
	var b strings.Builder
	for row := 0; row < gridRows; row++ {
		var line strings.Builder
		for col := 0; col < gridCols; col++ {
			code := "   "
			for _, t := range ts {
				if t.Col == col && t.Row == row {
					code = t.Code
					break
				}
			}
			line.WriteString(code)
			line.WriteString(" ")
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// TestCartogram_Golden pins the tile arrangement. Moving a county is a
// deliberate act and should show up as a golden diff, not slip through in
// an unrelated edit.
func TestCartogram_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "cartogram", []byte(sketchCartogram(Boundaries())))
}
