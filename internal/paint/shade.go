package paint

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kauntidev/kaunti/internal/interaction"
	"github.com/kauntidev/kaunti/internal/model"
)

// Shade names the slot of a ramp a boundary renders with. ShadeNone stands
// apart: it means the boundary matched no record and paints NoData.
type Shade int

const (
	ShadeNone Shade = iota
	ShadeBase
	ShadeHover
	ShadeActive
	ShadeMuted
)

// String returns the shade name used in API payloads and logs.
func (s Shade) String() string {
	switch s {
	case ShadeBase:
		return "base"
	case ShadeHover:
		return "hover"
	case ShadeActive:
		return "active"
	case ShadeMuted:
		return "muted"
	default:
		return "nodata"
	}
}

// Pick returns the color the ramp assigns to a shade. ShadeNone falls back
// to NoData since it lives outside every ramp.
func (r Ramp) Pick(s Shade) lipgloss.Color {
	switch s {
	case ShadeBase:
		return r.Base
	case ShadeHover:
		return r.Hover
	case ShadeActive:
		return r.Active
	case ShadeMuted:
		return r.Muted
	default:
		return NoData
	}
}

// Classify resolves a boundary against the dataset and applies the shading
// rules, returning the shade plus the matched record index. ok is false for
// unmatched boundaries, which always classify as ShadeNone.
//
// Renderers that need more than the final color (the emphasis marker, the
// API's shade field) build on Classify; everything else goes through
// ColorFor.
func Classify(boundaryName string, ds model.Dataset, st interaction.State, r RegionResolver) (Shade, int, bool) {
	i, ok := r.Resolve(boundaryName, ds)
	if !ok {
		return ShadeNone, 0, false
	}
	rec := ds.Records[i]
	switch {
	case st.HasSelection() && rec.ID == st.SelectedID:
		return ShadeActive, i, true
	case !st.HasSelection() && i == st.RotationIndex:
		return ShadeActive, i, true
	case st.Hovering(boundaryName):
		return ShadeHover, i, true
	case st.DisplayMode == interaction.ModeFocus:
		return ShadeMuted, i, true
	default:
		return ShadeBase, i, true
	}
}
