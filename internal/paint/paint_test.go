package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauntidev/kaunti/internal/interaction"
	"github.com/kauntidev/kaunti/internal/match"
	"github.com/kauntidev/kaunti/internal/model"
)

// fourCounties covers every shade-relevant audit outcome. Boundary names on
// the map carry the "County" suffix; record names do not.
func fourCounties() model.Dataset {
	return model.NewDataset([]model.Record{
		{ID: "KE-01", Name: "Mombasa", FiscalYear: "2023/24", Audit: model.Audit{Status: model.AuditClean}},
		{ID: "KE-30", Name: "Baringo", FiscalYear: "2023/24", Audit: model.Audit{Status: model.AuditQualified}},
		{ID: "KE-47", Name: "Nairobi City", FiscalYear: "2023/24", Audit: model.Audit{Status: model.AuditAdverse}},
		{ID: "KE-22", Name: "Kiambu", FiscalYear: "2023/24", Audit: model.Audit{Status: model.AuditDisclaimer}},
	})
}

var testBoundaries = []string{
	"Mombasa County",
	"Baringo County",
	"Nairobi City County",
	"Kiambu County",
	"Lamu County", // no record in the dataset
}

func TestColorFor_OverviewRestingShade(t *testing.T) {
	ds := fourCounties()
	r := match.NewResolver(nil)

	got := ColorFor("Baringo County", ds, interaction.State{}, r)
	// Rotation sits at index 0 (Mombasa), so Baringo rests at base.
	assert.Equal(t, qualifiedRamp.Base, got)
	assert.Equal(t, cleanRamp.Active, ColorFor("Mombasa County", ds, interaction.State{}, r))
}

func TestColorFor_HoverHighlight(t *testing.T) {
	ds := fourCounties()
	r := match.NewResolver(nil)
	st := interaction.State{HoveredName: "Baringo County"}

	assert.Equal(t, qualifiedRamp.Hover, ColorFor("Baringo County", ds, st, r))
	// The hover is tied to the exact boundary string; nothing else lights up.
	assert.Equal(t, disclaimerRamp.Base, ColorFor("Kiambu County", ds, st, r))
}

func TestColorFor_RotationEmphasis(t *testing.T) {
	ds := fourCounties()
	r := match.NewResolver(nil)

	st := interaction.State{RotationIndex: 2}
	assert.Equal(t, adverseRamp.Active, ColorFor("Nairobi City County", ds, st, r))
	assert.Equal(t, cleanRamp.Base, ColorFor("Mombasa County", ds, st, r))

	// A hover elsewhere coexists with the rotation emphasis.
	st.HoveredName = "Baringo County"
	assert.Equal(t, adverseRamp.Active, ColorFor("Nairobi City County", ds, st, r))
	assert.Equal(t, qualifiedRamp.Hover, ColorFor("Baringo County", ds, st, r))
}

func TestColorFor_SelectionDominatesRotationAndHover(t *testing.T) {
	ds := fourCounties()
	r := match.NewResolver(nil)
	st := interaction.State{
		SelectedID:    "KE-30",
		RotationIndex: 2,
		HoveredName:   "Baringo County",
	}

	// The selected county is Active even while hovered.
	assert.Equal(t, qualifiedRamp.Active, ColorFor("Baringo County", ds, st, r))
	// The rotation cursor confers nothing while a selection exists.
	assert.Equal(t, adverseRamp.Base, ColorFor("Nairobi City County", ds, st, r))
}

func TestColorFor_AliasedBoundaryPaintsItsCounty(t *testing.T) {
	ds := fourCounties()
	r := match.NewResolver(nil)

	// Thika is a town tile that stands in for Kiambu County on the map.
	got := ColorFor("Thika Town", ds, interaction.State{RotationIndex: 3}, r)
	assert.Equal(t, disclaimerRamp.Active, got)
}

func TestColorFor_UnmatchedIsAlwaysNoData(t *testing.T) {
	ds := fourCounties()
	r := match.NewResolver(nil)

	states := []interaction.State{
		{},
		{HoveredName: "Lamu County"},
		{DisplayMode: interaction.ModeFocus},
		{SelectedID: "KE-01", HoveredName: "Lamu County"},
		{RotationIndex: 1, DisplayMode: interaction.ModeFocus, HoveredName: "Lamu County"},
	}
	for _, st := range states {
		assert.Equal(t, NoData, ColorFor("Lamu County", ds, st, r))
	}
}

func TestColorFor_FocusMutesTheRest(t *testing.T) {
	ds := fourCounties()
	r := match.NewResolver(nil)
	st := interaction.State{
		DisplayMode: interaction.ModeFocus,
		HoveredName: "Kiambu County",
	}

	assert.Equal(t, cleanRamp.Active, ColorFor("Mombasa County", ds, st, r), "rotation emphasis survives focus mode")
	assert.Equal(t, disclaimerRamp.Hover, ColorFor("Kiambu County", ds, st, r), "hover survives focus mode")
	assert.Equal(t, qualifiedRamp.Muted, ColorFor("Baringo County", ds, st, r))
	assert.Equal(t, adverseRamp.Muted, ColorFor("Nairobi City County", ds, st, r))
}

func TestColorFor_FocusAndOverviewShadesDiffer(t *testing.T) {
	ds := fourCounties()
	r := match.NewResolver(nil)

	overview := interaction.State{}
	focus := interaction.State{DisplayMode: interaction.ModeFocus}
	for _, b := range testBoundaries[1:4] { // skip the rotation-emphasized county and the unmatched one
		assert.NotEqual(t,
			ColorFor(b, ds, overview, r),
			ColorFor(b, ds, focus, r),
			"resting shade must be visually distinct from the muted shade for %s", b)
	}
}

// countEmphasized walks the whole boundary list and counts boundaries
// painted with their ramp's Active shade.
func countEmphasized(t *testing.T, ds model.Dataset, st interaction.State, r RegionResolver) int {
	t.Helper()
	n := 0
	for _, b := range testBoundaries {
		i, ok := r.Resolve(b, ds)
		if !ok {
			continue
		}
		if ColorFor(b, ds, st, r) == RampFor(ds.Records[i].Audit.Status).Active {
			n++
		}
	}
	return n
}

func TestColorFor_ExactlyOneEmphasizedCounty(t *testing.T) {
	ds := fourCounties()
	r := match.NewResolver(nil)

	states := map[string]interaction.State{
		"mount":                  {},
		"rotated":                {RotationIndex: 3},
		"hovering":               {HoveredName: "Baringo County"},
		"selected":               {SelectedID: "KE-47"},
		"selected while rotated": {SelectedID: "KE-22", RotationIndex: 1},
		"focus mode":             {DisplayMode: interaction.ModeFocus, RotationIndex: 2},
		"everything at once":     {SelectedID: "KE-01", RotationIndex: 3, HoveredName: "Kiambu County", DisplayMode: interaction.ModeFocus},
	}
	for name, st := range states {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 1, countEmphasized(t, ds, st, r))
		})
	}
}

func TestColorFor_MemoizedResolverPaintsTheSame(t *testing.T) {
	ds := fourCounties()
	plain := match.NewResolver(nil)
	memo := match.NewMemo(plain)
	st := interaction.State{SelectedID: "KE-30", HoveredName: "Mombasa County"}

	for _, b := range testBoundaries {
		assert.Equal(t, ColorFor(b, ds, st, plain), ColorFor(b, ds, st, memo), "boundary %s", b)
	}
}

func TestRampFor_UnknownStatusFallsBackToPending(t *testing.T) {
	require.Equal(t, pendingRamp, RampFor(model.AuditStatus("forensic")))
	require.Equal(t, pendingRamp, RampFor(model.AuditPending))
}

func TestRampFor_ShadesAreDistinctWithinEachRamp(t *testing.T) {
	for _, status := range model.AllAuditStatuses {
		ramp := RampFor(status)
		shades := map[string]bool{
			string(ramp.Base):   true,
			string(ramp.Hover):  true,
			string(ramp.Active): true,
			string(ramp.Muted):  true,
		}
		assert.Len(t, shades, 4, "ramp for %s reuses a shade", status)
		assert.NotContains(t, shades, string(NoData), "ramp for %s collides with the no-data color", status)
	}
}
