package paint

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/kauntidev/kaunti/internal/interaction"
	"github.com/kauntidev/kaunti/internal/match"
	"github.com/kauntidev/kaunti/internal/model"
)

func TestClassify_AgreesWithColorFor(t *testing.T) {
	ds := fourCounties()
	r := match.NewResolver(nil)

	states := []interaction.State{
		{},
		{RotationIndex: 2},
		{HoveredName: "Baringo County"},
		{SelectedID: "KE-22", HoveredName: "Mombasa County"},
		{DisplayMode: interaction.ModeFocus, RotationIndex: 1},
		{SelectedID: "KE-47", RotationIndex: 3, HoveredName: "Kiambu County", DisplayMode: interaction.ModeFocus},
	}
	for _, st := range states {
		for _, b := range testBoundaries {
			shade, i, ok := Classify(b, ds, st, r)
			if !ok {
				assert.Equal(t, ShadeNone, shade)
				assert.Equal(t, NoData, ColorFor(b, ds, st, r))
				continue
			}
			ramp := RampFor(ds.Records[i].Audit.Status)
			assert.Equal(t, ColorFor(b, ds, st, r), ramp.Pick(shade), "boundary %s state %+v", b, st)
		}
	}
}

func TestClassify_ReturnsMatchedIndex(t *testing.T) {
	ds := fourCounties()
	r := match.NewResolver(nil)

	shade, i, ok := Classify("Nairobi City County", ds, interaction.State{SelectedID: "KE-47"}, r)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, ShadeActive, shade)

	_, _, ok = Classify("Lamu County", ds, interaction.State{}, r)
	assert.False(t, ok)
}

func TestShade_String(t *testing.T) {
	assert.Equal(t, "nodata", ShadeNone.String())
	assert.Equal(t, "base", ShadeBase.String())
	assert.Equal(t, "hover", ShadeHover.String())
	assert.Equal(t, "active", ShadeActive.String())
	assert.Equal(t, "muted", ShadeMuted.String())
}

func TestPick_NoneFallsOutsideTheRamp(t *testing.T) {
	for _, status := range model.AllAuditStatuses {
		assert.Equal(t, NoData, RampFor(status).Pick(ShadeNone))
	}
}

// TestRampTable_Golden pins every shade hex. The dashboard's whole visual
// contract rides on these values staying distinct and stable, so a ramp edit
// has to show up in review as a golden diff.
func TestRampTable_Golden(t *testing.T) {
	var b strings.Builder
	for _, status := range model.AllAuditStatuses {
		ramp := RampFor(status)
		fmt.Fprintf(&b, "%-10s base=%s hover=%s active=%s muted=%s\n",
			status, ramp.Base, ramp.Hover, ramp.Active, ramp.Muted)
	}
	fmt.Fprintf(&b, "%-10s %s\n", "nodata", NoData)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "ramps", []byte(b.String()))
}
