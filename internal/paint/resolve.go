package paint

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kauntidev/kaunti/internal/interaction"
	"github.com/kauntidev/kaunti/internal/model"
)

// RegionResolver matches a rendered boundary name to a record index. Both
// match.Resolver and its memoizing wrapper satisfy it.
type RegionResolver interface {
	Resolve(boundaryName string, ds model.Dataset) (int, bool)
}

// ColorFor picks the shade for one boundary. The rules apply strictly in
// order, so at most one shade ever applies:
//
//  1. no matching record: NoData, whatever the interaction state says
//  2. the boundary's record is selected: Active
//  3. nothing is selected and the record sits under the rotation cursor: Active
//  4. the boundary is hovered: Hover
//  5. focus mode: Muted
//  6. otherwise: Base
//
// Selection beats rotation by construction: while a selection exists the
// rotation cursor confers no emphasis anywhere.
func ColorFor(boundaryName string, ds model.Dataset, st interaction.State, r RegionResolver) lipgloss.Color {
	shade, i, ok := Classify(boundaryName, ds, st, r)
	if !ok {
		return NoData
	}
	return RampFor(ds.Records[i].Audit.Status).Pick(shade)
}
