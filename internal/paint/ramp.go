// Package paint turns a boundary on the county map into a terminal color.
// Every audit status owns a four-shade ramp, and a single pure function
// picks the shade from the current interaction state, so a frame is fully
// determined by (dataset, state) and nothing else.
package paint

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kauntidev/kaunti/internal/model"
)

// NoData paints boundaries that resolve to no record in the active fiscal
// year. It sits outside every ramp so a gap in the data can never be
// mistaken for an audit outcome.
const NoData = lipgloss.Color("#374151")

// Ramp is the four shades a county can take once it has matched a record.
type Ramp struct {
	// Base is the resting shade in overview mode.
	Base lipgloss.Color
	// Hover is the lighter highlight while the pointer is on the county.
	Hover lipgloss.Color
	// Active is the deep emphasis shade for the selected or auto-rotated
	// county.
	Active lipgloss.Color
	// Muted is the dimmed shade for non-emphasized counties in focus mode.
	Muted lipgloss.Color
}

var (
	cleanRamp = Ramp{
		Base:   lipgloss.Color("#10b981"),
		Hover:  lipgloss.Color("#34d399"),
		Active: lipgloss.Color("#047857"),
		Muted:  lipgloss.Color("#0f3d31"),
	}
	qualifiedRamp = Ramp{
		Base:   lipgloss.Color("#f59e0b"),
		Hover:  lipgloss.Color("#fbbf24"),
		Active: lipgloss.Color("#b45309"),
		Muted:  lipgloss.Color("#4a3206"),
	}
	adverseRamp = Ramp{
		Base:   lipgloss.Color("#ef4444"),
		Hover:  lipgloss.Color("#f87171"),
		Active: lipgloss.Color("#b91c1c"),
		Muted:  lipgloss.Color("#4c1414"),
	}
	disclaimerRamp = Ramp{
		Base:   lipgloss.Color("#8b5cf6"),
		Hover:  lipgloss.Color("#a78bfa"),
		Active: lipgloss.Color("#6d28d9"),
		Muted:  lipgloss.Color("#2e1f52"),
	}
	pendingRamp = Ramp{
		Base:   lipgloss.Color("#64748b"),
		Hover:  lipgloss.Color("#94a3b8"),
		Active: lipgloss.Color("#475569"),
		Muted:  lipgloss.Color("#27303f"),
	}
)

// RampFor returns the ramp for an audit status. Statuses outside the known
// set take the pending ramp, so an unexpected value in a feed renders as
// "not yet audited" rather than crashing or inventing a verdict.
func RampFor(status model.AuditStatus) Ramp {
	switch status {
	case model.AuditClean:
		return cleanRamp
	case model.AuditQualified:
		return qualifiedRamp
	case model.AuditAdverse:
		return adverseRamp
	case model.AuditDisclaimer:
		return disclaimerRamp
	case model.AuditPending:
		return pendingRamp
	default:
		return pendingRamp
	}
}
