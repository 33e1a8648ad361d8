// Package interaction owns the dashboard's mutable interaction state: which
// county is selected, which is hovered, where the auto-rotation cursor sits,
// and the display/animation modes. State is modeled as a single immutable
// value replaced wholesale on every transition, which keeps the "at most one
// emphasized county" rule structural rather than something to re-check.
package interaction

import "time"

// DisplayMode controls how non-emphasized counties render.
type DisplayMode int

const (
	// ModeOverview shows every matched county at its full base shade.
	ModeOverview DisplayMode = iota
	// ModeFocus mutes everything that is not hovered, selected, or under the
	// rotation cursor.
	ModeFocus
)

// String returns the mode's configuration name.
func (m DisplayMode) String() string {
	if m == ModeFocus {
		return "focus"
	}
	return "overview"
}

// Toggle flips between the two display modes.
func (m DisplayMode) Toggle() DisplayMode {
	if m == ModeFocus {
		return ModeOverview
	}
	return ModeFocus
}

// AnimationMode is a purely cosmetic rotation style. It never feeds into
// color resolution; it only picks the cadence the rotation timer runs at.
type AnimationMode int

const (
	// AnimGlide is the default easy cadence.
	AnimGlide AnimationMode = iota
	// AnimPulse rotates at double speed.
	AnimPulse
	// AnimStep rotates slowly, lingering on each county.
	AnimStep

	animCount = 3
)

// String returns the style's display name.
func (m AnimationMode) String() string {
	switch m {
	case AnimPulse:
		return "pulse"
	case AnimStep:
		return "step"
	default:
		return "glide"
	}
}

// Next advances through the fixed three-style cycle.
func (m AnimationMode) Next() AnimationMode {
	return (m + 1) % animCount
}

// Interval returns the rotation cadence for the style.
func (m AnimationMode) Interval() time.Duration {
	switch m {
	case AnimPulse:
		return 2 * time.Second
	case AnimStep:
		return 7 * time.Second
	default:
		return 4 * time.Second
	}
}

// State is one immutable snapshot of the interaction fields. The zero value
// is the mount state: nothing selected, nothing hovered, rotation at zero,
// overview display, glide animation.
type State struct {
	// SelectedID is the explicitly clicked record's ID, or "" for none.
	SelectedID string
	// HoveredName is the boundary name under the pointer, or "" for none.
	HoveredName string
	// RotationIndex is the auto-rotation cursor into the record list. It is
	// only meaningful while SelectedID is empty, and is always a valid index
	// whenever the record list is non-empty.
	RotationIndex int
	DisplayMode   DisplayMode
	AnimationMode AnimationMode
}

// HasSelection reports whether a county is explicitly selected.
func (s State) HasSelection() bool {
	return s.SelectedID != ""
}

// Hovering reports whether the given boundary name is the hovered one.
func (s State) Hovering(boundaryName string) bool {
	return s.HoveredName != "" && s.HoveredName == boundaryName
}
