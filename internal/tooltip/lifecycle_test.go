package tooltip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycle_ZeroValueHidden(t *testing.T) {
	var l Lifecycle
	assert.False(t, l.Visible())
	assert.Empty(t, l.Current())
}

func TestLifecycle_EnterRegionShows(t *testing.T) {
	var l Lifecycle
	l.EnterRegion("Kilifi County")

	assert.True(t, l.Visible())
	assert.Equal(t, "Kilifi County", l.Current())
}

func TestLifecycle_EmptyNameIsNoOp(t *testing.T) {
	var l Lifecycle
	l.EnterRegion("")
	assert.False(t, l.Visible())
}

func TestLifecycle_LeaveRegionHidesWithoutPopover(t *testing.T) {
	var l Lifecycle
	l.EnterRegion("Kilifi County")
	l.LeaveRegion("Kilifi County")

	assert.False(t, l.Visible())
	assert.Empty(t, l.Current())
}

func TestLifecycle_StaleLeaveIsIgnored(t *testing.T) {
	var l Lifecycle
	l.EnterRegion("Kilifi County")
	l.EnterRegion("Kwale County")
	// The leave for the earlier boundary arrives after the newer enter.
	l.LeaveRegion("Kilifi County")

	assert.True(t, l.Visible())
	assert.Equal(t, "Kwale County", l.Current())
}

func TestLifecycle_HandOffToPopover(t *testing.T) {
	var l Lifecycle
	l.EnterRegion("Kilifi County")
	// The popover box overlaps the tile, so its enter fires first.
	l.EnterPopover()
	l.LeaveRegion("Kilifi County")

	assert.True(t, l.Visible(), "popover zone keeps the popover up after the region leave")
	assert.Equal(t, "Kilifi County", l.Current())

	l.LeavePopover()
	assert.False(t, l.Visible())
	assert.Empty(t, l.Current())
}

func TestLifecycle_HandOffBackToRegion(t *testing.T) {
	var l Lifecycle
	l.EnterRegion("Kilifi County")
	l.EnterPopover()
	l.LeaveRegion("Kilifi County")

	// Pointer travels from the popover back onto the tile.
	l.EnterRegion("Kilifi County")
	l.LeavePopover()

	assert.True(t, l.Visible())
	assert.Equal(t, "Kilifi County", l.Current())
}

func TestLifecycle_EnterPopoverWhileHiddenIsNoOp(t *testing.T) {
	var l Lifecycle
	l.EnterPopover()
	assert.False(t, l.Visible())

	// And it must not have armed anything for later.
	l.EnterRegion("Kilifi County")
	l.LeaveRegion("Kilifi County")
	assert.False(t, l.Visible())
}

func TestLifecycle_SwitchingRegionsSwapsContent(t *testing.T) {
	var l Lifecycle
	l.EnterRegion("Kilifi County")
	l.EnterPopover()
	l.EnterRegion("Kwale County")

	assert.Equal(t, "Kwale County", l.Current())

	// Only the new boundary's leave counts now.
	l.LeaveRegion("Kwale County")
	assert.True(t, l.Visible(), "popover zone is still armed")
	l.LeavePopover()
	assert.False(t, l.Visible())
}

func TestLifecycle_LeavePopoverWhenNeverEntered(t *testing.T) {
	var l Lifecycle
	l.EnterRegion("Kilifi County")
	l.LeavePopover()

	assert.True(t, l.Visible(), "a stray popover leave must not hide a region hover")
	assert.Equal(t, "Kilifi County", l.Current())
}

func TestLifecycle_Reset(t *testing.T) {
	var l Lifecycle
	l.EnterRegion("Kilifi County")
	l.EnterPopover()

	l.Reset()

	assert.False(t, l.Visible())
	assert.Empty(t, l.Current())
}
