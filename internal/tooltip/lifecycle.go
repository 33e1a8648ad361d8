// Package tooltip decides when the county detail popover is on screen. The
// popover must survive the pointer travelling from the county tile onto the
// popover itself, so visibility is an OR over two zones rather than a
// single hover flag.
package tooltip

// Lifecycle tracks the pointer across the two zones that keep a popover
// alive: the county's boundary shape and the popover's own box. It is
// purely edge-triggered; there are no wall-clock grace timers. The host
// must therefore lay the popover zone out overlapping or abutting the
// boundary shape (padding counts as popover), so that on a hand-off the
// enter event for one zone fires before the leave event for the other.
//
// Lifecycle is not safe for concurrent use; it belongs to the single event
// loop that feeds it pointer events.
type Lifecycle struct {
	current   string
	inRegion  bool
	inPopover bool
}

// Visible reports whether the popover should be on screen.
func (l *Lifecycle) Visible() bool {
	return l.inRegion || l.inPopover
}

// Current returns the boundary name the popover describes, or "" while
// hidden.
func (l *Lifecycle) Current() string {
	return l.current
}

// EnterRegion arms the region zone and pins the popover to the given
// boundary. Entering a different boundary swaps the content in place, even
// while the pointer also sits on the popover.
func (l *Lifecycle) EnterRegion(boundaryName string) {
	if boundaryName == "" {
		return
	}
	l.inRegion = true
	l.current = boundaryName
}

// LeaveRegion disarms the region zone. Leave events name the boundary they
// are for; a leave for anything other than the current boundary is stale
// and ignored. With the popover zone still armed the popover stays up.
func (l *Lifecycle) LeaveRegion(boundaryName string) {
	if boundaryName != l.current {
		return
	}
	l.inRegion = false
	if !l.inPopover {
		l.current = ""
	}
}

// EnterPopover arms the popover zone. A hidden popover cannot be entered,
// so a spurious enter while nothing is showing changes nothing.
func (l *Lifecycle) EnterPopover() {
	if !l.Visible() {
		return
	}
	l.inPopover = true
}

// LeavePopover disarms the popover zone, hiding the popover unless the
// pointer is back on the boundary shape.
func (l *Lifecycle) LeavePopover() {
	if !l.inPopover {
		return
	}
	l.inPopover = false
	if !l.inRegion {
		l.current = ""
	}
}

// Reset force-hides the popover, for dataset swaps and screen changes.
func (l *Lifecycle) Reset() {
	l.current = ""
	l.inRegion = false
	l.inPopover = false
}
