package interaction

import (
	"sync"

	"github.com/kauntidev/kaunti/internal/model"
)

// Coordinator serializes every interaction transition against one dataset.
// Mutators build the next State from the current one and swap it in under
// the write lock; State() hands out the current snapshot by value, so
// readers (the render loop, the HTTP facade) never observe a half-applied
// transition.
type Coordinator struct {
	mu sync.RWMutex
	ds model.Dataset
	st State
}

// New returns a Coordinator in the mount state for the given dataset.
func New(ds model.Dataset) *Coordinator {
	return &Coordinator{ds: ds}
}

// State returns the current snapshot.
func (c *Coordinator) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.st
}

// Dataset returns the dataset the coordinator is currently working over.
func (c *Coordinator) Dataset() model.Dataset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ds
}

// Len returns the number of records in the current dataset.
func (c *Coordinator) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ds.Len()
}

// PointerEnter records the boundary name under the pointer.
func (c *Coordinator) PointerEnter(boundaryName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.st
	next.HoveredName = boundaryName
	c.st = next
}

// PointerLeave clears the hover, but only if the leave event names the
// boundary that is actually hovered. A leave for a previously hovered
// boundary that arrives after the pointer already entered another one must
// not wipe the newer hover.
func (c *Coordinator) PointerLeave(boundaryName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.HoveredName != boundaryName {
		return
	}
	next := c.st
	next.HoveredName = ""
	c.st = next
}

// Click toggles the explicit selection. Clicking the selected record
// deselects it; clicking another record moves the selection. An ID that is
// not in the current dataset leaves the state untouched, so a click raced
// against a dataset swap cannot select a ghost.
func (c *Coordinator) Click(recordID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if recordID == "" {
		return
	}
	if _, ok := c.ds.IndexByID(recordID); !ok {
		return
	}
	next := c.st
	if next.SelectedID == recordID {
		next.SelectedID = ""
	} else {
		next.SelectedID = recordID
	}
	c.st = next
}

// ClearSelection drops any explicit selection.
func (c *Coordinator) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.SelectedID == "" {
		return
	}
	next := c.st
	next.SelectedID = ""
	c.st = next
}

// Tick advances the rotation cursor by one, wrapping at the end of the
// record list. While a county is selected the tick lands without effect;
// rotation resumes from the same cursor once the selection clears. An empty
// record list also leaves the cursor alone.
func (c *Coordinator) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.SelectedID != "" {
		return
	}
	n := c.ds.Len()
	if n == 0 {
		return
	}
	next := c.st
	next.RotationIndex = (next.RotationIndex + 1) % n
	c.st = next
}

// SetIndex moves the rotation cursor to i, clamped into the current record
// list, and clears any explicit selection so the cursor is immediately the
// emphasized county again.
func (c *Coordinator) SetIndex(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.st
	next.RotationIndex = clampIndex(i, c.ds.Len())
	next.SelectedID = ""
	c.st = next
}

// ToggleDisplayMode flips between overview and focus.
func (c *Coordinator) ToggleDisplayMode() {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.st
	next.DisplayMode = next.DisplayMode.Toggle()
	c.st = next
}

// CycleAnimationMode advances to the next rotation style.
func (c *Coordinator) CycleAnimationMode() {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.st
	next.AnimationMode = next.AnimationMode.Next()
	c.st = next
}

// SetDataset swaps in a new dataset. The rotation cursor is clamped into the
// new list, and the selection survives only if the new list still carries
// the selected ID.
func (c *Coordinator) SetDataset(ds model.Dataset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ds = ds
	next := c.st
	next.RotationIndex = clampIndex(next.RotationIndex, ds.Len())
	if next.SelectedID != "" {
		if _, ok := ds.IndexByID(next.SelectedID); !ok {
			next.SelectedID = ""
		}
	}
	c.st = next
}

// Emphasized returns the single emphasized record: the explicit selection
// when there is one, otherwise the record under the rotation cursor. ok is
// false only when the dataset is empty.
func (c *Coordinator) Emphasized() (model.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.st.SelectedID != "" {
		if i, ok := c.ds.IndexByID(c.st.SelectedID); ok {
			return c.ds.Records[i], true
		}
		return model.Record{}, false
	}
	if c.ds.Empty() {
		return model.Record{}, false
	}
	return c.ds.Records[c.st.RotationIndex], true
}

// clampIndex pins i into [0, n). With an empty list the cursor rests at
// zero until records arrive.
func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
