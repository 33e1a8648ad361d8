package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kauntidev/kaunti/internal/interaction"
	"github.com/kauntidev/kaunti/internal/model"
)

// rotateMsg fires when the rotation timer elapses. gen ties the message to
// the animation mode that armed it, so a cadence change can orphan the old
// timer instead of running two side by side.
type rotateMsg struct {
	gen int
}

// refreshedMsg carries a freshly fetched dataset.
type refreshedMsg struct {
	ds model.Dataset
}

// refreshFailedMsg reports a refresh that never produced a dataset. The
// dashboard keeps showing the one it has.
type refreshFailedMsg struct {
	err error
}

// rotateCmd arms the rotation timer for one interval of the given mode.
func rotateCmd(mode interaction.AnimationMode, gen int) tea.Cmd {
	return tea.Tick(mode.Interval(), func(time.Time) tea.Msg {
		return rotateMsg{gen: gen}
	})
}
