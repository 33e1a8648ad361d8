package interaction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRotator_DefaultInterval(t *testing.T) {
	r := NewRotator(New(threeCounties()), 0)
	assert.Equal(t, DefaultRotationInterval, r.interval)

	r = NewRotator(New(threeCounties()), -time.Second)
	assert.Equal(t, DefaultRotationInterval, r.interval)

	r = NewRotator(New(threeCounties()), 250*time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, r.interval)
}

func TestRotator_RunAdvancesUntilCanceled(t *testing.T) {
	c := New(threeCounties())
	r := NewRotator(c, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return c.State().RotationIndex != 0
	}, time.Second, time.Millisecond, "rotation never advanced")

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("rotator did not stop after cancel")
	}
}

func TestRotator_TicksLandWithoutEffectWhileSelected(t *testing.T) {
	c := New(threeCounties())
	c.Click("KE-30")
	r := NewRotator(c, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_ = r.Run(ctx)

	assert.Equal(t, 0, c.State().RotationIndex, "selection holds the cursor in place")
	assert.Equal(t, "KE-30", c.State().SelectedID)
}

func TestAnimationMode_Intervals(t *testing.T) {
	assert.Equal(t, 4*time.Second, AnimGlide.Interval())
	assert.Equal(t, 2*time.Second, AnimPulse.Interval())
	assert.Equal(t, 7*time.Second, AnimStep.Interval())
}

func TestAnimationMode_Strings(t *testing.T) {
	assert.Equal(t, "glide", AnimGlide.String())
	assert.Equal(t, "pulse", AnimPulse.String())
	assert.Equal(t, "step", AnimStep.String())
}

func TestDisplayMode_Strings(t *testing.T) {
	assert.Equal(t, "overview", ModeOverview.String())
	assert.Equal(t, "focus", ModeFocus.String())
	assert.Equal(t, "focus", ModeOverview.Toggle().String())
}
