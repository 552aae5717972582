package stepnav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func landscape(steps int) *Navigator {
	n := New(0)
	n.SetSteps(steps)
	n.Resize(1024, 768)
	return n
}

func TestNextPrevClamp(t *testing.T) {
	n := landscape(3)
	assert.Equal(t, "Step 1 of 3", n.Counter())
	assert.False(t, n.HasPrev())
	assert.False(t, n.Prev())

	assert.True(t, n.Next())
	assert.True(t, n.Next())
	assert.False(t, n.Next())
	assert.Equal(t, 2, n.Current())
	assert.False(t, n.HasNext())
	assert.Equal(t, "Step 3 of 3", n.Counter())
}

func TestSwipe(t *testing.T) {
	n := landscape(3)

	n.TouchStart(300)
	assert.False(t, n.TouchEnd(280), "short swipe")
	assert.Equal(t, 0, n.Current())

	n.TouchStart(300)
	assert.True(t, n.TouchEnd(100))
	assert.Equal(t, 1, n.Current())

	n.TouchStart(100)
	assert.True(t, n.TouchEnd(300))
	assert.Equal(t, 0, n.Current())
}

func TestPortraitIgnoresGesturesAndKeys(t *testing.T) {
	n := New(10)
	n.SetSteps(3)
	n.Resize(400, 800)

	assert.False(t, n.Key("ArrowRight"))
	n.TouchStart(300)
	assert.False(t, n.TouchEnd(0))
	assert.Equal(t, 0, n.Current())
	assert.False(t, n.Active(0))

	// buttons still work
	assert.True(t, n.Next())
}

func TestKeys(t *testing.T) {
	n := landscape(2)
	assert.True(t, n.Key("ArrowRight"))
	assert.True(t, n.Active(1))
	assert.True(t, n.Key("left"))
	assert.False(t, n.Key("up"))
}

func TestResizeIntoLandscapeResets(t *testing.T) {
	n := landscape(4)
	n.Next()
	n.Next()

	n.Resize(1024, 700)
	assert.Equal(t, 2, n.Current(), "staying in landscape keeps the step")

	n.Resize(400, 800)
	n.Resize(800, 400)
	assert.Equal(t, 0, n.Current())
}

func TestSetStepsEmpty(t *testing.T) {
	n := landscape(0)
	assert.False(t, n.Next())
	assert.False(t, n.HasNext())
	n.SetSteps(-1)
	assert.Equal(t, 0, n.Total())
}
