// Package stepnav tracks which recipe step is in focus when steps are shown
// one at a time. It is driven by swipes, arrow keys and resizes, and knows
// nothing about how steps are drawn.
package stepnav

import (
	"fmt"
	"math"
)

// DefaultMinSwipe is the minimum horizontal travel that counts as a swipe.
const DefaultMinSwipe = 50

type Navigator struct {
	current   int
	total     int
	landscape bool

	minSwipe   float64
	touchStart float64
}

func New(minSwipe float64) *Navigator {
	if minSwipe <= 0 {
		minSwipe = DefaultMinSwipe
	}
	return &Navigator{minSwipe: minSwipe}
}

// SetSteps loads a new recipe's step count and focuses the first step.
func (n *Navigator) SetSteps(total int) {
	if total < 0 {
		total = 0
	}
	n.total = total
	n.current = 0
}

func (n *Navigator) Reset() { n.current = 0 }

func (n *Navigator) Next() bool {
	if n.current < n.total-1 {
		n.current++
		return true
	}
	return false
}

func (n *Navigator) Prev() bool {
	if n.current > 0 {
		n.current--
		return true
	}
	return false
}

func (n *Navigator) TouchStart(x float64) { n.touchStart = x }

// TouchEnd completes a swipe. A leftward swipe moves to the next step, a
// rightward one to the previous step. Short swipes and swipes outside
// landscape mode are ignored.
func (n *Navigator) TouchEnd(x float64) bool {
	if !n.landscape {
		return false
	}
	diff := n.touchStart - x
	if math.Abs(diff) < n.minSwipe {
		return false
	}
	if diff > 0 {
		return n.Next()
	}
	return n.Prev()
}

// Key handles arrow keys in landscape mode. Both DOM ("ArrowRight") and
// terminal ("right") key names are accepted.
func (n *Navigator) Key(key string) bool {
	if !n.landscape {
		return false
	}
	switch key {
	case "ArrowRight", "right":
		return n.Next()
	case "ArrowLeft", "left":
		return n.Prev()
	}
	return false
}

// Resize updates the orientation. Entering landscape focuses the first step.
func (n *Navigator) Resize(width, height int) {
	landscape := width > height
	if landscape && !n.landscape {
		n.Reset()
	}
	n.landscape = landscape
}

func (n *Navigator) Landscape() bool { return n.landscape }
func (n *Navigator) Current() int    { return n.current }
func (n *Navigator) Total() int      { return n.total }
func (n *Navigator) HasPrev() bool   { return n.current > 0 }
func (n *Navigator) HasNext() bool   { return n.current < n.total-1 }

// Active reports whether step i is the focused one. In portrait no step is
// singled out.
func (n *Navigator) Active(i int) bool {
	return n.landscape && i == n.current
}

func (n *Navigator) Counter() string {
	return fmt.Sprintf("Step %d of %d", n.current+1, n.total)
}
