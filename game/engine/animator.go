package engine

import (
	"errors"
	"time"
)

var ErrAnimationBusy = errors.New("animation already in progress")

// Animation is the visual state of one sliding tile. The logical grid
// already holds the post-move positions the instant an animation starts;
// the animation only lags the visuals behind.
type Animation struct {
	TileID int
	From   Cell
	To     Cell
	T      float64 // elapsed fraction in [0, 1]
}

// Animator owns at most one in-flight Animation and advances it per tick.
// A completed animation is discarded on the next query.
type Animator struct {
	duration float64 // seconds
	anim     *Animation
}

// NewAnimator creates an animator with the given slide duration.
func NewAnimator(duration time.Duration) *Animator {
	secs := duration.Seconds()
	if secs <= 0 {
		secs = float64(DefaultAnimationMs) / 1000
	}
	return &Animator{duration: secs}
}

// Duration returns the slide duration in seconds.
func (a *Animator) Duration() float64 {
	return a.duration
}

// Start begins animating a tile slide. It fails with ErrAnimationBusy while
// a previous slide is still in progress.
func (a *Animator) Start(tileID int, from, to Cell) error {
	if a.Busy() {
		return ErrAnimationBusy
	}
	a.anim = &Animation{TileID: tileID, From: from, To: to}
	return nil
}

// Advance moves the animation forward by dt seconds, clamping at completion.
func (a *Animator) Advance(dt float64) {
	if a.anim == nil {
		return
	}
	a.anim.T += dt / a.duration
	if a.anim.T >= 1 {
		a.anim.T = 1
	}
}

// Busy reports whether a slide is still visually in progress.
func (a *Animator) Busy() bool {
	return a.current() != nil
}

// Current returns the in-flight animation, or false when idle.
func (a *Animator) Current() (Animation, bool) {
	anim := a.current()
	if anim == nil {
		return Animation{}, false
	}
	return *anim, true
}

// Offset returns the eased fractional displacement of the moving tile from
// its source cell, in cell units: draw the tile at From + (dx, dy). The
// second value is false while no animation is in flight.
func (a *Animator) Offset() (dx, dy float64, ok bool) {
	anim := a.current()
	if anim == nil {
		return 0, 0, false
	}
	eased := easeOut(anim.T)
	dx = eased * float64(anim.To.Col-anim.From.Col)
	dy = eased * float64(anim.To.Row-anim.From.Row)
	return dx, dy, true
}

// Cancel discards any in-flight animation outright. Used by reset; the
// animation owns no resources, so there is nothing to unwind.
func (a *Animator) Cancel() {
	a.anim = nil
}

// current drops a completed animation and returns whatever remains.
func (a *Animator) current() *Animation {
	if a.anim != nil && a.anim.T >= 1 {
		a.anim = nil
	}
	return a.anim
}

// easeOut decelerates toward the destination cell.
func easeOut(t float64) float64 {
	return t * (2 - t)
}
