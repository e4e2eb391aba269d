// Package scroll provides the frame-stepped animation runtime used for
// animated scrolls. Nothing here blocks: the host advances animations once
// per frame and completion is reported through callbacks.
package scroll

import "math"

const (
	// DefaultSpeed is the fraction of the remaining distance covered per frame.
	DefaultSpeed = 0.18
	// DefaultEpsilon is the distance under which an animation snaps to its target.
	DefaultEpsilon = 0.5
)

// Lerp for smooth scrolling
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Animator eases a single value toward a target, one frame per Step.
// Only one animation runs at a time; starting another finishes the
// in-flight one with done(false).
type Animator struct {
	Speed   float64
	Epsilon float64

	value   float64
	target  float64
	step    func(v float64)
	done    func(finished bool)
	running bool
}

// NewAnimator returns an Animator using the default speed and epsilon.
func NewAnimator() *Animator {
	return &Animator{Speed: DefaultSpeed, Epsilon: DefaultEpsilon}
}

// Start begins animating from toward to. step receives every intermediate value
// including the final one. done is invoked exactly once.
func (a *Animator) Start(from, to float64, step func(v float64), done func(finished bool)) {
	a.finish(false)

	a.value = from
	a.target = to
	a.step = step
	a.done = done
	a.running = true

	if math.Abs(to-from) <= a.epsilon() {
		a.value = to
		a.emit()
		a.finish(true)
	}
}

// Step advances the running animation by one frame.
func (a *Animator) Step() {
	if !a.running {
		return
	}
	a.value = Lerp(a.value, a.target, a.speed())
	if math.Abs(a.target-a.value) <= a.epsilon() {
		a.value = a.target
		a.emit()
		a.finish(true)
		return
	}
	a.emit()
}

// Cancel stops the running animation, reporting done(false).
func (a *Animator) Cancel() {
	a.finish(false)
}

// Running reports whether an animation is in flight.
func (a *Animator) Running() bool {
	return a.running
}

// Target is the value the running (or last) animation is heading to.
func (a *Animator) Target() float64 {
	return a.target
}

func (a *Animator) emit() {
	if a.step != nil {
		a.step(a.value)
	}
}

func (a *Animator) finish(finished bool) {
	if !a.running {
		return
	}
	done := a.done
	a.running = false
	a.step = nil
	a.done = nil
	if done != nil {
		done(finished)
	}
}

func (a *Animator) speed() float64 {
	if a.Speed <= 0 || a.Speed > 1 {
		return DefaultSpeed
	}
	return a.Speed
}

func (a *Animator) epsilon() float64 {
	if a.Epsilon <= 0 {
		return DefaultEpsilon
	}
	return a.Epsilon
}
