// Package animation turns declared attribute transitions into interpolated
// target state.
//
// Every Animation follows the same two-phase protocol: it is constructed
// unarmed, Arm captures the initial snapshot from the target and derives the
// final one through the Kind, and from then on Evaluate writes the
// interpolated state for any progress in [0, 1]. Kinds only decide which
// attributes are governed and how the final snapshot follows from the
// initial one.
package animation

import (
	"fmt"

	"github.com/Hrithik0112/mini-manim/internal/easing"
)

// Target is an object with named, mutable attributes.
type Target interface {
	Get(key string) (Value, error)
	Set(key string, v Value) error
}

// Kind describes one variety of animation.
type Kind interface {
	Name() string
	// Keys lists the governed attributes.
	Keys() []string
	// Final derives the end state from the captured initial state.
	Final(initial Snapshot) (Snapshot, error)
}

// Interpolator is implemented by kinds that blend values in a non-linear
// space. Interpolate is only called for eased progress strictly between
// the endpoints.
type Interpolator interface {
	Interpolate(initial, final Snapshot, eased float64) (Snapshot, error)
}

// Starter is implemented by kinds whose start values are fixed rather than
// read from the target (FadeIn always starts invisible).
type Starter interface {
	Start(captured Snapshot) Snapshot
}

// Animation drives one Kind against one target.
type Animation struct {
	Duration float64
	Easing   easing.Func

	target  Target
	kind    Kind
	initial Snapshot
	final   Snapshot
	armed   bool
}

// New creates an unarmed animation. A nil easing means linear.
func New(target Target, kind Kind, duration float64, ease easing.Func) *Animation {
	if duration < 0 {
		duration = 0
	}
	return &Animation{
		Duration: duration,
		Easing:   easing.OrLinear(ease),
		target:   target,
		kind:     kind,
	}
}

func (a *Animation) Target() Target { return a.target }
func (a *Animation) Kind() Kind     { return a.kind }
func (a *Animation) Armed() bool    { return a.armed }

// Initial returns the captured start state; empty until armed.
func (a *Animation) Initial() Snapshot { return a.initial }

// Final returns the derived end state; empty until armed.
func (a *Animation) Final() Snapshot { return a.final }

func (a *Animation) String() string {
	return fmt.Sprintf("%s(%.3fs)", a.kind.Name(), a.Duration)
}

// Arm captures the initial snapshot from the target's current state and
// derives the final one. It may only succeed once.
func (a *Animation) Arm() error {
	if a.armed {
		return fmt.Errorf("%s: %w", a.kind.Name(), ErrAlreadyArmed)
	}

	initial, err := Capture(a.target, a.kind.Keys())
	if err != nil {
		return fmt.Errorf("%s: %w", a.kind.Name(), err)
	}
	if s, ok := a.kind.(Starter); ok {
		started := s.Start(initial)
		if err := initial.SameKeys(started); err != nil {
			return fmt.Errorf("%s start: %w", a.kind.Name(), err)
		}
		initial = started
	}

	final, err := a.kind.Final(initial)
	if err != nil {
		return fmt.Errorf("%s: %w", a.kind.Name(), err)
	}
	if err := initial.SameKeys(final); err != nil {
		return fmt.Errorf("%s final: %w", a.kind.Name(), err)
	}

	a.initial, a.final, a.armed = initial, final, true
	return nil
}

// Progress converts elapsed seconds to clamped linear progress. A zero
// duration is complete as soon as it starts.
func (a *Animation) Progress(elapsed float64) float64 {
	return progress(elapsed, a.Duration)
}

// State returns the interpolated snapshot at linear progress p. The
// caller clamps p; the animation does not.
func (a *Animation) State(p float64) (Snapshot, error) {
	if !a.armed {
		return Snapshot{}, fmt.Errorf("%s: %w", a.kind.Name(), ErrNotArmed)
	}

	eased := a.Easing(p)
	switch eased {
	case 0:
		return a.initial, nil
	case 1:
		return a.final, nil
	}

	if in, ok := a.kind.(Interpolator); ok {
		return in.Interpolate(a.initial, a.final, eased)
	}
	return LerpSnapshot(a.initial, a.final, eased)
}

// Evaluate writes the state at progress p onto the animation's own target.
func (a *Animation) Evaluate(p float64) error {
	return a.ApplyTo(a.target, p)
}

// ApplyTo writes the state at progress p onto t, which may be a clone of
// the animation's target.
func (a *Animation) ApplyTo(t Target, p float64) error {
	s, err := a.State(p)
	if err != nil {
		return err
	}
	if err := Restore(t, s); err != nil {
		return fmt.Errorf("%s: %w", a.kind.Name(), err)
	}
	return nil
}

func progress(elapsed, duration float64) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return elapsed / duration
}
