package timeline

import (
	"fmt"

	"github.com/Hrithik0112/mini-manim/internal/animation"
)

// Mode is how a block composes its animations.
type Mode int

const (
	// Parallel runs every animation from the block start.
	Parallel Mode = iota
	// Sequential splits the block into equal back-to-back slices.
	Sequential
)

func (m Mode) String() string {
	switch m {
	case Parallel:
		return "parallel"
	case Sequential:
		return "sequential"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode resolves "sequential" or "parallel"; empty means parallel.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "parallel":
		return Parallel, nil
	case "sequential", "sequence":
		return Sequential, nil
	}
	return 0, fmt.Errorf("unknown block mode %q", s)
}

// Active is an animation paired with the linear progress to apply.
type Active struct {
	Animation *animation.Animation
	Progress  float64
}

// Block groups animations over a fixed duration.
type Block struct {
	Animations []*animation.Animation
	Duration   float64
	Mode       Mode
}

// NewBlock creates a block; negative durations are treated as zero.
func NewBlock(mode Mode, anims []*animation.Animation, duration float64) *Block {
	if duration < 0 {
		duration = 0
	}
	return &Block{Animations: anims, Duration: duration, Mode: mode}
}

// SliceDuration is the per-animation slice of a sequential block, or the
// whole duration for a parallel one.
func (b *Block) SliceDuration() float64 {
	if b.Mode == Sequential && len(b.Animations) > 0 {
		return b.Duration / float64(len(b.Animations))
	}
	return b.Duration
}

// ActiveAt returns the animations to apply at local time t in block order.
//
// Once t reaches Duration every animation is reported at 1.0. In a
// sequential block, finished slices are reported at 1.0 and slices that
// have not started yet are left out.
func (b *Block) ActiveAt(t float64) []Active {
	if len(b.Animations) == 0 || t < 0 {
		return nil
	}
	if t >= b.Duration {
		return b.Completed()
	}

	active := make([]Active, 0, len(b.Animations))
	if b.Mode == Sequential {
		d := b.SliceDuration()
		for i, a := range b.Animations {
			start := float64(i) * d
			end := float64(i+1) * d
			switch {
			case t >= end:
				active = append(active, Active{a, 1})
			case t >= start:
				active = append(active, Active{a, (t - start) / d})
			}
		}
		return active
	}

	for _, a := range b.Animations {
		d := a.Duration
		if d > b.Duration {
			d = b.Duration
		}
		p := 1.0
		if d > 0 && t < d {
			p = t / d
		}
		active = append(active, Active{a, p})
	}
	return active
}

// Completed reports every animation at progress 1.0.
func (b *Block) Completed() []Active {
	out := make([]Active, len(b.Animations))
	for i, a := range b.Animations {
		out[i] = Active{a, 1}
	}
	return out
}

// arm captures snapshots in the order the animations would first be
// evaluated: parallel animations all see the state before the block,
// sequential ones see their predecessor's end state. Each animation is
// left pinned at 1.0. seen is called before an animation touches its target.
func (b *Block) arm(seen func(*animation.Animation) error) error {
	armOne := func(a *animation.Animation) error {
		if err := seen(a); err != nil {
			return err
		}
		if a.Armed() {
			return nil
		}
		return a.Arm()
	}

	if b.Mode == Sequential {
		for _, a := range b.Animations {
			if err := armOne(a); err != nil {
				return err
			}
			if err := a.Evaluate(1); err != nil {
				return err
			}
		}
		return nil
	}

	for _, a := range b.Animations {
		if err := armOne(a); err != nil {
			return err
		}
	}
	for _, a := range b.Animations {
		if err := a.Evaluate(1); err != nil {
			return err
		}
	}
	return nil
}
