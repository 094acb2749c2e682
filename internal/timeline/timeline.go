// Package timeline schedules animation blocks on an absolute clock and
// resolves any frame number to the animations that must be applied.
package timeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/Hrithik0112/mini-manim/internal/animation"
)

// DefaultFPS is used when a timeline is created with a non-positive rate.
const DefaultFPS = 30

// frameEpsilon absorbs float error in total*fps (2.3*30 = 68.99999999999999).
const frameEpsilon = 1e-9

// Placement is a block and its absolute start time in seconds.
type Placement struct {
	Block *Block
	Start float64
}

type pristine struct {
	target animation.Target
	snap   animation.Snapshot
}

// Timeline is an append-only sequence of contiguous blocks.
//
// Targets must be comparable (pointers) since the timeline tracks their
// pristine state.
type Timeline struct {
	fps    int
	blocks []Placement
	total  float64

	pristine []pristine
	index    map[animation.Target]int
}

// New creates an empty timeline.
func New(fps int) *Timeline {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Timeline{fps: fps, index: make(map[animation.Target]int)}
}

func (t *Timeline) FPS() int               { return t.fps }
func (t *Timeline) TotalDuration() float64 { return t.total }
func (t *Timeline) Len() int               { return len(t.blocks) }

// Blocks returns the placements in timeline order.
func (t *Timeline) Blocks() []Placement {
	out := make([]Placement, len(t.blocks))
	copy(out, t.blocks)
	return out
}

// AppendSequential appends a block running anims one after another, each
// getting duration/len(anims) seconds.
func (t *Timeline) AppendSequential(anims []*animation.Animation, duration float64) *Block {
	return t.Append(NewBlock(Sequential, anims, duration))
}

// AppendParallel appends a block running anims together.
func (t *Timeline) AppendParallel(anims []*animation.Animation, duration float64) *Block {
	return t.Append(NewBlock(Parallel, anims, duration))
}

// Append places b at the current end of the timeline.
func (t *Timeline) Append(b *Block) *Block {
	t.blocks = append(t.blocks, Placement{Block: b, Start: t.total})
	t.total += b.Duration
	return b
}

// Reset drops every block. Animations keep whatever they captured.
func (t *Timeline) Reset() {
	t.blocks = nil
	t.total = 0
	t.pristine = nil
	t.index = make(map[animation.Target]int)
}

// FrameTime converts a zero-based frame index to seconds.
func (t *Timeline) FrameTime(frame int) float64 {
	return float64(frame) / float64(t.fps)
}

// TotalFrameCount is floor(total*fps)+1 so the frame where everything
// reaches 1.0 is always rendered.
func (t *Timeline) TotalFrameCount() int {
	return int(math.Floor(t.total*float64(t.fps)+frameEpsilon)) + 1
}

// ActiveAt resolves frame to the animations to apply, in timeline order.
// Blocks that have not started contribute nothing; finished blocks report
// every animation at 1.0.
func (t *Timeline) ActiveAt(frame int) []Active {
	now := t.FrameTime(frame)

	var active []Active
	for _, p := range t.blocks {
		if now < p.Start {
			continue
		}
		local := now - p.Start
		if local >= p.Block.Duration {
			active = append(active, p.Block.Completed()...)
			continue
		}
		active = append(active, p.Block.ActiveAt(local)...)
	}
	return active
}

// Arm captures every animation's snapshots in timeline order and then puts
// all touched targets back into their pristine state. It must run before
// frames are queried out of order. Calling it again after more blocks were
// appended arms only the new animations.
func (t *Timeline) Arm() error {
	if err := t.restore(nil); err != nil {
		return err
	}
	for i, p := range t.blocks {
		if err := p.Block.arm(t.remember); err != nil {
			err = fmt.Errorf("block %d (%s at %.3fs): %w", i, p.Block.Mode, p.Start, err)
			// Earlier blocks left their targets pinned at their end state.
			return errors.Join(err, t.restore(nil))
		}
	}
	return t.restore(nil)
}

// remember records the pristine value of every key a not-yet-seen
// animation governs.
func (t *Timeline) remember(a *animation.Animation) error {
	target := a.Target()
	i, ok := t.index[target]
	if !ok {
		i = len(t.pristine)
		t.index[target] = i
		t.pristine = append(t.pristine, pristine{target: target, snap: animation.NewSnapshot(nil)})
	}

	snap := t.pristine[i].snap
	for _, k := range a.Kind().Keys() {
		if _, ok := snap.Get(k); ok {
			continue
		}
		v, err := target.Get(k)
		if err != nil {
			return fmt.Errorf("%s: capture %s: %w", a.Kind().Name(), k, err)
		}
		snap = snap.With(k, v)
	}
	t.pristine[i].snap = snap
	return nil
}

// restore writes pristine state onto targets, through resolve if given.
func (t *Timeline) restore(resolve func(animation.Target) animation.Target) error {
	for _, p := range t.pristine {
		target := p.target
		if resolve != nil {
			target = resolve(target)
		}
		if err := animation.Restore(target, p.snap); err != nil {
			return err
		}
	}
	return nil
}

// Seek puts every animated target into its state at frame, independent of
// which frames were visited before.
func (t *Timeline) Seek(frame int) error {
	return t.SeekOn(frame, nil)
}

// SeekOn is Seek against substitute targets: resolve maps each animated
// target to the object that should receive the state (a per-frame clone
// when frames are rendered concurrently). A nil resolve uses the
// originals.
func (t *Timeline) SeekOn(frame int, resolve func(animation.Target) animation.Target) error {
	if err := t.restore(resolve); err != nil {
		return fmt.Errorf("frame %d: %w", frame, err)
	}
	for _, a := range t.ActiveAt(frame) {
		target := a.Animation.Target()
		if resolve != nil {
			target = resolve(target)
		}
		if err := a.Animation.ApplyTo(target, a.Progress); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
	}
	return nil
}
