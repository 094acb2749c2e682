package animation

import (
	"fmt"
	"strings"

	"github.com/Hrithik0112/mini-manim/internal/easing"
	"github.com/lucasb-eyer/go-colorful"
)

// OpKind names a queued builder operation.
type OpKind int

const (
	OpMoveTo OpKind = iota
	OpShift
	OpScale
	OpRotate
	OpFadeIn
	OpFadeOut
	OpColor
)

var opNames = map[OpKind]string{
	OpMoveTo:  "move_to",
	OpShift:   "shift",
	OpScale:   "scale",
	OpRotate:  "rotate",
	OpFadeIn:  "fade_in",
	OpFadeOut: "fade_out",
	OpColor:   "color",
}

func (k OpKind) String() string {
	if name, ok := opNames[k]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int(k))
}

// ParseOpKind resolves an operation name such as "move_to" or "fade-out".
func ParseOpKind(name string) (OpKind, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for k, n := range opNames {
		if n == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", name)
}

// Op is one queued operation and its parameters.
type Op struct {
	Kind  OpKind
	X, Y  float64 // move_to target, shift delta
	Value float64 // scale factor, rotation angle
	Color colorful.Color
}

// AnimationKind maps the operation to its animation kind.
func (o Op) AnimationKind() Kind {
	switch o.Kind {
	case OpMoveTo:
		return Move{X: o.X, Y: o.Y}
	case OpShift:
		return Shift{DX: o.X, DY: o.Y}
	case OpScale:
		return Scale{Factor: o.Value}
	case OpRotate:
		return Rotate{Angle: o.Value}
	case OpFadeIn:
		return FadeIn{}
	case OpFadeOut:
		return FadeOut{}
	case OpColor:
		return ColorShift{To: o.Color}
	}
	panic(fmt.Sprintf("animation: unhandled op %v", o.Kind))
}

// Builder queues operations against one target.
//
//	anims := animation.Animate(circle).MoveTo(3, 0).Scale(1.5).Build(1, nil)
type Builder struct {
	target Target
	ops    []Op
}

// Animate starts a builder for target.
func Animate(target Target) *Builder {
	return &Builder{target: target}
}

func (b *Builder) MoveTo(x, y float64) *Builder {
	return b.push(Op{Kind: OpMoveTo, X: x, Y: y})
}

func (b *Builder) Shift(dx, dy float64) *Builder {
	return b.push(Op{Kind: OpShift, X: dx, Y: dy})
}

func (b *Builder) Scale(factor float64) *Builder {
	return b.push(Op{Kind: OpScale, Value: factor})
}

func (b *Builder) Rotate(angle float64) *Builder {
	return b.push(Op{Kind: OpRotate, Value: angle})
}

func (b *Builder) FadeIn() *Builder {
	return b.push(Op{Kind: OpFadeIn})
}

func (b *Builder) FadeOut() *Builder {
	return b.push(Op{Kind: OpFadeOut})
}

func (b *Builder) SetColor(c colorful.Color) *Builder {
	return b.push(Op{Kind: OpColor, Color: c})
}

// Push appends an already constructed operation.
func (b *Builder) Push(op Op) *Builder {
	return b.push(op)
}

func (b *Builder) push(op Op) *Builder {
	b.ops = append(b.ops, op)
	return b
}

// Pending returns a copy of the queue.
func (b *Builder) Pending() []Op {
	out := make([]Op, len(b.ops))
	copy(out, b.ops)
	return out
}

// Build materializes the queue, in order, into animations sharing duration
// and easing. An empty queue yields an empty slice.
func (b *Builder) Build(duration float64, ease easing.Func) []*Animation {
	anims := make([]*Animation, 0, len(b.ops))
	for _, op := range b.ops {
		anims = append(anims, New(b.target, op.AnimationKind(), duration, ease))
	}
	return anims
}
