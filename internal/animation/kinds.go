package animation

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Move animates position to an absolute point.
type Move struct {
	X, Y float64
}

func (Move) Name() string   { return "move_to" }
func (Move) Keys() []string { return []string{KeyPosition} }

func (m Move) Final(initial Snapshot) (Snapshot, error) {
	return initial.With(KeyPosition, Vec2(m.X, m.Y)), nil
}

// Shift animates position by a relative offset.
type Shift struct {
	DX, DY float64
}

func (Shift) Name() string   { return "shift" }
func (Shift) Keys() []string { return []string{KeyPosition} }

func (s Shift) Final(initial Snapshot) (Snapshot, error) {
	pos, _ := initial.Get(KeyPosition)
	x, y := pos.XY()
	return initial.With(KeyPosition, Vec2(x+s.DX, y+s.DY)), nil
}

// Scale multiplies the scale factor.
type Scale struct {
	Factor float64
}

func (Scale) Name() string   { return "scale" }
func (Scale) Keys() []string { return []string{KeyScale} }

func (s Scale) Final(initial Snapshot) (Snapshot, error) {
	v, _ := initial.Get(KeyScale)
	return initial.With(KeyScale, Scalar(v.Float()*s.Factor)), nil
}

// Rotate adds Angle radians. Multi-turn angles are kept as-is.
type Rotate struct {
	Angle float64
}

func (Rotate) Name() string   { return "rotate" }
func (Rotate) Keys() []string { return []string{KeyRotation} }

func (r Rotate) Final(initial Snapshot) (Snapshot, error) {
	v, _ := initial.Get(KeyRotation)
	return initial.With(KeyRotation, Scalar(v.Float()+r.Angle)), nil
}

// FadeIn animates opacity from 0 to 1.
type FadeIn struct{}

func (FadeIn) Name() string   { return "fade_in" }
func (FadeIn) Keys() []string { return []string{KeyOpacity} }

func (FadeIn) Start(captured Snapshot) Snapshot {
	return captured.With(KeyOpacity, Scalar(0))
}

func (FadeIn) Final(initial Snapshot) (Snapshot, error) {
	return initial.With(KeyOpacity, Scalar(1)), nil
}

// FadeOut animates opacity from its current value to 0.
type FadeOut struct{}

func (FadeOut) Name() string   { return "fade_out" }
func (FadeOut) Keys() []string { return []string{KeyOpacity} }

func (FadeOut) Final(initial Snapshot) (Snapshot, error) {
	return initial.With(KeyOpacity, Scalar(0)), nil
}

// ColorShift recolours a target, blending through HCL space so hues rotate
// instead of passing through grey.
type ColorShift struct {
	To colorful.Color
}

func (ColorShift) Name() string   { return "color" }
func (ColorShift) Keys() []string { return []string{KeyColor} }

func (c ColorShift) Final(initial Snapshot) (Snapshot, error) {
	return initial.With(KeyColor, ColorValue(c.To)), nil
}

func (ColorShift) Interpolate(initial, final Snapshot, eased float64) (Snapshot, error) {
	from, _ := initial.Get(KeyColor)
	to, _ := final.Get(KeyColor)
	a, err := ValueColor(from)
	if err != nil {
		return Snapshot{}, err
	}
	b, err := ValueColor(to)
	if err != nil {
		return Snapshot{}, err
	}
	return initial.With(KeyColor, ColorValue(a.BlendHcl(b, eased).Clamped())), nil
}

// ColorValue packs a colour as an RGB value.
func ColorValue(c colorful.Color) Value {
	return Value{c.R, c.G, c.B}
}

// ValueColor unpacks an RGB value.
func ValueColor(v Value) (colorful.Color, error) {
	if len(v) != 3 {
		return colorful.Color{}, fmt.Errorf("%w: colour needs 3 components, got %d", ErrValueShape, len(v))
	}
	return colorful.Color{R: v[0], G: v[1], B: v[2]}, nil
}
