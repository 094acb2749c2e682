// Package mobject defines the drawable objects a scene animates.
//
// Objects live in scene units: the origin is the frame centre, x grows to
// the right and y grows upwards. The renderer maps units to pixels.
package mobject

import (
	"fmt"
	"image"

	"github.com/Hrithik0112/mini-manim/internal/animation"
	"github.com/lucasb-eyer/go-colorful"
)

// Shape selects how an object is drawn.
type Shape string

const (
	Circle    Shape = "circle"
	Square    Shape = "square"
	Rectangle Shape = "rectangle"
	Line      Shape = "line"
	Arrow     Shape = "arrow"
	Dot       Shape = "dot"
	QRCode    Shape = "qrcode"
	Picture   Shape = "image"
)

// DefaultColor is used for objects created without a colour.
var DefaultColor = colorful.Color{R: 0.345, G: 0.769, B: 0.867} // #58C4DD

// DefaultStroke is the outline width in pixels.
const DefaultStroke = 4.0

// Object is a drawable with animatable attributes.
type Object struct {
	ID    string
	Shape Shape

	X, Y     float64 // centre
	Rotation float64 // radians, counter-clockwise
	Scale    float64
	Opacity  float64
	Color    colorful.Color

	Width, Height float64 // rectangle, square, qrcode and image extents
	Radius        float64 // circle and dot
	DX, DY        float64 // line and arrow half-vector from the centre
	StrokeWidth   float64 // pixels, unscaled
	Fill          bool

	Modules [][]bool    // qrcode cells, row-major
	Image   image.Image // picture contents
}

func newObject(id string, shape Shape) *Object {
	return &Object{
		ID:          id,
		Shape:       shape,
		Scale:       1,
		Opacity:     1,
		Color:       DefaultColor,
		StrokeWidth: DefaultStroke,
	}
}

// NewCircle creates an outlined circle centred on the origin.
func NewCircle(id string, radius float64) *Object {
	o := newObject(id, Circle)
	o.Radius = radius
	return o
}

// NewDot creates a small filled circle.
func NewDot(id string) *Object {
	o := newObject(id, Dot)
	o.Radius = 0.08
	o.Fill = true
	return o
}

// NewSquare creates an outlined square.
func NewSquare(id string, side float64) *Object {
	o := newObject(id, Square)
	o.Width, o.Height = side, side
	return o
}

// NewRectangle creates an outlined rectangle.
func NewRectangle(id string, width, height float64) *Object {
	o := newObject(id, Rectangle)
	o.Width, o.Height = width, height
	return o
}

// NewLine creates a segment between two points. Its position is the
// midpoint so rotation and scale pivot there.
func NewLine(id string, x1, y1, x2, y2 float64) *Object {
	o := newObject(id, Line)
	o.X, o.Y = (x1+x2)/2, (y1+y2)/2
	o.DX, o.DY = (x2-x1)/2, (y2-y1)/2
	return o
}

// NewArrow is a line with a head at its second point.
func NewArrow(id string, x1, y1, x2, y2 float64) *Object {
	o := NewLine(id, x1, y1, x2, y2)
	o.Shape = Arrow
	return o
}

// NewPicture wraps an image, sized to width units with the image's aspect.
func NewPicture(id string, img image.Image, width float64) *Object {
	o := newObject(id, Picture)
	o.Image = img
	b := img.Bounds()
	o.Width = width
	if b.Dx() > 0 {
		o.Height = width * float64(b.Dy()) / float64(b.Dx())
	}
	return o
}

// At moves the object and returns it.
func (o *Object) At(x, y float64) *Object {
	o.X, o.Y = x, y
	return o
}

// WithColor recolours the object and returns it.
func (o *Object) WithColor(c colorful.Color) *Object {
	o.Color = c
	return o
}

// Filled switches to a solid fill and returns the object.
func (o *Object) Filled() *Object {
	o.Fill = true
	return o
}

// Clone copies the object. Modules and Image are shared; they are never
// animated.
func (o *Object) Clone() *Object {
	c := *o
	return &c
}

func (o *Object) String() string {
	return fmt.Sprintf("%s(%s)", o.Shape, o.ID)
}

// Get implements animation.Target.
func (o *Object) Get(key string) (animation.Value, error) {
	switch key {
	case animation.KeyPosition:
		return animation.Vec2(o.X, o.Y), nil
	case animation.KeyRotation:
		return animation.Scalar(o.Rotation), nil
	case animation.KeyScale:
		return animation.Scalar(o.Scale), nil
	case animation.KeyOpacity:
		return animation.Scalar(o.Opacity), nil
	case animation.KeyColor:
		return animation.ColorValue(o.Color), nil
	}
	return nil, fmt.Errorf("%s: %w %q", o, animation.ErrUnknownAttribute, key)
}

// Set implements animation.Target.
func (o *Object) Set(key string, v animation.Value) error {
	switch key {
	case animation.KeyPosition:
		if len(v) != 2 {
			return fmt.Errorf("%s position: %w", o, animation.ErrValueShape)
		}
		o.X, o.Y = v[0], v[1]
	case animation.KeyRotation:
		o.Rotation = v.Float()
	case animation.KeyScale:
		o.Scale = v.Float()
	case animation.KeyOpacity:
		o.Opacity = v.Float()
	case animation.KeyColor:
		c, err := animation.ValueColor(v)
		if err != nil {
			return fmt.Errorf("%s: %w", o, err)
		}
		o.Color = c
	default:
		return fmt.Errorf("%s: %w %q", o, animation.ErrUnknownAttribute, key)
	}
	return nil
}
