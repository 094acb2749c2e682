package mobject

import (
	"errors"
	"image"
	"testing"

	"github.com/Hrithik0112/mini-manim/internal/animation"
	"github.com/lucasb-eyer/go-colorful"
)

func TestObjectAttributes(t *testing.T) {
	o := NewCircle("c", 1)

	tests := []struct {
		key string
		in  animation.Value
	}{
		{animation.KeyPosition, animation.Vec2(1.5, -2)},
		{animation.KeyRotation, animation.Scalar(7)},
		{animation.KeyScale, animation.Scalar(0.5)},
		{animation.KeyOpacity, animation.Scalar(0.25)},
		{animation.KeyColor, animation.Value{0.1, 0.2, 0.3}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if err := o.Set(tt.key, tt.in); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := o.Get(tt.key)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !got.Equal(tt.in) {
				t.Errorf("Get(%s) = %v, want %v", tt.key, got, tt.in)
			}
		})
	}
}

func TestObjectUnknownAttribute(t *testing.T) {
	o := NewSquare("s", 1)
	if _, err := o.Get("glow"); !errors.Is(err, animation.ErrUnknownAttribute) {
		t.Errorf("Get = %v, want ErrUnknownAttribute", err)
	}
	if err := o.Set("glow", animation.Scalar(1)); !errors.Is(err, animation.ErrUnknownAttribute) {
		t.Errorf("Set = %v, want ErrUnknownAttribute", err)
	}
	if err := o.Set(animation.KeyPosition, animation.Scalar(1)); !errors.Is(err, animation.ErrValueShape) {
		t.Errorf("Set position scalar = %v, want ErrValueShape", err)
	}
}

func TestLineMidpoint(t *testing.T) {
	l := NewArrow("a", -1, 0, 3, 2)
	if l.X != 1 || l.Y != 1 || l.DX != 2 || l.DY != 1 {
		t.Errorf("arrow centre (%v,%v) half (%v,%v)", l.X, l.Y, l.DX, l.DY)
	}
	if l.Shape != Arrow {
		t.Errorf("shape = %s", l.Shape)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	o := NewCircle("c", 1).At(1, 1).WithColor(colorful.Color{R: 1})
	c := o.Clone()
	c.X = 9
	c.Opacity = 0
	if o.X != 1 || o.Opacity != 1 {
		t.Errorf("original changed: %+v", o)
	}
}

func TestPictureAspect(t *testing.T) {
	p := NewPicture("p", image.NewRGBA(image.Rect(0, 0, 200, 100)), 4)
	if p.Width != 4 || p.Height != 2 {
		t.Errorf("picture size %vx%v, want 4x2", p.Width, p.Height)
	}
}

func TestQRCode(t *testing.T) {
	q, err := NewQRCode("qr", "https://example.com", 3)
	if err != nil {
		t.Fatalf("NewQRCode: %v", err)
	}
	if len(q.Modules) < 21 {
		t.Errorf("expected at least 21 rows of modules, got %d", len(q.Modules))
	}
	if len(q.Modules[0]) != len(q.Modules) {
		t.Errorf("modules not square: %dx%d", len(q.Modules[0]), len(q.Modules))
	}
}

func TestCameraTarget(t *testing.T) {
	cam := NewCamera()
	if err := cam.Set(animation.KeyScale, animation.Scalar(2)); err != nil {
		t.Fatal(err)
	}
	if cam.Zoom != 2 {
		t.Errorf("zoom = %v, want 2", cam.Zoom)
	}
	if _, err := cam.Get(animation.KeyOpacity); !errors.Is(err, animation.ErrUnknownAttribute) {
		t.Errorf("camera opacity = %v, want ErrUnknownAttribute", err)
	}
}
