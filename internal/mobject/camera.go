package mobject

import (
	"fmt"

	"github.com/Hrithik0112/mini-manim/internal/animation"
)

// CameraID is the reserved target name of the scene camera.
const CameraID = "camera"

// Camera is the viewport: the point it looks at, its zoom and its roll.
// It animates like any other target.
type Camera struct {
	X, Y     float64
	Zoom     float64 // 1.0 = no zoom
	Rotation float64
}

// NewCamera looks at the origin without zoom.
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// Clone copies the camera.
func (c *Camera) Clone() *Camera {
	cp := *c
	return &cp
}

// Get implements animation.Target; zoom is exposed as the scale factor.
func (c *Camera) Get(key string) (animation.Value, error) {
	switch key {
	case animation.KeyPosition:
		return animation.Vec2(c.X, c.Y), nil
	case animation.KeyScale:
		return animation.Scalar(c.Zoom), nil
	case animation.KeyRotation:
		return animation.Scalar(c.Rotation), nil
	}
	return nil, fmt.Errorf("camera: %w %q", animation.ErrUnknownAttribute, key)
}

// Set implements animation.Target.
func (c *Camera) Set(key string, v animation.Value) error {
	switch key {
	case animation.KeyPosition:
		if len(v) != 2 {
			return fmt.Errorf("camera position: %w", animation.ErrValueShape)
		}
		c.X, c.Y = v[0], v[1]
	case animation.KeyScale:
		c.Zoom = v.Float()
	case animation.KeyRotation:
		c.Rotation = v.Float()
	default:
		return fmt.Errorf("camera: %w %q", animation.ErrUnknownAttribute, key)
	}
	return nil
}
