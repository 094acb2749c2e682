package renderer

import (
	"math"

	"github.com/Hrithik0112/mini-manim/internal/mobject"
	"golang.org/x/image/math/f64"
)

// viewMatrix maps scene units to pixels: the camera point lands on the
// frame centre, zoom multiplies the unit size and y is flipped.
func viewMatrix(width, height int, unitPixels float64, cam *mobject.Camera) f64.Aff3 {
	k := unitPixels * cam.Zoom
	s, c := math.Sincos(cam.Rotation)
	w2, h2 := float64(width)/2, float64(height)/2
	return f64.Aff3{
		k * c, k * s, w2 - k*c*cam.X - k*s*cam.Y,
		k * s, -k * c, h2 - k*s*cam.X + k*c*cam.Y,
	}
}

// objectMatrix maps an object's local coordinates into the scene.
func objectMatrix(o *mobject.Object) f64.Aff3 {
	s, c := math.Sincos(o.Rotation)
	return f64.Aff3{
		o.Scale * c, -o.Scale * s, o.X,
		o.Scale * s, o.Scale * c, o.Y,
	}
}

// mul composes m after n.
func mul(m, n f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		m[0]*n[0] + m[1]*n[3], m[0]*n[1] + m[1]*n[4], m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3], m[3]*n[1] + m[4]*n[4], m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

func apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// unitSize is the length in pixels of one local unit under m. Transforms
// here are similarities, so any direction gives the same answer.
func unitSize(m f64.Aff3) float64 {
	return math.Hypot(m[0], m[3])
}
