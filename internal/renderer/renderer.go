// Package renderer turns a camera and a list of objects into RGBA frames.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/Hrithik0112/mini-manim/internal/mobject"
	"github.com/Hrithik0112/mini-manim/internal/system"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// Rasterizer draws frames of a fixed size. It is safe for concurrent use
// as long as every call gets its own objects.
type Rasterizer struct {
	Width, Height int
	UnitPixels    float64 // pixels per scene unit at zoom 1
	Background    colorful.Color

	pool *system.ImagePool
}

// New creates a rasterizer that draws into buffers taken from pool. A nil
// pool allocates a fresh image per frame.
func New(width, height int, unitPixels float64, background colorful.Color, pool *system.ImagePool) *Rasterizer {
	return &Rasterizer{
		Width:      width,
		Height:     height,
		UnitPixels: unitPixels,
		Background: background,
		pool:       pool,
	}
}

// Bounds is the frame rectangle.
func (r *Rasterizer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// Render draws objs in order over the background as seen by cam. A nil
// camera looks at the origin without zoom.
func (r *Rasterizer) Render(cam *mobject.Camera, objs []*mobject.Object) (*image.RGBA, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", r.Width, r.Height)
	}
	if cam == nil {
		cam = mobject.NewCamera()
	}

	var dst *image.RGBA
	if r.pool != nil {
		dst = r.pool.Get(r.Bounds())
	} else {
		dst = image.NewRGBA(r.Bounds())
	}
	bg := r.Background.Clamped()
	cr, cg, cb := bg.RGB255()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{cr, cg, cb, 255}), image.Point{}, draw.Src)

	view := viewMatrix(r.Width, r.Height, r.UnitPixels, cam)
	z := vector.NewRasterizer(r.Width, r.Height)
	for _, o := range objs {
		if err := r.drawObject(dst, z, view, o); err != nil {
			r.Release(dst)
			return nil, err
		}
	}
	return dst, nil
}

// Release hands a rendered frame back to the pool.
func (r *Rasterizer) Release(img *image.RGBA) {
	if r.pool != nil {
		r.pool.Put(img)
	}
}

func (r *Rasterizer) drawObject(dst *image.RGBA, z *vector.Rasterizer, view f64.Aff3, o *mobject.Object) error {
	alpha := clamp01(o.Opacity)
	if alpha == 0 || o.Scale == 0 {
		return nil
	}
	m := mul(view, objectMatrix(o))
	px := unitSize(m)
	if px == 0 {
		return nil
	}

	if o.Shape == mobject.Picture {
		return drawPicture(dst, m, o, alpha)
	}

	z.Reset(r.Width, r.Height)
	p := pen{z: z, m: m}
	stroke := o.StrokeWidth / px

	switch o.Shape {
	case mobject.Circle, mobject.Dot:
		if o.Fill || o.Shape == mobject.Dot {
			p.circle(o.Radius, false)
		} else {
			p.circle(o.Radius+stroke/2, false)
			if inner := o.Radius - stroke/2; inner > 0 {
				p.circle(inner, true)
			}
		}
	case mobject.Square, mobject.Rectangle:
		if o.Fill {
			p.rect(0, 0, o.Width, o.Height, false)
		} else {
			p.rect(0, 0, o.Width+stroke, o.Height+stroke, false)
			if o.Width > stroke && o.Height > stroke {
				p.rect(0, 0, o.Width-stroke, o.Height-stroke, true)
			}
		}
	case mobject.Line:
		p.segment(-o.DX, -o.DY, o.DX, o.DY, stroke)
	case mobject.Arrow:
		drawArrow(p, o, stroke)
	case mobject.QRCode:
		drawModules(p, o)
	default:
		return fmt.Errorf("%s: unknown shape %q", o, o.Shape)
	}

	z.Draw(dst, dst.Bounds(), image.NewUniform(nrgba(o.Color, alpha)), image.Point{})
	return nil
}

// drawArrow draws a shaft from the tail to the base of a triangular head
// whose tip is the arrow's end point.
func drawArrow(p pen, o *mobject.Object, stroke float64) {
	l := math.Hypot(o.DX, o.DY)
	if l == 0 {
		return
	}
	ux, uy := o.DX/l, o.DY/l
	head := math.Min(stroke*4, l)
	bx, by := o.DX-ux*head, o.DY-uy*head
	p.segment(-o.DX, -o.DY, bx, by, stroke)
	nx, ny := -uy*head/2, ux*head/2
	p.triangle(o.DX, o.DY, bx+nx, by+ny, bx-nx, by-ny)
}

// drawModules fills one square per dark QR module, the whole grid spanning
// the object's width.
func drawModules(p pen, o *mobject.Object) {
	n := len(o.Modules)
	if n == 0 {
		return
	}
	cell := o.Width / float64(n)
	for row, line := range o.Modules {
		for col, dark := range line {
			if !dark {
				continue
			}
			cx := -o.Width/2 + (float64(col)+0.5)*cell
			cy := o.Width/2 - (float64(row)+0.5)*cell
			p.rect(cx, cy, cell, cell, false)
		}
	}
}

// drawPicture maps the image onto the object's rectangle.
func drawPicture(dst *image.RGBA, m f64.Aff3, o *mobject.Object, alpha float64) error {
	if o.Image == nil {
		return fmt.Errorf("%s: no image", o)
	}
	b := o.Image.Bounds()
	if b.Empty() {
		return nil
	}
	sx := o.Width / float64(b.Dx())
	sy := o.Height / float64(b.Dy())
	toLocal := f64.Aff3{
		sx, 0, -o.Width/2 - sx*float64(b.Min.X),
		0, -sy, o.Height/2 + sy*float64(b.Min.Y),
	}

	var opts *draw.Options
	if alpha < 1 {
		opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha{A: uint8(math.Round(alpha * 255))})}
	}
	draw.BiLinear.Transform(dst, mul(m, toLocal), o.Image, b, draw.Over, opts)
	return nil
}

func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
