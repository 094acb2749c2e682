package renderer

import (
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// pen draws local-space paths onto a vector rasterizer.
type pen struct {
	z *vector.Rasterizer
	m f64.Aff3
}

func (p pen) moveTo(x, y float64) {
	px, py := apply(p.m, x, y)
	p.z.MoveTo(float32(px), float32(py))
}

func (p pen) lineTo(x, y float64) {
	px, py := apply(p.m, x, y)
	p.z.LineTo(float32(px), float32(py))
}

func (p pen) cubeTo(x1, y1, x2, y2, x3, y3 float64) {
	ax, ay := apply(p.m, x1, y1)
	bx, by := apply(p.m, x2, y2)
	cx, cy := apply(p.m, x3, y3)
	p.z.CubeTo(float32(ax), float32(ay), float32(bx), float32(by), float32(cx), float32(cy))
}

// circle adds a closed circle. Reversed circles cut holes.
func (p pen) circle(r float64, reverse bool) {
	k := r * kappa
	p.moveTo(r, 0)
	if reverse {
		p.cubeTo(r, -k, k, -r, 0, -r)
		p.cubeTo(-k, -r, -r, -k, -r, 0)
		p.cubeTo(-r, k, -k, r, 0, r)
		p.cubeTo(k, r, r, k, r, 0)
	} else {
		p.cubeTo(r, k, k, r, 0, r)
		p.cubeTo(-k, r, -r, k, -r, 0)
		p.cubeTo(-r, -k, -k, -r, 0, -r)
		p.cubeTo(k, -r, r, -k, r, 0)
	}
	p.z.ClosePath()
}

// rect adds a closed axis-aligned rectangle centred on (cx, cy).
func (p pen) rect(cx, cy, w, h float64, reverse bool) {
	x0, y0 := cx-w/2, cy-h/2
	x1, y1 := cx+w/2, cy+h/2
	p.moveTo(x0, y0)
	if reverse {
		p.lineTo(x0, y1)
		p.lineTo(x1, y1)
		p.lineTo(x1, y0)
	} else {
		p.lineTo(x1, y0)
		p.lineTo(x1, y1)
		p.lineTo(x0, y1)
	}
	p.z.ClosePath()
}

// segment adds a quad of the given thickness from a to b.
func (p pen) segment(ax, ay, bx, by, thickness float64) {
	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*thickness/2, dx/l*thickness/2
	p.moveTo(ax+nx, ay+ny)
	p.lineTo(bx+nx, by+ny)
	p.lineTo(bx-nx, by-ny)
	p.lineTo(ax-nx, ay-ny)
	p.z.ClosePath()
}

func (p pen) triangle(ax, ay, bx, by, cx, cy float64) {
	p.moveTo(ax, ay)
	p.lineTo(bx, by)
	p.lineTo(cx, cy)
	p.z.ClosePath()
}
