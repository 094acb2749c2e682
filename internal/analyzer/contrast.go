package analyzer

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ContrastDetector marks strong luminance edges, grows them until nearby
// marks touch and reports the bounding box of each connected patch.
type ContrastDetector struct {
	MinArea       int     // pixels
	EdgeThreshold float64 // Sobel gradient magnitude
	Grow          int     // dilation radius in pixels
}

// NewContrastDetector uses settings tuned for rasterized document pages.
func NewContrastDetector() *ContrastDetector {
	return &ContrastDetector{
		MinArea:       500,
		EdgeThreshold: 30,
		Grow:          4,
	}
}

func (d *ContrastDetector) Detect(img image.Image) ([]Region, error) {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)

	m := edges(gray, d.EdgeThreshold)
	m = m.dilate(d.Grow)

	var regions []Region
	for _, r := range m.components() {
		if r.Dx()*r.Dy() < d.MinArea {
			continue
		}
		regions = append(regions, Region{Rect: r.Add(b.Min), Confidence: 0.7})
	}
	return regions, nil
}

// mask is a row-major boolean image.
type mask struct {
	w, h int
	on   []bool
}

func newMask(w, h int) *mask {
	return &mask{w: w, h: h, on: make([]bool, w*h)}
}

// edges thresholds the Sobel gradient magnitude. Border pixels stay off.
func edges(g *image.Gray, threshold float64) *mask {
	w, h := g.Rect.Dx(), g.Rect.Dy()
	m := newMask(w, h)
	at := func(x, y int) float64 { return float64(g.Pix[y*g.Stride+x]) }

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1)
			gy := at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1)
			m.on[y*w+x] = math.Hypot(gx, gy) > threshold
		}
	}
	return m
}

// dilate grows every set pixel into a square of side 2r+1. The square
// kernel is separable, so rows and columns are processed in turn.
func (m *mask) dilate(r int) *mask {
	if r <= 0 {
		return m
	}
	rows := newMask(m.w, m.h)
	for y := 0; y < m.h; y++ {
		last := -r - 1
		for x := 0; x < m.w; x++ {
			if m.on[y*m.w+x] {
				last = x
			}
			if x-last <= r {
				rows.on[y*m.w+x] = true
			}
		}
		last = m.w + r + 1
		for x := m.w - 1; x >= 0; x-- {
			if m.on[y*m.w+x] {
				last = x
			}
			if last-x <= r {
				rows.on[y*m.w+x] = true
			}
		}
	}

	out := newMask(m.w, m.h)
	for x := 0; x < m.w; x++ {
		last := -r - 1
		for y := 0; y < m.h; y++ {
			if rows.on[y*m.w+x] {
				last = y
			}
			if y-last <= r {
				out.on[y*m.w+x] = true
			}
		}
		last = m.h + r + 1
		for y := m.h - 1; y >= 0; y-- {
			if rows.on[y*m.w+x] {
				last = y
			}
			if last-y <= r {
				out.on[y*m.w+x] = true
			}
		}
	}
	return out
}

// components returns the bounding box of every 4-connected patch of set
// pixels, in scan order of their first pixel.
func (m *mask) components() []image.Rectangle {
	seen := make([]bool, len(m.on))
	var rects []image.Rectangle
	var queue []int

	for start, on := range m.on {
		if !on || seen[start] {
			continue
		}
		seen[start] = true
		queue = append(queue[:0], start)
		r := image.Rect(start%m.w, start/m.w, start%m.w+1, start/m.w+1)

		for len(queue) > 0 {
			i := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			x, y := i%m.w, i/m.w
			r = r.Union(image.Rect(x, y, x+1, y+1))

			for _, n := range [4][2]int{{x + 1, y}, {x - 1, y}, {x, y + 1}, {x, y - 1}} {
				if n[0] < 0 || n[0] >= m.w || n[1] < 0 || n[1] >= m.h {
					continue
				}
				j := n[1]*m.w + n[0]
				if m.on[j] && !seen[j] {
					seen[j] = true
					queue = append(queue, j)
				}
			}
		}
		rects = append(rects, r)
	}
	return rects
}
