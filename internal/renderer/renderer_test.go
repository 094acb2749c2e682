package renderer

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/Hrithik0112/mini-manim/internal/mobject"
	"github.com/Hrithik0112/mini-manim/internal/system"
	"github.com/lucasb-eyer/go-colorful"
)

var red = colorful.Color{R: 1}

func newTestRasterizer() *Rasterizer {
	// 8 pixels per unit, frame spans 8x8 units.
	return New(64, 64, 8, colorful.Color{}, nil)
}

func bigDot() *mobject.Object {
	d := mobject.NewDot("d").At(1, 1)
	d.Radius = 0.5
	return d
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestRenderBackground(t *testing.T) {
	r := New(16, 8, 8, colorful.Color{R: 1, G: 1, B: 1}, nil)
	img, err := r.Render(nil, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 16, 8) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if got := rgbaAt(img, 3, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background = %v", got)
	}
}

func TestRenderShapes(t *testing.T) {
	tests := []struct {
		name   string
		obj    *mobject.Object
		inside image.Point
		empty  image.Point
	}{
		{"filled square", mobject.NewSquare("s", 2).Filled(), image.Pt(32, 32), image.Pt(5, 5)},
		{"filled circle", mobject.NewCircle("c", 1).Filled(), image.Pt(32, 32), image.Pt(40, 40)},
		{"dot", bigDot(), image.Pt(40, 23), image.Pt(32, 32)},
		{"moved square", mobject.NewSquare("s", 1).Filled().At(-2, 0), image.Pt(16, 32), image.Pt(32, 32)},
		{"outlined rectangle", mobject.NewRectangle("r", 4, 2), image.Pt(16, 32), image.Pt(32, 32)},
		{"outlined circle", mobject.NewCircle("c", 2), image.Pt(48, 32), image.Pt(32, 32)},
		{"horizontal line", mobject.NewLine("l", -2, 0, 2, 0), image.Pt(30, 32), image.Pt(30, 20)},
		{"arrow head", mobject.NewArrow("a", -2, 0, 2, 0), image.Pt(45, 32), image.Pt(45, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := tt.obj.WithColor(red)
			img, err := newTestRasterizer().Render(nil, []*mobject.Object{obj})
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got := rgbaAt(img, tt.inside.X, tt.inside.Y); got.R < 200 || got.G != 0 {
				t.Errorf("pixel %v = %v, want red", tt.inside, got)
			}
			if got := rgbaAt(img, tt.empty.X, tt.empty.Y); got != (color.RGBA{0, 0, 0, 255}) {
				t.Errorf("pixel %v = %v, want background", tt.empty, got)
			}
		})
	}
}

func TestRenderOpacity(t *testing.T) {
	r := newTestRasterizer()

	hidden := mobject.NewSquare("s", 2).Filled().WithColor(red)
	hidden.Opacity = 0
	img, err := r.Render(nil, []*mobject.Object{hidden})
	if err != nil {
		t.Fatal(err)
	}
	if got := rgbaAt(img, 32, 32); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("transparent object drew %v", got)
	}

	half := mobject.NewSquare("s", 2).Filled().WithColor(red)
	half.Opacity = 0.5
	img, err = r.Render(nil, []*mobject.Object{half})
	if err != nil {
		t.Fatal(err)
	}
	if got := rgbaAt(img, 32, 32); math.Abs(float64(got.R)-128) > 2 {
		t.Errorf("half opacity red = %d, want ~128", got.R)
	}
}

func TestRenderDrawOrder(t *testing.T) {
	blue := colorful.Color{B: 1}
	below := mobject.NewSquare("a", 2).Filled().WithColor(red)
	above := mobject.NewSquare("b", 2).Filled().WithColor(blue)

	img, err := newTestRasterizer().Render(nil, []*mobject.Object{below, above})
	if err != nil {
		t.Fatal(err)
	}
	if got := rgbaAt(img, 32, 32); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("later object should cover earlier one, got %v", got)
	}
}

func TestRenderCamera(t *testing.T) {
	obj := mobject.NewSquare("s", 1).Filled().WithColor(red).At(2, 1)

	cam := mobject.NewCamera()
	cam.X, cam.Y = 2, 1
	img, err := newTestRasterizer().Render(cam, []*mobject.Object{obj})
	if err != nil {
		t.Fatal(err)
	}
	if got := rgbaAt(img, 32, 32); got.R != 255 {
		t.Errorf("camera pan: centre = %v, want red", got)
	}

	zoomed := mobject.NewCamera()
	zoomed.Zoom = 4
	small := mobject.NewSquare("s", 0.5).Filled().WithColor(red)
	img, err = newTestRasterizer().Render(zoomed, []*mobject.Object{small})
	if err != nil {
		t.Fatal(err)
	}
	// 0.5 units * 8 px * 4 = 16 px wide.
	if got := rgbaAt(img, 26, 32); got.R != 255 {
		t.Errorf("zoom: pixel (26,32) = %v, want red", got)
	}
}

func TestRenderRotation(t *testing.T) {
	bar := mobject.NewRectangle("r", 4, 0.5).Filled().WithColor(red)
	bar.Rotation = math.Pi / 2

	img, err := newTestRasterizer().Render(nil, []*mobject.Object{bar})
	if err != nil {
		t.Fatal(err)
	}
	if got := rgbaAt(img, 32, 18); got.R != 255 {
		t.Errorf("rotated bar should be vertical, pixel (32,18) = %v", got)
	}
	if got := rgbaAt(img, 18, 32); got.R != 0 {
		t.Errorf("rotated bar should leave (18,32) empty, got %v", got)
	}
}

func TestRenderPicture(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+3] = 255, 255
	}
	pic := mobject.NewPicture("p", src, 2)

	img, err := newTestRasterizer().Render(nil, []*mobject.Object{pic})
	if err != nil {
		t.Fatal(err)
	}
	if got := rgbaAt(img, 32, 32); got.R < 250 || got.G > 5 {
		t.Errorf("picture centre = %v, want red", got)
	}
	if got := rgbaAt(img, 5, 5); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("outside picture = %v", got)
	}
}

func TestRenderQRCode(t *testing.T) {
	qr, err := mobject.NewQRCode("qr", "mini-manim", 4)
	if err != nil {
		t.Fatal(err)
	}
	qr.Color = colorful.Color{R: 1, G: 1, B: 1}
	img, err := newTestRasterizer().Render(nil, []*mobject.Object{qr})
	if err != nil {
		t.Fatal(err)
	}
	// The top-left finder pattern is always dark.
	if got := rgbaAt(img, 16, 16); got.R != 255 {
		t.Errorf("finder pattern pixel = %v, want white", got)
	}
}

func TestRenderErrors(t *testing.T) {
	bad := &mobject.Object{ID: "x", Shape: "hexagon", Scale: 1, Opacity: 1}
	if _, err := newTestRasterizer().Render(nil, []*mobject.Object{bad}); err == nil {
		t.Error("Expected error for unknown shape")
	}
	if _, err := New(0, 10, 8, colorful.Color{}, nil).Render(nil, nil); err == nil {
		t.Error("Expected error for empty frame")
	}
}

func TestRenderPooled(t *testing.T) {
	pool := system.NewImagePool()
	r := New(32, 32, 8, colorful.Color{G: 1}, pool)

	first, err := r.Render(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	r.Release(first)

	second, err := r.Render(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := rgbaAt(second, 0, 0); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("pooled frame not repainted: %v", got)
	}
}
