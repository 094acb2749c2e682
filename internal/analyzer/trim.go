package analyzer

import (
	"image"

	"golang.org/x/image/draw"
)

// ContentBounds is the union of every detected region grown by pad pixels
// and clipped to the image. ok is false when nothing was found.
func ContentBounds(img image.Image, d Detector, pad int) (r image.Rectangle, ok bool, err error) {
	regions, err := d.Detect(img)
	if err != nil {
		return image.Rectangle{}, false, err
	}
	for _, reg := range regions {
		r = r.Union(reg.Rect)
	}
	if r.Empty() {
		return image.Rectangle{}, false, nil
	}
	return r.Inset(-pad).Intersect(img.Bounds()), true, nil
}

// Trim crops img to its content. Images without detectable content are
// returned unchanged.
func Trim(img image.Image, d Detector, pad int) (image.Image, error) {
	r, ok, err := ContentBounds(img, d, pad)
	if err != nil || !ok || r == img.Bounds() {
		return img, err
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out, nil
}
