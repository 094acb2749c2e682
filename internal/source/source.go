// Package source loads raster content for picture objects from image files
// or PDF pages.
package source

import (
	"fmt"
	"image"
	"math"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Source is a paged raster provider.
type Source interface {
	PageCount() int
	// GetPageDimensions reports PDF pages in points and images in pixels.
	GetPageDimensions(index int) (width, height float64, err error)
	RenderPage(index int, dpi int) (image.Image, error)
	Close() error
}

// DefaultDPI is used when a PDF page is rasterized without an explicit DPI.
const DefaultDPI = 150

// MaxAutoSide caps the longest rasterized side, in pixels, when no DPI is
// given. Poster-sized pages drop below DefaultDPI to stay under it.
const MaxAutoSide = 4096

// autoDPI picks the rasterization DPI for a page of w by h points.
func autoDPI(w, h float64) int {
	longest := math.Max(w, h)
	if longest*DefaultDPI/72 <= MaxAutoSide {
		return DefaultDPI
	}
	return max(1, int(MaxAutoSide*72/longest))
}

// Open picks the PDF or image source by file extension.
func Open(path string) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return NewFitzPDFSource(path)
	}
	return NewImageSource(path)
}

// Load renders a single page of path.
func Load(path string, page, dpi int) (image.Image, error) {
	src, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	if page < 0 || page >= src.PageCount() {
		return nil, fmt.Errorf("%s: page %d out of range (%d pages)", path, page, src.PageCount())
	}
	w, h, err := src.GetPageDimensions(page)
	if err != nil {
		return nil, fmt.Errorf("%s page %d: %w", path, page, err)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%s page %d: empty page (%gx%g)", path, page, w, h)
	}
	if dpi <= 0 {
		dpi = autoDPI(w, h)
	}
	img, err := src.RenderPage(page, dpi)
	if err != nil {
		return nil, fmt.Errorf("render %s page %d: %w", path, page, err)
	}
	return img, nil
}

// FitzPDFSource rasterizes PDF pages with MuPDF.
type FitzPDFSource struct {
	doc *fitz.Document
}

func NewFitzPDFSource(path string) (*FitzPDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &FitzPDFSource{doc: doc}, nil
}

func (f *FitzPDFSource) PageCount() int {
	return f.doc.NumPage()
}

func (f *FitzPDFSource) GetPageDimensions(index int) (float64, float64, error) {
	rect, err := f.doc.Bound(index)
	if err != nil {
		return 0, 0, err
	}
	return float64(rect.Dx()), float64(rect.Dy()), nil
}

func (f *FitzPDFSource) RenderPage(index int, dpi int) (image.Image, error) {
	return f.doc.ImageDPI(index, float64(dpi))
}

func (f *FitzPDFSource) Close() error {
	return f.doc.Close()
}
