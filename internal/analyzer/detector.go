// Package analyzer finds the parts of an image that carry content, so
// pictures such as scanned or rasterized pages can be cropped to them.
package analyzer

import (
	"fmt"
	"image"
)

// Region is a detected area of content.
type Region struct {
	Rect       image.Rectangle
	Confidence float64 // 0.0-1.0
}

// Detector finds content regions in an image.
type Detector interface {
	Detect(img image.Image) ([]Region, error)
}

// NewDetector creates a detector by name. Only "contrast" exists; it is
// also the default.
func NewDetector(variant string) (Detector, error) {
	switch variant {
	case "contrast", "":
		return NewContrastDetector(), nil
	default:
		return nil, fmt.Errorf("unknown detector variant: %s", variant)
	}
}
