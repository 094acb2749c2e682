package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Config carries everything a render needs besides the scene itself.
type Config struct {
	ScenePath    string
	SceneName    string
	OutputVideo  string
	Width        int
	Height       int
	FPS          int
	Workers      int
	UnitPixels   float64
	ExportFrames bool
	FramesDir    string
	Background   *colorful.Color // nil keeps the scene's own
	AudioPath    string
	VideoEncoder string
	Quality      int
	ShowStats    bool
	BuildVersion string
}

const (
	DefaultFPS        = 30
	DefaultResolution = "1080p"
	DefaultFramesDir  = "frames"
	DefaultOutput     = "output.mp4"
	// Scene units visible across the frame height, so the picture scales
	// with the resolution.
	DefaultUnitsHigh = 8.0
)

var resolutions = map[string][2]int{
	"720p":  {1280, 720},
	"1080p": {1920, 1080},
	"4k":    {3840, 2160},
	"16:9":  {1280, 720},
	"9:16":  {720, 1280},
	"4:5":   {1080, 1350},
}

// Resolution resolves a preset name.
func Resolution(name string) (width, height int, err error) {
	r, ok := resolutions[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, 0, fmt.Errorf("unknown resolution %q (720p, 1080p, 4k, 16:9, 9:16, 4:5)", name)
	}
	return r[0], r[1], nil
}

// ParseBackground accepts "#rrggbb" or "r,g,b" with components in [0,1].
func ParseBackground(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return colorful.Hex(s)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return colorful.Color{}, fmt.Errorf("background %q: need #rrggbb or 3 components R,G,B", s)
	}
	var rgb [3]float64
	for i, p := range parts {
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%g", &rgb[i]); err != nil {
			return colorful.Color{}, fmt.Errorf("background %q: %w", s, err)
		}
		if rgb[i] < 0 || rgb[i] > 1 {
			return colorful.Color{}, fmt.Errorf("background %q: component %d outside [0,1]", s, i)
		}
	}
	return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

// Normalize fills zero values with defaults and validates the rest.
func (c *Config) Normalize() error {
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.Width <= 0 || c.Height <= 0 {
		w, h, _ := Resolution(DefaultResolution)
		c.Width, c.Height = w, h
	}
	if c.Width%2 != 0 {
		c.Width++
	}
	if c.Height%2 != 0 {
		c.Height++
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.UnitPixels <= 0 {
		c.UnitPixels = float64(c.Height) / DefaultUnitsHigh
	}
	if c.ExportFrames && c.FramesDir == "" {
		c.FramesDir = DefaultFramesDir
	}
	if !c.ExportFrames && c.OutputVideo == "" {
		c.OutputVideo = DefaultOutput
	}
	return nil
}
