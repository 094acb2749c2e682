package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileVersion is written into new scene files.
const FileVersion = "1.0"

// File is the YAML form of a scene.
type File struct {
	Version    string       `yaml:"version"`
	Name       string       `yaml:"name,omitempty"`
	FPS        int          `yaml:"fps,omitempty"`
	Background string       `yaml:"background,omitempty"` // #rrggbb
	Camera     *CameraSpec  `yaml:"camera,omitempty"`
	Objects    []ObjectSpec `yaml:"objects"`
	Blocks     []BlockSpec  `yaml:"blocks"`
}

// CameraSpec is the camera's starting state.
type CameraSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Zoom     float64 `yaml:"zoom,omitempty"`
	Rotation float64 `yaml:"rotation,omitempty"` // degrees
}

// ObjectSpec declares one object. Which size fields matter depends on the
// shape. Without an explicit opacity, an object whose first fade is a
// fade_in starts hidden; otherwise it starts fully opaque.
type ObjectSpec struct {
	ID       string    `yaml:"id"`
	Shape    string    `yaml:"shape"`
	X        float64   `yaml:"x,omitempty"`
	Y        float64   `yaml:"y,omitempty"`
	Radius   float64   `yaml:"radius,omitempty"`
	Width    float64   `yaml:"width,omitempty"`
	Height   float64   `yaml:"height,omitempty"`
	From     []float64 `yaml:"from,omitempty"` // line and arrow
	To       []float64 `yaml:"to,omitempty"`
	Color    string    `yaml:"color,omitempty"`
	Fill     bool      `yaml:"fill,omitempty"`
	Stroke   float64   `yaml:"stroke,omitempty"`
	Opacity  *float64  `yaml:"opacity,omitempty"`
	Scale    *float64  `yaml:"scale,omitempty"`
	Rotation float64   `yaml:"rotation,omitempty"` // degrees
	Content  string    `yaml:"content,omitempty"`  // qrcode payload
	Source   string    `yaml:"source,omitempty"`   // image or PDF path
	Page     int       `yaml:"page,omitempty"`
	DPI      int       `yaml:"dpi,omitempty"`
	Trim     bool      `yaml:"trim,omitempty"` // crop the image to its content
}

// BlockSpec is one timeline block. Mode is "parallel" (default) or
// "sequential".
type BlockSpec struct {
	Mode     string     `yaml:"mode,omitempty"`
	Duration float64    `yaml:"duration"`
	Steps    []StepSpec `yaml:"steps,omitempty"`
}

// StepSpec is one animation. Args depend on the operation: move_to and
// shift take x and y, scale a factor, rotate an angle (radians unless
// Degrees is set), fades none. The color operation uses Color instead.
type StepSpec struct {
	Target   string    `yaml:"target"`
	Op       string    `yaml:"op"`
	Args     []float64 `yaml:"args,omitempty"`
	Color    string    `yaml:"color,omitempty"`
	Degrees  bool      `yaml:"degrees,omitempty"`
	Easing   string    `yaml:"easing,omitempty"`
	Duration *float64  `yaml:"duration,omitempty"` // parallel blocks only
}

// Write stores f as YAML.
func Write(f *File, path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Read parses a scene file.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrInvalidScene, err)
	}
	if f.Version == "" {
		return nil, fmt.Errorf("%s: %w: missing version", path, ErrInvalidScene)
	}
	return &f, nil
}
