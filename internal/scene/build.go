package scene

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/Hrithik0112/mini-manim/internal/analyzer"
	"github.com/Hrithik0112/mini-manim/internal/animation"
	"github.com/Hrithik0112/mini-manim/internal/easing"
	"github.com/Hrithik0112/mini-manim/internal/mobject"
	"github.com/Hrithik0112/mini-manim/internal/source"
	"github.com/Hrithik0112/mini-manim/internal/timeline"
	"github.com/lucasb-eyer/go-colorful"
)

// Load reads and builds a scene file. Relative image sources resolve
// against the file's directory.
func Load(path string) (*Scene, error) {
	f, err := Read(path)
	if err != nil {
		return nil, err
	}
	s, err := Build(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Build turns a scene file into a scene. A zero FPS means
// timeline.DefaultFPS.
func Build(f *File, baseDir string) (*Scene, error) {
	s := New(f.Name, f.FPS)

	if f.Background != "" {
		c, err := colorful.Hex(f.Background)
		if err != nil {
			return nil, fmt.Errorf("%w: background: %v", ErrInvalidScene, err)
		}
		s.Background = c
	}
	if f.Camera != nil {
		s.Camera.X, s.Camera.Y = f.Camera.X, f.Camera.Y
		s.Camera.Rotation = radians(f.Camera.Rotation)
		if f.Camera.Zoom != 0 {
			s.Camera.Zoom = f.Camera.Zoom
		}
	}

	fadesIn := firstFadeIsIn(f.Blocks)
	for i, spec := range f.Objects {
		o, err := buildObject(spec, baseDir)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, spec.ID, err)
		}
		if spec.Opacity == nil && fadesIn[spec.ID] {
			o.Opacity = 0
		}
		if err := s.Add(o); err != nil {
			return nil, err
		}
	}

	for i, spec := range f.Blocks {
		if err := s.buildBlock(spec); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
	}
	return s, nil
}

// firstFadeIsIn reports the targets whose first fade step is a fade_in.
// Such objects stay hidden until the fade plays unless the file gives
// them an opacity.
func firstFadeIsIn(blocks []BlockSpec) map[string]bool {
	first := make(map[string]animation.OpKind)
	for _, b := range blocks {
		for _, step := range b.Steps {
			kind, err := animation.ParseOpKind(step.Op)
			if err != nil || (kind != animation.OpFadeIn && kind != animation.OpFadeOut) {
				continue
			}
			if _, seen := first[step.Target]; !seen {
				first[step.Target] = kind
			}
		}
	}

	in := make(map[string]bool, len(first))
	for id, kind := range first {
		in[id] = kind == animation.OpFadeIn
	}
	return in
}

// trimPad keeps a little margin around trimmed picture content.
const trimPad = 8

func buildObject(spec ObjectSpec, baseDir string) (*mobject.Object, error) {
	var o *mobject.Object
	switch mobject.Shape(spec.Shape) {
	case mobject.Circle:
		o = mobject.NewCircle(spec.ID, orDefault(spec.Radius, 1))
	case mobject.Dot:
		o = mobject.NewDot(spec.ID)
		if spec.Radius > 0 {
			o.Radius = spec.Radius
		}
	case mobject.Square:
		o = mobject.NewSquare(spec.ID, orDefault(spec.Width, 2))
	case mobject.Rectangle:
		o = mobject.NewRectangle(spec.ID, orDefault(spec.Width, 4), orDefault(spec.Height, 2))
	case mobject.Line, mobject.Arrow:
		if len(spec.From) != 2 || len(spec.To) != 2 {
			return nil, fmt.Errorf("%w: %s needs from and to points", ErrInvalidScene, spec.Shape)
		}
		if spec.Shape == string(mobject.Arrow) {
			o = mobject.NewArrow(spec.ID, spec.From[0], spec.From[1], spec.To[0], spec.To[1])
		} else {
			o = mobject.NewLine(spec.ID, spec.From[0], spec.From[1], spec.To[0], spec.To[1])
		}
	case mobject.QRCode:
		if spec.Content == "" {
			return nil, fmt.Errorf("%w: qrcode needs content", ErrInvalidScene)
		}
		var err error
		if o, err = mobject.NewQRCode(spec.ID, spec.Content, orDefault(spec.Width, 3)); err != nil {
			return nil, err
		}
	case mobject.Picture:
		if spec.Source == "" {
			return nil, fmt.Errorf("%w: image needs a source", ErrInvalidScene)
		}
		path := spec.Source
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		img, err := source.Load(path, spec.Page, spec.DPI)
		if err != nil {
			return nil, err
		}
		if spec.Trim {
			if img, err = analyzer.Trim(img, analyzer.NewContrastDetector(), trimPad); err != nil {
				return nil, err
			}
		}
		o = mobject.NewPicture(spec.ID, img, orDefault(spec.Width, 4))
	default:
		return nil, fmt.Errorf("%w: unknown shape %q", ErrInvalidScene, spec.Shape)
	}

	// Lines keep the midpoint computed from their end points.
	if o.Shape != mobject.Line && o.Shape != mobject.Arrow {
		o.At(spec.X, spec.Y)
	}
	if spec.Color != "" {
		c, err := colorful.Hex(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: color: %v", ErrInvalidScene, err)
		}
		o.Color = c
	}
	if spec.Fill {
		o.Fill = true
	}
	if spec.Stroke > 0 {
		o.StrokeWidth = spec.Stroke
	}
	if spec.Opacity != nil {
		o.Opacity = *spec.Opacity
	}
	if spec.Scale != nil {
		o.Scale = *spec.Scale
	}
	o.Rotation = radians(spec.Rotation)
	return o, nil
}

func (s *Scene) buildBlock(spec BlockSpec) error {
	mode, err := timeline.ParseMode(spec.Mode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if spec.Duration < 0 || math.IsNaN(spec.Duration) {
		return fmt.Errorf("%w: negative duration %v", ErrInvalidScene, spec.Duration)
	}

	slice := spec.Duration
	if mode == timeline.Sequential && len(spec.Steps) > 0 {
		slice = spec.Duration / float64(len(spec.Steps))
	}

	var anims []*animation.Animation
	for i, step := range spec.Steps {
		target, err := s.Target(step.Target)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		op, err := parseStep(step)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		ease, err := easing.Lookup(step.Easing)
		if err != nil {
			return fmt.Errorf("step %d: %w %q", i, ErrUnknownEasing, step.Easing)
		}

		d := slice
		if step.Duration != nil && mode == timeline.Parallel {
			d = *step.Duration
		}
		anims = append(anims, animation.Animate(target).Push(op).Build(d, ease)...)
	}

	if mode == timeline.Sequential {
		s.PlaySequential(spec.Duration, anims...)
	} else {
		s.Play(spec.Duration, anims...)
	}
	return nil
}

func parseStep(step StepSpec) (animation.Op, error) {
	kind, err := animation.ParseOpKind(step.Op)
	if err != nil {
		return animation.Op{}, fmt.Errorf("%w %q", ErrUnknownOp, step.Op)
	}

	want := map[animation.OpKind]int{
		animation.OpMoveTo: 2,
		animation.OpShift:  2,
		animation.OpScale:  1,
		animation.OpRotate: 1,
	}[kind]
	if len(step.Args) != want {
		return animation.Op{}, fmt.Errorf("%w: %s takes %d args, got %d", ErrInvalidScene, kind, want, len(step.Args))
	}

	op := animation.Op{Kind: kind}
	switch kind {
	case animation.OpMoveTo, animation.OpShift:
		op.X, op.Y = step.Args[0], step.Args[1]
	case animation.OpScale:
		op.Value = step.Args[0]
	case animation.OpRotate:
		op.Value = step.Args[0]
		if step.Degrees {
			op.Value = radians(op.Value)
		}
	case animation.OpColor:
		c, err := colorful.Hex(step.Color)
		if err != nil {
			return animation.Op{}, fmt.Errorf("%w: color: %v", ErrInvalidScene, err)
		}
		op.Color = c
	}
	return op, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
