// Package scene groups objects, a camera and a timeline into something
// that can be rendered, and reads and writes scene files.
package scene

import (
	"fmt"

	"github.com/Hrithik0112/mini-manim/internal/animation"
	"github.com/Hrithik0112/mini-manim/internal/mobject"
	"github.com/Hrithik0112/mini-manim/internal/timeline"
	"github.com/lucasb-eyer/go-colorful"
)

// Scene is the objects to draw, in draw order, and the timeline animating
// them.
type Scene struct {
	Name       string
	Background colorful.Color
	Camera     *mobject.Camera
	Objects    []*mobject.Object
	Timeline   *timeline.Timeline

	index map[string]*mobject.Object
}

// New creates an empty scene at fps.
func New(name string, fps int) *Scene {
	return &Scene{
		Name:     name,
		Camera:   mobject.NewCamera(),
		Timeline: timeline.New(fps),
		index:    make(map[string]*mobject.Object),
	}
}

// FPS is the timeline frame rate.
func (s *Scene) FPS() int { return s.Timeline.FPS() }

// Add appends objects to the draw list. IDs must be unique and must not
// shadow the camera.
func (s *Scene) Add(objs ...*mobject.Object) error {
	for _, o := range objs {
		if o.ID == "" || o.ID == mobject.CameraID {
			return fmt.Errorf("%w: object id %q is reserved or empty", ErrInvalidScene, o.ID)
		}
		if _, dup := s.index[o.ID]; dup {
			return fmt.Errorf("%w: duplicate object id %q", ErrInvalidScene, o.ID)
		}
		s.index[o.ID] = o
		s.Objects = append(s.Objects, o)
	}
	return nil
}

// Object finds an object by id.
func (s *Scene) Object(id string) (*mobject.Object, bool) {
	o, ok := s.index[id]
	return o, ok
}

// Target resolves an id to an animatable target; "camera" is the camera.
func (s *Scene) Target(id string) (animation.Target, error) {
	if id == mobject.CameraID {
		return s.Camera, nil
	}
	if o, ok := s.index[id]; ok {
		return o, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownObject, id)
}

// Play runs anims together for duration seconds. Objects they animate that
// were never added are added now, on top of the draw list.
func (s *Scene) Play(duration float64, anims ...*animation.Animation) *timeline.Block {
	s.adopt(anims)
	return s.Timeline.AppendParallel(anims, duration)
}

// PlaySequential runs anims one after another in equal slices of duration.
func (s *Scene) PlaySequential(duration float64, anims ...*animation.Animation) *timeline.Block {
	s.adopt(anims)
	return s.Timeline.AppendSequential(anims, duration)
}

// Wait holds the current state for duration seconds.
func (s *Scene) Wait(duration float64) *timeline.Block {
	return s.Timeline.AppendParallel(nil, duration)
}

func (s *Scene) adopt(anims []*animation.Animation) {
	for _, a := range anims {
		o, ok := a.Target().(*mobject.Object)
		if !ok {
			continue
		}
		if known, ok := s.index[o.ID]; ok && known == o {
			continue
		}
		if _, taken := s.index[o.ID]; !taken {
			s.index[o.ID] = o
		}
		s.Objects = append(s.Objects, o)
	}
}

// Check verifies that every animation targets this scene's camera or one
// of its objects, so frames can be rendered on copies.
func (s *Scene) Check() error {
	known := make(map[animation.Target]bool, len(s.Objects)+1)
	known[s.Camera] = true
	for _, o := range s.Objects {
		known[o] = true
	}
	for i, p := range s.Timeline.Blocks() {
		for _, a := range p.Block.Animations {
			if !known[a.Target()] {
				return fmt.Errorf("block %d: %s: %w outside the scene", i, a, ErrUnknownObject)
			}
		}
	}
	return nil
}

// Frame is an independent copy of the scene's drawable state.
type Frame struct {
	Camera  *mobject.Camera
	Objects []*mobject.Object

	copies map[animation.Target]animation.Target
}

// Copy clones the camera and every object.
func (s *Scene) Copy() *Frame {
	f := &Frame{
		Camera:  s.Camera.Clone(),
		Objects: make([]*mobject.Object, len(s.Objects)),
		copies:  make(map[animation.Target]animation.Target, len(s.Objects)+1),
	}
	f.copies[s.Camera] = f.Camera
	for i, o := range s.Objects {
		c := o.Clone()
		f.Objects[i] = c
		f.copies[o] = c
	}
	return f
}

// Resolve maps an original target to its copy. Unknown targets map to
// themselves.
func (f *Frame) Resolve(t animation.Target) animation.Target {
	if c, ok := f.copies[t]; ok {
		return c
	}
	return t
}

// Seek copies the scene and moves the copy to frame.
func (s *Scene) Seek(frame int) (*Frame, error) {
	f := s.Copy()
	if err := s.Timeline.SeekOn(frame, f.Resolve); err != nil {
		return nil, err
	}
	return f, nil
}
