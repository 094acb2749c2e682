package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/Hrithik0112/mini-manim/internal/animation"
	"github.com/Hrithik0112/mini-manim/internal/mobject"
)

func TestAddAndTarget(t *testing.T) {
	s := New("t", 0)
	c := mobject.NewCircle("c", 1)
	if err := s.Add(c); err != nil {
		t.Fatal(err)
	}
	if s.FPS() != 30 {
		t.Errorf("FPS() = %d, want 30", s.FPS())
	}

	tests := []struct {
		name string
		obj  *mobject.Object
	}{
		{"duplicate", mobject.NewCircle("c", 2)},
		{"camera id", mobject.NewCircle("camera", 2)},
		{"empty id", mobject.NewCircle("", 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Add(tt.obj); !errors.Is(err, ErrInvalidScene) {
				t.Errorf("Add() error = %v, want ErrInvalidScene", err)
			}
		})
	}

	if got, err := s.Target("c"); err != nil || got != c {
		t.Errorf("Target(c) = %v, %v", got, err)
	}
	if got, err := s.Target("camera"); err != nil || got != s.Camera {
		t.Errorf("Target(camera) = %v, %v", got, err)
	}
	if _, err := s.Target("nope"); !errors.Is(err, ErrUnknownObject) {
		t.Errorf("Target(nope) error = %v", err)
	}
}

func TestPlayAddsObjects(t *testing.T) {
	s := New("t", 10)
	sq := mobject.NewSquare("sq", 1)
	s.Play(1, animation.Animate(sq).MoveTo(1, 0).Build(1, nil)...)
	s.Play(1, animation.Animate(sq).FadeOut().Build(1, nil)...)

	if len(s.Objects) != 1 || s.Objects[0] != sq {
		t.Fatalf("Objects = %v, want [sq]", s.Objects)
	}
	if err := s.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}
}

func TestCheckRejectsForeignTargets(t *testing.T) {
	s := New("t", 10)
	other := mobject.NewCamera()
	s.Timeline.AppendParallel(animation.Animate(other).MoveTo(1, 1).Build(1, nil), 1)
	if err := s.Check(); !errors.Is(err, ErrUnknownObject) {
		t.Errorf("Check() = %v, want ErrUnknownObject", err)
	}
}

func TestSeekLeavesOriginalsUntouched(t *testing.T) {
	s := New("t", 10)
	c := mobject.NewCircle("c", 1)
	s.Add(c)
	s.Play(1, animation.Animate(c).MoveTo(10, 0).Build(1, nil)...)
	s.Play(1, animation.Animate(s.Camera).Scale(2).Build(1, nil)...)
	if err := s.Timeline.Arm(); err != nil {
		t.Fatal(err)
	}

	f, err := s.Seek(5)
	if err != nil {
		t.Fatal(err)
	}
	if f.Objects[0].X != 5 {
		t.Errorf("frame 5 x = %v, want 5", f.Objects[0].X)
	}
	if c.X != 0 {
		t.Errorf("original moved to %v", c.X)
	}

	last, err := s.Seek(s.Timeline.TotalFrameCount() - 1)
	if err != nil {
		t.Fatal(err)
	}
	if last.Objects[0].X != 10 || last.Camera.Zoom != 2 {
		t.Errorf("last frame x=%v zoom=%v", last.Objects[0].X, last.Camera.Zoom)
	}
	if s.Camera.Zoom != 1 {
		t.Errorf("original camera zoom = %v", s.Camera.Zoom)
	}
	if math.IsNaN(last.Objects[0].Y) {
		t.Error("y is NaN")
	}
}

func TestWait(t *testing.T) {
	s := New("t", 30)
	s.Wait(2)
	if s.Timeline.TotalDuration() != 2 || s.Timeline.TotalFrameCount() != 61 {
		t.Errorf("duration %v frames %d", s.Timeline.TotalDuration(), s.Timeline.TotalFrameCount())
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	names := r.Names()
	if len(names) == 0 || names[0] != "camera" {
		t.Errorf("Names() = %v", names)
	}
	if _, err := r.Lookup("missing"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Lookup(missing) = %v", err)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			f, err := r.Lookup(name)
			if err != nil {
				t.Fatal(err)
			}
			if f.Name != name {
				t.Errorf("Name = %q", f.Name)
			}
			s, err := Build(f, ".")
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if err := s.Check(); err != nil {
				t.Fatal(err)
			}
			if err := s.Timeline.Arm(); err != nil {
				t.Fatalf("Arm: %v", err)
			}
			if s.Timeline.TotalDuration() <= 0 {
				t.Error("demo scene has no duration")
			}
		})
	}
}
