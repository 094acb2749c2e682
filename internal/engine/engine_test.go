package engine

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Hrithik0112/mini-manim/internal/animation"
	"github.com/Hrithik0112/mini-manim/internal/config"
	"github.com/Hrithik0112/mini-manim/internal/mobject"
	"github.com/Hrithik0112/mini-manim/internal/scene"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
)

// memorySink keeps a copy of every frame.
type memorySink struct {
	indices []int
	frames  []*image.RGBA
	failAt  int
	closed  bool
}

func newMemorySink() *memorySink { return &memorySink{failAt: -1} }

func (m *memorySink) WriteFrame(_ context.Context, index int, img image.Image) error {
	if index == m.failAt {
		return errors.New("disk full")
	}
	src := img.(*image.RGBA)
	cp := image.NewRGBA(src.Bounds())
	copy(cp.Pix, src.Pix)
	m.indices = append(m.indices, index)
	m.frames = append(m.frames, cp)
	return nil
}

func (m *memorySink) Close() error {
	m.closed = true
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// slideScene moves a filled square from the left edge to the right edge
// over one second at 10 fps.
func slideScene() *scene.Scene {
	sc := scene.New("slide", 10)
	sq := mobject.NewSquare("sq", 1).Filled().WithColor(colorful.Color{R: 1}).At(-3, 0)
	sc.Add(sq)
	sc.Play(1, animation.Animate(sq).MoveTo(3, 0).Build(1, nil)...)
	return sc
}

func testConfig(workers int) *config.Config {
	cfg := &config.Config{Width: 64, Height: 32, Workers: workers, UnitPixels: 8}
	cfg.Normalize()
	return cfg
}

func TestRunWritesFramesInOrder(t *testing.T) {
	sink := newMemorySink()
	p := NewRenderProject(testConfig(4), slideScene(), sink, quietLogger())

	stats, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Frames != 11 || len(sink.frames) != 11 {
		t.Fatalf("frames: stats %d sink %d, want 11", stats.Frames, len(sink.frames))
	}
	for i, idx := range sink.indices {
		if idx != i {
			t.Fatalf("frame %d written as %d", i, idx)
		}
	}
	if !sink.closed {
		t.Error("sink not closed")
	}

	red := color.RGBA{255, 0, 0, 255}
	// x=-3 units -> pixel 8; x=+3 -> pixel 56.
	if got := sink.frames[0].RGBAAt(8, 16); got != red {
		t.Errorf("first frame left = %v", got)
	}
	if got := sink.frames[10].RGBAAt(56, 16); got != red {
		t.Errorf("last frame right = %v", got)
	}
	if got := sink.frames[10].RGBAAt(8, 16); got == red {
		t.Error("last frame still has the square on the left")
	}
}

func TestRunIsWorkerIndependent(t *testing.T) {
	serial := newMemorySink()
	if _, err := NewRenderProject(testConfig(1), slideScene(), serial, quietLogger()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	parallel := newMemorySink()
	if _, err := NewRenderProject(testConfig(3), slideScene(), parallel, quietLogger()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	for i := range serial.frames {
		if !bytes.Equal(serial.frames[i].Pix, parallel.frames[i].Pix) {
			t.Errorf("frame %d differs between 1 and 3 workers", i)
		}
	}
}

func TestRunLeavesSceneUntouched(t *testing.T) {
	sc := slideScene()
	if _, err := NewRenderProject(testConfig(2), sc, newMemorySink(), quietLogger()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	sq, _ := sc.Object("sq")
	if sq.X != -3 {
		t.Errorf("scene object moved to %v", sq.X)
	}
}

func TestRunBackgroundOverride(t *testing.T) {
	cfg := testConfig(1)
	white := colorful.Color{R: 1, G: 1, B: 1}
	cfg.Background = &white

	sink := newMemorySink()
	if _, err := NewRenderProject(cfg, scene.New("empty", 10), sink, quietLogger()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(sink.frames) != 1 {
		t.Fatalf("empty scene rendered %d frames, want 1", len(sink.frames))
	}
	if got := sink.frames[0].RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background = %v", got)
	}
}

func TestRunErrors(t *testing.T) {
	t.Run("sink failure", func(t *testing.T) {
		sink := newMemorySink()
		sink.failAt = 3
		_, err := NewRenderProject(testConfig(2), slideScene(), sink, quietLogger()).Run(context.Background())
		if err == nil || !strings.Contains(err.Error(), "disk full") {
			t.Errorf("Run() error = %v", err)
		}
		if !sink.closed {
			t.Error("sink not closed after failure")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewRenderProject(testConfig(2), slideScene(), newMemorySink(), quietLogger()).Run(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	})

	t.Run("foreign target", func(t *testing.T) {
		sc := scene.New("bad", 10)
		stray := mobject.NewDot("stray")
		sc.Timeline.AppendParallel(animation.Animate(stray).FadeOut().Build(1, nil), 1)
		_, err := NewRenderProject(testConfig(1), sc, newMemorySink(), quietLogger()).Run(context.Background())
		if !errors.Is(err, scene.ErrUnknownObject) {
			t.Errorf("Run() error = %v, want ErrUnknownObject", err)
		}
	})
}

func TestRunStatsReport(t *testing.T) {
	cfg := testConfig(1)
	cfg.ShowStats = true
	cfg.BuildVersion = "test"

	p := NewRenderProject(cfg, slideScene(), newMemorySink(), quietLogger())
	p.StatsPath = filepath.Join(t.TempDir(), "bench.log")
	if _, err := p.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(p.StatsPath)
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	for _, want := range []string{"Build: test", "Scene: slide", "Frames: 11"} {
		if !strings.Contains(line, want) {
			t.Errorf("benchmark line %q missing %q", line, want)
		}
	}
}
