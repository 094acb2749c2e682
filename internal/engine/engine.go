// Package engine drives a scene through its frames and into a sink.
package engine

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/Hrithik0112/mini-manim/internal/config"
	"github.com/Hrithik0112/mini-manim/internal/renderer"
	"github.com/Hrithik0112/mini-manim/internal/scene"
	"github.com/Hrithik0112/mini-manim/internal/system"
	"github.com/Hrithik0112/mini-manim/internal/video"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// BenchmarkLog collects one line per render when stats are enabled.
const BenchmarkLog = "benchmark.log"

// RenderProject renders one scene with one configuration.
type RenderProject struct {
	Config *config.Config
	Scene  *scene.Scene
	Sink   video.FrameSink
	Logger *log.Logger

	// StatsPath overrides BenchmarkLog.
	StatsPath string

	pool *system.ImagePool
}

// NewRenderProject wires a render. A nil logger uses log.Default().
func NewRenderProject(cfg *config.Config, sc *scene.Scene, sink video.FrameSink, logger *log.Logger) *RenderProject {
	if logger == nil {
		logger = log.Default()
	}
	return &RenderProject{
		Config: cfg,
		Scene:  sc,
		Sink:   sink,
		Logger: logger,
		pool:   system.NewImagePool(),
	}
}

// Stats summarizes a finished render.
type Stats struct {
	Frames   int
	Duration float64 // scene seconds
	Total    time.Duration
	Render   time.Duration
	Write    time.Duration
}

// FPS is frames produced per wall-clock second.
func (s Stats) FPS() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Total.Seconds()
}

// Run arms the timeline, renders every frame and hands them to the sink in
// order. Frames are rendered in batches of Config.Workers on copies of the
// scene. Run closes the sink.
func (p *RenderProject) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	stats, err := p.run(ctx)
	closeErr := p.Sink.Close()
	if err != nil {
		return stats, err
	}
	if closeErr != nil {
		return stats, fmt.Errorf("close sink: %w", closeErr)
	}
	stats.Total = time.Since(start)

	if p.Config.ShowStats {
		p.report(stats)
	}
	return stats, nil
}

func (p *RenderProject) run(ctx context.Context) (Stats, error) {
	sc, cfg := p.Scene, p.Config
	tl := sc.Timeline

	if err := sc.Check(); err != nil {
		return Stats{}, err
	}
	if err := tl.Arm(); err != nil {
		return Stats{}, fmt.Errorf("arm timeline: %w", err)
	}

	background := sc.Background
	if cfg.Background != nil {
		background = *cfg.Background
	}
	raster := renderer.New(cfg.Width, cfg.Height, cfg.UnitPixels, background, p.pool)

	frames := tl.TotalFrameCount()
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > frames {
		workers = frames
	}
	stats := Stats{Frames: frames, Duration: tl.TotalDuration()}

	p.Logger.Info("rendering",
		"scene", sc.Name,
		"frames", frames,
		"duration", fmt.Sprintf("%.2fs", stats.Duration),
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"fps", tl.FPS(),
		"workers", workers)

	progressEvery := frames / 10
	if progressEvery < 1 {
		progressEvery = 1
	}

	batch := make([]*image.RGBA, workers)
	for first := 0; first < frames; first += workers {
		n := min(workers, frames-first)

		renderStart := time.Now()
		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < n; i++ {
			index := first + i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				f, err := sc.Seek(index)
				if err != nil {
					return err
				}
				img, err := raster.Render(f.Camera, f.Objects)
				if err != nil {
					return fmt.Errorf("frame %d: %w", index, err)
				}
				batch[i] = img
				return nil
			})
		}
		err := g.Wait()
		stats.Render += time.Since(renderStart)
		if err != nil {
			releaseAll(raster, batch[:n])
			return stats, err
		}

		writeStart := time.Now()
		for i := 0; i < n; i++ {
			index := first + i
			if err := p.Sink.WriteFrame(ctx, index, batch[i]); err != nil {
				releaseAll(raster, batch[i:n])
				return stats, fmt.Errorf("write frame %d: %w", index, err)
			}
			raster.Release(batch[i])
			batch[i] = nil

			if (index+1)%progressEvery == 0 || index == frames-1 {
				p.Logger.Info("frame", "ready", index+1, "of", frames)
			}
		}
		stats.Write += time.Since(writeStart)
	}
	return stats, nil
}

func releaseAll(raster *renderer.Rasterizer, imgs []*image.RGBA) {
	for i, img := range imgs {
		if img != nil {
			raster.Release(img)
			imgs[i] = nil
		}
	}
}

func (p *RenderProject) report(s Stats) {
	host := system.ReadHostStats()
	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Host: %s\n"+
			"Frames: %d (%.2fs of scene)\n"+
			"Total Time: %.2fs\n"+
			"Rendering: %.2fs\n"+
			"Writing: %.2fs\n"+
			"Effective FPS: %.2f\n"+
			"----------------------------\n",
		p.Config.BuildVersion, host, s.Frames, s.Duration,
		s.Total.Seconds(), s.Render.Seconds(), s.Write.Seconds(), s.FPS(),
	)
	fmt.Print(report)

	entry := fmt.Sprintf("[%s] Build: %s | Scene: %s | Frames: %d | Total: %.2fs | Render: %.2fs | Write: %.2fs | FPS: %.2f | Workers: %d\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		sceneLabel(p.Config, p.Scene),
		s.Frames,
		s.Total.Seconds(),
		s.Render.Seconds(),
		s.Write.Seconds(),
		s.FPS(),
		p.Config.Workers,
	)

	path := p.StatsPath
	if path == "" {
		path = BenchmarkLog
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		p.Logger.Warn("could not write benchmark log", "path", path, "err", err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(entry); err != nil {
		p.Logger.Warn("could not write benchmark log", "path", path, "err", err)
	}
}

func sceneLabel(cfg *config.Config, sc *scene.Scene) string {
	if cfg.ScenePath != "" {
		return filepath.Base(cfg.ScenePath)
	}
	return sc.Name
}
