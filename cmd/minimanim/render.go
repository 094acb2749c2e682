package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/Hrithik0112/mini-manim/internal/config"
	"github.com/Hrithik0112/mini-manim/internal/engine"
	"github.com/Hrithik0112/mini-manim/internal/scene"
	"github.com/Hrithik0112/mini-manim/internal/system"
	"github.com/Hrithik0112/mini-manim/internal/video"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	sceneName    string
	scenesDir    string
	latest       bool
	output       string
	fps          int
	resolution   string
	width        int
	height       int
	unitPixels   float64
	exportFrames bool
	framesDir    string
	background   string
	workers      int
	encoder      string
	quality      int
	audio        string
	audioSync    bool
	stats        bool
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render [scene.yaml]",
		Short: "Render a scene to video or PNG frames",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runRender(cmd.Context(), path, f, cmd.Flags().Changed("scene"))
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.sceneName, "scene", "s", scene.DefaultScene, "Built-in scene to render")
	fl.StringVar(&f.scenesDir, "scenes-dir", "scenes", "Directory searched by --latest")
	fl.BoolVar(&f.latest, "latest", false, "Render the most recently modified scene file in --scenes-dir")
	fl.StringVarP(&f.output, "output", "o", "", "Output video (default output/<scene>_<timestamp>.mp4)")
	fl.IntVar(&f.fps, "fps", 0, "Frames per second (default: the scene's, else 30)")
	fl.StringVarP(&f.resolution, "resolution", "r", config.DefaultResolution, "Resolution preset: 720p, 1080p, 4k, 16:9, 9:16, 4:5")
	fl.IntVar(&f.width, "width", 0, "Frame width, overrides --resolution")
	fl.IntVar(&f.height, "height", 0, "Frame height, overrides --resolution")
	fl.Float64Var(&f.unitPixels, "unit-pixels", 0, "Pixels per scene unit (default: height/8)")
	fl.BoolVar(&f.exportFrames, "export-frames", false, "Write PNG frames instead of a video")
	fl.StringVar(&f.framesDir, "frames-dir", config.DefaultFramesDir, "Directory for exported frames")
	fl.StringVar(&f.background, "background", "", "Background as #rrggbb or R,G,B in [0,1] (default: the scene's)")
	fl.IntVarP(&f.workers, "workers", "w", system.DefaultWorkers(), "Frames rendered in parallel")
	fl.StringVar(&f.encoder, "encoder", "", "H.264 encoder (default: best available)")
	fl.IntVar(&f.quality, "quality", 0, "Quality (0 = auto; x264: CRF, nvenc: CQ, VideoToolbox: bitrate = Q*100 kbit/s)")
	fl.StringVar(&f.audio, "audio", "", "Audio track to mux into the video, or a directory to take the newest track from")
	fl.BoolVar(&f.audioSync, "audio-sync", true, "Hold the last frame until the audio ends")
	fl.BoolVar(&f.stats, "stats", false, "Print a performance report and append it to benchmark.log")
	return cmd
}

func runRender(ctx context.Context, path string, f renderFlags, sceneChosen bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if path == "" && f.latest && !sceneChosen {
		latest, err := scene.FindLatestScene(f.scenesDir)
		if err != nil {
			return err
		}
		path = latest
		logger.Info("using latest scene file", "path", path)
	}

	sc, err := loadScene(path, f.sceneName, f.fps)
	if err != nil {
		return err
	}

	if f.audio != "" {
		if info, err := os.Stat(f.audio); err == nil && info.IsDir() {
			latest, err := system.FindLatest(f.audio, system.AudioExtensions)
			if err != nil {
				return err
			}
			f.audio = latest
			logger.Info("using latest audio file", "path", latest)
		}
	}

	cfg, err := buildConfig(path, sc, f)
	if err != nil {
		return err
	}

	if cfg.AudioPath != "" && f.audioSync && !cfg.ExportFrames {
		if d, err := system.GetAudioDuration(cfg.AudioPath); err != nil {
			logger.Warn("could not read audio duration", "path", cfg.AudioPath, "err", err)
		} else if pad := d - sc.Timeline.TotalDuration(); pad > 0 {
			sc.Wait(pad)
			logger.Info("holding last frame for audio", "audio", fmt.Sprintf("%.2fs", d), "pad", fmt.Sprintf("%.2fs", pad))
		}
	}

	var sink video.FrameSink
	if cfg.ExportFrames {
		sink, err = video.NewPNGSink(cfg.FramesDir)
	} else {
		if err := ensureParentDir(cfg.OutputVideo); err != nil {
			return err
		}
		sink, err = video.NewFFmpegSink(ctx, cfg.OutputVideo, video.EncodeParams{
			Width:     cfg.Width,
			Height:    cfg.Height,
			FPS:       sc.FPS(),
			Encoder:   cfg.VideoEncoder,
			Quality:   cfg.Quality,
			AudioPath: cfg.AudioPath,
		})
	}
	if err != nil {
		return err
	}

	project := engine.NewRenderProject(cfg, sc, sink, logger)
	stats, err := project.Run(ctx)
	if err != nil {
		return fmt.Errorf("render %s: %w", sc.Name, err)
	}

	if cfg.ExportFrames {
		logger.Info("done", "frames", stats.Frames, "dir", cfg.FramesDir, "took", stats.Total.Round(time.Millisecond))
	} else {
		logger.Info("done", "video", cfg.OutputVideo, "frames", stats.Frames, "took", stats.Total.Round(time.Millisecond))
	}
	return nil
}

// loadScene reads a scene file, or a built-in scene when path is empty.
// fps > 0 overrides the scene's own rate.
func loadScene(path, name string, fps int) (*scene.Scene, error) {
	var file *scene.File
	baseDir := "."
	if path != "" {
		var err error
		if file, err = scene.Read(path); err != nil {
			return nil, err
		}
		baseDir = filepath.Dir(path)
		if file.Name == "" {
			file.Name = trimExt(filepath.Base(path))
		}
	} else {
		registered, err := scene.DefaultRegistry().Lookup(name)
		if err != nil {
			return nil, err
		}
		cp := *registered
		file = &cp
	}

	if fps > 0 {
		file.FPS = fps
	}
	sc, err := scene.Build(file, baseDir)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", file.Name, err)
	}
	return sc, nil
}

func buildConfig(path string, sc *scene.Scene, f renderFlags) (*config.Config, error) {
	w, h, err := config.Resolution(f.resolution)
	if err != nil {
		return nil, err
	}
	if f.width > 0 {
		w = f.width
	}
	if f.height > 0 {
		h = f.height
	}

	cfg := &config.Config{
		ScenePath:    path,
		SceneName:    sc.Name,
		OutputVideo:  f.output,
		Width:        w,
		Height:       h,
		FPS:          sc.FPS(),
		Workers:      f.workers,
		UnitPixels:   f.unitPixels,
		ExportFrames: f.exportFrames,
		FramesDir:    f.framesDir,
		AudioPath:    f.audio,
		VideoEncoder: f.encoder,
		Quality:      f.quality,
		ShowStats:    f.stats,
		BuildVersion: version,
	}

	if f.background != "" {
		bg, err := config.ParseBackground(f.background)
		if err != nil {
			return nil, err
		}
		cfg.Background = &bg
	}

	if !cfg.ExportFrames {
		if cfg.OutputVideo == "" {
			cfg.OutputVideo = scene.OutputPath("output", sc.Name, time.Now())
		}
		if cfg.VideoEncoder == "" {
			cfg.VideoEncoder = system.GetBestH264Encoder()
			if cfg.VideoEncoder != "libx264" {
				logger.Info("hardware encoder detected", "encoder", cfg.VideoEncoder)
			}
		}
		if cfg.Quality == 0 {
			cfg.Quality = system.DefaultQuality(cfg.VideoEncoder)
		}
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	logger.Debug("config", "width", cfg.Width, "height", cfg.Height, "fps", cfg.FPS, "workers", cfg.Workers, "unit_pixels", cfg.UnitPixels)
	return cfg, nil
}

// ensureParentDir creates the directory that will hold path.
func ensureParentDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
