package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScene(t *testing.T) {
	sc, err := loadScene("", "move", 24)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "move" || sc.FPS() != 24 {
		t.Errorf("scene %q at %d fps", sc.Name, sc.FPS())
	}

	if _, err := loadScene("", "nope", 0); err == nil {
		t.Error("Expected error for unknown scene")
	}

	path := filepath.Join(t.TempDir(), "intro.yaml")
	os.WriteFile(path, []byte("version: \"1.0\"\nobjects:\n  - id: a\n    shape: dot\nblocks:\n  - duration: 1\n"), 0644)
	sc, err = loadScene(path, "move", 0)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "intro" || sc.FPS() != 30 {
		t.Errorf("file scene %q at %d fps", sc.Name, sc.FPS())
	}
}

func TestBuildConfigFrames(t *testing.T) {
	sc, err := loadScene("", "shapes", 0)
	if err != nil {
		t.Fatal(err)
	}
	f := renderFlags{
		resolution:   "720p",
		height:       360,
		exportFrames: true,
		framesDir:    "out",
		background:   "1,1,1",
		workers:      2,
	}
	cfg, err := buildConfig("", sc, f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1280 || cfg.Height != 360 || cfg.FramesDir != "out" || cfg.OutputVideo != "" {
		t.Errorf("config %+v", cfg)
	}
	if cfg.Background == nil || cfg.Background.R != 1 {
		t.Errorf("background %v", cfg.Background)
	}

	f.resolution = "8k"
	if _, err := buildConfig("", sc, f); err == nil {
		t.Error("Expected error for unknown resolution")
	}
}

func TestTrimExt(t *testing.T) {
	if got := trimExt("scene.v2.yaml"); got != "scene.v2" {
		t.Errorf("trimExt = %q", got)
	}
}

func TestEnsureParentDir(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "renders", "scene.mp4")
	if err := ensureParentDir(out); err != nil {
		t.Fatalf("ensureParentDir: %v", err)
	}
	if fi, err := os.Stat(filepath.Dir(out)); err != nil || !fi.IsDir() {
		t.Errorf("output dir not created: %v", err)
	}

	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := ensureParentDir(filepath.Join(blocker, "scene.mp4")); err == nil {
		t.Error("Expected error when the parent is a regular file")
	}
}
