package scene

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/Hrithik0112/mini-manim/internal/system"
)

// FindLatestScene returns the most recently modified scene file in dir.
func FindLatestScene(dir string) (string, error) {
	path, err := system.FindLatest(dir, system.SceneExtensions)
	if err != nil {
		return "", fmt.Errorf("find latest scene: %w", err)
	}
	return path, nil
}

// OutputPath creates a timestamped video name for a scene inside dir.
func OutputPath(dir, name string, now time.Time) string {
	if name == "" {
		name = "scene"
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s.mp4", name, now.Format("2006-01-02_15-04-05")))
}
