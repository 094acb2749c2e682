package config

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestResolution(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"720p", 1280, 720, false},
		{"1080P", 1920, 1080, false},
		{"4k", 3840, 2160, false},
		{"9:16", 720, 1280, false},
		{"8k", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := Resolution(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("got %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestParseBackground(t *testing.T) {
	tests := []struct {
		in      string
		want    colorful.Color
		wantErr bool
	}{
		{"0,0,0", colorful.Color{}, false},
		{"1, 0.5, 0", colorful.Color{R: 1, G: 0.5}, false},
		{"#ff0000", colorful.Color{R: 1}, false},
		{"1,1", colorful.Color{}, true},
		{"2,0,0", colorful.Color{}, true},
		{"a,b,c", colorful.Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBackground(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cfg := &Config{Width: 1279, Height: 720}
	if err := cfg.Normalize(); err != nil {
		t.Fatal(err)
	}
	if cfg.FPS != DefaultFPS || cfg.Width != 1280 || cfg.Workers != 1 {
		t.Errorf("normalized %+v", cfg)
	}
	if cfg.UnitPixels != 90 {
		t.Errorf("UnitPixels = %v, want 90", cfg.UnitPixels)
	}
	if cfg.OutputVideo != DefaultOutput {
		t.Errorf("OutputVideo = %q", cfg.OutputVideo)
	}

	frames := &Config{ExportFrames: true}
	frames.Normalize()
	if frames.FramesDir != DefaultFramesDir || frames.Width != 1920 {
		t.Errorf("frames config %+v", frames)
	}
}
