package video

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// FramePattern names exported frames.
const FramePattern = "frame_%05d.png"

// PNGSink writes every frame as a numbered PNG file.
type PNGSink struct {
	Dir     string
	written int
	encoder png.Encoder
}

// NewPNGSink creates dir if needed.
func NewPNGSink(dir string) (*PNGSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create frames dir: %w", err)
	}
	return &PNGSink{Dir: dir, encoder: png.Encoder{CompressionLevel: png.BestSpeed}}, nil
}

// FramePath is where frame index is written.
func (s *PNGSink) FramePath(index int) string {
	return filepath.Join(s.Dir, fmt.Sprintf(FramePattern, index))
}

func (s *PNGSink) WriteFrame(ctx context.Context, index int, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(s.FramePath(index))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := s.encoder.Encode(w, img); err != nil {
		f.Close()
		return fmt.Errorf("encode frame %d: %w", index, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.written++
	return nil
}

// Close is a no-op; files are complete after each WriteFrame.
func (s *PNGSink) Close() error { return nil }

// Frames reports how many frames were written.
func (s *PNGSink) Frames() int { return s.written }
