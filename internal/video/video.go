package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"
)

// FrameSink receives rendered frames in order.
type FrameSink interface {
	WriteFrame(ctx context.Context, index int, img image.Image) error
	Close() error
}

// EncodeParams describes the video stream an FFmpegSink produces.
type EncodeParams struct {
	Width, Height int
	FPS           int
	Encoder       string
	Quality       int
	AudioPath     string
}

// FFmpegSink pipes raw RGBA frames into a single ffmpeg process.
type FFmpegSink struct {
	path   string
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	next   int
	closed bool
}

// NewFFmpegSink starts ffmpeg writing to videoPath. The process ends when
// the context is cancelled or Close is called.
func NewFFmpegSink(ctx context.Context, videoPath string, params EncodeParams) (*FFmpegSink, error) {
	s := &FFmpegSink{path: videoPath}
	s.cmd = exec.CommandContext(ctx, "ffmpeg", buildArgs(videoPath, params)...)
	s.cmd.Stderr = &s.stderr

	stdin, err := s.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe error: %w", err)
	}
	s.stdin = stdin

	if err := s.cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffmpeg start error: %w", err)
	}
	return s, nil
}

func buildArgs(videoPath string, p EncodeParams) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"-framerate", fmt.Sprintf("%d", p.FPS),
		"-i", "-",
	}
	if p.AudioPath != "" {
		args = append(args, "-i", p.AudioPath, "-map", "0:v", "-map", "1:a", "-c:a", "aac", "-shortest")
	}

	encoder := p.Encoder
	if encoder == "" {
		encoder = "libx264"
	}
	args = append(args, "-pix_fmt", "yuv420p", "-c:v", encoder)
	args = append(args, qualityArgs(encoder, p.Quality)...)
	return append(args, videoPath)
}

func qualityArgs(encoder string, quality int) []string {
	switch encoder {
	case "h264_videotoolbox":
		// quality 75 -> 7.5 Mbit/s
		return []string{"-b:v", fmt.Sprintf("%dk", quality*100)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", quality)}
	default: // libx264
		return []string{"-crf", fmt.Sprintf("%d", quality), "-preset", "medium"}
	}
}

// WriteFrame streams one frame. Frames must arrive in index order.
func (s *FFmpegSink) WriteFrame(ctx context.Context, index int, img image.Image) error {
	if s.closed {
		return fmt.Errorf("write frame %d: sink closed", index)
	}
	if index != s.next {
		return fmt.Errorf("write frame %d: expected frame %d", index, s.next)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeRawRGBA(s.stdin, img); err != nil {
		return fmt.Errorf("write raw error: %w", err)
	}
	s.next++
	return nil
}

// Close finishes the stream and waits for ffmpeg.
func (s *FFmpegSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error: %v, output: %s", err, s.stderr.String())
	}
	return nil
}

// Frames reports how many frames were written.
func (s *FFmpegSink) Frames() int { return s.next }

func writeRawRGBA(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	_, err := w.Write(rgba.Pix)
	return err
}
