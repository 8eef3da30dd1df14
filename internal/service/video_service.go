package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/h2non/filetype"
)

type VideoProcessor interface {
	Resize(ctx context.Context, input, output string) bool
	Enhance(ctx context.Context, input, output string) bool
	AddTextOverlay(ctx context.Context, input, output, text string) bool
	Trim(ctx context.Context, input, output string, start, duration float64) bool
	GenerateThumbnail(ctx context.Context, input, output string, timestamp float64) bool
}

// ffmpegProcessor shells out to ffmpeg for every stage. Each stage returns a
// bool: transforms are best-effort and the caller decides whether to care.
type ffmpegProcessor struct{}

// NewVideoProcessor returns the ffmpeg-backed processor, or the mock when
// mock mode is requested or ffmpeg is not installed.
func NewVideoProcessor(useMock bool) VideoProcessor {
	if useMock {
		return &mockVideoProcessor{}
	}
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Println("ffmpeg not available, using mock video processor")
		return &mockVideoProcessor{}
	}
	return &ffmpegProcessor{}
}

// Resize converts to the TikTok vertical 9:16 format, cropping to fill.
func (p *ffmpegProcessor) Resize(ctx context.Context, input, output string) bool {
	if !isVideoFile(input) {
		return false
	}
	return p.run(ctx,
		"-i", input,
		"-vf", "scale=1080:1920:force_original_aspect_ratio=increase,crop=1080:1920",
		output,
	)
}

func (p *ffmpegProcessor) Enhance(ctx context.Context, input, output string) bool {
	if !isVideoFile(input) {
		return false
	}
	return p.run(ctx,
		"-i", input,
		"-vf", "eq=brightness=0.06:contrast=1.1:saturation=1.1",
		output,
	)
}

func (p *ffmpegProcessor) AddTextOverlay(ctx context.Context, input, output, text string) bool {
	if !isVideoFile(input) {
		return false
	}
	filter := fmt.Sprintf(
		"drawtext=text='%s':fontcolor=white:fontsize=48:box=1:boxcolor=black@0.6:boxborderw=10:x=(w-text_w)/2:y=h-100",
		escapeDrawtext(text),
	)
	return p.run(ctx, "-i", input, "-vf", filter, output)
}

func (p *ffmpegProcessor) Trim(ctx context.Context, input, output string, start, duration float64) bool {
	if !isVideoFile(input) {
		return false
	}
	return p.run(ctx,
		"-ss", fmt.Sprintf("%.2f", start),
		"-i", input,
		"-t", fmt.Sprintf("%.2f", duration),
		"-c", "copy",
		output,
	)
}

func (p *ffmpegProcessor) GenerateThumbnail(ctx context.Context, input, output string, timestamp float64) bool {
	if !isVideoFile(input) {
		return false
	}
	return p.run(ctx,
		"-ss", fmt.Sprintf("%.2f", timestamp),
		"-i", input,
		"-frames:v", "1",
		output,
	)
}

func (p *ffmpegProcessor) run(ctx context.Context, args ...string) bool {
	cmd := exec.CommandContext(ctx, "ffmpeg", append([]string{"-y"}, args...)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		slog.Info(err.Error())
		log.Printf("ffmpeg error: %s", lastLine(string(out)))
		return false
	}
	return true
}

func isVideoFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		slog.Info(err.Error())
		return false
	}
	defer f.Close()

	buf := make([]byte, 261)
	n, err := f.Read(buf)
	if err != nil {
		slog.Info(err.Error())
		return false
	}
	return filetype.IsVideo(buf[:n])
}

func escapeDrawtext(text string) string {
	r := strings.NewReplacer(`\`, `\\`, "'", `\'`, ":", `\:`, "%", `\%`)
	return r.Replace(text)
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}

type mockVideoProcessor struct{}

func (p *mockVideoProcessor) Resize(_ context.Context, input, output string) bool {
	log.Printf("Mock: resizing %s -> %s (1080x1920)", input, output)
	return true
}

func (p *mockVideoProcessor) Enhance(_ context.Context, input, output string) bool {
	log.Printf("Mock: enhancing %s -> %s", input, output)
	return true
}

func (p *mockVideoProcessor) AddTextOverlay(_ context.Context, input, output, text string) bool {
	log.Printf("Mock: adding text %q to %s -> %s", text, input, output)
	return true
}

func (p *mockVideoProcessor) Trim(_ context.Context, input, output string, start, duration float64) bool {
	log.Printf("Mock: trimming %s (%.1fs, %.1fs) -> %s", input, start, duration, output)
	return true
}

func (p *mockVideoProcessor) GenerateThumbnail(_ context.Context, input, output string, timestamp float64) bool {
	log.Printf("Mock: generating thumbnail from %s -> %s", input, output)
	return true
}
