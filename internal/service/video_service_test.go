package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVideoProcessorMock(t *testing.T) {
	t.Parallel()

	p := NewVideoProcessor(true)
	_, isMock := p.(*mockVideoProcessor)
	assert.True(t, isMock)

	ctx := context.Background()
	assert.True(t, p.Resize(ctx, "in.mp4", "out.mp4"))
	assert.True(t, p.Enhance(ctx, "in.mp4", "out.mp4"))
	assert.True(t, p.AddTextOverlay(ctx, "in.mp4", "out.mp4", "caption"))
	assert.True(t, p.Trim(ctx, "in.mp4", "out.mp4", 0, 30))
	assert.True(t, p.GenerateThumbnail(ctx, "in.mp4", "thumb.jpg", 1))
}

func TestEscapeDrawtext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `plain text`, escapeDrawtext("plain text"))
	assert.Equal(t, `it\'s 50\% done\: yes`, escapeDrawtext("it's 50% done: yes"))
}

func TestIsVideoFileMissing(t *testing.T) {
	t.Parallel()

	assert.False(t, isVideoFile("/nonexistent/video.mp4"))
}
