package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTiktokUploadVideo(t *testing.T) {
	t.Parallel()

	tt := NewMockTiktokService()

	result, err := tt.UploadVideo(context.Background(), "mock_video_1.mp4", "Drone life!", []string{"#drone"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Mock)
	assert.True(t, strings.HasPrefix(result.VideoID, "mock_video_"))
	assert.Equal(t, "published", result.UploadStatus)

	info, err := tt.GetVideoInfo(context.Background(), result.VideoID)
	require.NoError(t, err)
	assert.Equal(t, "Drone life!", info.Description)
}

func TestMockTiktokDeleteVideo(t *testing.T) {
	t.Parallel()

	tt := NewMockTiktokService()

	result, err := tt.UploadVideo(context.Background(), "a.mp4", "caption", nil)
	require.NoError(t, err)

	require.NoError(t, tt.DeleteVideo(context.Background(), result.VideoID))

	_, err = tt.GetVideoInfo(context.Background(), result.VideoID)
	assert.Error(t, err)
	assert.Error(t, tt.DeleteVideo(context.Background(), result.VideoID))
}

func TestMockTiktokAccessToken(t *testing.T) {
	t.Parallel()

	token, err := NewMockTiktokService().GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestSearchTrendingHashtags(t *testing.T) {
	t.Parallel()

	tags := NewMockTiktokService().SearchTrendingHashtags("drone")
	require.NotEmpty(t, tags)
	assert.Len(t, tags, 7)
	for _, tag := range tags {
		assert.True(t, strings.HasPrefix(tag, "#"), tag)
	}
}

func TestBuildTitle(t *testing.T) {
	t.Parallel()

	t.Run("appends hashtags", func(t *testing.T) {
		title := buildTitle("Great view", []string{"#drone", "dji"})
		assert.Equal(t, "Great view #drone #dji", title)
	})

	t.Run("caps at platform limit", func(t *testing.T) {
		tags := []string{"#a", "#b", "#c", "#d", "#e", "#f", "#g"}
		title := buildTitle("caption", tags)
		assert.Equal(t, "caption #a #b #c #d #e", title)
	})

	t.Run("skips duplicates and blanks", func(t *testing.T) {
		title := buildTitle("Flying #drone today", []string{"#drone", "", "  ", "#fpv"})
		assert.Equal(t, "Flying #drone today #fpv", title)
	})
}
