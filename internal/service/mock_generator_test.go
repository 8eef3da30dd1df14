package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGenerateContentIdeas(t *testing.T) {
	t.Parallel()

	gen := NewMockContentGenerator()

	ideas, err := gen.GenerateContentIdeas(context.Background(), "drone tours", 5)
	require.NoError(t, err)
	assert.Len(t, ideas, 5)

	// Distinct ideas, sampled without replacement.
	seen := map[string]bool{}
	for _, idea := range ideas {
		assert.False(t, seen[idea])
		seen[idea] = true
	}

	// Oversized counts clamp to the pool size.
	ideas, err = gen.GenerateContentIdeas(context.Background(), "drone tours", 100)
	require.NoError(t, err)
	assert.Len(t, ideas, 15)
}

func TestMockGenerateContentIdeasViralTheme(t *testing.T) {
	t.Parallel()

	gen := NewMockContentGenerator()

	ideas, err := gen.GenerateContentIdeas(context.Background(), "viral drone content", 3)
	require.NoError(t, err)
	for _, idea := range ideas {
		assert.True(t, strings.HasPrefix(idea, "VIRAL: "), idea)
	}
}

func TestMockGenerateVideoScript(t *testing.T) {
	t.Parallel()

	gen := NewMockContentGenerator()

	script, err := gen.GenerateVideoScript(context.Background(), "Beach wave tracking drone shot", "30 seconds")
	require.NoError(t, err)
	assert.NotEmpty(t, script.Opening)
	assert.Len(t, script.Movements, 3)
	assert.NotEmpty(t, script.Story)
	assert.NotEmpty(t, script.Closing)
	assert.NotEmpty(t, script.Music)
	assert.Len(t, script.Hashtags, 4)
	assert.Empty(t, script.Raw)
}

func TestMockGenerateCaption(t *testing.T) {
	t.Parallel()

	gen := NewMockContentGenerator()

	caption, err := gen.GenerateCaption(context.Background(), "Epic mountain sunrise drone reveal with cinematic transitions", "tiktok")
	require.NoError(t, err)
	assert.NotEmpty(t, caption)
	assert.LessOrEqual(t, len(caption), 150)
}

func TestMockGenerateDroneTips(t *testing.T) {
	t.Parallel()

	gen := NewMockContentGenerator()

	for _, level := range []string{"beginner", "advanced"} {
		tips, err := gen.GenerateDroneTips(context.Background(), level)
		require.NoError(t, err)
		assert.Len(t, tips, 3)
	}
}

func TestMockAnalyzeTrends(t *testing.T) {
	t.Parallel()

	gen := NewMockContentGenerator()

	trends, err := gen.AnalyzeTrends(context.Background())
	require.NoError(t, err)
	assert.Contains(t, trends.Analysis, "TRENDS")
	assert.NotEmpty(t, trends.Hashtags)
}
