package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "exactly twenty chars", truncate("exactly twenty chars!", 20))
	assert.Equal(t, "", truncate("", 20))

	// Rune-safe on multi-byte input.
	assert.Equal(t, "日本語", truncate("日本語のキャプション", 3))
}
