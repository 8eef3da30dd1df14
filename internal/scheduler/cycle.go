package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/maheshrc27/dronepost/internal/models"
)

// retryBackoff is the fixed delay before a failed item becomes due again.
const retryBackoff = 2 * time.Hour

// ProcessQueue runs one processing cycle: every scheduled or previously
// failed item due at the cycle's snapshot time is attempted exactly once.
// Successes move to the posted archive; failures stay pending, rescheduled
// retryBackoff later and picked up again once that passes. State is
// persisted when at least one item changed. Returns the number of items
// posted.
func (e *Engine) ProcessQueue(ctx context.Context) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()

	var due []*models.ContentItem
	for _, item := range e.queue {
		if item.ScheduledFor == nil || item.ScheduledFor.After(now) {
			continue
		}
		if item.Status == models.ContentStatusScheduled || item.Status == models.ContentStatusFailed {
			due = append(due, item)
		}
	}

	posted := 0
	for _, item := range due {
		log.Printf("Processing scheduled content: %s", item.ID)

		result := e.postContent(ctx, item)

		if result.Success {
			item.Status = models.ContentStatusPosted
			postedAt := now
			item.PostedAt = &postedAt
			item.PostResult = result

			e.posted = append(e.posted, item)
			e.removeFromQueue(item.ID)
			posted++

			log.Printf("Successfully posted content ID: %s", item.ID)
		} else {
			retryAt := now.Add(retryBackoff)
			item.ScheduledFor = &retryAt
			item.Status = models.ContentStatusFailed

			log.Printf("Failed to post content ID: %s, rescheduled: %s", item.ID, result.Error)
		}
	}

	if len(due) > 0 {
		e.persist()
	}
	return posted
}

// postContent runs one publish attempt: transform stages first, then the
// publisher. Transform failures are logged but do not gate the upload.
// Publisher errors are converted into a failed result, never propagated.
func (e *Engine) postContent(ctx context.Context, item *models.ContentItem) *models.PostResult {
	videoPath := item.VideoPath
	if videoPath == "" {
		videoPath = fmt.Sprintf("mock_video_%s.mp4", item.ID)
	}

	if ok := e.vid.Resize(ctx, videoPath, "processed_"+videoPath); !ok {
		log.Printf("Resize failed for %s", item.ID)
	}
	if ok := e.vid.Enhance(ctx, videoPath, "enhanced_"+videoPath); !ok {
		log.Printf("Enhance failed for %s", item.ID)
	}
	if ok := e.vid.AddTextOverlay(ctx, videoPath, "final_"+videoPath, truncate(item.Caption, 20)); !ok {
		log.Printf("Text overlay failed for %s", item.ID)
	}

	result, err := e.pub.UploadVideo(ctx, videoPath, item.Caption, item.Hashtags)
	if err != nil {
		return &models.PostResult{Success: false, Error: err.Error()}
	}
	return result
}

func (e *Engine) removeFromQueue(id string) {
	for i, item := range e.queue {
		if item.ID == id {
			e.queue = append(e.queue[:i], e.queue[i+1:]...)
			return
		}
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
