package scheduler

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/maheshrc27/dronepost/internal/models"
)

// newContentID mints a unique id. The unix timestamp keeps ids sortable by
// creation time; the random suffix keeps same-second batches distinct.
func newContentID(prefix string, now time.Time) string {
	suffix, err := gonanoid.Generate("abcdefghijklmnopqrstuvwxyz0123456789", 6)
	if err != nil {
		return fmt.Sprintf("%s_%d", prefix, now.UnixNano())
	}
	return fmt.Sprintf("%s_%d_%s", prefix, now.Unix(), suffix)
}

// GenerateBatch asks the generator for count fresh content items. A single
// idea failing to produce a script or caption is skipped, so partial batches
// are expected and valid. The batch is returned unscheduled; callers enqueue
// it separately.
func (e *Engine) GenerateBatch(ctx context.Context, theme string, count int) []*models.ContentItem {
	log.Printf("Generating %d content items...", count)

	ideas, err := e.gen.GenerateContentIdeas(ctx, theme, count)
	if err != nil {
		log.Printf("Error generating content ideas: %v", err)
		return nil
	}

	now := e.now()
	batch := make([]*models.ContentItem, 0, len(ideas))

	for i, idea := range ideas {
		script, err := e.gen.GenerateVideoScript(ctx, idea, "30 seconds")
		if err != nil {
			log.Printf("Error generating script for idea %d: %v", i, err)
			continue
		}

		caption, err := e.gen.GenerateCaption(ctx, idea, "tiktok")
		if err != nil {
			log.Printf("Error generating caption for idea %d: %v", i, err)
			continue
		}

		hashtags := e.pub.SearchTrendingHashtags("drone")
		if len(hashtags) > models.MaxHashtags {
			hashtags = hashtags[:models.MaxHashtags]
		}

		batch = append(batch, &models.ContentItem{
			ID:        newContentID("content", now),
			Idea:      idea,
			Script:    script,
			Caption:   caption,
			Hashtags:  hashtags,
			Status:    models.ContentStatusReady,
			CreatedAt: now,
		})
	}

	log.Printf("Generated %d content items", len(batch))
	return batch
}

// Enqueue schedules each item at a random time within the next 3 days,
// during the 08:00-21:00 posting window on a quarter-hour mark. Spreading
// posts avoids a bursty bot-like pattern.
func (e *Engine) Enqueue(items []*models.ContentItem) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	for _, item := range items {
		due := now.AddDate(0, 0, rand.Intn(4))
		due = time.Date(due.Year(), due.Month(), due.Day(), 8+rand.Intn(14), 15*rand.Intn(4), 0, 0, due.Location())
		if due.Before(now) {
			// A same-day slot earlier than now slides to tomorrow.
			due = due.AddDate(0, 0, 1)
		}

		scheduledFor := due
		item.ScheduledFor = &scheduledFor
		item.Status = models.ContentStatusScheduled
		e.queue = append(e.queue, item)
	}

	e.persist()
	log.Printf("Added %d items to posting queue", len(items))
}

// AddManualPost queues an item without scheduling it: it stays ready until
// someone schedules it explicitly.
func (e *Engine) AddManualPost(idea, caption string, hashtags []string, videoPath string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	item := &models.ContentItem{
		ID:        newContentID("manual", now),
		Idea:      idea,
		Caption:   caption,
		Hashtags:  hashtags,
		VideoPath: videoPath,
		Status:    models.ContentStatusReady,
		CreatedAt: now,
	}

	e.queue = append(e.queue, item)
	e.persist()
	return item.ID
}
