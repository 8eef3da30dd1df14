package scheduler

import "github.com/maheshrc27/dronepost/internal/models"

type QueueStatus struct {
	TotalInQueue   int                 `json:"total_in_queue"`
	ScheduledCount int                 `json:"scheduled_count"`
	ReadyCount     int                 `json:"ready_count"`
	PostedCount    int                 `json:"posted_count"`
	NextPost       *models.ContentItem `json:"next_post,omitempty"`
}

// Status derives aggregate counts and the next upcoming post from current
// state. Read-only: calling it twice without a cycle in between returns
// identical results.
func (e *Engine) Status() QueueStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	status := QueueStatus{
		TotalInQueue: len(e.queue),
		PostedCount:  len(e.posted),
	}

	for _, item := range e.queue {
		switch item.Status {
		case models.ContentStatusScheduled:
			status.ScheduledCount++
			if status.NextPost == nil && item.ScheduledFor != nil && item.ScheduledFor.After(now) {
				status.NextPost = item.Clone()
			}
		case models.ContentStatusReady:
			status.ReadyCount++
		}
	}

	return status
}
