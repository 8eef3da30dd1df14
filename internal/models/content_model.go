package models

import "time"

type ContentItem struct {
	ID           string      `json:"id"`
	Idea         string      `json:"idea"`
	Script       *Script     `json:"script,omitempty"`
	Caption      string      `json:"caption"`
	Hashtags     []string    `json:"hashtags"`
	VideoPath    string      `json:"video_path,omitempty"`
	Status       string      `json:"status"` // ready, scheduled, posted, failed
	ScheduledFor *time.Time  `json:"scheduled_for,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	PostedAt     *time.Time  `json:"posted_at,omitempty"`
	PostResult   *PostResult `json:"post_result,omitempty"`
}

// Clone returns a deep copy. Snapshots handed outside the scheduler's lock
// must not share pointers with live queue state.
func (c *ContentItem) Clone() *ContentItem {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Hashtags = append([]string(nil), c.Hashtags...)
	if c.Script != nil {
		script := *c.Script
		script.Movements = append([]string(nil), c.Script.Movements...)
		script.Hashtags = append([]string(nil), c.Script.Hashtags...)
		clone.Script = &script
	}
	if c.ScheduledFor != nil {
		t := *c.ScheduledFor
		clone.ScheduledFor = &t
	}
	if c.PostedAt != nil {
		t := *c.PostedAt
		clone.PostedAt = &t
	}
	if c.PostResult != nil {
		result := *c.PostResult
		clone.PostResult = &result
	}
	return &clone
}

// Script is the generated shot plan for a video. When the generator returns
// something that is not valid JSON the whole text is kept in Raw instead.
type Script struct {
	Opening   string   `json:"opening,omitempty"`
	Movements []string `json:"movements,omitempty"`
	Story     string   `json:"story,omitempty"`
	Closing   string   `json:"closing,omitempty"`
	Music     string   `json:"music,omitempty"`
	Hashtags  []string `json:"hashtags,omitempty"`
	Raw       string   `json:"raw_script,omitempty"`
}

type PostResult struct {
	Success      bool   `json:"success"`
	VideoID      string `json:"video_id,omitempty"`
	UploadStatus string `json:"status,omitempty"`
	Error        string `json:"error,omitempty"`
	Mock         bool   `json:"mock,omitempty"`
}

const (
	ContentStatusReady     = "ready"
	ContentStatusScheduled = "scheduled"
	ContentStatusPosted    = "posted"
	ContentStatusFailed    = "failed"
)

// MaxHashtags is the platform limit on hashtags attached to a single post.
const MaxHashtags = 5
