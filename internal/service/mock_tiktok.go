package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/maheshrc27/dronepost/internal/models"
	"github.com/maheshrc27/dronepost/internal/transfer"
)

// mockTiktokService simulates publishing without API credentials and records
// every upload so video info and delete keep working against it.
type mockTiktokService struct {
	mu       sync.Mutex
	uploaded []mockUpload
}

type mockUpload struct {
	VideoID    string
	Caption    string
	Hashtags   []string
	UploadedAt time.Time
}

func NewMockTiktokService() TiktokService {
	return &mockTiktokService{}
}

func (s *mockTiktokService) GetAccessToken(_ context.Context) (string, error) {
	return "mock_access_token_12345", nil
}

func (s *mockTiktokService) UploadVideo(_ context.Context, videoPath, caption string, hashtags []string) (*models.PostResult, error) {
	suffix, err := gonanoid.Generate("abcdefghijklmnopqrstuvwxyz0123456789", 8)
	if err != nil {
		return nil, err
	}
	videoID := "mock_video_" + suffix

	s.mu.Lock()
	s.uploaded = append(s.uploaded, mockUpload{
		VideoID:    videoID,
		Caption:    caption,
		Hashtags:   hashtags,
		UploadedAt: time.Now(),
	})
	s.mu.Unlock()

	log.Printf("Mock posting: %s", caption)

	return &models.PostResult{
		Success:      true,
		VideoID:      videoID,
		UploadStatus: "published",
		Mock:         true,
	}, nil
}

func (s *mockTiktokService) GetVideoInfo(_ context.Context, videoID string) (*transfer.TiktokVideoInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.uploaded {
		if v.VideoID == videoID {
			title := v.Caption
			if len(title) > 100 {
				title = title[:100]
			}
			return &transfer.TiktokVideoInfo{
				ID:          v.VideoID,
				Title:       title,
				Description: v.Caption,
				CreateTime:  v.UploadedAt.Unix(),
			}, nil
		}
	}
	return nil, fmt.Errorf("video %s not found", videoID)
}

func (s *mockTiktokService) DeleteVideo(_ context.Context, videoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.uploaded {
		if v.VideoID == videoID {
			s.uploaded = append(s.uploaded[:i], s.uploaded[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("video %s not found", videoID)
}

func (s *mockTiktokService) SearchTrendingHashtags(category string) []string {
	return trendingHashtags(category, 7)
}
