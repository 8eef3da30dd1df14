package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/h2non/filetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	config "github.com/maheshrc27/dronepost/configs"
	"github.com/maheshrc27/dronepost/internal/models"
	"github.com/maheshrc27/dronepost/internal/transfer"
)

const tiktokBaseURL = "https://open.tiktokapis.com/v2"

type TiktokService interface {
	GetAccessToken(ctx context.Context) (string, error)
	UploadVideo(ctx context.Context, videoPath, caption string, hashtags []string) (*models.PostResult, error)
	SearchTrendingHashtags(category string) []string
	GetVideoInfo(ctx context.Context, videoID string) (*transfer.TiktokVideoInfo, error)
	DeleteVideo(ctx context.Context, videoID string) error
}

type tiktokService struct {
	cfg    config.Config
	r2     *R2Service
	tokens oauth2.TokenSource
	client *http.Client
}

// NewTiktokService returns the real TikTok publisher, or the mock when mock
// mode is requested or credentials are missing.
func NewTiktokService(cfg config.Config, useMock bool) TiktokService {
	if useMock {
		return NewMockTiktokService()
	}
	if cfg.TiktokClientKey == "" || cfg.TiktokClientSecret == "" {
		log.Println("Warning: no TikTok credentials found, using mock publisher")
		return NewMockTiktokService()
	}

	r2, err := NewR2Service(cfg)
	if err != nil {
		log.Printf("Warning: %v, using mock publisher", err)
		return NewMockTiktokService()
	}

	// TikTok uses client_key instead of the standard client_id parameter.
	cc := &clientcredentials.Config{
		ClientID:     cfg.TiktokClientKey,
		ClientSecret: cfg.TiktokClientSecret,
		TokenURL:     tiktokBaseURL + "/oauth/token/",
		Scopes:       []string{"video.upload", "video.publish"},
		AuthStyle:    oauth2.AuthStyleInParams,
		EndpointParams: url.Values{
			"client_key": {cfg.TiktokClientKey},
		},
	}

	return &tiktokService{
		cfg:    cfg,
		r2:     r2,
		tokens: cc.TokenSource(context.Background()),
		client: &http.Client{Timeout: 2 * time.Minute},
	}
}

func (s *tiktokService) GetAccessToken(ctx context.Context) (string, error) {
	token, err := s.tokens.Token()
	if err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("error getting access token: %w", err)
	}
	return token.AccessToken, nil
}

func (s *tiktokService) UploadVideo(ctx context.Context, videoPath, caption string, hashtags []string) (*models.PostResult, error) {
	accessToken, err := s.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	videoURL, err := s.hostVideo(ctx, videoPath)
	if err != nil {
		return nil, err
	}

	uploadRequest := transfer.VideoUploadRequest{
		PostInfo: transfer.VideoPostInfo{
			Title:        buildTitle(caption, hashtags),
			PrivacyLevel: "PUBLIC_TO_EVERYONE",
			IsAIGC:       true,
		},
		SourceInfo: transfer.VideoSourceInfo{
			Source:   "PULL_FROM_URL",
			VideoURL: videoURL,
		},
	}

	jsonData, err := json.Marshal(uploadRequest)
	if err != nil {
		log.Println("Error marshalling data:", err)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tiktokBaseURL+"/post/publish/video/init/", bytes.NewBuffer(jsonData))
	if err != nil {
		log.Println("Error creating request:", err)
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Println("Error uploading video:", err)
		return nil, err
	}
	defer resp.Body.Close()

	var result transfer.TikTokUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	if resp.StatusCode != http.StatusOK || (result.Error.Code != "" && result.Error.Code != "ok") {
		log.Printf("Error posting video on tiktok: %s", result.Error.Message)
		return &models.PostResult{Success: false, Error: result.Error.Message}, nil
	}

	log.Printf("Tiktok publish id: %s", result.Data.PublishID)

	return &models.PostResult{
		Success:      true,
		VideoID:      result.Data.PublishID,
		UploadStatus: "published",
	}, nil
}

// hostVideo uploads the processed file to R2 and returns its public URL.
func (s *tiktokService) hostVideo(ctx context.Context, videoPath string) (string, error) {
	data, err := os.ReadFile(videoPath)
	if err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("error reading video file: %w", err)
	}

	contentType := "video/mp4"
	if kind, err := filetype.Match(data); err == nil && kind.MIME.Value != "" {
		contentType = kind.MIME.Value
	}

	key, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	if err := s.r2.Upload(ctx, key, data, contentType); err != nil {
		return "", fmt.Errorf("error uploading video to storage: %w", err)
	}

	return s.r2.PublicURL(key), nil
}

func (s *tiktokService) GetVideoInfo(ctx context.Context, videoID string) (*transfer.TiktokVideoInfo, error) {
	accessToken, err := s.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	query := transfer.VideoQueryRequest{
		Filters: transfer.VideoQueryFilters{VideoIDs: []string{videoID}},
	}

	jsonData, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tiktokBaseURL+"/video/query/", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	var result transfer.VideoQueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	if len(result.Data.Videos) == 0 {
		return nil, fmt.Errorf("video %s not found", videoID)
	}
	return &result.Data.Videos[0], nil
}

func (s *tiktokService) DeleteVideo(ctx context.Context, videoID string) error {
	accessToken, err := s.GetAccessToken(ctx)
	if err != nil {
		return err
	}

	jsonData, err := json.Marshal(transfer.VideoDeleteRequest{VideoID: videoID})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tiktokBaseURL+"/video/delete/", bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete failed with status %d", resp.StatusCode)
	}
	return nil
}

// SearchTrendingHashtags returns drone hashtags. The TikTok API does not
// expose trending hashtags, so this is a curated list.
func (s *tiktokService) SearchTrendingHashtags(category string) []string {
	return trendingHashtags(category, 10)
}

func trendingHashtags(category string, limit int) []string {
	tags := []string{
		"#drone",
		"#dronelife",
		"#dronephotography",
		"#aerialphotography",
		"#dji",
		"#mavic",
		"#fpv",
		"#cinematic",
		"#aerial",
		"#dronevideo",
		"#skyview",
		"#fromabove",
		"#birdseyeview",
		"#droneshots",
		"#airview",
	}
	if limit > len(tags) {
		limit = len(tags)
	}
	return tags[:limit]
}

// buildTitle appends up to the platform limit of hashtags to the caption.
func buildTitle(caption string, hashtags []string) string {
	if len(hashtags) > models.MaxHashtags {
		hashtags = hashtags[:models.MaxHashtags]
	}

	title := caption
	for _, tag := range hashtags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		if strings.Contains(title, tag) {
			continue
		}
		title += " " + tag
	}
	return title
}
