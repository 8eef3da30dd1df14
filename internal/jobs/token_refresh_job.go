package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/dronepost/internal/service"
)

// TokenRefreshJob keeps the publisher's access token warm so a publish
// attempt is not the first request to hit an expired credential.
type TokenRefreshJob struct {
	tt service.TiktokService
}

func NewTokenRefreshJob(tt service.TiktokService) *TokenRefreshJob {
	return &TokenRefreshJob{tt: tt}
}

func (c *TokenRefreshJob) RefreshTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := c.tt.GetAccessToken(ctx); err != nil {
		slog.Info("Unable to refresh token for TikTok: " + err.Error())
	}
}
