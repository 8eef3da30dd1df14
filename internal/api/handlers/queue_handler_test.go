package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/maheshrc27/dronepost/configs"
	"github.com/maheshrc27/dronepost/internal/api/handlers"
	"github.com/maheshrc27/dronepost/internal/api/middleware"
	"github.com/maheshrc27/dronepost/internal/scheduler"
	"github.com/maheshrc27/dronepost/internal/service"
	"github.com/maheshrc27/dronepost/internal/store"
	"github.com/maheshrc27/dronepost/pkg/utils"
)

func newTestApp(t *testing.T, cfg config.Config) *fiber.App {
	t.Helper()

	engine := scheduler.New(scheduler.Config{
		Generator: service.NewMockContentGenerator(),
		Publisher: service.NewMockTiktokService(),
		Video:     service.NewVideoProcessor(true),
		Store:     store.NewQueueStore(filepath.Join(t.TempDir(), "posting_schedule.json")),
	})

	app := fiber.New()
	api := app.Group("/api")
	api.Use(middleware.NewAuthMiddleware(cfg).AuthMiddleware())

	queue := handlers.NewQueueHandler(engine, service.NewMockContentGenerator(), service.NewMockTiktokService())
	api.Get("/queue/status", queue.Status)
	api.Get("/queue", queue.ListQueue)
	api.Post("/queue/generate", queue.Generate)
	api.Post("/queue/manual", queue.AddManual)
	api.Post("/queue/process", queue.Process)
	api.Post("/queue/remove", queue.Remove)
	api.Get("/hashtags", queue.Hashtags)
	api.Get("/trends", queue.Trends)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestQueueStatusEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, config.Config{})

	resp, body := doJSON(t, app, http.MethodGet, "/api/queue/status", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, body["total_in_queue"])
	assert.EqualValues(t, 0, body["posted_count"])
}

func TestGenerateEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, config.Config{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/queue/generate", map[string]any{
		"theme": "viral drone content",
		"count": 3,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, body["generated"])

	_, status := doJSON(t, app, http.MethodGet, "/api/queue/status", nil)
	assert.EqualValues(t, 3, status["total_in_queue"])
	assert.EqualValues(t, 3, status["scheduled_count"])
}

func TestManualEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, config.Config{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/queue/manual", map[string]any{
		"idea":     "Harbor sunrise",
		"caption":  "Harbor at dawn",
		"hashtags": []string{"#drone"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["content_id"], "manual_")

	resp, _ = doJSON(t, app, http.MethodPost, "/api/queue/manual", map[string]any{"idea": "no caption"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRemoveEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, config.Config{})

	_, body := doJSON(t, app, http.MethodPost, "/api/queue/manual", map[string]any{"caption": "to remove"})
	id := body["content_id"].(string)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/queue/remove", map[string]any{"id": id})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/queue/remove", map[string]any{"id": id})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHashtagsEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, config.Config{})

	resp, body := doJSON(t, app, http.MethodGet, "/api/hashtags?category=drone", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["hashtags"])
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	cfg := config.Config{SecretKey: "test-secret"}
	app := newTestApp(t, cfg)

	// Missing token is rejected.
	req := httptest.NewRequest(http.MethodGet, "/api/queue/status", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Garbage token is rejected.
	req = httptest.NewRequest(http.MethodGet, "/api/queue/status", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Valid bearer token passes.
	token, err := utils.GenerateToken(cfg.SecretKey, "operator", time.Hour)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/queue/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
