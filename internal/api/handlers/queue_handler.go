package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/dronepost/internal/scheduler"
	"github.com/maheshrc27/dronepost/internal/service"
	"github.com/maheshrc27/dronepost/internal/transfer"
)

type QueueHandler struct {
	engine *scheduler.Engine
	gen    service.ContentGenerator
	tt     service.TiktokService
}

func NewQueueHandler(engine *scheduler.Engine, gen service.ContentGenerator, tt service.TiktokService) *QueueHandler {
	return &QueueHandler{engine: engine, gen: gen, tt: tt}
}

func (h *QueueHandler) Status(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.engine.Status())
}

func (h *QueueHandler) ListQueue(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"queue":  h.engine.Items(),
		"posted": h.engine.Posted(),
	})
}

func (h *QueueHandler) Generate(c *fiber.Ctx) error {
	var req transfer.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if req.Theme == "" {
		req.Theme = "viral drone content"
	}
	if req.Count <= 0 {
		req.Count = 5
	}

	batch := h.engine.GenerateBatch(c.Context(), req.Theme, req.Count)
	if len(batch) > 0 {
		h.engine.Enqueue(batch)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"generated": len(batch),
		"items":     batch,
	})
}

func (h *QueueHandler) AddManual(c *fiber.Ctx) error {
	var req transfer.ManualPostRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if req.Caption == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Caption cannot be empty",
		})
	}

	id := h.engine.AddManualPost(req.Idea, req.Caption, req.Hashtags, req.VideoPath)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"content_id": id,
	})
}

func (h *QueueHandler) Process(c *fiber.Ctx) error {
	posted := h.engine.ProcessQueue(c.Context())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posted_count": posted,
	})
}

func (h *QueueHandler) Remove(c *fiber.Ctx) error {
	var req transfer.RemovePostRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if !h.engine.RemovePost(req.ID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Content item not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Content item removed",
	})
}

func (h *QueueHandler) Hashtags(c *fiber.Ctx) error {
	category := c.Query("category", "drone")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"hashtags": h.tt.SearchTrendingHashtags(category),
	})
}

func (h *QueueHandler) Trends(c *fiber.Ctx) error {
	trends, err := h.gen.AnalyzeTrends(c.Context())
	if err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Unable to analyze trends",
		})
	}
	return c.Status(fiber.StatusOK).JSON(trends)
}

func (h *QueueHandler) VideoInfo(c *fiber.Ctx) error {
	info, err := h.tt.GetVideoInfo(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(info)
}
