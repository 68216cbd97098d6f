package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/maheshrc27/brandpulse/internal/queue"
	"github.com/maheshrc27/brandpulse/internal/service"
	"github.com/maheshrc27/brandpulse/internal/transfer"
)

type ScheduleHandler struct {
	s           service.ScheduleService
	AsynqClient *asynq.Client
}

func NewScheduleHandler(service service.ScheduleService, asynqClient *asynq.Client) *ScheduleHandler {
	return &ScheduleHandler{s: service, AsynqClient: asynqClient}
}

func (h *ScheduleHandler) CreateSchedule(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)

	var req transfer.ScheduleCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	postID, delay, err := h.s.Create(c.Context(), businessID, &req)
	if err != nil {
		return RespondError(c, err)
	}

	err = queue.EnqueuePublish(h.AsynqClient, queue.PublishPostPayload{PostID: postID}, delay)
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"error": "Error scheduling post",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post scheduled successfully",
		"post_id": postID,
	})
}

func (h *ScheduleHandler) ListSchedules(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	status := c.Query("status")

	posts, err := h.s.List(c.Context(), businessID, status)
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts": posts,
	})
}

func (h *ScheduleHandler) UpdateSchedule(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)

	var req transfer.ScheduleUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}
	if req.PostID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing post id",
		})
	}

	if err := h.s.Update(c.Context(), businessID, &req); err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post updated",
	})
}

func (h *ScheduleHandler) CancelSchedule(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	postID := c.QueryInt("id", 0)
	if postID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing post id",
		})
	}

	if err := h.s.Cancel(c.Context(), businessID, int64(postID)); err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post cancelled",
	})
}
