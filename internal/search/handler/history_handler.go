package handler

import (
	"github.com/gofiber/fiber/v2"

	authhandler "github.com/DarshanCHMSR/search-engine/internal/auth/handler"
	"github.com/DarshanCHMSR/search-engine/internal/search/service"
)

type HistoryHandler struct {
	history     *service.HistoryService
	development bool
}

func NewHistoryHandler(history *service.HistoryService, development bool) *HistoryHandler {
	return &HistoryHandler{history: history, development: development}
}

type recordInput struct {
	Query string `json:"query"`
}

// Record stores a query. 201 for a first-time query, 200 when an existing
// entry was refreshed.
func (h *HistoryHandler) Record(c *fiber.Ctx) error {
	var input recordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	entry, created, err := h.history.Record(c.Context(), authhandler.Principal(c).ID, input.Query)
	if err != nil {
		return authhandler.Fail(c, err, h.development)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}

	return c.Status(status).JSON(fiber.Map{"entry": entry})
}

func (h *HistoryHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)

	page, err := h.history.List(c.Context(), authhandler.Principal(c).ID, limit, offset)
	if err != nil {
		return authhandler.Fail(c, err, h.development)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"entries": page.Entries,
		"pagination": fiber.Map{
			"total":   page.Total,
			"limit":   page.Limit,
			"offset":  page.Offset,
			"hasMore": page.HasMore,
		},
	})
}

func (h *HistoryHandler) DeleteOne(c *fiber.Ctx) error {
	if err := h.history.DeleteOne(c.Context(), authhandler.Principal(c).ID, c.Params("id")); err != nil {
		return authhandler.Fail(c, err, h.development)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Search history entry deleted",
	})
}

func (h *HistoryHandler) ClearAll(c *fiber.Ctx) error {
	count, err := h.history.ClearAll(c.Context(), authhandler.Principal(c).ID)
	if err != nil {
		return authhandler.Fail(c, err, h.development)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Search history cleared",
		"deletedCount": count,
	})
}
