package handler

import (
	"github.com/gofiber/fiber/v2"

	authhandler "github.com/DarshanCHMSR/search-engine/internal/auth/handler"
)

func RegisterRoutes(app *fiber.App, h *HistoryHandler, gate *authhandler.AuthGate) {
	history := app.Group("/api/search/history", gate.RequireAuth)
	history.Post("/", h.Record)
	history.Get("/", h.List)
	history.Delete("/:id", h.DeleteOne)
	history.Delete("/", h.ClearAll)
}
