package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, auth *AuthHandler, user *UserHandler, gate *AuthGate) {
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", auth.Register)
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/logout", gate.RequireAuth, auth.Logout)
	authGroup.Get("/profile", gate.RequireAuth, auth.Profile)

	userGroup := app.Group("/api/user", gate.RequireAuth)
	userGroup.Get("/profile", user.GetProfile)
	userGroup.Put("/profile", user.UpdateProfile)
	userGroup.Put("/preferences", user.UpdatePreferences)
	userGroup.Put("/password", user.ChangePassword)
	userGroup.Delete("/account", user.DeactivateAccount)
	userGroup.Get("/stats", user.GetStats)
}
