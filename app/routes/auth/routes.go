package auth

import "github.com/gofiber/fiber/v2"

func SetupAuthRoutes(app *fiber.App, h *Handler) {
	group := app.Group("/auth")

	group.Post("/signup", h.SignupAPI)
	group.Post("/login", h.LoginAPI)
	group.Get("/me", h.Middleware, h.MeAPI)
}
