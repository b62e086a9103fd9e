package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
	app.Use(handler.NotFound)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.LanguageMiddleware)

	auth := api.Group("/auth")
	auth.Post("/login", handler.ConsoleLogin)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	mobile := api.Group("/mobile")
	mobile.Post("/login", handler.MobileLogin)
	mobile.Post("/change-password", handler.AuthRequired, handler.ChangeAppPassword)
	mobile.Post("/reset-password", handler.AuthRequired, handler.ResetAppPassword)

	employees := api.Group("/employees", handler.AuthRequired)
	employees.Post("/:id/reset-device", handler.ResetDeviceID)
	employees.Put("/:id/app-password", handler.SetAppPassword)
}
