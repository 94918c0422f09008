package router

import (
	"hotel-reservas/errors"
	"hotel-reservas/handlers"
	"hotel-reservas/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	_ "hotel-reservas/docs"
)

const IndexPage string = "./views/index.html"

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Use(recover.New())
	app.Use(middleware.RequestID())

	api := app.Group("/", logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	api.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(IndexPage)
	})
	api.Get("/healthz", handlers.GetHealth)
	api.Get("/api-docs/*", swagger.HandlerDefault)

	//Reservations
	reservations := api.Group("/api/reservas")
	reservations.Get("/", h.GetReservations)
	reservations.Post("/", h.CreateReservation)
	// registered before /:id so "resumen" is not taken for an id
	reservations.Get("/resumen", h.GetReservationSummary)
	reservations.Get("/:id", h.GetReservation)
	reservations.Put("/:id", h.UpdateReservation)
	reservations.Delete("/:id", h.DeleteReservation)
}

// NewApp builds the fiber app with the shared error handler and all routes.
func NewApp(h *handlers.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "API Reservas Hoteleras",
		ErrorHandler: errors.ErrorHandler,
	})
	SetupRoutes(app, h)
	return app
}
