package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hotel-reservas/repository"
)

// Handler serves the reservation endpoints.
type Handler struct {
	reservations *repository.ReservationRepository
	validate     *validator.Validate
}

func New(reservations *repository.ReservationRepository) *Handler {
	validate := validator.New()
	// report json names in validation errors
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{reservations: reservations, validate: validate}
}

// GetHealth godoc
// @Summary Health check
// @Tags Health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func GetHealth(c *fiber.Ctx) error {
	return c.SendString("ok")
}
