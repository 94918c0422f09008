package handlers

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"hotel-reservas/errors"
	"hotel-reservas/model"
	"hotel-reservas/repository"
)

const messageInvalidBody = "Cuerpo de la solicitud inválido."

// GetReservations godoc
// @Summary Obtener todas las reservas o aplicar filtros.
// @Description Devuelve una lista de reservas. Los filtros se aplican en orden (hotel, fechas, tipo de habitación, estado, número de huéspedes) y el primero que no encuentra coincidencias responde 404.
// @Tags Reservas
// @Produce json
// @Param hotel query string false "Nombre del hotel"
// @Param fecha_inicio query string false "Inicio del rango (YYYY-MM-DD)" format(date)
// @Param fecha_fin query string false "Fin del rango (YYYY-MM-DD)" format(date)
// @Param tipo_habitacion query string false "Tipo de habitación (ej. doble, suite)"
// @Param estado query string false "Estado de la reserva (ej. PENDIENTE, CONFIRMADA)"
// @Param num_huespedes query integer false "Número de huéspedes"
// @Success 200 {object} model.ReservationList
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/reservas [get]
func (h *Handler) GetReservations(c *fiber.Ctx) error {
	criteria := model.Criteria{}
	if err := c.QueryParser(&criteria); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("Parámetros de consulta inválidos: %v", err))
	}
	log.Debugf("listing reservations with %+v", criteria)

	reservations, err := h.reservations.List(c.UserContext(), criteria)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.RaiseMessage(c, fiber.StatusNotFound, errors.Message(err))
		}
		return errors.Raise(c, err)
	}

	return c.JSON(model.ReservationList{
		Message:      repository.ListMessage(reservations),
		Reservations: reservations,
	})
}

// CreateReservation godoc
// @Summary Crear una nueva reserva.
// @Description Crea una reserva con el siguiente ID disponible. Los ocho campos son obligatorios.
// @Tags Reservas
// @Accept json
// @Produce json
// @Param reserva body model.ReservationFields true "Datos de la reserva"
// @Success 201 {object} model.Reservation
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/reservas [post]
func (h *Handler) CreateReservation(c *fiber.Ctx) error {
	fields := new(model.ReservationFields)
	if err := c.BodyParser(fields); err != nil {
		return errors.RaiseBadRequestError(c, messageInvalidBody)
	}

	if err := h.validate.Struct(fields); err != nil {
		var validationErrs validator.ValidationErrors
		if !stderrors.As(err, &validationErrs) {
			return errors.RaiseBadRequestError(c, messageInvalidBody)
		}
		missing := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			missing = append(missing, fieldErr.Field())
		}
		return errors.RaiseBadRequestError(c, "Faltan campos obligatorios: "+strings.Join(missing, ", "))
	}

	reservation, err := h.reservations.Create(c.UserContext(), *fields)
	if err != nil {
		return errors.Raise(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(reservation)
}

// GetReservationSummary godoc
// @Summary Obtener un resumen de las reservas.
// @Description Devuelve el número total de reservas registradas.
// @Tags Reservas
// @Produce json
// @Success 200 {object} model.Summary
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/reservas/resumen [get]
func (h *Handler) GetReservationSummary(c *fiber.Ctx) error {
	summary, err := h.reservations.Summary(c.UserContext())
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.Raise(c, err)
		}
		log.Errorf("cannot build reservations summary: %v", err)
		return errors.RaiseInternalServerError(c, "Error al obtener el resumen de reservas")
	}

	return c.JSON(summary)
}

// GetReservation godoc
// @Summary Obtener una reserva por ID.
// @Tags Reservas
// @Produce json
// @Param id path integer true "ID de la reserva"
// @Success 200 {object} model.Reservation
// @Failure 404 {object} map[string]string
// @Router /api/reservas/{id} [get]
func (h *Handler) GetReservation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errors.RaiseNotFoundError(c, repository.MessageReservationNotFound)
	}

	reservation, err := h.reservations.Get(c.UserContext(), id)
	if err != nil {
		return errors.Raise(c, err)
	}

	return c.JSON(reservation)
}

// UpdateReservation godoc
// @Summary Actualizar una reserva.
// @Description Reemplaza los campos presentes en el cuerpo y conserva el resto.
// @Tags Reservas
// @Accept json
// @Produce json
// @Param id path integer true "ID de la reserva"
// @Param reserva body model.ReservationFields true "Campos a actualizar"
// @Success 200 {object} model.Reservation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/reservas/{id} [put]
func (h *Handler) UpdateReservation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errors.RaiseNotFoundError(c, repository.MessageReservationNotFound)
	}

	fields := new(model.ReservationFields)
	if err := c.BodyParser(fields); err != nil {
		return errors.RaiseBadRequestError(c, messageInvalidBody)
	}

	reservation, err := h.reservations.Update(c.UserContext(), id, *fields)
	if err != nil {
		return errors.Raise(c, err)
	}

	return c.JSON(reservation)
}

// DeleteReservation godoc
// @Summary Eliminar una reserva.
// @Tags Reservas
// @Param id path integer true "ID de la reserva"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/reservas/{id} [delete]
func (h *Handler) DeleteReservation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No se encontró ninguna reserva con el ID %s", c.Params("id")))
	}

	if err := h.reservations.Delete(c.UserContext(), id); err != nil {
		return errors.Raise(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
