package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"

	apperrors "hotel-reservas/errors"
	"hotel-reservas/model"
)

const DateLayout = "2006-01-02"

const (
	MessageFound         = "Reservas encontradas:"
	MessageNoneFound     = "No se encontraron reservas."
	MessageInvalidDates  = "Fechas inválidas. Utilice el formato YYYY-MM-DD."
	messageNoDateMatches = "No se encontraron reservas en el rango de fechas proporcionado."
)

// filterStep narrows the candidates for one criterion. keep is nil when the
// criterion was not supplied, err is set when its value cannot be used.
type filterStep struct {
	name     string
	keep     func(model.Reservation) bool
	notFound string
	err      error
}

// Filter applies the criteria in a fixed order: hotel, date range, room
// type, status, guests. The first step that leaves no candidates stops the
// run with a NotFound naming that step. Invalid range dates yield
// InvalidInput when the date step is reached.
func Filter(reservations []model.Reservation, criteria model.Criteria) ([]model.Reservation, error) {
	filtered := append([]model.Reservation{}, reservations...)
	for _, step := range buildSteps(criteria) {
		if step.err != nil {
			return nil, step.err
		}
		if step.keep == nil {
			continue
		}
		log.Debugf("filtering reservations by %v", step.name)

		kept := filtered[:0:0]
		for _, reservation := range filtered {
			if step.keep(reservation) {
				kept = append(kept, reservation)
			}
		}
		if len(kept) == 0 {
			log.Debugf("no reservations left after %v filter", step.name)
			return nil, apperrors.NotFound(step.notFound)
		}
		filtered = kept
	}

	return filtered, nil
}

func buildSteps(criteria model.Criteria) []filterStep {
	hotel := strings.TrimSpace(criteria.Hotel)
	roomType := strings.TrimSpace(criteria.RoomType)
	status := strings.TrimSpace(criteria.Status)
	guests := strings.TrimSpace(criteria.Guests)

	steps := make([]filterStep, 5)

	if hotel != "" {
		steps[0] = filterStep{
			name:     "hotel",
			keep:     func(r model.Reservation) bool { return strings.EqualFold(r.Hotel, hotel) },
			notFound: fmt.Sprintf("No se encontraron reservas para el hotel %s.", hotel),
		}
	}

	if criteria.StartDate != "" && criteria.EndDate != "" {
		from, fromErr := time.Parse(DateLayout, strings.TrimSpace(criteria.StartDate))
		to, toErr := time.Parse(DateLayout, strings.TrimSpace(criteria.EndDate))
		steps[1] = filterStep{
			name:     "date range",
			keep:     func(r model.Reservation) bool { return withinRange(r, from, to) },
			notFound: messageNoDateMatches,
		}
		if fromErr != nil || toErr != nil {
			steps[1].err = apperrors.InvalidInput(MessageInvalidDates)
		}
	}

	if roomType != "" {
		steps[2] = filterStep{
			name:     "room type",
			keep:     func(r model.Reservation) bool { return strings.EqualFold(r.RoomType, roomType) },
			notFound: fmt.Sprintf("No se encontraron reservas con tipo de habitación %s.", roomType),
		}
	}

	if status != "" {
		steps[3] = filterStep{
			name:     "status",
			keep:     func(r model.Reservation) bool { return strings.EqualFold(r.Status, status) },
			notFound: fmt.Sprintf("No se encontraron reservas con estado %s.", status),
		}
	}

	if guests != "" {
		n, err := strconv.Atoi(guests)
		steps[4] = filterStep{
			name:     "guests",
			keep:     func(r model.Reservation) bool { return err == nil && r.Guests == n },
			notFound: fmt.Sprintf("No se encontraron reservas con %s huéspedes.", guests),
		}
	}

	return steps
}

// withinRange reports whether the reservation's whole stay lies inside
// [from, to]. Reservations with unparseable dates never match.
func withinRange(r model.Reservation, from, to time.Time) bool {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return false
	}
	return !start.Before(from) && !end.After(to)
}

// ListMessage is the display message for a successful listing.
func ListMessage(reservations []model.Reservation) string {
	if len(reservations) == 0 {
		return MessageNoneFound
	}
	return MessageFound
}
