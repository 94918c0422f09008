package database

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	apperrors "hotel-reservas/errors"
	"hotel-reservas/model"
)

// ErrNotExist is returned by a Backend that holds no document yet.
var ErrNotExist = stderrors.New("reservations document does not exist")

// Backend stores the raw reservations document. Implementations never look
// inside the bytes, every backend keeps the same JSON array.
type Backend interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, document []byte) error
	Close() error
	String() string
}

// Accessor loads and saves the whole reservation collection as one unit.
type Accessor struct {
	backend Backend
}

func NewAccessor(backend Backend) *Accessor {
	return &Accessor{backend: backend}
}

// Load never fails: a missing, unreadable or malformed document yields an
// empty collection and a warning.
func (a *Accessor) Load(ctx context.Context) []model.Reservation {
	fileBytes, err := a.backend.Read(ctx)
	if err != nil {
		if stderrors.Is(err, ErrNotExist) {
			log.Warnf("no reservations stored yet in %v", a.backend)
		} else {
			log.Warnf("cannot read reservations from %v: %v", a.backend, err)
		}
		return []model.Reservation{}
	}

	reservations, err := DecodeReservations(fileBytes)
	if err != nil {
		log.Warnf("reservations document in %v is not a valid array: %v", a.backend, err)
		return []model.Reservation{}
	}

	log.Debugf("loaded %d reservations from %v", len(reservations), a.backend)
	return reservations
}

// Save overwrites the stored document with reservations.
func (a *Accessor) Save(ctx context.Context, reservations []model.Reservation) error {
	reservationsBytes, err := EncodeReservations(reservations)
	if err != nil {
		log.Errorf("cannot encode reservations: %v", err)
		return apperrors.StorageFailure("No se pudieron guardar las reservas.", err)
	}

	if err := a.backend.Write(ctx, reservationsBytes); err != nil {
		log.Errorf("cannot write reservations to %v: %v", a.backend, err)
		return apperrors.StorageFailure("No se pudieron guardar las reservas.", err)
	}

	log.Debugf("saved %d reservations to %v", len(reservations), a.backend)
	return nil
}

func (a *Accessor) Close() error {
	return a.backend.Close()
}

func DecodeReservations(document []byte) ([]model.Reservation, error) {
	reservations := []model.Reservation{}
	if err := json.Unmarshal(document, &reservations); err != nil {
		return nil, err
	}
	if reservations == nil {
		// "null" decodes to a nil slice
		return nil, fmt.Errorf("document is null")
	}
	return reservations, nil
}

// EncodeReservations renders the collection as a two space indented array.
func EncodeReservations(reservations []model.Reservation) ([]byte, error) {
	if reservations == nil {
		reservations = []model.Reservation{}
	}
	return json.MarshalIndent(reservations, "", "  ")
}
