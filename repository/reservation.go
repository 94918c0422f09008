package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2/log"

	apperrors "hotel-reservas/errors"
	"hotel-reservas/model"
)

// Store is the storage accessor the repository works against.
type Store interface {
	Load(ctx context.Context) []model.Reservation
	Save(ctx context.Context, reservations []model.Reservation) error
}

const MessageReservationNotFound = "Reserva no encontrada"

// ReservationRepository owns the reservation lifecycle. Every operation
// loads the whole collection and mutations save it back; mu serializes
// those sequences so concurrent requests cannot lose updates.
type ReservationRepository struct {
	mu    sync.Mutex
	store Store
}

func NewReservationRepository(store Store) *ReservationRepository {
	if store == nil {
		panic("nil store passed to NewReservationRepository")
	}
	return &ReservationRepository{store: store}
}

func (r *ReservationRepository) List(ctx context.Context, criteria model.Criteria) ([]model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Filter(r.store.Load(ctx), criteria)
}

// Create appends a reservation with the next id: one more than the highest
// stored id, 1 for an empty collection.
func (r *ReservationRepository) Create(ctx context.Context, fields model.ReservationFields) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservations := r.store.Load(ctx)

	var reservation model.Reservation
	fields.Apply(&reservation)
	reservation.Id = nextId(reservations)

	log.Infof("creating reservation %d for %q", reservation.Id, reservation.GuestName)
	reservations = append(reservations, reservation)
	if err := r.store.Save(ctx, reservations); err != nil {
		return model.Reservation{}, err
	}
	return reservation, nil
}

func (r *ReservationRepository) Get(ctx context.Context, id int) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservations := r.store.Load(ctx)
	index := indexOf(reservations, id)
	if index == -1 {
		return model.Reservation{}, apperrors.NotFound(MessageReservationNotFound)
	}
	return reservations[index], nil
}

// Update replaces the fields present in fields and keeps the rest.
func (r *ReservationRepository) Update(ctx context.Context, id int, fields model.ReservationFields) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservations := r.store.Load(ctx)
	index := indexOf(reservations, id)
	if index == -1 {
		return model.Reservation{}, apperrors.NotFound(MessageReservationNotFound)
	}

	fields.Apply(&reservations[index])
	log.Infof("updating reservation %d", id)
	if err := r.store.Save(ctx, reservations); err != nil {
		return model.Reservation{}, err
	}
	return reservations[index], nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservations := r.store.Load(ctx)
	index := indexOf(reservations, id)
	if index == -1 {
		return apperrors.NotFound(fmt.Sprintf("No se encontró ninguna reserva con el ID %d", id))
	}

	reservations = append(reservations[:index], reservations[index+1:]...)
	log.Infof("deleting reservation %d", id)
	return r.store.Save(ctx, reservations)
}

func (r *ReservationRepository) Summary(ctx context.Context) (model.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := len(r.store.Load(ctx))
	if total == 0 {
		return model.Summary{}, apperrors.NotFound("No hay reservas registradas")
	}
	return model.Summary{TotalReservations: total}, nil
}

func indexOf(reservations []model.Reservation, id int) int {
	for i, reservation := range reservations {
		if reservation.Id == id {
			return i
		}
	}
	return -1
}

func nextId(reservations []model.Reservation) int {
	highest := 0
	for _, reservation := range reservations {
		if reservation.Id > highest {
			highest = reservation.Id
		}
	}
	return highest + 1
}
