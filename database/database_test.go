package database

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "hotel-reservas/errors"
	"hotel-reservas/model"
)

var sample = []model.Reservation{
	{
		Id:        1,
		GuestName: "Luis Torres",
		Room:      "109",
		Hotel:     "Hotel Paraíso",
		RoomType:  "doble",
		StartDate: "2024-10-01",
		EndDate:   "2024-10-05",
		Status:    "CONFIRMADA",
		Guests:    2,
	},
	{
		Id:        2,
		GuestName: "Ana Pérez",
		Room:      "201",
		Hotel:     "Hotel Central",
		RoomType:  "suite",
		StartDate: "2024-11-10",
		EndDate:   "2024-11-12",
		Status:    "PENDIENTE",
		Guests:    1,
	},
}

func TestLoadFallsBackToEmpty(t *testing.T) {
	tests := []struct {
		description string
		document    []byte
	}{
		{description: "nothing stored", document: nil},
		{description: "not json", document: []byte("{{{")},
		{description: "object instead of array", document: []byte(`{"id":1}`)},
		{description: "null", document: []byte("null")},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			accessor := NewAccessor(NewMemoryBackend(test.document))

			reservations := accessor.Load(context.Background())
			assert.NotNil(t, reservations)
			assert.Empty(t, reservations)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	backend := NewMemoryBackend(nil)
	accessor := NewAccessor(backend)
	ctx := context.Background()

	require.NoError(t, accessor.Save(ctx, sample))
	loaded := accessor.Load(ctx)
	assert.Equal(t, sample, loaded)

	before := backend.Document()
	require.NoError(t, accessor.Save(ctx, accessor.Load(ctx)))
	assert.JSONEq(t, string(before), string(backend.Document()))
}

func TestSaveWritesIndentedArray(t *testing.T) {
	backend := NewMemoryBackend(nil)
	require.NoError(t, NewAccessor(backend).Save(context.Background(), sample[:1]))

	expected := `[
  {
    "id": 1,
    "nombre": "Luis Torres",
    "habitacion": "109",
    "hotel": "Hotel Paraíso",
    "tipo_habitacion": "doble",
    "fecha_inicio": "2024-10-01",
    "fecha_fin": "2024-10-05",
    "estado": "CONFIRMADA",
    "num_huespedes": 2
  }
]`
	assert.Equal(t, expected, string(backend.Document()))
}

func TestSaveEmptyCollection(t *testing.T) {
	backend := NewMemoryBackend(nil)
	require.NoError(t, NewAccessor(backend).Save(context.Background(), nil))
	assert.Equal(t, "[]", string(backend.Document()))
}

func TestSaveFailureIsStorageFailure(t *testing.T) {
	backend := NewMemoryBackend(nil)
	cause := stderrors.New("read-only file system")
	backend.FailWrites(cause)

	err := NewAccessor(backend).Save(context.Background(), sample)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindStorageFailure, apperrors.KindOf(err))
	assert.ErrorIs(t, err, cause)
}
