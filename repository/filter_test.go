package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "hotel-reservas/errors"
	"hotel-reservas/model"
)

var stored = []model.Reservation{
	{Id: 1, GuestName: "Luis Torres", Room: "109", Hotel: "Hotel Paraíso", RoomType: "doble",
		StartDate: "2024-10-01", EndDate: "2024-10-05", Status: "CONFIRMADA", Guests: 2},
	{Id: 2, GuestName: "Ana Pérez", Room: "201", Hotel: "Hotel Central", RoomType: "suite",
		StartDate: "2024-10-10", EndDate: "2024-10-12", Status: "PENDIENTE", Guests: 1},
	{Id: 3, GuestName: "Marta Gómez", Room: "110", Hotel: "Hotel Paraíso", RoomType: "suite",
		StartDate: "2024-10-20", EndDate: "2024-11-02", Status: "PENDIENTE", Guests: 4},
	{Id: 4, GuestName: "Pedro Díaz", Room: "305", Hotel: "hotel paraíso", RoomType: "Doble",
		StartDate: "2024-10-03", EndDate: "2024-10-04", Status: "confirmada", Guests: 2},
	{Id: 5, GuestName: "Sin Fechas", Room: "1", Hotel: "Hotel Central", RoomType: "doble",
		StartDate: "pronto", EndDate: "", Status: "PENDIENTE", Guests: 3},
}

func ids(reservations []model.Reservation) []int {
	out := []int{}
	for _, r := range reservations {
		out = append(out, r.Id)
	}
	return out
}

func TestFilterMatches(t *testing.T) {
	tests := []struct {
		description string
		criteria    model.Criteria
		expectedIds []int
	}{
		{description: "no criteria", criteria: model.Criteria{}, expectedIds: []int{1, 2, 3, 4, 5}},
		{description: "hotel ignores case", criteria: model.Criteria{Hotel: "HOTEL PARAÍSO"}, expectedIds: []int{1, 3, 4}},
		{description: "range keeps fully contained stays",
			criteria:    model.Criteria{StartDate: "2024-10-01", EndDate: "2024-10-12"},
			expectedIds: []int{1, 2, 4}},
		{description: "range bounds are inclusive",
			criteria:    model.Criteria{StartDate: "2024-10-10", EndDate: "2024-10-12"},
			expectedIds: []int{2}},
		{description: "start date alone is ignored", criteria: model.Criteria{StartDate: "2030-01-01"}, expectedIds: []int{1, 2, 3, 4, 5}},
		{description: "room type", criteria: model.Criteria{RoomType: "doble"}, expectedIds: []int{1, 4, 5}},
		{description: "status", criteria: model.Criteria{Status: "pendiente"}, expectedIds: []int{2, 3, 5}},
		{description: "guests", criteria: model.Criteria{Guests: "2"}, expectedIds: []int{1, 4}},
		{description: "conjunction",
			criteria: model.Criteria{Hotel: "hotel paraíso", StartDate: "2024-10-01", EndDate: "2024-10-31",
				RoomType: "DOBLE", Status: "Confirmada", Guests: " 2 "},
			expectedIds: []int{1, 4}},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			got, err := Filter(stored, test.criteria)
			require.NoError(t, err)
			assert.Equal(t, test.expectedIds, ids(got))
		})
	}
}

func TestFilterMatchesConjunction(t *testing.T) {
	hotels := []string{"", "hotel paraíso", "Hotel Central"}
	types := []string{"", "suite", "doble"}
	statuses := []string{"", "pendiente", "CONFIRMADA"}

	for _, hotel := range hotels {
		for _, roomType := range types {
			for _, status := range statuses {
				criteria := model.Criteria{Hotel: hotel, RoomType: roomType, Status: status}
				expected := []int{}
				for _, r := range stored {
					if (hotel == "" || strings.EqualFold(r.Hotel, hotel)) &&
						(roomType == "" || strings.EqualFold(r.RoomType, roomType)) &&
						(status == "" || strings.EqualFold(r.Status, status)) {
						expected = append(expected, r.Id)
					}
				}

				got, err := Filter(stored, criteria)
				if len(expected) == 0 {
					assert.True(t, apperrors.IsNotFound(err), "%+v", criteria)
					continue
				}
				require.NoError(t, err, "%+v", criteria)
				assert.Equal(t, expected, ids(got), "%+v", criteria)
			}
		}
	}
}

func TestFilterShortCircuits(t *testing.T) {
	tests := []struct {
		description     string
		criteria        model.Criteria
		expectedMessage string
	}{
		{description: "unknown hotel",
			criteria:        model.Criteria{Hotel: "Hotel Nada", RoomType: "nope"},
			expectedMessage: "No se encontraron reservas para el hotel Hotel Nada."},
		{description: "empty range",
			criteria:        model.Criteria{StartDate: "2025-01-01", EndDate: "2025-01-31", Status: "nope"},
			expectedMessage: "No se encontraron reservas en el rango de fechas proporcionado."},
		{description: "room type after hotel",
			criteria:        model.Criteria{Hotel: "Hotel Central", RoomType: "familiar"},
			expectedMessage: "No se encontraron reservas con tipo de habitación familiar."},
		{description: "status",
			criteria:        model.Criteria{Status: "CANCELADA"},
			expectedMessage: "No se encontraron reservas con estado CANCELADA."},
		{description: "guests",
			criteria:        model.Criteria{Guests: "7"},
			expectedMessage: "No se encontraron reservas con 7 huéspedes."},
		{description: "guests not a number",
			criteria:        model.Criteria{Guests: "dos"},
			expectedMessage: "No se encontraron reservas con dos huéspedes."},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			got, err := Filter(stored, test.criteria)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
			assert.Equal(t, test.expectedMessage, apperrors.Message(err))
		})
	}
}

func TestFilterInvalidDates(t *testing.T) {
	for _, criteria := range []model.Criteria{
		{StartDate: "2024-13-01", EndDate: "2024-10-30"},
		{StartDate: "2024-10-01", EndDate: "30/10/2024"},
		{Hotel: "Hotel Central", StartDate: "ayer", EndDate: "hoy"},
	} {
		_, err := Filter(stored, criteria)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
		assert.Equal(t, MessageInvalidDates, apperrors.Message(err))
	}
}

func TestFilterHotelRunsBeforeDateValidation(t *testing.T) {
	_, err := Filter(stored, model.Criteria{Hotel: "Hotel Nada", StartDate: "ayer", EndDate: "hoy"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestFilterEmptyCollection(t *testing.T) {
	got, err := Filter([]model.Reservation{}, model.Criteria{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, MessageNoneFound, ListMessage(got))
	assert.Equal(t, MessageFound, ListMessage(stored))
}

func TestFilterLeavesInputUntouched(t *testing.T) {
	input := append([]model.Reservation{}, stored...)
	_, err := Filter(input, model.Criteria{Hotel: "Hotel Central"})
	require.NoError(t, err)
	assert.Equal(t, stored, input)
}
