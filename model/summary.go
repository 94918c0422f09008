package model

type Summary struct {
	TotalReservations int `json:"totalReservas"`
}

type ReservationList struct {
	Message      string        `json:"mensaje"`
	Reservations []Reservation `json:"reservas"`
}
