package model

// Reservation is one hotel room booking. JSON and bson names are the ones
// used by the persisted document.
type Reservation struct {
	Id        int    `json:"id" bson:"id"`
	GuestName string `json:"nombre" bson:"nombre"`
	Room      string `json:"habitacion" bson:"habitacion"`
	Hotel     string `json:"hotel" bson:"hotel"`
	RoomType  string `json:"tipo_habitacion" bson:"tipo_habitacion"`
	StartDate string `json:"fecha_inicio" bson:"fecha_inicio"`
	EndDate   string `json:"fecha_fin" bson:"fecha_fin"`
	Status    string `json:"estado" bson:"estado"`
	Guests    int    `json:"num_huespedes" bson:"num_huespedes"`
}

// ReservationFields carries client input. A nil field was absent from the
// request body, so updates keep the stored value for it.
type ReservationFields struct {
	GuestName *string `json:"nombre" validate:"required"`
	Room      *string `json:"habitacion" validate:"required"`
	Hotel     *string `json:"hotel" validate:"required"`
	RoomType  *string `json:"tipo_habitacion" validate:"required"`
	StartDate *string `json:"fecha_inicio" validate:"required"`
	EndDate   *string `json:"fecha_fin" validate:"required"`
	Status    *string `json:"estado" validate:"required"`
	Guests    *int    `json:"num_huespedes" validate:"required"`
}

// Apply merges the present fields into r.
func (f ReservationFields) Apply(r *Reservation) {
	if f.GuestName != nil {
		r.GuestName = *f.GuestName
	}
	if f.Room != nil {
		r.Room = *f.Room
	}
	if f.Hotel != nil {
		r.Hotel = *f.Hotel
	}
	if f.RoomType != nil {
		r.RoomType = *f.RoomType
	}
	if f.StartDate != nil {
		r.StartDate = *f.StartDate
	}
	if f.EndDate != nil {
		r.EndDate = *f.EndDate
	}
	if f.Status != nil {
		r.Status = *f.Status
	}
	if f.Guests != nil {
		r.Guests = *f.Guests
	}
}
