package model

// Criteria holds the raw listing filters as they arrive in the query string.
// Empty values are treated as not supplied.
type Criteria struct {
	Hotel     string `query:"hotel"`
	StartDate string `query:"fecha_inicio"`
	EndDate   string `query:"fecha_fin"`
	RoomType  string `query:"tipo_habitacion"`
	Status    string `query:"estado"`
	Guests    string `query:"num_huespedes"`
}
