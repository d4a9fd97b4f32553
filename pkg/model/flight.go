package model

import "time"

// Flight statuses reported by search results and the status simulator.
const (
	StatusOnTime   = "On Time"
	StatusBoarding = "Boarding"
	StatusDelayed  = "Delayed"
	StatusDeparted = "Departed"
	StatusArrived  = "Arrived"
)

var FlightStatuses = []string{
	StatusOnTime,
	StatusBoarding,
	StatusDelayed,
	StatusDeparted,
	StatusArrived,
}

// FlightSegment is one leg of an offer or booking. Immutable once built;
// ArrivalTime is always DepartureTime plus DurationMinutes.
type FlightSegment struct {
	FlightNumber    string `json:"flight_number" bson:"flight_number" validate:"required"`
	Airline         string `json:"airline" bson:"airline" validate:"required"`
	Origin          string `json:"origin" bson:"origin" validate:"required,min=3,max=4"`
	Destination     string `json:"destination" bson:"destination" validate:"required,min=3,max=4"`
	DepartureTime   string `json:"departure_time" bson:"departure_time" validate:"required"`
	ArrivalTime     string `json:"arrival_time" bson:"arrival_time" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" bson:"duration_minutes" validate:"gte=0"`
	Status          string `json:"status,omitempty" bson:"status,omitempty"`
}

// FlightOffer is a synthesized flight option. Generated fresh per search,
// never persisted.
type FlightOffer struct {
	Segments   []FlightSegment `json:"segments"`
	PriceTotal float64         `json:"price_total"`
	Airline    string          `json:"airline"`
}

// SearchQuery is the flight search request body. The travel date arrives as
// "date", with "travel_date" accepted as an alias.
type SearchQuery struct {
	Origin      string `json:"origin" validate:"required,min=3,max=4"`
	Destination string `json:"destination" validate:"required,min=3,max=4"`
	Date        string `json:"date" validate:"required"`
	TravelDate  string `json:"travel_date,omitempty" validate:"-"`
	Passengers  int    `json:"passengers" validate:"gte=1,lte=9"`
}

// StatusRecord is the simulated real-time status of one flight number.
type StatusRecord struct {
	Status    string    `json:"status"`
	Gate      string    `json:"gate"`
	UpdatedAt time.Time `json:"updated_at"`
}
