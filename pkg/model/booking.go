package model

import "time"

// BookingRequest is the POST /api/book body.
type BookingRequest struct {
	CustomerName  string          `json:"customer_name" validate:"required,min=1,max=200"`
	CustomerEmail string          `json:"customer_email" validate:"required,email"`
	Passengers    int             `json:"passengers" validate:"gte=1,lte=9"`
	Origin        string          `json:"origin" validate:"required,min=3,max=4"`
	Destination   string          `json:"destination" validate:"required,min=3,max=4"`
	Date          string          `json:"date" validate:"required"`
	FlightNumber  string          `json:"flight_number" validate:"required"`
	Airline       string          `json:"airline" validate:"required"`
	PriceTotal    float64         `json:"price_total" validate:"gte=0"`
	Segments      []FlightSegment `json:"segments,omitempty" validate:"omitempty,dive"`
}

// Booking is the persisted record in the "booking" collection. Never mutated
// after creation; there is no deletion path. TravelDate is stored as a plain
// YYYY-MM-DD string so listings are directly serializable.
type Booking struct {
	ID            string          `json:"_id,omitempty" bson:"_id,omitempty"`
	CustomerName  string          `json:"customer_name" bson:"customer_name"`
	CustomerEmail string          `json:"customer_email" bson:"customer_email"`
	Passengers    int             `json:"passengers" bson:"passengers"`
	Origin        string          `json:"origin" bson:"origin"`
	Destination   string          `json:"destination" bson:"destination"`
	TravelDate    string          `json:"travel_date" bson:"travel_date"`
	FlightNumber  string          `json:"flight_number" bson:"flight_number"`
	Airline       string          `json:"airline" bson:"airline"`
	PriceTotal    float64         `json:"price_total" bson:"price_total"`
	Segments      []FlightSegment `json:"segments,omitempty" bson:"segments,omitempty"`
	CreatedAt     time.Time       `json:"created_at,omitempty" bson:"created_at"`
}
