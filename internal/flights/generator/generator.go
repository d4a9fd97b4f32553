package generator

import (
	"fmt"
	"time"

	"flightbooker/pkg/logger"
	"flightbooker/pkg/model"
	"flightbooker/pkg/random"
	"flightbooker/pkg/sanitizer"
)

// Airline is one carrier from the fixed roster.
type Airline struct {
	Code string
	Name string
}

var Airlines = []Airline{
	{Code: "UA", Name: "United"},
	{Code: "AA", Name: "American"},
	{Code: "DL", Name: "Delta"},
	{Code: "WN", Name: "Southwest"},
	{Code: "AS", Name: "Alaska"},
	{Code: "B6", Name: "JetBlue"},
}

const (
	minDepartureHour = 6
	maxDepartureHour = 20

	minDurationMinutes = 120
	maxDurationMinutes = 360

	minFare = 120
	maxFare = 799

	minFlightNumber = 10
	maxFlightNumber = 9999
)

var departureMinutes = []int{0, 15, 30, 45}

// timestampLayout matches the ISO-8601 local timestamps the API serves.
const timestampLayout = "2006-01-02T15:04:05"

// Generator synthesizes plausible flight offers for a search query. It never
// fails and has no side effects beyond consuming randomness.
type Generator struct {
	rng random.Rand
	log *logger.Logger
}

func New(rng random.Rand, log *logger.Logger) *Generator {
	return &Generator{
		rng: rng,
		log: log,
	}
}

// GenerateOffers returns count single-segment offers for the query, in
// generation order. travelDate is the parsed calendar date of the query.
func (g *Generator) GenerateOffers(query *model.SearchQuery, travelDate time.Time, count int) []model.FlightOffer {
	origin := sanitizer.NormalizeIATA(query.Origin)
	destination := sanitizer.NormalizeIATA(query.Destination)
	midnight := time.Date(travelDate.Year(), travelDate.Month(), travelDate.Day(), 0, 0, 0, 0, time.UTC)

	offers := make([]model.FlightOffer, 0, count)
	for i := 0; i < count; i++ {
		airline := random.Pick(g.rng, Airlines)

		departure := midnight.
			Add(time.Duration(random.Between(g.rng, minDepartureHour, maxDepartureHour)) * time.Hour).
			Add(time.Duration(random.Pick(g.rng, departureMinutes)) * time.Minute)
		duration := random.Between(g.rng, minDurationMinutes, maxDurationMinutes)
		arrival := departure.Add(time.Duration(duration) * time.Minute)

		segment := model.FlightSegment{
			FlightNumber:    g.makeFlightNumber(airline.Code),
			Airline:         airline.Name,
			Origin:          origin,
			Destination:     destination,
			DepartureTime:   departure.Format(timestampLayout),
			ArrivalTime:     arrival.Format(timestampLayout),
			DurationMinutes: duration,
			Status:          random.Pick(g.rng, model.FlightStatuses),
		}

		offers = append(offers, model.FlightOffer{
			Segments:   []model.FlightSegment{segment},
			PriceTotal: float64(random.Between(g.rng, minFare, maxFare) * query.Passengers),
			Airline:    airline.Name,
		})
	}

	g.log.Debug("Generated flight offers",
		"origin", origin,
		"destination", destination,
		"travel_date", travelDate.Format(time.DateOnly),
		"count", len(offers),
	)
	return offers
}

func (g *Generator) makeFlightNumber(airlineCode string) string {
	return fmt.Sprintf("%s%d", airlineCode, random.Between(g.rng, minFlightNumber, maxFlightNumber))
}
