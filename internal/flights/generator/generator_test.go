package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightbooker/pkg/logger"
	"flightbooker/pkg/model"
	"flightbooker/pkg/random"
)

// scriptedRand replays a fixed sequence of Intn results.
type scriptedRand struct {
	values []int
	pos    int
}

func (s *scriptedRand) Intn(n int) int {
	if s.pos >= len(s.values) {
		return 0
	}
	v := s.values[s.pos]
	s.pos++
	return v % n
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func testQuery() *model.SearchQuery {
	return &model.SearchQuery{
		Origin:      "sfo",
		Destination: "jfk",
		Date:        "2025-06-01",
		Passengers:  2,
	}
}

func TestGenerateOffers_Invariants(t *testing.T) {
	gen := New(random.NewSeeded(42), testLogger())
	query := testQuery()
	travelDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	offers := gen.GenerateOffers(query, travelDate, 6)
	require.Len(t, offers, 6)

	airlineNames := make(map[string]bool)
	for _, a := range Airlines {
		airlineNames[a.Name] = true
	}

	for _, offer := range offers {
		require.Len(t, offer.Segments, 1)
		seg := offer.Segments[0]

		assert.Equal(t, "SFO", seg.Origin)
		assert.Equal(t, "JFK", seg.Destination)
		assert.True(t, airlineNames[offer.Airline], "unknown airline %q", offer.Airline)
		assert.Equal(t, offer.Airline, seg.Airline)

		depart, err := time.Parse("2006-01-02T15:04:05", seg.DepartureTime)
		require.NoError(t, err)
		arrive, err := time.Parse("2006-01-02T15:04:05", seg.ArrivalTime)
		require.NoError(t, err)
		assert.True(t, arrive.After(depart), "arrival %s not after departure %s", seg.ArrivalTime, seg.DepartureTime)
		assert.Equal(t, arrive.Sub(depart), time.Duration(seg.DurationMinutes)*time.Minute)

		assert.GreaterOrEqual(t, seg.DurationMinutes, 120)
		assert.LessOrEqual(t, seg.DurationMinutes, 360)

		assert.Equal(t, "2025-06-01", depart.Format(time.DateOnly))
		assert.GreaterOrEqual(t, depart.Hour(), 6)
		assert.LessOrEqual(t, depart.Hour(), 20)
		assert.Contains(t, []int{0, 15, 30, 45}, depart.Minute())

		assert.Contains(t, model.FlightStatuses, seg.Status)

		// price = fare x passengers with an integer fare in [120, 799]
		fare := offer.PriceTotal / float64(query.Passengers)
		assert.Equal(t, fare, float64(int(fare)), "fare must be integral")
		assert.GreaterOrEqual(t, fare, 120.0)
		assert.LessOrEqual(t, fare, 799.0)
	}
}

func TestGenerateOffers_ExactSequence(t *testing.T) {
	// One offer consumes, in order: airline index, departure hour offset,
	// departure minute index, duration offset, flight number offset,
	// status index, fare offset.
	rng := &scriptedRand{values: []int{
		2,   // DL Delta
		4,   // 6+4 = 10:00
		1,   // :15
		60,  // 120+60 = 180 minutes
		490, // DL500
		0,   // On Time
		280, // fare 120+280 = 400
	}}
	gen := New(rng, testLogger())
	travelDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	offers := gen.GenerateOffers(testQuery(), travelDate, 1)
	require.Len(t, offers, 1)

	seg := offers[0].Segments[0]
	assert.Equal(t, "DL500", seg.FlightNumber)
	assert.Equal(t, "Delta", offers[0].Airline)
	assert.Equal(t, "2025-06-01T10:15:00", seg.DepartureTime)
	assert.Equal(t, "2025-06-01T13:15:00", seg.ArrivalTime)
	assert.Equal(t, 180, seg.DurationMinutes)
	assert.Equal(t, model.StatusOnTime, seg.Status)
	assert.Equal(t, 800.0, offers[0].PriceTotal) // 400 x 2 passengers
}

func TestGenerateOffers_FlightNumberPrefix(t *testing.T) {
	gen := New(random.NewSeeded(7), testLogger())
	travelDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	codes := make([]string, 0, len(Airlines))
	for _, a := range Airlines {
		codes = append(codes, a.Code)
	}

	for _, offer := range gen.GenerateOffers(testQuery(), travelDate, 20) {
		fn := offer.Segments[0].FlightNumber
		matched := false
		for _, code := range codes {
			if strings.HasPrefix(fn, code) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "flight number %q has no roster prefix", fn)
	}
}

func TestGenerateOffers_IndependentRuns(t *testing.T) {
	// Two runs need not match, but both must satisfy the invariants.
	travelDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, seed := range []int64{1, 2} {
		gen := New(random.NewSeeded(seed), testLogger())
		offers := gen.GenerateOffers(testQuery(), travelDate, 6)
		require.Len(t, offers, 6)
		for _, offer := range offers {
			require.Len(t, offer.Segments, 1)
		}
	}
}
