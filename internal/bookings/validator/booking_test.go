package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightbooker/pkg/logger"
	"flightbooker/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func validRequest() model.BookingRequest {
	return model.BookingRequest{
		CustomerName:  "A Lee",
		CustomerEmail: "a@x.com",
		Passengers:    2,
		Origin:        "SFO",
		Destination:   "JFK",
		Date:          "2025-06-01",
		FlightNumber:  "UA123",
		Airline:       "United",
		PriceTotal:    500,
	}
}

func TestValidate(t *testing.T) {
	v := NewBookingValidator(testLogger())

	tests := []struct {
		name      string
		mutate    func(r *model.BookingRequest)
		wantErr   bool
		wantField string
	}{
		{name: "valid request"},
		{
			name:      "invalid email",
			mutate:    func(r *model.BookingRequest) { r.CustomerEmail = "not-an-email" },
			wantErr:   true,
			wantField: "CustomerEmail",
		},
		{
			name:      "missing customer name",
			mutate:    func(r *model.BookingRequest) { r.CustomerName = "" },
			wantErr:   true,
			wantField: "CustomerName",
		},
		{
			name:      "too many passengers",
			mutate:    func(r *model.BookingRequest) { r.Passengers = 10 },
			wantErr:   true,
			wantField: "Passengers",
		},
		{
			name:      "origin too short",
			mutate:    func(r *model.BookingRequest) { r.Origin = "SF" },
			wantErr:   true,
			wantField: "Origin",
		},
		{
			name:      "negative price",
			mutate:    func(r *model.BookingRequest) { r.PriceTotal = -1 },
			wantErr:   true,
			wantField: "PriceTotal",
		},
		{
			name:      "unparsable date",
			mutate:    func(r *model.BookingRequest) { r.Date = "01/06/2025" },
			wantErr:   true,
			wantField: "Date",
		},
		{
			name:   "zero price accepted",
			mutate: func(r *model.BookingRequest) { r.PriceTotal = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			travelDate, err := v.Validate(&req)
			if tt.wantErr {
				require.Error(t, err)
				var validationErrs ValidationErrors
				require.True(t, errors.As(err, &validationErrs))
				require.NotEmpty(t, validationErrs)
				assert.Equal(t, tt.wantField, validationErrs[0].Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2025-06-01", travelDate)
		})
	}
}

func TestValidate_NormalizesTimestampDates(t *testing.T) {
	v := NewBookingValidator(testLogger())

	req := validRequest()
	req.Date = "2025-06-01T15:00:00"

	travelDate, err := v.Validate(&req)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", travelDate)
}

func TestValidate_DefaultsPassengersToOne(t *testing.T) {
	v := NewBookingValidator(testLogger())

	req := validRequest()
	req.Passengers = 0

	_, err := v.Validate(&req)
	require.NoError(t, err)
	assert.Equal(t, 1, req.Passengers)
}
