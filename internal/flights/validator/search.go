package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"flightbooker/pkg/logger"
	"flightbooker/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type SearchValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewSearchValidator(log *logger.Logger) *SearchValidator {
	return &SearchValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// Validate checks a search query in place (applying the travel_date alias
// and the single-passenger default) and returns the parsed calendar date.
func (v *SearchValidator) Validate(query *model.SearchQuery) (time.Time, error) {
	if query.Date == "" {
		query.Date = query.TravelDate
	}
	if query.Passengers == 0 {
		query.Passengers = 1
	}

	if err := v.validate.Struct(query); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return time.Time{}, translateValidationErrors(validationErrs)
		}
		return time.Time{}, err
	}

	travelDate, err := ParseTravelDate(query.Date)
	if err != nil {
		return time.Time{}, ValidationErrors{
			ValidationError{
				Field:   "Date",
				Message: fmt.Sprintf("date must be an ISO-8601 calendar date, got: %s", query.Date),
			},
		}
	}

	return travelDate, nil
}

// ParseTravelDate accepts a plain ISO date or a full ISO timestamp and
// returns the calendar date.
func ParseTravelDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Truncate(24 * time.Hour), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t.Truncate(24 * time.Hour), nil
	}
	return time.Time{}, fmt.Errorf("unparsable date: %s", value)
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "lte":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
