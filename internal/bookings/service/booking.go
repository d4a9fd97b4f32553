package service

import (
	"context"

	"flightbooker/internal/bookings/repository"
	"flightbooker/internal/bookings/validator"
	"flightbooker/pkg/config"
	apperrors "flightbooker/pkg/errors"
	"flightbooker/pkg/kafka"
	"flightbooker/pkg/model"
	"flightbooker/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, req *model.BookingRequest) (string, error)
	List(ctx context.Context, limit int) ([]*model.Booking, error)
}

// Publisher is the event-bus seam; nil disables publishing.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	publisher Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create validates and persists a booking request, returning the
// store-assigned id. Nothing is written when validation fails.
func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (string, error) {
	travelDate, err := s.validator.Validate(req)
	if err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return "", apperrors.Validation(err.Error(), nil)
	}

	booking := &model.Booking{
		CustomerName:  sanitizer.NormalizeName(req.CustomerName),
		CustomerEmail: sanitizer.NormalizeEmail(req.CustomerEmail),
		Passengers:    req.Passengers,
		Origin:        sanitizer.NormalizeIATA(req.Origin),
		Destination:   sanitizer.NormalizeIATA(req.Destination),
		TravelDate:    travelDate,
		FlightNumber:  req.FlightNumber,
		Airline:       req.Airline,
		PriceTotal:    req.PriceTotal,
		Segments:      req.Segments,
	}

	if err := s.repo.Insert(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to store booking", "error", err)
		return "", apperrors.Storage("Failed to store booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"booking_id", booking.ID,
		"flight_number", booking.FlightNumber,
		"origin", booking.Origin,
		"destination", booking.Destination,
	)

	s.publishCreated(ctx, booking)

	return booking.ID, nil
}

// List returns stored bookings, most recent first, bounded by the configured
// listing limit. Records come back with ids and dates already normalized to
// plain strings.
func (s *bookingService) List(ctx context.Context, limit int) ([]*model.Booking, error) {
	limit = config.NormalizeListLimit(limit, s.cfg.BookingsListLimit)

	bookings, err := s.repo.FindAll(ctx, limit)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Storage("Failed to retrieve bookings", err)
	}

	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, nil
}

// publishCreated emits a booking.created event. Best effort: a broker
// failure never fails the booking.
func (s *bookingService) publishCreated(ctx context.Context, booking *model.Booking) {
	if s.publisher == nil {
		return
	}

	msg, err := kafka.NewMessage().
		WithKey(booking.ID).
		WithEventType("booking.created").
		WithSource("flightbooker").
		WithValue(booking).
		Build()
	if err != nil {
		s.cfg.Log.Warn("Failed to build booking.created event", "booking_id", booking.ID, "error", err)
		return
	}

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish booking.created event", "booking_id", booking.ID, "error", err)
	}
}
