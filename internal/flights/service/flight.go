package service

import (
	"flightbooker/internal/flights/generator"
	"flightbooker/internal/flights/status"
	"flightbooker/internal/flights/validator"
	"flightbooker/pkg/config"
	apperrors "flightbooker/pkg/errors"
	"flightbooker/pkg/model"
)

type FlightService interface {
	Search(query *model.SearchQuery) ([]model.FlightOffer, error)
	Status(flightNumber string) model.StatusRecord
}

type flightService struct {
	generator *generator.Generator
	simulator *status.Simulator
	validator *validator.SearchValidator
	cfg       *config.Config
}

func NewFlightService(
	gen *generator.Generator,
	sim *status.Simulator,
	val *validator.SearchValidator,
	cfg *config.Config,
) FlightService {
	return &flightService{
		generator: gen,
		simulator: sim,
		validator: val,
		cfg:       cfg,
	}
}

// Search validates the query and synthesizes offers. Malformed input is
// rejected before generation runs; generation itself cannot fail.
func (s *flightService) Search(query *model.SearchQuery) ([]model.FlightOffer, error) {
	travelDate, err := s.validator.Validate(query)
	if err != nil {
		s.cfg.Log.Warn("Search validation failed", "error", err)
		return nil, apperrors.Validation(err.Error(), nil)
	}

	return s.generator.GenerateOffers(query, travelDate, s.cfg.OffersPerSearch), nil
}

func (s *flightService) Status(flightNumber string) model.StatusRecord {
	return s.simulator.GetStatus(flightNumber)
}
