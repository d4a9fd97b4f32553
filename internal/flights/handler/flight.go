package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"flightbooker/internal/flights/service"
	apperrors "flightbooker/pkg/errors"
	httputil "flightbooker/pkg/http"
	"flightbooker/pkg/logger"
	"flightbooker/pkg/model"
)

type FlightHandler struct {
	service service.FlightService
	log     *logger.Logger
}

func NewFlightHandler(service service.FlightService, log *logger.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log,
	}
}

func (h *FlightHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var query model.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		if writeErr := httputil.WriteDetail(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "error", writeErr)
		}
		return
	}

	offers, err := h.service.Search(&query)
	if err != nil {
		if writeErr := httputil.WriteDetail(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteResults(w, offers); err != nil {
		h.log.Error("failed to write results response", "handler", "Search", "error", err)
	}
}

func (h *FlightHandler) Status(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	record := h.service.Status(ps.ByName("flight_number"))

	if err := httputil.WriteJSON(w, http.StatusOK, record); err != nil {
		h.log.Error("failed to write status response", "handler", "Status", "error", err)
	}
}

func (h *FlightHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/search", h.Search)
	router.GET("/api/status/:flight_number", h.Status)
}
