package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"flightbooker/internal/bookings/service"
	apperrors "flightbooker/pkg/errors"
	httputil "flightbooker/pkg/http"
	"flightbooker/pkg/logger"
	"flightbooker/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

type bookResponse struct {
	OK        bool   `json:"ok"`
	BookingID string `json:"booking_id"`
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteDetail(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	bookingID, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteDetail(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, bookResponse{OK: true, BookingID: bookingID}); err != nil {
		h.log.Error("failed to write booking response", "handler", "Create", "error", err)
	}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			if writeErr := httputil.WriteDetail(w, apperrors.InvalidInput(fmt.Sprintf("invalid limit parameter: %s", limitStr))); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
			}
			return
		}
	}

	bookings, err := h.service.List(r.Context(), limit)
	if err != nil {
		if writeErr := httputil.WriteDetail(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteResults(w, bookings); err != nil {
		h.log.Error("failed to write results response", "handler", "List", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/book", h.Create)
	router.GET("/api/bookings", h.List)
}
