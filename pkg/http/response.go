package http

import (
	"encoding/json"
	"net/http"

	apperrors "flightbooker/pkg/errors"
)

// DetailResponse is the error body for client-facing failures.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// ResultsResponse wraps list payloads.
type ResultsResponse struct {
	Results any `json:"results"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func WriteResults(w http.ResponseWriter, results any) error {
	return WriteJSON(w, http.StatusOK, ResultsResponse{Results: results})
}

// WriteDetail surfaces an error as {"detail": message} with the error's
// HTTP status. Unknown error types collapse to a generic 500.
func WriteDetail(w http.ResponseWriter, err error) error {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		return WriteJSON(w, http.StatusInternalServerError, DetailResponse{
			Detail: "Internal server error",
		})
	}
	return WriteJSON(w, appErr.StatusCode(), DetailResponse{Detail: appErr.Message})
}
