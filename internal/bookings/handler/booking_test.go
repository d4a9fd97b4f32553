package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "flightbooker/pkg/errors"
	"flightbooker/pkg/logger"
	"flightbooker/pkg/model"
)

// Mock service for testing
type mockBookingService struct {
	createFunc func(ctx context.Context, req *model.BookingRequest) (string, error)
	listFunc   func(ctx context.Context, limit int) ([]*model.Booking, error)
}

func (m *mockBookingService) Create(ctx context.Context, req *model.BookingRequest) (string, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return "665f1c2e8b3e4a0001a1b2c3", nil
}

func (m *mockBookingService) List(ctx context.Context, limit int) ([]*model.Booking, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return []*model.Booking{}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func newRouter(svc *mockBookingService) *httprouter.Router {
	router := httprouter.New()
	NewBookingHandler(svc, testLogger()).RegisterRoutes(router)
	return router
}

const validBody = `{
	"customer_name": "A Lee",
	"customer_email": "a@x.com",
	"passengers": 2,
	"origin": "SFO",
	"destination": "JFK",
	"date": "2025-06-01",
	"flight_number": "UA123",
	"airline": "United",
	"price_total": 500
}`

func TestCreate_ReturnsBookingID(t *testing.T) {
	router := newRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		OK        bool   `json:"ok"`
		BookingID string `json:"booking_id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.OK {
		t.Error("expected ok=true")
	}
	if resp.BookingID == "" {
		t.Error("expected non-empty booking_id")
	}
}

func TestCreate_ServiceErrorSurfacesAsDetail(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, req *model.BookingRequest) (string, error) {
			return "", apperrors.Validation("CustomerEmail must be a valid email address", nil)
		},
	}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Detail == "" {
		t.Error("expected non-empty detail message")
	}
}

func TestCreate_InvalidBody(t *testing.T) {
	router := newRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestList_ReturnsResults(t *testing.T) {
	svc := &mockBookingService{
		listFunc: func(ctx context.Context, limit int) ([]*model.Booking, error) {
			return []*model.Booking{
				{
					ID:           "665f1c2e8b3e4a0001a1b2c3",
					CustomerName: "A Lee",
					TravelDate:   "2025-06-01",
					Origin:       "SFO",
					Destination:  "JFK",
				},
			}, nil
		},
	}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Results []map[string]any `json:"results"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(resp.Results))
	}
	if resp.Results[0]["travel_date"] != "2025-06-01" {
		t.Errorf("travel_date = %v, want 2025-06-01", resp.Results[0]["travel_date"])
	}
	if resp.Results[0]["_id"] != "665f1c2e8b3e4a0001a1b2c3" {
		t.Errorf("_id = %v, want plain string id", resp.Results[0]["_id"])
	}
}

func TestList_StorageErrorSurfacesAs400(t *testing.T) {
	svc := &mockBookingService{
		listFunc: func(ctx context.Context, limit int) ([]*model.Booking, error) {
			return nil, apperrors.Storage("Failed to retrieve bookings", nil)
		},
	}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestList_InvalidLimitParameter(t *testing.T) {
	router := newRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?limit=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
