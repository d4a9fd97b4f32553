package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"flightbooker/pkg/config"
	httputil "flightbooker/pkg/http"
	"flightbooker/pkg/logger"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// DiagnosticsResponse describes store connectivity for GET /test.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseNameSet  bool     `json:"database_name_set"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type SystemHandler struct {
	mongoClient *mongo.Client
	database    string
	log         *logger.Logger
}

func NewSystemHandler(mongoClient *mongo.Client, database string, log *logger.Logger) *SystemHandler {
	return &SystemHandler{
		mongoClient: mongoClient,
		database:    database,
		log:         log,
	}
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, httputil.MessageResponse{
		Message: "Flight Booker API running",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Root", "error", err)
	}
}

// Test reports whether the document store is reachable. No domain logic.
func (h *SystemHandler) Test(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	response := DiagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURLSet:   os.Getenv(config.EnvMongoURI) != "",
		DatabaseNameSet:  os.Getenv(config.EnvMongoDatabase) != "",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.mongoClient != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.mongoClient.Ping(ctx, nil); err != nil {
			response.Database = "error: " + err.Error()
		} else {
			response.Database = "connected"
			response.ConnectionStatus = "connected"

			names, err := h.mongoClient.Database(h.database).ListCollectionNames(ctx, bson.M{})
			if err != nil {
				response.Database = "connected but error: " + err.Error()
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				response.Collections = names
			}
		}
	}

	if err := httputil.WriteJSON(w, http.StatusOK, response); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Test", "error", err)
	}
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "error", err)
	}
}

func (h *SystemHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.mongoClient == nil || h.mongoClient.Ping(ctx, nil) != nil {
		h.log.Error("Database health check failed", "path", r.URL.Path)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unavailable",
			Database: "error",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:   "ready",
		Database: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "error", err)
	}
}

// RegisterRoutes wires the application-facing routes.
func (h *SystemHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Root)
	router.GET("/test", h.Test)
}

// RegisterHealthRoutes wires the probe routes served with minimal middleware.
func (h *SystemHandler) RegisterHealthRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
