package api

import (
	"net/http"
	"travel-planner-service/internal/api/handlers"

	"github.com/gorilla/mux"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(planner handlers.Planner, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(corsMiddleware(allowedOrigins))

	itineraries := &handlers.ItineraryHandler{Planner: planner}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/tips", handlers.Tips).Methods(http.MethodGet)

	r.HandleFunc("/itineraries", itineraries.Generate).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/itineraries/current", itineraries.Current).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/itineraries/current/map", itineraries.Map).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/itineraries/current/export.csv", itineraries.ExportCSV).Methods(http.MethodGet, http.MethodOptions)

	return loggingMiddleware(r)
}
