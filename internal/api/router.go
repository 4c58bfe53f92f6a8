package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/procomhq/attendance-portal/internal/api/handler"
	"github.com/procomhq/attendance-portal/internal/api/middleware"
	"github.com/procomhq/attendance-portal/internal/services/attendance"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger               *slog.Logger
	AttendanceController *attendance.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	attendanceHandler := handler.NewAttendanceHandler(cfg.AttendanceController)

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.CORS)

	r.HandleFunc("/participants", attendanceHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/mark-attendance", attendanceHandler.Mark).Methods(http.MethodPost)
	r.HandleFunc("/remove-attendance", attendanceHandler.Unmark).Methods(http.MethodPost)
	r.HandleFunc("/purge-log-entry", attendanceHandler.PurgeLogRow).Methods(http.MethodPost)
	r.HandleFunc("/export", attendanceHandler.Export).Methods(http.MethodGet)
	r.HandleFunc("/test-sheets", attendanceHandler.TestSheets).Methods(http.MethodGet)

	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Preflight requests match here so the CORS middleware can answer them
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
