package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/stackline/internal/api/apierr"
	"github.com/mcoot/stackline/internal/api/handler"
	"github.com/mcoot/stackline/internal/api/middleware"
	"github.com/mcoot/stackline/internal/api/response"
	"github.com/mcoot/stackline/internal/services/game"
	"github.com/mcoot/stackline/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	HubManager     *sse.HubManager
}

// NewRouter creates a new API router with all routes configured.
// Every route is read-only: placements happen through the CLI.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.HubManager, cfg.Logger)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	games := api.PathPrefix("/games").Subrouter()
	games.HandleFunc("", gameHandler.List).Methods(http.MethodGet)
	games.HandleFunc("/{id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id}/status", gameHandler.Status).Methods(http.MethodGet)
	games.HandleFunc("/{id}/events", gameHandler.Events).Methods(http.MethodGet)
	games.HandleFunc("/{id}/columns/{x}/{y}/top", gameHandler.Top).Methods(http.MethodGet)
	games.HandleFunc("/{id}/columns/{x}/{y}/pieces/{z}", gameHandler.Piece).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError("No such route"))
	})

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
