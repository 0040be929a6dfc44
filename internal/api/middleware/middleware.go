package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/stackline/internal/api/apierr"
	"github.com/mcoot/stackline/internal/middleware"
)

// Recovery turns handler panics into INTERNAL_ERROR JSON responses
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger.With(slog.String("component", "api")), apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

// Logging logs each API request, tagged with the game it addresses when the
// route has one
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	logger = logger.With(slog.String("component", "api"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestLogger := logger
			if id := mux.Vars(r)["id"]; id != "" {
				requestLogger = logger.With(slog.String("game_id", id))
			}
			middleware.Logging(requestLogger)(next).ServeHTTP(w, r)
		})
	}
}
