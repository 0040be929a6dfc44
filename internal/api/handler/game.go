package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mcoot/stackline/internal/api/apierr"
	"github.com/mcoot/stackline/internal/api/request"
	"github.com/mcoot/stackline/internal/api/response"
	"github.com/mcoot/stackline/internal/services/game"
	"github.com/mcoot/stackline/internal/sse"
)

// GameHandler serves read-only views of games for renderers
type GameHandler struct {
	gameController game.ControllerInterface
	hubManager     *sse.HubManager
	logger         *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface, hubManager *sse.HubManager, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		hubManager:     hubManager,
		logger:         logger,
	}
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameController.ListGames(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := response.GameList{Games: make([]response.GameSummary, len(games))}
	for i, g := range games {
		resp.Games[i] = response.GameSummaryFromModel(g)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := request.GameID(r)

	snap, err := h.gameController.Snapshot(r.Context(), gameID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.CachedJSON(w, r, response.Board{GameID: string(gameID), Snapshot: snap})
}

// Status handles GET /api/v1/games/{id}/status
func (h *GameHandler) Status(w http.ResponseWriter, r *http.Request) {
	gameID := request.GameID(r)

	status, err := h.gameController.Status(r.Context(), gameID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatusFromModel(gameID, status))
}

// Top handles GET /api/v1/games/{id}/columns/{x}/{y}/top
func (h *GameHandler) Top(w http.ResponseWriter, r *http.Request) {
	gameID := request.GameID(r)
	x, y, err := request.Column(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	piece, found, err := h.gameController.TopPiece(r.Context(), gameID, x, y)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	if !found {
		apierr.WriteError(w, apierr.NewNotFoundError(fmt.Sprintf("Column (%d, %d) is empty", x, y)))
		return
	}

	response.JSON(w, http.StatusOK, piece)
}

// Piece handles GET /api/v1/games/{id}/columns/{x}/{y}/pieces/{z}
func (h *GameHandler) Piece(w http.ResponseWriter, r *http.Request) {
	gameID := request.GameID(r)
	x, y, err := request.Column(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	z, err := request.Height(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	piece, found, err := h.gameController.GetPiece(r.Context(), gameID, x, y, z)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	if !found {
		apierr.WriteError(w, apierr.NewNotFoundError(fmt.Sprintf("No piece at (%d, %d, %d)", x, y, z)))
		return
	}

	response.JSON(w, http.StatusOK, piece)
}

// Events handles GET /api/v1/games/{id}/events
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	gameID := request.GameID(r)

	// Refuse to open a stream for a game that does not exist
	if _, err := h.gameController.GetGame(r.Context(), gameID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.logger.Debug("sse stream opened",
		slog.String("game_id", string(gameID)),
		slog.String("remote", r.RemoteAddr))

	sse.ServeSSE(w, r, h.hubManager.GetOrCreateHub(gameID))
}
