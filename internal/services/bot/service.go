package bot

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mcoot/stackline/internal/dependencies/random"
	"github.com/mcoot/stackline/internal/engine"
	"github.com/mcoot/stackline/internal/model"
	"github.com/mcoot/stackline/internal/services/board"
	"github.com/mcoot/stackline/internal/services/game"
)

const (
	StrategyRandom = "random"
	StrategyGreedy = "greedy"
)

// DefaultStrategies returns the built-in strategies by name
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	randomStrategy := NewRandomStrategy(rnd)
	return map[string]Strategy{
		StrategyRandom: randomStrategy,
		StrategyGreedy: NewGreedyStrategy(randomStrategy),
	}
}

// Service makes moves on behalf of a side
type Service struct {
	gameController game.ControllerInterface
	boardService   board.ServiceInterface
	strategies     map[string]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	gameController game.ControllerInterface,
	boardService board.ServiceInterface,
	strategies map[string]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController: gameController,
		boardService:   boardService,
		strategies:     strategies,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// Strategies returns the registered strategy names, sorted
func (s *Service) Strategies() []string {
	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Move chooses a column for side with the named strategy and places there
func (s *Service) Move(ctx context.Context, gameID model.GameID, side model.Side, strategy string) (*game.PlaceResult, error) {
	strat, ok := s.strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, strategy)
	}

	var (
		req   model.PlacementRequest
		found bool
	)
	err := s.boardService.View(ctx, gameID, func(b *engine.Board) error {
		if b.Status().HasWinner() {
			return model.ErrGameComplete
		}
		req, found = strat.ChooseColumn(b, side)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, model.ErrBoardFull
	}

	s.logger.Debug("bot chose column",
		slog.String("game_id", string(gameID)),
		slog.String("strategy", strategy),
		slog.String("side", side.String()),
		slog.Int("x", req.X),
		slog.Int("y", req.Y),
	)

	return s.gameController.PlacePiece(ctx, gameID, req)
}
