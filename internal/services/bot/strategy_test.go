package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/stackline/internal/dependencies/mocks"
	"github.com/mcoot/stackline/internal/engine"
	"github.com/mcoot/stackline/internal/model"
	"github.com/mcoot/stackline/internal/services/bot"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	random     *bot.RandomStrategy
	greedy     *bot.GreedyStrategy
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.random = bot.NewRandomStrategy(s.mockRandom)
	s.greedy = bot.NewGreedyStrategy(s.random)
}

func (s *StrategySuite) newBoard(cfg model.BoardConfig, moves ...model.PlacementRequest) *engine.Board {
	b, err := engine.Load(cfg, moves)
	s.Require().NoError(err)
	return b
}

func (s *StrategySuite) TestRandomPicksIndexedOpenColumn() {
	// 3x3 board; columns are ordered x then y, so index 4 is the centre
	b := s.newBoard(model.BoardConfig{XRad: 1, YRad: 1, MaxHeight: 2, WinLen: 3})
	s.mockRandom.QueueIntn(4)

	req, ok := s.random.ChooseColumn(b, model.Black)
	s.True(ok)
	s.Equal(model.PlacementRequest{Side: model.Black, X: 0, Y: 0}, req)
	s.Equal([]int{9}, s.mockRandom.IntnCalls())
}

func (s *StrategySuite) TestRandomSkipsFullColumns() {
	b := s.newBoard(model.BoardConfig{XRad: 1, YRad: 0, MaxHeight: 1, WinLen: 3},
		model.PlacementRequest{Side: model.White, X: -1, Y: 0},
		model.PlacementRequest{Side: model.Black, X: 0, Y: 0},
	)
	s.mockRandom.QueueIntn(0)

	req, ok := s.random.ChooseColumn(b, model.White)
	s.True(ok)
	s.Equal(1, req.X)
}

func (s *StrategySuite) TestRandomFullBoard() {
	b := s.newBoard(model.BoardConfig{XRad: 0, YRad: 0, MaxHeight: 1, WinLen: 3},
		model.PlacementRequest{Side: model.White},
	)

	_, ok := s.random.ChooseColumn(b, model.White)
	s.False(ok)

	_, ok = s.greedy.ChooseColumn(b, model.White)
	s.False(ok)
}

func (s *StrategySuite) TestGreedyCompletesOwnLine() {
	b := s.newBoard(model.BoardConfig{XRad: 3, YRad: 3, MaxHeight: 4, WinLen: 3},
		model.PlacementRequest{Side: model.White, X: 0, Y: 0},
		model.PlacementRequest{Side: model.White, X: 0, Y: 0},
	)

	req, ok := s.greedy.ChooseColumn(b, model.White)
	s.True(ok)
	s.Equal(model.PlacementRequest{Side: model.White, X: 0, Y: 0}, req)
}

func (s *StrategySuite) TestGreedyBlocksOpponent() {
	b := s.newBoard(model.BoardConfig{XRad: 3, YRad: 3, MaxHeight: 4, WinLen: 3},
		model.PlacementRequest{Side: model.Black, X: 1, Y: 2},
		model.PlacementRequest{Side: model.Black, X: 2, Y: 2},
	)

	req, ok := s.greedy.ChooseColumn(b, model.White)
	s.True(ok)
	s.Equal(model.White, req.Side)
	// The lowest open column that completes black's row
	s.Equal(0, req.X)
	s.Equal(2, req.Y)
}

func (s *StrategySuite) TestGreedyPrefersWinningOverBlocking() {
	b := s.newBoard(model.BoardConfig{XRad: 3, YRad: 3, MaxHeight: 4, WinLen: 3},
		model.PlacementRequest{Side: model.Black, X: -3, Y: -3},
		model.PlacementRequest{Side: model.Black, X: -2, Y: -3},
		model.PlacementRequest{Side: model.White, X: 3, Y: 3},
		model.PlacementRequest{Side: model.White, X: 3, Y: 3},
	)

	req, ok := s.greedy.ChooseColumn(b, model.White)
	s.True(ok)
	s.Equal(model.PlacementRequest{Side: model.White, X: 3, Y: 3}, req)
}

func (s *StrategySuite) TestGreedyFallsBack() {
	b := s.newBoard(model.BoardConfig{XRad: 1, YRad: 1, MaxHeight: 2, WinLen: 3})
	s.mockRandom.QueueIntn(8)

	req, ok := s.greedy.ChooseColumn(b, model.Black)
	s.True(ok)
	s.Equal(model.PlacementRequest{Side: model.Black, X: 1, Y: 1}, req)
}
