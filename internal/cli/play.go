package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/stackline/internal/api/response"
	"github.com/mcoot/stackline/internal/factory"
	"github.com/mcoot/stackline/internal/model"
	"github.com/mcoot/stackline/internal/services/game"
)

const playHelp = `Commands:
  <x> <y>   drop a piece for the side to move into column (x, y)
  show      print the board
  status    print the winner, if any
  rescan    search the whole board for a line
  help      print this help
  quit      leave the game`

func newPlayCmd() *cobra.Command {
	var (
		gameID      string
		botStrategy string
		humanSide   string
	)
	boardCfg := model.DefaultBoardConfig()

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game interactively",
		Long: `Start an interactive game on a new board, or resume the game given by --id.
Sides alternate, white first. With --bot, the named strategy plays the side
not given by --side.

` + playHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			human, err := model.ParseSide(humanSide)
			if err != nil {
				return err
			}

			return withApp(cmd, func(app *factory.App, out *Output) error {
				g, err := openOrCreate(cmd.Context(), app, model.GameID(gameID), boardCfg)
				if err != nil {
					return err
				}

				s := &playSession{
					app:    app,
					out:    out,
					in:     bufio.NewScanner(cmd.InOrStdin()),
					prompt: cfg.Output != "json",
					gameID: g.ID,
					turn:   nextSide(g),
					human:  human,
					bot:    botStrategy,
				}
				return s.run(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "id", "", "Resume this game, or create it if missing")
	cmd.Flags().StringVar(&botStrategy, "bot", "", "Strategy playing against you: random, greedy")
	cmd.Flags().StringVar(&humanSide, "side", "white", "Your side when playing a bot")
	addBoardFlags(cmd, &boardCfg)

	return cmd
}

func openOrCreate(ctx context.Context, app *factory.App, gameID model.GameID, boardCfg model.BoardConfig) (*model.Game, error) {
	if gameID != "" {
		g, err := app.GameController.GetGame(ctx, gameID)
		if err == nil {
			return g, nil
		}
		if !errors.Is(err, model.ErrGameNotFound) {
			return nil, err
		}
	}
	return app.GameController.CreateGame(ctx, gameID, boardCfg)
}

// nextSide returns the side to move: white on an empty board, otherwise the
// opponent of the last mover
func nextSide(g *model.Game) model.Side {
	if len(g.Placements) == 0 {
		return model.White
	}
	return g.Placements[len(g.Placements)-1].Side.Opponent()
}

type playSession struct {
	app    *factory.App
	out    *Output
	in     *bufio.Scanner
	prompt bool
	gameID model.GameID
	turn   model.Side
	human  model.Side
	bot    string
}

func (s *playSession) run(ctx context.Context) error {
	if err := s.show(ctx); err != nil {
		return err
	}
	if over, err := s.checkOver(ctx); err != nil || over {
		return err
	}

	if s.botToMove() {
		if over, err := s.botMove(ctx); err != nil || over {
			return err
		}
	}

	for {
		if s.prompt {
			s.out.printf("%s> ", s.turn)
		}
		if !s.in.Scan() {
			return s.in.Err()
		}

		line := strings.TrimSpace(s.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help":
			s.out.PrintMessage(playHelp)
			continue
		case "show":
			if err := s.show(ctx); err != nil {
				return err
			}
			continue
		case "status":
			status, err := s.app.GameController.Status(ctx, s.gameID)
			if err != nil {
				return err
			}
			s.out.Print(response.StatusFromModel(s.gameID, status))
			continue
		case "rescan":
			status, err := s.app.GameController.Rescan(ctx, s.gameID)
			if err != nil {
				return err
			}
			s.out.Print(response.StatusFromModel(s.gameID, status))
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			s.out.PrintMessage(fmt.Sprintf("Unrecognised input %q, try help", line))
			continue
		}
		x, y, err := parseColumn(fields[0], fields[1])
		if err != nil {
			s.out.PrintMessage(err.Error())
			continue
		}

		over, err := s.place(ctx, x, y)
		if err != nil || over {
			return err
		}
		if s.botToMove() {
			if over, err := s.botMove(ctx); err != nil || over {
				return err
			}
		}
	}
}

func (s *playSession) botToMove() bool {
	return s.bot != "" && s.turn != s.human
}

// place drops a piece for the side to move. Rule violations are reported and
// leave the turn unchanged.
func (s *playSession) place(ctx context.Context, x, y int) (bool, error) {
	result, err := s.app.GameController.PlacePiece(ctx, s.gameID, model.PlacementRequest{Side: s.turn, X: x, Y: y})
	if err != nil {
		if isRuleError(err) {
			s.out.PrintMessage(err.Error())
			return false, nil
		}
		return false, err
	}
	return s.advance(ctx, result)
}

func (s *playSession) botMove(ctx context.Context) (bool, error) {
	result, err := s.app.BotService.Move(ctx, s.gameID, s.turn, s.bot)
	if errors.Is(err, model.ErrBoardFull) {
		s.out.PrintMessage("Board is full")
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return s.advance(ctx, result)
}

func (s *playSession) advance(ctx context.Context, result *game.PlaceResult) (bool, error) {
	s.out.Print(result)
	if err := s.show(ctx); err != nil {
		return false, err
	}
	if result.Status.HasWinner() {
		return true, nil
	}
	s.turn = s.turn.Opponent()
	return false, nil
}

func (s *playSession) show(ctx context.Context) error {
	snap, err := s.app.GameController.Snapshot(ctx, s.gameID)
	if err != nil {
		return err
	}
	s.out.Print(response.Board{GameID: string(s.gameID), Snapshot: snap})
	return nil
}

func (s *playSession) checkOver(ctx context.Context) (bool, error) {
	status, err := s.app.GameController.Status(ctx, s.gameID)
	if err != nil {
		return false, err
	}
	return status.HasWinner(), nil
}

func isRuleError(err error) bool {
	return errors.Is(err, model.ErrOutOfBounds) ||
		errors.Is(err, model.ErrHeightExceeded) ||
		errors.Is(err, model.ErrGameComplete)
}
