package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/stackline/internal/api/response"
	"github.com/mcoot/stackline/internal/factory"
	"github.com/mcoot/stackline/internal/model"
)

// newGameCmds returns the commands that act on stored games
func newGameCmds() []*cobra.Command {
	return []*cobra.Command{
		newNewCmd(),
		newPlaceCmd(),
		newShowCmd(),
		newStatusCmd(),
		newGetCmd(),
		newTopCmd(),
		newRescanCmd(),
		newListCmd(),
		newDeleteCmd(),
	}
}

// withApp opens the application for the duration of fn
func withApp(cmd *cobra.Command, fn func(app *factory.App, out *Output) error) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	return fn(app, NewOutput(cfg.Output, cmd.OutOrStdout()))
}

// addBoardFlags registers the board shape flags on cmd
func addBoardFlags(cmd *cobra.Command, boardCfg *model.BoardConfig) {
	cmd.Flags().IntVar(&boardCfg.XRad, "xrad", boardCfg.XRad, "Board radius along x")
	cmd.Flags().IntVar(&boardCfg.YRad, "yrad", boardCfg.YRad, "Board radius along y")
	cmd.Flags().IntVar(&boardCfg.MaxHeight, "max-height", boardCfg.MaxHeight, "Column capacity")
	cmd.Flags().IntVar(&boardCfg.WinLen, "win-len", boardCfg.WinLen, "Pieces in a row needed to win")
}

func newNewCmd() *cobra.Command {
	var gameID string
	boardCfg := model.DefaultBoardConfig()

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *factory.App, out *Output) error {
				g, err := app.GameController.CreateGame(cmd.Context(), model.GameID(gameID), boardCfg)
				if err != nil {
					return err
				}
				out.Print(response.GameSummaryFromModel(g))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "id", "", "Game ID (random if empty)")
	addBoardFlags(cmd, &boardCfg)

	return cmd
}

func newPlaceCmd() *cobra.Command {
	var botStrategy string

	cmd := &cobra.Command{
		Use:   "place <game> <side> <x> <y>",
		Short: "Drop a piece into column (x, y)",
		Long: `Drop a piece for side (white or black) into column (x, y). It lands on top
of the column. With --bot, the named strategy answers for the other side.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID := model.GameID(args[0])
			side, err := model.ParseSide(args[1])
			if err != nil {
				return err
			}
			x, y, err := parseColumn(args[2], args[3])
			if err != nil {
				return err
			}

			return withApp(cmd, func(app *factory.App, out *Output) error {
				result, err := app.GameController.PlacePiece(cmd.Context(), gameID, model.PlacementRequest{Side: side, X: x, Y: y})
				if err != nil {
					return err
				}
				out.Print(result)

				if botStrategy == "" || result.Status.HasWinner() {
					return nil
				}
				reply, err := app.BotService.Move(cmd.Context(), gameID, side.Opponent(), botStrategy)
				if err != nil {
					return err
				}
				out.Print(reply)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&botStrategy, "bot", "", "Strategy that replies for the other side: random, greedy")

	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game>",
		Short: "Show the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID := model.GameID(args[0])
			return withApp(cmd, func(app *factory.App, out *Output) error {
				snap, err := app.GameController.Snapshot(cmd.Context(), gameID)
				if err != nil {
					return err
				}
				out.Print(response.Board{GameID: string(gameID), Snapshot: snap})
				return nil
			})
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <game>",
		Short: "Show the winner, if any",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID := model.GameID(args[0])
			return withApp(cmd, func(app *factory.App, out *Output) error {
				status, err := app.GameController.Status(cmd.Context(), gameID)
				if err != nil {
					return err
				}
				out.Print(response.StatusFromModel(gameID, status))
				return nil
			})
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game> <x> <y> <z>",
		Short: "Show the piece at (x, y, z)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID := model.GameID(args[0])
			x, y, err := parseColumn(args[1], args[2])
			if err != nil {
				return err
			}
			z, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid z: %w", err)
			}

			return withApp(cmd, func(app *factory.App, out *Output) error {
				piece, ok, err := app.GameController.GetPiece(cmd.Context(), gameID, x, y, z)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("no piece at (%d, %d, %d)", x, y, z)
				}
				out.Print(piece)
				return nil
			})
		},
	}
}

func newTopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top <game> <x> <y>",
		Short: "Show the top piece of column (x, y)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID := model.GameID(args[0])
			x, y, err := parseColumn(args[1], args[2])
			if err != nil {
				return err
			}

			return withApp(cmd, func(app *factory.App, out *Output) error {
				piece, ok, err := app.GameController.TopPiece(cmd.Context(), gameID, x, y)
				if err != nil {
					return err
				}
				if !ok {
					out.PrintMessage(fmt.Sprintf("Column (%d, %d) is empty", x, y))
					return nil
				}
				out.Print(piece)
				return nil
			})
		},
	}
}

func newRescanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rescan <game>",
		Short: "Search every cell for a winning line",
		Long: `Placement only checks lines through the newest piece. rescan walks every
occupied cell in all 13 directions and reports the first full line it finds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID := model.GameID(args[0])
			return withApp(cmd, func(app *factory.App, out *Output) error {
				status, err := app.GameController.Rescan(cmd.Context(), gameID)
				if err != nil {
					return err
				}
				out.Print(response.StatusFromModel(gameID, status))
				return nil
			})
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *factory.App, out *Output) error {
				games, err := app.GameController.ListGames(cmd.Context())
				if err != nil {
					return err
				}
				list := response.GameList{Games: make([]response.GameSummary, 0, len(games))}
				for _, g := range games {
					list.Games = append(list.Games, response.GameSummaryFromModel(g))
				}
				out.Print(list)
				return nil
			})
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID := model.GameID(args[0])
			return withApp(cmd, func(app *factory.App, out *Output) error {
				if err := app.GameController.DeleteGame(cmd.Context(), gameID); err != nil {
					return err
				}
				out.PrintMessage(fmt.Sprintf("Game %s deleted", gameID))
				return nil
			})
		},
	}
}

func parseColumn(xs, ys string) (int, int, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x: %w", err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y: %w", err)
	}
	return x, y, nil
}
