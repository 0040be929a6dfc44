package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/stackline/internal/api/response"
	"github.com/mcoot/stackline/internal/engine"
	"github.com/mcoot/stackline/internal/model"
	"github.com/mcoot/stackline/internal/services/game"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Board:
		o.printBoard(v)
	case response.Status:
		o.printStatus(v)
	case response.GameSummary:
		o.printGameSummary(v)
	case response.GameList:
		o.printGameList(v)
	case model.Piece:
		o.printf("%s\n", describePiece(v))
	case *game.PlaceResult:
		o.printPlaceResult(v)
	case response.Health:
		o.printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printGameSummary(g response.GameSummary) {
	o.printf("Game: %s\n", g.ID)
	o.printf("Board: xrad=%d yrad=%d max_height=%d win_len=%d\n",
		g.Config.XRad, g.Config.YRad, g.Config.MaxHeight, g.Config.WinLen)
	o.printf("Moves: %d\n", g.MoveCount)
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		o.printf("No games\n")
		return
	}
	for _, g := range l.Games {
		o.printf("%s  %dx%d  win_len=%d  moves=%d\n",
			g.ID, g.Config.Width(), g.Config.Depth(), g.Config.WinLen, g.MoveCount)
	}
}

// printBoard draws the board from above. Each cell shows the column height,
// or the side letter when the column holds a single piece.
func (o *Output) printBoard(b response.Board) {
	o.printf("Game: %s\n", b.GameID)
	o.printf("Board: xrad=%d yrad=%d max_height=%d win_len=%d pieces=%d\n",
		b.XRad, b.YRad, b.MaxHeight, b.WinLen, b.PieceCount)
	o.printf("%s", RenderGrid(b.Snapshot))
	o.printf("%s\n", describeStatus(b.Status))
}

// RenderGrid returns the top-down grid of a snapshot, x across and y down
func RenderGrid(s engine.Snapshot) string {
	width := 2*s.XRad + 1
	border := "    +" + strings.Repeat("-", 3*width) + "+\n"

	var sb strings.Builder
	sb.WriteString("     ")
	for x := -s.XRad; x <= s.XRad; x++ {
		fmt.Fprintf(&sb, "%3d", x)
	}
	sb.WriteString("\n")
	sb.WriteString(border)

	for y := -s.YRad; y <= s.YRad; y++ {
		fmt.Fprintf(&sb, "%3d |", y)
		for x := -s.XRad; x <= s.XRad; x++ {
			fmt.Fprintf(&sb, "%3s", cellLabel(s.ColumnAt(x, y)))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}

func cellLabel(col *engine.ColumnSnapshot) string {
	if col == nil || len(col.Pieces) == 0 {
		return "."
	}
	if len(col.Pieces) == 1 {
		return col.Pieces[0].Side.Letter()
	}
	return strconv.Itoa(len(col.Pieces))
}

func (o *Output) printStatus(s response.Status) {
	o.printf("Game: %s\n", s.GameID)
	if s.Winner == nil {
		o.printf("Status: undetermined\n")
		return
	}
	o.printf("Status: %s wins\n", *s.Winner)
	o.printf("Line: %s\n", describeLine(s.Line))
}

func (o *Output) printPlaceResult(r *game.PlaceResult) {
	o.printf("Placed %s\n", describePiece(r.Piece))
	if r.Status.HasWinner() {
		o.printf("%s\n", describeStatus(r.Status))
	}
}

func describePiece(p model.Piece) string {
	return fmt.Sprintf("%s at (%d, %d, %s) id=%d", p.Side, p.X, p.Y, p.Height, p.ID)
}

func describeStatus(s model.Status) string {
	winner, ok := s.Winner()
	if !ok {
		return "Status: undetermined"
	}
	return fmt.Sprintf("Status: %s wins along %s", winner, describeLine(s.Line))
}

func describeLine(line []model.Piece) string {
	cells := make([]string, len(line))
	for i, p := range line {
		cells[i] = fmt.Sprintf("(%d, %d, %s)", p.X, p.Y, p.Height)
	}
	return strings.Join(cells, " ")
}
