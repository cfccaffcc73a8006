package view

import (
	"fmt"
	"io"
	"strings"

	"reversi/game"
)

var symbols = map[game.Disc]string{
	game.NoDisc: "_",
	game.Black:  "X",
	game.White:  "O",
}

// Board draws the board one row per line. Rows shorter than the widest one are
// indented by the difference, which centres hexagonal boards.
func Board(model game.ReadOnly) string {
	board := model.Board()
	widest := 0
	for _, row := range board {
		widest = max(widest, len(row))
	}

	lines := make([]string, 0, len(board))
	for _, row := range board {
		cells := make([]string, 0, len(row))
		for i := range row {
			disc, err := row[i].Disc()
			if err != nil {
				disc = game.NoDisc
			}
			cells = append(cells, symbols[disc])
		}
		lines = append(lines, strings.Repeat(" ", widest-len(row))+strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

// Scores lists every player with its disc and score, in seating order.
func Scores(model game.ReadOnly) string {
	parts := []string{}
	for _, p := range model.Players() {
		disc, err := model.DiscOf(p)
		if err != nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s): %d", p.Name(), disc, model.Score(p)))
	}
	return strings.Join(parts, "  ")
}

// Render writes the board followed by the scores.
func Render(w io.Writer, model game.ReadOnly) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", Board(model), Scores(model))
	return err
}
