package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testPlayer struct {
	name string
}

func newTestPlayer(name string) *testPlayer {
	return &testPlayer{name: name}
}

func (p *testPlayer) Name() string {
	return p.name
}

// recorder logs notifications as "event:player" strings and can react to them.
type recorder struct {
	events     []string
	onMustPass func(player Player)
	onNewTurn  func(player Player)
}

func (r *recorder) NewTurn(player Player) {
	r.events = append(r.events, "newTurn:"+player.Name())
	if r.onNewTurn != nil {
		r.onNewTurn(player)
	}
}

func (r *recorder) MustPass(player Player) {
	r.events = append(r.events, "mustPass:"+player.Name())
	if r.onMustPass != nil {
		r.onMustPass(player)
	}
}

func (r *recorder) GameEnds() {
	r.events = append(r.events, "gameEnds")
}

func newHexGame(t *testing.T, side int) (*Reversi, *testPlayer, *testPlayer) {
	t.Helper()
	white, black := newTestPlayer("white"), newTestPlayer("black")
	g, err := New(HexTopology{}, side, white, black)
	require.NoError(t, err)
	return g, white, black
}

func newSquareGame(t *testing.T, side int) (*Reversi, *testPlayer, *testPlayer) {
	t.Helper()
	white, black := newTestPlayer("white"), newTestPlayer("black")
	g, err := New(SquareTopology{}, side, white, black)
	require.NoError(t, err)
	return g, white, black
}

// arrange replaces every disc on the board with the given ones.
func arrange(t *testing.T, g *Reversi, discs map[Coordinates]Disc) {
	t.Helper()
	for i := range g.board {
		for j := range g.board[i] {
			g.board[i][j].disc = NoDisc
		}
	}
	for c, disc := range discs {
		cell, err := g.cellAt(c)
		require.NoError(t, err)
		require.NoError(t, cell.Place(disc))
	}
}

func legalMoves(t *testing.T, g ReadOnly, player Player) []Coordinates {
	t.Helper()
	moves := []Coordinates{}
	for _, row := range g.Board() {
		for _, cell := range row {
			score, err := g.ScoreEarnedByPlacing(player, cell.Coordinates())
			require.NoError(t, err)
			if score > 0 {
				moves = append(moves, cell.Coordinates())
			}
		}
	}
	return moves
}

func emptyCells(g ReadOnly) int {
	empty := 0
	for _, row := range g.Board() {
		for _, cell := range row {
			if cell.IsEmpty() {
				empty++
			}
		}
	}
	return empty
}
