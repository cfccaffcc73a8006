package strategy

import (
	"testing"

	"reversi/game"

	"github.com/stretchr/testify/require"
)

type testPlayer struct {
	name string
}

func (p *testPlayer) Name() string {
	return p.name
}

func newHexGame(t *testing.T, side int) (*game.Reversi, *testPlayer, *testPlayer) {
	t.Helper()
	white, black := &testPlayer{"white"}, &testPlayer{"black"}
	g, err := game.New(game.HexTopology{}, side, white, black)
	require.NoError(t, err)
	return g, white, black
}

// stubModel answers scores from a table. Methods it does not override panic through the nil embedded interface.
type stubModel struct {
	game.ReadOnly
	topology game.Topology
	side     int
	scores   map[game.Coordinates]int
}

func newSquareStub(side int, scores map[game.Coordinates]int) *stubModel {
	return &stubModel{topology: game.SquareTopology{}, side: side, scores: scores}
}

func (m *stubModel) SideLength() int {
	return m.side
}

func (m *stubModel) Corners() []game.Coordinates {
	return m.topology.Corners(m.side)
}

func (m *stubModel) Board() [][]game.Cell {
	board := [][]game.Cell{}
	for _, row := range m.topology.Layout(m.side) {
		cells := []game.Cell{}
		for _, c := range row {
			cells = append(cells, game.NewCell(c))
		}
		board = append(board, cells)
	}
	return board
}

func (m *stubModel) ScoreEarnedByPlacing(_ game.Player, c game.Coordinates) (int, error) {
	return m.scores[c], nil
}
