package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNew(t *testing.T) {
	t.Run("rejects unsupported sizes", func(t *testing.T) {
		_, err := New(HexTopology{}, 2, newTestPlayer("a"), newTestPlayer("b"))
		require.ErrorIs(t, err, ErrBoardSize)

		_, err = New(SquareTopology{}, 7, newTestPlayer("a"), newTestPlayer("b"))
		require.ErrorIs(t, err, ErrBoardSize)
	})

	t.Run("rejects a player facing itself", func(t *testing.T) {
		p := newTestPlayer("solo")
		_, err := New(HexTopology{}, 3, p, p)
		require.ErrorIs(t, err, ErrUnknownPlayer)

		_, err = New(HexTopology{}, 3, p, nil)
		require.ErrorIs(t, err, ErrUnknownPlayer)
	})

	t.Run("hex side 3 initial position", func(t *testing.T) {
		g, white, black := newHexGame(t, 3)

		require.Equal(t, 3, g.Score(white))
		require.Equal(t, 3, g.Score(black))
		require.Equal(t, 13, emptyCells(g))
		turn, err := g.Turn()
		require.NoError(t, err)
		require.Same(t, white, turn, "First player moves first")
		require.ElementsMatch(t, []Coordinates{
			Cube{-1, -1}, Cube{1, -2}, Cube{1, 1}, Cube{2, -1}, Cube{-1, 2}, Cube{-2, 1},
		}, legalMoves(t, g, white))
	})

	t.Run("square side 8 initial position", func(t *testing.T) {
		g, white, black := newSquareGame(t, 8)

		require.Equal(t, 2, g.Score(white))
		require.Equal(t, 2, g.Score(black))
		require.ElementsMatch(t, []Coordinates{
			RowCol{2, 3}, RowCol{3, 2}, RowCol{4, 5}, RowCol{5, 4},
		}, legalMoves(t, g, white))
		require.Empty(t, legalMoves(t, g, black), "Nothing is legal off turn")
	})

	t.Run("discs are bound to players", func(t *testing.T) {
		g, white, black := newHexGame(t, 3)

		disc, err := g.DiscOf(white)
		require.NoError(t, err)
		require.Equal(t, White, disc)
		disc, err = g.DiscOf(black)
		require.NoError(t, err)
		require.Equal(t, Black, disc)
		_, err = g.DiscOf(newTestPlayer("stranger"))
		require.ErrorIs(t, err, ErrUnknownPlayer)
	})
}

func TestScoreEarnedByPlacing(t *testing.T) {
	t.Run("zero for occupied, off board and foreign cells", func(t *testing.T) {
		g, white, _ := newHexGame(t, 3)

		for _, c := range []Coordinates{Cube{1, -1}, Cube{0, 0}, Cube{5, 0}, RowCol{0, 0}} {
			score, err := g.ScoreEarnedByPlacing(white, c)
			require.NoError(t, err)
			require.Zero(t, score, "placing at %s", c)
		}
	})

	t.Run("zero for the player not on turn", func(t *testing.T) {
		g, _, black := newHexGame(t, 3)

		score, err := g.ScoreEarnedByPlacing(black, Cube{-1, -1})
		require.NoError(t, err)
		require.Zero(t, score)
	})

	t.Run("sums captures over all directions", func(t *testing.T) {
		g, white, _ := newSquareGame(t, 4)
		arrange(t, g, map[Coordinates]Disc{
			RowCol{0, 0}: White, RowCol{0, 1}: Black,
			RowCol{2, 0}: White, RowCol{1, 0}: Black,
			RowCol{2, 2}: White, RowCol{1, 1}: Black,
			RowCol{0, 3}: Black, // open run, captures nothing
		})

		// (0,2) captures left through (0,1) and lower-left through (1,1); the run to the right is open
		score, err := g.ScoreEarnedByPlacing(white, RowCol{0, 2})
		require.NoError(t, err)
		require.Equal(t, 2, score)

		// Every run seen from (1,2) reaches the edge or starts with a white disc
		score, err = g.ScoreEarnedByPlacing(white, RowCol{1, 2})
		require.NoError(t, err)
		require.Zero(t, score)
	})

	t.Run("counts long runs", func(t *testing.T) {
		g, white, _ := newSquareGame(t, 6)
		arrange(t, g, map[Coordinates]Disc{
			RowCol{0, 0}: White,
			RowCol{0, 1}: Black,
			RowCol{0, 2}: Black,
			RowCol{0, 3}: Black,
		})

		score, err := g.ScoreEarnedByPlacing(white, RowCol{0, 4})
		require.NoError(t, err)
		require.Equal(t, 3, score)
	})

	t.Run("fails once the game is over", func(t *testing.T) {
		g, white, black := newHexGame(t, 3)
		require.NoError(t, g.Pass(white))
		require.NoError(t, g.Pass(black))

		_, err := g.ScoreEarnedByPlacing(white, Cube{-1, -1})
		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestPlaceIn(t *testing.T) {
	t.Run("captures and advances the turn", func(t *testing.T) {
		g, white, black := newHexGame(t, 3)

		require.NoError(t, g.PlaceIn(white, Cube{1, -2}))

		require.Equal(t, 5, g.Score(white))
		require.Equal(t, 2, g.Score(black))
		cell, err := g.Cell(Cube{0, -1})
		require.NoError(t, err)
		disc, _ := cell.Disc()
		require.Equal(t, White, disc, "Captured disc should be flipped")
		turn, _ := g.Turn()
		require.Same(t, black, turn)
		require.Equal(t, 1, g.Round())
	})

	t.Run("flips every scoring ray and stops at the closing disc", func(t *testing.T) {
		g, white, black := newSquareGame(t, 6)
		arrange(t, g, map[Coordinates]Disc{
			RowCol{2, 0}: White, RowCol{2, 1}: Black, // left ray
			RowCol{0, 2}: White, RowCol{1, 2}: Black, // upper ray
			RowCol{4, 4}: White, RowCol{3, 3}: Black, // lower-right ray
			RowCol{2, 3}: Black, RowCol{2, 4}: Black, // right ray left open
		})

		require.NoError(t, g.PlaceIn(white, RowCol{2, 2}))

		require.Equal(t, 7, g.Score(white))
		require.Equal(t, 2, g.Score(black))
		for _, c := range []Coordinates{RowCol{2, 3}, RowCol{2, 4}} {
			cell, _ := g.Cell(c)
			disc, _ := cell.Disc()
			require.Equal(t, Black, disc, "Open run at %s should not flip", c)
		}
	})

	t.Run("rejects wrong turn and illegal placements", func(t *testing.T) {
		g, white, black := newHexGame(t, 3)

		require.ErrorIs(t, g.PlaceIn(black, Cube{-1, -1}), ErrWrongTurn)
		require.ErrorIs(t, g.PlaceIn(newTestPlayer("stranger"), Cube{-1, -1}), ErrWrongTurn)
		require.ErrorIs(t, g.PlaceIn(white, Cube{0, 0}), ErrIllegalMove)
		require.ErrorIs(t, g.PlaceIn(white, Cube{1, -1}), ErrIllegalMove)
		require.ErrorIs(t, g.PlaceIn(white, Cube{4, 4}), ErrIllegalMove)
		require.Equal(t, 0, g.Round(), "Failed moves should not change the game")
		require.Equal(t, 3, g.Score(white))
	})

	t.Run("resets the pass streak", func(t *testing.T) {
		g, white, black := newHexGame(t, 3)
		require.NoError(t, g.Pass(white))
		require.NoError(t, g.PlaceIn(black, Cube{1, -2}))
		require.NoError(t, g.Pass(white))

		require.False(t, g.IsGameOver(), "A move between passes breaks the streak")
	})
}

func TestPass(t *testing.T) {
	t.Run("two passes in a row end the game", func(t *testing.T) {
		g, white, black := newHexGame(t, 3)

		require.NoError(t, g.Pass(white))
		require.False(t, g.IsGameOver())
		require.NoError(t, g.Pass(black))
		require.True(t, g.IsGameOver())

		_, err := g.Turn()
		require.ErrorIs(t, err, ErrGameOver)
		require.ErrorIs(t, g.Pass(white), ErrGameOver)
		require.ErrorIs(t, g.PlaceIn(white, Cube{-1, -1}), ErrGameOver)
		_, err = g.Movable(white)
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("wrong turn", func(t *testing.T) {
		g, _, black := newHexGame(t, 3)

		require.ErrorIs(t, g.Pass(black), ErrWrongTurn)
	})
}

func TestMovable(t *testing.T) {
	t.Run("initial position", func(t *testing.T) {
		g, white, black := newHexGame(t, 3)

		movable, err := g.Movable(white)
		require.NoError(t, err)
		require.True(t, movable)
		movable, err = g.Movable(black)
		require.NoError(t, err)
		require.False(t, movable, "Off turn player cannot move")
	})

	t.Run("player without captures", func(t *testing.T) {
		g, white, _ := newSquareGame(t, 4)
		arrange(t, g, map[Coordinates]Disc{
			RowCol{0, 0}: White,
			RowCol{3, 3}: Black,
		})

		movable, err := g.Movable(white)
		require.NoError(t, err)
		require.False(t, movable)
	})
}

func TestWinner(t *testing.T) {
	g, white, black := newSquareGame(t, 4)
	_, ok := g.Winner()
	require.False(t, ok, "No winner while the game runs")

	require.NoError(t, g.PlaceIn(white, RowCol{0, 1}))
	require.NoError(t, g.Pass(black))
	require.NoError(t, g.Pass(white))

	winner, ok := g.Winner()
	require.True(t, ok)
	require.Same(t, white, winner)
}

func TestSnapshots(t *testing.T) {
	t.Run("board copy is isolated", func(t *testing.T) {
		g, white, black := newHexGame(t, 3)

		board := g.Board()
		for i := range board {
			for j := range board[i] {
				if board[i][j].IsEmpty() {
					require.NoError(t, board[i][j].Place(Black))
				} else {
					_ = board[i][j].FlipTo(Black)
				}
			}
		}

		require.Equal(t, 3, g.Score(white))
		require.Equal(t, 3, g.Score(black))
		require.Equal(t, 13, emptyCells(g))
	})

	t.Run("try move leaves the game untouched", func(t *testing.T) {
		g, white, black := newHexGame(t, 3)
		listener := &recorder{}
		g.AddListener(listener)

		tried, err := g.TryMove(white, Cube{1, -2})
		require.NoError(t, err)

		require.Equal(t, 5, tried.Score(white))
		require.Equal(t, 2, tried.Score(black))
		turn, _ := tried.Turn()
		require.Same(t, black, turn)
		require.Equal(t, 3, g.Score(white))
		require.Equal(t, 3, g.Score(black))
		require.Equal(t, 0, g.Round())
		require.Empty(t, listener.events, "Scratch games never notify")
	})

	t.Run("try move fails like place in", func(t *testing.T) {
		g, white, black := newHexGame(t, 3)

		_, err := g.TryMove(black, Cube{-1, -1})
		require.ErrorIs(t, err, ErrWrongTurn)
		_, err = g.TryMove(white, Cube{0, 0})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("cell lookup", func(t *testing.T) {
		g, _, _ := newHexGame(t, 3)

		cell, err := g.Cell(Cube{0, 1})
		require.NoError(t, err)
		disc, err := cell.Disc()
		require.NoError(t, err)
		require.Equal(t, White, disc)

		_, err = g.Cell(Cube{3, 0})
		require.ErrorIs(t, err, ErrInvalidCoordinates)
		_, err = g.Cell(RowCol{0, 0})
		require.ErrorIs(t, err, ErrInvalidCoordinates)
		_, err = g.Cell(nil)
		require.ErrorIs(t, err, ErrInvalidCoordinates)
	})
}

// Random legal playouts check the invariants over many reachable states.
func TestRandomPlayouts(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		side int
	}{
		{"hex 3", Hex, 3},
		{"hex 5", Hex, 5},
		{"square 4", Square, 4},
		{"square 8", Square, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for seed := uint64(1); seed <= 5; seed++ {
				r := rand.New(rand.NewSource(seed))
				white, black := newTestPlayer("white"), newTestPlayer("black")
				g, err := Create(tc.kind, tc.side, white, black)
				require.NoError(t, err)
				total := countCells(tc.kind.Topology().Layout(tc.side))

				for !g.IsGameOver() {
					player, err := g.Turn()
					require.NoError(t, err)
					moves := legalMoves(t, g, player)
					movable, err := g.Movable(player)
					require.NoError(t, err)
					require.Equal(t, len(moves) > 0, movable, "Movable should agree with the legal set")

					if len(moves) == 0 {
						require.NoError(t, g.Pass(player))
					} else {
						before := g.Score(player)
						move := moves[r.Intn(len(moves))]
						score, err := g.ScoreEarnedByPlacing(player, move)
						require.NoError(t, err)
						require.NoError(t, g.PlaceIn(player, move))
						require.Equal(t, before+score+1, g.Score(player))
					}
					require.Equal(t, total, g.Score(white)+g.Score(black)+emptyCells(g))
					require.Less(t, g.Round(), 2*total+4)
				}
			}
		})
	}
}
