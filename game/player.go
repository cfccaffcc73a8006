package game

// Player identifies one of the two participants of a game.
// Players are compared by identity, so implementations should be pointers.
type Player interface {
	Name() string
}

// Listener is notified by a live game whenever the turn changes or the game ends.
// Handlers run on the call stack of the move that triggered them and may call back
// into PlaceIn or Pass.
type Listener interface {
	// NewTurn tells that it is now the given player's turn
	NewTurn(player Player)
	// MustPass tells that the given player has no legal move and has to pass
	MustPass(player Player)
	// GameEnds tells that both players passed in a row
	GameEnds()
}

// ReadOnly is the view of a game handed to players, strategies and renderers.
type ReadOnly interface {
	Topology() Topology
	SideLength() int
	// Board returns a deep copy of the cell grid, top row first
	Board() [][]Cell
	Cell(coordinates Coordinates) (Cell, error)
	Corners() []Coordinates
	Players() []Player
	DiscOf(player Player) (Disc, error)
	Round() int
	ScoreEarnedByPlacing(player Player, coordinates Coordinates) (int, error)
	Movable(player Player) (bool, error)
	Score(player Player) int
	IsGameOver() bool
	Turn() (Player, error)
	Winner() (Player, bool)
	// TryMove plays a move on a disposable copy of the game and returns the copy
	TryMove(player Player, coordinates Coordinates) (ReadOnly, error)
}

func nameOf(player Player) string {
	if player == nil {
		return "<nil>"
	}
	return player.Name()
}
