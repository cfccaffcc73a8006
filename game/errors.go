package game

import "errors"

var (
	// ErrGameOver occurs when a move, a pass or a turn query is made after the game ended
	ErrGameOver = errors.New("the game is over")
	// ErrWrongTurn occurs when a player acts while it is the other player's turn
	ErrWrongTurn = errors.New("not this player's turn")
	// ErrIllegalMove occurs when a placement would capture nothing
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidCoordinates occurs when coordinates are not on the board
	ErrInvalidCoordinates = errors.New("coordinates are not on the board")
	// ErrEmptyCell occurs when reading or flipping the disc of an empty cell
	ErrEmptyCell = errors.New("no disc on cell")
	// ErrOccupiedCell occurs when placing a disc on an occupied cell
	ErrOccupiedCell = errors.New("cell is already occupied")
	// ErrNoOpFlip occurs when flipping a disc to the colour it already has
	ErrNoOpFlip = errors.New("disc already has this colour")
	// ErrUnknownPlayer occurs when a player is not one of the two players of the game
	ErrUnknownPlayer = errors.New("player is not involved in this game")
	// ErrBoardSize occurs when a topology cannot build a board of the requested side length
	ErrBoardSize = errors.New("board size is not supported by the topology")
)
