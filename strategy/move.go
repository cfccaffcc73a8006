package strategy

import "reversi/game"

// Move is the outcome of a strategy: a placement, or a pass when nothing was chosen.
type Move struct {
	coordinates game.Coordinates
}

// NoMove is the pass.
var NoMove = Move{}

func Place(coordinates game.Coordinates) Move {
	return Move{coordinates: coordinates}
}

func (m Move) IsPass() bool {
	return m.coordinates == nil
}

// Coordinates returns the placement, and false for a pass.
func (m Move) Coordinates() (game.Coordinates, bool) {
	return m.coordinates, m.coordinates != nil
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return m.coordinates.String()
}
