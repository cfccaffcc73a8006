package game

import (
	"strings"

	"reversi/meta"
)

// Kind selects one of the supported board topologies.
type Kind int

const (
	Hex Kind = iota
	Square
)

func (k Kind) String() string {
	return k.Topology().Name()
}

func (k Kind) Topology() Topology {
	if k == Square {
		return SquareTopology{}
	}
	return HexTopology{}
}

// ParseKind reads a topology name, case-insensitively.
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hex", "hexagon", "hexagonal":
		return Hex, true
	case "square":
		return Square, true
	default:
		return Hex, false
	}
}

// CorrectSize returns side if the topology of this kind supports it, or the default size otherwise.
func (k Kind) CorrectSize(side int) int {
	if k.Topology().ValidSize(side) {
		return side
	}
	return meta.DEFAULT_BOARD_SIZE
}

// Create builds a ready-to-play game. A board size the topology cannot build is replaced by the default.
func Create(kind Kind, side int, player1, player2 Player) (*Reversi, error) {
	return New(kind.Topology(), kind.CorrectSize(side), player1, player2)
}
