package player

import (
	"strings"

	"reversi/strategy"
)

type Kind int

const (
	HumanKind Kind = iota
	SimplisticKind
	SmarterKind
	MinimaxKind
)

var kindNames = map[Kind]string{
	HumanKind:      "human",
	SimplisticKind: "simplistic",
	SmarterKind:    "smarter",
	MinimaxKind:    "minimax",
}

func (k Kind) String() string {
	return kindNames[k]
}

// ParseKind reads a player kind case-insensitively. Unknown names give a human and false.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, known := range kindNames {
		if known == name {
			return kind, true
		}
	}
	return HumanKind, false
}

// New creates a player of the given kind.
func New(kind Kind, name string) Player {
	switch kind {
	case SimplisticKind:
		return NewMachine(name, strategy.Simplistic)
	case SmarterKind:
		return NewMachine(name, strategy.Smarter)
	case MinimaxKind:
		return NewMachine(name, strategy.MinimaxStrategy)
	default:
		return NewHuman(name)
	}
}
