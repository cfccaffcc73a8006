package player

import (
	"reversi/game"
	"reversi/strategy"

	"github.com/rs/zerolog/log"
)

// ActionListener receives the moves a player decides on.
type ActionListener interface {
	PlaceIn(coordinates game.Coordinates)
	Pass()
}

// Player takes part in a game and announces its moves to its action listeners.
type Player interface {
	game.Player
	// TurnToMove is called when it is this player's turn
	TurnToMove(model game.ReadOnly)
	AddActionListener(listener ActionListener)
}

type base struct {
	name      string
	listeners []ActionListener
}

func (b *base) Name() string {
	return b.name
}

func (b *base) AddActionListener(listener ActionListener) {
	b.listeners = append(b.listeners, listener)
}

func (b *base) placeIn(coordinates game.Coordinates) {
	for _, listener := range b.listeners {
		listener.PlaceIn(coordinates)
	}
}

func (b *base) pass() {
	for _, listener := range b.listeners {
		listener.Pass()
	}
}

// Human waits for moves to come from outside, e.g. a terminal.
type Human struct {
	base
}

func NewHuman(name string) *Human {
	return &Human{base: base{name: name}}
}

func (h *Human) TurnToMove(game.ReadOnly) {}

func (h *Human) PlaceIn(coordinates game.Coordinates) {
	h.placeIn(coordinates)
}

func (h *Human) Pass() {
	h.pass()
}

// Machine asks its strategy for a move as soon as it is its turn.
type Machine struct {
	base
	strategy strategy.Strategy
}

func NewMachine(name string, s strategy.Strategy) *Machine {
	return &Machine{base: base{name: name}, strategy: s}
}

func (m *Machine) Strategy() strategy.Strategy {
	return m.strategy
}

func (m *Machine) TurnToMove(model game.ReadOnly) {
	move, err := m.strategy.ChooseMove(model, m)
	if err != nil {
		log.Error().Err(err).Str("player", m.name).Msg("no move chosen")
		return
	}
	log.Debug().Str("player", m.name).Str("strategy", m.strategy.Name()).Stringer("move", move).Msg("move chosen")

	if c, ok := move.Coordinates(); ok {
		m.placeIn(c)
		return
	}
	m.pass()
}
