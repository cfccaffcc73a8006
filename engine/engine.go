package engine

import (
	"errors"

	"reversi/experiments/metrics"
	"reversi/game"
)

var ErrAwaitingHuman = errors.New("game is waiting for a human move")

// Model is the game as the engine drives it.
type Model interface {
	game.ReadOnly
	AddListener(listener game.Listener)
	Start()
	PlaceIn(player game.Player, coordinates game.Coordinates) error
	Pass(player game.Player) error
}

type Runner interface {
	// Run plays a game between machine players until it is over
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
