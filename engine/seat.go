package engine

import (
	"fmt"
	"io"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"
	"reversi/view"

	"github.com/rs/zerolog/log"
)

// Seat connects one player to the game. It listens to the game for turn changes and
// to the player for moves, which it checks before submitting them.
type Seat struct {
	model     Model
	player    player.Player
	collector metrics.Collector
	out       io.Writer
}

// NewSeat registers the seat with both the game and the player.
func NewSeat(model Model, p player.Player, collector metrics.Collector, out io.Writer) *Seat {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	if out == nil {
		out = io.Discard
	}
	s := &Seat{
		model:     model,
		player:    p,
		collector: collector,
		out:       out,
	}
	model.AddListener(s)
	p.AddActionListener(s)
	return s
}

func (s *Seat) Player() player.Player {
	return s.player
}

func (s *Seat) NewTurn(p game.Player) {
	if p != s.player {
		return
	}
	s.announceTurn()
	s.collector.StartTurn()
	s.player.TurnToMove(s.model)
}

func (s *Seat) MustPass(p game.Player) {
	if p != s.player {
		return
	}
	log.Debug().Str("player", s.player.Name()).Msg("must pass")
	s.say("%s must pass!", s.player.Name())
}

func (s *Seat) GameEnds() {
	winner := "nobody"
	if w, ok := s.model.Winner(); ok {
		winner = w.Name()
	}
	s.say("Game ends! Winner: %s", winner)
}

func (s *Seat) PlaceIn(coordinates game.Coordinates) {
	if !s.hasTurn() {
		return
	}
	score, err := s.model.ScoreEarnedByPlacing(s.player, coordinates)
	if err != nil || score == 0 {
		log.Warn().Str("player", s.player.Name()).Stringer("at", coordinates).Msg("illegal move")
		s.say("Illegal move!")
		return
	}

	s.collector.AddPlacement(s.player.Name(), coordinates.String(), score)
	if err := s.model.PlaceIn(s.player, coordinates); err != nil {
		log.Error().Err(err).Str("player", s.player.Name()).Msg("placement rejected")
	}
}

func (s *Seat) Pass() {
	if !s.hasTurn() {
		return
	}
	s.collector.AddPass(s.player.Name())
	if err := s.model.Pass(s.player); err != nil {
		log.Error().Err(err).Str("player", s.player.Name()).Msg("pass rejected")
	}
}

// Select is the hint for a cell: what placing there would capture, 0 once the game is over.
func (s *Seat) Select(coordinates game.Coordinates) int {
	score, err := s.model.ScoreEarnedByPlacing(s.player, coordinates)
	if err != nil {
		return 0
	}
	return score
}

func (s *Seat) hasTurn() bool {
	turn, err := s.model.Turn()
	if err != nil {
		s.say("Game is over!")
		return false
	}
	if turn != s.player {
		log.Warn().Str("player", s.player.Name()).Msg("move out of turn")
		s.say("You can't move now!")
		return false
	}
	return true
}

func (s *Seat) announceTurn() {
	if err := view.Render(s.out, s.model); err != nil {
		log.Error().Err(err).Msg("failed to render board")
	}
	disc, err := s.model.DiscOf(s.player)
	if err != nil {
		return
	}
	s.say("%s plays %s. Your turn!", s.player.Name(), disc)
}

func (s *Seat) say(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}
