package strategy

import "reversi/game"

// Strategy decides a move for the player whose turn it is.
type Strategy interface {
	Name() string
	ChooseMove(model game.ReadOnly, player game.Player) (Move, error)
}

var (
	Simplistic      Strategy = New("simplistic", CaptureMost)
	Smarter         Strategy = New("smarter", GoForCorners, AvoidGivingCorners, CaptureMost)
	MinimaxStrategy Strategy = New("minimax", Minimax)
)

type chained struct {
	name   string
	filter Filter
}

// New builds a strategy that chains the filters over every legal move and selects the upper-left survivor.
func New(name string, filters ...Filter) Strategy {
	return &chained{name: name, filter: Chain(filters...)}
}

func (s *chained) Name() string {
	return s.name
}

func (s *chained) ChooseMove(model game.ReadOnly, player game.Player) (Move, error) {
	candidates, err := Candidates(model, player)
	if err != nil {
		return NoMove, err
	}
	chosen, err := s.filter(model, player, candidates)
	if err != nil {
		return NoMove, err
	}
	return Select(chosen, model.SideLength()), nil
}
