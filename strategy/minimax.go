package strategy

import (
	"errors"
	"math"

	"reversi/game"
)

// Minimax looks one move ahead and keeps the candidates after which the opponent's best
// reply captures the least. The opponent is assumed to play CaptureMost.
func Minimax(model game.ReadOnly, player game.Player, candidates []game.Coordinates) ([]game.Coordinates, error) {
	lowest := math.MaxInt
	kept := []game.Coordinates{}
	for _, c := range candidates {
		next, err := model.TryMove(player, c)
		if errors.Is(err, game.ErrIllegalMove) {
			continue
		}
		if err != nil {
			return nil, err
		}

		reply, err := bestReply(next)
		if err != nil {
			return nil, err
		}
		switch {
		case reply < lowest:
			lowest = reply
			kept = []game.Coordinates{c}
		case reply == lowest:
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// bestReply is what the player to move can capture at most, 0 when it cannot move or the game is over.
func bestReply(model game.ReadOnly) (int, error) {
	if model.IsGameOver() {
		return 0, nil
	}
	opponent, err := model.Turn()
	if err != nil {
		return 0, err
	}
	candidates, err := Candidates(model, opponent)
	if err != nil {
		return 0, err
	}
	best, err := CaptureMost(model, opponent, candidates)
	if err != nil {
		return 0, err
	}
	if len(best) == 0 {
		return 0, nil
	}
	return model.ScoreEarnedByPlacing(opponent, best[0])
}
