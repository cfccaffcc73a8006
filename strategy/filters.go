package strategy

import (
	"reversi/game"

	"golang.org/x/exp/slices"
)

// Filter narrows a candidate set for the player to move. Filters never add candidates.
type Filter func(model game.ReadOnly, player game.Player, candidates []game.Coordinates) ([]game.Coordinates, error)

// Candidates scans the whole board for the cells where the player would capture something.
func Candidates(model game.ReadOnly, player game.Player) ([]game.Coordinates, error) {
	candidates := []game.Coordinates{}
	for _, row := range model.Board() {
		for _, cell := range row {
			score, err := model.ScoreEarnedByPlacing(player, cell.Coordinates())
			if err != nil {
				return nil, err
			}
			if score > 0 {
				candidates = append(candidates, cell.Coordinates())
			}
		}
	}
	return candidates, nil
}

// CaptureMost keeps the candidates that flip the most discs. Candidates capturing nothing are dropped.
func CaptureMost(model game.ReadOnly, player game.Player, candidates []game.Coordinates) ([]game.Coordinates, error) {
	best := 1
	kept := []game.Coordinates{}
	for _, c := range candidates {
		score, err := model.ScoreEarnedByPlacing(player, c)
		if err != nil {
			return nil, err
		}
		switch {
		case score > best:
			best = score
			kept = []game.Coordinates{c}
		case score == best:
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// GoForCorners keeps the corner candidates if there are any, otherwise all of them.
func GoForCorners(model game.ReadOnly, _ game.Player, candidates []game.Coordinates) ([]game.Coordinates, error) {
	corners := model.Corners()
	kept := []game.Coordinates{}
	for _, c := range candidates {
		if slices.Contains(corners, c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return slices.Clone(candidates), nil
	}
	return kept, nil
}

// AvoidGivingCorners drops the cells next to a corner. Corners themselves always survive.
func AvoidGivingCorners(model game.ReadOnly, _ game.Player, candidates []game.Coordinates) ([]game.Coordinates, error) {
	corners := model.Corners()
	risky := map[game.Coordinates]bool{}
	for _, corner := range corners {
		for _, n := range corner.Neighbors() {
			risky[n] = true
		}
	}

	kept := []game.Coordinates{}
	for _, c := range candidates {
		if !risky[c] || slices.Contains(corners, c) {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// Chain applies the filters in order, each one narrowing the output of the previous.
// A filter that would leave nothing is skipped, so the chain ends on the last non-empty set.
func Chain(filters ...Filter) Filter {
	return func(model game.ReadOnly, player game.Player, candidates []game.Coordinates) ([]game.Coordinates, error) {
		current := candidates
		for _, filter := range filters {
			next, err := filter(model, player, current)
			if err != nil {
				return nil, err
			}
			if len(next) == 0 && len(current) > 0 {
				continue
			}
			current = next
		}
		return current, nil
	}
}
