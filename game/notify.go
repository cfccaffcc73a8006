package game

import "github.com/rs/zerolog/log"

// advanceTurn tells the listeners whose turn it is now.
// A player that cannot move is announced with MustPass first. Listeners may move or pass
// from inside their handler; once the round has moved on, the NewTurn announcement for the
// old round is stale and is not delivered to the remaining listeners.
func (g *Reversi) advanceTurn() {
	if !g.live || g.IsGameOver() {
		return
	}
	player := g.current()
	round := g.round

	movable, err := g.Movable(player)
	if err != nil {
		return
	}
	if !movable {
		log.Debug().Str("player", player.Name()).Int("round", round).Msg("player must pass")
		for _, listener := range g.listeners {
			if g.IsGameOver() {
				break
			}
			listener.MustPass(player)
		}
	}

	for _, listener := range g.listeners {
		if g.round != round {
			return
		}
		listener.NewTurn(player)
	}
}

func (g *Reversi) notifyGameEnds() {
	if !g.live {
		return
	}
	log.Debug().
		Int("round", g.round).
		Int(g.players[0].Name(), g.Score(g.players[0])).
		Int(g.players[1].Name(), g.Score(g.players[1])).
		Msg("game ended")
	for _, listener := range g.listeners {
		listener.GameEnds()
	}
}
