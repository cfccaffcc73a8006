package experiments

import (
	"fmt"
	"strings"

	"reversi/config"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Standing is the tally of one player kind over a tournament.
type Standing struct {
	Kind   string
	Wins   int
	Losses int
	Draws  int
}

type Result struct {
	Dir       string // Folder holding games.csv and moves.csv
	Standings []Standing
}

type matchUp struct {
	white, black player.Kind
}

// RunTournament plays every pair of configured kinds against each other in both seatings
// and stores the records under the configured output directory.
func RunTournament(cfg config.TournamentConfig) (*Result, error) {
	kinds := []player.Kind{}
	for _, name := range cfg.Players {
		kind, ok := player.ParseKind(name)
		if !ok || kind == player.HumanKind {
			return nil, fmt.Errorf("tournament player %q is not a machine", name)
		}
		kinds = append(kinds, kind)
	}
	topology, _ := game.ParseKind(cfg.Topology)

	matchUps := []matchUp{}
	for i := range kinds {
		for j := i + 1; j < len(kinds); j++ {
			matchUps = append(matchUps, matchUp{kinds[i], kinds[j]}, matchUp{kinds[j], kinds[i]})
		}
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	standings := map[string]*Standing{}
	for _, kind := range kinds {
		standings[kind.String()] = &Standing{Kind: kind.String()}
	}

	log.Info().Msgf("starting tournament between %v on a %s board...", cfg.Players, topology)

	for mi, m := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between white=%s and black=%s...", mi+1, len(matchUps), m.white, m.black)

		for i := 0; i < cfg.Games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(m, topology, cfg.Size)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Player1:    m.white.String(),
				Player2:    m.black.String(),
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			tally(standings, m, winner)

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}

	writer, err := metrics.NewWriter(cfg.OutDir, "tournament")
	if err != nil {
		return nil, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, err
	}
	log.Info().Msg("stored move records")

	result := &Result{Dir: writer.Dir()}
	for _, s := range standings {
		result.Standings = append(result.Standings, *s)
	}
	slices.SortFunc(result.Standings, func(a, b Standing) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		return strings.Compare(a.Kind, b.Kind)
	})
	return result, nil
}

// runGame plays one game between two machines. Players are named after their kind.
func runGame(m matchUp, topology game.Kind, size int) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	white, black := m.white.String(), m.black.String()
	if white == black {
		white, black = white+"-white", black+"-black"
	}
	players := []player.Player{player.New(m.white, white), player.New(m.black, black)}

	eng, err := engine.LocalEngine(topology, size, players, nil)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	return eng.Run()
}

func tally(standings map[string]*Standing, m matchUp, winner string) {
	white, black := standings[m.white.String()], standings[m.black.String()]
	switch winner {
	case "":
		white.Draws++
		black.Draws++
	case m.white.String(), m.white.String() + "-white":
		white.Wins++
		black.Losses++
	default:
		black.Wins++
		white.Losses++
	}
}
