package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/player"

	"github.com/rs/zerolog/log"
)

var ErrAborted = errors.New("game stopped before it was over")

var _ Runner = (*Engine)(nil)

const usage = "moves: <x> <y> places a disc (q r on hex, row col on square), pass, hint <x> <y>, quit"

type Engine struct {
	model     *game.Reversi
	seats     []*Seat
	collector metrics.Collector
	out       io.Writer
}

// LocalEngine seats the players at a new game. The first player plays White and starts.
func LocalEngine(kind game.Kind, side int, players []player.Player, out io.Writer) (*Engine, error) {
	if len(players) != meta.NUM_PLAYERS {
		return nil, fmt.Errorf("need %d players, got %d", meta.NUM_PLAYERS, len(players))
	}
	if out == nil {
		out = io.Discard
	}

	model, err := game.Create(kind, side, players[0], players[1])
	if err != nil {
		return nil, err
	}

	eng := &Engine{
		model:     model,
		collector: metrics.NewCollector(),
		out:       out,
	}
	for _, p := range players {
		eng.seats = append(eng.seats, NewSeat(model, p, eng.collector, out))
	}
	return eng, nil
}

func (e *Engine) Model() game.ReadOnly {
	return e.model
}

// Run starts the game and lets the machine players play it out.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	e.logStart()

	e.model.Start()

	if !e.model.IsGameOver() {
		return "", metrics.GameMetric{}, nil, ErrAwaitingHuman
	}
	winner, gameMetric, moveMetrics := e.finish(start)
	return winner, gameMetric, moveMetrics, nil
}

// Play starts the game and reads the moves of human players from in, one per line.
func (e *Engine) Play(in io.Reader) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	e.logStart()
	fmt.Fprintln(e.out, usage)

	e.model.Start()

	scanner := bufio.NewScanner(in)
	for !e.model.IsGameOver() && e.model.Round() < meta.MAX_ROUNDS {
		turn, err := e.model.Turn()
		if err != nil {
			break
		}
		human, ok := turn.(*player.Human)
		if !ok {
			return "", metrics.GameMetric{}, nil, fmt.Errorf("%w: %s did not move", ErrAborted, turn.Name())
		}

		fmt.Fprintf(e.out, "%s> ", human.Name())
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", metrics.GameMetric{}, nil, fmt.Errorf("failed to read moves: %w", err)
			}
			return "", metrics.GameMetric{}, nil, ErrAborted
		}
		if quit := e.handle(human, scanner.Text()); quit {
			return "", metrics.GameMetric{}, nil, ErrAborted
		}
	}

	if !e.model.IsGameOver() {
		return "", metrics.GameMetric{}, nil, ErrAborted
	}
	winner, gameMetric, moveMetrics := e.finish(start)
	return winner, gameMetric, moveMetrics, nil
}

// handle applies one line of input for the human to move and reports whether to quit.
func (e *Engine) handle(human *player.Human, line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		fmt.Fprintln(e.out, usage)
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true
	case "pass":
		human.Pass()
	case "hint":
		c, err := e.coordinates(fields[1:])
		if err != nil {
			fmt.Fprintln(e.out, usage)
			return false
		}
		fmt.Fprintf(e.out, "%s would capture %d\n", c, e.seatOf(human).Select(c))
	default:
		c, err := e.coordinates(fields)
		if err != nil {
			fmt.Fprintln(e.out, usage)
			return false
		}
		human.PlaceIn(c)
	}
	return false
}

func (e *Engine) coordinates(fields []string) (game.Coordinates, error) {
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: expected two numbers", game.ErrInvalidCoordinates)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", game.ErrInvalidCoordinates, fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", game.ErrInvalidCoordinates, fields[1])
	}
	return e.model.Topology().At(x, y), nil
}

func (e *Engine) seatOf(p player.Player) *Seat {
	for _, seat := range e.seats {
		if seat.Player() == p {
			return seat
		}
	}
	panic("player has no seat")
}

func (e *Engine) logStart() {
	log.Info().Msgf("%s is starting on a %s board of side %d", e.model.Players()[0].Name(), e.model.Topology().Name(), e.model.SideLength())
}

func (e *Engine) finish(start time.Time) (string, metrics.GameMetric, []metrics.MoveMetric) {
	end := time.Now()
	players := e.model.Players()
	winner := ""
	if w, ok := e.model.Winner(); ok {
		winner = w.Name()
	}
	moveMetrics := e.collector.Complete()

	gameMetric := metrics.GameMetric{
		Topology:       e.model.Topology().Name(),
		Side:           e.model.SideLength(),
		StartingPlayer: players[0].Name(),
		Winner:         winner,
		WhiteScore:     e.model.Score(players[0]),
		BlackScore:     e.model.Score(players[1]),
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     len(moveMetrics),
	}

	log.Info().Msgf("game over after %d moves with winner: %s", len(moveMetrics), winner)
	return winner, gameMetric, moveMetrics
}
