package game

import (
	"fmt"

	"reversi/meta"
	"reversi/utils"

	"github.com/rs/zerolog/log"
)

// Reversi is the state of one game on a board of a given topology.
// It is mutated only through PlaceIn and Pass.
type Reversi struct {
	topology Topology
	side     int
	board    [][]Cell // Row by row, top row first
	// players and discs are index-aligned and fixed at construction
	players   []Player
	discs     []Disc
	round     int // round % len(players) is the index of the player to move
	passes    int // Consecutive passes; the game is over when it reaches len(players)
	listeners []Listener
	live      bool // False for copies made by TryMove, which never notify
}

// New creates a game with the seed discs placed. player1 plays White and moves first.
func New(topology Topology, side int, player1, player2 Player) (*Reversi, error) {
	if !topology.ValidSize(side) {
		return nil, fmt.Errorf("%w: %s board with side %d", ErrBoardSize, topology.Name(), side)
	}
	if player1 == nil || player2 == nil {
		return nil, fmt.Errorf("%w: nil player", ErrUnknownPlayer)
	}
	if player1 == player2 {
		return nil, fmt.Errorf("%w: %s cannot play against itself", ErrUnknownPlayer, player1.Name())
	}

	g := &Reversi{
		topology:  topology,
		side:      side,
		players:   []Player{player1, player2},
		discs:     []Disc{White, Black},
		listeners: []Listener{},
		live:      true,
	}
	for _, row := range topology.Layout(side) {
		cells := make([]Cell, len(row))
		for i, coordinates := range row {
			cells[i] = NewCell(coordinates)
		}
		g.board = append(g.board, cells)
	}
	for coordinates, disc := range topology.Seeds(side) {
		cell, err := g.cellAt(coordinates)
		if err != nil {
			return nil, err
		}
		if err := cell.Place(disc); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Reversi) Topology() Topology {
	return g.topology
}

func (g *Reversi) SideLength() int {
	return g.side
}

func (g *Reversi) Board() [][]Cell {
	return copyBoard(g.board)
}

func (g *Reversi) Cell(coordinates Coordinates) (Cell, error) {
	cell, err := g.cellAt(coordinates)
	if err != nil {
		return Cell{}, err
	}
	return cell.Copy(), nil
}

func (g *Reversi) Corners() []Coordinates {
	return g.topology.Corners(g.side)
}

func (g *Reversi) Players() []Player {
	players := make([]Player, len(g.players))
	copy(players, g.players)
	return players
}

func (g *Reversi) DiscOf(player Player) (Disc, error) {
	i := utils.FindIndex(g.players, player)
	if i < 0 {
		return NoDisc, fmt.Errorf("%w: %s", ErrUnknownPlayer, nameOf(player))
	}
	return g.discs[i], nil
}

func (g *Reversi) Round() int {
	return g.round
}

// AddListener registers a listener. Listeners are notified in registration order.
func (g *Reversi) AddListener(listener Listener) {
	g.listeners = append(g.listeners, listener)
}

// Start announces the first turn to the listeners.
func (g *Reversi) Start() {
	if g.IsGameOver() {
		return
	}
	log.Debug().Str("topology", g.topology.Name()).Int("side", g.side).Msg("game started")
	g.advanceTurn()
}

func (g *Reversi) IsGameOver() bool {
	return g.passes == meta.NUM_PLAYERS
}

func (g *Reversi) Turn() (Player, error) {
	if g.IsGameOver() {
		return nil, ErrGameOver
	}
	return g.current(), nil
}

func (g *Reversi) Score(player Player) int {
	disc, err := g.DiscOf(player)
	if err != nil {
		return 0
	}
	score := 0
	for _, row := range g.board {
		for _, cell := range row {
			if cell.disc == disc {
				score++
			}
		}
	}
	return score
}

// Winner returns the player with more discs once the game is over. A draw has no winner.
func (g *Reversi) Winner() (Player, bool) {
	if !g.IsGameOver() {
		return nil, false
	}
	first, second := g.Score(g.players[0]), g.Score(g.players[1])
	switch {
	case first > second:
		return g.players[0], true
	case second > first:
		return g.players[1], true
	default:
		return nil, false
	}
}

// ScoreEarnedByPlacing counts the opponent discs a placement would capture.
// Zero means the placement is not legal for the player right now.
func (g *Reversi) ScoreEarnedByPlacing(player Player, coordinates Coordinates) (int, error) {
	if g.IsGameOver() {
		return 0, ErrGameOver
	}
	if player == nil || g.current() != player {
		return 0, nil
	}
	cell, err := g.cellAt(coordinates)
	if err != nil || !cell.IsEmpty() {
		return 0, nil
	}
	disc := g.discs[g.round%len(g.players)]
	score := 0
	for direction := range coordinates.Neighbors() {
		score += g.captureAlong(coordinates, direction, disc)
	}
	return score, nil
}

// Movable reports whether the player to move has at least one legal placement.
// Only cells touching an opponent disc can capture anything, so only those are tried.
func (g *Reversi) Movable(player Player) (bool, error) {
	if g.IsGameOver() {
		return false, ErrGameOver
	}
	if player == nil || g.current() != player {
		return false, nil
	}
	disc := g.discs[g.round%len(g.players)]
	tried := map[Coordinates]bool{}
	for _, row := range g.board {
		for _, cell := range row {
			if cell.IsEmpty() || cell.disc == disc {
				continue
			}
			for _, neighbor := range cell.coordinates.Neighbors() {
				if tried[neighbor] {
					continue
				}
				tried[neighbor] = true
				score, err := g.ScoreEarnedByPlacing(player, neighbor)
				if err != nil {
					return false, err
				}
				if score > 0 {
					return true, nil
				}
			}
		}
	}
	return false, nil
}

// PlaceIn puts the player's disc at the coordinates and flips every captured disc.
func (g *Reversi) PlaceIn(player Player, coordinates Coordinates) error {
	if err := g.checkTurn(player); err != nil {
		return err
	}
	score, err := g.ScoreEarnedByPlacing(player, coordinates)
	if err != nil {
		return err
	}
	if score == 0 {
		return fmt.Errorf("%w: %s cannot place at %s", ErrIllegalMove, player.Name(), coordinates)
	}

	disc := g.discs[g.round%len(g.players)]
	cell, err := g.cellAt(coordinates)
	if err != nil {
		return err
	}
	if err := cell.Place(disc); err != nil {
		return err
	}
	for direction := range coordinates.Neighbors() {
		if g.captureAlong(coordinates, direction, disc) > 0 {
			g.flipAlong(coordinates, direction, disc)
		}
	}
	g.passes = 0
	g.round++

	if g.live {
		log.Debug().
			Str("player", player.Name()).
			Stringer("at", coordinates).
			Int("captured", score).
			Int("round", g.round).
			Msg("disc placed")
	}
	g.advanceTurn()
	return nil
}

// Pass gives the turn away. Two passes in a row end the game.
func (g *Reversi) Pass(player Player) error {
	if err := g.checkTurn(player); err != nil {
		return err
	}
	g.passes++
	g.round++

	if g.live {
		log.Debug().Str("player", player.Name()).Int("round", g.round).Msg("turn passed")
	}
	if g.IsGameOver() {
		g.notifyGameEnds()
		return nil
	}
	g.advanceTurn()
	return nil
}

func (g *Reversi) TryMove(player Player, coordinates Coordinates) (ReadOnly, error) {
	scratch := g.clone()
	if err := scratch.PlaceIn(player, coordinates); err != nil {
		return nil, err
	}
	return scratch, nil
}

func (g *Reversi) checkTurn(player Player) error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	if player == nil || g.current() != player {
		return fmt.Errorf("%w: %s", ErrWrongTurn, nameOf(player))
	}
	return nil
}

func (g *Reversi) current() Player {
	return g.players[g.round%len(g.players)]
}

func (g *Reversi) cellAt(coordinates Coordinates) (*Cell, error) {
	if coordinates == nil || !coordinates.InBounds(g.side) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCoordinates, coordinates)
	}
	row, col := coordinates.RowIndex(g.side), coordinates.ColumnIndex(g.side)
	if !utils.InRange(row, 0, len(g.board)-1) || !utils.InRange(col, 0, len(g.board[row])-1) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCoordinates, coordinates)
	}
	cell := &g.board[row][col]
	// Coordinates of another topology can land on a valid index
	if cell.coordinates != coordinates {
		return nil, fmt.Errorf("%w: %s is not on a %s board", ErrInvalidCoordinates, coordinates, g.topology.Name())
	}
	return cell, nil
}

// captureAlong walks away from the coordinates in one direction and counts the run of
// opponent discs closed by a disc of the given colour. An open run captures nothing.
func (g *Reversi) captureAlong(from Coordinates, direction int, disc Disc) int {
	count := 0
	next := from
	for {
		next = next.Neighbors()[direction]
		cell, err := g.cellAt(next)
		if err != nil || cell.IsEmpty() {
			return 0
		}
		if cell.disc == disc {
			return count
		}
		count++
	}
}

// flipAlong flips the run counted by captureAlong, stopping at the closing disc.
func (g *Reversi) flipAlong(from Coordinates, direction int, disc Disc) {
	next := from
	for {
		next = next.Neighbors()[direction]
		cell, err := g.cellAt(next)
		if err != nil || cell.IsEmpty() {
			panic(fmt.Sprintf("flipping an open run from %s", from))
		}
		if cell.disc == disc {
			return
		}
		if err := cell.FlipTo(disc); err != nil {
			panic(err)
		}
	}
}

// clone makes a scratch copy that shares no mutable state and never notifies.
func (g *Reversi) clone() *Reversi {
	players := make([]Player, len(g.players))
	copy(players, g.players)
	discs := make([]Disc, len(g.discs))
	copy(discs, g.discs)
	return &Reversi{
		topology:  g.topology,
		side:      g.side,
		board:     copyBoard(g.board),
		players:   players,
		discs:     discs,
		round:     g.round,
		passes:    g.passes,
		listeners: nil,
		live:      false,
	}
}

func copyBoard(board [][]Cell) [][]Cell {
	boardCopy := make([][]Cell, len(board))
	for i, row := range board {
		rowCopy := make([]Cell, len(row))
		copy(rowCopy, row)
		boardCopy[i] = rowCopy
	}
	return boardCopy
}
