package metrics

import (
	"time"
)

const PassMove = "pass"

type MoveMetric struct {
	Step     int
	Player   string
	Move     string // Coordinates of the placement, or PassMove
	Captured int
	Duration time.Duration // Time the player took to decide
}

type GameMetric struct {
	Topology       string
	Side           int
	StartingPlayer string
	Winner         string // Empty on a tie
	WhiteScore     int
	BlackScore     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector records the moves of one game in the order they are submitted.
type Collector interface {
	StartTurn()
	AddPlacement(player, at string, captured int)
	AddPass(player string)
	Complete() []MoveMetric
}

type collector struct {
	turnStart time.Time
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{moves: []MoveMetric{}}
}

func (c *collector) StartTurn() {
	c.turnStart = time.Now()
}

func (c *collector) AddPlacement(player, at string, captured int) {
	c.add(player, at, captured)
}

func (c *collector) AddPass(player string) {
	c.add(player, PassMove, 0)
}

func (c *collector) add(player, move string, captured int) {
	var duration time.Duration
	if !c.turnStart.IsZero() {
		duration = time.Since(c.turnStart)
	}
	c.moves = append(c.moves, MoveMetric{
		Step:     len(c.moves) + 1,
		Player:   player,
		Move:     move,
		Captured: captured,
		Duration: duration,
	})
	c.turnStart = time.Time{}
}

func (c *collector) Complete() []MoveMetric {
	return c.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) StartTurn()                            {}
func (c *dummyCollector) AddPlacement(player, at string, n int) {}
func (c *dummyCollector) AddPass(player string)                 {}
func (c *dummyCollector) Complete() []MoveMetric                { return []MoveMetric{} }
