package game

import (
	"fmt"

	"reversi/utils"
)

// Coordinates locate a cell on a board of some topology.
// Implementations are comparable values, so they can be compared with == and used as map keys.
type Coordinates interface {
	// Neighbors returns the adjacent coordinates in a fixed direction order.
	// The order is shared by capture scoring and flipping, so both walk the same rays.
	Neighbors() []Coordinates
	// InBounds reports whether the coordinates lie on a board with the given side length
	InBounds(side int) bool
	// RowIndex is the index of the board row holding these coordinates
	RowIndex(side int) int
	// ColumnIndex is the index of these coordinates inside their row
	ColumnIndex(side int) int
	String() string
}

// Cube is a hexagonal cube coordinate. S is derived so that q + r + s = 0 always holds.
type Cube struct {
	Q int
	R int
}

func (c Cube) S() int {
	return -c.Q - c.R
}

// Neighbors in order: upper-left, upper-right, left, right, lower-left, lower-right.
func (c Cube) Neighbors() []Coordinates {
	return []Coordinates{
		Cube{c.Q, c.R - 1},
		Cube{c.Q + 1, c.R - 1},
		Cube{c.Q - 1, c.R},
		Cube{c.Q + 1, c.R},
		Cube{c.Q - 1, c.R + 1},
		Cube{c.Q, c.R + 1},
	}
}

func (c Cube) InBounds(side int) bool {
	limit := side - 1
	return utils.InRange(c.Q, -limit, limit) &&
		utils.InRange(c.R, -limit, limit) &&
		utils.InRange(c.S(), -limit, limit)
}

func (c Cube) RowIndex(side int) int {
	return c.R + side - 1
}

func (c Cube) ColumnIndex(side int) int {
	// Rows above the middle start further right in q
	if c.R < 0 {
		return c.Q + side - 1 + c.R
	}
	return c.Q + side - 1
}

func (c Cube) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.Q, c.R, c.S())
}

// RowCol is a square-board coordinate, zero-based from the top-left corner.
type RowCol struct {
	Row int
	Col int
}

// Neighbors in order: above, below, left, right, upper-left, lower-left, upper-right, lower-right.
func (rc RowCol) Neighbors() []Coordinates {
	return []Coordinates{
		RowCol{rc.Row - 1, rc.Col},
		RowCol{rc.Row + 1, rc.Col},
		RowCol{rc.Row, rc.Col - 1},
		RowCol{rc.Row, rc.Col + 1},
		RowCol{rc.Row - 1, rc.Col - 1},
		RowCol{rc.Row + 1, rc.Col - 1},
		RowCol{rc.Row - 1, rc.Col + 1},
		RowCol{rc.Row + 1, rc.Col + 1},
	}
}

func (rc RowCol) InBounds(side int) bool {
	return utils.InRange(rc.Row, 0, side-1) && utils.InRange(rc.Col, 0, side-1)
}

func (rc RowCol) RowIndex(side int) int {
	return rc.Row
}

func (rc RowCol) ColumnIndex(side int) int {
	return rc.Col
}

func (rc RowCol) String() string {
	return fmt.Sprintf("(%d, %d)", rc.Row, rc.Col)
}
