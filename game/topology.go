package game

import "reversi/meta"

// Topology is the shape and adjacency rule of a board. A single engine is parameterized by it.
type Topology interface {
	Name() string
	// ValidSize reports whether a board with this side length can be built
	ValidSize(side int) bool
	// Layout lists the coordinates of every cell, row by row, top row first and leftmost cell first
	Layout(side int) [][]Coordinates
	// Seeds gives the discs placed before the first move
	Seeds(side int) map[Coordinates]Disc
	// Corners lists the corner coordinates of the board
	Corners(side int) []Coordinates
	// At builds coordinates of this topology from two integers: (q, r) on hex, (row, col) on square
	At(x, y int) Coordinates
}

// HexTopology is a hexagon-shaped board of hexagonal cells addressed by cube coordinates.
type HexTopology struct{}

func (HexTopology) Name() string {
	return "hex"
}

func (HexTopology) ValidSize(side int) bool {
	return side >= meta.MIN_HEX_BOARD_SIZE
}

func (HexTopology) Layout(side int) [][]Coordinates {
	limit := side - 1
	rows := make([][]Coordinates, 0, 2*side-1)
	for r := -limit; r <= limit; r++ {
		row := []Coordinates{}
		for q := -limit; q <= limit; q++ {
			c := Cube{Q: q, R: r}
			if c.InBounds(side) {
				row = append(row, c)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Seeds are the six cells around the centre, alternating colours.
func (HexTopology) Seeds(side int) map[Coordinates]Disc {
	return map[Coordinates]Disc{
		Cube{1, -1}: White,
		Cube{-1, 0}: White,
		Cube{0, 1}:  White,
		Cube{0, -1}: Black,
		Cube{1, 0}:  Black,
		Cube{-1, 1}: Black,
	}
}

// Corners are the ends of the top, middle and bottom rows.
func (HexTopology) Corners(side int) []Coordinates {
	limit := side - 1
	return []Coordinates{
		Cube{0, -limit},
		Cube{limit, -limit},
		Cube{-limit, 0},
		Cube{limit, 0},
		Cube{-limit, limit},
		Cube{0, limit},
	}
}

func (HexTopology) At(q, r int) Coordinates {
	return Cube{Q: q, R: r}
}

// SquareTopology is the classic square board with an even side length.
type SquareTopology struct{}

func (SquareTopology) Name() string {
	return "square"
}

func (SquareTopology) ValidSize(side int) bool {
	return side > 2 && side%2 == 0
}

func (SquareTopology) Layout(side int) [][]Coordinates {
	rows := make([][]Coordinates, side)
	for row := range rows {
		rows[row] = make([]Coordinates, side)
		for col := range rows[row] {
			rows[row][col] = RowCol{Row: row, Col: col}
		}
	}
	return rows
}

// Seeds are the four centre cells, like colours on a diagonal.
func (SquareTopology) Seeds(side int) map[Coordinates]Disc {
	mid := side / 2
	return map[Coordinates]Disc{
		RowCol{mid - 1, mid}:     White,
		RowCol{mid, mid - 1}:     White,
		RowCol{mid - 1, mid - 1}: Black,
		RowCol{mid, mid}:         Black,
	}
}

func (SquareTopology) Corners(side int) []Coordinates {
	last := side - 1
	return []Coordinates{
		RowCol{0, 0},
		RowCol{0, last},
		RowCol{last, 0},
		RowCol{last, last},
	}
}

func (SquareTopology) At(row, col int) Coordinates {
	return RowCol{Row: row, Col: col}
}
