package game

import "fmt"

// Disc is the colour of a disc on the board. NoDisc marks an empty cell.
type Disc int

const (
	NoDisc Disc = iota
	White
	Black
)

func (d Disc) String() string {
	switch d {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Cell is one slot of the board. Its coordinates never change after creation.
type Cell struct {
	coordinates Coordinates
	disc        Disc
}

func NewCell(coordinates Coordinates) Cell {
	return Cell{coordinates: coordinates}
}

func (c *Cell) Coordinates() Coordinates {
	return c.coordinates
}

func (c *Cell) IsEmpty() bool {
	return c.disc == NoDisc
}

// Disc returns the disc on the cell, or ErrEmptyCell.
func (c *Cell) Disc() (Disc, error) {
	if c.IsEmpty() {
		return NoDisc, fmt.Errorf("%w: %s", ErrEmptyCell, c.coordinates)
	}
	return c.disc, nil
}

// Place puts a disc on an empty cell.
func (c *Cell) Place(disc Disc) error {
	if !c.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrOccupiedCell, c.coordinates)
	}
	c.disc = disc
	return nil
}

// FlipTo turns the disc on the cell over to the given colour.
func (c *Cell) FlipTo(disc Disc) error {
	if c.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrEmptyCell, c.coordinates)
	}
	if c.disc == disc {
		return fmt.Errorf("%w: %s is already %s", ErrNoOpFlip, c.coordinates, disc)
	}
	c.disc = disc
	return nil
}

func (c *Cell) Copy() Cell {
	return Cell{coordinates: c.coordinates, disc: c.disc}
}
