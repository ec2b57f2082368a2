package engine

import (
	"fmt"
	"image/color"
)

// Cell is one grid position. Row and Col never change; Hit and Color do.
// A zero Color means the cell has no color of its own.
type Cell struct {
	Row   int
	Col   int
	Hit   bool
	Color color.NRGBA
}

func (c Cell) Char() byte {
	if c.Hit {
		return 'x'
	}
	return '0'
}

// Fill returns the color the cell is drawn with.
func (c Cell) Fill(empty color.NRGBA) color.NRGBA {
	if c.Hit {
		return c.Color
	}
	return empty
}

func (c Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d): %c", c.Row, c.Col, c.Char())
}
