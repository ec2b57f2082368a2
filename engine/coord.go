package engine

import "fmt"

// Coord is a 1-indexed grid position.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

func GetNeighbor(dir Direction, from Coord) Coord {
	offset := DirToOffset(dir)
	return Coord{Row: from.Row + offset.Row, Col: from.Col + offset.Col}
}
