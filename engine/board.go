package engine

import "fmt"

// Size is the side length of the square grid.
const Size = 8

type Board struct {
	Size  int
	Cells [][]Cell
}

func NewBoard(size int) Board {
	if size <= 0 {
		panic(fmt.Sprintf("Invalid board size: %d", size))
	}

	board := Board{
		Size:  size,
		Cells: make([][]Cell, size),
	}

	for i := 0; i < size; i++ {
		board.Cells[i] = make([]Cell, size)
		for j := 0; j < size; j++ {
			board.Cells[i][j] = Cell{Row: i + 1, Col: j + 1}
		}
	}

	return board
}

// Contains reports whether c addresses a cell of the board.
func (b *Board) Contains(c Coord) bool {
	return c.Row >= 1 && c.Row <= b.Size && c.Col >= 1 && c.Col <= b.Size
}

func (b *Board) GetCell(c Coord) *Cell {
	if !b.Contains(c) {
		panic(fmt.Sprintf("Invalid cell position: %v", c))
	}
	return &b.Cells[c.Row-1][c.Col-1]
}
