package engine

import (
	"image/color"
	"strings"
)

// State is everything the board view and the input handler work on.
type State struct {
	Board       Board
	Cursor      Coord
	PickedColor color.NRGBA
}

func (s *State) GetCell(c Coord) *Cell {
	return s.Board.GetCell(c)
}

func (s *State) Size() int {
	return s.Board.Size
}

// RenderText dumps the board one row per line, 'x' for hit cells and '0'
// otherwise, separated by single spaces.
func (s *State) RenderText() string {
	var sb strings.Builder

	for i, row := range s.Board.Cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cell.Char())
		}
	}

	return sb.String()
}

func (s *State) clone() State {
	// deep copy
	newBoard := Board{
		Size:  s.Size(),
		Cells: make([][]Cell, s.Size()),
	}

	for i := 0; i < s.Size(); i++ {
		newBoard.Cells[i] = make([]Cell, s.Size())
		copy(newBoard.Cells[i], s.Board.Cells[i])
	}

	return State{
		Board:       newBoard,
		Cursor:      s.Cursor,
		PickedColor: s.PickedColor,
	}
}
