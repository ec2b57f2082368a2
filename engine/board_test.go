package engine

import "testing"

func TestNewBoardCellIdentity(t *testing.T) {
	board := NewBoard(Size)

	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			cell := board.GetCell(Coord{Row: row, Col: col})
			if cell.Row != row || cell.Col != col {
				t.Errorf("Expected cell (%d, %d), got (%d, %d)", row, col, cell.Row, cell.Col)
			}
			if cell.Hit {
				t.Errorf("Expected (%d, %d) to start cleared", row, col)
			}
		}
	}
}

func TestBoardContains(t *testing.T) {
	board := NewBoard(Size)

	tests := []struct {
		name     string
		coord    Coord
		expected bool
	}{
		{name: "Top left", coord: Coord{Row: 1, Col: 1}, expected: true},
		{name: "Bottom right", coord: Coord{Row: Size, Col: Size}, expected: true},
		{name: "Row zero", coord: Coord{Row: 0, Col: 3}, expected: false},
		{name: "Column past end", coord: Coord{Row: 3, Col: Size + 1}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := board.Contains(tt.coord); got != tt.expected {
				t.Errorf("Expected Contains(%v) = %v, got %v", tt.coord, tt.expected, got)
			}
		})
	}
}

func TestGetCellOutOfBoundsPanics(t *testing.T) {
	board := NewBoard(Size)

	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for out of bounds cell")
		}
	}()

	board.GetCell(Coord{Row: 0, Col: 0})
}

func TestGetNeighbor(t *testing.T) {
	from := Coord{Row: 2, Col: 2}

	if got := GetNeighbor(Up, from); got != (Coord{Row: 1, Col: 2}) {
		t.Errorf("Expected (1, 2), got %v", got)
	}
	if got := GetNeighbor(Right, from); got != (Coord{Row: 2, Col: 3}) {
		t.Errorf("Expected (2, 3), got %v", got)
	}
}

func TestNewBoardRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for board size %d", size)
				}
			}()
			NewBoard(size)
		}()
	}
}
