package engine

import "image/color"

/**
 * Hit grid engine (cursor and toggle logic only, no drawing)
 */

// DefaultPickedColor is the hit color used until the user picks another one.
var DefaultPickedColor = color.NRGBA{R: 0, G: 0, B: 255, A: 255}

type Engine struct {
	state                State
	OnCursorMoved        func(from, to Coord)
	OnToggled            func(cell Cell)
	OnPickedColorChanged func(c color.NRGBA)
}

// New returns an engine with an empty size×size board, the cursor on the
// top-left cell and picked as the hit color.
func New(size int, picked color.NRGBA) *Engine {
	return &Engine{
		state: State{
			Board:       NewBoard(size),
			Cursor:      Coord{Row: 1, Col: 1},
			PickedColor: picked,
		},
	}
}

func (e *Engine) Size() int {
	return e.state.Size()
}

func (e *Engine) Cursor() Coord {
	return e.state.Cursor
}

func (e *Engine) PickedColor() color.NRGBA {
	return e.state.PickedColor
}

func (e *Engine) Cell(c Coord) Cell {
	return *e.state.GetCell(c)
}

// Snapshot returns a deep copy of the current state. Later transitions do
// not show through it.
func (e *Engine) Snapshot() State {
	return e.state.clone()
}

// Move shifts the cursor one cell in dir. Moves that would leave the board
// are ignored and reported as false.
func (e *Engine) Move(dir Direction) bool {
	from := e.state.Cursor
	to := GetNeighbor(dir, from)

	if !e.state.Board.Contains(to) {
		return false
	}

	e.state.Cursor = to

	if e.OnCursorMoved != nil {
		e.OnCursorMoved(from, to)
	}
	return true
}

// Toggle flips the cell under the cursor. A cell turned on takes the picked
// color; a cell turned off loses its color.
func (e *Engine) Toggle() Cell {
	cell := e.state.GetCell(e.state.Cursor)

	if cell.Hit {
		cell.Hit = false
		cell.Color = color.NRGBA{}
	} else {
		cell.Hit = true
		cell.Color = e.state.PickedColor
	}

	if e.OnToggled != nil {
		e.OnToggled(*cell)
	}
	return *cell
}

// SetPickedColor changes the color of cells toggled on from now on.
func (e *Engine) SetPickedColor(c color.NRGBA) {
	e.state.PickedColor = c

	if e.OnPickedColorChanged != nil {
		e.OnPickedColorChanged(c)
	}
}

// RenderText dumps the current board, see State.RenderText.
func (e *Engine) RenderText() string {
	return e.state.RenderText()
}
