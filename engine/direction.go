package engine

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func DirToOffset(dir Direction) Coord {
	// convert dir to offset
	offset := Coord{Row: 0, Col: 0}

	switch dir {
	case Up:
		offset = Coord{Row: -1, Col: 0}
	case Down:
		offset = Coord{Row: 1, Col: 0}
	case Left:
		offset = Coord{Row: 0, Col: -1}
	case Right:
		offset = Coord{Row: 0, Col: 1}
	}
	return offset
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}
