package ui

import "fmt"

// Mode says which part of the window receives input.
type Mode int

const (
	Idle Mode = iota
	PickingColor
	Saving
)

func showMode(mode Mode) string {
	switch mode {
	case Idle:
		return "Idle"
	case PickingColor:
		return "PickingColor"
	case Saving:
		return "Saving"
	default:
		panic(fmt.Sprintf("Invalid mode: %d", mode))
	}
}
