package controller

import (
	"hitgrid/engine"

	"gioui.org/io/key"
)

var directions = map[key.Name]engine.Direction{
	key.NameUpArrow:    engine.Up,
	key.NameDownArrow:  engine.Down,
	key.NameLeftArrow:  engine.Left,
	key.NameRightArrow: engine.Right,
}

// Controller turns key presses into engine transitions.
type Controller struct {
	engine *engine.Engine
}

func New(e *engine.Engine) *Controller {
	return &Controller{engine: e}
}

// Keys lists every key the controller reacts to.
func Keys() []key.Name {
	return []key.Name{
		key.NameUpArrow,
		key.NameDownArrow,
		key.NameLeftArrow,
		key.NameRightArrow,
		key.NameSpace,
	}
}

// HandleKey applies the transition bound to name and reports whether the key
// is bound at all. A bound arrow that would leave the board still counts as
// handled.
func (c *Controller) HandleKey(name key.Name) bool {
	if name == key.NameSpace {
		c.engine.Toggle()
		return true
	}

	dir, ok := directions[name]
	if !ok {
		return false
	}

	c.engine.Move(dir)
	return true
}
