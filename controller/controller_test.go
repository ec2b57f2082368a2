package controller

import (
	"testing"

	"hitgrid/engine"

	"gioui.org/io/key"
)

func TestHandleKeyArrows(t *testing.T) {
	tests := []struct {
		name     key.Name
		expected engine.Coord
	}{
		{name: key.NameUpArrow, expected: engine.Coord{Row: 3, Col: 4}},
		{name: key.NameDownArrow, expected: engine.Coord{Row: 5, Col: 4}},
		{name: key.NameLeftArrow, expected: engine.Coord{Row: 4, Col: 3}},
		{name: key.NameRightArrow, expected: engine.Coord{Row: 4, Col: 5}},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			e := engine.New(engine.Size, engine.DefaultPickedColor)
			c := New(e)

			// walk to the middle first
			for i := 0; i < 3; i++ {
				c.HandleKey(key.NameDownArrow)
				c.HandleKey(key.NameRightArrow)
			}

			if !c.HandleKey(tt.name) {
				t.Fatalf("Expected %s to be handled", tt.name)
			}
			if e.Cursor() != tt.expected {
				t.Errorf("Expected cursor %v, got %v", tt.expected, e.Cursor())
			}
		})
	}
}

func TestHandleKeySpaceToggles(t *testing.T) {
	e := engine.New(engine.Size, engine.DefaultPickedColor)
	c := New(e)

	c.HandleKey(key.NameSpace)
	if !e.Cell(e.Cursor()).Hit {
		t.Errorf("Expected cell under cursor to be hit")
	}

	c.HandleKey(key.NameSpace)
	if e.Cell(e.Cursor()).Hit {
		t.Errorf("Expected cell under cursor to be cleared")
	}
}

func TestHandleKeyUnbound(t *testing.T) {
	e := engine.New(engine.Size, engine.DefaultPickedColor)
	c := New(e)

	for _, name := range []key.Name{key.NameReturn, key.NameEscape, "A"} {
		if c.HandleKey(name) {
			t.Errorf("Expected %s to be unhandled", name)
		}
	}
	if e.Cursor() != (engine.Coord{Row: 1, Col: 1}) {
		t.Errorf("Expected cursor untouched, got %v", e.Cursor())
	}
	if e.RenderText() != engine.New(engine.Size, engine.DefaultPickedColor).RenderText() {
		t.Errorf("Expected board untouched")
	}
}

func TestEdgeArrowStillHandled(t *testing.T) {
	e := engine.New(engine.Size, engine.DefaultPickedColor)
	c := New(e)

	if !c.HandleKey(key.NameUpArrow) {
		t.Errorf("Expected Up at the top row to be handled as a no-op")
	}
	if e.Cursor() != (engine.Coord{Row: 1, Col: 1}) {
		t.Errorf("Expected cursor to stay at (1, 1), got %v", e.Cursor())
	}
}

func TestKeysAreAllBound(t *testing.T) {
	e := engine.New(engine.Size, engine.DefaultPickedColor)
	c := New(e)

	for _, name := range Keys() {
		if !c.HandleKey(name) {
			t.Errorf("Expected listed key %s to be handled", name)
		}
	}
}
