package engine

import (
	"testing"
)

func TestRouteDirectionTranslatesTileMotion(t *testing.T) {
	g, _ := NewSolvedGrid(3) // blank at (2,2)
	r := NewInputRouter(nil)

	// "up" slides the tile below the blank; there is none, so it is
	// illegal. The tile above the blank can slide down.
	if _, ok := r.RouteDirection(g, DirUp); ok {
		t.Error("Expected up to be rejected with blank on the bottom row")
	}

	gridDir, ok := r.RouteDirection(g, DirDown)
	if !ok {
		t.Fatal("Expected down to be accepted")
	}
	if gridDir != DirUp {
		t.Errorf("Expected grid direction up for tile sliding down, got %s", gridDir)
	}

	if _, ok := r.RouteDirection(g, "sideways"); ok {
		t.Error("Expected junk direction to be rejected")
	}
}

func TestRoutePointer(t *testing.T) {
	g, _ := NewSolvedGrid(3) // blank at (2,2)

	// A locator mapping unit coordinates straight to cells.
	locator := func(x, y float64) (Cell, bool) {
		if x < 0 || y < 0 || x >= 3 || y >= 3 {
			return Cell{}, false
		}
		return Cell{Row: int(y), Col: int(x)}, true
	}
	r := NewInputRouter(locator)

	// Clicking the tile left of the blank slides it right into the blank.
	dir, ok := r.RoutePointer(g, 1.5, 2.5)
	if !ok {
		t.Fatal("Expected click on (2,1) to resolve to a move")
	}
	if dir != DirLeft {
		t.Errorf("Expected grid direction left, got %s", dir)
	}

	// Clicking a non-adjacent cell resolves to nothing.
	if _, ok := r.RoutePointer(g, 0.5, 0.5); ok {
		t.Error("Expected click on (0,0) to be rejected")
	}

	// Clicking outside the board resolves to nothing.
	if _, ok := r.RoutePointer(g, -1, -1); ok {
		t.Error("Expected off-board click to be rejected")
	}
}

func TestRoutePointerWithoutLocator(t *testing.T) {
	g, _ := NewSolvedGrid(3)
	r := NewInputRouter(nil)

	if _, ok := r.RoutePointer(g, 1, 1); ok {
		t.Error("Expected pointer routing to be inert without a locator")
	}
}

func TestDirectionInto(t *testing.T) {
	g, _ := NewGridFromTiles(3, []int{1, 2, 3, 4, 0, 6, 7, 5, 8}) // blank at (1,1)

	tests := []struct {
		cell Cell
		dir  string
		ok   bool
	}{
		{Cell{Row: 0, Col: 1}, DirUp, true},
		{Cell{Row: 2, Col: 1}, DirDown, true},
		{Cell{Row: 1, Col: 0}, DirLeft, true},
		{Cell{Row: 1, Col: 2}, DirRight, true},
		{Cell{Row: 0, Col: 0}, "", false},
		{Cell{Row: 1, Col: 1}, "", false},
	}

	for _, tt := range tests {
		dir, ok := DirectionInto(g, tt.cell)
		if ok != tt.ok || dir != tt.dir {
			t.Errorf("DirectionInto(%v) = (%q, %v), want (%q, %v)", tt.cell, dir, ok, tt.dir, tt.ok)
		}
	}
}
