package main

import (
	"math/rand"
	"time"
)

// Walker mirrors the board locally and picks random legal tile slides.
// Directions name the way a tile slides: "up" moves the tile below the
// blank into it, so a slide is legal when the source cell is on the board.
type Walker struct {
	size    int
	tiles   []int
	blank   Cell
	lastDir string
	rng     *rand.Rand
}

// dirDelta is the (row, col) travel of the sliding tile per direction.
var dirDelta = map[string][2]int{
	"up":    {-1, 0},
	"down":  {1, 0},
	"left":  {0, -1},
	"right": {0, 1},
}

// inverse returns the direction that undoes the given one.
var inverse = map[string]string{
	"up":    "down",
	"down":  "up",
	"left":  "right",
	"right": "left",
}

// NewWalker builds a mirror from the server snapshot. seed 0 selects a
// time-based walk.
func NewWalker(state *Snapshot, seed int64) *Walker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w := &Walker{rng: rand.New(rand.NewSource(seed))}
	w.Resync(state)
	return w
}

// Resync replaces the mirror with the server's board.
func (w *Walker) Resync(state *Snapshot) {
	w.size = state.Size
	w.tiles = make([]int, len(state.Tiles))
	copy(w.tiles, state.Tiles)
	w.blank = state.Blank
	w.lastDir = ""
}

// Blank returns the mirror's blank position.
func (w *Walker) Blank() Cell {
	return w.blank
}

// legalMoves lists the tile directions currently available on the mirror.
func (w *Walker) legalMoves() []string {
	var moves []string
	for _, dir := range []string{"up", "down", "left", "right"} {
		if _, ok := w.sourceCell(dir); ok {
			moves = append(moves, dir)
		}
	}
	return moves
}

// sourceCell returns the cell whose tile would slide in the given direction,
// or false when the slide would come from off the board.
func (w *Walker) sourceCell(dir string) (Cell, bool) {
	d := dirDelta[dir]
	src := Cell{Row: w.blank.Row - d[0], Col: w.blank.Col - d[1]}
	if src.Row < 0 || src.Row >= w.size || src.Col < 0 || src.Col >= w.size {
		return Cell{}, false
	}
	return src, true
}

// NextMove picks a random legal slide, avoiding the move that would undo the
// previous one when any other option exists.
func (w *Walker) NextMove() string {
	moves := w.legalMoves()

	if len(moves) > 1 && w.lastDir != "" {
		undo := inverse[w.lastDir]
		filtered := moves[:0]
		for _, dir := range moves {
			if dir != undo {
				filtered = append(filtered, dir)
			}
		}
		moves = filtered
	}

	return moves[w.rng.Intn(len(moves))]
}

// Apply performs the slide on the mirror. The caller only applies moves the
// server accepted.
func (w *Walker) Apply(dir string) {
	src, ok := w.sourceCell(dir)
	if !ok {
		return
	}
	w.tiles[w.blank.Row*w.size+w.blank.Col] = w.tiles[src.Row*w.size+src.Col]
	w.tiles[src.Row*w.size+src.Col] = 0
	w.blank = src
	w.lastDir = dir
}

// Matches reports whether the mirror and the server snapshot agree on the
// board layout.
func (w *Walker) Matches(state *Snapshot) bool {
	if state.Size != w.size || len(state.Tiles) != len(w.tiles) {
		return false
	}
	if state.Blank != w.blank {
		return false
	}
	for i, tile := range state.Tiles {
		if tile != w.tiles[i] {
			return false
		}
	}
	return true
}
