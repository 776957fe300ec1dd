package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize  = errors.New("grid size must be at least 2")
	ErrIllegalMove  = errors.New("illegal move")
	ErrInvalidTiles = errors.New("tile sequence is not a bijection")
)

// Grid is the logical puzzle state: a row-major sequence of size*size tile
// ids in which every value in [0, size*size) appears exactly once. The blank
// is tile 0. The grid is always consistent; it is never observed mid-swap.
type Grid struct {
	size  int
	tiles []int
	blank int // index of the blank, kept in sync by Apply
}

// NewSolvedGrid creates a grid in the canonical solved order
// [1, 2, ..., size*size-1, 0].
func NewSolvedGrid(size int) (*Grid, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	tiles := make([]int, size*size)
	for i := 0; i < size*size-1; i++ {
		tiles[i] = i + 1
	}
	tiles[size*size-1] = BlankTile

	return &Grid{
		size:  size,
		tiles: tiles,
		blank: size*size - 1,
	}, nil
}

// NewGridFromTiles creates a grid from an explicit row-major tile sequence,
// enforcing the bijection invariant.
func NewGridFromTiles(size int, tiles []int) (*Grid, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if len(tiles) != size*size {
		return nil, fmt.Errorf("%w: expected %d tiles, got %d", ErrInvalidTiles, size*size, len(tiles))
	}

	seen := make([]bool, size*size)
	blank := -1
	for i, tile := range tiles {
		if tile < 0 || tile >= size*size || seen[tile] {
			return nil, fmt.Errorf("%w: bad tile %d at index %d", ErrInvalidTiles, tile, i)
		}
		seen[tile] = true
		if tile == BlankTile {
			blank = i
		}
	}

	g := &Grid{
		size:  size,
		tiles: make([]int, len(tiles)),
		blank: blank,
	}
	copy(g.tiles, tiles)
	return g, nil
}

// Size returns the grid dimension N of the N x N board.
func (g *Grid) Size() int {
	return g.size
}

// Tiles returns a copy of the row-major tile sequence.
func (g *Grid) Tiles() []int {
	tiles := make([]int, len(g.tiles))
	copy(tiles, g.tiles)
	return tiles
}

// TileAt returns the tile id at the given cell.
func (g *Grid) TileAt(c Cell) int {
	return g.tiles[c.Row*g.size+c.Col]
}

// BlankPosition returns the cell currently holding the blank.
func (g *Grid) BlankPosition() Cell {
	return Cell{Row: g.blank / g.size, Col: g.blank % g.size}
}

// InBounds reports whether the cell lies on the board.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// sourceCell returns the cell whose tile would be swapped with the blank
// for the given direction. At the grid layer a direction names the blank's
// motion: "left" swaps the blank with the tile on its left, which slides
// that tile right. The input layer translates tile-motion directions before
// they reach the grid (see InputRouter).
func (g *Grid) sourceCell(direction string) (Cell, bool) {
	dr, dc, ok := dirOffset(direction)
	if !ok {
		return Cell{}, false
	}

	blank := g.BlankPosition()
	src := Cell{Row: blank.Row + dr, Col: blank.Col + dc}
	if !g.InBounds(src) {
		return Cell{}, false
	}
	return src, true
}

// IsLegalMove reports whether a tile can slide in the given direction.
func (g *Grid) IsLegalMove(direction string) bool {
	_, ok := g.sourceCell(direction)
	return ok
}

// LegalMoves returns all directions a tile can currently slide in.
func (g *Grid) LegalMoves() []string {
	var moves []string
	for _, dir := range Directions() {
		if g.IsLegalMove(dir) {
			moves = append(moves, dir)
		}
	}
	return moves
}

// Apply moves the blank in the given direction by swapping it with the
// adjacent tile, mutating the grid in place. It returns the moved tile and
// its source and destination cells for the animation layer.
func (g *Grid) Apply(direction string) (MoveRecord, error) {
	src, ok := g.sourceCell(direction)
	if !ok {
		return MoveRecord{}, fmt.Errorf("%w: %s from blank %v", ErrIllegalMove, direction, g.BlankPosition())
	}

	dst := g.BlankPosition()
	srcIdx := src.Row*g.size + src.Col
	tile := g.tiles[srcIdx]

	g.tiles[g.blank] = tile
	g.tiles[srcIdx] = BlankTile
	g.blank = srcIdx

	return MoveRecord{TileID: tile, From: src, To: dst}, nil
}

// IsSolved reports whether the sequence equals the canonical solved order.
func (g *Grid) IsSolved() bool {
	last := g.size*g.size - 1
	for i := 0; i < last; i++ {
		if g.tiles[i] != i+1 {
			return false
		}
	}
	return g.tiles[last] == BlankTile
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]int, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{size: g.size, tiles: tiles, blank: g.blank}
}

// Solvable reports whether the solved state is reachable by legal moves.
// With the blank counted as the largest value, each legal move is a
// transposition, so it flips the permutation parity and the parity of the
// blank's taxicab distance from its home corner in lockstep. The grid is
// solvable iff the two parities agree, as they do in the solved state.
func (g *Grid) Solvable() bool {
	ranked := make([]int, len(g.tiles))
	for i, tile := range g.tiles {
		if tile == BlankTile {
			ranked[i] = g.size * g.size
		} else {
			ranked[i] = tile
		}
	}

	inversions := 0
	for i := 0; i < len(ranked); i++ {
		for j := i + 1; j < len(ranked); j++ {
			if ranked[j] < ranked[i] {
				inversions++
			}
		}
	}

	home := Cell{Row: g.size - 1, Col: g.size - 1}
	blankDist := ManhattanDistance(g.BlankPosition(), home)

	return (inversions+blankDist)%2 == 0
}
