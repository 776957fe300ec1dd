package engine

// CellLocator translates pointer coordinates into a grid cell. The geometry
// belongs to the rendering shell; the core only consumes the mapping.
type CellLocator func(x, y float64) (Cell, bool)

// InputRouter translates external input events into at most one legal move
// request per event. Requests that do not resolve to a legal move are
// dropped without error.
//
// Input directions follow the tile: the "up" arrow slides the tile below
// the blank upward. The grid layer names moves by the blank's motion, so
// the router flips directions while translating.
type InputRouter struct {
	locator CellLocator
}

// NewInputRouter creates a router with an optional pointer-geometry locator.
func NewInputRouter(locator CellLocator) *InputRouter {
	return &InputRouter{locator: locator}
}

// SetLocator installs or replaces the pointer-geometry mapping.
func (r *InputRouter) SetLocator(locator CellLocator) {
	r.locator = locator
}

// RouteDirection maps a tile-motion direction to the grid move that slides
// a tile that way. It returns the grid direction to apply, or false when
// the move is illegal.
func (r *InputRouter) RouteDirection(g *Grid, direction string) (string, bool) {
	gridDir := OppositeDirection(direction)
	if gridDir == "" || !g.IsLegalMove(gridDir) {
		return "", false
	}
	return gridDir, true
}

// RoutePointer hit-tests pointer coordinates against the cell layout and,
// when the hit cell is orthogonally adjacent to the blank, derives the grid
// move that slides its tile into the blank.
func (r *InputRouter) RoutePointer(g *Grid, x, y float64) (string, bool) {
	if r.locator == nil {
		return "", false
	}
	cell, ok := r.locator(x, y)
	if !ok || !g.InBounds(cell) {
		return "", false
	}
	return DirectionInto(g, cell)
}

// DirectionInto returns the grid move that slides the tile at the given
// cell into the blank, or false when the cell is not adjacent to it. The
// returned direction points from the blank toward the cell.
func DirectionInto(g *Grid, cell Cell) (string, bool) {
	blank := g.BlankPosition()
	switch {
	case cell.Row == blank.Row+1 && cell.Col == blank.Col:
		return DirDown, true
	case cell.Row == blank.Row-1 && cell.Col == blank.Col:
		return DirUp, true
	case cell.Row == blank.Row && cell.Col == blank.Col+1:
		return DirRight, true
	case cell.Row == blank.Row && cell.Col == blank.Col-1:
		return DirLeft, true
	default:
		return "", false
	}
}
