package engine

// ManhattanDistance calculates the taxicab distance between two cells
func ManhattanDistance(from, to Cell) int {
	dr := from.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := from.Col - to.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// SolvedCell returns the cell a tile occupies in the solved grid. The blank
// homes in the bottom-right corner.
func SolvedCell(tileID, size int) Cell {
	if tileID == BlankTile {
		return Cell{Row: size - 1, Col: size - 1}
	}
	return Cell{Row: (tileID - 1) / size, Col: (tileID - 1) % size}
}

// CountMisplacedTiles counts tiles that are not on their solved cell. The
// blank is excluded.
func CountMisplacedTiles(g *Grid) int {
	count := 0
	for i, tile := range g.Tiles() {
		if tile == BlankTile {
			continue
		}
		if tile != i+1 {
			count++
		}
	}
	return count
}

// TotalDisplacement sums the Manhattan distance of every tile from its
// solved cell, a rough measure of how scrambled a grid is.
func TotalDisplacement(g *Grid) int {
	size := g.Size()
	sum := 0
	for i, tile := range g.Tiles() {
		if tile == BlankTile {
			continue
		}
		pos := Cell{Row: i / size, Col: i % size}
		sum += ManhattanDistance(pos, SolvedCell(tile, size))
	}
	return sum
}
