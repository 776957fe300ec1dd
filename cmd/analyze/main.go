// Command analyze prints quick, human-readable diagnostics for board
// layouts. Each argument is a row-major comma-separated tile list with 0 as
// the blank, e.g. "1,2,3,4,0,5,7,8,6". It reports validity, solvability,
// misplaced tile count, total tile displacement, and the legal moves from
// the position. Without arguments it analyzes a few built-in sample boards.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tilekit/sliding-puzzle/game/engine"
)

func main() {
	boards := os.Args[1:]
	if len(boards) == 0 {
		boards = []string{
			"1,2,3,4,5,6,7,8,0",       // solved 3x3
			"1,2,3,4,0,5,7,8,6",       // two moves out
			"2,1,3,4,5,6,7,8,0",       // unsolvable swap
			"5,1,2,4,9,6,3,8,13,10,7,11,14,15,12,0", // scrambled 4x4
		}
	}

	exitCode := 0
	for _, spec := range boards {
		fmt.Printf("\n=== Analyzing %s ===\n", spec)
		if !analyzeBoard(spec) {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// analyzeBoard parses and reports on a single board spec. It returns false
// when the spec is not a valid board.
func analyzeBoard(spec string) bool {
	tiles, err := parseTiles(spec)
	if err != nil {
		fmt.Printf("❌ Parse error: %v\n", err)
		return false
	}

	size := int(math.Sqrt(float64(len(tiles))))
	if size*size != len(tiles) {
		fmt.Printf("❌ Tile count %d is not a perfect square\n", len(tiles))
		return false
	}

	grid, err := engine.NewGridFromTiles(size, tiles)
	if err != nil {
		fmt.Printf("❌ Invalid board: %v\n", err)
		return false
	}

	fmt.Printf("Board: %dx%d\n", size, size)
	printBoard(grid)

	blank := grid.BlankPosition()
	fmt.Printf("Blank: (%d, %d)\n", blank.Row, blank.Col)

	if grid.IsSolved() {
		fmt.Println("✅ Board is SOLVED")
		return true
	}

	if grid.Solvable() {
		fmt.Println("✅ Solvable: yes")
	} else {
		fmt.Println("⚠️  Solvable: NO - this position cannot reach the solved state")
	}

	misplaced := engine.CountMisplacedTiles(grid)
	displacement := engine.TotalDisplacement(grid)
	fmt.Printf("Misplaced tiles: %d/%d\n", misplaced, size*size-1)
	fmt.Printf("Total displacement (Manhattan sum): %d\n", displacement)

	// Grid directions name the blank's motion; report the tile slides a
	// player would request instead.
	var tileMoves []string
	for _, dir := range grid.LegalMoves() {
		tileMoves = append(tileMoves, engine.OppositeDirection(dir))
	}
	fmt.Printf("Legal tile slides: %s\n", strings.Join(tileMoves, ", "))

	return true
}

// parseTiles splits a comma-separated spec into tile ids.
func parseTiles(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	tiles := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad tile %q: %w", part, err)
		}
		tiles = append(tiles, n)
	}
	return tiles, nil
}

// printBoard renders the grid with right-aligned numbers and a dot for the
// blank.
func printBoard(grid *engine.Grid) {
	size := grid.Size()
	tiles := grid.Tiles()
	width := len(strconv.Itoa(size*size - 1))
	for row := 0; row < size; row++ {
		var b strings.Builder
		b.WriteString("  ")
		for col := 0; col < size; col++ {
			if col > 0 {
				b.WriteString(" ")
			}
			tile := tiles[row*size+col]
			if tile == engine.BlankTile {
				b.WriteString(strings.Repeat(" ", width-1) + ".")
			} else {
				b.WriteString(fmt.Sprintf("%*d", width, tile))
			}
		}
		fmt.Println(b.String())
	}
}
