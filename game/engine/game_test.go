package engine

import (
	"strings"
	"testing"
)

func createTestConfig() *PuzzleConfig {
	return &PuzzleConfig{
		Name:         "Engine Test Config",
		Description:  "Configuration for engine tests",
		GridSize:     3,
		ShuffleMoves: 64,
		AnimationMs:  100,
		Messages: Messages{
			Welcome:       "Welcome to the test puzzle!",
			Solved:        "Solved in %d moves!",
			MoveApplied:   "Moves: %d",
			AlreadySolved: "Already solved",
		},
	}
}

// nearlyWonGame returns a game whose grid is one slide away from solved:
// tile 8 sits right of the blank and must slide left.
func nearlyWonGame(t *testing.T) *PuzzleGame {
	t.Helper()

	game, err := NewSeededGame(createTestConfig(), 1)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	grid, err := NewGridFromTiles(3, []int{1, 2, 3, 4, 5, 6, 7, 0, 8})
	if err != nil {
		t.Fatalf("Failed to build grid: %v", err)
	}
	game.grid = grid
	return game
}

func TestNewGame(t *testing.T) {
	config := createTestConfig()
	game, err := NewSeededGame(config, 3)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	if game.IsSolved() {
		t.Error("Expected a fresh game not to be solved")
	}
	if !game.Grid().Solvable() {
		t.Error("Expected a fresh game to be solvable")
	}

	stats := game.Stats()
	if stats.Moves != 0 {
		t.Errorf("Expected 0 moves, got %d", stats.Moves)
	}
	if stats.ElapsedSeconds != 0 {
		t.Errorf("Expected 0 elapsed, got %f", stats.ElapsedSeconds)
	}
	if game.Message() != config.Messages.Welcome {
		t.Errorf("Expected welcome message, got %q", game.Message())
	}
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	config := createTestConfig()
	config.GridSize = 2

	if _, err := NewGame(config); err == nil {
		t.Error("Expected error for grid size below the playable minimum")
	}
}

func TestRequestMoveCountsOnlyAcceptedMoves(t *testing.T) {
	game, err := NewSeededGame(createTestConfig(), 5)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	// Find one accepted and one rejected direction from the current state.
	accepted := ""
	rejected := ""
	for _, dir := range Directions() {
		if game.Grid().IsLegalMove(OppositeDirection(dir)) {
			if accepted == "" {
				accepted = dir
			}
		} else if rejected == "" {
			rejected = dir
		}
	}

	if rejected != "" {
		if game.RequestMove(rejected) {
			t.Errorf("Expected %s to be rejected", rejected)
		}
		if game.Stats().Moves != 0 {
			t.Errorf("Rejected move must not count, got %d", game.Stats().Moves)
		}
	}

	if accepted == "" {
		t.Fatal("No legal move available from shuffled state")
	}
	if !game.RequestMove(accepted) {
		t.Fatalf("Expected %s to be accepted", accepted)
	}
	if game.Stats().Moves != 1 {
		t.Errorf("Expected move count 1, got %d", game.Stats().Moves)
	}

	if len(game.MoveHistory()) != 1 {
		t.Errorf("Expected 1 history entry, got %d", len(game.MoveHistory()))
	}
	if game.MoveHistory()[0].Direction != accepted {
		t.Errorf("History recorded %s, expected %s", game.MoveHistory()[0].Direction, accepted)
	}
}

func TestRequestMoveDroppedWhileAnimating(t *testing.T) {
	game := nearlyWonGame(t)

	// Tile 7 is left of the blank and can slide right.
	if !game.RequestMove(DirRight) {
		t.Fatal("Expected first move to be accepted")
	}
	before := game.Grid().Tiles()

	// A second request inside the animation window is silently dropped:
	// exactly one grid mutation per window.
	if game.RequestMove(DirLeft) {
		t.Error("Expected move during animation to be dropped")
	}
	after := game.Grid().Tiles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("Grid mutated by a dropped move")
		}
	}
	if game.Stats().Moves != 1 {
		t.Errorf("Expected move count 1, got %d", game.Stats().Moves)
	}

	// Once the slide finishes, moves are accepted again.
	game.Tick(game.AnimationDuration())
	if !game.RequestMove(DirLeft) {
		t.Error("Expected move to be accepted after animation completed")
	}
	if game.Stats().Moves != 2 {
		t.Errorf("Expected move count 2, got %d", game.Stats().Moves)
	}
}

func TestWinDetectedOnLogicalState(t *testing.T) {
	game := nearlyWonGame(t)

	if !game.RequestMove(DirLeft) {
		t.Fatal("Expected winning move to be accepted")
	}

	// The win is a logical-state fact: the slide animation is still in
	// flight, but the session is already won.
	if !game.IsSolved() {
		t.Error("Expected game to be solved immediately after the winning move")
	}
	if snap := game.Snapshot(); snap.Animation == nil {
		t.Error("Expected the winning slide to still be animating")
	}
	if !strings.Contains(game.Message(), "1 moves") {
		t.Errorf("Expected solved message with move count, got %q", game.Message())
	}

	// Won is terminal until reset.
	game.Tick(1)
	if game.RequestMove(DirRight) {
		t.Error("Expected moves to be rejected after winning")
	}
	if game.Stats().Moves != 1 {
		t.Errorf("Expected move count to stay at 1, got %d", game.Stats().Moves)
	}
}

func TestMoveOnSolvedBoardSurfacesAlreadySolvedMessage(t *testing.T) {
	game := nearlyWonGame(t)
	if !game.RequestMove(DirLeft) {
		t.Fatal("Expected winning move to be accepted")
	}
	game.Tick(1)

	if game.RequestMove(DirRight) {
		t.Error("Expected move on a solved board to be rejected")
	}
	if game.Message() != "Already solved" {
		t.Errorf("Expected already-solved message, got %q", game.Message())
	}

	if game.RequestMoveAt(0, 0) {
		t.Error("Expected pointer move on a solved board to be rejected")
	}
	if game.Message() != "Already solved" {
		t.Errorf("Expected already-solved message after pointer move, got %q", game.Message())
	}
}

func TestElapsedTimeStopsWhenWon(t *testing.T) {
	game := nearlyWonGame(t)

	game.Tick(0.5)
	if got := game.Stats().ElapsedSeconds; got != 0.5 {
		t.Errorf("Expected 0.5 elapsed, got %f", got)
	}

	if !game.RequestMove(DirLeft) {
		t.Fatal("Expected winning move to be accepted")
	}
	game.Tick(2.0)
	if got := game.Stats().ElapsedSeconds; got != 0.5 {
		t.Errorf("Elapsed time must freeze once won, got %f", got)
	}
}

func TestResetAfterWin(t *testing.T) {
	game := nearlyWonGame(t)
	game.Tick(0.25)
	if !game.RequestMove(DirLeft) {
		t.Fatal("Expected winning move to be accepted")
	}

	game.Reset()

	stats := game.Stats()
	if stats.Moves != 0 || stats.ElapsedSeconds != 0 || stats.Solved {
		t.Errorf("Expected zeroed stats after reset, got %+v", stats)
	}
	if game.IsSolved() {
		t.Error("Expected reset game to be active")
	}
	if game.Grid().IsSolved() {
		t.Error("Expected reset to reshuffle the grid")
	}
	if !game.Grid().Solvable() {
		t.Error("Expected reshuffled grid to be solvable")
	}
	if snap := game.Snapshot(); snap.Animation != nil {
		t.Error("Expected reset to discard the in-flight animation")
	}

	// Cumulative history survives; the current segment starts over.
	if len(game.MoveHistory()) != 1 {
		t.Errorf("Expected cumulative history to survive reset, got %d entries", len(game.MoveHistory()))
	}
	if len(game.CurrentMoves()) != 0 {
		t.Errorf("Expected current segment to be cleared, got %d entries", len(game.CurrentMoves()))
	}
}

func TestRequestMoveAt(t *testing.T) {
	game := nearlyWonGame(t)

	cellSize := 10.0
	game.SetCellLocator(func(x, y float64) (Cell, bool) {
		if x < 0 || y < 0 || x >= 3*cellSize || y >= 3*cellSize {
			return Cell{}, false
		}
		return Cell{Row: int(y / cellSize), Col: int(x / cellSize)}, true
	})

	// Click tile 8 at (row 2, col 2); it slides left into the blank and
	// wins the game.
	if !game.RequestMoveAt(25, 25) {
		t.Fatal("Expected click on adjacent tile to move it")
	}
	if !game.IsSolved() {
		t.Error("Expected game to be solved")
	}
}

func TestRequestMoveAtRejectsNonAdjacent(t *testing.T) {
	game := nearlyWonGame(t)
	game.SetCellLocator(func(x, y float64) (Cell, bool) {
		return Cell{Row: 0, Col: 0}, true
	})

	if game.RequestMoveAt(1, 1) {
		t.Error("Expected click on non-adjacent cell to be dropped")
	}
	if game.Stats().Moves != 0 {
		t.Errorf("Expected move count 0, got %d", game.Stats().Moves)
	}
}

func TestSnapshot(t *testing.T) {
	game := nearlyWonGame(t)
	game.Tick(0.1)

	snap := game.Snapshot()
	if snap.Size != 3 {
		t.Errorf("Expected size 3, got %d", snap.Size)
	}
	if len(snap.Tiles) != 9 {
		t.Errorf("Expected 9 tiles, got %d", len(snap.Tiles))
	}
	if snap.Blank != (Cell{Row: 2, Col: 1}) {
		t.Errorf("Expected blank (2,1), got %v", snap.Blank)
	}
	if snap.Animation != nil {
		t.Error("Expected no animation before any move")
	}

	if !game.RequestMove(DirLeft) {
		t.Fatal("Expected move to be accepted")
	}
	snap = game.Snapshot()
	if snap.Animation == nil {
		t.Fatal("Expected animation in snapshot after accepted move")
	}
	if snap.Animation.TileID != 8 {
		t.Errorf("Expected tile 8 animating, got %d", snap.Animation.TileID)
	}
	if snap.Animation.From != (Cell{Row: 2, Col: 2}) || snap.Animation.To != (Cell{Row: 2, Col: 1}) {
		t.Errorf("Unexpected animation endpoints: %+v", snap.Animation)
	}

	// Snapshot tiles are a copy, not a view.
	snap.Tiles[0] = 99
	if game.Grid().Tiles()[0] == 99 {
		t.Error("Snapshot must not alias the live grid")
	}
}
