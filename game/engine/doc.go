// Package engine provides the core logic for the sliding tile puzzle.
//
// The engine package implements the puzzle mechanics including:
//   - Grid state with a checked bijection invariant
//   - Legal-move computation and move application
//   - Solvability-preserving shuffling via legal-move replay
//   - Time-parameterized slide animation, decoupled from game logic
//   - Input routing for directional and pointer events
//   - Session lifecycle, move counting and win detection
//
// Core Types:
//
// The Game interface defines the main contract for session operations,
// implemented by PuzzleGame. Grid represents the logical tile layout, while
// PuzzleConfig defines grid size, shuffle length and animation timing loaded
// from JSON files.
//
// Usage:
//
//	game, err := engine.NewGame(engine.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Drive the session from the render loop
//	game.RequestMove(engine.DirUp)
//	game.Tick(1.0 / 60)
//	snap := game.Snapshot()
//
// Animation Model:
//
// Applying a move is instantaneous: the grid always reflects the post-move
// layout, so win detection and shuffling never see a tile mid-slide. The
// Animator tracks the single in-flight slide separately and only feeds the
// renderer; move requests arriving while a slide is in progress are dropped,
// which keeps rapid input from desynchronizing visuals and logic.
package engine
