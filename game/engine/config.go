package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ValidatePuzzleConfig validates a puzzle configuration for correctness and playability
func ValidatePuzzleConfig(config *PuzzleConfig) error {
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.GridSize < MinGridSize || config.GridSize > MaxGridSize {
		return fmt.Errorf("config validation: grid_size must be between %d and %d, got %d",
			MinGridSize, MaxGridSize, config.GridSize)
	}

	if config.ShuffleMoves < 0 || config.ShuffleMoves > MaxShuffleMoves {
		return fmt.Errorf("config validation: shuffle_moves must be between 0 and %d, got %d",
			MaxShuffleMoves, config.ShuffleMoves)
	}

	if config.AnimationMs < 0 || config.AnimationMs > MaxAnimationMs {
		return fmt.Errorf("config validation: animation_ms must be between 0 and %d, got %d",
			MaxAnimationMs, config.AnimationMs)
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Solved == "" {
		return fmt.Errorf("config validation: messages.solved is required")
	}
	if config.Messages.MoveApplied == "" {
		return fmt.Errorf("config validation: messages.move_applied is required")
	}
	if config.Messages.AlreadySolved == "" {
		return fmt.Errorf("config validation: messages.already_solved is required")
	}

	// Validate format strings
	if !strings.Contains(config.Messages.Solved, "%d") {
		return fmt.Errorf("config validation: messages.solved must contain %%d for the move count")
	}
	if !strings.Contains(config.Messages.MoveApplied, "%d") {
		return fmt.Errorf("config validation: messages.move_applied must contain %%d for the move count")
	}

	return nil
}

// DefaultConfig returns the built-in classic 4x4 configuration, used when no
// configs directory is available.
func DefaultConfig() *PuzzleConfig {
	return &PuzzleConfig{
		Name:         "Classic 4x4",
		Description:  "The classic 15-puzzle on a 4x4 grid",
		GridSize:     4,
		ShuffleMoves: 0, // scaled to the grid at shuffle time
		AnimationMs:  DefaultAnimationMs,
		Messages: Messages{
			Welcome:       "Slide tiles into the blank to restore the order!",
			Solved:        "Solved in %d moves!",
			MoveApplied:   "Moves: %d",
			AlreadySolved: "Already solved - reset for a new shuffle",
		},
	}
}

// LoadPuzzleConfig loads a puzzle configuration from a JSON file
func LoadPuzzleConfig(filename string) (*PuzzleConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config PuzzleConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidatePuzzleConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// animationMs resolves the configured slide duration, falling back to the
// default when unset.
func (c *PuzzleConfig) animationMs() int {
	if c.AnimationMs <= 0 {
		return DefaultAnimationMs
	}
	return c.AnimationMs
}
