// Package config provides configuration management for the sliding tile puzzle.
//
// The config package handles:
//   - Loading puzzle configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Puzzle configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Grid size (3x3 through 5x5)
//   - Shuffle depth (number of random walk steps, 0 = scale to the grid)
//   - Slide animation duration in milliseconds
//   - Game messages for various events
//
// Available Configurations:
//
// The package ships with several board sizes:
//   - classic_4x4: The classic 15-puzzle, the default
//   - pocket_3x3: A quick 8-puzzle for short sessions
//   - expert_5x5: The 24-puzzle for patient players
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	puzzleConfig, err := manager.LoadConfig("pocket_3x3")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for:
//   - Grid size within the playable range
//   - Shuffle and animation parameters within bounds
//   - Required message templates with move-count placeholders
package config
