// Command validate provides a small CLI that validates puzzle configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Grid size bounds (3 to 5)
//   - Shuffle move and animation duration bounds
//   - Required message keys
//   - %d move-count placeholders in the solved and move_applied messages
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	minGridSize     = 3
	maxGridSize     = 5
	maxShuffleMoves = 10000
	maxAnimationMs  = 2000
)

// Config mirrors the JSON schema for a puzzle configuration.
type Config struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	GridSize     int               `json:"grid_size"`
	ShuffleMoves int               `json:"shuffle_moves"`
	AnimationMs  int               `json:"animation_ms"`
	Messages     map[string]string `json:"messages"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Config name is required")
	}

	// Validate board dimensions
	if config.GridSize < minGridSize || config.GridSize > maxGridSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("grid_size must be between %d and %d, got %d", minGridSize, maxGridSize, config.GridSize))
	}

	// Validate shuffle settings. Zero means the engine default applies.
	if config.ShuffleMoves < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("shuffle_moves cannot be negative, got %d", config.ShuffleMoves))
	}
	if config.ShuffleMoves > maxShuffleMoves {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("shuffle_moves cannot exceed %d, got %d", maxShuffleMoves, config.ShuffleMoves))
	}

	// Validate animation settings. Zero means the engine default applies.
	if config.AnimationMs < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("animation_ms cannot be negative, got %d", config.AnimationMs))
	}
	if config.AnimationMs > maxAnimationMs {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("animation_ms cannot exceed %d, got %d", maxAnimationMs, config.AnimationMs))
	}

	// Validate messages
	requiredMessages := []string{
		"welcome",
		"solved",
		"move_applied",
		"already_solved",
	}
	for _, msg := range requiredMessages {
		if _, exists := config.Messages[msg]; !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required message: %s", msg))
		}
	}

	// The solved and move_applied messages embed the move counter
	for _, msg := range []string{"solved", "move_applied"} {
		if text, exists := config.Messages[msg]; exists && !strings.Contains(text, "%d") {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Message %s must contain a %%d placeholder for the move count", msg))
		}
	}

	// Add informational data
	if result.Valid {
		shuffle := fmt.Sprintf("%d", config.ShuffleMoves)
		if config.ShuffleMoves == 0 {
			shuffle = "engine default"
		}
		animation := fmt.Sprintf("%dms", config.AnimationMs)
		if config.AnimationMs == 0 {
			animation = "engine default"
		}
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d (%d tiles)", config.GridSize, config.GridSize, config.GridSize*config.GridSize-1))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Shuffle moves: %s", shuffle))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Animation: %s", animation))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Messages: %d keys", len(config.Messages)))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
