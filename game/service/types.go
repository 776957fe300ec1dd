package service

import (
	"time"

	"github.com/tilekit/sliding-puzzle/game/engine"
)

// SessionInfo provides information about a puzzle session
type SessionInfo struct {
	ID             string               `json:"id"`
	ConfigName     string               `json:"config_name"`
	CreatedAt      time.Time            `json:"created_at"`
	LastAccessedAt time.Time            `json:"last_accessed_at"`
	State          *engine.Snapshot     `json:"state"`
	Config         *engine.PuzzleConfig `json:"config"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success      bool             `json:"success"`
	RejectReason string           `json:"reject_reason,omitempty"` // Machine-friendly code: solved|animating|illegal
	State        *engine.Snapshot `json:"state"`
	Message      string           `json:"message"`
	Events       []GameEvent      `json:"events,omitempty"`
	Step         *StepInfo        `json:"step,omitempty"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	// Summary
	MovesExecuted  int              `json:"moves_executed"`
	RequestedMoves int              `json:"requested_moves"`
	Success        bool             `json:"success"`
	State          *engine.Snapshot `json:"state"`
	Events         []GameEvent      `json:"events"`
	StoppedReason  string           `json:"stopped_reason,omitempty"`   // Human-readable reason
	StopReasonCode string           `json:"stop_reason_code,omitempty"` // Machine-friendly code: illegal|solved
	StoppedOnMove  int              `json:"stopped_on_move,omitempty"`  // 1-based index of the move that caused stop
	Truncated      bool             `json:"truncated,omitempty"`
	Limit          int              `json:"limit,omitempty"`

	// Start/end snapshot
	StartBlank engine.Cell `json:"start_blank"`
	EndBlank   engine.Cell `json:"end_blank"`
	StartMoves int         `json:"start_moves"`
	EndMoves   int         `json:"end_moves"`

	// Per-step compact trace (only for this call)
	Steps []StepInfo `json:"steps,omitempty"`

	// Final status aids
	Solved        bool     `json:"solved"`
	Message       string   `json:"message,omitempty"`
	PossibleMoves []string `json:"possible_moves,omitempty"`
}

// StepInfo is a compact record for each executed move in the bulk call
type StepInfo struct {
	Idx     int         `json:"idx"`
	Dir     string      `json:"dir"`
	TileID  int         `json:"tile_id"`
	From    engine.Cell `json:"from"`
	To      engine.Cell `json:"to"`
	Success bool        `json:"success"`
	Solved  bool        `json:"solved,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string      `json:"type"` // "move", "solved", "reset"
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
	Cell      engine.Cell `json:"cell,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a puzzle configuration
type ConfigInfo struct {
	Filename     string `json:"filename"`
	ConfigID     string `json:"config_id"` // The identifier to use for session creation
	Name         string `json:"name"`      // Display name
	Description  string `json:"description"`
	GridSize     int    `json:"grid_size"`
	ShuffleMoves int    `json:"shuffle_moves"`
	AnimationMs  int    `json:"animation_ms"`
}
