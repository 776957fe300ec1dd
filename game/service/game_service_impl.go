package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tilekit/sliding-puzzle/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	// Fallback: return as-is or "default"
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new puzzle session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Load configuration
	var config *engine.PuzzleConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide helpful error message with available options
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Determine the config identifier to return - prefer the input configName if provided,
	// otherwise look up the config_id by display name
	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID, // Return the config_id, not the display name
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		State:          session.Game.Snapshot(),
		Config:         session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	session.Advance()

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name), // Return config_id consistently
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		State:          session.Game.Snapshot(),
		Config:         session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name), // Return config_id consistently
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			State:          sess.Game.Snapshot(),
			Config:         sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move executes a single move for a session
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, direction string, reset bool) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	sess.Advance()

	// Collect events
	events := []GameEvent{}

	// Handle reset if requested
	if reset {
		sess.Game.Reset()
		events = append(events, GameEvent{
			Type:      "reset",
			Message:   "Board reshuffled",
			Timestamp: time.Now(),
		})
	}

	// Capture the gate state before the move so a rejection can be explained
	wasSolved := sess.Game.IsSolved()
	wasAnimating := sess.Game.Snapshot().Animation != nil

	success := sess.Game.RequestMove(direction)
	state := sess.Game.Snapshot()

	result := &MoveResult{
		Success: success,
		State:   state,
		Message: state.Message,
		Events:  events,
	}

	if success {
		segment := sess.Game.CurrentMoves()
		last := segment[len(segment)-1]

		result.Events = append(result.Events, GameEvent{
			Type:      "move",
			Message:   fmt.Sprintf("Tile %d slid %s", last.TileID, last.Direction),
			Timestamp: time.Now(),
			Cell:      last.To,
		})
		if state.Solved {
			result.Events = append(result.Events, GameEvent{
				Type:      "solved",
				Message:   state.Message,
				Timestamp: time.Now(),
			})
		}

		result.Step = &StepInfo{
			Idx:     1,
			Dir:     last.Direction,
			TileID:  last.TileID,
			From:    last.From,
			To:      last.To,
			Success: true,
			Solved:  state.Solved,
		}
	} else {
		switch {
		case wasSolved:
			result.RejectReason = "solved"
		case wasAnimating:
			result.RejectReason = "animating"
		default:
			result.RejectReason = "illegal"
		}
	}

	return result, nil
}

// BulkMove executes multiple moves in sequence. Each step is played back at
// animation speed: any in-flight slide is fast-forwarded before the next
// move, so steps never bounce off the single-animation gate.
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, moves []string, reset bool) (*BulkMoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	sess.Advance()

	startState := sess.Game.Snapshot()

	result := &BulkMoveResult{
		RequestedMoves: len(moves),
		Events:         make([]GameEvent, 0),
		Success:        true,
		StartBlank:     startState.Blank,
		StartMoves:     startState.Moves,
	}

	// Handle reset
	if reset {
		sess.Game.Reset()
		result.Events = append(result.Events, GameEvent{
			Type:      "reset",
			Message:   "Board reshuffled",
			Timestamp: time.Now(),
		})
	}

	// Limit moves to prevent abuse
	if len(moves) > engine.MaxBulkMoves {
		result.Truncated = true
		result.Limit = engine.MaxBulkMoves
		moves = moves[:engine.MaxBulkMoves]
	}

	// Execute moves
	for i, move := range moves {
		if sess.Game.IsSolved() {
			result.StoppedReason = "puzzle solved"
			result.StopReasonCode = "solved"
			result.StoppedOnMove = result.MovesExecuted + 1
			break
		}

		// Fast-forward a slide still in flight from a previous step
		if sess.Game.Snapshot().Animation != nil {
			sess.Drain()
		}

		success := sess.Game.RequestMove(move)
		if !success {
			result.Success = false
			result.StoppedReason = fmt.Sprintf("move %d illegal: %s", i+1, move)
			result.StopReasonCode = "illegal"
			result.StoppedOnMove = i + 1
			break
		}

		result.MovesExecuted++

		segment := sess.Game.CurrentMoves()
		last := segment[len(segment)-1]
		solved := sess.Game.IsSolved()

		result.Events = append(result.Events, GameEvent{
			Type:      "move",
			Message:   fmt.Sprintf("Tile %d slid %s", last.TileID, last.Direction),
			Timestamp: time.Now(),
			Cell:      last.To,
		})
		if solved {
			result.Events = append(result.Events, GameEvent{
				Type:      "solved",
				Message:   sess.Game.Message(),
				Timestamp: time.Now(),
			})
		}

		result.Steps = append(result.Steps, StepInfo{
			Idx:     i + 1,
			Dir:     last.Direction,
			TileID:  last.TileID,
			From:    last.From,
			To:      last.To,
			Success: true,
			Solved:  solved,
		})
	}

	// Finalize snapshots
	endState := sess.Game.Snapshot()
	result.State = endState
	result.EndBlank = endState.Blank
	result.EndMoves = endState.Moves
	result.Solved = endState.Solved
	result.Message = endState.Message

	// Decision aids
	if !endState.Solved {
		result.PossibleMoves = possibleTileMoves(sess.Game)
	}

	return result, nil
}

// Reset resets a puzzle session with a fresh shuffle
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	sess.Game.Reset()

	return sess.Game.Snapshot(), nil
}

// GetGameState retrieves the current puzzle state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	sess.Advance()
	return sess.Game.Snapshot(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Game.MoveHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	// Calculate pagination
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	// Get the slice of moves
	var moves []engine.MoveHistoryEntry
	if opts.Order == "desc" {
		// Reverse order (most recent first)
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else {
		// Normal chronological order
		if start < total {
			moves = history[start:end]
		}
	}

	// Ensure moves is not nil
	if moves == nil {
		moves = []engine.MoveHistoryEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available puzzle configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific puzzle configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a puzzle configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.PuzzleConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// possibleTileMoves lists the tile-slide directions currently legal, the
// same convention move requests use.
func possibleTileMoves(g engine.Game) []string {
	gridDirs := g.LegalMoves()
	dirs := make([]string, 0, len(gridDirs))
	for _, d := range gridDirs {
		dirs = append(dirs, engine.OppositeDirection(d))
	}
	return dirs
}
