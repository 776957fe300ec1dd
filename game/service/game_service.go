package service

import (
	"context"
	"time"

	"github.com/tilekit/sliding-puzzle/game/engine"
)

// GameService defines all puzzle-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Move(ctx context.Context, sessionID, direction string, reset bool) (*MoveResult, error)
	BulkMove(ctx context.Context, sessionID string, moves []string, reset bool) (*BulkMoveResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.Snapshot, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.Snapshot, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.PuzzleConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.PuzzleConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.PuzzleConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.PuzzleConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles puzzle configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.PuzzleConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.PuzzleConfig
	SaveConfig(name string, config *engine.PuzzleConfig) error
}

// Session represents an active puzzle session
type Session struct {
	ID             string
	Game           engine.Game
	Config         *engine.PuzzleConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time

	lastTick time.Time
}

// NewSession wraps a game in a session, starting its tick clock.
func NewSession(id string, game engine.Game, config *engine.PuzzleConfig) *Session {
	now := time.Now()
	return &Session{
		ID:             id,
		Game:           game,
		Config:         config,
		CreatedAt:      now,
		LastAccessedAt: now,
		lastTick:       now,
	}
}

// Advance feeds the wall-clock time since the last touch into the game's
// tick, so the elapsed timer and the slide animation progress between
// requests. Call before reading or mutating the game.
func (s *Session) Advance() {
	now := time.Now()
	dt := now.Sub(s.lastTick).Seconds()
	s.lastTick = now
	s.Game.Tick(dt)
}

// Drain fast-forwards past any in-flight slide animation. Used between the
// steps of a bulk move, where no client is watching the tiles slide.
func (s *Session) Drain() {
	s.Game.Tick(s.Game.AnimationDuration())
	s.lastTick = time.Now()
}
