// Package service provides the business logic layer for the sliding tile puzzle.
//
// The service package implements:
//   - Multi-session puzzle management
//   - Configuration management and loading
//   - Move processing with reject diagnostics
//   - Session lifecycle management
//   - Move history tracking
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level puzzle operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages puzzle configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the puzzle engine, providing session isolation, configuration management, and
// business logic orchestration. Each session maintains its own game instance
// with independent state.
//
// Time is server-side: each session tracks the wall clock and feeds the time
// since the previous request into the game's tick before acting, so the
// elapsed timer and slide animations progress between stateless HTTP calls.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "pocket_3x3")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Execute moves
//	result, err := gameService.Move(ctx, sessionInfo.ID, "up", false)
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// puzzle state. Multiple sessions can run concurrently with different
// configurations. Sessions track creation time, last access time, and move
// history for analytics and debugging.
package service
