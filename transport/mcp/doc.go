// Package mcp provides a Model Context Protocol server for the sliding tile puzzle.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for puzzle operations
//   - Session-aware command execution
//
// The client is a thin proxy: every tool call is translated to a REST
// request against the API server, so MCP agents and browser clients always
// see the same session state.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - puzzle_state: Get the current board with an ASCII rendering
//   - move: Execute a single tile slide
//   - bulk_move: Execute multiple slides in sequence
//   - reset_game: Reshuffle the board
//   - move_history: Retrieve move history with pagination
//   - create_session: Create new puzzle session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available puzzle configurations
//   - game_instructions: Full rules and solving strategy
//   - describe_tile: Inspect one cell (tile id, solved position, slidability)
//
// Direction Semantics:
//
// Tool directions name the way a tile slides, not the blank: "up" slides
// the tile below the blank upward. The legal directions at any moment
// follow from the blank's position, and at most one tile can slide in a
// given direction.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Autonomously solve the puzzle
//   - Plan and execute multi-move sequences
//   - Inspect board state cell by cell
//   - Manage multiple puzzle sessions
package mcp
