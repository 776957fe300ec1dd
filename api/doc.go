// Package api provides HTTP REST API handlers for the sliding tile puzzle.
//
// The api package implements:
//   - RESTful endpoints for puzzle operations
//   - Session management endpoints
//   - Configuration listing and creation
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional config_id in body)
//   - GET /api/sessions - List all sessions (sort, order, limit)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Get current board snapshot
//   - POST /api/sessions/{id}/move - Slide one tile
//   - POST /api/sessions/{id}/bulk-move - Slide a sequence of tiles
//   - POST /api/sessions/{id}/reset - Reshuffle the board
//   - GET /api/sessions/{id}/history - Get move history with pagination
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - POST /api/configs - Save a new configuration
//   - GET /api/configs/{name} - Get a configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Directions name the way the tile
// slides, as a player sees it:
//
//	{
//	  "direction": "up|down|left|right",
//	  "reset": true|false              // optional reshuffle before move
//	}
//
// Bulk moves carry the sequence instead:
//
//	{
//	  "moves": ["up", "left", "up"],
//	  "reset": true|false
//	}
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api

//
// Enriched Responses (Move and Bulk Move)
//
// Move (POST /api/sessions/{id}/move)
//   Response:
//     - success, reject_reason ("solved|animating|illegal" when rejected)
//     - step: { idx, dir, tile_id, from{row,col}, to{row,col}, success, solved? }
//     - state: full board snapshot, including any in-flight animation
//
// Bulk Move (POST /api/sessions/{id}/bulk-move)
//   Response:
//     - requested_moves, moves_executed
//     - stopped_reason (text), stop_reason_code (enum), stopped_on_move (1-based), truncated, limit
//     - steps: [{ idx, dir, tile_id, from, to, success, solved? }]
//     - start_blank, end_blank, start_moves, end_moves
//     - possible_moves: legal tile-slide directions after the batch
