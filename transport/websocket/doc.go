// Package websocket provides WebSocket transport for the sliding tile puzzle.
//
// The websocket package implements:
//   - Real-time push of board state to watching clients
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting after accepted moves
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded with the following structure:
//   - Outgoing: {session_id, event: "state_update", state: <snapshot>}
//   - The snapshot includes the tile layout, counters, and any in-flight
//     slide animation so clients can render the motion
//
// Incoming messages are currently ignored; moves go through the REST API
// and the socket only carries state back out.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=abc1) when establishing the connection.
// State updates are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after an accepted move
//	hub.BroadcastToSession(sessionID, snapshot)
//
// Connection Lifecycle:
//
// 1. Client connects with session ID
// 2. Connection registered with hub
// 3. Client receives state updates as moves are made
// 4. Disconnection triggers cleanup
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and send messages simultaneously
// without blocking each other.
package websocket
