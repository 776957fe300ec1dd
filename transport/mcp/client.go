package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tilekit/sliding-puzzle/game/engine"
	"github.com/tilekit/sliding-puzzle/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Sliding Tile Puzzle",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Sliding Tile Puzzle - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Slide numbered tiles on an NxN board until they read 1..N*N-1 in row-major
order with the blank in the bottom-right corner.

AVAILABLE TOOLS:
- puzzle_state: Get the current board
- move: Single move (up/down/left/right) - requires intent explanation
- bulk_move: Multiple moves at once - requires intent explanation
- reset_game: Reshuffle the board
- move_history: View past moves
- create_session: Create new puzzle session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available configurations
- game_instructions: Get comprehensive game instructions and rules
- describe_tile: Get detailed info about a tile at a specific cell

DIRECTION SEMANTICS: a direction names the way a TILE slides, not the blank.
"up" slides the tile below the blank upward. At most one direction per blank
neighbor is legal at any time.

NOTE: The 'intent' parameter on move/bulk_move tools serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new puzzle session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active puzzle sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "puzzle_state",
		Description: "Get the current board state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePuzzleState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Slide a tile in a direction. The direction names the tile's motion: 'up' slides the tile below the blank upward.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction the tile slides",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reshuffle before moving",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: "Execute multiple tile slides in sequence. Stops at the first illegal move or when the puzzle is solved.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"moves": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
						"enum": []string{"up", "down", "left", "right"},
					},
					"description": "Array of moves",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of moves (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reshuffle before moving",
				},
			},
			Required: []string{"session_id", "moves"},
		},
	}, c.handleBulkMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reshuffle the board into a fresh solvable scramble",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available puzzle configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_tile",
		Description: "Get detailed information about the tile at a specific cell, including its solved position and whether it can slide right now.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the cell to describe (0-based, top to bottom)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the cell to describe (0-based, left to right)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleDescribeTile)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)

	body := map[string]string{}
	if configName != "" {
		body["config_name"] = configName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatSnapshot(session.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePuzzleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.Snapshot
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSnapshot(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)
	intent, _ := args["intent"].(string)
	reset, _ := args["reset"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"direction": direction,
		"reset":     reset,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(direction, &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	movesRaw, _ := args["moves"].([]interface{})
	intent, _ := args["intent"].(string)
	reset, _ := args["reset"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	// Convert moves to string array
	moves := make([]string, 0, len(movesRaw))
	for _, m := range movesRaw {
		if move, ok := m.(string); ok {
			moves = append(moves, move)
		}
	}

	body := map[string]interface{}{
		"moves": moves,
		"reset": reset,
	}

	var result service.BulkMoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/bulk-move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatBulkMoveResult(sessionID, &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string           `json:"message"`
		State   *engine.Snapshot `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatSnapshot(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Board: %dx%d, Shuffle: %d moves, Animation: %dms\n\n",
			config.Name, config.ConfigID, config.Description,
			config.GridSize, config.GridSize, config.ShuffleMoves, config.AnimationMs)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🧩 Sliding Tile Puzzle - Complete Instructions

GAME OBJECTIVE:
Rearrange the numbered tiles on an NxN board until they read 1..N*N-1 in
row-major order with the blank cell in the bottom-right corner.

GAME MECHANICS:
• One tile moves at a time: only a tile orthogonally adjacent to the blank
  can slide, and it slides into the blank's cell
• Every shuffle is solvable: the board is scrambled by random legal moves
  from the solved position, never by dealing a random permutation
• Moves count only when a tile actually slides; rejected input is free
• The timer runs from the first look at the board and freezes on the win

DIRECTION SEMANTICS (IMPORTANT):
A direction names the way a TILE slides, not the blank:
• "up"    slides the tile BELOW the blank upward
• "down"  slides the tile ABOVE the blank downward
• "left"  slides the tile RIGHT of the blank leftward
• "right" slides the tile LEFT of the blank rightward
At most one tile can slide in any given direction at any time, so a
direction alone is unambiguous.

BOARD DISPLAY:
Tiles print as right-aligned numbers; the blank prints as a dot:
   1  2  3
   4  .  5
   7  8  6
Cells are addressed (row, col), 0-based from the top-left.

🤖 AI AGENTS - SOLVING STRATEGY:

1. **Read the board carefully**: note where each tile is and where the
   blank is. The legal directions follow directly from the blank's
   position: a tile below the blank can slide up, a tile above it can
   slide down, and so on.

2. **Solve row by row**: place the top row first, then the second, and
   so on. The last two rows are solved column by column from the left.

3. **Think in blank motion**: to move tile X one cell left, the blank
   must first travel to the cell left of X (without disturbing solved
   tiles), then the tile slides right... into the blank. Walking the
   blank around a tile is the core maneuver.

4. **3-cycles for the endgame**: the final 2x3 region is solved by
   rotating tiles around the blank. If you find the last two tiles
   swapped, the earlier rows were misplaced - back up one step.

5. **Use bulk_move for planned sequences**: execution stops at the first
   illegal move and the response tells you which step failed, the blank's
   start and end cells, and the directions that are legal afterward.

MOVEMENT COMMANDS:
- up, down, left, right - single tile slides
- Bulk moves - execute a planned sequence for efficiency
- Reset parameter available for fresh scrambles

REJECTION CODES (single move):
- illegal: no tile can slide in that direction from this position
- animating: a slide is still visually in progress; wait for it to finish
- solved: the puzzle is already solved; reset to play again

VICTORY CONDITION:
- Tiles in order 1..N*N-1 with the blank bottom-right
- The win is detected the instant the final tile logically moves, even
  while its slide animation is still drawing

SESSION MANAGEMENT:
- Multiple puzzle sessions can run simultaneously
- Each session has a unique 4-character ID
- Sessions maintain independent board, stats, and configuration

Good luck sliding! 🧩`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeTile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := int(args["row"].(float64))
	col := int(args["col"].(float64))

	var state engine.Snapshot
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	n := state.Size
	if row < 0 || row >= n || col < 0 || col >= n {
		return mcp.NewToolResultError(fmt.Sprintf("Cell (%d, %d) is out of bounds. Board is %dx%d (0-%d for both row and col)",
			row, col, n, n, n-1)), nil
	}

	tileID := state.Tiles[row*n+col]

	if tileID == engine.BlankTile {
		result := fmt.Sprintf(`Cell (%d, %d):
━━━━━━━━━━━━━━━━━━━━━━━━
This is the BLANK cell.
Adjacent tiles can slide into it:
%s`, row, col, describeSlidableNeighbors(&state))
		return mcp.NewToolResultText(result), nil
	}

	// Solved position: tile k belongs at ((k-1)/n, (k-1)%n)
	homeRow := (tileID - 1) / n
	homeCol := (tileID - 1) % n
	inPlace := homeRow == row && homeCol == col

	slideDir := slidableDirection(&state, row, col)
	canSlide := "No - it is not adjacent to the blank"
	if slideDir != "" {
		canSlide = fmt.Sprintf("Yes - move '%s' slides it into the blank at (%d, %d)",
			slideDir, state.Blank.Row, state.Blank.Col)
	}

	placed := "not yet in its solved position"
	if inPlace {
		placed = "already in its solved position"
	}

	result := fmt.Sprintf(`Cell (%d, %d):
━━━━━━━━━━━━━━━━━━━━━━━━
Tile: %d
Solved position: (%d, %d) - %s
Can slide now: %s`,
		row, col, tileID, homeRow, homeCol, placed, canSlide)

	return mcp.NewToolResultText(result), nil
}

// slidableDirection returns the tile-slide direction that moves the tile at
// (row, col) into the blank, or "" when the cell is not a blank neighbor.
func slidableDirection(state *engine.Snapshot, row, col int) string {
	b := state.Blank
	switch {
	case row == b.Row+1 && col == b.Col:
		return engine.DirUp
	case row == b.Row-1 && col == b.Col:
		return engine.DirDown
	case row == b.Row && col == b.Col+1:
		return engine.DirLeft
	case row == b.Row && col == b.Col-1:
		return engine.DirRight
	}
	return ""
}

// describeSlidableNeighbors lists each blank neighbor with the direction
// that slides it.
func describeSlidableNeighbors(state *engine.Snapshot) string {
	n := state.Size
	b := state.Blank
	var lines []string
	neighbors := []struct {
		row, col int
		dir      string
	}{
		{b.Row + 1, b.Col, engine.DirUp},
		{b.Row - 1, b.Col, engine.DirDown},
		{b.Row, b.Col + 1, engine.DirLeft},
		{b.Row, b.Col - 1, engine.DirRight},
	}
	for _, nb := range neighbors {
		if nb.row < 0 || nb.row >= n || nb.col < 0 || nb.col >= n {
			continue
		}
		tile := state.Tiles[nb.row*n+nb.col]
		lines = append(lines, fmt.Sprintf("- tile %d at (%d,%d) slides '%s'", tile, nb.row, nb.col, nb.dir))
	}
	if len(lines) == 0 {
		return "(none)"
	}
	return strings.Join(lines, "\n")
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatSnapshot(session.State))
}

// formatSnapshot renders the board with right-aligned tile numbers and a
// dot for the blank.
func formatSnapshot(state *engine.Snapshot) string {
	if state == nil {
		return "No board state available"
	}

	var result strings.Builder
	n := state.Size

	result.WriteString(fmt.Sprintf("Moves: %d | Total: %d | Elapsed: %.1fs | Config: %s\n\n",
		state.Moves, state.TotalMoves, state.ElapsedSeconds, state.ConfigName))

	width := len(fmt.Sprintf("%d", n*n-1))
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			tile := state.Tiles[row*n+col]
			if col > 0 {
				result.WriteString(" ")
			}
			if tile == engine.BlankTile {
				result.WriteString(strings.Repeat(" ", width-1) + ".")
			} else {
				result.WriteString(fmt.Sprintf("%*d", width, tile))
			}
		}
		result.WriteString("\n")
	}

	result.WriteString(fmt.Sprintf("\nBlank: (%d,%d)", state.Blank.Row, state.Blank.Col))

	if state.Animation != nil {
		a := state.Animation
		result.WriteString(fmt.Sprintf("\nSliding: tile %d (%d,%d)→(%d,%d) %.0f%%",
			a.TileID, a.From.Row, a.From.Col, a.To.Row, a.To.Col, a.T*100))
	}

	if state.Solved {
		result.WriteString("\n\n🎉 SOLVED!")
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

func formatMoveResult(direction string, result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = "✓ Move successful\n"
	} else {
		response = fmt.Sprintf("✗ Move rejected (%s)\n", result.RejectReason)
	}

	// Compact step summary (if available)
	if result.Step != nil {
		s := result.Step
		response += fmt.Sprintf("Step: %s tile=%d (%d,%d)→(%d,%d)\n",
			s.Dir, s.TileID, s.From.Row, s.From.Col, s.To.Row, s.To.Col)
	} else if !result.Success {
		response += rejectionHint(direction, result.RejectReason)
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	response += "\n" + formatSnapshot(result.State)
	return response
}

// rejectionHint explains a rejected move in terms the caller can act on.
func rejectionHint(direction, reason string) string {
	switch reason {
	case "illegal":
		return fmt.Sprintf("No tile can slide '%s' from this position. Check the blank's neighbors.\n", direction)
	case "animating":
		return "A slide is still animating. Retry once it settles.\n"
	case "solved":
		return "The puzzle is already solved. Use reset_game to play again.\n"
	}
	return ""
}

func formatBulkMoveResult(sessionID string, result *service.BulkMoveResult) string {
	var b strings.Builder

	// Session header
	size := 0
	configName := ""
	if result.State != nil {
		size = result.State.Size
		configName = result.State.ConfigName
	}
	b.WriteString(fmt.Sprintf("Session: %s • Config: %s • Board: %dx%d\n",
		sessionID, configName, size, size))

	// Bulk summary
	b.WriteString(fmt.Sprintf("Executed %d/%d moves\n", result.MovesExecuted, result.RequestedMoves))
	b.WriteString(fmt.Sprintf("Blank: (%d,%d) → (%d,%d) | Moves: %d → %d\n",
		result.StartBlank.Row, result.StartBlank.Col,
		result.EndBlank.Row, result.EndBlank.Col,
		result.StartMoves, result.EndMoves))
	if result.Truncated {
		b.WriteString(fmt.Sprintf("Truncated: request exceeded the %d move limit\n", result.Limit))
	}
	if result.StoppedReason != "" {
		b.WriteString(fmt.Sprintf("Stopped: %s\n", result.StoppedReason))
	}

	// Per-step trace
	if len(result.Steps) > 0 {
		b.WriteString("\nSteps (this call):\n")
		for _, s := range result.Steps {
			status := "✗"
			if s.Success {
				status = "✓"
			}
			b.WriteString(fmt.Sprintf("%d. %s tile=%d (%d,%d)→(%d,%d) %s\n",
				s.Idx, s.Dir, s.TileID, s.From.Row, s.From.Col, s.To.Row, s.To.Col, status))
		}
	}

	// Events
	if len(result.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	// Legal follow-up directions from the final position
	if len(result.PossibleMoves) > 0 {
		b.WriteString("\nPossible moves: ")
		b.WriteString(strings.Join(result.PossibleMoves, ","))
		b.WriteString("\n")
	}

	// Full state at the end
	b.WriteString("\n")
	b.WriteString(formatSnapshot(result.State))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Move History (Page %d/%d) - Total (cumulative): %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	if len(history.Moves) == 0 {
		return result + "(no moves recorded)"
	}

	for _, move := range history.Moves {
		result += fmt.Sprintf("%d. %s tile=%d (%d,%d)→(%d,%d)\n",
			move.MoveNumber, move.Direction, move.TileID,
			move.From.Row, move.From.Col, move.To.Row, move.To.Col)
	}

	return result
}
