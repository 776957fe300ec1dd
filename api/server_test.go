package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/tilekit/sliding-puzzle/game/engine"
	"github.com/tilekit/sliding-puzzle/game/service"
	"github.com/tilekit/sliding-puzzle/transport/websocket"
)

// MockGameService implements service.GameService for testing
type MockGameService struct {
	// Session Management
	CreateSessionFunc func(ctx context.Context, configName string) (*service.SessionInfo, error)
	GetSessionFunc    func(ctx context.Context, sessionID string) (*service.SessionInfo, error)
	ListSessionsFunc  func(ctx context.Context) ([]*service.SessionInfo, error)
	DeleteSessionFunc func(ctx context.Context, sessionID string) error

	// Game Operations
	MoveFunc     func(ctx context.Context, sessionID, direction string, reset bool) (*service.MoveResult, error)
	BulkMoveFunc func(ctx context.Context, sessionID string, moves []string, reset bool) (*service.BulkMoveResult, error)
	ResetFunc    func(ctx context.Context, sessionID string) (*engine.Snapshot, error)

	// Game State
	GetGameStateFunc   func(ctx context.Context, sessionID string) (*engine.Snapshot, error)
	GetMoveHistoryFunc func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error)

	// Configuration
	ListConfigsFunc func(ctx context.Context) ([]*service.ConfigInfo, error)
	LoadConfigFunc  func(ctx context.Context, configName string) (*engine.PuzzleConfig, error)
	SaveConfigFunc  func(ctx context.Context, configName string, config *engine.PuzzleConfig) error
}

// Session Management
func (m *MockGameService) CreateSession(ctx context.Context, configName string) (*service.SessionInfo, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, configName)
	}
	return &service.SessionInfo{
		ID:         "test-session",
		ConfigName: configName,
		CreatedAt:  time.Now(),
	}, nil
}

func (m *MockGameService) GetSession(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, sessionID)
	}
	return &service.SessionInfo{
		ID:         sessionID,
		ConfigName: "test-config",
		CreatedAt:  time.Now(),
	}, nil
}

func (m *MockGameService) ListSessions(ctx context.Context) ([]*service.SessionInfo, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx)
	}
	return []*service.SessionInfo{}, nil
}

func (m *MockGameService) DeleteSession(ctx context.Context, sessionID string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, sessionID)
	}
	return nil
}

// Game Operations
func (m *MockGameService) Move(ctx context.Context, sessionID, direction string, reset bool) (*service.MoveResult, error) {
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, sessionID, direction, reset)
	}
	return &service.MoveResult{
		Success: true,
		State:   &engine.Snapshot{},
	}, nil
}

func (m *MockGameService) BulkMove(ctx context.Context, sessionID string, moves []string, reset bool) (*service.BulkMoveResult, error) {
	if m.BulkMoveFunc != nil {
		return m.BulkMoveFunc(ctx, sessionID, moves, reset)
	}
	return &service.BulkMoveResult{
		Success: true,
		State:   &engine.Snapshot{},
	}, nil
}

func (m *MockGameService) Reset(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, sessionID)
	}
	return &engine.Snapshot{}, nil
}

// Game State
func (m *MockGameService) GetGameState(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
	if m.GetGameStateFunc != nil {
		return m.GetGameStateFunc(ctx, sessionID)
	}
	return &engine.Snapshot{}, nil
}

func (m *MockGameService) GetMoveHistory(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
	if m.GetMoveHistoryFunc != nil {
		return m.GetMoveHistoryFunc(ctx, sessionID, opts)
	}
	return &service.HistoryResponse{
		Moves:      []engine.MoveHistoryEntry{},
		TotalMoves: 0,
		Page:       opts.Page,
		PageSize:   opts.Limit,
		TotalPages: 1,
	}, nil
}

// Configuration
func (m *MockGameService) ListConfigs(ctx context.Context) ([]*service.ConfigInfo, error) {
	if m.ListConfigsFunc != nil {
		return m.ListConfigsFunc(ctx)
	}
	return []*service.ConfigInfo{}, nil
}

func (m *MockGameService) LoadConfig(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
	if m.LoadConfigFunc != nil {
		return m.LoadConfigFunc(ctx, configName)
	}
	return &engine.PuzzleConfig{
		Name:        configName,
		Description: "Test config",
	}, nil
}

func (m *MockGameService) SaveConfig(ctx context.Context, configName string, config *engine.PuzzleConfig) error {
	if m.SaveConfigFunc != nil {
		return m.SaveConfigFunc(ctx, configName, config)
	}
	return nil
}

// Test helpers
func setupTestServer(mockService *MockGameService) *Server {
	hub := websocket.NewHub()
	go hub.Run()
	return NewServer(mockService, hub)
}

func makeRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	if err := json.Unmarshal(w.Body.Bytes(), target); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
}

// Session Management Tests

func TestCreateSession(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]string
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "Create session with default config",
			requestBody: nil,
			setupMock: func(m *MockGameService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					return &service.SessionInfo{
						ID:             "sess-123",
						ConfigName:     "classic_4x4",
						CreatedAt:      time.Now(),
						LastAccessedAt: time.Now(),
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.SessionInfo
				parseResponse(t, w, &resp)
				if resp.ID != "sess-123" {
					t.Errorf("Expected session ID sess-123, got %s", resp.ID)
				}
			},
		},
		{
			name:        "Create session with specific config",
			requestBody: map[string]string{"config_name": "pocket_3x3"},
			setupMock: func(m *MockGameService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					if configName != "pocket_3x3" {
						t.Errorf("Expected config name 'pocket_3x3', got %s", configName)
					}
					return &service.SessionInfo{
						ID:         "sess-456",
						ConfigName: configName,
						CreatedAt:  time.Now(),
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.SessionInfo
				parseResponse(t, w, &resp)
				if resp.ConfigName != "pocket_3x3" {
					t.Errorf("Expected config name 'pocket_3x3', got %s", resp.ConfigName)
				}
			},
		},
		{
			name:        "Handle service error",
			requestBody: nil,
			setupMock: func(m *MockGameService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					return nil, fmt.Errorf("service error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["error"] != "service error" {
					t.Errorf("Expected error message 'service error', got %s", resp["error"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("POST", "/api/sessions", tt.requestBody)

			server.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestListSessions(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "List multiple sessions",
			setupMock: func(m *MockGameService) {
				m.ListSessionsFunc = func(ctx context.Context) ([]*service.SessionInfo, error) {
					return []*service.SessionInfo{
						{ID: "sess-1", ConfigName: "pocket_3x3"},
						{ID: "sess-2", ConfigName: "expert_5x5"},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				parseResponse(t, w, &resp)
				if resp["count"].(float64) != 2 {
					t.Errorf("Expected count 2, got %v", resp["count"])
				}
				sessions := resp["sessions"].([]interface{})
				if len(sessions) != 2 {
					t.Errorf("Expected 2 sessions, got %d", len(sessions))
				}
			},
		},
		{
			name: "Handle empty session list",
			setupMock: func(m *MockGameService) {
				m.ListSessionsFunc = func(ctx context.Context) ([]*service.SessionInfo, error) {
					return []*service.SessionInfo{}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				parseResponse(t, w, &resp)
				if resp["count"].(float64) != 0 {
					t.Errorf("Expected count 0, got %v", resp["count"])
				}
			},
		},
		{
			name: "Handle service error",
			setupMock: func(m *MockGameService) {
				m.ListSessionsFunc = func(ctx context.Context) ([]*service.SessionInfo, error) {
					return nil, fmt.Errorf("manager error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["error"] != "manager error" {
					t.Errorf("Expected error 'manager error', got %s", resp["error"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("GET", "/api/sessions", nil)

			server.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestGetSession(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:      "Get existing session",
			sessionID: "sess-123",
			setupMock: func(m *MockGameService) {
				m.GetSessionFunc = func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
					if sessionID != "sess-123" {
						return nil, fmt.Errorf("session not found")
					}
					return &service.SessionInfo{
						ID:         sessionID,
						ConfigName: "test-config",
						CreatedAt:  time.Now(),
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.SessionInfo
				parseResponse(t, w, &resp)
				if resp.ID != "sess-123" {
					t.Errorf("Expected session ID sess-123, got %s", resp.ID)
				}
			},
		},
		{
			name:      "Session not found",
			sessionID: "nonexistent",
			setupMock: func(m *MockGameService) {
				m.GetSessionFunc = func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["error"] != "session not found" {
					t.Errorf("Expected error 'session not found', got %s", resp["error"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("GET", "/api/sessions/"+tt.sessionID, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.sessionID})

			server.handleGetSession(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestDeleteSession(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:      "Delete existing session",
			sessionID: "sess-123",
			setupMock: func(m *MockGameService) {
				m.DeleteSessionFunc = func(ctx context.Context, sessionID string) error {
					if sessionID != "sess-123" {
						return fmt.Errorf("session not found")
					}
					return nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["message"] != "Session sess-123 deleted" {
					t.Errorf("Unexpected message: %s", resp["message"])
				}
			},
		},
		{
			name:      "Delete non-existent session",
			sessionID: "nonexistent",
			setupMock: func(m *MockGameService) {
				m.DeleteSessionFunc = func(ctx context.Context, sessionID string) error {
					return fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["error"] != "session not found" {
					t.Errorf("Expected error 'session not found', got %s", resp["error"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("DELETE", "/api/sessions/"+tt.sessionID, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.sessionID})

			server.handleDeleteSession(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

// Game Operations Tests

func TestMove(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		requestBody    map[string]interface{}
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "Valid move up",
			sessionID:   "sess-123",
			requestBody: map[string]interface{}{"direction": "up"},
			setupMock: func(m *MockGameService) {
				m.MoveFunc = func(ctx context.Context, sessionID, direction string, reset bool) (*service.MoveResult, error) {
					if direction != "up" {
						t.Errorf("Expected direction 'up', got %s", direction)
					}
					return &service.MoveResult{
						Success: true,
						State: &engine.Snapshot{
							Size:  3,
							Tiles: []int{1, 2, 3, 4, 5, 6, 7, 0, 8},
							Blank: engine.Cell{Row: 2, Col: 1},
							Moves: 7,
						},
						Step: &service.StepInfo{
							Dir:    "up",
							TileID: 5,
							From:   engine.Cell{Row: 2, Col: 1},
							To:     engine.Cell{Row: 1, Col: 1},
						},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.MoveResult
				parseResponse(t, w, &resp)
				if !resp.Success {
					t.Error("Expected success to be true")
				}
				if resp.State.Moves != 7 {
					t.Errorf("Expected move count 7, got %d", resp.State.Moves)
				}
				if resp.Step == nil || resp.Step.TileID != 5 {
					t.Errorf("Expected step for tile 5, got %+v", resp.Step)
				}
			},
		},
		{
			name:        "Illegal move carries reject reason",
			sessionID:   "sess-123",
			requestBody: map[string]interface{}{"direction": "down"},
			setupMock: func(m *MockGameService) {
				m.MoveFunc = func(ctx context.Context, sessionID, direction string, reset bool) (*service.MoveResult, error) {
					return &service.MoveResult{
						Success:      false,
						RejectReason: "illegal",
						State: &engine.Snapshot{
							Size:  3,
							Blank: engine.Cell{Row: 2, Col: 2},
							Moves: 7,
						},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.MoveResult
				parseResponse(t, w, &resp)
				if resp.Success {
					t.Error("Expected success to be false")
				}
				if resp.RejectReason != "illegal" {
					t.Errorf("Expected reject reason 'illegal', got %s", resp.RejectReason)
				}
			},
		},
		{
			name:        "Move with reset",
			sessionID:   "sess-123",
			requestBody: map[string]interface{}{"direction": "right", "reset": true},
			setupMock: func(m *MockGameService) {
				m.MoveFunc = func(ctx context.Context, sessionID, direction string, reset bool) (*service.MoveResult, error) {
					if !reset {
						t.Error("Expected reset to be true")
					}
					return &service.MoveResult{
						Success: true,
						State: &engine.Snapshot{
							Size:  3,
							Moves: 1,
						},
						Step: &service.StepInfo{Dir: "right", TileID: 2},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.MoveResult
				parseResponse(t, w, &resp)
				if resp.State.Moves != 1 {
					t.Errorf("Expected move count 1 after reset, got %d", resp.State.Moves)
				}
			},
		},
		{
			name:        "Invalid request body",
			sessionID:   "sess-123",
			requestBody: map[string]interface{}{"invalid": "field"},
			setupMock: func(m *MockGameService) {
				m.MoveFunc = func(ctx context.Context, sessionID, direction string, reset bool) (*service.MoveResult, error) {
					// Empty direction should cause an error
					if direction == "" {
						return nil, fmt.Errorf("invalid direction")
					}
					return &service.MoveResult{Success: true, State: &engine.Snapshot{}}, nil
				}
			},
			expectedStatus: http.StatusInternalServerError,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["error"] != "invalid direction" {
					t.Errorf("Expected error 'invalid direction', got %s", resp["error"])
				}
			},
		},
		{
			name:        "Session not found",
			sessionID:   "nonexistent",
			requestBody: map[string]interface{}{"direction": "up"},
			setupMock: func(m *MockGameService) {
				m.MoveFunc = func(ctx context.Context, sessionID, direction string, reset bool) (*service.MoveResult, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["error"] != "session not found" {
					t.Errorf("Expected error 'session not found', got %s", resp["error"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("POST", "/api/sessions/"+tt.sessionID+"/move", tt.requestBody)
			req = mux.SetURLVars(req, map[string]string{"id": tt.sessionID})

			server.handleMove(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestBulkMove(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		requestBody    map[string]interface{}
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "Multiple valid moves",
			sessionID:   "sess-123",
			requestBody: map[string]interface{}{"moves": []string{"up", "right", "down"}},
			setupMock: func(m *MockGameService) {
				m.BulkMoveFunc = func(ctx context.Context, sessionID string, moves []string, reset bool) (*service.BulkMoveResult, error) {
					if len(moves) != 3 {
						t.Errorf("Expected 3 moves, got %d", len(moves))
					}
					return &service.BulkMoveResult{
						Success:        true,
						State:          &engine.Snapshot{Size: 3, Moves: 3},
						MovesExecuted:  3,
						RequestedMoves: 3,
						EndBlank:       engine.Cell{Row: 1, Col: 2},
						EndMoves:       3,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.BulkMoveResult
				parseResponse(t, w, &resp)
				if resp.MovesExecuted != 3 {
					t.Errorf("Expected 3 moves executed, got %d", resp.MovesExecuted)
				}
			},
		},
		{
			name:        "Stops on illegal move",
			sessionID:   "sess-123",
			requestBody: map[string]interface{}{"moves": []string{"up", "left"}},
			setupMock: func(m *MockGameService) {
				m.BulkMoveFunc = func(ctx context.Context, sessionID string, moves []string, reset bool) (*service.BulkMoveResult, error) {
					return &service.BulkMoveResult{
						Success:        false,
						State:          &engine.Snapshot{Size: 3, Moves: 1},
						MovesExecuted:  1,
						RequestedMoves: 2,
						StoppedReason:  "illegal move 'left' at position 2",
						StopReasonCode: "illegal",
						StoppedOnMove:  2,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.BulkMoveResult
				parseResponse(t, w, &resp)
				if resp.StopReasonCode != "illegal" {
					t.Errorf("Expected stop code 'illegal', got %s", resp.StopReasonCode)
				}
				if resp.StoppedOnMove != 2 {
					t.Errorf("Expected stopped on move 2, got %d", resp.StoppedOnMove)
				}
			},
		},
		{
			name:        "Bulk move with reset",
			sessionID:   "sess-123",
			requestBody: map[string]interface{}{"moves": []string{"up", "up"}, "reset": true},
			setupMock: func(m *MockGameService) {
				m.BulkMoveFunc = func(ctx context.Context, sessionID string, moves []string, reset bool) (*service.BulkMoveResult, error) {
					if !reset {
						t.Error("Expected reset to be true")
					}
					return &service.BulkMoveResult{
						Success:        true,
						State:          &engine.Snapshot{Size: 3, Moves: 2},
						MovesExecuted:  2,
						RequestedMoves: 2,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.BulkMoveResult
				parseResponse(t, w, &resp)
				if resp.State.Moves != 2 {
					t.Errorf("Expected move count 2, got %d", resp.State.Moves)
				}
			},
		},
		{
			name:        "Empty moves array",
			sessionID:   "sess-123",
			requestBody: map[string]interface{}{"moves": []string{}},
			setupMock: func(m *MockGameService) {
				m.BulkMoveFunc = func(ctx context.Context, sessionID string, moves []string, reset bool) (*service.BulkMoveResult, error) {
					return &service.BulkMoveResult{
						Success: true,
						State:   &engine.Snapshot{},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.BulkMoveResult
				parseResponse(t, w, &resp)
				if resp.MovesExecuted != 0 {
					t.Errorf("Expected 0 moves executed for empty array, got %d", resp.MovesExecuted)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("POST", "/api/sessions/"+tt.sessionID+"/bulk-move", tt.requestBody)
			req = mux.SetURLVars(req, map[string]string{"id": tt.sessionID})

			server.handleBulkMove(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestReset(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:      "Reset existing session",
			sessionID: "sess-123",
			setupMock: func(m *MockGameService) {
				m.ResetFunc = func(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
					return &engine.Snapshot{
						Size:       3,
						Tiles:      []int{2, 1, 3, 4, 5, 6, 7, 8, 0},
						Blank:      engine.Cell{Row: 2, Col: 2},
						Moves:      0,
						TotalMoves: 0,
						Solved:     false,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				parseResponse(t, w, &resp)
				if resp["message"] != "Board reshuffled" {
					t.Errorf("Expected reshuffle message, got %s", resp["message"])
				}
				state := resp["state"].(map[string]interface{})
				if state["moves"].(float64) != 0 {
					t.Error("Expected move count to be reset to 0")
				}
			},
		},
		{
			name:      "Reset non-existent session",
			sessionID: "nonexistent",
			setupMock: func(m *MockGameService) {
				m.ResetFunc = func(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["error"] != "session not found" {
					t.Errorf("Expected error 'session not found', got %s", resp["error"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("POST", "/api/sessions/"+tt.sessionID+"/reset", nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.sessionID})

			server.handleReset(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestGetHistory(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		queryParams    string
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "Default pagination",
			sessionID:   "sess-123",
			queryParams: "",
			setupMock: func(m *MockGameService) {
				m.GetMoveHistoryFunc = func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
					if opts.Page != 1 || opts.Limit != 20 {
						t.Errorf("Expected default page=1, limit=20, got page=%d, limit=%d", opts.Page, opts.Limit)
					}
					return &service.HistoryResponse{
						Moves: []engine.MoveHistoryEntry{
							{Direction: "up", TileID: 5},
							{Direction: "right", TileID: 2},
						},
						TotalMoves: 5,
						Page:       1,
						PageSize:   20,
						TotalPages: 1,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.HistoryResponse
				parseResponse(t, w, &resp)
				if resp.PageSize != 20 {
					t.Errorf("Expected page size 20, got %d", resp.PageSize)
				}
			},
		},
		{
			name:        "Custom pagination parameters",
			sessionID:   "sess-123",
			queryParams: "?page=2&limit=10&order=asc",
			setupMock: func(m *MockGameService) {
				m.GetMoveHistoryFunc = func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
					if opts.Page != 2 || opts.Limit != 10 || opts.Order != "asc" {
						t.Errorf("Expected page=2, limit=10, order=asc, got page=%d, limit=%d, order=%s",
							opts.Page, opts.Limit, opts.Order)
					}
					return &service.HistoryResponse{
						Page:     2,
						PageSize: 10,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.HistoryResponse
				parseResponse(t, w, &resp)
				if resp.Page != 2 || resp.PageSize != 10 {
					t.Errorf("Expected page 2 with size 10, got page %d with size %d",
						resp.Page, resp.PageSize)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/sessions/"+tt.sessionID+"/history"+tt.queryParams, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.sessionID})

			server.handleGetHistory(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestGetGameState(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:      "Get existing game state",
			sessionID: "sess-123",
			setupMock: func(m *MockGameService) {
				m.GetGameStateFunc = func(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
					return &engine.Snapshot{
						Size:           4,
						Blank:          engine.Cell{Row: 3, Col: 1},
						Moves:          25,
						TotalMoves:     40,
						ElapsedSeconds: 61.5,
						Solved:         false,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp engine.Snapshot
				parseResponse(t, w, &resp)
				if resp.Moves != 25 || resp.Size != 4 {
					t.Errorf("Expected moves=25, size=4, got moves=%d, size=%d", resp.Moves, resp.Size)
				}
			},
		},
		{
			name:      "Session not found",
			sessionID: "nonexistent",
			setupMock: func(m *MockGameService) {
				m.GetGameStateFunc = func(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["error"] != "session not found" {
					t.Errorf("Expected error 'session not found', got %s", resp["error"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("GET", "/api/sessions/"+tt.sessionID+"/state", nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.sessionID})

			server.handleGetGameState(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestListConfigs(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "List available configs",
			setupMock: func(m *MockGameService) {
				m.ListConfigsFunc = func(ctx context.Context) ([]*service.ConfigInfo, error) {
					return []*service.ConfigInfo{
						{Name: "Pocket 3x3", ConfigID: "pocket_3x3", GridSize: 3},
						{Name: "Expert 5x5", ConfigID: "expert_5x5", GridSize: 5},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp []*service.ConfigInfo
				parseResponse(t, w, &resp)
				if len(resp) != 2 {
					t.Errorf("Expected 2 configs, got %d", len(resp))
				}
			},
		},
		{
			name: "Handle service error",
			setupMock: func(m *MockGameService) {
				m.ListConfigsFunc = func(ctx context.Context) ([]*service.ConfigInfo, error) {
					return nil, fmt.Errorf("config error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["error"] != "config error" {
					t.Errorf("Expected error 'config error', got %s", resp["error"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("GET", "/api/configs", nil)

			server.handleListConfigs(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name           string
		configName     string
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:       "Get existing config",
			configName: "pocket_3x3",
			setupMock: func(m *MockGameService) {
				m.LoadConfigFunc = func(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
					if configName != "pocket_3x3" {
						return nil, fmt.Errorf("config not found")
					}
					return &engine.PuzzleConfig{
						Name:        "Pocket 3x3",
						Description: "Quick 3x3 board",
						GridSize:    3,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp engine.PuzzleConfig
				parseResponse(t, w, &resp)
				if resp.GridSize != 3 {
					t.Errorf("Expected grid size 3, got %d", resp.GridSize)
				}
			},
		},
		{
			name:       "Strip .json extension",
			configName: "classic_4x4.json",
			setupMock: func(m *MockGameService) {
				m.LoadConfigFunc = func(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
					if configName != "classic_4x4" {
						t.Errorf("Expected config name 'classic_4x4' (without .json), got %s", configName)
					}
					return &engine.PuzzleConfig{Name: "Classic 4x4"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "Config not found",
			configName: "nonexistent",
			setupMock: func(m *MockGameService) {
				m.LoadConfigFunc = func(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
					return nil, fmt.Errorf("config not found")
				}
			},
			expectedStatus: http.StatusNotFound,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["error"] != "config not found" {
					t.Errorf("Expected error 'config not found', got %s", resp["error"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("GET", "/api/configs/"+tt.configName, nil)
			req = mux.SetURLVars(req, map[string]string{"name": tt.configName})

			server.handleGetConfig(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestCreateConfig(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "Save valid config",
			requestBody: map[string]interface{}{
				"name":          "custom_4x4",
				"description":   "Custom board",
				"grid_size":     4,
				"shuffle_moves": 150,
				"animation_ms":  120,
			},
			setupMock: func(m *MockGameService) {
				m.SaveConfigFunc = func(ctx context.Context, configName string, config *engine.PuzzleConfig) error {
					if configName != "custom_4x4" {
						t.Errorf("Expected config name 'custom_4x4', got %s", configName)
					}
					if config.GridSize != 4 {
						t.Errorf("Expected grid size 4, got %d", config.GridSize)
					}
					return nil
				}
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				parseResponse(t, w, &resp)
				if resp["config_id"] != "custom_4x4" {
					t.Errorf("Expected config_id 'custom_4x4', got %v", resp["config_id"])
				}
			},
		},
		{
			name:           "Missing config name",
			requestBody:    map[string]interface{}{"grid_size": 4},
			setupMock:      nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Validation failure surfaces as error",
			requestBody: map[string]interface{}{
				"name":      "bad",
				"grid_size": 2,
			},
			setupMock: func(m *MockGameService) {
				m.SaveConfigFunc = func(ctx context.Context, configName string, config *engine.PuzzleConfig) error {
					return fmt.Errorf("invalid config: grid_size must be at least 3")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("POST", "/api/configs", tt.requestBody)

			server.handleCreateConfig(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	server := setupTestServer(&MockGameService{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/health", nil)

	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	parseResponse(t, w, &resp)
	if resp["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %s", resp["status"])
	}
}

func TestWebSocket(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    string
		setupMock      func(*MockGameService)
		expectedStatus int
	}{
		{
			name:           "Missing session parameter",
			queryParams:    "",
			setupMock:      nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Invalid session",
			queryParams: "?session=invalid",
			setupMock: func(m *MockGameService) {
				m.GetSessionFunc = func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "Valid session",
			queryParams: "?session=sess-123",
			setupMock: func(m *MockGameService) {
				m.GetSessionFunc = func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
					return &service.SessionInfo{
						ID:         sessionID,
						ConfigName: "test",
					}, nil
				}
			},
			expectedStatus: http.StatusSwitchingProtocols,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/ws"+tt.queryParams, nil)

			// For WebSocket upgrade test, we need proper headers
			if tt.expectedStatus == http.StatusSwitchingProtocols {
				req.Header.Set("Upgrade", "websocket")
				req.Header.Set("Connection", "Upgrade")
				req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
				req.Header.Set("Sec-WebSocket-Version", "13")
			}

			server.handleWebSocket(w, req)

			// WebSocket upgrade fails in unit tests due to httptest.ResponseRecorder limitations
			if tt.expectedStatus == http.StatusSwitchingProtocols {
				// Can't test actual WebSocket upgrade with httptest.ResponseRecorder
				// It doesn't implement http.Hijacker interface
				// We accept 500 error in this case as it indicates the upgrade was attempted
				if w.Code == http.StatusInternalServerError {
					return
				}
			}

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}
