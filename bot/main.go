// Command bot is a soak tester for the puzzle server. It random-walks legal
// tile slides through the REST API while mirroring the board locally, and
// flags any disagreement between the mirror and the server's snapshots.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Snapshot struct {
	Size           int     `json:"size"`
	Tiles          []int   `json:"tiles"`
	Blank          Cell    `json:"blank"`
	Moves          int     `json:"moves"`
	TotalMoves     int     `json:"total_moves"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Solved         bool    `json:"solved"`
	Message        string  `json:"message"`
	ConfigName     string  `json:"config_name"`
}

type SessionResponse struct {
	ID         string    `json:"id"`
	ConfigName string    `json:"config_name"`
	State      *Snapshot `json:"state"`
}

type StepInfo struct {
	Dir    string `json:"dir"`
	TileID int    `json:"tile_id"`
	From   Cell   `json:"from"`
	To     Cell   `json:"to"`
}

type MoveResponse struct {
	Success      bool      `json:"success"`
	RejectReason string    `json:"reject_reason,omitempty"`
	State        *Snapshot `json:"state"`
	Message      string    `json:"message"`
	Step         *StepInfo `json:"step,omitempty"`
}

type ResetResponse struct {
	Message string    `json:"message"`
	State   *Snapshot `json:"state"`
}

type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(configID string) (*Snapshot, error) {
	var reqBody []byte
	var err error

	if configID != "" {
		reqBody, err = json.Marshal(map[string]string{"config_id": configID})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	return session.State, nil
}

func (c *Client) GetState() (*Snapshot, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/state", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get state failed: %s - %s", resp.Status, string(body))
	}

	var state Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}

	return &state, nil
}

func (c *Client) Move(direction string) (*MoveResponse, error) {
	body, err := json.Marshal(map[string]string{"direction": direction})
	if err != nil {
		return nil, fmt.Errorf("marshal move: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/move", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("execute move: %w", err)
	}
	defer resp.Body.Close()

	var moveResp MoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&moveResp); err != nil {
		return nil, fmt.Errorf("parse move response: %w", err)
	}

	return &moveResp, nil
}

func (c *Client) Reset() (*Snapshot, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/reset", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	defer resp.Body.Close()

	var resetResp ResetResponse
	if err := json.NewDecoder(resp.Body).Decode(&resetResp); err != nil {
		return nil, fmt.Errorf("parse reset response: %w", err)
	}
	if resetResp.State == nil {
		return nil, fmt.Errorf("reset failed: %s", resetResp.Message)
	}

	return resetResp.State, nil
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Puzzle server URL")
	configID := flag.String("config", "", "Puzzle configuration id (classic_4x4, pocket_3x3, expert_5x5)")
	continueSession := flag.String("continue", "", "Reuse an existing session by ID")
	maxMoves := flag.Int("max-moves", 2000, "Number of moves to walk")
	seed := flag.Int64("seed", 0, "Walk seed (0 = time-based)")
	verbose := flag.Bool("v", false, "Verbose output")
	delayMs := flag.Int("delay", 0, "Delay between moves in milliseconds (0 = no delay)")
	flag.Parse()

	log.Printf("Connecting to puzzle server at %s", *serverURL)
	client := NewClient(*serverURL)

	var state *Snapshot
	var err error

	// Check for saved session ID
	sessionFile := ".session"
	savedSessionID := ""

	if *continueSession != "" {
		savedSessionID = *continueSession
	} else {
		if data, err := os.ReadFile(sessionFile); err == nil {
			savedSessionID = string(bytes.TrimSpace(data))
		}
	}

	if savedSessionID != "" {
		client.sessionID = savedSessionID
		log.Printf("🔄 Reusing session: %s", client.sessionID)
		state, err = client.GetState()
		if err != nil {
			log.Printf("⚠️  Failed to reuse session (may be expired): %v", err)
			log.Printf("Creating new session...")
			savedSessionID = ""
		}
	}

	if savedSessionID == "" {
		state, err = client.CreateSession(*configID)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		log.Printf("✨ Session created: %s (config: %s)", client.sessionID, state.ConfigName)

		if err := os.WriteFile(sessionFile, []byte(client.sessionID), 0644); err != nil {
			log.Printf("Warning: Failed to save session ID: %v", err)
		}
	}

	// Start each run from a fresh shuffle
	state, err = client.Reset()
	if err != nil {
		log.Fatalf("Failed to reset session: %v", err)
	}
	log.Printf("Board: %dx%d, blank at (%d,%d)", state.Size, state.Size, state.Blank.Row, state.Blank.Col)

	walker := NewWalker(state, *seed)

	moveCount := 0
	rejected := 0
	mismatches := 0
	solvedRuns := 0

	for moveCount < *maxMoves {
		dir := walker.NextMove()

		resp, err := client.Move(dir)
		if err != nil {
			log.Fatalf("Move request failed after %d moves: %v", moveCount, err)
		}

		if !resp.Success {
			switch resp.RejectReason {
			case "animating":
				// The slide from the previous move is still in flight.
				time.Sleep(25 * time.Millisecond)
				continue
			case "solved":
				// Random walks do land on the goal occasionally on small boards.
				solvedRuns++
				log.Printf("🎉 Board solved after %d moves, reshuffling", moveCount)
				state, err = client.Reset()
				if err != nil {
					log.Fatalf("Failed to reset after solve: %v", err)
				}
				walker.Resync(state)
				continue
			case "illegal":
				// The mirror said this slide was legal; the server disagrees.
				mismatches++
				log.Printf("❌ Mismatch at move %d: server rejected %q as illegal, mirror blank (%d,%d)",
					moveCount, dir, walker.Blank().Row, walker.Blank().Col)
				state, err = client.GetState()
				if err != nil {
					log.Fatalf("Failed to refetch state: %v", err)
				}
				walker.Resync(state)
				continue
			default:
				rejected++
				if *verbose {
					log.Printf("Move %q rejected: %s", dir, resp.Message)
				}
				continue
			}
		}

		walker.Apply(dir)
		moveCount++

		if resp.State != nil && !walker.Matches(resp.State) {
			mismatches++
			log.Printf("❌ Mismatch at move %d: mirror and server boards diverged after %q", moveCount, dir)
			walker.Resync(resp.State)
		}

		if resp.State != nil && resp.State.Solved {
			solvedRuns++
			log.Printf("🎉 Walk solved the board in %d session moves", resp.State.Moves)
			state, err = client.Reset()
			if err != nil {
				log.Fatalf("Failed to reset after solve: %v", err)
			}
			walker.Resync(state)
		}

		if *verbose && moveCount%100 == 0 {
			log.Printf("Progress: %d/%d moves, mismatches=%d", moveCount, *maxMoves, mismatches)
		}

		// Periodic full-state cross-check through the state endpoint.
		if moveCount%250 == 0 {
			state, err = client.GetState()
			if err != nil {
				log.Fatalf("Failed to fetch state: %v", err)
			}
			if !walker.Matches(state) {
				mismatches++
				log.Printf("❌ Mismatch on periodic state check at move %d", moveCount)
				walker.Resync(state)
			}
		}

		if *delayMs > 0 {
			time.Sleep(time.Duration(*delayMs) * time.Millisecond)
		}
	}

	log.Printf("\nWalk complete: moves=%d rejected=%d solves=%d mismatches=%d",
		moveCount, rejected, solvedRuns, mismatches)
	log.Printf("Session: %s", client.sessionID)

	if mismatches > 0 {
		log.Printf("❌ Server and mirror disagreed %d time(s)", mismatches)
		os.Exit(1)
	}
	log.Printf("✅ Server state stayed consistent with the local mirror")
}
