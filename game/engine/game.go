package engine

import (
	"fmt"
	"time"
)

// Game provides the main interface for session operations. It is the only
// surface the rendering/input shell and the service layer call.
type Game interface {
	// Move requests; both report whether the move was accepted
	RequestMove(direction string) bool
	RequestMoveAt(x, y float64) bool

	// Loop driving
	Tick(dt float64)
	Reset()

	// Read-only views
	Snapshot() *Snapshot
	Stats() SessionStats
	Grid() *Grid
	IsSolved() bool
	LegalMoves() []string
	Message() string

	// History
	MoveHistory() []MoveHistoryEntry
	CurrentMoves() []MoveHistoryEntry

	// Configuration and geometry
	Config() *PuzzleConfig
	AnimationDuration() float64
	SetCellLocator(locator CellLocator)
}

// PuzzleGame implements the Game interface: one session owning a grid, a
// shuffler, an animator and the session counters. It is single-owner and
// unsynchronized; callers drive it from one loop.
type PuzzleGame struct {
	config   *PuzzleConfig
	grid     *Grid
	shuffler *Shuffler
	animator *Animator
	router   *InputRouter
	stats    SessionStats
	message  string

	history      []MoveHistoryEntry
	totalMoves   int
	currentMoves []MoveHistoryEntry
}

// NewGame creates a session from the provided configuration, shuffled and
// ready to play.
func NewGame(config *PuzzleConfig) (*PuzzleGame, error) {
	return newGame(config, NewShuffler())
}

// NewSeededGame creates a session whose shuffle walk is reproducible. Used
// by tests and the analyze tooling.
func NewSeededGame(config *PuzzleConfig, seed int64) (*PuzzleGame, error) {
	return newGame(config, NewSeededShuffler(seed))
}

func newGame(config *PuzzleConfig, shuffler *Shuffler) (*PuzzleGame, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := ValidatePuzzleConfig(config); err != nil {
		return nil, err
	}

	grid, err := NewSolvedGrid(config.GridSize)
	if err != nil {
		return nil, err
	}

	g := &PuzzleGame{
		config:   config,
		grid:     grid,
		shuffler: shuffler,
		animator: NewAnimator(time.Duration(config.animationMs()) * time.Millisecond),
		router:   NewInputRouter(nil),
		message:  config.Messages.Welcome,
	}
	g.shuffler.Shuffle(g.grid, config.ShuffleMoves)
	return g, nil
}

// RequestMove attempts a directional move; direction names the way the tile
// slides. It returns false while the session is solved (surfacing the
// already-solved message), while a slide is animating, or when the move is
// illegal; an accepted move mutates
// the grid, bumps the counter, starts the slide animation and re-checks the
// win condition.
func (g *PuzzleGame) RequestMove(direction string) bool {
	if g.stats.Solved {
		g.message = g.config.Messages.AlreadySolved
		return false
	}
	if g.animator.Busy() {
		return false
	}
	dir, ok := g.router.RouteDirection(g.grid, direction)
	if !ok {
		return false
	}
	return g.apply(dir)
}

// RequestMoveAt attempts a move from pointer coordinates, using the cell
// geometry installed via SetCellLocator. Same acceptance rules as
// RequestMove.
func (g *PuzzleGame) RequestMoveAt(x, y float64) bool {
	if g.stats.Solved {
		g.message = g.config.Messages.AlreadySolved
		return false
	}
	if g.animator.Busy() {
		return false
	}
	dir, ok := g.router.RoutePointer(g.grid, x, y)
	if !ok {
		return false
	}
	return g.apply(dir)
}

// apply performs the logical move; gridDir is already in the grid's
// blank-motion convention. Win detection happens here, on the logical
// state, independent of animation completion.
func (g *PuzzleGame) apply(gridDir string) bool {
	rec, err := g.grid.Apply(gridDir)
	if err != nil {
		return false
	}

	g.stats.Moves++
	// History records the direction the tile slid, matching the input side.
	g.addMoveToHistory(OppositeDirection(gridDir), rec)

	// Cannot be busy here; the request gate checked already.
	if err := g.animator.Start(rec.TileID, rec.From, rec.To); err != nil {
		panic(err)
	}

	if g.grid.IsSolved() {
		g.stats.Solved = true
		g.message = fmt.Sprintf(g.config.Messages.Solved, g.stats.Moves)
	} else {
		g.message = fmt.Sprintf(g.config.Messages.MoveApplied, g.stats.Moves)
	}
	return true
}

// Tick advances the animation and, while the puzzle is unsolved, the
// elapsed-time counter. dt is in seconds.
func (g *PuzzleGame) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	g.animator.Advance(dt)
	if !g.stats.Solved {
		g.stats.ElapsedSeconds += dt
	}
}

// Reset reshuffles the grid, zeroes the session stats and discards any
// in-flight animation. Cumulative move history survives; the current
// segment starts over.
func (g *PuzzleGame) Reset() {
	grid, err := NewSolvedGrid(g.config.GridSize)
	if err != nil {
		// Size was validated at construction.
		panic(err)
	}
	g.grid = grid
	g.shuffler.Shuffle(g.grid, g.config.ShuffleMoves)
	g.animator.Cancel()
	g.stats = SessionStats{}
	g.message = g.config.Messages.Welcome
	g.currentMoves = nil
}

// Snapshot returns a read-only view of the session for rendering and
// transports.
func (g *PuzzleGame) Snapshot() *Snapshot {
	snap := &Snapshot{
		Size:           g.grid.Size(),
		Tiles:          g.grid.Tiles(),
		Blank:          g.grid.BlankPosition(),
		Moves:          g.stats.Moves,
		TotalMoves:     g.totalMoves,
		ElapsedSeconds: g.stats.ElapsedSeconds,
		Solved:         g.stats.Solved,
		Message:        g.message,
		ConfigName:     g.config.Name,
	}

	if anim, ok := g.animator.Current(); ok {
		dx, dy, _ := g.animator.Offset()
		snap.Animation = &AnimationView{
			TileID: anim.TileID,
			From:   anim.From,
			To:     anim.To,
			T:      anim.T,
			DX:     dx,
			DY:     dy,
		}
	}

	return snap
}

// Stats returns the current session counters.
func (g *PuzzleGame) Stats() SessionStats {
	return g.stats
}

// Grid returns the live grid. Callers outside the engine treat it as
// read-only; Snapshot is the copy-safe view.
func (g *PuzzleGame) Grid() *Grid {
	return g.grid
}

// IsSolved reports whether the session has been won.
func (g *PuzzleGame) IsSolved() bool {
	return g.stats.Solved
}

// LegalMoves returns the directions currently available on the grid.
func (g *PuzzleGame) LegalMoves() []string {
	return g.grid.LegalMoves()
}

// Message returns the latest user-facing status line.
func (g *PuzzleGame) Message() string {
	return g.message
}

// MoveHistory returns the cumulative history across resets.
func (g *PuzzleGame) MoveHistory() []MoveHistoryEntry {
	return g.history
}

// CurrentMoves returns the moves made since the last reset.
func (g *PuzzleGame) CurrentMoves() []MoveHistoryEntry {
	return g.currentMoves
}

// Config returns the session configuration.
func (g *PuzzleGame) Config() *PuzzleConfig {
	return g.config
}

// AnimationDuration returns the slide duration in seconds.
func (g *PuzzleGame) AnimationDuration() float64 {
	return g.animator.Duration()
}

// SetCellLocator installs the pointer-geometry mapping supplied by the
// rendering shell.
func (g *PuzzleGame) SetCellLocator(locator CellLocator) {
	g.router.SetLocator(locator)
}

// addMoveToHistory records an accepted move in both the cumulative history
// and the current segment.
func (g *PuzzleGame) addMoveToHistory(direction string, rec MoveRecord) {
	entry := MoveHistoryEntry{
		Direction:  direction,
		TileID:     rec.TileID,
		From:       rec.From,
		To:         rec.To,
		MoveNumber: g.totalMoves + 1,
		Timestamp:  time.Now().Unix(),
	}
	g.history = append(g.history, entry)
	g.totalMoves++
	g.currentMoves = append(g.currentMoves, entry)
}
