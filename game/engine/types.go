package engine

// Move directions. Input events name the direction a tile slides ("up"
// moves the tile below the blank upward); the grid layer names the blank's
// motion. InputRouter translates between the two.
const (
	DirUp    = "up"
	DirDown  = "down"
	DirLeft  = "left"
	DirRight = "right"
)

const (
	// BlankTile is the sentinel tile id for the empty cell.
	BlankTile = 0

	// Validation constants
	MinGridSize          = 3
	MaxGridSize          = 5
	MaxShuffleMoves      = 10000
	MaxAnimationMs       = 2000
	DefaultShuffleFactor = 100 // shuffle moves per grid cell
	DefaultAnimationMs   = 150
	MaxBulkMoves         = 50
)

// Cell is a grid coordinate, 0-indexed from the top-left corner.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveRecord describes a single applied move: which tile slid and between
// which cells. To is always the cell the blank occupied before the move.
type MoveRecord struct {
	TileID int  `json:"tile_id"`
	From   Cell `json:"from"`
	To     Cell `json:"to"`
}

// PuzzleConfig represents the puzzle configuration from JSON
type PuzzleConfig struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	GridSize     int      `json:"grid_size"`
	ShuffleMoves int      `json:"shuffle_moves,omitempty"` // 0 = DefaultShuffleFactor * N^2
	AnimationMs  int      `json:"animation_ms,omitempty"`  // 0 = DefaultAnimationMs
	Messages     Messages `json:"messages"`
}

// Messages holds the user-facing strings a session reports through its state.
type Messages struct {
	Welcome       string `json:"welcome"`
	Solved        string `json:"solved"`       // must contain %d for the move count
	MoveApplied   string `json:"move_applied"` // must contain %d for the move count
	AlreadySolved string `json:"already_solved"`
}

// SessionStats tracks the counters for one play attempt between shuffles.
type SessionStats struct {
	Moves          int     `json:"moves"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Solved         bool    `json:"solved"`
}

// MoveHistoryEntry represents a single accepted move in the game history
type MoveHistoryEntry struct {
	Direction  string `json:"direction"`
	TileID     int    `json:"tile_id"`
	From       Cell   `json:"from"`
	To         Cell   `json:"to"`
	MoveNumber int    `json:"move_number"`
	Timestamp  int64  `json:"timestamp"`
}

// Snapshot is a read-only view of a session for rendering and transports.
// Tiles is the row-major tile sequence; Animation is nil while no slide is
// visually in progress.
type Snapshot struct {
	Size           int            `json:"size"`
	Tiles          []int          `json:"tiles"`
	Blank          Cell           `json:"blank"`
	Moves          int            `json:"moves"`
	TotalMoves     int            `json:"total_moves"`
	ElapsedSeconds float64        `json:"elapsed_seconds"`
	Solved         bool           `json:"solved"`
	Message        string         `json:"message"`
	ConfigName     string         `json:"config_name"`
	Animation      *AnimationView `json:"animation,omitempty"`
}

// AnimationView is the renderer-facing projection of an in-flight slide.
// DX and DY are the eased fractional displacement from From toward To, in
// cell units: the moving tile should be drawn at From + (DX, DY).
type AnimationView struct {
	TileID int     `json:"tile_id"`
	From   Cell    `json:"from"`
	To     Cell    `json:"to"`
	T      float64 `json:"t"`
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
}

// dirOffset returns the (row, col) delta a tile travels when sliding in the
// given direction.
func dirOffset(direction string) (int, int, bool) {
	switch direction {
	case DirUp:
		return -1, 0, true
	case DirDown:
		return 1, 0, true
	case DirLeft:
		return 0, -1, true
	case DirRight:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}

// OppositeDirection returns the direction that undoes the given one.
func OppositeDirection(direction string) string {
	switch direction {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return ""
	}
}

// Directions lists all four move directions in a stable order.
func Directions() []string {
	return []string{DirUp, DirDown, DirLeft, DirRight}
}
