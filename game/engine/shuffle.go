package engine

import (
	"math/rand"
	"time"
)

// Shuffler produces randomized starting grids by replaying legal moves from
// the solved state. Shuffling never permutes tiles arbitrarily: every walk
// stays inside the solvable class by construction.
type Shuffler struct {
	rng *rand.Rand
}

// NewShuffler creates a shuffler seeded from the clock.
func NewShuffler() *Shuffler {
	return NewSeededShuffler(time.Now().UnixNano())
}

// NewSeededShuffler creates a shuffler with a fixed seed for reproducible
// walks.
func NewSeededShuffler(seed int64) *Shuffler {
	return &Shuffler{rng: rand.New(rand.NewSource(seed))}
}

// Shuffle randomizes the grid in place with a walk of the given number of
// legal moves. A non-positive count falls back to DefaultShuffleFactor per
// cell. The walk avoids undoing its previous move whenever at least two
// moves are legal, and re-walks if it happens to land back on the solved
// state so a fresh session never starts already won.
func (s *Shuffler) Shuffle(g *Grid, moves int) {
	if moves <= 0 {
		moves = DefaultShuffleFactor * g.Size() * g.Size()
	}

	for {
		s.walk(g, moves)
		if !g.IsSolved() {
			return
		}
	}
}

// walk applies the given number of random legal moves.
func (s *Shuffler) walk(g *Grid, moves int) {
	last := ""
	for i := 0; i < moves; i++ {
		candidates := g.LegalMoves()
		if last != "" && len(candidates) >= 2 {
			inverse := OppositeDirection(last)
			filtered := candidates[:0]
			for _, dir := range candidates {
				if dir != inverse {
					filtered = append(filtered, dir)
				}
			}
			candidates = filtered
		}

		dir := candidates[s.rng.Intn(len(candidates))]
		if _, err := g.Apply(dir); err != nil {
			// LegalMoves only returns applicable directions.
			panic(err)
		}
		last = dir
	}
}
