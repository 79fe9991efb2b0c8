package battleships

import "github.com/DanCouper/joust/internal/models"

// Board maps an auto-incrementing key to the ship placed under it. The
// no-overlap invariant is enforced on insertion, so at most one ship's
// footprint can ever contain a given coordinate.
type Board struct {
	Ships map[int]Ship `json:"ships"`
}

func NewBoard() Board {
	return Board{Ships: map[int]Ship{}}
}

// PlaceShip returns a new board with the ship inserted under a fresh key, or
// models.ErrOverlappingShip (board unchanged) if its footprint intersects any
// existing ship's.
func (b Board) PlaceShip(s Ship) (Board, error) {
	for _, placed := range b.Ships {
		if placed.Footprint.Intersects(s.Footprint) {
			return b, models.ErrOverlappingShip
		}
	}
	next := make(map[int]Ship, len(b.Ships)+1)
	for k, v := range b.Ships {
		next[k] = v
	}
	next[len(b.Ships)] = s
	return Board{Ships: next}, nil
}

// GuessResult classifies one guess against one board.
type GuessResult struct {
	Hit  bool
	Ship ShipType
	Sunk bool
	Win  bool
}

// Guess scans the board for a ship whose footprint contains c. On a hit the
// coordinate is recorded in that ship's hit set and the returned board
// replaces it; on a miss the board is returned unchanged. Scan order is
// irrelevant by the no-overlap invariant.
func (b Board) Guess(c Coordinate) (Board, GuessResult) {
	for key, ship := range b.Ships {
		if !ship.Footprint.Contains(c) {
			continue
		}
		hit := ship.withHit(c)
		next := make(map[int]Ship, len(b.Ships))
		for k, v := range b.Ships {
			next[k] = v
		}
		next[key] = hit
		updated := Board{Ships: next}
		return updated, GuessResult{
			Hit:  true,
			Ship: ship.Type,
			Sunk: hit.Sunk(),
			Win:  updated.AllSunk(),
		}
	}
	return b, GuessResult{}
}

// AllSunk reports whether every ship's hit set equals its footprint. This is
// exactly the condition that ends the game.
func (b Board) AllSunk() bool {
	if len(b.Ships) == 0 {
		return false
	}
	for _, s := range b.Ships {
		if !s.Sunk() {
			return false
		}
	}
	return true
}
