package battleships

// Player holds one participant's name, their own board, the multiset of ship
// types they still have to place, and the record of their guesses so far. A
// coordinate appears in at most one of Hits/Misses, ever.
type Player struct {
	Name      string           `json:"name"`
	Board     Board            `json:"board"`
	Remaining map[ShipType]int `json:"remaining"`
	Hits      CoordinateSet    `json:"hits"`
	Misses    CoordinateSet    `json:"misses"`
}

func NewPlayer(name string) Player {
	remaining := make(map[ShipType]int, len(Catalogue))
	for t, spec := range Catalogue {
		remaining[t] = spec.Count
	}
	return Player{
		Name:      name,
		Board:     NewBoard(),
		Remaining: remaining,
		Hits:      CoordinateSet{},
		Misses:    CoordinateSet{},
	}
}

func (p Player) Guessed(c Coordinate) bool {
	return p.Hits.Contains(c) || p.Misses.Contains(c)
}

func (p Player) AllShipsPlaced() bool {
	for _, n := range p.Remaining {
		if n > 0 {
			return false
		}
	}
	return true
}

// withShipPlaced returns a copy of the player with the ship on their board
// and one fewer of its type left to place.
func (p Player) withShipPlaced(board Board, t ShipType) Player {
	remaining := make(map[ShipType]int, len(p.Remaining))
	for k, v := range p.Remaining {
		remaining[k] = v
	}
	remaining[t]--
	p.Board = board
	p.Remaining = remaining
	return p
}
