package battleships

import "github.com/DanCouper/joust/internal/models"

type ShipType string

const (
	Carrier    ShipType = "carrier"
	Battleship ShipType = "battleship"
	Cruiser    ShipType = "cruiser"
	Destroyer  ShipType = "destroyer"
	Submarine  ShipType = "submarine"
)

type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Catalogue fixes, per ship type, the footprint length and how many of that
// type each player must place. Identical for every player.
var Catalogue = map[ShipType]struct {
	Size  int
	Count int
}{
	Carrier:    {Size: 5, Count: 1},
	Battleship: {Size: 4, Count: 1},
	Cruiser:    {Size: 3, Count: 1},
	Destroyer:  {Size: 2, Count: 2},
	Submarine:  {Size: 1, Count: 2},
}

func ParseShipType(s string) (ShipType, error) {
	t := ShipType(s)
	if _, ok := Catalogue[t]; !ok {
		return "", models.ErrInvalidShipType
	}
	return t, nil
}

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Horizontal:
		return Horizontal, nil
	case Vertical:
		return Vertical, nil
	}
	return "", models.ErrInvalidDirection
}

// Ship occupies a fixed footprint and accumulates hits. Hits is always a
// subset of Footprint.
type Ship struct {
	Type      ShipType      `json:"type"`
	Footprint CoordinateSet `json:"footprint"`
	Hits      CoordinateSet `json:"hits"`
}

// NewShip derives the footprint from (type, direction, origin) by walking the
// type's contiguous offsets: along the row for horizontal, along the column
// for vertical. Construction is atomic: if any cell falls outside the grid,
// no ship is returned.
func NewShip(t ShipType, dir Direction, origin Coordinate) (Ship, error) {
	spec, ok := Catalogue[t]
	if !ok {
		return Ship{}, models.ErrInvalidShipType
	}
	footprint := make(CoordinateSet, spec.Size)
	for offset := 0; offset < spec.Size; offset++ {
		col, row := origin.Col, origin.Row
		if dir == Horizontal {
			col += offset
		} else {
			row += offset
		}
		c, err := NewCoordinate(col, row)
		if err != nil {
			return Ship{}, err
		}
		footprint[c] = true
	}
	return Ship{Type: t, Footprint: footprint, Hits: CoordinateSet{}}, nil
}

func (s Ship) Sunk() bool {
	return s.Hits.Equal(s.Footprint)
}

// withHit returns a copy of the ship with c recorded in its hit set.
func (s Ship) withHit(c Coordinate) Ship {
	return Ship{Type: s.Type, Footprint: s.Footprint, Hits: s.Hits.With(c)}
}
