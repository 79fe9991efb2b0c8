package battleships

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DanCouper/joust/internal/models"
)

// The board is a fixed 10x10 grid, 1-indexed on both axes.
const (
	MinCoordinate = 1
	MaxCoordinate = 10
)

// Coordinate is an immutable (col, row) pair. It implements TextMarshaler so
// it can key the footprint/hit/guess sets and still round-trip through JSON.
type Coordinate struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func NewCoordinate(col, row int) (Coordinate, error) {
	if col < MinCoordinate || col > MaxCoordinate || row < MinCoordinate || row > MaxCoordinate {
		return Coordinate{}, models.ErrInvalidCoordinate
	}
	return Coordinate{Col: col, Row: row}, nil
}

func (c Coordinate) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d,%d", c.Col, c.Row)), nil
}

func (c *Coordinate) UnmarshalText(b []byte) error {
	col, row, ok := strings.Cut(string(b), ",")
	if !ok {
		return fmt.Errorf("malformed coordinate %q", b)
	}
	x, err := strconv.Atoi(col)
	if err != nil {
		return fmt.Errorf("malformed coordinate %q: %w", b, err)
	}
	y, err := strconv.Atoi(row)
	if err != nil {
		return fmt.Errorf("malformed coordinate %q: %w", b, err)
	}
	c.Col, c.Row = x, y
	return nil
}

// CoordinateSet is a set of coordinates. Values are copied, never mutated in
// place, so snapshots can share sets safely.
type CoordinateSet map[Coordinate]bool

func (s CoordinateSet) Contains(c Coordinate) bool { return s[c] }

// With returns a copy of the set with c added.
func (s CoordinateSet) With(c Coordinate) CoordinateSet {
	out := make(CoordinateSet, len(s)+1)
	for k := range s {
		out[k] = true
	}
	out[c] = true
	return out
}

// Intersects reports whether the two sets share any coordinate.
func (s CoordinateSet) Intersects(other CoordinateSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for c := range small {
		if large[c] {
			return true
		}
	}
	return false
}

// Equal reports whether the two sets hold exactly the same coordinates.
func (s CoordinateSet) Equal(other CoordinateSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other[c] {
			return false
		}
	}
	return true
}
