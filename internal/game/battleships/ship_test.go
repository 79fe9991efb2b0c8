package battleships

import (
	"errors"
	"testing"

	"github.com/DanCouper/joust/internal/models"
)

func TestNewShipFootprints(t *testing.T) {
	tests := []struct {
		name   string
		t      ShipType
		dir    Direction
		origin Coordinate
		want   []Coordinate
	}{
		{
			name: "carrier horizontal", t: Carrier, dir: Horizontal,
			origin: Coordinate{1, 1},
			want:   []Coordinate{{1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}},
		},
		{
			name: "carrier vertical", t: Carrier, dir: Vertical,
			origin: Coordinate{1, 1},
			want:   []Coordinate{{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}},
		},
		{
			name: "battleship vertical at edge", t: Battleship, dir: Vertical,
			origin: Coordinate{10, 7},
			want:   []Coordinate{{10, 7}, {10, 8}, {10, 9}, {10, 10}},
		},
		{
			name: "destroyer horizontal", t: Destroyer, dir: Horizontal,
			origin: Coordinate{9, 5},
			want:   []Coordinate{{9, 5}, {10, 5}},
		},
		{
			name: "submarine single cell", t: Submarine, dir: Horizontal,
			origin: Coordinate{10, 10},
			want:   []Coordinate{{10, 10}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewShip(tc.t, tc.dir, tc.origin)
			if err != nil {
				t.Fatalf("NewShip: %v", err)
			}
			if len(s.Footprint) != len(tc.want) {
				t.Fatalf("footprint size = %d, want %d", len(s.Footprint), len(tc.want))
			}
			for _, c := range tc.want {
				if !s.Footprint.Contains(c) {
					t.Fatalf("footprint missing %v: %v", c, s.Footprint)
				}
			}
			if len(s.Hits) != 0 {
				t.Fatalf("new ship has hits: %v", s.Hits)
			}
		})
	}
}

func TestNewShipOutOfRangeFailsAtomically(t *testing.T) {
	tests := []struct {
		name   string
		t      ShipType
		dir    Direction
		origin Coordinate
	}{
		{"carrier overruns right edge", Carrier, Horizontal, Coordinate{7, 1}},
		{"carrier overruns bottom edge", Carrier, Vertical, Coordinate{1, 7}},
		{"battleship overruns bottom edge", Battleship, Vertical, Coordinate{5, 8}},
		{"destroyer overruns right edge", Destroyer, Horizontal, Coordinate{10, 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewShip(tc.t, tc.dir, tc.origin)
			if !errors.Is(err, models.ErrInvalidCoordinate) {
				t.Fatalf("want ErrInvalidCoordinate, got %v", err)
			}
			// No partial ship is ever returned.
			if s.Footprint != nil {
				t.Fatalf("partial ship returned: %v", s)
			}
		})
	}
}

func TestCatalogue(t *testing.T) {
	total := 0
	for _, spec := range Catalogue {
		total += spec.Count
	}
	if total != 7 {
		t.Fatalf("fleet size = %d, want 7", total)
	}
	if Catalogue[Carrier].Size != 5 || Catalogue[Submarine].Size != 1 {
		t.Fatalf("unexpected catalogue sizes: %v", Catalogue)
	}
}

func TestParseShipType(t *testing.T) {
	if _, err := ParseShipType("carrier"); err != nil {
		t.Fatalf("carrier should parse: %v", err)
	}
	if _, err := ParseShipType("rowboat"); !errors.Is(err, models.ErrInvalidShipType) {
		t.Fatalf("want ErrInvalidShipType, got %v", err)
	}
}

func TestParseDirection(t *testing.T) {
	if _, err := ParseDirection("vertical"); err != nil {
		t.Fatalf("vertical should parse: %v", err)
	}
	if _, err := ParseDirection("diagonal"); !errors.Is(err, models.ErrInvalidDirection) {
		t.Fatalf("want ErrInvalidDirection, got %v", err)
	}
}
