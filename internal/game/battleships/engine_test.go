package battleships

import (
	"errors"
	"testing"

	"github.com/DanCouper/joust/internal/game"
	"github.com/DanCouper/joust/internal/models"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New("engine-test").(*Engine)
}

func handle(t *testing.T, e *Engine, ev game.Event) game.Result {
	t.Helper()
	res, err := e.Handle(ev)
	if err != nil {
		t.Fatalf("Handle(%+v): %v", ev, err)
	}
	return res
}

func setupEngine(t *testing.T) *Engine {
	t.Helper()
	e := newEngine(t)
	handle(t, e, game.Event{Op: game.OpAddPlayer, Name: "Dan"})
	handle(t, e, game.Event{Op: game.OpAddPlayer, Name: "Nad"})
	for player := 1; player <= 2; player++ {
		for _, f := range fleet {
			handle(t, e, game.Event{
				Op:        game.OpPositionShip,
				Player:    player,
				ShipType:  string(f.Type),
				Direction: string(Vertical),
				Col:       f.Col,
				Row:       1,
			})
		}
	}
	return e
}

func TestEngineLifecycleToFirstGuess(t *testing.T) {
	e := newEngine(t)
	if e.State() != game.StateInitialised {
		t.Fatalf("initial state = %s", e.State())
	}

	res := handle(t, e, game.Event{Op: game.OpAddPlayer, Name: "Dan"})
	if res.State != game.StateInitialised {
		t.Fatalf("state after first player = %s", res.State)
	}

	res = handle(t, e, game.Event{Op: game.OpAddPlayer, Name: "Nad"})
	if res.State != game.StateSetup {
		t.Fatalf("state after second player = %s", res.State)
	}

	for player := 1; player <= 2; player++ {
		for _, f := range fleet {
			handle(t, e, game.Event{
				Op:        game.OpPositionShip,
				Player:    player,
				ShipType:  string(f.Type),
				Direction: string(Vertical),
				Col:       f.Col,
				Row:       1,
			})
		}
	}

	res = handle(t, e, game.Event{Op: game.OpSetShipPlacement})
	if res.State != game.StatePlayerTurn {
		t.Fatalf("state after finalise = %s", res.State)
	}

	// (1,1) targets the opponent's carrier.
	res = handle(t, e, game.Event{Op: game.OpGuessCoordinate, Col: 1, Row: 1})
	fb := res.Feedback
	if fb == nil {
		t.Fatal("guess returned no feedback")
	}
	if fb.Outcome != "hit" || fb.Ship != "carrier" || fb.Status != "afloat" || fb.Win != "no_win" {
		t.Fatalf("feedback = %+v", fb)
	}
	if e.Data().CurrentPlayer != 2 {
		t.Fatalf("turn did not pass: current=%d", e.Data().CurrentPlayer)
	}
}

func TestEngineFinaliseBeforeAllPlaced(t *testing.T) {
	e := newEngine(t)
	handle(t, e, game.Event{Op: game.OpAddPlayer, Name: "Dan"})
	handle(t, e, game.Event{Op: game.OpAddPlayer, Name: "Nad"})
	if _, err := e.Handle(game.Event{Op: game.OpSetShipPlacement}); !errors.Is(err, models.ErrShipPlacementNotFinalised) {
		t.Fatalf("want ErrShipPlacementNotFinalised, got %v", err)
	}
	if e.State() != game.StateSetup {
		t.Fatalf("state changed on rejected finalise: %s", e.State())
	}
}

func TestEngineRepositionPlacedType(t *testing.T) {
	e := setupEngine(t)
	before := e.Data()
	_, err := e.Handle(game.Event{
		Op:        game.OpPositionShip,
		Player:    1,
		ShipType:  string(Carrier),
		Direction: string(Vertical),
		Col:       9,
		Row:       1,
	})
	if !errors.Is(err, models.ErrAllPlayerShipsPlaced) {
		t.Fatalf("want ErrAllPlayerShipsPlaced, got %v", err)
	}
	if e.State() != game.StateSetup {
		t.Fatalf("state changed: %s", e.State())
	}
	if len(e.Data().Players[1].Board.Ships) != len(before.Players[1].Board.Ships) {
		t.Fatal("board changed on rejected placement")
	}
}

func TestEngineGuessDuringSetupInvalid(t *testing.T) {
	e := setupEngine(t)
	if _, err := e.Handle(game.Event{Op: game.OpGuessCoordinate, Col: 1, Row: 1}); !errors.Is(err, models.ErrInvalidOperation) {
		t.Fatalf("want ErrInvalidOperation, got %v", err)
	}
	if e.State() != game.StateSetup {
		t.Fatalf("state changed: %s", e.State())
	}
}

func TestEngineUnknownOpInvalid(t *testing.T) {
	e := newEngine(t)
	if _, err := e.Handle(game.Event{Op: "launch_nukes"}); !errors.Is(err, models.ErrInvalidOperation) {
		t.Fatalf("want ErrInvalidOperation, got %v", err)
	}
}

func TestEngineSnapshotOpAlwaysAllowed(t *testing.T) {
	e := newEngine(t)
	res := handle(t, e, game.Event{Op: game.OpGetSnapshot})
	if res.State != game.StateInitialised {
		t.Fatalf("snapshot state = %s", res.State)
	}
	if _, ok := res.Snapshot.(GameData); !ok {
		t.Fatalf("snapshot type = %T", res.Snapshot)
	}
}

// opponentCells lists every cell of the standard test fleet, i.e. the guesses
// needed to sink everything.
func opponentCells() []Coordinate {
	var out []Coordinate
	for _, f := range fleet {
		for row := 1; row <= Catalogue[f.Type].Size; row++ {
			out = append(out, Coordinate{Col: f.Col, Row: row})
		}
	}
	return out
}

func TestEnginePlayToWin(t *testing.T) {
	e := setupEngine(t)
	handle(t, e, game.Event{Op: game.OpSetShipPlacement})

	cells := opponentCells()
	// Player 1 works through player 2's fleet; player 2 wastes its turns on
	// empty columns 8..10.
	missCol, missRow := 8, 1
	for i, c := range cells {
		res := handle(t, e, game.Event{Op: game.OpGuessCoordinate, Col: c.Col, Row: c.Row})
		if res.Feedback == nil || res.Feedback.Outcome != "hit" {
			t.Fatalf("guess %d at %v: feedback %+v", i, c, res.Feedback)
		}
		last := i == len(cells)-1
		if last {
			if res.Feedback.Win != "win" || res.Feedback.Status != "sunk" {
				t.Fatalf("final guess feedback = %+v", res.Feedback)
			}
			if res.State != game.StateOver {
				t.Fatalf("state after winning guess = %s", res.State)
			}
			break
		}
		if res.Feedback.Win != "no_win" {
			t.Fatalf("guess %d at %v reported premature win", i, c)
		}

		res = handle(t, e, game.Event{Op: game.OpGuessCoordinate, Col: missCol, Row: missRow})
		if res.Feedback == nil || res.Feedback.Outcome != "miss" {
			t.Fatalf("player 2 filler guess at (%d,%d): %+v", missCol, missRow, res.Feedback)
		}
		missRow++
		if missRow > MaxCoordinate {
			missRow = 1
			missCol++
		}
	}

	// Terminal state: every further event is rejected, state unchanged.
	if _, err := e.Handle(game.Event{Op: game.OpGuessCoordinate, Col: 9, Row: 9}); !errors.Is(err, models.ErrInvalidOperation) {
		t.Fatalf("guess after game over: want ErrInvalidOperation, got %v", err)
	}
	if e.State() != game.StateOver {
		t.Fatalf("terminal state left: %s", e.State())
	}
}

func TestEngineTurnAlternates(t *testing.T) {
	e := setupEngine(t)
	handle(t, e, game.Event{Op: game.OpSetShipPlacement})

	guesses := []Coordinate{{10, 1}, {10, 2}, {10, 3}, {10, 4}}
	want := []int{2, 1, 2, 1}
	for i, c := range guesses {
		handle(t, e, game.Event{Op: game.OpGuessCoordinate, Col: c.Col, Row: c.Row})
		if got := e.Data().CurrentPlayer; got != want[i] {
			t.Fatalf("after guess %d: current player = %d, want %d", i, got, want[i])
		}
	}
}
