// Package battleships implements the Battleships rule engine: a pure data
// model (coordinate, ship, board, player, snapshot) and the state machine
// that drives it through the shared game protocol.
package battleships

import (
	"github.com/DanCouper/joust/internal/game"
	"github.com/DanCouper/joust/internal/models"
)

// Engine is the Battleships instantiation of the game protocol:
//
//	initialised -> players_setup -> player_turn -> game_over
//
// It owns one GameData snapshot and replaces it on every accepted event.
type Engine struct {
	state string
	data  GameData
}

func New(id string) game.Engine {
	return &Engine{state: game.StateInitialised, data: NewGameData(id)}
}

func (e *Engine) Type() string  { return GameType }
func (e *Engine) State() string { return e.state }

// Data exposes the current snapshot for tests and read paths.
func (e *Engine) Data() GameData { return e.data }

func (e *Engine) Handle(ev game.Event) (game.Result, error) {
	if ev.Op == game.OpGetSnapshot {
		return e.result(nil), nil
	}
	switch e.state {
	case game.StateInitialised:
		if ev.Op == game.OpAddPlayer {
			return e.addPlayer(ev.Name)
		}
	case game.StateSetup:
		switch ev.Op {
		case game.OpPositionShip:
			return e.positionShip(ev)
		case game.OpSetShipPlacement:
			return e.finalisePlacement()
		}
	case game.StatePlayerTurn:
		if ev.Op == game.OpGuessCoordinate {
			return e.guess(ev.Col, ev.Row)
		}
	}
	// Catch-all: unknown op, or known op in the wrong state. State unchanged.
	return game.Result{}, models.ErrInvalidOperation
}

func (e *Engine) addPlayer(name string) (game.Result, error) {
	next, err := e.data.AddPlayer(name)
	if err != nil {
		return game.Result{}, err
	}
	e.data = next
	if next.Registered == next.MaxPlayers {
		e.state = game.StateSetup
	}
	return e.result(nil), nil
}

func (e *Engine) positionShip(ev game.Event) (game.Result, error) {
	shipType, err := ParseShipType(ev.ShipType)
	if err != nil {
		return game.Result{}, err
	}
	dir, err := ParseDirection(ev.Direction)
	if err != nil {
		return game.Result{}, err
	}
	next, err := e.data.PositionShip(ev.Player, shipType, dir, ev.Col, ev.Row)
	if err != nil {
		return game.Result{}, err
	}
	e.data = next
	return e.result(nil), nil
}

func (e *Engine) finalisePlacement() (game.Result, error) {
	if !e.data.AllShipsPlaced() {
		return game.Result{}, models.ErrShipPlacementNotFinalised
	}
	e.state = game.StatePlayerTurn
	return e.result(nil), nil
}

func (e *Engine) guess(col, row int) (game.Result, error) {
	next, res, err := e.data.MakeGuess(col, row)
	if err != nil {
		return game.Result{}, err
	}
	e.data = next
	if res.Win {
		e.state = game.StateOver
	}
	return e.result(feedback(res)), nil
}

func (e *Engine) result(fb *game.Feedback) game.Result {
	return game.Result{State: e.state, Snapshot: e.data, Feedback: fb}
}

func feedback(res GuessResult) *game.Feedback {
	fb := &game.Feedback{Outcome: "miss", Ship: "none", Status: "afloat", Win: "no_win"}
	if res.Hit {
		fb.Outcome = "hit"
		fb.Ship = string(res.Ship)
	}
	if res.Sunk {
		fb.Status = "sunk"
	}
	if res.Win {
		fb.Win = "win"
	}
	return fb
}
