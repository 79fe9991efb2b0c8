// Package crosses is a minimal Noughts-and-Crosses engine included to show a
// second game type behind the same protocol. It is a reference variant only:
// a plain 3x3 game, much less complete than the battleships engine, and not
// covered by the battleships property tests.
package crosses

import (
	"fmt"

	"github.com/DanCouper/joust/internal/game"
	"github.com/DanCouper/joust/internal/models"
)

const (
	GameType   = "noughts_and_crosses"
	maxPlayers = 2
	gridSize   = 3
)

// GameData is the crosses snapshot: who is registered, whose turn it is, and
// which player (1 or 2) holds each marked cell. Cells are keyed "col,row".
type GameData struct {
	ID            string         `json:"id"`
	GameType      string         `json:"game_type"`
	CurrentPlayer int            `json:"current_player"`
	MaxPlayers    int            `json:"max_players"`
	Registered    int            `json:"registered"`
	Names         map[int]string `json:"names"`
	Marks         map[string]int `json:"marks"`
}

type Engine struct {
	state string
	data  GameData
}

func New(id string) game.Engine {
	return &Engine{
		state: game.StateInitialised,
		data: GameData{
			ID:            id,
			GameType:      GameType,
			CurrentPlayer: 1,
			MaxPlayers:    maxPlayers,
			Names:         map[int]string{},
			Marks:         map[string]int{},
		},
	}
}

func (e *Engine) Type() string  { return GameType }
func (e *Engine) State() string { return e.state }

func (e *Engine) Handle(ev game.Event) (game.Result, error) {
	if ev.Op == game.OpGetSnapshot {
		return game.Result{State: e.state, Snapshot: e.data}, nil
	}
	switch e.state {
	case game.StateInitialised:
		if ev.Op == game.OpAddPlayer {
			return e.addPlayer(ev.Name)
		}
	case game.StatePlayerTurn:
		if ev.Op == game.OpPlaceMark {
			return e.placeMark(ev.Col, ev.Row)
		}
	}
	return game.Result{}, models.ErrInvalidOperation
}

func (e *Engine) addPlayer(name string) (game.Result, error) {
	if name == "" {
		return game.Result{}, models.ErrInvalidName
	}
	if e.data.Registered >= e.data.MaxPlayers {
		return game.Result{}, models.ErrAllPlayersAlreadyJoined
	}
	names := make(map[int]string, len(e.data.Names)+1)
	for k, v := range e.data.Names {
		names[k] = v
	}
	names[e.data.Registered+1] = name
	e.data.Names = names
	e.data.Registered++
	// No setup phase: play begins as soon as both seats are filled.
	if e.data.Registered == e.data.MaxPlayers {
		e.state = game.StatePlayerTurn
	}
	return game.Result{State: e.state, Snapshot: e.data}, nil
}

func (e *Engine) placeMark(col, row int) (game.Result, error) {
	if col < 1 || col > gridSize || row < 1 || row > gridSize {
		return game.Result{}, models.ErrInvalidCoordinate
	}
	key := cellKey(col, row)
	if e.data.Marks[key] != 0 {
		return game.Result{}, models.ErrCoordinateAlreadyGuessed
	}
	marks := make(map[string]int, len(e.data.Marks)+1)
	for k, v := range e.data.Marks {
		marks[k] = v
	}
	marks[key] = e.data.CurrentPlayer
	e.data.Marks = marks

	if e.won(e.data.CurrentPlayer) || len(marks) == gridSize*gridSize {
		e.state = game.StateOver
	} else {
		e.data.CurrentPlayer = e.data.CurrentPlayer%e.data.MaxPlayers + 1
	}
	return game.Result{State: e.state, Snapshot: e.data}, nil
}

func (e *Engine) won(player int) bool {
	owns := func(col, row int) bool { return e.data.Marks[cellKey(col, row)] == player }
	for i := 1; i <= gridSize; i++ {
		if owns(i, 1) && owns(i, 2) && owns(i, 3) {
			return true
		}
		if owns(1, i) && owns(2, i) && owns(3, i) {
			return true
		}
	}
	if owns(1, 1) && owns(2, 2) && owns(3, 3) {
		return true
	}
	return owns(1, 3) && owns(2, 2) && owns(3, 1)
}

func cellKey(col, row int) string {
	return fmt.Sprintf("%d,%d", col, row)
}
