package battleships

import (
	"strings"

	"github.com/DanCouper/joust/internal/models"
)

const (
	GameType   = "battleships"
	MaxPlayers = 2
)

// GameData is the complete snapshot of one game. Transitions never mutate a
// snapshot in place: every accepted event produces a replacement value, with
// only the touched substructures copied.
type GameData struct {
	ID            string         `json:"id"`
	GameType      string         `json:"game_type"`
	CurrentPlayer int            `json:"current_player"`
	MaxPlayers    int            `json:"max_players"`
	Registered    int            `json:"registered"`
	Players       map[int]Player `json:"players"`
}

func NewGameData(id string) GameData {
	return GameData{
		ID:            id,
		GameType:      GameType,
		CurrentPlayer: 1,
		MaxPlayers:    MaxPlayers,
		Registered:    0,
		Players:       map[int]Player{},
	}
}

// withPlayer returns a copy of the snapshot with the player under number
// replaced.
func (g GameData) withPlayer(number int, p Player) GameData {
	players := make(map[int]Player, len(g.Players)+1)
	for k, v := range g.Players {
		players[k] = v
	}
	players[number] = p
	g.Players = players
	return g
}

// AddPlayer registers a player under the next free number.
func (g GameData) AddPlayer(name string) (GameData, error) {
	if strings.TrimSpace(name) == "" {
		return g, models.ErrInvalidName
	}
	if g.Registered >= g.MaxPlayers {
		return g, models.ErrAllPlayersAlreadyJoined
	}
	next := g.withPlayer(g.Registered+1, NewPlayer(name))
	next.Registered = g.Registered + 1
	return next, nil
}

// PositionShip places one ship of type t for the given player. The snapshot
// is returned unchanged on any failure.
func (g GameData) PositionShip(player int, t ShipType, dir Direction, col, row int) (GameData, error) {
	p, ok := g.Players[player]
	if !ok {
		return g, models.ErrNoPlayerMatchingID
	}
	if p.Remaining[t] <= 0 {
		return g, models.ErrAllPlayerShipsPlaced
	}
	origin, err := NewCoordinate(col, row)
	if err != nil {
		return g, err
	}
	ship, err := NewShip(t, dir, origin)
	if err != nil {
		return g, err
	}
	board, err := p.Board.PlaceShip(ship)
	if err != nil {
		return g, err
	}
	return g.withPlayer(player, p.withShipPlaced(board, t)), nil
}

// AllShipsPlaced reports whether every registered player has an empty
// remaining-to-place multiset.
func (g GameData) AllShipsPlaced() bool {
	if g.Registered < g.MaxPlayers {
		return false
	}
	for _, p := range g.Players {
		if !p.AllShipsPlaced() {
			return false
		}
	}
	return true
}

// Opponent returns the number of the player the current player guesses
// against: the next seat in cyclic ascending order.
func (g GameData) Opponent() int {
	return g.CurrentPlayer%g.MaxPlayers + 1
}

// MakeGuess resolves one guess by the current player against the opponent's
// board: bounds check, repeat-guess check against the guesser's own record,
// then the board scan. On a hit the updated opponent board is written back;
// either way the coordinate lands in exactly one of the guesser's Hits or
// Misses. The turn rotates unless the guess wins the game.
func (g GameData) MakeGuess(col, row int) (GameData, GuessResult, error) {
	c, err := NewCoordinate(col, row)
	if err != nil {
		return g, GuessResult{}, err
	}
	guesser := g.Players[g.CurrentPlayer]
	if guesser.Guessed(c) {
		return g, GuessResult{}, models.ErrCoordinateAlreadyGuessed
	}

	opponentNum := g.Opponent()
	opponent := g.Players[opponentNum]
	board, res := opponent.Board.Guess(c)

	if res.Hit {
		guesser.Hits = guesser.Hits.With(c)
		opponent.Board = board
	} else {
		guesser.Misses = guesser.Misses.With(c)
	}

	next := g.withPlayer(g.CurrentPlayer, guesser).withPlayer(opponentNum, opponent)
	if !res.Win {
		next.CurrentPlayer = g.CurrentPlayer%g.MaxPlayers + 1
	}
	return next, res, nil
}
