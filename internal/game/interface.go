package game

// Protocol states shared by every engine. The full lifecycle is
// initialised -> players_setup -> <active turn(s)> -> game_over; engines
// without a setup phase skip straight to their active-turn state.
const (
	StateInitialised = "initialised"
	StateSetup       = "players_setup"
	StatePlayerTurn  = "player_turn"
	StateOver        = "game_over"
)

// Event operations understood by the engines. Unknown ops (or known ops in
// the wrong state) are rejected with models.ErrInvalidOperation; an engine
// never terminates because of a bad event.
const (
	OpAddPlayer        = "add_player"
	OpPositionShip     = "position_ship"
	OpSetShipPlacement = "set_ship_placement"
	OpGuessCoordinate  = "guess_coordinate"
	OpPlaceMark        = "place_mark"
	OpGetSnapshot      = "get_snapshot"
)

// Event is a single request into a game's state machine. Fields beyond Op
// are payload and only meaningful for the ops that use them.
type Event struct {
	Op        string `json:"op"`
	Name      string `json:"name,omitempty"`
	Player    int    `json:"player,omitempty"`
	ShipType  string `json:"ship_type,omitempty"`
	Direction string `json:"direction,omitempty"`
	Col       int    `json:"col,omitempty"`
	Row       int    `json:"row,omitempty"`
}

// Feedback describes the outcome of a single guess.
type Feedback struct {
	Outcome string `json:"outcome"` // hit|miss
	Ship    string `json:"ship"`    // ship type, or "none" on a miss
	Status  string `json:"status"`  // sunk|afloat
	Win     string `json:"win"`     // win|no_win
}

// Result is the reply to an accepted event: the replacement snapshot, plus
// guess feedback when the op produces one.
type Result struct {
	State    string    `json:"state"`
	Snapshot any       `json:"snapshot"`
	Feedback *Feedback `json:"feedback,omitempty"`
}

// Engine is the pluggable interface for game rule engines. An Engine owns
// exactly one snapshot of game data and replaces it wholesale on every
// accepted transition. Engines are NOT safe for concurrent use; the session
// worker serializes all calls.
type Engine interface {
	Type() string
	State() string
	Handle(ev Event) (Result, error)
}
