package models

import "errors"

var (
	ErrInvalidJSON = errors.New("invalid json")

	// Validation errors (rejected input, game state untouched).
	ErrInvalidCoordinate        = errors.New("invalid coordinate")
	ErrInvalidName              = errors.New("invalid name")
	ErrInvalidShipType          = errors.New("invalid ship type")
	ErrInvalidDirection         = errors.New("invalid direction")
	ErrOverlappingShip          = errors.New("overlapping ship")
	ErrCoordinateAlreadyGuessed = errors.New("coordinate already guessed")

	// Protocol/state errors (event not valid in the current state).
	ErrInvalidOperation          = errors.New("invalid operation")
	ErrAllPlayerShipsPlaced      = errors.New("all player ships placed")
	ErrShipPlacementNotFinalised = errors.New("ship placement not finalised")
	ErrAllPlayersAlreadyJoined   = errors.New("all players already joined")
	ErrNoPlayerMatchingID        = errors.New("no player matching id")

	// Routing errors.
	ErrNonexistentGameType = errors.New("nonexistent game type")
	ErrGameNotFound        = errors.New("game not found")
)
