package session

import (
	"context"
	"time"

	"github.com/DanCouper/joust/internal/game"
	"github.com/DanCouper/joust/internal/models"
)

// Service is the facade the web layer consumes: thin pass-throughs that
// resolve a token through the registry and make one synchronous call into
// the owning worker. Replies flow back unchanged.
type Service struct {
	sup     *Supervisor
	reg     *Registry
	timeout time.Duration
}

func NewService(sup *Supervisor, reg *Registry, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{sup: sup, reg: reg, timeout: timeout}
}

func (s *Service) StartGame(gameType string) (string, error) {
	return s.sup.StartGame(gameType)
}

func (s *Service) AddPlayer(ctx context.Context, token, name string) (game.Result, error) {
	return s.call(ctx, token, game.Event{Op: game.OpAddPlayer, Name: name})
}

func (s *Service) PositionShip(ctx context.Context, token string, player int, shipType, direction string, col, row int) (game.Result, error) {
	return s.call(ctx, token, game.Event{
		Op:        game.OpPositionShip,
		Player:    player,
		ShipType:  shipType,
		Direction: direction,
		Col:       col,
		Row:       row,
	})
}

func (s *Service) SetShipPlacement(ctx context.Context, token string) (game.Result, error) {
	return s.call(ctx, token, game.Event{Op: game.OpSetShipPlacement})
}

func (s *Service) GuessCoordinate(ctx context.Context, token string, col, row int) (game.Result, error) {
	return s.call(ctx, token, game.Event{Op: game.OpGuessCoordinate, Col: col, Row: row})
}

func (s *Service) PlaceMark(ctx context.Context, token string, col, row int) (game.Result, error) {
	return s.call(ctx, token, game.Event{Op: game.OpPlaceMark, Col: col, Row: row})
}

func (s *Service) Snapshot(ctx context.Context, token string) (game.Result, error) {
	return s.call(ctx, token, game.Event{Op: game.OpGetSnapshot})
}

func (s *Service) call(ctx context.Context, token string, ev game.Event) (game.Result, error) {
	w, ok := s.reg.Lookup(token)
	if !ok {
		return game.Result{}, models.ErrGameNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return w.Call(ctx, ev)
}
