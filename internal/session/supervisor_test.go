package session

import (
	"errors"
	"testing"
	"time"

	"github.com/DanCouper/joust/internal/game"
	"github.com/DanCouper/joust/internal/game/crosses"
	"github.com/DanCouper/joust/internal/models"
)

func newTestStack(t *testing.T) (*Service, *Registry) {
	t.Helper()
	engines := game.NewRegistry()
	engines.Register(crosses.GameType, crosses.New)
	engines.Register("scripted", newScriptedEngine)
	registry := NewRegistry()
	sup := NewSupervisor(engines, registry, nil, 8)
	return NewService(sup, registry, 2*time.Second), registry
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestStartGameUnknownType(t *testing.T) {
	svc, registry := newTestStack(t)
	_, err := svc.StartGame("nonexistent_tag")
	if !errors.Is(err, models.ErrNonexistentGameType) {
		t.Fatalf("want ErrNonexistentGameType, got %v", err)
	}
	if registry.Len() != 0 {
		t.Fatalf("registry entry created for unknown type: len=%d", registry.Len())
	}
}

func TestStartGameRegistersWorker(t *testing.T) {
	svc, registry := newTestStack(t)
	token, err := svc.StartGame(crosses.GameType)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if _, ok := registry.Lookup(token); !ok {
		t.Fatal("worker not registered")
	}
}

func TestGameOperationsAgainstUnknownToken(t *testing.T) {
	svc, _ := newTestStack(t)
	if _, err := svc.AddPlayer(callCtx(t), "no-such-token", "Dan"); !errors.Is(err, models.ErrGameNotFound) {
		t.Fatalf("want ErrGameNotFound, got %v", err)
	}
}

func TestCompletedGameIsDeregisteredNotRestarted(t *testing.T) {
	svc, registry := newTestStack(t)
	token, err := svc.StartGame(crosses.GameType)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	ctx := callCtx(t)
	if _, err := svc.AddPlayer(ctx, token, "Dan"); err != nil {
		t.Fatalf("add Dan: %v", err)
	}
	if _, err := svc.AddPlayer(ctx, token, "Nad"); err != nil {
		t.Fatalf("add Nad: %v", err)
	}

	// Player 1 takes the first column while player 2 dawdles in column 2.
	moves := []struct{ col, row int }{
		{1, 1}, {2, 1}, {1, 2}, {2, 2},
	}
	for _, m := range moves {
		if _, err := svc.PlaceMark(ctx, token, m.col, m.row); err != nil {
			t.Fatalf("mark (%d,%d): %v", m.col, m.row, err)
		}
	}
	res, err := svc.PlaceMark(ctx, token, 1, 3)
	if err != nil {
		t.Fatalf("winning mark: %v", err)
	}
	if res.State != game.StateOver {
		t.Fatalf("state after winning mark = %s", res.State)
	}

	// Deliberate completion: deregistered, not restarted.
	waitFor(t, "deregistration", func() bool {
		_, ok := registry.Lookup(token)
		return !ok
	})
	if _, err := svc.Snapshot(callCtx(t), token); !errors.Is(err, models.ErrGameNotFound) {
		t.Fatalf("snapshot after completion: want ErrGameNotFound, got %v", err)
	}
}

func TestCrashedGameRestartsFreshUnderSameToken(t *testing.T) {
	svc, registry := newTestStack(t)
	token, err := svc.StartGame("scripted")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	original, _ := registry.Lookup(token)

	// Build up some state, then crash the worker.
	for i := 1; i <= 3; i++ {
		res, err := svc.call(callCtx(t), token, game.Event{Op: "count"})
		if err != nil {
			t.Fatalf("count %d: %v", i, err)
		}
		if res.Snapshot != i {
			t.Fatalf("count %d: counter = %v", i, res.Snapshot)
		}
	}
	if _, err := svc.call(callCtx(t), token, game.Event{Op: "panic"}); !errors.Is(err, models.ErrGameNotFound) {
		t.Fatalf("panic call: want ErrGameNotFound, got %v", err)
	}

	// Transient restart: same token, different worker, fresh state.
	waitFor(t, "replacement worker", func() bool {
		w, ok := registry.Lookup(token)
		return ok && w != original
	})
	res, err := svc.call(callCtx(t), token, game.Event{Op: "count"})
	if err != nil {
		t.Fatalf("count after restart: %v", err)
	}
	if res.Snapshot != 1 {
		t.Fatalf("state survived the crash: counter = %v", res.Snapshot)
	}
}
