package session

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/DanCouper/joust/internal/game"
	"github.com/DanCouper/joust/internal/models"
)

// Supervisor spawns and supervises one worker per game. Its restart policy
// is transient: a worker that exits abnormally is restarted under the same
// token binding with a FRESH engine (in-flight game data is not recovered);
// a worker that completes deliberately is deregistered, never restarted.
type Supervisor struct {
	engines   *game.Registry
	registry  *Registry
	db        *sql.DB // optional session audit store; nil disables it
	queueSize int
}

func NewSupervisor(engines *game.Registry, registry *Registry, db *sql.DB, queueSize int) *Supervisor {
	return &Supervisor{
		engines:   engines,
		registry:  registry,
		db:        db,
		queueSize: queueSize,
	}
}

// StartGame resolves the game-type tag through the dispatch table, spawns a
// worker running that engine's initial state, registers it, and returns the
// new token. Unknown tags fail with models.ErrNonexistentGameType and no
// side effects.
func (s *Supervisor) StartGame(gameType string) (string, error) {
	factory, ok := s.engines.Lookup(gameType)
	if !ok {
		return "", models.ErrNonexistentGameType
	}

	// Token generation accepts collisions as negligible; the registry insert
	// is the backstop, so retry on the off chance.
	var w *Worker
	token := ""
	for attempt := 0; ; attempt++ {
		token = GenerateToken()
		w = newWorker(token, factory(token), s.queueSize)
		if err := s.registry.Register(token, w); err == nil {
			break
		}
		if attempt >= 4 {
			return "", fmt.Errorf("register game %s: token collisions exhausted retries", gameType)
		}
	}

	if s.db != nil {
		if err := models.CreateSession(s.db, token, gameType); err != nil {
			// Audit is best-effort; the game itself is unaffected.
			log.Printf("session audit insert failed: token=%s err=%v", token, err)
		}
	}

	go w.run()
	go s.supervise(w, factory, gameType)
	return token, nil
}

func (s *Supervisor) supervise(w *Worker, factory game.Factory, gameType string) {
	normal := <-w.exited
	if normal {
		s.registry.Deregister(w.Token, w)
		if s.db != nil {
			if err := models.FinishSession(s.db, w.Token, models.SessionFinished); err != nil {
				log.Printf("session audit finish failed: token=%s err=%v", w.Token, err)
			}
		}
		return
	}

	// Abnormal exit: contained to this one game. Restart fresh.
	log.Printf("game worker exited abnormally; restarting with fresh state: token=%s game_type=%s", w.Token, gameType)
	if s.db != nil {
		if err := models.RecordSessionRestart(s.db, w.Token); err != nil {
			log.Printf("session audit restart mark failed: token=%s err=%v", w.Token, err)
		}
	}
	nw := newWorker(w.Token, factory(w.Token), s.queueSize)
	s.registry.Replace(w.Token, nw)
	go nw.run()
	go s.supervise(nw, factory, gameType)
}
