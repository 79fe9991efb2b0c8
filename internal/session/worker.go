package session

import (
	"context"
	"log"
	"runtime/debug"

	"github.com/DanCouper/joust/internal/game"
	"github.com/DanCouper/joust/internal/models"
)

type call struct {
	ev    game.Event
	reply chan callResult
}

type callResult struct {
	res game.Result
	err error
}

// Worker is one game's sequential state machine: a single goroutine owning
// one engine, consuming calls from a bounded channel. Mutation is serialized
// purely by the loop processing one call at a time, so the engine needs no
// locking. The worker exits deliberately when its game reaches game_over, or
// abnormally if the engine panics; the supervisor observes which on exited.
type Worker struct {
	Token string

	engine game.Engine
	calls  chan call
	done   chan struct{} // closed once the loop has exited
	exited chan bool     // buffered; true = deliberate completion
}

func newWorker(token string, engine game.Engine, queueSize int) *Worker {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Worker{
		Token:  token,
		engine: engine,
		calls:  make(chan call, queueSize),
		done:   make(chan struct{}),
		exited: make(chan bool, 1),
	}
}

// Call sends ev to the worker and waits for its reply. A caller that gives
// up (ctx done) does not roll back a transition the worker has already
// committed; that at-least-once window is accepted.
func (w *Worker) Call(ctx context.Context, ev game.Event) (game.Result, error) {
	c := call{ev: ev, reply: make(chan callResult, 1)}
	select {
	case w.calls <- c:
	case <-w.done:
		return game.Result{}, models.ErrGameNotFound
	case <-ctx.Done():
		return game.Result{}, ctx.Err()
	}
	select {
	case r := <-c.reply:
		return r.res, r.err
	case <-w.done:
		// The worker replies before exiting; drain the buffered reply if the
		// exit won the race.
		select {
		case r := <-c.reply:
			return r.res, r.err
		default:
			return game.Result{}, models.ErrGameNotFound
		}
	case <-ctx.Done():
		return game.Result{}, ctx.Err()
	}
}

// run is the worker loop. A panic in the engine is contained here: it marks
// the exit abnormal and the supervisor decides what happens next. No other
// game is affected.
func (w *Worker) run() {
	normal := false
	defer func() {
		if r := recover(); r != nil {
			log.Printf("game worker panic: token=%s err=%v\n%s", w.Token, r, debug.Stack())
			normal = false
		}
		close(w.done)
		w.exited <- normal
	}()

	for c := range w.calls {
		res, err := w.engine.Handle(c.ev)
		c.reply <- callResult{res: res, err: err}
		if w.engine.State() == game.StateOver {
			// Deliberate completion: the terminal state has been reached and
			// replied to. No restart.
			normal = true
			return
		}
	}
}
