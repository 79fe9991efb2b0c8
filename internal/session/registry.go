package session

import (
	"errors"
	"sync"
)

var errTokenInUse = errors.New("token already registered")

// Registry is the one resource shared across games: a concurrency-safe map
// from token to the worker that owns that game. Per-token operations are
// linearizable under the single lock; there is no ordering guarantee across
// different tokens.
type Registry struct {
	mu      sync.RWMutex
	workers map[string]*Worker
}

func NewRegistry() *Registry {
	return &Registry{workers: map[string]*Worker{}}
}

// Register binds token to w. It fails if the token is already present, which
// is how id collisions surface.
func (r *Registry) Register(token string, w *Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workers[token]; ok {
		return errTokenInUse
	}
	r.workers[token] = w
	return nil
}

func (r *Registry) Lookup(token string) (*Worker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.workers[token]
	return w, ok
}

// Replace swaps in a restarted worker under an existing token binding.
func (r *Registry) Replace(token string, w *Worker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workers[token] = w
}

// Deregister removes the binding if it still points at w. The guard keeps a
// late exit notification from a superseded worker from unbinding its
// replacement.
func (r *Registry) Deregister(token string, w *Worker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.workers[token]; ok && current == w {
		delete(r.workers, token)
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.workers)
}
