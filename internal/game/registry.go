package game

import "sync"

// Factory builds a fresh engine in its initial state for the game addressed
// by id.
type Factory func(id string) Engine

// Registry is the closed dispatch table from game-type tag to engine
// factory. Tags not registered here fail distinctly at StartGame time.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

func (r *Registry) Register(gameType string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[gameType] = factory
}

func (r *Registry) Lookup(gameType string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[gameType]
	return f, ok
}
