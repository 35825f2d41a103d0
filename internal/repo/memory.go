package repo

import (
	"context"
	"slices"
	"sync"
)

type tableRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*Record
}

func NewTableRepoInMemory() TableRepo {
	return &tableRepoInMemory{store: make(map[string]*Record)}
}

func (r *tableRepoInMemory) Save(_ context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.store[rec.Name] = &cp
	return nil
}

func (r *tableRepoInMemory) FindByName(_ context.Context, name string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.store[name]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *tableRepoInMemory) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.store))
	for name := range r.store {
		out = append(out, name)
	}
	slices.Sort(out)
	return out, nil
}
