// Package memory keeps the homestead document in process. It backs the server
// when no MongoDB URI is configured, and the tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mamadbah2/homestead/internal/domain/models"
	"github.com/mamadbah2/homestead/internal/repository"
)

// Repository is a mutex-guarded in-memory store.
type Repository struct {
	mu        sync.RWMutex
	state     *models.HomesteadState
	snapshots []models.PlanSnapshot
}

var (
	_ repository.StateRepository    = (*Repository)(nil)
	_ repository.SnapshotRepository = (*Repository)(nil)
)

// New returns an empty repository.
func New() *Repository {
	return &Repository{}
}

// LoadState returns a copy of the saved state.
func (r *Repository) LoadState(_ context.Context) (models.HomesteadState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.state == nil {
		return models.HomesteadState{}, repository.ErrStateNotFound
	}
	return r.state.Clone(), nil
}

// SaveState stores a copy of state.
func (r *Repository) SaveState(_ context.Context, state models.HomesteadState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := state.Clone()
	r.state = &cp
	return nil
}

// SaveSnapshot appends a snapshot.
func (r *Repository) SaveSnapshot(_ context.Context, snapshot models.PlanSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

// ListSnapshots returns snapshots newest first.
func (r *Repository) ListSnapshots(_ context.Context, limit int) ([]models.PlanSnapshot, error) {
	r.mu.RLock()
	out := append([]models.PlanSnapshot(nil), r.snapshots...)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
