package repository

import (
	"context"
	"sort"
	"sync"

	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase/interfaces"
)

// EscrowMemoryRepository keeps escrows in process memory. Snapshots are
// deep-copied on the way in and out so callers never share state with the
// store. Used for local runs and tests.
type EscrowMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Escrow
}

var _ interfaces.IEscrowRepository = (*EscrowMemoryRepository)(nil)

func NewEscrowMemoryRepository() *EscrowMemoryRepository {
	return &EscrowMemoryRepository{items: map[string]entities.Escrow{}}
}

func (r *EscrowMemoryRepository) Create(_ context.Context, e entities.Escrow) (entities.Escrow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[e.ID]; ok {
		return entities.Escrow{}, interfaces.ErrEscrowAlreadyExists
	}
	e.Version = 1
	r.items[e.ID] = e.Clone()
	return e.Clone(), nil
}

func (r *EscrowMemoryRepository) GetByID(_ context.Context, id string) (entities.Escrow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[id]
	if !ok {
		return entities.Escrow{}, nil
	}
	return e.Clone(), nil
}

func (r *EscrowMemoryRepository) Update(_ context.Context, e entities.Escrow) (entities.Escrow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[e.ID]
	if !ok || stored.Version != e.Version {
		return entities.Escrow{}, interfaces.ErrVersionConflict
	}
	e.Version++
	r.items[e.ID] = e.Clone()
	return e.Clone(), nil
}

func (r *EscrowMemoryRepository) ListActiveIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	active := make([]entities.Escrow, 0, len(r.items))
	for _, e := range r.items {
		if !e.Status.IsTerminal() {
			active = append(active, e)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if !active[i].CreatedAt.Equal(active[j].CreatedAt) {
			return active[i].CreatedAt.Before(active[j].CreatedAt)
		}
		return active[i].ID < active[j].ID
	})
	ids := make([]string, 0, len(active))
	for _, e := range active {
		ids = append(ids, e.ID)
	}
	return ids, nil
}
