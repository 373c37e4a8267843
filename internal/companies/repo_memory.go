package companies

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]Company
	byUser map[string]int64
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[int64]Company),
		byUser: make(map[string]int64),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, c Company) (Company, error) {
	if err := ctx.Err(); err != nil {
		return Company{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUser[c.UserID]; ok {
		return Company{}, ErrExists
	}
	r.nextID++
	now := time.Now().UTC()
	c.ID = r.nextID
	c.CreatedAt = now
	c.UpdatedAt = now
	r.byID[c.ID] = c
	r.byUser[c.UserID] = c.ID
	return c, nil
}

func (r *MemoryRepo) Update(ctx context.Context, c Company) (Company, error) {
	if err := ctx.Err(); err != nil {
		return Company{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[c.ID]
	if !ok {
		return Company{}, ErrNotFound
	}
	existing.Name = c.Name
	existing.Address = c.Address
	existing.Description = c.Description
	existing.UpdatedAt = time.Now().UTC()
	r.byID[c.ID] = existing
	return existing, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Company, error) {
	if err := ctx.Err(); err != nil {
		return Company{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return Company{}, ErrNotFound
	}
	return c, nil
}

func (r *MemoryRepo) GetByUserID(ctx context.Context, userID string) (Company, error) {
	if err := ctx.Err(); err != nil {
		return Company{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUser[userID]
	if !ok {
		return Company{}, ErrNotFound
	}
	return r.byID[id], nil
}

var _ Repo = (*MemoryRepo)(nil)
