package jobdescriptions

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[int64][]JobDescription
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[int64][]JobDescription)}
}

// Insert stores jd.
func (r *MemoryRepo) Insert(ctx context.Context, jd JobDescription) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[jd.CompanyID] = append(r.data[jd.CompanyID], jd)
	return nil
}

// ListByCompany returns a company's job descriptions, newest first.
func (r *MemoryRepo) ListByCompany(ctx context.Context, companyID int64) ([]JobDescription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	stored := r.data[companyID]
	out := make([]JobDescription, len(stored))
	copy(out, stored)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
