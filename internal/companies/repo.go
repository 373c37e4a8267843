package companies

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("company not found")
	ErrExists       = errors.New("user already has a company profile")
	ErrInvalidInput = errors.New("invalid input")
)

// Repo persists company profiles; a user owns at most one.
type Repo interface {
	Create(ctx context.Context, c Company) (Company, error)
	Update(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id int64) (Company, error)
	GetByUserID(ctx context.Context, userID string) (Company, error)
}
