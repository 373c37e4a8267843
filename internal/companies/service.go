package companies

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create registers the single company profile of c.UserID.
func (s *Service) Create(ctx context.Context, c Company) (Company, error) {
	if err := s.ready(); err != nil {
		return Company{}, err
	}
	c = trim(c)
	if c.UserID == "" || c.Name == "" || c.Address == "" {
		return Company{}, fmt.Errorf("%w: user_id, name and address are required", ErrInvalidInput)
	}
	if _, err := s.Repo.GetByUserID(ctx, c.UserID); err == nil {
		return Company{}, ErrExists
	} else if !errors.Is(err, ErrNotFound) {
		return Company{}, err
	}
	return s.Repo.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, c Company) (Company, error) {
	if err := s.ready(); err != nil {
		return Company{}, err
	}
	c = trim(c)
	if c.ID <= 0 || c.Name == "" || c.Address == "" {
		return Company{}, fmt.Errorf("%w: id, name and address are required", ErrInvalidInput)
	}
	return s.Repo.Update(ctx, c)
}

func (s *Service) GetByUserID(ctx context.Context, userID string) (Company, error) {
	if err := s.ready(); err != nil {
		return Company{}, err
	}
	if strings.TrimSpace(userID) == "" {
		return Company{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetByUserID(ctx, strings.TrimSpace(userID))
}

// CompanyExists reports whether a company with id is registered.
func (s *Service) CompanyExists(ctx context.Context, id int64) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) ready() error {
	if s == nil || s.Repo == nil {
		return errors.New("companies service not configured")
	}
	return nil
}

func trim(c Company) Company {
	c.UserID = strings.TrimSpace(c.UserID)
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	c.Description = strings.TrimSpace(c.Description)
	return c
}
