package vets

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("veterinarian not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Veterinarian, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Veterinarian, error) {
	if id <= 0 {
		return Veterinarian{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Exists se usa desde visits para validar el veterinario sin ciclos de imports.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
