package preference

import (
	"context"
	"sync"

	dompref "example.com/vibe-storefront/app/internal/domain/preference"
)

type Service struct {
	mu   sync.Mutex
	repo dompref.Repository
}

func NewService(repo dompref.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Theme(ctx context.Context, owner string) (dompref.Theme, error) {
	return s.repo.LoadTheme(ctx, owner)
}

func (s *Service) SetTheme(ctx context.Context, owner string, theme dompref.Theme) error {
	if _, err := dompref.ParseTheme(string(theme)); err != nil {
		return err
	}
	return s.repo.SaveTheme(ctx, owner, theme)
}

func (s *Service) ToggleTheme(ctx context.Context, owner string) (dompref.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.LoadTheme(ctx, owner)
	if err != nil {
		return "", err
	}
	next := current.Toggle()
	if err := s.repo.SaveTheme(ctx, owner, next); err != nil {
		return "", err
	}
	return next, nil
}
