package service

import (
	"context"
	"errors"
	"fmt"

	"kenyareal/internal/model"
	"kenyareal/internal/repository"
)

// AccountService exposes administrative views over the account list.
type AccountService interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
	CountByRole(ctx context.Context) (map[model.Role]int, error)
	ResetAccounts(ctx context.Context) (int, error)
}

type accountService struct {
	repo     repository.AccountRepository
	sessions SessionService
}

// NewAccountService creates a new account service.
func NewAccountService(repo repository.AccountRepository, sessions SessionService) AccountService {
	return &accountService{
		repo:     repo,
		sessions: sessions,
	}
}

// ListAccounts returns every account without credentials.
func (s *accountService) ListAccounts(ctx context.Context) ([]model.Account, error) {
	stored, err := s.repo.LoadAccounts(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return []model.Account{}, nil
		}
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	out := make([]model.Account, 0, len(stored))
	for _, a := range stored {
		out = append(out, a.Public())
	}
	return out, nil
}

func (s *accountService) CountByRole(ctx context.Context) (map[model.Role]int, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[model.Role]int)
	for _, a := range accounts {
		counts[a.Role]++
	}
	return counts, nil
}

// ResetAccounts restores the seed accounts and signs everybody out.
func (s *accountService) ResetAccounts(ctx context.Context) (int, error) {
	if err := s.sessions.Reset(ctx); err != nil {
		return 0, fmt.Errorf("reset accounts: %w", err)
	}
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return 0, err
	}
	return len(accounts), nil
}
