package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kenyareal/internal/auth"
	apperrors "kenyareal/internal/errors"
	"kenyareal/internal/model"
	"kenyareal/internal/repository"
)

// Default artificial latencies for the mutating calls.
const (
	DefaultLoginLatency  = 600 * time.Millisecond
	DefaultSignupLatency = 700 * time.Millisecond
)

// SignupRequest carries the fields a new account is created from. Callers
// validate it; the manager stores it as given.
type SignupRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     model.Role
}

// SessionService owns the account list and the single active session.
type SessionService interface {
	Init(ctx context.Context) error
	Reset(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*model.Account, error)
	Signup(ctx context.Context, req SignupRequest) (*model.Account, error)
	Logout(ctx context.Context)
	Current() *model.Account
	IsLoading() bool
	SaveProperty(ctx context.Context, propertyID string) (*model.Account, error)
	UnsaveProperty(ctx context.Context, propertyID string) (*model.Account, error)
}

// SessionOptions tunes a SessionService. A zero latency means the default,
// a negative one disables the delay.
type SessionOptions struct {
	LoginLatency  time.Duration
	SignupLatency time.Duration
	Credentials   auth.Credentials
	Logger        *zap.SugaredLogger
}

type sessionService struct {
	repo          repository.AccountRepository
	credentials   auth.Credentials
	log           *zap.SugaredLogger
	loginLatency  time.Duration
	signupLatency time.Duration
	sleep         func(time.Duration)
	newID         func() string

	loading atomic.Bool

	mu      sync.Mutex
	current *model.Account
}

// NewSessionService creates a session service. Call Init before use.
func NewSessionService(repo repository.AccountRepository, opts SessionOptions) SessionService {
	s := &sessionService{
		repo:          repo,
		credentials:   opts.Credentials,
		log:           opts.Logger,
		loginLatency:  latency(opts.LoginLatency, DefaultLoginLatency),
		signupLatency: latency(opts.SignupLatency, DefaultSignupLatency),
		sleep:         time.Sleep,
		newID:         uuid.NewString,
	}
	if s.credentials == nil {
		s.credentials = auth.PlainCredentials{}
	}
	if s.log == nil {
		s.log = zap.NewNop().Sugar()
	}
	return s
}

func latency(d, def time.Duration) time.Duration {
	switch {
	case d == 0:
		return def
	case d < 0:
		return 0
	default:
		return d
	}
}

// Init seeds or repairs the account list and restores a persisted session.
func (s *sessionService) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ensureSeeded(ctx); err != nil {
		return err
	}

	account, err := s.repo.LoadSession(ctx)
	switch {
	case err == nil:
		s.current = account
	case errors.Is(err, repository.ErrDocumentNotFound):
		s.current = nil
	case errors.Is(err, repository.ErrDocumentCorrupt):
		s.log.Warnw("discarding unreadable session", "error", err)
		s.current = nil
		if err := s.repo.DeleteSession(ctx); err != nil {
			return fmt.Errorf("discard session: %w", err)
		}
	default:
		return fmt.Errorf("load session: %w", err)
	}
	return nil
}

// Reset replaces the account list with the seeds and ends the active session.
func (s *sessionService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.repo.DeleteSession(ctx); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	if err := s.repo.DeleteAccounts(ctx); err != nil {
		return fmt.Errorf("remove accounts: %w", err)
	}
	_, err := s.ensureSeeded(ctx)
	return err
}

// ensureSeeded must be called with mu held.
func (s *sessionService) ensureSeeded(ctx context.Context) ([]model.StoredAccount, error) {
	accounts, err := s.repo.LoadAccounts(ctx)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrDocumentNotFound):
	case errors.Is(err, repository.ErrDocumentCorrupt):
		s.log.Warnw("account list unreadable, reseeding", "error", err)
	default:
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	if len(accounts) == 0 {
		seeds, err := s.hashAll(SeedAccounts())
		if err != nil {
			return nil, err
		}
		if err := s.repo.SaveAccounts(ctx, seeds); err != nil {
			return nil, fmt.Errorf("seed accounts: %w", err)
		}
		s.log.Infow("seeded account list", "count", len(seeds))
		return seeds, nil
	}

	if !hasAdmin(accounts) {
		admin, err := s.hashAll([]model.StoredAccount{seedAdmin()})
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, admin...)
		if err := s.repo.SaveAccounts(ctx, accounts); err != nil {
			return nil, fmt.Errorf("restore admin: %w", err)
		}
		s.log.Infow("restored seed admin", "email", AdminEmail)
	}
	return accounts, nil
}

func (s *sessionService) hashAll(accounts []model.StoredAccount) ([]model.StoredAccount, error) {
	for i := range accounts {
		hashed, err := s.credentials.Hash(accounts[i].Password)
		if err != nil {
			return nil, err
		}
		accounts[i].Password = hashed
	}
	return accounts, nil
}

// begin marks a login or signup as outstanding. It fails if one already is.
func (s *sessionService) begin() error {
	if !s.loading.CompareAndSwap(false, true) {
		return apperrors.ErrAuthInProgress
	}
	return nil
}

func (s *sessionService) end() {
	s.loading.Store(false)
}

// Login matches the email exactly, including case.
func (s *sessionService) Login(ctx context.Context, email, password string) (*model.Account, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	s.sleep(s.loginLatency)

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.ensureSeeded(ctx)
	if err != nil {
		return nil, err
	}

	var found *model.StoredAccount
	for i := range accounts {
		if accounts[i].Email == email {
			found = &accounts[i]
			break
		}
	}
	if found == nil {
		return nil, apperrors.ErrAccountNotFound
	}
	if !s.credentials.Matches(found.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.startSession(ctx, found.Public())
}

// Signup rejects non-self-assignable roles before checking for a duplicate email.
func (s *sessionService) Signup(ctx context.Context, req SignupRequest) (*model.Account, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	s.sleep(s.signupLatency)

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.ensureSeeded(ctx)
	if err != nil {
		return nil, err
	}

	if !req.Role.SelfAssignable() {
		return nil, apperrors.ErrInvalidRole
	}
	for _, a := range accounts {
		if model.EmailEquals(a.Email, req.Email) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	password, err := s.credentials.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	created := model.StoredAccount{
		Account: model.Account{
			ID:              s.newID(),
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			Avatar:          DefaultAvatar,
			Role:            req.Role,
			SavedProperties: []string{},
			Preferences:     emptyPreferences(),
		},
		Password: password,
	}

	if err := s.repo.SaveAccounts(ctx, append(accounts, created)); err != nil {
		return nil, fmt.Errorf("save accounts: %w", err)
	}
	s.log.Infow("account created", "id", created.ID, "role", created.Role)

	return s.startSession(ctx, created.Public())
}

// startSession must be called with mu held.
func (s *sessionService) startSession(ctx context.Context, account model.Account) (*model.Account, error) {
	if err := s.repo.SaveSession(ctx, account); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.current = &account
	out := account.Clone()
	return &out, nil
}

// Logout always clears the in-memory session. Storage failures are only logged.
func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.repo.DeleteSession(ctx); err != nil {
		s.log.Errorw("remove persisted session", "error", err)
	}
}

func (s *sessionService) Current() *model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	out := s.current.Clone()
	return &out
}

func (s *sessionService) IsLoading() bool {
	return s.loading.Load()
}

func (s *sessionService) SaveProperty(ctx context.Context, propertyID string) (*model.Account, error) {
	return s.updateSaved(ctx, func(a *model.Account) bool {
		if a.HasSaved(propertyID) {
			return false
		}
		a.SavedProperties = append(a.SavedProperties, propertyID)
		return true
	})
}

func (s *sessionService) UnsaveProperty(ctx context.Context, propertyID string) (*model.Account, error) {
	return s.updateSaved(ctx, func(a *model.Account) bool {
		kept := a.SavedProperties[:0]
		for _, id := range a.SavedProperties {
			if id != propertyID {
				kept = append(kept, id)
			}
		}
		changed := len(kept) != len(a.SavedProperties)
		a.SavedProperties = kept
		return changed
	})
}

// updateSaved applies mutate to the active account and persists both documents when it reports a change.
func (s *sessionService) updateSaved(ctx context.Context, mutate func(*model.Account) bool) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, apperrors.ErrNotAuthenticated
	}
	updated := s.current.Clone()
	if !mutate(&updated) {
		out := updated.Clone()
		return &out, nil
	}

	accounts, err := s.ensureSeeded(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].ID == updated.ID {
			accounts[i].SavedProperties = updated.Clone().SavedProperties
			if err := s.repo.SaveAccounts(ctx, accounts); err != nil {
				return nil, fmt.Errorf("save accounts: %w", err)
			}
			break
		}
	}

	return s.startSession(ctx, updated)
}
