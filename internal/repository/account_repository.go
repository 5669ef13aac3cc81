package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kenyareal/internal/model"
)

// Storage keys for the two persisted documents.
const (
	AccountsKey = "kenyareal_users"
	SessionKey  = "kenyareal_user"
)

var (
	// ErrDocumentNotFound is returned when a document has never been written or was removed.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDocumentCorrupt is returned when a stored document cannot be decoded.
	ErrDocumentCorrupt = errors.New("document corrupt")
)

// AccountRepository reads and writes the account list and the active session
// as whole documents.
type AccountRepository interface {
	LoadAccounts(ctx context.Context) ([]model.StoredAccount, error)
	SaveAccounts(ctx context.Context, accounts []model.StoredAccount) error
	DeleteAccounts(ctx context.Context) error
	LoadSession(ctx context.Context) (*model.Account, error)
	SaveSession(ctx context.Context, account model.Account) error
	DeleteSession(ctx context.Context) error
}

type accountRepository struct {
	store DocumentStore
}

// NewAccountRepository creates an account repository over a document store.
func NewAccountRepository(store DocumentStore) AccountRepository {
	return &accountRepository{store: store}
}

// LoadAccounts returns ErrDocumentNotFound or ErrDocumentCorrupt when the list is unusable.
func (r *accountRepository) LoadAccounts(ctx context.Context) ([]model.StoredAccount, error) {
	var accounts []model.StoredAccount
	if err := r.load(ctx, AccountsKey, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepository) SaveAccounts(ctx context.Context, accounts []model.StoredAccount) error {
	return r.save(ctx, AccountsKey, accounts)
}

func (r *accountRepository) DeleteAccounts(ctx context.Context) error {
	return r.store.Delete(ctx, AccountsKey)
}

// LoadSession returns ErrDocumentNotFound when nobody is signed in.
func (r *accountRepository) LoadSession(ctx context.Context) (*model.Account, error) {
	var account *model.Account
	if err := r.load(ctx, SessionKey, &account); err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrDocumentCorrupt
	}
	return account, nil
}

func (r *accountRepository) SaveSession(ctx context.Context, account model.Account) error {
	return r.save(ctx, SessionKey, account)
}

func (r *accountRepository) DeleteSession(ctx context.Context) error {
	return r.store.Delete(ctx, SessionKey)
}

func (r *accountRepository) load(ctx context.Context, key string, dst any) error {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return ErrDocumentNotFound
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDocumentCorrupt, key, err)
	}
	return nil
}

func (r *accountRepository) save(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := r.store.Put(ctx, key, payload); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
