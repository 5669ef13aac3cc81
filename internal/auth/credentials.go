package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credential policies accepted by NewCredentials.
const (
	PolicyPlain  = "plain"
	PolicyBcrypt = "bcrypt"
)

// Credentials turns a password into its stored form and checks attempts against it.
type Credentials interface {
	Hash(password string) (string, error)
	Matches(stored, password string) bool
}

// NewCredentials returns the credential policy for name.
func NewCredentials(name string) (Credentials, error) {
	switch name {
	case "", PolicyPlain:
		return PlainCredentials{}, nil
	case PolicyBcrypt:
		return BcryptCredentials{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password hashing policy %q", name)
	}
}

// PlainCredentials stores passwords as given and compares them exactly.
type PlainCredentials struct{}

func (PlainCredentials) Hash(password string) (string, error) {
	return password, nil
}

func (PlainCredentials) Matches(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// BcryptCredentials stores bcrypt hashes.
type BcryptCredentials struct {
	Cost int
}

func (b BcryptCredentials) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (BcryptCredentials) Matches(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
