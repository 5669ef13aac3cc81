package model

import "strings"

// Role is the kind of account. Admin exists only in seed data.
type Role string

const (
	RoleBuyer Role = "buyer"
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

// SelfAssignable reports whether signup may create an account with this role.
func (r Role) SelfAssignable() bool {
	return r == RoleBuyer || r == RoleAgent
}

// Preferences captures what a buyer is looking for.
type Preferences struct {
	MaxPrice       float64  `json:"maxPrice"`
	MinBedrooms    int      `json:"minBedrooms"`
	PreferredAreas []string `json:"preferredAreas"`
	PropertyTypes  []string `json:"propertyTypes"`
}

// Account is a user as seen by the rest of the application. It never carries a password.
type Account struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	Avatar          string      `json:"avatar"`
	Role            Role        `json:"role"`
	SavedProperties []string    `json:"savedProperties"`
	Preferences     Preferences `json:"preferences"`
}

// StoredAccount is the persisted form of an account, including its credential.
type StoredAccount struct {
	Account
	Password string `json:"password"`
}

// Public returns a deep copy of the account with the credential stripped.
func (s StoredAccount) Public() Account {
	return s.Account.Clone()
}

// Clone returns a deep copy so callers cannot mutate shared slices.
func (a Account) Clone() Account {
	out := a
	out.SavedProperties = cloneStrings(a.SavedProperties)
	out.Preferences.PreferredAreas = cloneStrings(a.Preferences.PreferredAreas)
	out.Preferences.PropertyTypes = cloneStrings(a.Preferences.PropertyTypes)
	return out
}

// HasSaved reports whether propertyID is in the saved list.
func (a Account) HasSaved(propertyID string) bool {
	for _, id := range a.SavedProperties {
		if id == propertyID {
			return true
		}
	}
	return false
}

// EmailEquals compares emails case-insensitively.
func EmailEquals(a, b string) bool {
	return strings.EqualFold(a, b)
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
