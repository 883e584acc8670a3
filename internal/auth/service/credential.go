package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/DarshanCHMSR/search-engine/pkg/constant"
)

// CredentialStore hashes and verifies passwords. It holds no state beyond the
// bcrypt cost and is safe for unlimited concurrent use.
type CredentialStore struct {
	cost int
}

func NewCredentialStore(cost int) *CredentialStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = constant.DefaultBcryptCost
	}
	return &CredentialStore{cost: cost}
}

func (c *CredentialStore) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash. A mismatch is not an error.
func (c *CredentialStore) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
