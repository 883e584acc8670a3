package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/DarshanCHMSR/search-engine/pkg/constant"
)

func TestCredentialStore_HashAndVerify(t *testing.T) {
	store := NewCredentialStore(bcrypt.MinCost)

	hash, err := store.Hash("Secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret1", hash)

	assert.True(t, store.Verify("Secret1", hash))
	assert.False(t, store.Verify("secret1", hash))
	assert.False(t, store.Verify("", hash))
}

func TestCredentialStore_VerifyGarbageHash(t *testing.T) {
	store := NewCredentialStore(bcrypt.MinCost)

	// A malformed hash is a mismatch, never a panic or error.
	assert.False(t, store.Verify("Secret1", "not-a-bcrypt-hash"))
}

func TestCredentialStore_HashesDiffer(t *testing.T) {
	store := NewCredentialStore(bcrypt.MinCost)

	h1, err := store.Hash("Secret1")
	require.NoError(t, err)
	h2, err := store.Hash("Secret1")
	require.NoError(t, err)

	// Salted: same password, different hashes, both verify.
	assert.NotEqual(t, h1, h2)
	assert.True(t, store.Verify("Secret1", h1))
	assert.True(t, store.Verify("Secret1", h2))
}

func TestNewCredentialStore_CostOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"zero falls back to default", 0, constant.DefaultBcryptCost},
		{"negative falls back to default", -1, constant.DefaultBcryptCost},
		{"above max falls back to default", bcrypt.MaxCost + 1, constant.DefaultBcryptCost},
		{"valid cost kept", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewCredentialStore(tt.cost)
			assert.Equal(t, tt.want, store.cost)
		})
	}
}
