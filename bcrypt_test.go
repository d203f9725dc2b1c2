package metawall_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	metawall "github.com/kelvin80121/metawall"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "Valid password",
			password: "securePassword123!",
			wantErr:  false,
		},
		{
			name:     "Empty password",
			password: "",
			wantErr:  true, // bcrypt can hash empty strings!
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := metawall.HashPassword(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotContains(t, hash, tt.password)

			err = metawall.ComparePasswordAndHash(tt.password, hash)
			assert.NoError(t, err)
		})
	}
}

func TestComparePasswordAndHash(t *testing.T) {
	password := "testPassword123!"
	hash, err := metawall.HashPassword(password)
	assert.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  bool
	}{
		{
			name:     "Matching password",
			password: password,
			hash:     hash,
			wantErr:  false,
		},
		{
			name:     "Wrong password",
			password: "differentPassword",
			hash:     hash,
			wantErr:  true,
		},
		{
			name:     "Malformed stored hash fails closed",
			password: password,
			hash:     "not-a-bcrypt-hash",
			wantErr:  true,
		},
		{
			name:     "Empty stored hash fails closed",
			password: password,
			hash:     "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := metawall.ComparePasswordAndHash(tt.password, tt.hash)

			if tt.wantErr {
				// Every failure is the same credential mismatch: nothing about
				// the stored representation leaks.
				assert.ErrorIs(t, err, metawall.ErrMismatchedHashAndPassword)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestHashPasswordIsRandomized(t *testing.T) {
	h1, err := metawall.HashPassword("same-password")
	assert.NoError(t, err)

	h2, err := metawall.HashPassword("same-password")
	assert.NoError(t, err)

	// Salted hashing: same plaintext, different representations, both verify.
	assert.NotEqual(t, h1, h2)
	assert.NoError(t, metawall.ComparePasswordAndHash("same-password", h1))
	assert.NoError(t, metawall.ComparePasswordAndHash("same-password", h2))
}
