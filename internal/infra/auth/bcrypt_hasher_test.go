package auth

import (
	"testing"

	"syncfloww/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newFastHasher(strength *config.PasswordStrengthConfig) *bcryptHasher {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: strength,
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newFastHasher(nil)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_DefaultCostWhenUnset(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_ValidatePasswordStrength_Defaults(t *testing.T) {
	hasher := newFastHasher(nil)

	tests := []struct {
		name     string
		password string
		problems int
	}{
		{name: "acceptable", password: "correct horse", problems: 0},
		{name: "too short", password: "abc", problems: 1},
		{name: "numeric", password: "12345678", problems: 1},
		{name: "short and numeric", password: "123", problems: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, hasher.ValidatePasswordStrength(tt.password), tt.problems)
		})
	}
}

func TestBcryptHasher_ValidatePasswordStrength_Configured(t *testing.T) {
	hasher := newFastHasher(&config.PasswordStrengthConfig{
		MinLength:        10,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	})

	assert.Empty(t, hasher.ValidatePasswordStrength("Valid$Phrase2024"))

	problems := hasher.ValidatePasswordStrength("password")
	assert.Contains(t, problems, "This password is too short. It must contain at least 10 characters.")
	assert.Contains(t, problems, "This password must contain at least one uppercase letter.")
	assert.Contains(t, problems, "This password must contain at least one number.")
	assert.Contains(t, problems, "This password must contain at least one special character.")
}
