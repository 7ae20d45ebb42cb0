package auth

import (
	"fmt"
	"unicode"

	"syncfloww/config"
	"syncfloww/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPasswordMinLength = 8
	// bcrypt ignores input past 72 bytes.
	bcryptMaxPasswordLength = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	strength := config.PasswordStrengthConfig{MinLength: defaultPasswordMinLength, MaxLength: bcryptMaxPasswordLength}
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
		if strength.MinLength <= 0 {
			strength.MinLength = defaultPasswordMinLength
		}
		if strength.MaxLength <= 0 || strength.MaxLength > bcryptMaxPasswordLength {
			strength.MaxLength = bcryptMaxPasswordLength
		}
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength checks the configured rules; an empty result means the password is acceptable.
func (h *bcryptHasher) ValidatePasswordStrength(password string) []string {
	var problems []string

	if len([]rune(password)) < h.strength.MinLength {
		problems = append(problems, fmt.Sprintf("This password is too short. It must contain at least %d characters.", h.strength.MinLength))
	}
	if len(password) > h.strength.MaxLength {
		problems = append(problems, fmt.Sprintf("This password is too long. It must contain at most %d bytes.", h.strength.MaxLength))
	}

	var hasUpper, hasLower, hasDigit, hasSpecial, allDigits = false, false, false, false, password != ""
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
		if !unicode.IsDigit(r) {
			allDigits = false
		}
	}

	if allDigits {
		problems = append(problems, "This password is entirely numeric.")
	}
	if h.strength.RequireUppercase && !hasUpper {
		problems = append(problems, "This password must contain at least one uppercase letter.")
	}
	if h.strength.RequireLowercase && !hasLower {
		problems = append(problems, "This password must contain at least one lowercase letter.")
	}
	if h.strength.RequireNumbers && !hasDigit {
		problems = append(problems, "This password must contain at least one number.")
	}
	if h.strength.RequireSpecial && !hasSpecial {
		problems = append(problems, "This password must contain at least one special character.")
	}

	return problems
}
