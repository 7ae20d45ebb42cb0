// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"syncfloww/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their (normalized) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity; the generated ID and timestamps are written back.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the mutable user fields.
	Update(ctx context.Context, user *entity.User) error

	// LockByID takes a row lock on the user for the rest of the transaction.
	LockByID(ctx context.Context, id uuid.UUID) error
}
