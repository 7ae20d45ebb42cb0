package repository

import (
	"context"
	"errors"

	"syncfloww/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrBrandNotFound = errors.New("brand not found")

type BrandFilter struct {
	UserID   uuid.UUID
	IsActive *bool
	Search   string
	Ordering string // created_at | name, optional "-" prefix.
	Page     entity.PageRequest
}

type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Brand, error)
	List(ctx context.Context, filter BrandFilter) (*entity.Page[*entity.Brand], error)
	Update(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
