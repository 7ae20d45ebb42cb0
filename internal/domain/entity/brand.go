package entity

import (
	"time"

	"github.com/google/uuid"
)

// Brand groups social accounts under one voice and audience.
type Brand struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Description    string
	LogoURL        string
	Voice          string
	TargetAudience string
	Niche          string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
