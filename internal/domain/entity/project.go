package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProjectType string

const (
	ProjectTypeIdea              ProjectType = "idea"
	ProjectTypeScript            ProjectType = "script"
	ProjectTypeProductionPackage ProjectType = "production_package"
)

type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// DefaultGenerationsCount is stored on every new project.
const DefaultGenerationsCount = 1

// Project is a unit of generated content owned by a user.
type Project struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Title            string
	Description      string
	ThumbnailURL     string
	ProjectType      ProjectType
	GenerationsCount int
	Status           ProjectStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
