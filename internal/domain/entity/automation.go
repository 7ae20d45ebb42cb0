package entity

import (
	"time"

	"github.com/google/uuid"
)

type AutomationType string

const (
	AutomationTypeAutoReply     AutomationType = "auto_reply"
	AutomationTypeScheduledPost AutomationType = "scheduled_post"
	AutomationTypeEngagement    AutomationType = "engagement"
)

type AutomationStatus string

const (
	AutomationStatusActive    AutomationStatus = "active"
	AutomationStatusPaused    AutomationStatus = "paused"
	AutomationStatusCompleted AutomationStatus = "completed"
)

const (
	DefaultIntervalMinutes = 60
	DefaultDailyLimit      = 100
)

// AutomationRule describes a recurring action on a social account. Rules are stored, not executed.
type AutomationRule struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	SocialAccountID uuid.UUID
	Name            string
	AutomationType  AutomationType
	Target          string
	Message         string
	IntervalMinutes int
	DailyLimit      int
	Status          AutomationStatus
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
