package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectModel mirrors the 'projects' table.
type ProjectModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Description      string    `gorm:"type:text"`
	ThumbnailURL     string    `gorm:"type:text"`
	ProjectType      string    `gorm:"type:varchar(50);not null"`
	GenerationsCount int       `gorm:"not null"`
	Status           string    `gorm:"type:varchar(20);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	LogoURL        string    `gorm:"type:text"`
	Voice          string    `gorm:"type:varchar(100)"`
	TargetAudience string    `gorm:"type:text"`
	Niche          string    `gorm:"type:varchar(255)"`
	IsActive       bool      `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// SocialAccountModel mirrors the 'social_accounts' table.
type SocialAccountModel struct {
	ID              uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_social_accounts_user_platform_account"`
	BrandID         *uuid.UUID  `gorm:"type:uuid"`
	Brand           *BrandModel `gorm:"foreignKey:BrandID"`
	Platform        string      `gorm:"type:varchar(20);not null;uniqueIndex:idx_social_accounts_user_platform_account"`
	AccountID       string      `gorm:"type:varchar(255);not null;uniqueIndex:idx_social_accounts_user_platform_account"`
	Username        string      `gorm:"type:varchar(255)"`
	DisplayName     string      `gorm:"type:varchar(255)"`
	ProfileImageURL string      `gorm:"type:text"`
	AccessToken     string      `gorm:"type:text"`
	RefreshToken    string      `gorm:"type:text"`
	TokenExpiresAt  *time.Time
	IsActive        bool `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SocialAccountModel) TableName() string {
	return "social_accounts"
}

// AnalyticsDataModel mirrors the 'analytics_data' table. (social_account_id, date) is unique.
type AnalyticsDataModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SocialAccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_analytics_account_date"`
	Date            time.Time `gorm:"type:date;not null;uniqueIndex:idx_analytics_account_date"`
	Followers       int64     `gorm:"not null"`
	Following       int64     `gorm:"not null"`
	Likes           int64     `gorm:"not null"`
	Comments        int64     `gorm:"not null"`
	Shares          int64     `gorm:"not null"`
	Impressions     int64     `gorm:"not null"`
	Reach           int64     `gorm:"not null"`
	ProfileViews    int64     `gorm:"not null"`
	WebsiteClicks   int64     `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsDataModel) TableName() string {
	return "analytics_data"
}

// AutomationRuleModel mirrors the 'automation_rules' table.
type AutomationRuleModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	SocialAccountID uuid.UUID `gorm:"type:uuid;not null"`
	Name            string    `gorm:"type:varchar(255);not null"`
	AutomationType  string    `gorm:"type:varchar(50);not null"`
	Target          string    `gorm:"type:text"`
	Message         string    `gorm:"type:text"`
	IntervalMinutes int       `gorm:"not null"`
	DailyLimit      int       `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);not null"`
	IsActive        bool      `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AutomationRuleModel) TableName() string {
	return "automation_rules"
}
