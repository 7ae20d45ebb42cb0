package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format of analytics dates.
const DateLayout = "2006-01-02"

// AnalyticsMetrics is the per-day metrics vector of a social account.
type AnalyticsMetrics struct {
	Followers     int64
	Following     int64
	Likes         int64
	Comments      int64
	Shares        int64
	Impressions   int64
	Reach         int64
	ProfileViews  int64
	WebsiteClicks int64
}

// Negative returns the names of metrics below zero, in declaration order.
func (m AnalyticsMetrics) Negative() []string {
	values := []struct {
		name  string
		value int64
	}{
		{"followers", m.Followers},
		{"following", m.Following},
		{"likes", m.Likes},
		{"comments", m.Comments},
		{"shares", m.Shares},
		{"impressions", m.Impressions},
		{"reach", m.Reach},
		{"profile_views", m.ProfileViews},
		{"website_clicks", m.WebsiteClicks},
	}

	var fields []string
	for _, v := range values {
		if v.value < 0 {
			fields = append(fields, v.name)
		}
	}

	return fields
}

// AnalyticsData is one (social account, date) snapshot.
type AnalyticsData struct {
	ID              uuid.UUID
	SocialAccountID uuid.UUID
	Date            time.Time // Midnight UTC.
	AnalyticsMetrics
	CreatedAt time.Time
	UpdatedAt time.Time
}
