package models

import (
	"time"
)

type Event struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	EventDate   string    `db:"event_date" json:"eventDate"`
	EventTime   *string   `db:"event_time" json:"eventTime,omitempty"`
	ChurchID    *int      `db:"church_id" json:"churchId,omitempty"`
	LocationID  *int      `db:"location_id" json:"locationId,omitempty"`
	BannerURL   *string   `db:"banner_url" json:"bannerUrl,omitempty"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
