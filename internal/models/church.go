package models

import (
	"time"
)

type Church struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Address         string    `db:"address" json:"address"`
	City            *string   `db:"city" json:"city,omitempty"`
	Province        *string   `db:"province" json:"province,omitempty"`
	Latitude        *string   `db:"latitude" json:"latitude,omitempty"`
	Longitude       *string   `db:"longitude" json:"longitude,omitempty"`
	PastorName      *string   `db:"pastor_name" json:"pastorName,omitempty"`
	ContactEmail    *string   `db:"contact_email" json:"contactEmail,omitempty"`
	ContactPhone    *string   `db:"contact_phone" json:"contactPhone,omitempty"`
	DateEstablished *string   `db:"date_established" json:"dateEstablished,omitempty"`
	IsActive        bool      `db:"is_active" json:"isActive"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}
