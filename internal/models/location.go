package models

import (
	"time"
)

type Location struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Latitude  *string   `db:"latitude" json:"latitude,omitempty"`
	Longitude *string   `db:"longitude" json:"longitude,omitempty"`
	Landmark  *string   `db:"landmark" json:"landmark,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
