package models

import "time"

// RescuerProfile is keyed by the owning user id, one per rescuer.
type RescuerProfile struct {
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Experience string    `json:"experience"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DeviceToken maps a user to their push delivery token, last write wins.
type DeviceToken struct {
	UserID    string    `json:"user_id"`
	PushToken string    `json:"push_token"`
	UpdatedAt time.Time `json:"updated_at"`
}
