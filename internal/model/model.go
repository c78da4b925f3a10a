package model

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	SessionToken string
	LocationLat  string
	LocationLng  string
	Available    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DistressSignal is an open call for help. Its ID is minted per signal and is
// a different kind of value than a user's session token; the two must never
// be mixed up.
type DistressSignal struct {
	ID           string
	Name         string
	LocationLat  string
	LocationLng  string
	RespondCount int
	RaisedAt     time.Time
}
