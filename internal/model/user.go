package model

import (
	"strings"
	"time"
)

// User is the backend's user record as seen by the client. Read-only.
type User struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayName derives a friendly name from the email local part
// ("ravi@example.com" -> "Ravi"), falling back to "Traveler".
func (u *User) DisplayName() string {
	local, _, found := strings.Cut(u.Email, "@")
	if !found || local == "" {
		return "Traveler"
	}
	return strings.ToUpper(local[:1]) + local[1:]
}

// Place is a single destination-search result. The backend returns loosely
// shaped records; missing fields are normalized at the API boundary.
type Place struct {
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	ImageURL string  `json:"image"`
	Rating   float64 `json:"rating"`
}

// HasRating reports whether the backend supplied a usable rating.
func (p *Place) HasRating() bool {
	return p.Rating > 0
}
