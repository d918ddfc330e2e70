// Package session holds the persistent client session: the bearer token and
// the last-known user email. The store has no expiry logic of its own; the
// backend decides when a token stops working, and the API layer clears the
// session on the first rejected call.
package session

import (
	"fyne.io/fyne/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Preference keys for the persisted session values.
const (
	KeyToken     = "session_token"
	KeyUserEmail = "session_user_email"
)

// Identity is the user identity recovered from the bearer token payload.
type Identity struct {
	UserID string
	Email  string
}

// Store reads and writes the session through Fyne preferences. It is the
// single place allowed to touch the persisted token; everything else goes
// through it.
type Store struct {
	prefs fyne.Preferences
}

// NewStore creates a session store backed by the app's preferences.
func NewStore(app fyne.App) *Store {
	return &Store{prefs: app.Preferences()}
}

// Begin persists a fresh session after a successful sign-in.
func (s *Store) Begin(token, email string) {
	s.prefs.SetString(KeyToken, token)
	s.prefs.SetString(KeyUserEmail, email)
}

// Clear wipes the persisted session. Called on logout and whenever the
// backend rejects the token; every in-flight and future call sees the
// cleared state immediately.
func (s *Store) Clear() {
	s.prefs.SetString(KeyToken, "")
	s.prefs.SetString(KeyUserEmail, "")
}

// Token returns the current bearer token, empty when signed out.
func (s *Store) Token() string {
	return s.prefs.String(KeyToken)
}

// Email returns the cached user email, empty when unknown.
func (s *Store) Email() string {
	return s.prefs.String(KeyUserEmail)
}

// SetEmail updates the cached email, e.g. after the profile endpoint
// returned a fresher value than the one captured at sign-in.
func (s *Store) SetEmail(email string) {
	if email != "" {
		s.prefs.SetString(KeyUserEmail, email)
	}
}

// IsAuthenticated reports whether a token is present. Presence is all the
// client can know; validity is the backend's call.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Identity decodes the token payload without verifying the signature and
// returns the embedded user id and email. Verification stays server-side;
// this is only used to label the UI and to detect owner-only actions.
// ok is false for absent or malformed tokens.
func (s *Store) Identity() (Identity, bool) {
	token := s.Token()
	if token == "" {
		return Identity{}, false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Identity{}, false
	}

	id := Identity{
		UserID: firstString(claims, "id", "_id", "userId"),
		Email:  firstString(claims, "email"),
	}
	if id.UserID == "" && id.Email == "" {
		return Identity{}, false
	}
	if id.Email == "" {
		id.Email = s.Email()
	}
	return id, true
}

// firstString returns the first claim among keys that holds a non-empty
// string value.
func firstString(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
