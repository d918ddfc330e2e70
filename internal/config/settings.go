// Package config persists user-tunable settings through Fyne preferences
// and applies environment overrides at startup.
package config

import (
	"os"
	"time"

	"fyne.io/fyne/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Defaults.
const (
	// DefaultAPIBaseURL is the hosted backend. The frontend historically
	// pointed at several deployments; this is the canonical one.
	DefaultAPIBaseURL = "https://ghumakkad-backend.onrender.com"

	DefaultLanguage     = "en"
	DefaultPollMinutes  = 5
	DefaultSearchMillis = 1200
)

// Preference keys.
const (
	prefKeyAPIBaseURL  = "api_base_url"
	prefKeyLanguage    = "language"
	prefKeyPollMinutes = "poll_minutes"
)

// Environment override variables, read from the process environment or a
// .env file next to the binary.
const (
	EnvAPIBaseURL = "GHUMAKKAD_API_URL"
	EnvLogLevel   = "GHUMAKKAD_LOG_LEVEL"
)

// Settings wraps the Fyne preferences store.
type Settings struct {
	prefs fyne.Preferences
}

// NewSettings creates settings backed by the app's preference store.
func NewSettings(app fyne.App) *Settings {
	return &Settings{prefs: app.Preferences()}
}

// LoadEnv reads a .env file if present and returns the chosen log level.
// A missing file is not an error; explicit environment variables win over
// file entries.
func LoadEnv(log zerolog.Logger) zerolog.Level {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	raw := os.Getenv(EnvLogLevel)
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		log.Warn().Str("value", raw).Msg("unknown log level, using info")
		return zerolog.InfoLevel
	}
	return level
}

// APIBaseURL returns the backend base URL. The environment override takes
// precedence over the stored preference.
func (s *Settings) APIBaseURL() string {
	if env := os.Getenv(EnvAPIBaseURL); env != "" {
		return env
	}
	return s.prefs.StringWithFallback(prefKeyAPIBaseURL, DefaultAPIBaseURL)
}

// SetAPIBaseURL stores the backend base URL preference.
func (s *Settings) SetAPIBaseURL(url string) {
	s.prefs.SetString(prefKeyAPIBaseURL, url)
}

// Language returns the UI language code.
func (s *Settings) Language() string {
	return s.prefs.StringWithFallback(prefKeyLanguage, DefaultLanguage)
}

// SetLanguage stores the UI language code.
func (s *Settings) SetLanguage(lang string) {
	s.prefs.SetString(prefKeyLanguage, lang)
}

// PollInterval returns how often background refresh runs.
func (s *Settings) PollInterval() time.Duration {
	minutes := s.prefs.IntWithFallback(prefKeyPollMinutes, DefaultPollMinutes)
	if minutes < 1 {
		minutes = DefaultPollMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// SetPollMinutes stores the background refresh period in minutes.
func (s *Settings) SetPollMinutes(minutes int) {
	s.prefs.SetInt(prefKeyPollMinutes, minutes)
}
