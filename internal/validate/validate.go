// Package validate holds the client-side form rules. Validation runs before
// any network call: a form with errors never reaches the backend.
package validate

import (
	"regexp"
	"strings"
	"time"
)

// Field length limits.
const (
	EmailMinLen    = 3
	EmailMaxLen    = 100
	PasswordMinLen = 5
	PasswordMaxLen = 67
	TitleMinLen    = 3
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	lowercasePattern = regexp.MustCompile(`[a-z]`)
)

// Email checks an email address and returns a user-facing error message,
// or "" when valid.
func Email(email string) string {
	switch {
	case email == "":
		return "Email is required"
	case len(email) < EmailMinLen || len(email) > EmailMaxLen:
		return "Email must be between 3 and 100 characters"
	case !emailPattern.MatchString(email):
		return "Enter a valid email address"
	}
	return ""
}

// Password checks a password. Signup additionally requires a lowercase
// letter; signin accepts anything within the length bounds.
func Password(password string, signup bool) string {
	switch {
	case password == "":
		return "Password is required"
	case len(password) < PasswordMinLen || len(password) > PasswordMaxLen:
		return "Password must be between 5 and 67 characters"
	case signup && !lowercasePattern.MatchString(password):
		return "Password must contain a lowercase letter"
	}
	return ""
}

// TripForm is the trip-creation form as entered by the user.
type TripForm struct {
	Title          string
	From           string
	To             string
	StartDate      time.Time
	EndDate        time.Time
	Seats          int
	PricePerPerson float64
}

// Trip validates a trip form and returns messages keyed by field name.
// An empty map means the form may be submitted.
func Trip(form TripForm, now time.Time) map[string]string {
	errs := make(map[string]string)

	if len(strings.TrimSpace(form.Title)) < TitleMinLen {
		errs["title"] = "Title must be at least 3 characters"
	}
	if strings.TrimSpace(form.From) == "" {
		errs["from"] = "Starting point is required"
	}
	if strings.TrimSpace(form.To) == "" {
		errs["to"] = "Destination is required"
	}

	switch {
	case form.StartDate.IsZero():
		errs["startDate"] = "Start date is required"
	case form.StartDate.Before(now.Truncate(24 * time.Hour)):
		errs["startDate"] = "Start date cannot be in the past"
	}
	switch {
	case form.EndDate.IsZero():
		errs["endDate"] = "End date is required"
	case !form.StartDate.IsZero() && !form.EndDate.After(form.StartDate):
		errs["endDate"] = "End date must be after the start date"
	}

	if form.Seats < 1 {
		errs["seats"] = "At least one seat is required"
	}
	if form.PricePerPerson <= 0 {
		errs["pricePerPerson"] = "Price per person must be greater than zero"
	}
	return errs
}

// Seats validates a seat count against a trip's availability.
func Seats(requested, available int) string {
	switch {
	case requested < 1:
		return "Book at least one seat"
	case requested > available:
		return "Not enough seats available"
	}
	return ""
}
