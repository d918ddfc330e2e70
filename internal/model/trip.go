package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// UserRef points at the user who created a trip. The backend serializes it
// either as a bare id string or as an embedded {_id, email} object, so it
// needs a forgiving decoder.
type UserRef struct {
	ID    string
	Email string
}

// UnmarshalJSON accepts both the string and the object form of a user
// reference.
func (r *UserRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = UserRef{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = UserRef{ID: id}
		return nil
	}
	var obj struct {
		ID    string `json:"_id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = UserRef{ID: obj.ID, Email: obj.Email}
	return nil
}

// Weather is a single forecast entry embedded in a trip.
type Weather struct {
	Temp        float64 `json:"temp"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// Trip represents a trip as served by the backend. The status is
// server-assigned; the client only requests transitions (create, cancel)
// and reflects the subsequent reload.
type Trip struct {
	ID              string     `json:"_id"`
	Title           string     `json:"title"`
	From            string     `json:"from"`
	To              string     `json:"to"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	Seats           int        `json:"seats"`
	AvailableSeats  int        `json:"availableSeats"`
	PricePerPerson  float64    `json:"pricePerPerson"`
	ModeOfTransport string     `json:"modeOfTransport"`
	Status          TripStatus `json:"status"`
	CreatedBy       UserRef    `json:"createdBy"`
	PhoneNo         string     `json:"phoneNo"`
	ImageURL        string     `json:"image"`
	Bookings        []Booking  `json:"bookings"`
	Weather         []Weather  `json:"weather"`
}

// IsCancelable reports whether the owner may still cancel the trip.
// Only upcoming trips can be cancelled.
func (t *Trip) IsCancelable() bool {
	return t.Status == TripStatusUpcoming
}

// IsJoinable reports whether a traveler can request to join the trip.
func (t *Trip) IsJoinable() bool {
	return t.Status == TripStatusUpcoming && t.AvailableSeats > 0
}

// IsOwnedBy reports whether the given user created this trip. Owner-only
// actions (accept/reject bookings) must be hidden when this is false.
func (t *Trip) IsOwnedBy(userID string) bool {
	return userID != "" && t.CreatedBy.ID == userID
}

// PendingBookings counts booking requests still awaiting a decision.
func (t *Trip) PendingBookings() int {
	n := 0
	for _, b := range t.Bookings {
		if b.Status == BookingStatusPending {
			n++
		}
	}
	return n
}

// OwnerLabel returns a display name for the trip owner, falling back to
// "Host" when the backend embedded no email.
func (t *Trip) OwnerLabel() string {
	if t.CreatedBy.Email != "" {
		return t.CreatedBy.Email
	}
	return "Host"
}

// Route returns the "from -> to" display string.
func (t *Trip) Route() string {
	return strings.TrimSpace(t.From) + " -> " + strings.TrimSpace(t.To)
}

// DateRange formats the start/end dates for card display.
func (t *Trip) DateRange() string {
	return t.StartDate.Format("02 Jan 2006") + " - " + t.EndDate.Format("02 Jan 2006")
}

// TransportLabel returns the mode of transport with a sane default.
func (t *Trip) TransportLabel() string {
	if t.ModeOfTransport == "" {
		return "car"
	}
	return t.ModeOfTransport
}
