package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTripIsCancelable(t *testing.T) {
	trip := &Trip{Status: TripStatusUpcoming}
	if !trip.IsCancelable() {
		t.Error("Expected upcoming trip to be cancelable")
	}

	for _, st := range []TripStatus{TripStatusOngoing, TripStatusCompleted, TripStatusCancelled} {
		trip.Status = st
		if trip.IsCancelable() {
			t.Errorf("Expected %s trip to not be cancelable", st)
		}
	}
}

func TestTripIsJoinable(t *testing.T) {
	trip := &Trip{Status: TripStatusUpcoming, AvailableSeats: 2}
	if !trip.IsJoinable() {
		t.Error("Expected upcoming trip with free seats to be joinable")
	}

	trip.AvailableSeats = 0
	if trip.IsJoinable() {
		t.Error("Expected full trip to not be joinable")
	}

	trip.AvailableSeats = 2
	trip.Status = TripStatusOngoing
	if trip.IsJoinable() {
		t.Error("Expected ongoing trip to not be joinable")
	}
}

func TestTripIsOwnedBy(t *testing.T) {
	trip := &Trip{CreatedBy: UserRef{ID: "u1"}}

	if !trip.IsOwnedBy("u1") {
		t.Error("Expected trip to be owned by u1")
	}
	if trip.IsOwnedBy("u2") {
		t.Error("Expected trip to not be owned by u2")
	}
	// An unknown current user must never be treated as the owner.
	if trip.IsOwnedBy("") {
		t.Error("Expected empty user id to never own a trip")
	}
}

func TestUserRefUnmarshal(t *testing.T) {
	var ref UserRef
	if err := json.Unmarshal([]byte(`"abc123"`), &ref); err != nil {
		t.Fatalf("Expected no error for string form, got %v", err)
	}
	if ref.ID != "abc123" || ref.Email != "" {
		t.Errorf("Unexpected ref from string form: %+v", ref)
	}

	if err := json.Unmarshal([]byte(`{"_id":"abc123","email":"a@b.c"}`), &ref); err != nil {
		t.Fatalf("Expected no error for object form, got %v", err)
	}
	if ref.ID != "abc123" || ref.Email != "a@b.c" {
		t.Errorf("Unexpected ref from object form: %+v", ref)
	}

	if err := json.Unmarshal([]byte(`null`), &ref); err != nil {
		t.Fatalf("Expected no error for null, got %v", err)
	}
	if ref.ID != "" || ref.Email != "" {
		t.Errorf("Expected empty ref from null, got %+v", ref)
	}
}

func TestTripPendingBookings(t *testing.T) {
	trip := &Trip{Bookings: []Booking{
		{Status: BookingStatusPending},
		{Status: BookingStatusAccepted},
		{Status: BookingStatusPending},
		{Status: BookingStatusRejected},
	}}

	if got := trip.PendingBookings(); got != 2 {
		t.Errorf("Expected 2 pending bookings, got %d", got)
	}
}

func TestBookingDisplayStatus(t *testing.T) {
	cases := []struct {
		name    string
		booking Booking
		want    string
	}{
		{"rejected wins", Booking{Status: BookingStatusRejected, IsCancelled: true, IsPast: true}, "rejected"},
		{"cancelled over past", Booking{Status: BookingStatusAccepted, IsCancelled: true, IsPast: true}, "cancelled"},
		{"past becomes completed", Booking{Status: BookingStatusAccepted, IsPast: true}, "completed"},
		{"upcoming", Booking{Status: BookingStatusAccepted, IsUpcoming: true}, "upcoming"},
		{"raw status fallback", Booking{Status: BookingStatusPending}, "pending"},
		{"unknown", Booking{}, "unknown"},
	}

	for _, tc := range cases {
		if got := tc.booking.DisplayStatus(); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestBookingIsCancelable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	b := Booking{Status: BookingStatusPending, StartDate: now.Add(48 * time.Hour)}
	if !b.IsCancelable(now) {
		t.Error("Expected pending future booking to be cancelable")
	}

	b.StartDate = now.Add(-time.Hour)
	if b.IsCancelable(now) {
		t.Error("Expected started trip booking to not be cancelable")
	}

	b.StartDate = now.Add(48 * time.Hour)
	b.Status = BookingStatusAccepted
	if b.IsCancelable(now) {
		t.Error("Expected accepted booking to not be cancelable")
	}
}

func TestBookingTotalPrice(t *testing.T) {
	b := Booking{PricePerPerson: 1500, SeatsBooked: 3}
	if got := b.TotalPrice(); got != 4500 {
		t.Errorf("Expected 4500, got %v", got)
	}

	// Zero seats bills as a single seat.
	b.SeatsBooked = 0
	if got := b.TotalPrice(); got != 1500 {
		t.Errorf("Expected 1500, got %v", got)
	}
}

func TestUserDisplayName(t *testing.T) {
	u := User{Email: "ravi@example.com"}
	if got := u.DisplayName(); got != "Ravi" {
		t.Errorf("Expected 'Ravi', got '%s'", got)
	}

	u.Email = ""
	if got := u.DisplayName(); got != "Traveler" {
		t.Errorf("Expected 'Traveler', got '%s'", got)
	}
}
