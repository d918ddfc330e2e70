package model

import "testing"

func TestTripStatusHelpers(t *testing.T) {
	active := []TripStatus{TripStatusUpcoming, TripStatusOngoing}
	for _, st := range active {
		if !st.IsActive() {
			t.Errorf("Expected %s to be active", st)
		}
		if st.IsFinished() {
			t.Errorf("Expected %s to not be finished", st)
		}
	}

	finished := []TripStatus{TripStatusCompleted, TripStatusCancelled}
	for _, st := range finished {
		if st.IsActive() {
			t.Errorf("Expected %s to not be active", st)
		}
		if !st.IsFinished() {
			t.Errorf("Expected %s to be finished", st)
		}
	}
}

func TestTripStatusString(t *testing.T) {
	if TripStatusUpcoming.String() != "upcoming" {
		t.Errorf("Expected 'upcoming', got '%s'", TripStatusUpcoming.String())
	}
	if TripStatusCancelled.String() != "cancelled" {
		t.Errorf("Expected 'cancelled', got '%s'", TripStatusCancelled.String())
	}
}

func TestBookingStatusIsDecided(t *testing.T) {
	if BookingStatusPending.IsDecided() {
		t.Error("Expected pending to be undecided")
	}
	if !BookingStatusAccepted.IsDecided() {
		t.Error("Expected accepted to be decided")
	}
	if !BookingStatusRejected.IsDecided() {
		t.Error("Expected rejected to be decided")
	}
}
