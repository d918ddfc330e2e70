package model

// TripStatus represents the server-assigned lifecycle state of a trip.
type TripStatus string

const (
	// TripStatusUpcoming means the trip has not started yet.
	TripStatusUpcoming TripStatus = "upcoming"

	// TripStatusOngoing means the trip is currently in progress.
	TripStatusOngoing TripStatus = "ongoing"

	// TripStatusCompleted means the trip finished normally.
	TripStatusCompleted TripStatus = "completed"

	// TripStatusCancelled means the trip was cancelled by its owner.
	TripStatusCancelled TripStatus = "cancelled"
)

// String returns the string representation of TripStatus.
func (ts TripStatus) String() string {
	return string(ts)
}

// IsActive returns true while the trip can still progress on its own
// (upcoming or ongoing).
func (ts TripStatus) IsActive() bool {
	return ts == TripStatusUpcoming || ts == TripStatusOngoing
}

// IsFinished returns true once the trip reached a terminal state.
func (ts TripStatus) IsFinished() bool {
	return ts == TripStatusCompleted || ts == TripStatusCancelled
}

// BookingStatus represents the server-assigned state of a booking request.
// Transitions (pending -> accepted / rejected) are requested by the client
// but decided by the backend.
type BookingStatus string

const (
	// BookingStatusPending means the trip owner has not decided yet.
	BookingStatusPending BookingStatus = "pending"

	// BookingStatusAccepted means the trip owner approved the booking.
	BookingStatusAccepted BookingStatus = "accepted"

	// BookingStatusRejected means the trip owner declined the booking.
	BookingStatusRejected BookingStatus = "rejected"
)

// String returns the string representation of BookingStatus.
func (bs BookingStatus) String() string {
	return string(bs)
}

// IsDecided returns true once the owner accepted or rejected the booking.
func (bs BookingStatus) IsDecided() bool {
	return bs == BookingStatusAccepted || bs == BookingStatusRejected
}
