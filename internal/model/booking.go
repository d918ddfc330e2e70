package model

import "time"

// Booking represents a seat reservation on a trip, as served by the backend.
// The derived flags (IsUpcoming/IsPast/IsCancelled, DaysLeft) are computed
// server-side and mirrored verbatim.
type Booking struct {
	ID             string        `json:"_id"`
	TripID         string        `json:"tripId"`
	Title          string        `json:"title"`
	From           string        `json:"from"`
	To             string        `json:"to"`
	StartDate      time.Time     `json:"startDate"`
	EndDate        time.Time     `json:"endDate"`
	SeatsBooked    int           `json:"mySeatsBooked"`
	PricePerPerson float64       `json:"pricePerPerson"`
	Status         BookingStatus `json:"status"`
	IsUpcoming     bool          `json:"isUpcoming"`
	IsPast         bool          `json:"isPast"`
	IsCancelled    bool          `json:"isCancelled"`
	DaysLeft       int           `json:"daysLeft"`
	User           UserRef       `json:"user"`
	ImageURL       string        `json:"image"`
}

// DisplayStatus collapses the raw status and the derived flags into the
// single label shown on booking cards. Rejection wins over everything,
// then cancellation, then completion.
func (b *Booking) DisplayStatus() string {
	switch {
	case b.Status == BookingStatusRejected:
		return "rejected"
	case b.IsCancelled:
		return "cancelled"
	case b.IsPast:
		return "completed"
	case b.IsUpcoming:
		return "upcoming"
	case b.Status != "":
		return b.Status.String()
	default:
		return "unknown"
	}
}

// IsCancelable reports whether the traveler may still withdraw the booking:
// only while it is pending and the trip has not started.
func (b *Booking) IsCancelable(now time.Time) bool {
	return b.Status == BookingStatusPending && b.StartDate.After(now)
}

// TotalPrice returns the price for all seats booked by the current user.
// A zero seat count is treated as one seat, matching how the backend bills.
func (b *Booking) TotalPrice() float64 {
	seats := b.SeatsBooked
	if seats <= 0 {
		seats = 1
	}
	return b.PricePerPerson * float64(seats)
}

// TravelerLabel returns the booking traveler's email, or "User" when the
// backend embedded no user record.
func (b *Booking) TravelerLabel() string {
	if b.User.Email != "" {
		return b.User.Email
	}
	return "User"
}
