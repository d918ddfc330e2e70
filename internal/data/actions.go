package data

import (
	"context"

	"github.com/ghumakkad/ghumakkad-desktop/internal/api"
	"github.com/ghumakkad/ghumakkad-desktop/internal/notify"
)

// Actions never mutate the snapshots directly. On success the dashboard is
// reloaded so the UI reflects what the backend actually stored; on failure
// the backend's own message is shown and nothing changes locally. There are
// no retries.

// CreateTrip submits a new trip and reloads on confirmation.
func (s *Service) CreateTrip(ctx context.Context, req api.CreateTripRequest) error {
	return s.perform(ctx, "Trip created successfully!", func() error {
		return s.client.CreateTrip(ctx, req)
	})
}

// JoinTrip books seats on a trip after the payment handoff and reloads.
func (s *Service) JoinTrip(ctx context.Context, tripID string, seats int) error {
	return s.perform(ctx, "Booking request sent!", func() error {
		return s.client.JoinTrip(ctx, tripID, seats)
	})
}

// CancelTrip cancels a hosted trip and reloads.
func (s *Service) CancelTrip(ctx context.Context, tripID string) error {
	return s.perform(ctx, "Trip cancelled", func() error {
		return s.client.CancelTrip(ctx, tripID)
	})
}

// CancelBooking withdraws the user's booking on a trip and reloads.
func (s *Service) CancelBooking(ctx context.Context, tripID string) error {
	return s.perform(ctx, "Booking cancelled", func() error {
		return s.client.CancelBooking(ctx, tripID)
	})
}

// AcceptBooking approves a traveler's request on a hosted trip and reloads.
func (s *Service) AcceptBooking(ctx context.Context, tripID, bookingID string) error {
	return s.perform(ctx, "Booking accepted", func() error {
		return s.client.AcceptBooking(ctx, tripID, bookingID)
	})
}

// RejectBooking declines a traveler's request on a hosted trip and reloads.
func (s *Service) RejectBooking(ctx context.Context, tripID, bookingID string) error {
	return s.perform(ctx, "Booking rejected", func() error {
		return s.client.RejectBooking(ctx, tripID, bookingID)
	})
}

// perform runs one backend action, surfaces the outcome, and reloads the
// dashboard snapshots after a confirmed success.
func (s *Service) perform(ctx context.Context, successMsg string, action func() error) error {
	if err := action(); err != nil {
		s.reportActionFailure(err)
		return err
	}
	if s.notes != nil {
		s.notes.Push(successMsg, notify.KindSuccess)
	}
	if err := s.RefreshDashboard(ctx); err != nil {
		s.log.Warn().Err(err).Msg("reload after action failed")
	}
	return nil
}

// reportActionFailure shows the backend's message when there is one, or a
// generic failure text otherwise.
func (s *Service) reportActionFailure(err error) {
	s.log.Error().Err(err).Msg("action failed")
	if api.IsSessionError(err) || s.notes == nil {
		return
	}
	if apiErr, ok := api.AsBackendError(err); ok {
		s.notes.Push(apiErr.UserMessage(), notify.KindError)
		return
	}
	s.notes.Push("Something went wrong. Please try again.", notify.KindError)
}
