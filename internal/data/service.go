// Package data owns the client-side snapshots of backend state. All reads
// the UI renders come from here; every action round-trips to the backend and
// then reloads, so local state is never mutated optimistically.
package data

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ghumakkad/ghumakkad-desktop/internal/api"
	"github.com/ghumakkad/ghumakkad-desktop/internal/model"
	"github.com/ghumakkad/ghumakkad-desktop/internal/notify"
	"github.com/ghumakkad/ghumakkad-desktop/internal/sched"
)

// RefreshTimeout bounds one full refresh cycle.
const RefreshTimeout = 30 * time.Second

// Notifier receives user-facing status messages. *notify.Queue satisfies it.
type Notifier interface {
	Push(message string, kind notify.Kind) notify.Notification
}

// Service caches backend snapshots and coordinates refresh.
type Service struct {
	client *api.Client
	notes  Notifier
	log    zerolog.Logger
	poller *sched.Interval

	mu            sync.RWMutex
	closed        bool
	ctx           context.Context
	cancel        context.CancelFunc
	user          model.User
	myTrips       []model.Trip
	myBookings    []model.Booking
	available     []model.Trip
	adminUsers    []model.User
	adminTrips    []model.Trip
	adminBookings []model.Booking

	onUpdate func() // fired after any snapshot changes
}

// NewService creates a service around the given client.
func NewService(client *api.Client, notes Notifier, log zerolog.Logger) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		client: client,
		notes:  notes,
		log:    log.With().Str("component", "data").Logger(),
		poller: sched.NewInterval(),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetUpdateCallback registers the function called after snapshots change.
// The callback runs on the calling goroutine; UI code wraps it in fyne.Do.
func (s *Service) SetUpdateCallback(callback func()) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Close stops polling, cancels in-flight refreshes, and discards all
// snapshots. Refreshes that finish after Close are dropped.
func (s *Service) Close() {
	s.poller.Stop()
	s.mu.Lock()
	s.closed = true
	s.cancel()
	s.user = model.User{}
	s.myTrips = nil
	s.myBookings = nil
	s.available = nil
	s.adminUsers = nil
	s.adminTrips = nil
	s.adminBookings = nil
	s.mu.Unlock()
}

// Reopen makes a closed service usable again after a fresh signin.
func (s *Service) Reopen() {
	s.mu.Lock()
	if s.closed {
		s.closed = false
		s.ctx, s.cancel = context.WithCancel(context.Background())
	}
	s.mu.Unlock()
}

// RefreshDashboard reloads the profile, the user's trips and bookings, and
// the discovery list concurrently. A failing loader keeps its previous
// snapshot; the others still update.
func (s *Service) RefreshDashboard(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, RefreshTimeout)
	defer cancel()

	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once
	fail := func(what string, err error) {
		errOnce.Do(func() { firstErr = err })
		s.reportLoadFailure(what, err)
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		user, err := s.client.DashboardData(ctx)
		if err != nil {
			fail("profile", err)
			return
		}
		s.apply(func() { s.user = user })
	}()
	go func() {
		defer wg.Done()
		trips, err := s.client.MyTrips(ctx)
		if err != nil {
			fail("your trips", err)
			return
		}
		s.apply(func() { s.myTrips = trips })
	}()
	go func() {
		defer wg.Done()
		bookings, err := s.client.MyBookings(ctx)
		if err != nil {
			fail("your bookings", err)
			return
		}
		s.apply(func() { s.myBookings = bookings })
	}()
	go func() {
		defer wg.Done()
		trips, err := s.client.AvailableTrips(ctx)
		if err != nil {
			fail("available trips", err)
			return
		}
		s.apply(func() { s.available = trips })
	}()
	wg.Wait()

	return firstErr
}

// RefreshAdmin reloads the platform-wide admin lists concurrently.
func (s *Service) RefreshAdmin(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, RefreshTimeout)
	defer cancel()

	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once
	fail := func(what string, err error) {
		errOnce.Do(func() { firstErr = err })
		s.reportLoadFailure(what, err)
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		users, err := s.client.AdminUsers(ctx)
		if err != nil {
			fail("users", err)
			return
		}
		s.apply(func() { s.adminUsers = users })
	}()
	go func() {
		defer wg.Done()
		trips, err := s.client.AdminTrips(ctx)
		if err != nil {
			fail("trips", err)
			return
		}
		s.apply(func() { s.adminTrips = trips })
	}()
	go func() {
		defer wg.Done()
		bookings, err := s.client.AdminBookings(ctx)
		if err != nil {
			fail("bookings", err)
			return
		}
		s.apply(func() { s.adminBookings = bookings })
	}()
	wg.Wait()

	return firstErr
}

// StartPolling begins periodic background refresh of the dashboard data.
// Polls run under the service context, so Close cancels an in-flight poll.
func (s *Service) StartPolling(interval time.Duration) {
	s.mu.RLock()
	ctx := s.ctx
	s.mu.RUnlock()

	s.poller.Start(func() {
		if err := s.RefreshDashboard(ctx); err != nil {
			s.log.Warn().Err(err).Msg("background refresh failed")
		}
	}, interval)
	s.log.Debug().Dur("interval", interval).Msg("polling started")
}

// StartAdminPolling begins periodic background refresh of the admin lists.
// The single poller is repointed, so dashboard polling pauses while the
// admin view is active and resumes when StartPolling is called again.
func (s *Service) StartAdminPolling(interval time.Duration) {
	s.mu.RLock()
	ctx := s.ctx
	s.mu.RUnlock()

	s.poller.Start(func() {
		if err := s.RefreshAdmin(ctx); err != nil {
			s.log.Warn().Err(err).Msg("background admin refresh failed")
		}
	}, interval)
	s.log.Debug().Dur("interval", interval).Msg("admin polling started")
}

// StopPolling halts the background refresh.
func (s *Service) StopPolling() {
	s.poller.Stop()
	s.log.Debug().Msg("polling stopped")
}

// Snapshot accessors. Slices are copied so callers can range freely while a
// refresh lands.

func (s *Service) User() model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Service) MyTrips() []model.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTrips(s.myTrips)
}

func (s *Service) MyBookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBookings(s.myBookings)
}

func (s *Service) AvailableTrips() []model.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTrips(s.available)
}

func (s *Service) AdminUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.adminUsers))
	copy(out, s.adminUsers)
	return out
}

func (s *Service) AdminTrips() []model.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTrips(s.adminTrips)
}

func (s *Service) AdminBookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBookings(s.adminBookings)
}

// Stats summarizes the current user's dashboard.
type Stats struct {
	TotalTrips      int
	UpcomingTrips   int
	TotalBookings   int
	PendingRequests int
}

// Stats computes the dashboard counters from the cached snapshots. Pending
// requests counts undecided bookings on trips the user hosts.
func (s *Service) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		TotalTrips:    len(s.myTrips),
		TotalBookings: len(s.myBookings),
	}
	for _, trip := range s.myTrips {
		if trip.Status == model.TripStatusUpcoming {
			st.UpcomingTrips++
		}
		st.PendingRequests += trip.PendingBookings()
	}
	return st
}

// AdminStats summarizes the platform for the admin view.
type AdminStats struct {
	TotalUsers    int
	TotalTrips    int
	TotalBookings int
	ActiveTrips   int
}

func (s *Service) AdminStats() AdminStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := AdminStats{
		TotalUsers:    len(s.adminUsers),
		TotalTrips:    len(s.adminTrips),
		TotalBookings: len(s.adminBookings),
	}
	for _, trip := range s.adminTrips {
		if trip.Status.IsActive() {
			st.ActiveTrips++
		}
	}
	return st
}

// apply commits a snapshot mutation and fires the update callback, unless
// the service was closed while the load was in flight.
func (s *Service) apply(mutate func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	mutate()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback()
	}
}

// reportLoadFailure logs and surfaces a loader error. Session expiry is not
// announced here; the client's expiry callback handles navigation.
func (s *Service) reportLoadFailure(what string, err error) {
	s.log.Error().Err(err).Str("load", what).Msg("load failed")
	if api.IsSessionError(err) {
		return
	}
	if s.notes != nil {
		s.notes.Push("Could not load "+what, notify.KindError)
	}
}

func copyTrips(in []model.Trip) []model.Trip {
	out := make([]model.Trip, len(in))
	copy(out, in)
	return out
}

func copyBookings(in []model.Booking) []model.Booking {
	out := make([]model.Booking, len(in))
	copy(out, in)
	return out
}
