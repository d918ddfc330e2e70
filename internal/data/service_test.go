package data

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghumakkad/ghumakkad-desktop/internal/api"
	"github.com/ghumakkad/ghumakkad-desktop/internal/model"
	"github.com/ghumakkad/ghumakkad-desktop/internal/notify"
	"github.com/ghumakkad/ghumakkad-desktop/internal/session"
)

// recordingNotifier captures pushed messages for assertions.
type recordingNotifier struct {
	mu      sync.Mutex
	entries []notify.Notification
}

func (r *recordingNotifier) Push(message string, kind notify.Kind) notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := notify.Notification{ID: message, Message: message, Kind: kind}
	r.entries = append(r.entries, n)
	return n
}

func (r *recordingNotifier) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, n := range r.entries {
		out[i] = n.Message
	}
	return out
}

// fixtureBackend answers the dashboard and admin endpoints with canned data
// and records which paths were hit.
type fixtureBackend struct {
	mu   sync.Mutex
	hits map[string]int

	failPaths map[string]int // path -> status to answer with
}

func newFixtureBackend() *fixtureBackend {
	return &fixtureBackend{
		hits:      make(map[string]int),
		failPaths: make(map[string]int),
	}
}

func (f *fixtureBackend) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fixtureBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.hits[r.URL.Path]++
	status, failing := f.failPaths[r.URL.Path]
	f.mu.Unlock()

	if failing {
		w.WriteHeader(status)
		w.Write([]byte(`{"message":"backend unavailable"}`))
		return
	}

	switch r.URL.Path {
	case "/user/dashboard-data":
		w.Write([]byte(`{"_id":"u1","email":"ravi@example.com","isAdmin":true}`))
	case "/trips/my-trips":
		w.Write([]byte(`{"trips":[
			{"_id":"t1","title":"Leh Ride","status":"upcoming","seats":4,
			 "bookings":[{"_id":"b9","status":"pending"},{"_id":"b10","status":"accepted"}]},
			{"_id":"t2","title":"Goa Beaches","status":"completed"}
		]}`))
	case "/trips/my-booking":
		w.Write([]byte(`{"bookings":[{"_id":"b1","tripId":"t5","status":"pending"}]}`))
	case "/trips/all":
		w.Write([]byte(`{"trips":[{"_id":"t7","title":"Rann of Kutch","status":"upcoming","availableSeats":3}]}`))
	case "/admin/users":
		w.Write([]byte(`{"users":[{"_id":"u1"},{"_id":"u2"},{"_id":"u3"}]}`))
	case "/admin/trips":
		w.Write([]byte(`{"trips":[{"_id":"t1","status":"upcoming"},{"_id":"t2","status":"ongoing"},{"_id":"t3","status":"cancelled"}]}`))
	case "/admin/bookings":
		w.Write([]byte(`{"bookings":[{"_id":"b1"},{"_id":"b2"}]}`))
	default:
		w.Write([]byte(`{"success":true}`))
	}
}

func newTestService(t *testing.T, backend *fixtureBackend) (*Service, *recordingNotifier) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store := session.NewStore(test.NewApp())
	store.Begin("test-token", "ravi@example.com")
	client := api.New(srv.URL, store, zerolog.Nop())

	notes := &recordingNotifier{}
	svc := NewService(client, notes, zerolog.Nop())
	t.Cleanup(svc.Close)
	return svc, notes
}

func TestRefreshDashboardPopulatesSnapshots(t *testing.T) {
	svc, _ := newTestService(t, newFixtureBackend())

	// The callback fires on each loader's goroutine, so the counter must
	// be safe for concurrent increments.
	var updates atomic.Int32
	svc.SetUpdateCallback(func() { updates.Add(1) })

	require.NoError(t, svc.RefreshDashboard(context.Background()))

	assert.Equal(t, "u1", svc.User().ID)
	assert.True(t, svc.User().IsAdmin)
	assert.Len(t, svc.MyTrips(), 2)
	assert.Len(t, svc.MyBookings(), 1)
	assert.Len(t, svc.AvailableTrips(), 1)
	assert.Equal(t, int32(4), updates.Load(), "each of the four loaders fires the callback")
}

func TestStats(t *testing.T) {
	svc, _ := newTestService(t, newFixtureBackend())
	require.NoError(t, svc.RefreshDashboard(context.Background()))

	st := svc.Stats()
	assert.Equal(t, 2, st.TotalTrips)
	assert.Equal(t, 1, st.UpcomingTrips)
	assert.Equal(t, 1, st.TotalBookings)
	assert.Equal(t, 1, st.PendingRequests, "only the undecided booking on the hosted trip counts")
}

func TestRefreshAdminAndStats(t *testing.T) {
	svc, _ := newTestService(t, newFixtureBackend())
	require.NoError(t, svc.RefreshAdmin(context.Background()))

	st := svc.AdminStats()
	assert.Equal(t, 3, st.TotalUsers)
	assert.Equal(t, 3, st.TotalTrips)
	assert.Equal(t, 2, st.TotalBookings)
	assert.Equal(t, 2, st.ActiveTrips, "upcoming and ongoing are active, cancelled is not")
}

func TestPartialRefreshFailureKeepsStaleSnapshot(t *testing.T) {
	backend := newFixtureBackend()
	svc, notes := newTestService(t, backend)

	require.NoError(t, svc.RefreshDashboard(context.Background()))
	require.Len(t, svc.MyTrips(), 2)

	backend.mu.Lock()
	backend.failPaths["/trips/my-trips"] = http.StatusInternalServerError
	backend.mu.Unlock()

	err := svc.RefreshDashboard(context.Background())
	assert.Error(t, err)

	// The failed loader keeps its previous data; the rest still refreshed.
	assert.Len(t, svc.MyTrips(), 2)
	assert.Len(t, svc.MyBookings(), 1)
	assert.Contains(t, notes.messages(), "Could not load your trips")
}

func TestActionSuccessReloadsDashboard(t *testing.T) {
	backend := newFixtureBackend()
	svc, notes := newTestService(t, backend)

	require.NoError(t, svc.CancelTrip(context.Background(), "t1"))

	assert.Equal(t, 1, backend.hitCount("/trips/t1/cancel"))
	assert.Equal(t, 1, backend.hitCount("/trips/my-trips"), "success triggers a reload")
	assert.Contains(t, notes.messages(), "Trip cancelled")
	assert.Len(t, svc.MyTrips(), 2, "snapshots come from the reload, not local mutation")
}

func TestActionFailureSurfacesBackendMessage(t *testing.T) {
	backend := newFixtureBackend()
	backend.failPaths["/trips/t1/join"] = http.StatusBadRequest
	svc, notes := newTestService(t, backend)

	err := svc.JoinTrip(context.Background(), "t1", 3)
	require.Error(t, err)

	assert.Contains(t, notes.messages(), "backend unavailable")
	assert.Equal(t, 0, backend.hitCount("/trips/my-trips"), "no reload after a failed action")
}

func TestBookingDecisionPaths(t *testing.T) {
	backend := newFixtureBackend()
	svc, _ := newTestService(t, backend)
	ctx := context.Background()

	require.NoError(t, svc.AcceptBooking(ctx, "t1", "b9"))
	require.NoError(t, svc.RejectBooking(ctx, "t1", "b10"))

	assert.Equal(t, 1, backend.hitCount("/trips/t1/booking/b9/accept"))
	assert.Equal(t, 1, backend.hitCount("/trips/t1/bookings/b10/reject"))
}

func TestAdminPollingRefreshesAdminLists(t *testing.T) {
	backend := newFixtureBackend()
	svc, _ := newTestService(t, backend)

	svc.StartAdminPolling(20 * time.Millisecond)
	defer svc.StopPolling()

	deadline := time.Now().Add(time.Second)
	for backend.hitCount("/admin/users") < 2 {
		if time.Now().After(deadline) {
			t.Fatal("admin lists were not polled")
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.GreaterOrEqual(t, backend.hitCount("/admin/trips"), 1)
	assert.Equal(t, 0, backend.hitCount("/trips/my-trips"),
		"admin polling must not refresh dashboard data")
}

func TestCloseDropsLateUpdates(t *testing.T) {
	svc, _ := newTestService(t, newFixtureBackend())
	require.NoError(t, svc.RefreshDashboard(context.Background()))
	require.NotEmpty(t, svc.MyTrips())

	svc.Close()
	assert.Empty(t, svc.MyTrips(), "close discards snapshots")

	// A refresh finishing after teardown must not resurrect state.
	_ = svc.RefreshDashboard(context.Background())
	assert.Empty(t, svc.MyTrips())
	assert.Equal(t, model.User{}, svc.User())
}

func TestReopenAllowsFreshSignin(t *testing.T) {
	svc, _ := newTestService(t, newFixtureBackend())
	svc.Close()
	svc.Reopen()

	require.NoError(t, svc.RefreshDashboard(context.Background()))
	assert.NotEmpty(t, svc.MyTrips())
}
