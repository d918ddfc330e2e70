package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghumakkad/ghumakkad-desktop/internal/session"
)

// newTestClient wires a client against a test server with a fresh session
// holding the given token.
func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewStore(test.NewApp())
	if token != "" {
		store.Begin(token, "user@example.com")
	}
	return New(srv.URL, store, zerolog.Nop()), store
}

func TestAuthHeadersAttached(t *testing.T) {
	var gotAuth, gotRequestID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"trips":[]}`))
	})

	client, _ := newTestClient(t, handler, "tok-abc")

	_, err := client.MyTrips(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.NotEmpty(t, gotRequestID, "every call carries a request id")
}

func TestAuthRejectionTearsDownSession(t *testing.T) {
	// Both rejection statuses must clear the session and fire the
	// navigation callback, regardless of the endpoint called.
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		client, store := newTestClient(t, handler, "stale-token")

		expired := false
		client.SetSessionExpiredCallback(func() { expired = true })

		_, err := client.MyBookings(context.Background())
		assert.ErrorIs(t, err, ErrSessionExpired, "status %d", status)
		assert.False(t, store.IsAuthenticated(), "status %d should clear the session", status)
		assert.True(t, expired, "status %d should fire the expiry callback", status)
	}
}

func TestMissingTokenShortCircuits(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	client, _ := newTestClient(t, handler, "")

	expired := false
	client.SetSessionExpiredCallback(func() { expired = true })

	_, err := client.MyTrips(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
	assert.True(t, expired)
	assert.False(t, called, "no request may leave the client without a token")
}

func TestBackendMessageSurfacedVerbatim(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Not enough seats available"}`))
	})
	client, _ := newTestClient(t, handler, "tok")

	err := client.JoinTrip(context.Background(), "t1", 99)
	apiErr, ok := AsBackendError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Not enough seats available", apiErr.UserMessage())
}

func TestBackendMessageFallbacks(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"msg key", `{"msg":"wrong password"}`, "wrong password"},
		{"no message", `{}`, "request failed"},
		{"not json", `oops`, "request failed"},
	}

	for _, tc := range cases {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(tc.body))
		})
		client, _ := newTestClient(t, handler, "tok")

		err := client.CancelTrip(context.Background(), "t1")
		apiErr, ok := AsBackendError(err)
		require.True(t, ok, tc.name)
		assert.Equal(t, tc.want, apiErr.UserMessage(), tc.name)
	}
}

func TestMalformedPayloadRejected(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"trips": "definitely-not-a-list"`))
	})
	client, _ := newTestClient(t, handler, "tok")

	_, err := client.MyTrips(context.Background())
	assert.Error(t, err, "garbage bodies must fail loudly, not decode to empty")
}
