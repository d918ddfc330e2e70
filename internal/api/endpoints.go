package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ghumakkad/ghumakkad-desktop/internal/model"
)

// MaxSearchResults caps the number of place-search results shown.
const MaxSearchResults = 10

// Credentials is the signin/signup request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTripRequest is the body of the trip-creation call. Dates are sent
// as RFC 3339 timestamps, matching what the backend stores.
type CreateTripRequest struct {
	Title           string    `json:"title"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Seats           int       `json:"seats"`
	PricePerPerson  float64   `json:"pricePerPerson"`
	ModeOfTransport string    `json:"modeOfTransport"`
	PhoneNo         string    `json:"phoneNo"`
}

// Order describes a payment order created for a join request. The checkout
// itself is handed off to the gateway; after the user confirms, the client
// issues the join call.
type Order struct {
	OrderID     string  `json:"orderId"`
	Key         string  `json:"key"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	TripTitle   string  `json:"tripTitle"`
	CheckoutURL string  `json:"checkoutUrl"`
}

// SignIn exchanges credentials for a bearer token. The caller stores the
// token in the session on success.
func (c *Client) SignIn(ctx context.Context, creds Credentials) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/user/signin", creds, &resp, false); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &Error{Status: http.StatusOK, Message: "signin response carried no token"}
	}
	return resp.Token, nil
}

// SignUp registers a new account and returns the backend's confirmation
// message.
func (c *Client) SignUp(ctx context.Context, creds Credentials) (string, error) {
	var resp struct {
		Msg string `json:"msg"`
	}
	if err := c.do(ctx, http.MethodPost, "/user/signup", creds, &resp, false); err != nil {
		return "", err
	}
	if resp.Msg == "" {
		resp.Msg = "Account created successfully!"
	}
	return resp.Msg, nil
}

// DashboardData fetches the current user's profile. The backend has served
// several shapes over time (flat, "id" vs "_id", nested under "user"), so
// the envelope is normalized here.
func (c *Client) DashboardData(ctx context.Context) (model.User, error) {
	var resp struct {
		ID      string      `json:"_id"`
		AltID   string      `json:"id"`
		Email   string      `json:"email"`
		IsAdmin bool        `json:"isAdmin"`
		User    *model.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/user/dashboard-data", nil, &resp, true); err != nil {
		return model.User{}, err
	}

	user := model.User{ID: resp.ID, Email: resp.Email, IsAdmin: resp.IsAdmin}
	if user.ID == "" {
		user.ID = resp.AltID
	}
	if resp.User != nil {
		if user.ID == "" {
			user.ID = resp.User.ID
		}
		if user.Email == "" {
			user.Email = resp.User.Email
		}
	}
	c.session.SetEmail(user.Email)
	return user, nil
}

// MyTrips lists trips created by the current user.
func (c *Client) MyTrips(ctx context.Context) ([]model.Trip, error) {
	return c.fetchTrips(ctx, "/trips/my-trips")
}

// AvailableTrips lists trips open for discovery and joining.
func (c *Client) AvailableTrips(ctx context.Context) ([]model.Trip, error) {
	return c.fetchTrips(ctx, "/trips/all")
}

// MyBookings lists the current user's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]model.Booking, error) {
	return c.fetchBookings(ctx, "/trips/my-booking")
}

// CreateTrip submits a new trip. Success is confirmed by the follow-up
// reload, never by local mutation.
func (c *Client) CreateTrip(ctx context.Context, req CreateTripRequest) error {
	return c.do(ctx, http.MethodPost, "/trips/create", req, nil, true)
}

// CreateOrder starts the payment flow for joining a trip.
func (c *Client) CreateOrder(ctx context.Context, tripID string, seats int) (Order, error) {
	var order Order
	body := struct {
		SeatsBooked int `json:"seatsBooked"`
	}{SeatsBooked: seats}
	err := c.do(ctx, http.MethodPost, "/payment/create-order/"+url.PathEscape(tripID), body, &order, true)
	return order, err
}

// JoinTrip requests seats on a trip after the payment handoff completed.
func (c *Client) JoinTrip(ctx context.Context, tripID string, seats int) error {
	body := struct {
		SeatsBooked int `json:"seatsBooked"`
	}{SeatsBooked: seats}
	return c.do(ctx, http.MethodPost, "/trips/"+url.PathEscape(tripID)+"/join", body, nil, true)
}

// CancelTrip asks the backend to cancel a trip owned by the current user.
func (c *Client) CancelTrip(ctx context.Context, tripID string) error {
	return c.do(ctx, http.MethodPost, "/trips/"+url.PathEscape(tripID)+"/cancel", nil, nil, true)
}

// CancelBooking withdraws the current user's booking on the given trip.
func (c *Client) CancelBooking(ctx context.Context, tripID string) error {
	return c.do(ctx, http.MethodPost, "/trips/"+url.PathEscape(tripID)+"/cancel-booking", nil, nil, true)
}

// AcceptBooking approves a booking request on a trip the user owns.
func (c *Client) AcceptBooking(ctx context.Context, tripID, bookingID string) error {
	path := fmt.Sprintf("/trips/%s/booking/%s/accept", url.PathEscape(tripID), url.PathEscape(bookingID))
	return c.do(ctx, http.MethodPost, path, nil, nil, true)
}

// RejectBooking declines a booking request on a trip the user owns.
// Note the plural "bookings" segment: the backend routes accept and reject
// inconsistently and both spellings are load-bearing.
func (c *Client) RejectBooking(ctx context.Context, tripID, bookingID string) error {
	path := fmt.Sprintf("/trips/%s/bookings/%s/reject", url.PathEscape(tripID), url.PathEscape(bookingID))
	return c.do(ctx, http.MethodPost, path, nil, nil, true)
}

// SearchPlaces looks up destinations by city name. Results are normalized
// (missing names/addresses get placeholders) and capped at MaxSearchResults.
func (c *Client) SearchPlaces(ctx context.Context, city string) ([]model.Place, error) {
	type rawPlace struct {
		Name     string  `json:"name"`
		Address  string  `json:"address"`
		Location string  `json:"location"`
		Image    string  `json:"image"`
		Photo    string  `json:"photo"`
		Rating   float64 `json:"rating"`
	}
	var resp struct {
		Places  []rawPlace `json:"places"`
		Results []rawPlace `json:"results"`
	}

	path := "/trips/search-places?city=" + url.QueryEscape(city)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return nil, err
	}

	raw := resp.Places
	if len(raw) == 0 {
		raw = resp.Results
	}
	if len(raw) > MaxSearchResults {
		raw = raw[:MaxSearchResults]
	}

	places := make([]model.Place, 0, len(raw))
	for _, p := range raw {
		place := model.Place{Name: p.Name, Address: p.Address, ImageURL: p.Image, Rating: p.Rating}
		if place.Name == "" {
			place.Name = "Unknown Place"
		}
		if place.Address == "" {
			place.Address = p.Location
		}
		if place.Address == "" {
			place.Address = "No address available"
		}
		if place.ImageURL == "" {
			place.ImageURL = p.Photo
		}
		places = append(places, place)
	}
	return places, nil
}

// SendChatMessage relays a message to the support chatbot and returns its
// reply.
func (c *Client) SendChatMessage(ctx context.Context, message string) (string, error) {
	body := struct {
		Message string `json:"message"`
	}{Message: message}
	var resp struct {
		Reply string `json:"reply"`
	}
	if err := c.do(ctx, http.MethodPost, "/chat/create", body, &resp, true); err != nil {
		return "", err
	}
	return resp.Reply, nil
}

// AdminUsers lists every registered user. Admin-only.
func (c *Client) AdminUsers(ctx context.Context) ([]model.User, error) {
	var resp struct {
		Users []model.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &resp, true); err != nil {
		return nil, err
	}
	if resp.Users == nil {
		resp.Users = []model.User{}
	}
	return resp.Users, nil
}

// AdminTrips lists every trip on the platform. Admin-only.
func (c *Client) AdminTrips(ctx context.Context) ([]model.Trip, error) {
	return c.fetchTrips(ctx, "/admin/trips")
}

// AdminBookings lists every booking on the platform. Admin-only.
func (c *Client) AdminBookings(ctx context.Context) ([]model.Booking, error) {
	return c.fetchBookings(ctx, "/admin/bookings")
}

// fetchTrips handles the shared {trips: [...]} envelope. An absent or null
// field decodes to an empty list.
func (c *Client) fetchTrips(ctx context.Context, path string) ([]model.Trip, error) {
	var resp struct {
		Trips []model.Trip `json:"trips"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return nil, err
	}
	if resp.Trips == nil {
		resp.Trips = []model.Trip{}
	}
	return resp.Trips, nil
}

// fetchBookings handles the shared {bookings: [...]} envelope.
func (c *Client) fetchBookings(ctx context.Context, path string) ([]model.Booking, error) {
	var resp struct {
		Bookings []model.Booking `json:"bookings"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return nil, err
	}
	if resp.Bookings == nil {
		resp.Bookings = []model.Booking{}
	}
	return resp.Bookings, nil
}
