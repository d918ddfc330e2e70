package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ghumakkad/ghumakkad-desktop/internal/model"
)

// TripCard represents a compact trip row widget. The visible actions depend
// on whether the viewer hosts the trip: hosts can cancel and decide booking
// requests, travelers can join.
type TripCard struct {
	widget.BaseWidget

	trip         model.Trip
	viewerID     string
	localization *Localization

	// UI components
	titleLabel  *widget.Label
	routeLabel  *widget.Label
	metaLabel   *widget.Label
	statusLabel *widget.Label

	// Action buttons
	joinBtn   *widget.Button
	cancelBtn *widget.Button

	requestRows *fyne.Container

	// Callbacks
	onJoin   func(trip model.Trip)
	onCancel func(tripID string)
	onDecide func(tripID, bookingID string, accept bool)
}

// NewTripCard creates a trip row for the given viewer.
func NewTripCard(trip model.Trip, viewerID string, localization *Localization) *TripCard {
	tc := &TripCard{
		trip:         trip,
		viewerID:     viewerID,
		localization: localization,
	}
	tc.ExtendBaseWidget(tc)
	tc.createUI()
	tc.updateFromTrip()
	return tc
}

// SetCallbacks sets the action callbacks.
func (tc *TripCard) SetCallbacks(
	onJoin func(trip model.Trip),
	onCancel func(tripID string),
	onDecide func(tripID, bookingID string, accept bool),
) {
	tc.onJoin = onJoin
	tc.onCancel = onCancel
	tc.onDecide = onDecide
	tc.updateFromTrip()
}

func (tc *TripCard) createUI() {
	tc.titleLabel = widget.NewLabel("")
	tc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tc.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tc.routeLabel = widget.NewLabel("")
	tc.metaLabel = widget.NewLabel("")
	tc.metaLabel.TextStyle = fyne.TextStyle{Italic: true}

	tc.statusLabel = widget.NewLabel("")

	tc.joinBtn = widget.NewButton(tc.localization.GetText(KeyJoinTrip), func() {
		if tc.onJoin != nil {
			tc.onJoin(tc.trip)
		}
	})
	tc.joinBtn.Importance = widget.HighImportance

	tc.cancelBtn = widget.NewButton(tc.localization.GetText(KeyCancelTrip), func() {
		if tc.onCancel != nil {
			tc.onCancel(tc.trip.ID)
		}
	})
	tc.cancelBtn.Importance = widget.DangerImportance

	tc.requestRows = container.NewVBox()
}

// updateFromTrip applies the trip state to the widgets.
func (tc *TripCard) updateFromTrip() {
	trip := tc.trip
	owned := trip.IsOwnedBy(tc.viewerID)

	tc.titleLabel.SetText(trip.Title)
	tc.routeLabel.SetText(IconLocation + " " + trip.Route() + MiddleDotSeparator + IconCalendar + " " + trip.DateRange())

	meta := fmt.Sprintf("%s %s%s%s %d %s%s"+PriceLabelFormat,
		IconTrip, trip.TransportLabel(), MiddleDotSeparator,
		IconSeat, trip.AvailableSeats, tc.localization.GetText(KeySeats), MiddleDotSeparator,
		trip.PricePerPerson)
	if len(trip.Weather) > 0 && trip.Weather[0].Description != "" {
		meta += MiddleDotSeparator + IconWeather + " " + trip.Weather[0].Description
	}
	if !owned {
		meta += MiddleDotSeparator + IconHost + " " + trip.OwnerLabel()
	}
	tc.metaLabel.SetText(meta)

	tc.statusLabel.SetText(string(trip.Status))

	if !owned && trip.IsJoinable() {
		tc.joinBtn.Show()
	} else {
		tc.joinBtn.Hide()
	}
	if owned && trip.IsCancelable() {
		tc.cancelBtn.Show()
	} else {
		tc.cancelBtn.Hide()
	}

	tc.requestRows.Objects = nil
	if owned && trip.Status == model.TripStatusUpcoming {
		for _, booking := range trip.Bookings {
			if booking.Status == model.BookingStatusPending {
				tc.requestRows.Add(tc.newRequestRow(booking))
			}
		}
	}
	tc.requestRows.Refresh()
}

// newRequestRow builds one pending booking request line with its decision
// buttons.
func (tc *TripCard) newRequestRow(booking model.Booking) fyne.CanvasObject {
	label := widget.NewLabel(fmt.Sprintf("%s %s%s%d %s",
		IconTraveler, booking.TravelerLabel(), MiddleDotSeparator,
		booking.SeatsBooked, tc.localization.GetText(KeySeats)))
	label.Truncation = fyne.TextTruncateEllipsis

	bookingID := booking.ID
	acceptBtn := widget.NewButton(tc.localization.GetText(KeyAccept), func() {
		if tc.onDecide != nil {
			tc.onDecide(tc.trip.ID, bookingID, true)
		}
	})
	acceptBtn.Importance = widget.SuccessImportance

	rejectBtn := widget.NewButton(tc.localization.GetText(KeyReject), func() {
		if tc.onDecide != nil {
			tc.onDecide(tc.trip.ID, bookingID, false)
		}
	})
	rejectBtn.Importance = widget.DangerImportance

	return container.NewBorder(nil, nil, nil, container.NewHBox(acceptBtn, rejectBtn), label)
}

// CreateRenderer builds the card layout.
func (tc *TripCard) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, tc.statusLabel, tc.titleLabel)
	actions := container.NewHBox(tc.joinBtn, tc.cancelBtn)
	body := container.NewVBox(header, tc.routeLabel, tc.metaLabel, tc.requestRows, actions, widget.NewSeparator())
	return widget.NewSimpleRenderer(body)
}

// MinSize keeps cards readable inside lists.
func (tc *TripCard) MinSize() fyne.Size {
	min := tc.BaseWidget.MinSize()
	if min.Width < CardMinWidth {
		min.Width = CardMinWidth
	}
	if min.Height < CardMinHeight {
		min.Height = CardMinHeight
	}
	return min
}
