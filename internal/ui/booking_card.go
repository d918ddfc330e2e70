package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ghumakkad/ghumakkad-desktop/internal/model"
)

// BookingCard represents one of the traveler's bookings in the list.
type BookingCard struct {
	widget.BaseWidget

	booking      model.Booking
	localization *Localization

	titleLabel  *widget.Label
	routeLabel  *widget.Label
	priceLabel  *widget.Label
	statusLabel *widget.Label
	cancelBtn   *widget.Button

	onCancel func(tripID string)
}

// NewBookingCard creates a booking row.
func NewBookingCard(booking model.Booking, localization *Localization) *BookingCard {
	bc := &BookingCard{
		booking:      booking,
		localization: localization,
	}
	bc.ExtendBaseWidget(bc)
	bc.createUI()
	bc.updateFromBooking()
	return bc
}

// SetCallbacks sets the action callbacks.
func (bc *BookingCard) SetCallbacks(onCancel func(tripID string)) {
	bc.onCancel = onCancel
	bc.updateFromBooking()
}

func (bc *BookingCard) createUI() {
	bc.titleLabel = widget.NewLabel("")
	bc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	bc.titleLabel.Truncation = fyne.TextTruncateEllipsis

	bc.routeLabel = widget.NewLabel("")
	bc.priceLabel = widget.NewLabel("")
	bc.statusLabel = widget.NewLabel("")

	bc.cancelBtn = widget.NewButton(bc.localization.GetText(KeyCancelBooking), func() {
		if bc.onCancel != nil {
			bc.onCancel(bc.booking.TripID)
		}
	})
	bc.cancelBtn.Importance = widget.DangerImportance
}

func (bc *BookingCard) updateFromBooking() {
	booking := bc.booking

	bc.titleLabel.SetText(booking.Title)

	route := IconLocation + " " + booking.From + " -> " + booking.To +
		MiddleDotSeparator + IconCalendar + " " + booking.StartDate.Format("02 Jan 2006")
	if booking.IsUpcoming && booking.DaysLeft > 0 {
		route += fmt.Sprintf(MiddleDotSeparator+"%d days left", booking.DaysLeft)
	}
	bc.routeLabel.SetText(route)

	bc.priceLabel.SetText(fmt.Sprintf("%s %d %s%s%s%.0f total",
		IconSeat, booking.SeatsBooked, bc.localization.GetText(KeySeats),
		MiddleDotSeparator, IconRupee, booking.TotalPrice()))

	bc.statusLabel.SetText(booking.DisplayStatus())

	if booking.IsCancelable(time.Now()) {
		bc.cancelBtn.Show()
	} else {
		bc.cancelBtn.Hide()
	}
}

// CreateRenderer builds the card layout.
func (bc *BookingCard) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, bc.statusLabel, bc.titleLabel)
	body := container.NewVBox(header, bc.routeLabel, bc.priceLabel, bc.cancelBtn, widget.NewSeparator())
	return widget.NewSimpleRenderer(body)
}

// MinSize keeps cards readable inside lists.
func (bc *BookingCard) MinSize() fyne.Size {
	min := bc.BaseWidget.MinSize()
	if min.Width < CardMinWidth {
		min.Width = CardMinWidth
	}
	return min
}
