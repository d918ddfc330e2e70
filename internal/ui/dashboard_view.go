package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ghumakkad/ghumakkad-desktop/internal/api"
	"github.com/ghumakkad/ghumakkad-desktop/internal/model"
	"github.com/ghumakkad/ghumakkad-desktop/internal/notify"
	"github.com/ghumakkad/ghumakkad-desktop/internal/platform"
	"github.com/ghumakkad/ghumakkad-desktop/internal/sched"
	"github.com/ghumakkad/ghumakkad-desktop/internal/validate"
)

// dateInputFormat is how users type dates in the create form.
const dateInputFormat = "2006-01-02"

// filterAll is the unfiltered option in the status selects.
const filterAll = "All"

// dashboardView is the signed-in traveler screen: overview stats, hosted
// trips, bookings, discovery with place search, and the create-trip form.
type dashboardView struct {
	ui      *RootUI
	content fyne.CanvasObject

	welcomeLabel *widget.Label
	adminBtn     *widget.Button
	statsLabel   *widget.Label

	myTripsBox    *fyne.Container
	bookingsBox   *fyne.Container
	discoverBox   *fyne.Container
	tripFilter    *widget.Select
	bookingFilter *widget.Select

	searchEntry    *widget.Entry
	searchResults  *fyne.Container
	searchDebounce *sched.Debouncer

	createForm *tripForm
}

func newDashboardView(ui *RootUI) *dashboardView {
	v := &dashboardView{
		ui:             ui,
		searchDebounce: sched.NewDebouncer(SearchDebounce),
	}
	v.createUI()

	ui.svc.SetUpdateCallback(func() {
		fyne.Do(v.refresh)
	})
	v.refresh()
	return v
}

// stop cancels pending background work when the view is left.
func (v *dashboardView) stop() {
	v.searchDebounce.Stop()
}

func (v *dashboardView) createUI() {
	v.welcomeLabel = widget.NewLabel("")
	v.welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	v.adminBtn = widget.NewButton(IconAdmin+" "+v.ui.T(KeyAdminPanel), v.ui.ShowAdmin)
	v.adminBtn.Hide()

	chatBtn := widget.NewButton(IconChat+" "+v.ui.T(KeyChat), func() {
		newChatPanel(v.ui).Show()
	})
	settingsBtn := widget.NewButton(IconSettings, func() {
		newSettingsDialog(v.ui).Show()
	})
	refreshBtn := widget.NewButton(IconRefresh, func() {
		go v.ui.svc.RefreshDashboard(context.Background())
	})
	logoutBtn := widget.NewButton(v.ui.T(KeyLogout), v.ui.Logout)

	header := container.NewBorder(nil, nil, v.welcomeLabel,
		container.NewHBox(v.adminBtn, chatBtn, refreshBtn, settingsBtn, logoutBtn))

	v.statsLabel = widget.NewLabel("")
	overview := container.NewVBox(v.statsLabel)

	v.myTripsBox = container.NewVBox()
	v.bookingsBox = container.NewVBox()
	v.discoverBox = container.NewVBox()

	v.tripFilter = widget.NewSelect(
		[]string{filterAll, "upcoming", "ongoing", "completed", "cancelled"}, nil)
	v.tripFilter.SetSelected(filterAll)

	v.bookingFilter = widget.NewSelect(
		[]string{filterAll, "upcoming", "pending", "completed", "cancelled", "rejected"}, nil)
	v.bookingFilter.SetSelected(filterAll)

	// Wired after both selects exist so the initial SetSelected does not
	// render against a half-built view.
	v.tripFilter.OnChanged = func(string) { v.refresh() }
	v.bookingFilter.OnChanged = func(string) { v.refresh() }

	v.searchEntry = widget.NewEntry()
	v.searchEntry.SetPlaceHolder(v.ui.T(KeySearchHint))
	v.searchEntry.OnChanged = v.onSearchChanged
	v.searchResults = container.NewVBox()

	searchCaption := widget.NewLabel(IconSearch + " " + v.ui.T(KeySearchPlaces))
	searchCaption.TextStyle = fyne.TextStyle{Bold: true}

	discover := container.NewBorder(
		container.NewVBox(searchCaption, v.searchEntry, v.searchResults), nil, nil, nil,
		container.NewVScroll(v.discoverBox))

	v.createForm = newTripForm(v.ui)

	myTripsTab := container.NewBorder(v.tripFilter, nil, nil, nil,
		container.NewVScroll(v.myTripsBox))
	bookingsTab := container.NewBorder(v.bookingFilter, nil, nil, nil,
		container.NewVScroll(v.bookingsBox))

	tabs := container.NewAppTabs(
		container.NewTabItem(v.ui.T(KeyOverview), container.NewVScroll(overview)),
		container.NewTabItem(v.ui.T(KeyMyTrips), myTripsTab),
		container.NewTabItem(v.ui.T(KeyMyBookings), bookingsTab),
		container.NewTabItem(v.ui.T(KeyDiscover), discover),
		container.NewTabItem(v.ui.T(KeyCreateTrip), container.NewVScroll(v.createForm.content)),
	)

	v.content = container.NewBorder(header, nil, nil, nil, tabs)
}

// refresh re-renders every tab from the current snapshots. Runs on the UI
// thread.
func (v *dashboardView) refresh() {
	user := v.ui.svc.User()
	if user.ID == "" {
		// Until the profile endpoint answers, the token payload is the
		// only source for the viewer's identity.
		if ident, ok := v.ui.session.Identity(); ok {
			user.ID = ident.UserID
			user.Email = ident.Email
		}
	}
	v.welcomeLabel.SetText(IconTraveler + " " + user.DisplayName())
	if user.IsAdmin {
		v.adminBtn.Show()
	} else {
		v.adminBtn.Hide()
	}

	stats := v.ui.svc.Stats()
	v.statsLabel.SetText(fmt.Sprintf("%s: %d\n%s: %d\n%s: %d\n%s: %d",
		v.ui.T(KeyTotalTrips), stats.TotalTrips,
		v.ui.T(KeyUpcomingTrips), stats.UpcomingTrips,
		v.ui.T(KeyTotalBookings), stats.TotalBookings,
		v.ui.T(KeyPendingRequests), stats.PendingRequests))

	v.renderMyTrips(user.ID)
	v.renderBookings()
	v.renderDiscover(user.ID)
}

func (v *dashboardView) renderMyTrips(viewerID string) {
	filter := v.tripFilter.Selected
	shown := 0

	v.myTripsBox.Objects = nil
	for _, trip := range v.ui.svc.MyTrips() {
		if filter != filterAll && trip.Status.String() != filter {
			continue
		}
		card := NewTripCard(trip, viewerID, v.ui.localization)
		card.SetCallbacks(nil, v.onCancelTrip, v.onDecideBooking)
		v.myTripsBox.Add(card)
		shown++
	}
	if shown == 0 {
		v.myTripsBox.Add(widget.NewLabel(v.ui.T(KeyNoTrips)))
	}
	v.myTripsBox.Refresh()
}

func (v *dashboardView) renderBookings() {
	filter := v.bookingFilter.Selected
	shown := 0

	v.bookingsBox.Objects = nil
	for _, booking := range v.ui.svc.MyBookings() {
		if filter != filterAll && booking.DisplayStatus() != filter {
			continue
		}
		card := NewBookingCard(booking, v.ui.localization)
		card.SetCallbacks(v.onCancelBooking)
		v.bookingsBox.Add(card)
		shown++
	}
	if shown == 0 {
		v.bookingsBox.Add(widget.NewLabel(v.ui.T(KeyNoBookings)))
	}
	v.bookingsBox.Refresh()
}

func (v *dashboardView) renderDiscover(viewerID string) {
	trips := v.ui.svc.AvailableTrips()
	v.discoverBox.Objects = nil
	for _, trip := range trips {
		// Own trips show up in the discovery feed too; the card hides the
		// join button for them.
		card := NewTripCard(trip, viewerID, v.ui.localization)
		card.SetCallbacks(v.onJoinTrip, v.onCancelTrip, v.onDecideBooking)
		v.discoverBox.Add(card)
	}
	v.discoverBox.Refresh()
}

// onSearchChanged debounces keystrokes and fires one place search for the
// final query. Blank queries just clear the results.
func (v *dashboardView) onSearchChanged(query string) {
	if query == "" {
		v.searchDebounce.Stop()
		v.searchResults.Objects = nil
		v.searchResults.Refresh()
		return
	}

	v.searchDebounce.Trigger(func() {
		fyne.Do(func() {
			v.searchResults.Objects = []fyne.CanvasObject{widget.NewLabel(v.ui.T(KeyLoading))}
			v.searchResults.Refresh()
		})

		places, err := v.ui.client.SearchPlaces(context.Background(), query)
		if err != nil {
			v.ui.log.Warn().Err(err).Str("city", query).Msg("place search failed")
			fyne.Do(func() {
				v.searchResults.Objects = nil
				v.searchResults.Refresh()
			})
			return
		}
		fyne.Do(func() { v.renderSearchResults(places) })
	})
}

func (v *dashboardView) renderSearchResults(places []model.Place) {
	v.searchResults.Objects = nil
	if len(places) == 0 {
		v.searchResults.Add(widget.NewLabel(v.ui.T(KeyNoResults)))
	}
	for _, place := range places {
		text := IconLocation + " " + place.Name + MiddleDotSeparator + place.Address
		if place.HasRating() {
			text += fmt.Sprintf(MiddleDotSeparator+"★ %.1f", place.Rating)
		}
		label := widget.NewLabel(text)
		label.Truncation = fyne.TextTruncateEllipsis
		v.searchResults.Add(label)
	}
	v.searchResults.Refresh()
}

// onJoinTrip runs the seat prompt, payment handoff, and join request.
func (v *dashboardView) onJoinTrip(trip model.Trip) {
	seatsEntry := widget.NewEntry()
	seatsEntry.SetText("1")

	prompt := dialog.NewForm(trip.Title, v.ui.T(KeyJoinTrip), v.ui.T(KeyCancel),
		[]*widget.FormItem{widget.NewFormItem(v.ui.T(KeySeatsPrompt), seatsEntry)},
		func(confirmed bool) {
			if !confirmed {
				return
			}
			seats, err := strconv.Atoi(seatsEntry.Text)
			if err != nil {
				v.ui.notes.Push("Enter a valid seat count", notify.KindWarning)
				return
			}
			if msg := validate.Seats(seats, trip.AvailableSeats); msg != "" {
				v.ui.notes.Push(msg, notify.KindWarning)
				return
			}
			go v.startPayment(trip, seats)
		}, v.ui.window)
	prompt.Show()
}

// startPayment creates the order, opens the checkout page, and asks the
// user to confirm before the join request fires. Runs off the UI thread.
func (v *dashboardView) startPayment(trip model.Trip, seats int) {
	order, err := v.ui.client.CreateOrder(context.Background(), trip.ID, seats)
	if err != nil {
		if apiErr, ok := api.AsBackendError(err); ok {
			v.ui.notes.Push(apiErr.UserMessage(), notify.KindError)
		} else if !api.IsSessionError(err) {
			v.ui.notes.Push("Could not start the payment", notify.KindError)
		}
		return
	}

	if order.CheckoutURL != "" {
		if err := platform.OpenURL(order.CheckoutURL); err != nil {
			v.ui.log.Warn().Err(err).Msg("could not open checkout page")
		}
	}

	fyne.Do(func() {
		dialog.ShowConfirm(v.ui.T(KeyConfirmPayment), v.ui.T(KeyPaymentPrompt), func(paid bool) {
			if !paid {
				return
			}
			go v.ui.svc.JoinTrip(context.Background(), trip.ID, seats)
		}, v.ui.window)
	})
}

func (v *dashboardView) onCancelTrip(tripID string) {
	dialog.ShowConfirm(v.ui.T(KeyCancelTrip), v.ui.T(KeyCancelTrip)+"?", func(confirmed bool) {
		if !confirmed {
			return
		}
		go v.ui.svc.CancelTrip(context.Background(), tripID)
	}, v.ui.window)
}

func (v *dashboardView) onCancelBooking(tripID string) {
	dialog.ShowConfirm(v.ui.T(KeyCancelBooking), v.ui.T(KeyCancelBooking)+"?", func(confirmed bool) {
		if !confirmed {
			return
		}
		go v.ui.svc.CancelBooking(context.Background(), tripID)
	}, v.ui.window)
}

func (v *dashboardView) onDecideBooking(tripID, bookingID string, accept bool) {
	go func() {
		if accept {
			v.ui.svc.AcceptBooking(context.Background(), tripID, bookingID)
		} else {
			v.ui.svc.RejectBooking(context.Background(), tripID, bookingID)
		}
	}()
}

// tripForm is the create-trip tab with per-field validation messages.
type tripForm struct {
	ui      *RootUI
	content fyne.CanvasObject

	titleEntry     *widget.Entry
	fromEntry      *widget.Entry
	toEntry        *widget.Entry
	startEntry     *widget.Entry
	endEntry       *widget.Entry
	seatsEntry     *widget.Entry
	priceEntry     *widget.Entry
	transportPick  *widget.Select
	phoneEntry     *widget.Entry
	fieldErrors    map[string]*widget.Label
	submitBtn      *widget.Button
}

func newTripForm(ui *RootUI) *tripForm {
	f := &tripForm{
		ui:          ui,
		fieldErrors: make(map[string]*widget.Label),
	}
	f.createUI()
	return f
}

func (f *tripForm) createUI() {
	f.titleEntry = widget.NewEntry()
	f.fromEntry = widget.NewEntry()
	f.toEntry = widget.NewEntry()
	f.startEntry = widget.NewEntry()
	f.startEntry.SetPlaceHolder(dateInputFormat)
	f.endEntry = widget.NewEntry()
	f.endEntry.SetPlaceHolder(dateInputFormat)
	f.seatsEntry = widget.NewEntry()
	f.seatsEntry.SetText("1")
	f.priceEntry = widget.NewEntry()
	f.transportPick = widget.NewSelect([]string{"car", "bus", "train", "flight", "bike"}, nil)
	f.transportPick.SetSelected("car")
	f.phoneEntry = widget.NewEntry()

	f.submitBtn = widget.NewButton(f.ui.T(KeySubmit), f.onSubmit)
	f.submitBtn.Importance = widget.HighImportance

	rows := container.NewVBox(
		f.labeled(KeyTitle, f.titleEntry, "title"),
		f.labeled(KeyFrom, f.fromEntry, "from"),
		f.labeled(KeyTo, f.toEntry, "to"),
		f.labeled(KeyStartDate, f.startEntry, "startDate"),
		f.labeled(KeyEndDate, f.endEntry, "endDate"),
		f.labeled(KeySeats, f.seatsEntry, "seats"),
		f.labeled(KeyPricePerPerson, f.priceEntry, "pricePerPerson"),
		f.labeled(KeyTransportMode, f.transportPick, ""),
		f.labeled(KeyPhoneNo, f.phoneEntry, ""),
		f.submitBtn,
	)
	f.content = rows
}

// labeled stacks a caption, the input, and its error label.
func (f *tripForm) labeled(captionKey string, input fyne.CanvasObject, field string) fyne.CanvasObject {
	caption := widget.NewLabel(f.ui.T(captionKey))
	caption.TextStyle = fyne.TextStyle{Bold: true}

	box := container.NewVBox(caption, input)
	if field != "" {
		errLabel := newFieldErrorLabel()
		f.fieldErrors[field] = errLabel
		box.Add(errLabel)
	}
	return box
}

func (f *tripForm) onSubmit() {
	form := validate.TripForm{
		Title: f.titleEntry.Text,
		From:  f.fromEntry.Text,
		To:    f.toEntry.Text,
	}
	form.StartDate, _ = time.Parse(dateInputFormat, f.startEntry.Text)
	form.EndDate, _ = time.Parse(dateInputFormat, f.endEntry.Text)
	form.Seats, _ = strconv.Atoi(f.seatsEntry.Text)
	form.PricePerPerson, _ = strconv.ParseFloat(f.priceEntry.Text, 64)

	errs := validate.Trip(form, time.Now())
	for field, label := range f.fieldErrors {
		if msg, bad := errs[field]; bad {
			label.SetText(msg)
			label.Show()
		} else {
			label.SetText("")
			label.Hide()
		}
	}
	if len(errs) != 0 {
		return
	}

	req := api.CreateTripRequest{
		Title:           form.Title,
		From:            form.From,
		To:              form.To,
		StartDate:       form.StartDate,
		EndDate:         form.EndDate,
		Seats:           form.Seats,
		PricePerPerson:  form.PricePerPerson,
		ModeOfTransport: f.transportPick.Selected,
		PhoneNo:         f.phoneEntry.Text,
	}

	f.submitBtn.Disable()
	go func() {
		defer fyne.Do(f.submitBtn.Enable)
		if err := f.ui.svc.CreateTrip(context.Background(), req); err != nil {
			return
		}
		fyne.Do(f.reset)
	}()
}

func (f *tripForm) reset() {
	f.titleEntry.SetText("")
	f.fromEntry.SetText("")
	f.toEntry.SetText("")
	f.startEntry.SetText("")
	f.endEntry.SetText("")
	f.seatsEntry.SetText("1")
	f.priceEntry.SetText("")
	f.phoneEntry.SetText("")
}
