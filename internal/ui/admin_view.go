package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// adminView shows the platform-wide lists. It is read-only: admins observe
// users, trips, and bookings but moderation happens elsewhere.
type adminView struct {
	ui      *RootUI
	content fyne.CanvasObject

	statsLabel  *widget.Label
	usersBox    *fyne.Container
	tripsBox    *fyne.Container
	bookingsBox *fyne.Container
}

func newAdminView(ui *RootUI) *adminView {
	v := &adminView{ui: ui}
	v.createUI()

	ui.svc.SetUpdateCallback(func() {
		fyne.Do(v.refresh)
	})
	v.refresh()
	return v
}

func (v *adminView) createUI() {
	title := widget.NewLabel(IconAdmin + " " + v.ui.T(KeyAdminPanel))
	title.TextStyle = fyne.TextStyle{Bold: true}

	backBtn := widget.NewButton(v.ui.T(KeyOverview), v.ui.ShowDashboard)
	refreshBtn := widget.NewButton(IconRefresh, func() {
		go v.ui.svc.RefreshAdmin(context.Background())
	})
	header := container.NewBorder(nil, nil, title, container.NewHBox(refreshBtn, backBtn))

	v.statsLabel = widget.NewLabel("")
	v.usersBox = container.NewVBox()
	v.tripsBox = container.NewVBox()
	v.bookingsBox = container.NewVBox()

	tabs := container.NewAppTabs(
		container.NewTabItem(v.ui.T(KeyOverview), container.NewVScroll(v.statsLabel)),
		container.NewTabItem(v.ui.T(KeyUsers), container.NewVScroll(v.usersBox)),
		container.NewTabItem(v.ui.T(KeyTrips), container.NewVScroll(v.tripsBox)),
		container.NewTabItem(v.ui.T(KeyBookings), container.NewVScroll(v.bookingsBox)),
	)

	v.content = container.NewBorder(header, nil, nil, nil, tabs)
}

// refresh re-renders the admin lists from the current snapshots. Runs on
// the UI thread.
func (v *adminView) refresh() {
	stats := v.ui.svc.AdminStats()
	v.statsLabel.SetText(fmt.Sprintf("%s: %d\n%s: %d\n%s: %d\n%s: %d",
		v.ui.T(KeyTotalUsers), stats.TotalUsers,
		v.ui.T(KeyTotalTrips), stats.TotalTrips,
		v.ui.T(KeyTotalBookings), stats.TotalBookings,
		v.ui.T(KeyActiveTrips), stats.ActiveTrips))

	v.usersBox.Objects = nil
	for _, user := range v.ui.svc.AdminUsers() {
		email := user.Email
		if email == "" {
			email = DashPlaceholder
		}
		line := IconTraveler + " " + email
		if user.IsAdmin {
			line += MiddleDotSeparator + IconAdmin
		}
		v.usersBox.Add(widget.NewLabel(line))
	}
	v.usersBox.Refresh()

	v.tripsBox.Objects = nil
	for _, trip := range v.ui.svc.AdminTrips() {
		v.tripsBox.Add(widget.NewLabel(fmt.Sprintf("%s %s%s%s%s%s",
			IconTrip, trip.Title, MiddleDotSeparator, trip.Route(),
			MiddleDotSeparator, trip.Status)))
	}
	v.tripsBox.Refresh()

	v.bookingsBox.Objects = nil
	for _, booking := range v.ui.svc.AdminBookings() {
		v.bookingsBox.Add(widget.NewLabel(fmt.Sprintf("%s %s%s%s%s%s",
			IconSeat, booking.Title, MiddleDotSeparator, booking.TravelerLabel(),
			MiddleDotSeparator, booking.DisplayStatus())))
	}
	v.bookingsBox.Refresh()
}
