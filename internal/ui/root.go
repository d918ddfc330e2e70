package ui

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ghumakkad/ghumakkad-desktop/internal/api"
	"github.com/ghumakkad/ghumakkad-desktop/internal/config"
	"github.com/ghumakkad/ghumakkad-desktop/internal/data"
	"github.com/ghumakkad/ghumakkad-desktop/internal/notify"
	"github.com/ghumakkad/ghumakkad-desktop/internal/session"
)

// RootUI represents the main UI structure. It owns navigation between the
// login, dashboard, and admin views and renders the notification toasts.
type RootUI struct {
	app    fyne.App
	window fyne.Window
	log    zerolog.Logger

	settings     *config.Settings
	session      *session.Store
	client       *api.Client
	svc          *data.Service
	notes        *notify.Queue
	localization *Localization

	content      *fyne.Container
	viewTeardown func() // stops the outgoing view's background work

	toastMu      sync.Mutex
	activeToasts map[string]*widget.PopUp
}

// NewRootUI creates and wires the main UI.
func NewRootUI(
	app fyne.App,
	window fyne.Window,
	settings *config.Settings,
	sess *session.Store,
	client *api.Client,
	svc *data.Service,
	notes *notify.Queue,
	log zerolog.Logger,
) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.Language())

	ui := &RootUI{
		app:          app,
		window:       window,
		log:          log.With().Str("component", "ui").Logger(),
		settings:     settings,
		session:      sess,
		client:       client,
		svc:          svc,
		notes:        notes,
		localization: localization,
		content:      container.NewStack(),
		activeToasts: make(map[string]*widget.PopUp),
	}

	// A rejected token anywhere lands the user back on the login view.
	client.SetSessionExpiredCallback(func() {
		ui.log.Info().Msg("session expired, returning to login")
		ui.svc.StopPolling()
		ui.svc.Close()
		fyne.Do(ui.ShowLogin)
	})

	notes.SetChangeCallback(func(entries []notify.Notification) {
		fyne.Do(func() { ui.syncToasts(entries) })
	})

	window.SetContent(ui.content)
	window.Resize(fyne.NewSize(WindowDefaultWidth, WindowDefaultHeight))
	window.SetMaster()

	return ui
}

// Start shows the first view based on whether a session is stored.
func (ui *RootUI) Start() {
	if ui.session.IsAuthenticated() {
		ui.ShowDashboard()
	} else {
		ui.ShowHome()
	}
}

// ShowHome swaps in the signed-out landing view.
func (ui *RootUI) ShowHome() {
	view := newHomeView(ui)
	ui.setView(view.content, view.stop)
}

// T is shorthand for the localized text lookup used across the views.
func (ui *RootUI) T(key string) string {
	return ui.localization.GetText(key)
}

// ShowLogin swaps in the login view and halts background work.
func (ui *RootUI) ShowLogin() {
	ui.svc.StopPolling()
	ui.setView(newLoginView(ui).content, nil)
}

// ShowDashboard swaps in the traveler dashboard, starts polling, and kicks
// an immediate refresh.
func (ui *RootUI) ShowDashboard() {
	ui.svc.Reopen()
	view := newDashboardView(ui)
	ui.setView(view.content, view.stop)

	ui.svc.StartPolling(ui.settings.PollInterval())
	go func() {
		if err := ui.svc.RefreshDashboard(context.Background()); err != nil {
			ui.log.Warn().Err(err).Msg("initial dashboard load failed")
		}
	}()
}

// ShowAdmin swaps in the platform admin view. The poller is repointed at
// the admin lists while this view is active; navigating back to the
// dashboard repoints it again.
func (ui *RootUI) ShowAdmin() {
	view := newAdminView(ui)
	ui.setView(view.content, nil)

	ui.svc.StartAdminPolling(ui.settings.PollInterval())
	go func() {
		if err := ui.svc.RefreshAdmin(context.Background()); err != nil {
			ui.log.Warn().Err(err).Msg("admin load failed")
		}
	}()
}

// Logout clears the session and data, then returns to login.
func (ui *RootUI) Logout() {
	ui.session.Clear()
	ui.svc.StopPolling()
	ui.svc.Close()
	ui.ShowLogin()
}

func (ui *RootUI) setView(view fyne.CanvasObject, teardown func()) {
	if ui.viewTeardown != nil {
		ui.viewTeardown()
	}
	ui.viewTeardown = teardown
	ui.content.Objects = []fyne.CanvasObject{view}
	ui.content.Refresh()
}

// syncToasts reconciles the visible popups with the notification queue. The
// queue owns expiry; this only mirrors its current entries. Runs on the UI
// thread.
func (ui *RootUI) syncToasts(entries []notify.Notification) {
	ui.toastMu.Lock()
	defer ui.toastMu.Unlock()

	alive := make(map[string]bool, len(entries))
	for i, entry := range entries {
		alive[entry.ID] = true
		if popup, shown := ui.activeToasts[entry.ID]; shown {
			ui.moveToast(popup, i)
			continue
		}
		ui.activeToasts[entry.ID] = ui.showToast(entry, i)
	}

	for id, popup := range ui.activeToasts {
		if !alive[id] {
			popup.Hide()
			delete(ui.activeToasts, id)
		}
	}
}

// showToast renders one notification popup in the top-right corner, stacked
// below earlier ones.
func (ui *RootUI) showToast(entry notify.Notification, index int) *widget.PopUp {
	messageLabel := widget.NewLabel(kindPrefix(entry.Kind) + entry.Message)
	messageLabel.Wrapping = fyne.TextWrapWord

	var popup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		ui.notes.Dismiss(entry.ID)
	})
	closeBtn.Importance = widget.LowImportance

	popup = widget.NewPopUp(container.NewBorder(nil, nil, nil, closeBtn, messageLabel), ui.window.Canvas())
	popup.Resize(fyne.NewSize(ToastWidth, ToastHeight))
	ui.moveToast(popup, index)
	popup.Show()
	return popup
}

func (ui *RootUI) moveToast(popup *widget.PopUp, index int) {
	canvasSize := ui.window.Canvas().Size()
	x := canvasSize.Width - ToastWidth - ToastMargin
	y := ToastMargin + float32(index)*(ToastHeight+ToastMargin/2)
	popup.Move(fyne.NewPos(x, y))
}

func kindPrefix(kind notify.Kind) string {
	switch kind {
	case notify.KindSuccess:
		return "✅ "
	case notify.KindError:
		return IconError + " "
	case notify.KindWarning:
		return "⚠ "
	default:
		return ""
	}
}
