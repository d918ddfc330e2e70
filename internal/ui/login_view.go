package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ghumakkad/ghumakkad-desktop/internal/api"
	"github.com/ghumakkad/ghumakkad-desktop/internal/notify"
	"github.com/ghumakkad/ghumakkad-desktop/internal/validate"
)

// loginView is the combined signin/signup form. Validation runs locally
// before any request; a form with errors never reaches the backend.
type loginView struct {
	ui      *RootUI
	content fyne.CanvasObject

	signupMode bool

	titleLabel    *widget.Label
	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	emailError    *widget.Label
	passwordError *widget.Label
	submitBtn     *widget.Button
	toggleBtn     *widget.Button
}

func newLoginView(ui *RootUI) *loginView {
	v := &loginView{ui: ui}
	v.createUI()
	return v
}

func (v *loginView) createUI() {
	v.titleLabel = widget.NewLabel(v.ui.T(KeyAppTitle))
	v.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	v.titleLabel.Alignment = fyne.TextAlignCenter

	v.emailEntry = widget.NewEntry()
	v.emailEntry.SetPlaceHolder(v.ui.T(KeyEmail))
	v.passwordEntry = widget.NewPasswordEntry()
	v.passwordEntry.SetPlaceHolder(v.ui.T(KeyPassword))

	v.emailError = newFieldErrorLabel()
	v.passwordError = newFieldErrorLabel()

	v.submitBtn = widget.NewButton(v.ui.T(KeySignIn), v.onSubmit)
	v.submitBtn.Importance = widget.HighImportance
	v.passwordEntry.OnSubmitted = func(string) { v.onSubmit() }

	v.toggleBtn = widget.NewButton(v.ui.T(KeyNeedAccount), v.onToggleMode)
	v.toggleBtn.Importance = widget.LowImportance

	form := container.NewVBox(
		v.titleLabel,
		widget.NewSeparator(),
		v.emailEntry,
		v.emailError,
		v.passwordEntry,
		v.passwordError,
		v.submitBtn,
		v.toggleBtn,
	)

	v.content = container.NewCenter(container.NewGridWrap(fyne.NewSize(DialogWidth, DialogHeight), form))
}

func (v *loginView) onToggleMode() {
	v.signupMode = !v.signupMode
	if v.signupMode {
		v.submitBtn.SetText(v.ui.T(KeySignUp))
		v.toggleBtn.SetText(v.ui.T(KeyHaveAccount))
	} else {
		v.submitBtn.SetText(v.ui.T(KeySignIn))
		v.toggleBtn.SetText(v.ui.T(KeyNeedAccount))
	}
	v.clearErrors()
}

func (v *loginView) onSubmit() {
	email := v.emailEntry.Text
	password := v.passwordEntry.Text

	emailMsg := validate.Email(email)
	passwordMsg := validate.Password(password, v.signupMode)
	v.setFieldError(v.emailError, emailMsg)
	v.setFieldError(v.passwordError, passwordMsg)
	if emailMsg != "" || passwordMsg != "" {
		return
	}

	v.submitBtn.Disable()
	creds := api.Credentials{Email: email, Password: password}
	signup := v.signupMode

	go func() {
		defer fyne.Do(v.submitBtn.Enable)

		if signup {
			msg, err := v.ui.client.SignUp(context.Background(), creds)
			if err != nil {
				v.reportAuthError(err)
				return
			}
			v.ui.notes.Push(msg, notify.KindSuccess)
			fyne.Do(v.onToggleMode)
			return
		}

		token, err := v.ui.client.SignIn(context.Background(), creds)
		if err != nil {
			v.reportAuthError(err)
			return
		}
		v.ui.session.Begin(token, creds.Email)
		fyne.Do(v.ui.ShowDashboard)
	}()
}

func (v *loginView) reportAuthError(err error) {
	v.ui.log.Warn().Err(err).Msg("auth request failed")
	if apiErr, ok := api.AsBackendError(err); ok {
		v.ui.notes.Push(apiErr.UserMessage(), notify.KindError)
		return
	}
	v.ui.notes.Push("Could not reach the server. Please try again.", notify.KindError)
}

func (v *loginView) clearErrors() {
	v.setFieldError(v.emailError, "")
	v.setFieldError(v.passwordError, "")
}

func (v *loginView) setFieldError(label *widget.Label, msg string) {
	if msg == "" {
		label.SetText("")
		label.Hide()
		return
	}
	label.SetText(msg)
	label.Show()
}

func newFieldErrorLabel() *widget.Label {
	label := widget.NewLabel("")
	label.TextStyle = fyne.TextStyle{Italic: true}
	label.Importance = widget.DangerImportance
	label.Hide()
	return label
}
