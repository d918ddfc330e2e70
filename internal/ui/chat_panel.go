package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ghumakkad/ghumakkad-desktop/internal/api"
	"github.com/ghumakkad/ghumakkad-desktop/internal/notify"
)

// chatPanel is the travel-assistant dialog. Each message is a single
// request/reply round trip; there is no streaming or history on the server.
type chatPanel struct {
	ui     *RootUI
	dialog dialog.Dialog

	messages *fyne.Container
	scroll   *container.Scroll
	input    *widget.Entry
	sendBtn  *widget.Button
}

func newChatPanel(ui *RootUI) *chatPanel {
	p := &chatPanel{ui: ui}
	p.createUI()
	return p
}

// Show displays the chat dialog.
func (p *chatPanel) Show() {
	p.dialog.Show()
	p.ui.window.Canvas().Focus(p.input)
}

func (p *chatPanel) createUI() {
	p.messages = container.NewVBox()
	p.scroll = container.NewVScroll(p.messages)

	p.input = widget.NewEntry()
	p.input.SetPlaceHolder(p.ui.T(KeyChatHint))
	p.input.OnSubmitted = func(string) { p.onSend() }

	p.sendBtn = widget.NewButton(p.ui.T(KeySend), p.onSend)
	p.sendBtn.Importance = widget.HighImportance

	inputRow := container.NewBorder(nil, nil, nil, p.sendBtn, p.input)
	body := container.NewBorder(nil, inputRow, nil, nil, p.scroll)

	p.dialog = dialog.NewCustom(IconChat+" "+p.ui.T(KeyChat), p.ui.T(KeyCancel), body, p.ui.window)
	p.dialog.Resize(fyne.NewSize(DialogWidth, DialogHeight))
}

func (p *chatPanel) onSend() {
	message := p.input.Text
	if message == "" {
		return
	}
	p.input.SetText("")
	p.appendLine("You: " + message)

	p.sendBtn.Disable()
	go func() {
		defer fyne.Do(p.sendBtn.Enable)

		reply, err := p.ui.client.SendChatMessage(context.Background(), message)
		if err != nil {
			if apiErr, ok := api.AsBackendError(err); ok {
				p.ui.notes.Push(apiErr.UserMessage(), notify.KindError)
			} else if !api.IsSessionError(err) {
				p.ui.notes.Push("The assistant is unavailable right now", notify.KindError)
			}
			return
		}
		fyne.Do(func() { p.appendLine("Assistant: " + reply) })
	}()
}

func (p *chatPanel) appendLine(text string) {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	p.messages.Add(label)
	p.scroll.ScrollToBottom()
}
