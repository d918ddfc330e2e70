package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ghumakkad/ghumakkad-desktop/internal/sched"
)

// CarouselAdvance is how often the landing carousel moves on its own.
const CarouselAdvance = 4 * time.Second

// carouselSlides are the destinations shown on the landing screen.
var carouselSlides = []string{
	IconLocation + " Leh Ladakh: ride the high passes",
	IconLocation + " Goa: beaches and late sunsets",
	IconLocation + " Jaipur: the pink city",
	IconLocation + " Rann of Kutch: white desert nights",
	IconLocation + " Munnar: tea gardens in the clouds",
}

// homeView is the signed-out landing screen: a destination carousel and the
// entry point to signin.
type homeView struct {
	ui      *RootUI
	content fyne.CanvasObject

	slideLabel *widget.Label
	slideIndex int
	carousel   *sched.Interval
}

func newHomeView(ui *RootUI) *homeView {
	v := &homeView{
		ui:       ui,
		carousel: sched.NewInterval(),
	}
	v.createUI()

	v.carousel.Start(func() {
		fyne.Do(v.advance)
	}, CarouselAdvance)
	return v
}

// stop halts the carousel when the view is left.
func (v *homeView) stop() {
	v.carousel.Stop()
}

func (v *homeView) createUI() {
	title := widget.NewLabel(v.ui.T(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	tagline := widget.NewLabel("Plan together. Travel together.")
	tagline.Alignment = fyne.TextAlignCenter

	v.slideLabel = widget.NewLabel(carouselSlides[0])
	v.slideLabel.Alignment = fyne.TextAlignCenter

	nextBtn := widget.NewButton(">", v.advance)
	nextBtn.Importance = widget.LowImportance
	carouselRow := container.NewBorder(nil, nil, nil, nextBtn, v.slideLabel)

	signInBtn := widget.NewButton(v.ui.T(KeySignIn), v.ui.ShowLogin)
	signInBtn.Importance = widget.HighImportance

	v.content = container.NewCenter(container.NewVBox(
		title,
		tagline,
		widget.NewSeparator(),
		carouselRow,
		signInBtn,
	))
}

// advance moves the carousel one slide forward. Runs on the UI thread.
func (v *homeView) advance() {
	v.slideIndex = (v.slideIndex + 1) % len(carouselSlides)
	v.slideLabel.SetText(carouselSlides[v.slideIndex])
}
