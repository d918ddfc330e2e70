package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconClose     = "×"
	IconError     = "❌"
	IconLanguage  = "🌐"
	IconTrip      = "🚌"
	IconSeat      = "💺"
	IconRupee     = "₹"
	IconChat      = "💬"
	IconSearch    = "🔍"
	IconCalendar  = "📅"
	IconLocation  = "📍"
	IconWeather   = "🌤"
	IconHost      = "🧭"
	IconTraveler  = "🎒"
	IconAdmin     = "🛡"
	IconRefresh   = "↻"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	PriceLabelFormat   = "₹%.0f / person"
)

// Layout sizing (cards / lists)
const (
	CardMinWidth  float32 = 420
	CardMinHeight float32 = 96

	WindowDefaultWidth  float32 = 960
	WindowDefaultHeight float32 = 640

	DialogWidth  float32 = 460
	DialogHeight float32 = 420
)

// Toast notification sizing and behavior
const (
	ToastWidth  float32 = 320
	ToastHeight float32 = 80
	ToastMargin float32 = 20
)

// Debounce durations
const (
	// SearchDebounce is the quiet period after the last keystroke before a
	// place search fires.
	SearchDebounce = 1200 * time.Millisecond
)
