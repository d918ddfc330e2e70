package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the data service and renders the login flow,
// traveler dashboard, admin panel, notifications, and settings. All UI strings
// are localized via Localization.
