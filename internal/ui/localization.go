package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySignIn          = "sign_in"
	KeySignUp          = "sign_up"
	KeyEmail           = "email"
	KeyPassword        = "password"
	KeyNeedAccount     = "need_account"
	KeyHaveAccount     = "have_account"
	KeyLogout          = "logout"
	KeyOverview        = "overview"
	KeyMyTrips         = "my_trips"
	KeyMyBookings      = "my_bookings"
	KeyDiscover        = "discover"
	KeyCreateTrip      = "create_trip"
	KeyAdminPanel      = "admin_panel"
	KeyTitle           = "title"
	KeyFrom            = "from"
	KeyTo              = "to"
	KeyStartDate       = "start_date"
	KeyEndDate         = "end_date"
	KeySeats           = "seats"
	KeyPricePerPerson  = "price_per_person"
	KeyTransportMode   = "transport_mode"
	KeyPhoneNo         = "phone_no"
	KeySubmit          = "submit"
	KeyCancel          = "cancel"
	KeySave            = "save"
	KeyJoinTrip        = "join_trip"
	KeyCancelTrip      = "cancel_trip"
	KeyCancelBooking   = "cancel_booking"
	KeyAccept          = "accept"
	KeyReject          = "reject"
	KeySearchPlaces    = "search_places"
	KeySearchHint      = "search_hint"
	KeyChat            = "chat"
	KeyChatHint        = "chat_hint"
	KeySend            = "send"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyServerURL       = "server_url"
	KeyPollMinutes     = "poll_minutes"
	KeyTotalTrips      = "total_trips"
	KeyUpcomingTrips   = "upcoming_trips"
	KeyTotalBookings   = "total_bookings"
	KeyPendingRequests = "pending_requests"
	KeyTotalUsers      = "total_users"
	KeyActiveTrips     = "active_trips"
	KeyUsers           = "users"
	KeyTrips           = "trips"
	KeyBookings        = "bookings"
	KeyNoTrips         = "no_trips"
	KeyNoBookings      = "no_bookings"
	KeyNoResults       = "no_results"
	KeyLoading         = "loading"
	KeyConfirmPayment  = "confirm_payment"
	KeyPaymentPrompt   = "payment_prompt"
	KeySeatsPrompt     = "seats_prompt"
	KeyRefresh         = "refresh"
	KeySettingsSaved   = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetLanguage returns the current language code.
func (l *Localization) GetLanguage() string {
	return l.currentLanguage
}

// GetText returns the localized text for a key, falling back to English and
// then to the key itself.
func (l *Localization) GetText(key string) string {
	if text, ok := l.texts[l.currentLanguage][key]; ok {
		return text
	}
	if text, ok := l.texts["en"][key]; ok {
		return text
	}
	return key
}

// LanguageOptions returns the supported language codes with display names.
func (l *Localization) LanguageOptions() map[string]string {
	return map[string]string{
		"en": "English",
		"hi": "हिन्दी",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Ghumakkad",
		KeySignIn:          "Sign In",
		KeySignUp:          "Sign Up",
		KeyEmail:           "Email",
		KeyPassword:        "Password",
		KeyNeedAccount:     "New here? Create an account",
		KeyHaveAccount:     "Already registered? Sign in",
		KeyLogout:          "Logout",
		KeyOverview:        "Overview",
		KeyMyTrips:         "My Trips",
		KeyMyBookings:      "My Bookings",
		KeyDiscover:        "Discover",
		KeyCreateTrip:      "Create Trip",
		KeyAdminPanel:      "Admin",
		KeyTitle:           "Title",
		KeyFrom:            "From",
		KeyTo:              "To",
		KeyStartDate:       "Start date (YYYY-MM-DD)",
		KeyEndDate:         "End date (YYYY-MM-DD)",
		KeySeats:           "Seats",
		KeyPricePerPerson:  "Price per person",
		KeyTransportMode:   "Mode of transport",
		KeyPhoneNo:         "Phone number",
		KeySubmit:          "Submit",
		KeyCancel:          "Cancel",
		KeySave:            "Save",
		KeyJoinTrip:        "Join",
		KeyCancelTrip:      "Cancel Trip",
		KeyCancelBooking:   "Cancel Booking",
		KeyAccept:          "Accept",
		KeyReject:          "Reject",
		KeySearchPlaces:    "Search Places",
		KeySearchHint:      "Type a city to explore places...",
		KeyChat:            "Chat",
		KeyChatHint:        "Ask the travel assistant...",
		KeySend:            "Send",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyServerURL:       "Server URL",
		KeyPollMinutes:     "Refresh every (minutes)",
		KeyTotalTrips:      "Total Trips",
		KeyUpcomingTrips:   "Upcoming Trips",
		KeyTotalBookings:   "Total Bookings",
		KeyPendingRequests: "Pending Requests",
		KeyTotalUsers:      "Total Users",
		KeyActiveTrips:     "Active Trips",
		KeyUsers:           "Users",
		KeyTrips:           "Trips",
		KeyBookings:        "Bookings",
		KeyNoTrips:         "No trips yet. Create one or discover trips to join!",
		KeyNoBookings:      "No bookings yet. Discover a trip and hop on!",
		KeyNoResults:       "No places found",
		KeyLoading:         "Loading...",
		KeyConfirmPayment:  "Complete Payment",
		KeyPaymentPrompt:   "A checkout page was opened in your browser. Confirm once the payment is done.",
		KeySeatsPrompt:     "How many seats?",
		KeyRefresh:         "Refresh",
		KeySettingsSaved:   "Settings saved",
	}

	l.texts["hi"] = map[string]string{
		KeyAppTitle:        "घुमक्कड़",
		KeySignIn:          "साइन इन",
		KeySignUp:          "साइन अप",
		KeyEmail:           "ईमेल",
		KeyPassword:        "पासवर्ड",
		KeyNeedAccount:     "नए हैं? खाता बनाएं",
		KeyHaveAccount:     "पहले से खाता है? साइन इन करें",
		KeyLogout:          "लॉग आउट",
		KeyOverview:        "सारांश",
		KeyMyTrips:         "मेरी यात्राएं",
		KeyMyBookings:      "मेरी बुकिंग",
		KeyDiscover:        "खोजें",
		KeyCreateTrip:      "यात्रा बनाएं",
		KeyAdminPanel:      "एडमिन",
		KeyTitle:           "शीर्षक",
		KeyFrom:            "कहां से",
		KeyTo:              "कहां तक",
		KeyStartDate:       "प्रारंभ तिथि (YYYY-MM-DD)",
		KeyEndDate:         "समाप्ति तिथि (YYYY-MM-DD)",
		KeySeats:           "सीटें",
		KeyPricePerPerson:  "प्रति व्यक्ति मूल्य",
		KeyTransportMode:   "परिवहन का साधन",
		KeyPhoneNo:         "फ़ोन नंबर",
		KeySubmit:          "जमा करें",
		KeyCancel:          "रद्द करें",
		KeySave:            "सहेजें",
		KeyJoinTrip:        "शामिल हों",
		KeyCancelTrip:      "यात्रा रद्द करें",
		KeyCancelBooking:   "बुकिंग रद्द करें",
		KeyAccept:          "स्वीकार करें",
		KeyReject:          "अस्वीकार करें",
		KeySearchPlaces:    "स्थान खोजें",
		KeySearchHint:      "शहर का नाम लिखें...",
		KeyChat:            "चैट",
		KeyChatHint:        "यात्रा सहायक से पूछें...",
		KeySend:            "भेजें",
		KeySettings:        "सेटिंग्स",
		KeyLanguage:        "भाषा",
		KeyServerURL:       "सर्वर URL",
		KeyPollMinutes:     "हर (मिनट) में रीफ्रेश करें",
		KeyTotalTrips:      "कुल यात्राएं",
		KeyUpcomingTrips:   "आगामी यात्राएं",
		KeyTotalBookings:   "कुल बुकिंग",
		KeyPendingRequests: "लंबित अनुरोध",
		KeyTotalUsers:      "कुल उपयोगकर्ता",
		KeyActiveTrips:     "सक्रिय यात्राएं",
		KeyUsers:           "उपयोगकर्ता",
		KeyTrips:           "यात्राएं",
		KeyBookings:        "बुकिंग",
		KeyNoTrips:         "अभी कोई यात्रा नहीं। एक बनाएं या खोजें!",
		KeyNoBookings:      "अभी कोई बुकिंग नहीं। यात्रा खोजें और शामिल हों!",
		KeyNoResults:       "कोई स्थान नहीं मिला",
		KeyLoading:         "लोड हो रहा है...",
		KeyConfirmPayment:  "भुगतान पूरा करें",
		KeyPaymentPrompt:   "आपके ब्राउज़र में भुगतान पृष्ठ खुला है। भुगतान होने पर पुष्टि करें।",
		KeySeatsPrompt:     "कितनी सीटें?",
		KeyRefresh:         "रीफ्रेश",
		KeySettingsSaved:   "सेटिंग्स सहेजी गईं",
	}
}
