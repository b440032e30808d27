package dto

import "miyalefilms/internal/domain/models"

// ContactInfo is the business contact surface rendered on CTA blocks.
type ContactInfo struct {
	Phone string
	Email string
}

// EventCardView is one portfolio/home card.
type EventCardView struct {
	Event           models.EventSummary
	ShowPlayOverlay bool
	LocationText    string
}

// HomeView feeds the home page template.
type HomeView struct {
	Categories []models.Category
	Featured   []EventCardView
	ChatHref   string
}

// CategoryChipView is one filter chip on the portfolio page.
type CategoryChipView struct {
	Category models.Category
	Active   bool
}

// PortfolioView feeds the portfolio listing template.
type PortfolioView struct {
	Chips     []CategoryChipView
	AllActive bool
	Events    []EventCardView
}

// GalleryItemView is one image cell with its lightbox-opening URL.
type GalleryItemView struct {
	Item    models.MediaItem
	OpenURL string
}

// LightboxView is the enlarged single-image overlay. CloseURL drops the view
// parameter; it backs both the explicit close control and the backdrop.
type LightboxView struct {
	Item     models.MediaItem
	Title    string
	CloseURL string
}

// EventView feeds the event detail template.
type EventView struct {
	Event        *models.EventDetail
	Cover        models.Cover
	CoverCaption string
	Subtitle     string
	Videos       []models.MediaItem
	Images       []GalleryItemView
	HasMedia     bool
	Lightbox     *LightboxView
	ChatHref     string
}

// ContactView feeds the contact page template. Events backs the optional
// event dropdown and may be empty when its load failed or the API is not
// configured; the page still works either way.
type ContactView struct {
	APIConfigured bool
	Events        []models.EventSummary
	Form          models.EnquiryForm
	EventTypes    []models.EventType
	Status        models.SubmissionStatus
	ErrorMsg      string
	WhatsAppHref  string
	ChatHref      string
	Contact       ContactInfo
	FormToken     string
}
