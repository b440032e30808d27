package models

// Category is a named grouping for events ("Wedding", "Public Event", ...).
// Slug is the URL-safe unique key used for portfolio filtering.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Order int    `json:"order"`
}

// EventSummary is the list/card shape of an event as served by
// GET /api/events/. Date is null in the API when unset.
type EventSummary struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Date     *string  `json:"date"`
	Location string   `json:"location"`
	Featured bool     `json:"featured"`
	Category Category `json:"category"`
	Cover    Cover    `json:"cover"`
	HasVideo bool     `json:"has_video"`
}

// EventDetail is the full shape served by GET /api/events/{slug}/.
// Slug is the sole addressable key for detail lookups.
type EventDetail struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Date        *string     `json:"date"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	Featured    bool        `json:"featured"`
	Category    Category    `json:"category"`
	Media       []MediaItem `json:"media"`
}

func (e EventDetail) DateString() string {
	if e.Date == nil {
		return ""
	}
	return *e.Date
}
