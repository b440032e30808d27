package portfolioapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"miyalefilms/internal/domain/models"

	gocache "github.com/patrickmn/go-cache"
)

// ErrNotConfigured is returned by every call when the client has no base URL.
// Pages that need content data surface it as a configuration error; the
// contact page keeps working through the WhatsApp path.
var ErrNotConfigured = errors.New("portfolio API base URL is not configured")

// StatusError is a non-2xx response from the content API. Detail carries the
// response body text when the API sent one.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("portfolio API responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("portfolio API responded with status %d: %s", e.StatusCode, e.Detail)
}

// Client talks to the content/enquiry API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
	cacheTTL   time.Duration
}

// NewClient creates a content API client. baseURL may be empty; calls then
// fail with ErrNotConfigured instead of dialing. A cacheTTL of zero disables
// response caching so every render re-fetches, matching the API's
// fetched-per-request contract.
func NewClient(baseURL string, timeout, cacheTTL time.Duration) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		cacheTTL:   cacheTTL,
	}

	if cacheTTL > 0 {
		c.cache = gocache.New(cacheTTL, 2*cacheTTL)
	}

	return c
}

func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Categories fetches all categories in display order.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "portfolioapi.Categories"

	var categories []models.Category
	if err := c.getJSON(ctx, "/api/categories/", nil, &categories); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

// EventFilter narrows the event listing. The zero value lists everything.
type EventFilter struct {
	CategorySlug string
	Featured     bool
}

// Events fetches event summaries, optionally filtered by category slug or
// down to featured events only.
func (c *Client) Events(ctx context.Context, filter EventFilter) ([]models.EventSummary, error) {
	const op = "portfolioapi.Events"

	query := url.Values{}
	if filter.CategorySlug != "" {
		query.Set("category", filter.CategorySlug)
	}
	if filter.Featured {
		query.Set("featured", "true")
	}

	var events []models.EventSummary
	if err := c.getJSON(ctx, "/api/events/", query, &events); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// EventBySlug fetches the full event detail. The slug is the sole
// addressable key.
func (c *Client) EventBySlug(ctx context.Context, slug string) (*models.EventDetail, error) {
	const op = "portfolioapi.EventBySlug"

	var event models.EventDetail
	path := "/api/events/" + url.PathEscape(slug) + "/"
	if err := c.getJSON(ctx, path, nil, &event); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &event, nil
}

// EnquiryPayload is the wire shape of POST /api/enquiries/. Event and
// EventDate serialise as JSON null when absent; the backend treats an empty
// date string and an absent date differently, so the pointer distinction is
// deliberate.
type EnquiryPayload struct {
	Event     *int    `json:"event"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	EventType string  `json:"event_type"`
	EventDate *string `json:"event_date"`
	Location  string  `json:"location"`
	Message   string  `json:"message"`
}

// CreateEnquiry submits an enquiry to the API.
func (c *Client) CreateEnquiry(ctx context.Context, payload EnquiryPayload) error {
	const op = "portfolioapi.CreateEnquiry"

	if !c.Configured() {
		return fmt.Errorf("%s: %w", op, ErrNotConfigured)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/enquiries/", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: %w", op, statusError(resp))
	}

	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(u); ok {
			return json.Unmarshal(cached.([]byte), out)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if c.cache != nil {
		c.cache.Set(u, raw, gocache.DefaultExpiration)
	}

	return json.Unmarshal(raw, out)
}

func statusError(resp *http.Response) *StatusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	return &StatusError{
		StatusCode: resp.StatusCode,
		Detail:     strings.TrimSpace(string(body)),
	}
}
