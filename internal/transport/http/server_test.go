package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"miyalefilms/internal/domain/models"
	"miyalefilms/internal/transport/http/dto"
	"miyalefilms/pkg/portfolioapi"

	enquiry "miyalefilms/internal/services/enquiry_service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContentAPI struct {
	configured bool
	categories []models.Category
	events     []models.EventSummary
	detail     *models.EventDetail
	err        error
}

func (s *stubContentAPI) Configured() bool { return s.configured }

func (s *stubContentAPI) Categories(context.Context) ([]models.Category, error) {
	return s.categories, s.err
}

func (s *stubContentAPI) Events(context.Context, portfolioapi.EventFilter) ([]models.EventSummary, error) {
	return s.events, s.err
}

func (s *stubContentAPI) EventBySlug(context.Context, string) (*models.EventDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

type stubEnquiries struct{}

func (stubEnquiries) WhatsAppLink(models.EnquiryForm, string) string { return "https://wa.me/1?text=x" }
func (stubEnquiries) ChatLink() string                               { return "https://wa.me/1" }
func (stubEnquiries) Submit(context.Context, *models.EnquiryForm) enquiry.Submission {
	return enquiry.Submission{Status: models.StatusSuccess}
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)
	e.Renderer = renderer

	return e
}

func render(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, target string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return rec, string(body)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHome_NotConfigured(t *testing.T) {
	e := newTestEcho(t)
	r := NewRouter(discardLogger(), &stubContentAPI{err: portfolioapi.ErrNotConfigured}, stubEnquiries{}, dto.ContactInfo{})

	rec, body := render(t, e, r.Home, "/")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, body, "Configuration required")
	assert.Contains(t, body, "PORTFOLIO_API_BASE")
}

func TestHome_UpstreamError(t *testing.T) {
	e := newTestEcho(t)
	api := &stubContentAPI{err: &portfolioapi.StatusError{StatusCode: http.StatusInternalServerError}}
	r := NewRouter(discardLogger(), api, stubEnquiries{}, dto.ContactInfo{})

	rec, body := render(t, e, r.Home, "/")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, body, "Try again")
}

func TestEvent_LightboxIgnoresUnknownID(t *testing.T) {
	e := newTestEcho(t)
	api := &stubContentAPI{
		configured: true,
		detail: &models.EventDetail{
			Title:    "Garden Party",
			Slug:     "garden-party",
			Category: models.Category{Name: "Birthdays"},
			Media: []models.MediaItem{
				{ID: 1, MediaType: models.MediaTypeImage, FileURL: "https://cdn.example/a.jpg", Order: 1},
			},
		},
	}
	r := NewRouter(discardLogger(), api, stubEnquiries{}, dto.ContactInfo{})

	req := httptest.NewRequest(http.MethodGet, "/events/garden-party?view=99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/events/:slug")
	c.SetParamNames("slug")
	c.SetParamValues("garden-party")

	require.NoError(t, r.Event(c))
	assert.NotContains(t, rec.Body.String(), `class="lightbox"`)
}

func TestEventCards_LocationFallback(t *testing.T) {
	cards := eventCards([]models.EventSummary{
		{ID: 1, Title: "A", Location: "Kisumu"},
		{ID: 2, Title: "B"},
	})

	require.Len(t, cards, 2)
	assert.Equal(t, "Kisumu", cards[0].LocationText)
	assert.Equal(t, "Location not set", cards[1].LocationText)
}

func TestEventCards_PlayOverlay(t *testing.T) {
	cards := eventCards([]models.EventSummary{
		{ID: 1, Cover: models.VideoCover("v.mp4", "")},
		{ID: 2, HasVideo: true},
		{ID: 3, Cover: models.ImageCover("i.jpg", "")},
	})

	assert.True(t, cards[0].ShowPlayOverlay)
	assert.True(t, cards[1].ShowPlayOverlay)
	assert.False(t, cards[2].ShowPlayOverlay)
}

func TestCoverCaption(t *testing.T) {
	assert.Equal(t, "First dance", coverCaption(models.ImageCover("x.jpg", "First dance"), "Weddings"))
	assert.Equal(t, "Weddings", coverCaption(models.ImageCover("x.jpg", ""), "Weddings"))
}

func TestSubtitle(t *testing.T) {
	assert.Equal(t, "Nairobi • 2025-06-14", subtitle("Nairobi", "2025-06-14"))
	assert.Equal(t, "Nairobi", subtitle("Nairobi", ""))
	assert.Equal(t, "2025-06-14", subtitle("", "2025-06-14"))
	assert.Equal(t, "", subtitle("", ""))
}
