package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"miyalefilms/internal/domain/models"
	"miyalefilms/internal/lib/logger/sl"
	"miyalefilms/internal/metrics"
	"miyalefilms/internal/transport/http/dto"
	"miyalefilms/internal/transport/http/dto/response"
	"miyalefilms/pkg/portfolioapi"

	enquiry "miyalefilms/internal/services/enquiry_service"
	gallery "miyalefilms/internal/services/gallery_service"
	media "miyalefilms/internal/services/media_service"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// ContentAPI is the slice of the portfolio API client the pages read from.
type ContentAPI interface {
	Configured() bool
	Categories(ctx context.Context) ([]models.Category, error)
	Events(ctx context.Context, filter portfolioapi.EventFilter) ([]models.EventSummary, error)
	EventBySlug(ctx context.Context, slug string) (*models.EventDetail, error)
}

// EnquiryService composes WhatsApp links and submits enquiries.
type EnquiryService interface {
	WhatsAppLink(form models.EnquiryForm, eventTitle string) string
	ChatLink() string
	Submit(ctx context.Context, form *models.EnquiryForm) enquiry.Submission
}

type Routers struct {
	log       *slog.Logger
	api       ContentAPI
	enquiries EnquiryService
	contact   dto.ContactInfo
}

func NewRouter(log *slog.Logger, api ContentAPI, enquiries EnquiryService, contact dto.ContactInfo) *Routers {
	return &Routers{
		log:       log,
		api:       api,
		enquiries: enquiries,
		contact:   contact,
	}
}

// session keys
const (
	sessFormToken     = "form_token"
	sessEnquiryStatus = "enquiry_status"
)

func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Home renders the landing page: categories and featured events.
func (r *Routers) Home(c echo.Context) error {
	const op = "http.routers.Home"

	log := r.log.With(slog.String("op", op))
	ctx := c.Request().Context()

	categories, err := r.api.Categories(ctx)
	if err != nil {
		log.Error("failed to load categories", sl.Err(err))
		return r.renderLoadError(c, err, "Failed to load the home page.")
	}

	featured, err := r.api.Events(ctx, portfolioapi.EventFilter{Featured: true})
	if err != nil {
		log.Error("failed to load featured events", sl.Err(err))
		return r.renderLoadError(c, err, "Failed to load featured events.")
	}

	view := dto.HomeView{
		Categories: categories,
		Featured:   eventCards(featured),
		ChatHref:   r.enquiries.ChatLink(),
	}

	return c.Render(http.StatusOK, "home", view)
}

// Portfolio renders the filterable event listing. ?category=<slug> narrows
// the list to one category.
func (r *Routers) Portfolio(c echo.Context) error {
	const op = "http.routers.Portfolio"

	log := r.log.With(slog.String("op", op))
	ctx := c.Request().Context()
	active := c.QueryParam("category")

	categories, err := r.api.Categories(ctx)
	if err != nil {
		log.Error("failed to load categories", sl.Err(err))
		return r.renderLoadError(c, err, "Failed to load the portfolio.")
	}

	events, err := r.api.Events(ctx, portfolioapi.EventFilter{CategorySlug: active})
	if err != nil {
		log.Error("failed to load events", sl.Err(err))
		return r.renderLoadError(c, err, "Failed to load the portfolio.")
	}

	chips := make([]dto.CategoryChipView, 0, len(categories))
	for _, cat := range categories {
		chips = append(chips, dto.CategoryChipView{Category: cat, Active: cat.Slug == active})
	}

	view := dto.PortfolioView{
		Chips:     chips,
		AllActive: active == "",
		Events:    eventCards(events),
	}

	return c.Render(http.StatusOK, "portfolio", view)
}

// Event renders the detail page with the media gallery. ?view=<mediaID>
// opens the lightbox on that image; the parameter is ignored for videos and
// unknown ids.
func (r *Routers) Event(c echo.Context) error {
	const op = "http.routers.Event"

	log := r.log.With(
		slog.String("op", op),
		slog.String("slug", c.Param("slug")),
	)
	ctx := c.Request().Context()

	event, err := r.api.EventBySlug(ctx, c.Param("slug"))
	if err != nil {
		log.Error("failed to load event", sl.Err(err))
		return r.renderLoadError(c, err, "Failed to load event.")
	}

	presenter := gallery.NewPresenter(event.Media)
	if raw := c.QueryParam("view"); raw != "" {
		if id, convErr := strconv.Atoi(raw); convErr == nil {
			presenter.Open(id)
		}
	}

	pagePath := c.Request().URL.Path

	images := make([]dto.GalleryItemView, 0, len(presenter.Images()))
	for _, item := range presenter.Images() {
		images = append(images, dto.GalleryItemView{
			Item:    item,
			OpenURL: pagePath + "?view=" + strconv.Itoa(item.ID),
		})
	}

	view := dto.EventView{
		Event:        event,
		Cover:        presenter.Cover(),
		CoverCaption: coverCaption(presenter.Cover(), event.Category.Name),
		Subtitle:     subtitle(event.Location, event.DateString()),
		Videos:       presenter.Videos(),
		Images:       images,
		HasMedia:     !presenter.Empty(),
		ChatHref:     r.enquiries.ChatLink(),
	}

	if item, open := presenter.Lightbox(); open {
		title := item.Caption
		if title == "" {
			title = event.Title
		}
		view.Lightbox = &dto.LightboxView{
			Item:     item,
			Title:    title,
			CloseURL: pagePath,
		}
	}

	return c.Render(http.StatusOK, "event", view)
}

// ContactForm renders the enquiry form. The event dropdown load is optional:
// a failure degrades to an empty list and never fails the page.
func (r *Routers) ContactForm(c echo.Context) error {
	const op = "http.routers.ContactForm"

	log := r.log.With(slog.String("op", op))

	form := models.NewEnquiryForm()
	status := models.StatusIdle

	sess, _ := session.Get("session", c)
	if v, ok := sess.Values[sessEnquiryStatus].(string); ok && v == string(models.StatusSuccess) {
		status = models.StatusSuccess
		delete(sess.Values, sessEnquiryStatus)
	}

	token := issueFormToken(sess)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		log.Warn("failed to save session", sl.Err(err))
	}

	events := r.loadContactEvents(c)

	return c.Render(http.StatusOK, "contact", r.contactView(events, form, status, "", token))
}

// ContactSubmit handles the enquiry POST. Success follows
// post/redirect/get with a session flash; every failure re-renders the form
// inline with the entered values and the WhatsApp fallback alongside.
func (r *Routers) ContactSubmit(c echo.Context) error {
	const op = "http.routers.ContactSubmit"

	log := r.log.With(slog.String("op", op))

	var req dto.EnquiryFormRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind enquiry form", sl.Err(err))
		return c.Redirect(http.StatusSeeOther, "/contact")
	}

	sess, _ := session.Get("session", c)

	// One-shot token: a stale or missing token means a replayed or duplicate
	// submission; drop it without a second upstream POST.
	stored, ok := sess.Values[sessFormToken].(string)
	if !ok || stored == "" || stored != req.FormToken {
		log.Warn("stale enquiry form token, ignoring submission")
		return c.Redirect(http.StatusSeeOther, "/contact")
	}
	delete(sess.Values, sessFormToken)

	form := req.ToDomain()

	if err := c.Validate(req); err != nil {
		log.Warn("enquiry form validation failed", sl.Err(err))
		return r.renderContactError(c, sess, form, "Please check the form fields and try again.")
	}

	sub := r.enquiries.Submit(c.Request().Context(), &form)
	metrics.EnquiriesSubmittedTotal.WithLabelValues(string(sub.Status)).Inc()

	if sub.Status == models.StatusSuccess {
		sess.Values[sessEnquiryStatus] = string(models.StatusSuccess)
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Warn("failed to save session", sl.Err(err))
		}
		return c.Redirect(http.StatusSeeOther, "/contact")
	}

	return r.renderContactError(c, sess, form, sub.Err)
}

func (r *Routers) renderContactError(c echo.Context, sess *sessions.Session, form models.EnquiryForm, errMsg string) error {
	token := issueFormToken(sess)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		r.log.Warn("failed to save session", sl.Err(err))
	}

	events := r.loadContactEvents(c)

	return c.Render(http.StatusOK, "contact", r.contactView(events, form, models.StatusError, errMsg, token))
}

func (r *Routers) contactView(events []models.EventSummary, form models.EnquiryForm, status models.SubmissionStatus, errMsg, token string) dto.ContactView {
	title := enquiry.ResolveEventTitle(events, form.Event)

	return dto.ContactView{
		APIConfigured: r.api.Configured(),
		Events:        events,
		Form:          form,
		EventTypes:    models.EventTypes(),
		Status:        status,
		ErrorMsg:      errMsg,
		WhatsAppHref:  r.enquiries.WhatsAppLink(form, title),
		ChatHref:      r.enquiries.ChatLink(),
		Contact:       r.contact,
		FormToken:     token,
	}
}

// loadContactEvents feeds the optional event dropdown. Failures are absorbed
// here: the contact page must keep working without content data.
func (r *Routers) loadContactEvents(c echo.Context) []models.EventSummary {
	const op = "http.routers.loadContactEvents"

	events, err := r.api.Events(c.Request().Context(), portfolioapi.EventFilter{})
	if err != nil {
		if !errors.Is(err, portfolioapi.ErrNotConfigured) {
			r.log.With(slog.String("op", op)).Warn("event dropdown unavailable", sl.Err(err))
		}
		return nil
	}

	return events
}

// issueFormToken stores a fresh one-shot token in the session for the next
// submission. Not saved here; callers save the session once per response.
func issueFormToken(sess *sessions.Session) string {
	token := uuid.NewString()
	sess.Values[sessFormToken] = token
	return token
}

func eventCards(events []models.EventSummary) []dto.EventCardView {
	cards := make([]dto.EventCardView, 0, len(events))
	for _, e := range events {
		location := e.Location
		if location == "" {
			location = "Location not set"
		}
		cards = append(cards, dto.EventCardView{
			Event:           e,
			ShowPlayOverlay: media.HasPlayOverlay(e),
			LocationText:    location,
		})
	}
	return cards
}

func coverCaption(cover models.Cover, categoryName string) string {
	if cover.Caption != "" {
		return cover.Caption
	}
	return categoryName
}

func subtitle(location, date string) string {
	parts := make([]string, 0, 2)
	if location != "" {
		parts = append(parts, location)
	}
	if date != "" {
		parts = append(parts, date)
	}
	return strings.Join(parts, " • ")
}

func (r *Routers) renderLoadError(c echo.Context, err error, detail string) error {
	if errors.Is(err, portfolioapi.ErrNotConfigured) {
		return c.Render(http.StatusServiceUnavailable, "error", response.ConfigurationError())
	}

	status := http.StatusBadGateway
	var statusErr *portfolioapi.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		status = http.StatusNotFound
		detail = "This event does not exist or is no longer available."
	}

	return c.Render(status, "error", response.LoadError(detail, c.Request().RequestURI))
}
