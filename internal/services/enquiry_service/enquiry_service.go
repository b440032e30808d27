package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"miyalefilms/internal/domain/models"
	"miyalefilms/internal/lib/logger/sl"
	"miyalefilms/pkg/portfolioapi"
	"miyalefilms/pkg/whatsapp"
)

const greeting = "Hello MiyaleFilms, I would like to enquire about photography/filming services."

const generalEnquiryLabel = "(General enquiry)"

// Error messages surfaced inline on the contact form.
const (
	msgNotConfigured    = "Enquiry API base URL is not configured. Set portfolio_api.base_url in the config file (or PORTFOLIO_API_BASE) and restart."
	msgNameRequired     = "Please enter your name."
	msgSubmissionFailed = "Failed to submit enquiry."
)

// EnquiryAPI is the slice of the content API client the submitter needs.
type EnquiryAPI interface {
	Configured() bool
	CreateEnquiry(ctx context.Context, payload portfolioapi.EnquiryPayload) error
}

// EnquiryService composes WhatsApp enquiry messages and submits enquiries to
// the backend API.
type EnquiryService struct {
	log *slog.Logger
	api EnquiryAPI
	wa  *whatsapp.Gateway
}

func NewEnquiryService(log *slog.Logger, api EnquiryAPI, wa *whatsapp.Gateway) *EnquiryService {
	return &EnquiryService{
		log: log,
		api: api,
		wa:  wa,
	}
}

// ComposeMessage renders the enquiry as a human-readable multi-line message.
// eventTitle is the resolved title of the selected event, empty when the
// selection is absent or does not resolve, in which case the general-enquiry
// label is used. Empty fields render as a dash. Pure function: identical
// input always yields identical output.
func ComposeMessage(form models.EnquiryForm, eventTitle string) string {
	selected := generalEnquiryLabel
	if eventTitle != "" {
		selected = eventTitle
	}

	lines := []string{
		greeting,
		"",
		"Selected event: " + selected,
		"Name: " + orDash(form.Name),
		"Phone: " + orDash(form.Phone),
		"Event type: " + orDash(string(form.EventType)),
		"Event date: " + orDash(form.EventDate),
		"Location: " + orDash(form.Location),
		"",
		"Message: " + orDash(form.Message),
	}

	return strings.Join(lines, "\n")
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// WhatsAppLink is the deep link carrying the composed message. Recomputed
// from the current form state on every render; never touches the network, so
// it stays available when submission is not.
func (s *EnquiryService) WhatsAppLink(form models.EnquiryForm, eventTitle string) string {
	return s.wa.MessageLink(ComposeMessage(form, eventTitle))
}

// ChatLink is the bare WhatsApp link for call-to-action buttons.
func (s *EnquiryService) ChatLink() string {
	return s.wa.ChatLink()
}

// ResolveEventTitle maps the form's event selection to a title using the
// loaded event list. Returns empty when nothing is selected or the id is
// unknown; the composer then falls back to the general-enquiry label.
func ResolveEventTitle(events []models.EventSummary, id int) string {
	if id == 0 {
		return ""
	}
	for _, e := range events {
		if e.ID == id {
			return e.Title
		}
	}
	return ""
}

// Submission is the outcome of a submit attempt.
type Submission struct {
	Status models.SubmissionStatus
	Err    string
}

// Submit validates the form and posts it to the enquiry API.
//
// Preconditions are checked locally, in order, before any network call: the
// API endpoint must be configured and the trimmed name must be non-empty.
// On success every form field is reset, including the event selection. Any
// failure, transport included, lands in the error status with the best
// available detail; the status never sticks in submitting.
func (s *EnquiryService) Submit(ctx context.Context, form *models.EnquiryForm) Submission {
	const op = "enquiry_service.Submit"

	log := s.log.With(
		slog.String("op", op),
		slog.String("event_type", string(form.EventType)),
	)

	if !s.api.Configured() {
		log.Warn("enquiry API not configured")
		return Submission{Status: models.StatusError, Err: msgNotConfigured}
	}

	if form.NameBlank() {
		log.Warn("name missing")
		return Submission{Status: models.StatusError, Err: msgNameRequired}
	}

	log.Info("submitting enquiry")

	if err := s.api.CreateEnquiry(ctx, buildPayload(*form)); err != nil {
		log.Error("enquiry submission failed", sl.Err(err))
		return Submission{Status: models.StatusError, Err: errorDetail(err)}
	}

	form.Reset()
	log.Info("enquiry submitted")

	return Submission{Status: models.StatusSuccess}
}

// buildPayload maps the form to the wire contract. The event selection and
// the date become JSON null when absent; the backend treats an empty date
// string and an absent date differently.
func buildPayload(form models.EnquiryForm) portfolioapi.EnquiryPayload {
	payload := portfolioapi.EnquiryPayload{
		Name:      form.Name,
		Phone:     form.Phone,
		Email:     form.Email,
		EventType: string(form.EventType),
		Location:  form.Location,
		Message:   form.Message,
	}

	if form.HasEvent() {
		event := form.Event
		payload.Event = &event
	}
	if form.EventDate != "" {
		date := form.EventDate
		payload.EventDate = &date
	}

	return payload
}

func errorDetail(err error) string {
	if errors.Is(err, portfolioapi.ErrNotConfigured) {
		return msgNotConfigured
	}

	var statusErr *portfolioapi.StatusError
	if errors.As(err, &statusErr) && statusErr.Detail != "" {
		return statusErr.Detail
	}
	if errors.As(err, &statusErr) {
		return msgSubmissionFailed
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return msgSubmissionFailed
}
