package models

import "strings"

type EventType string

const (
	EventTypeWedding  EventType = "wedding"
	EventTypeBirthday EventType = "birthday"
	EventTypePublic   EventType = "public"
	EventTypeOther    EventType = "other"
)

// EventTypes lists the selectable types in display order.
func EventTypes() []EventType {
	return []EventType{EventTypeWedding, EventTypeBirthday, EventTypePublic, EventTypeOther}
}

func (t EventType) Valid() bool {
	switch t {
	case EventTypeWedding, EventTypeBirthday, EventTypePublic, EventTypeOther:
		return true
	}
	return false
}

// Label is the human-readable form shown in the form dropdown.
func (t EventType) Label() string {
	switch t {
	case EventTypeWedding:
		return "Wedding"
	case EventTypeBirthday:
		return "Birthday/Celebration"
	case EventTypePublic:
		return "Political/Public Event"
	default:
		return "Other"
	}
}

// EnquiryForm is the transient state of the contact form. Event is the id of
// the optionally selected event, 0 meaning a general enquiry. EventDate is a
// calendar date in YYYY-MM-DD form, empty when unset.
type EnquiryForm struct {
	Event     int
	Name      string
	Phone     string
	Email     string
	EventType EventType
	EventDate string
	Location  string
	Message   string
}

// NewEnquiryForm returns the empty form state a freshly opened contact page
// starts from.
func NewEnquiryForm() EnquiryForm {
	return EnquiryForm{EventType: EventTypeWedding}
}

func (f EnquiryForm) HasEvent() bool {
	return f.Event != 0
}

// NameBlank reports whether the required name field is empty after trimming.
func (f EnquiryForm) NameBlank() bool {
	return strings.TrimSpace(f.Name) == ""
}

// Reset clears every field back to its default, including the event
// selection.
func (f *EnquiryForm) Reset() {
	*f = NewEnquiryForm()
}

// SubmissionStatus tracks the enquiry submit flow:
// idle -> submitting -> success | error, with error -> submitting on retry.
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSuccess    SubmissionStatus = "success"
	StatusError      SubmissionStatus = "error"
)
