package dto

import (
	"strconv"

	"miyalefilms/internal/domain/models"
)

// EnquiryFormRequest is the POST /contact form binding. Name presence is
// checked by the submitter (its absence is an inline form error, not a bad
// request); the validator covers the fields with a fixed shape.
type EnquiryFormRequest struct {
	Event     string `form:"event"`
	Name      string `form:"name"`
	Phone     string `form:"phone"`
	Email     string `form:"email" validate:"omitempty,email"`
	EventType string `form:"event_type" validate:"required,oneof=wedding birthday public other"`
	EventDate string `form:"event_date" validate:"omitempty,datetime=2006-01-02"`
	Location  string `form:"location"`
	Message   string `form:"message"`
	FormToken string `form:"form_token"`
}

// ToDomain maps the request to form state. An empty or unparseable event
// value means a general enquiry.
func (r EnquiryFormRequest) ToDomain() models.EnquiryForm {
	form := models.EnquiryForm{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		EventType: models.EventType(r.EventType),
		EventDate: r.EventDate,
		Location:  r.Location,
		Message:   r.Message,
	}

	if id, err := strconv.Atoi(r.Event); err == nil && id > 0 {
		form.Event = id
	}

	return form
}
