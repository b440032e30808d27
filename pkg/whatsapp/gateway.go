package whatsapp

import (
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

// Gateway builds wa.me deep links for a fixed destination number. The number
// comes from configuration and is never user-editable. Links are computed
// locally and need no network, which keeps the WhatsApp path available when
// the enquiry API is down or unconfigured.
type Gateway struct {
	number string
}

// NewGateway creates a gateway for the given destination number in
// international format without the leading plus, e.g. "254724269201".
func NewGateway(number string) *Gateway {
	return &Gateway{number: strings.TrimPrefix(number, "+")}
}

func (g *Gateway) Number() string {
	return g.number
}

// ChatLink is the bare deep link used by call-to-action buttons with no
// pre-filled text.
func (g *Gateway) ChatLink() string {
	return baseURL + g.number
}

// MessageLink is the deep link that opens a chat with text pre-filled. The
// text is percent-encoded for use as a query parameter.
func (g *Gateway) MessageLink(text string) string {
	return baseURL + g.number + "?text=" + encode(text)
}

// encode matches encodeURIComponent semantics: spaces become %20, newlines
// %0A, so the decoded message keeps its line structure.
func encode(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
