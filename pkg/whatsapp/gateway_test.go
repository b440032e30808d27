package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_ChatLink(t *testing.T) {
	g := NewGateway("254724269201")
	assert.Equal(t, "https://wa.me/254724269201", g.ChatLink())
}

func TestGateway_StripsLeadingPlus(t *testing.T) {
	g := NewGateway("+254724269201")
	assert.Equal(t, "254724269201", g.Number())
}

func TestGateway_MessageLink(t *testing.T) {
	g := NewGateway("254724269201")

	link := g.MessageLink("Hello MiyaleFilms\nName: Jane")

	require.True(t, strings.HasPrefix(link, "https://wa.me/254724269201?text="))
	assert.NotContains(t, link, "+", "spaces must be percent-encoded, not plus-encoded")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hello MiyaleFilms\nName: Jane", parsed.Query().Get("text"))
}
