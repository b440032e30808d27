package suite

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	httpapp "miyalefilms/internal/app/http"
	enquiry "miyalefilms/internal/services/enquiry_service"
	httprouters "miyalefilms/internal/transport/http"
	"miyalefilms/internal/transport/http/dto"
	"miyalefilms/pkg/portfolioapi"
	"miyalefilms/pkg/whatsapp"
)

// Suite runs the whole site in-process against a fake content backend: real
// API client, real services, real routers and templates. Backend is the
// httptest server playing the content API; Site serves the rendered pages.
type Suite struct {
	*testing.T
	Backend *httptest.Server
	Site    *httptest.Server
	Client  *http.Client
}

// New wires the site against the given content API handler.
func New(t *testing.T, backend http.Handler) *Suite {
	t.Helper()

	backendSrv := httptest.NewServer(backend)
	t.Cleanup(backendSrv.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	api := portfolioapi.NewClient(backendSrv.URL, 5*time.Second, 0)
	wa := whatsapp.NewGateway("254724269201")
	enquiries := enquiry.NewEnquiryService(log, api, wa)

	contact := dto.ContactInfo{Phone: "+254724269201", Email: "davidomuga@gmail.com"}
	routers := httprouters.NewRouter(log, api, enquiries, contact)

	server := httpapp.New(log, "test-secret", "localhost", "0", routers)
	server.BuildRouters()

	// The session cookie is issued with the Secure flag, so the site must be
	// served over TLS for the client jar to send it back.
	siteSrv := httptest.NewTLSServer(server.Handler())
	t.Cleanup(siteSrv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}

	client := siteSrv.Client()
	client.Jar = jar

	return &Suite{
		T:       t,
		Backend: backendSrv,
		Site:    siteSrv,
		Client:  client,
	}
}

// Get fetches a site path and returns the response with its body read out.
func (s *Suite) Get(path string) (*http.Response, string) {
	s.Helper()

	resp, err := s.Client.Get(s.Site.URL + path)
	if err != nil {
		s.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.Fatalf("read body of %s: %v", path, err)
	}

	return resp, string(body)
}
