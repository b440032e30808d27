package app

import (
	"log/slog"

	httpapp "miyalefilms/internal/app/http"
	"miyalefilms/internal/config"
	enquiry "miyalefilms/internal/services/enquiry_service"
	httprouters "miyalefilms/internal/transport/http"
	"miyalefilms/internal/transport/http/dto"
	"miyalefilms/pkg/portfolioapi"
	"miyalefilms/pkg/whatsapp"
)

type App struct {
	HTTPServer *httpapp.Server
}

func New(log *slog.Logger, cfg *config.Config) *App {
	api := portfolioapi.NewClient(cfg.PortfolioAPI.BaseURL, cfg.PortfolioAPI.Timeout, cfg.PortfolioAPI.CacheTTL)
	wa := whatsapp.NewGateway(cfg.WhatsApp.Number)

	enquiries := enquiry.NewEnquiryService(log, api, wa)

	contact := dto.ContactInfo{
		Phone: cfg.Contact.Phone,
		Email: cfg.Contact.Email,
	}

	routers := httprouters.NewRouter(log, api, enquiries, contact)

	server := httpapp.New(log, cfg.SessionSecret, cfg.HTTP.Host, cfg.HTTP.Port, routers)
	server.BuildRouters()

	return &App{HTTPServer: server}
}
