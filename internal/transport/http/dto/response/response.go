package response

// ErrorView is the dedicated page-level failure view: load errors get a
// retry link back to the same URL, configuration errors get setup help.
type ErrorView struct {
	Title       string
	Detail      string
	RetryURL    string
	ConfigError bool
}

func LoadError(detail, retryURL string) ErrorView {
	if detail == "" {
		detail = "An unexpected error occurred while loading the page."
	}
	return ErrorView{
		Title:    "Page unavailable",
		Detail:   detail,
		RetryURL: retryURL,
	}
}

func ConfigurationError() ErrorView {
	return ErrorView{
		Title: "Configuration required",
		Detail: "The content API base URL is not configured. " +
			"Set portfolio_api.base_url in the config file or the PORTFOLIO_API_BASE environment variable and restart the server.",
		ConfigError: true,
	}
}
