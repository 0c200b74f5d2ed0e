package schema

// TourplanConfiguration is the HostConnect connection block. All fields come
// from the environment; there is no built-in fallback pair, missing
// credentials fail closed before any supplier call.
type TourplanConfiguration struct {
	AgentID        string `envconfig:"TOURPLAN_AGENT_ID"`
	Password       string `envconfig:"TOURPLAN_AGENT_PASSWORD"`
	SupplierApiUrl string `envconfig:"TOURPLAN_API_URL"`

	// Optional basic auth in front of the supplier endpoint.
	BasicAuthUsername *string `envconfig:"TOURPLAN_BASIC_AUTH_USERNAME"`
	BasicAuthPassword *string `envconfig:"TOURPLAN_BASIC_AUTH_PASSWORD"`

	// Proxy egress. When enabled, requests go to ProxyUrl instead of
	// SupplierApiUrl and carry a short-lived signed bearer token.
	UseProxy           bool    `envconfig:"TOURPLAN_USE_PROXY"`
	ProxyUrl           *string `envconfig:"TOURPLAN_PROXY_URL"`
	ProxySigningSecret *string `envconfig:"TOURPLAN_PROXY_SIGNING_SECRET"`
}

func (c *TourplanConfiguration) IsConfigured() bool {
	if c.AgentID == "" || c.Password == "" {
		return false
	}

	if c.UseProxy {
		return c.ProxyUrl != nil && *c.ProxyUrl != ""
	}

	return c.SupplierApiUrl != ""
}

func (c *TourplanConfiguration) EndpointUrl() string {
	if c.UseProxy && c.ProxyUrl != nil {
		return *c.ProxyUrl
	}

	return c.SupplierApiUrl
}

// MailerConfiguration drives staff notifications for bookings that need
// manual follow-up. Optional; notifications are skipped when absent.
type MailerConfiguration struct {
	ApiUrl       string `envconfig:"MAILER_API_URL"`
	ApiKey       string `envconfig:"MAILER_API_KEY"`
	FromAddress  string `envconfig:"MAILER_FROM_ADDRESS"`
	StaffAddress string `envconfig:"MAILER_STAFF_ADDRESS"`
}

func (c *MailerConfiguration) IsConfigured() bool {
	return c.ApiUrl != "" && c.ApiKey != "" && c.StaffAddress != ""
}
