package sis

// Config holds the SIS API connection settings.
type Config struct {
	// BaseURL is the root of the SIS REST API, e.g. "https://sis.example.org/api/v1".
	BaseURL string `mapstructure:"base_url" default:""`
	// Token is a static bearer token. Used when no client credentials are set.
	Token string `mapstructure:"token" default:""`
	// TokenURL is the OAuth token endpoint for the client-credentials flow.
	TokenURL string `mapstructure:"token_url" default:""`
	// ClientID identifies this integration to the OAuth token endpoint.
	ClientID string `mapstructure:"client_id" default:""`
	// ClientSecret authenticates the client-credentials flow.
	ClientSecret string `mapstructure:"client_secret" default:""`
	// PageSize is the number of rows requested per query page.
	PageSize int `mapstructure:"page_size" default:"500"`
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// InitialDelaySeconds seeds the exponential backoff between retries.
	InitialDelaySeconds int `mapstructure:"initial_delay_seconds" default:"5"`
	// RequestTimeoutSeconds bounds a single HTTP attempt.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" default:"60"`
	// RequestsPerSecond paces outgoing requests. Zero disables pacing.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"5"`
}
