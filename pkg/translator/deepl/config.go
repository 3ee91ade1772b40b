package deepl

import "time"

// Config holds DeepL API client configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// API credential. An empty key disables the client: every Translate
	// call reports translator.ErrUnavailable.
	APIKey string `env:"DEEPL_API_KEY"`

	// Per-request timeout for translation calls.
	Timeout time.Duration `env:"DEEPL_TIMEOUT" envDefault:"10s"`

	// Endpoint overrides the API base URL. When empty, the endpoint is
	// derived from the key: free-tier keys (":fx" suffix) use the free
	// API host, everything else the paid one.
	Endpoint string `env:"DEEPL_ENDPOINT"`
}
