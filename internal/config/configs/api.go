package configs

import (
	"net/url"
	"time"
)

// API configures the connection to the Simbu backend. BaseURL is the root
// of the REST API; Timeout bounds every request issued by the client.
type API struct {
	// BaseURL is the backend root, without a trailing slash.
	BaseURL url.URL `env:"BASE_URL" envDefault:"http://127.0.0.1:9000"`
	// Timeout is applied to the underlying http.Client.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
