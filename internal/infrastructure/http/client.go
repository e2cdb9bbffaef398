package http

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds outbound calls to the remote report API when the
// caller does not configure one.
const DefaultTimeout = 30 * time.Second

// ClientConfig holds configuration for outbound HTTP clients.
type ClientConfig struct {
	Timeout       time.Duration
	Transport     http.RoundTripper
	CheckRedirect func(req *http.Request, via []*http.Request) error
}

// NewClient builds an *http.Client with a hard timeout. A nil config or a
// zero timeout falls back to DefaultTimeout; an outbound client without a
// deadline can pin a report request forever.
func NewClient(config *ClientConfig) *http.Client {
	if config == nil {
		config = &ClientConfig{}
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{
		Timeout:       timeout,
		Transport:     config.Transport,
		CheckRedirect: config.CheckRedirect,
	}
}
