package otelhttpclient

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// New returns a copy of base whose outgoing requests are traced and measured under operation.
// base itself is not modified.
func New(operation string, base *http.Client) *http.Client {
	c := &http.Client{}
	if base != nil {
		*c = *base
	}
	c.Transport = NewHTTPTransport(c.Transport, operation)
	return c
}

// NewHTTPTransport wraps base with otelhttp. Spans are named "<operation> <method>".
func NewHTTPTransport(base http.RoundTripper, operation string) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return otelhttp.NewTransport(base,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return fmt.Sprintf("%s %s", operation, r.Method)
		}),
	)
}
