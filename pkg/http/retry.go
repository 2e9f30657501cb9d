package http

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryableTransport retries requests failing with a transport error or a 502, 503 or 504 response,
// waiting with exponential backoff in between. Waiting stops as soon as the request context is done.
type RetryableTransport struct {
	Transport  http.RoundTripper
	RetryCount int
	// Backoff returns the wait before the given retry, defaults to 2^retries seconds
	Backoff func(retries int) time.Duration
}

func (t *RetryableTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading body: %w", err)
		}
		req.Body.Close()
	}

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	wait := t.Backoff
	if wait == nil {
		wait = backoff
	}

	var resp *http.Response
	var err error
	for retries := 0; ; retries++ {
		if req.Body != nil {
			req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}
		resp, err = transport.RoundTrip(req)
		if !shouldRetry(err, resp) || retries >= t.RetryCount {
			return resp, err
		}

		// consume any response to reuse the connection.
		drainBody(resp)

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(wait(retries)):
		}
	}
}

func backoff(retries int) time.Duration {
	return time.Duration(math.Pow(2, float64(retries))) * time.Second
}

func shouldRetry(err error, resp *http.Response) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}

	return resp.StatusCode == http.StatusBadGateway ||
		resp.StatusCode == http.StatusServiceUnavailable ||
		resp.StatusCode == http.StatusGatewayTimeout
}

func drainBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}
