package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goto/approvals/domain"
	httpUtil "github.com/goto/approvals/pkg/http"
	"github.com/goto/approvals/pkg/opentelemetry/otelhttpclient"
	"github.com/goto/approvals/plugins/notifiers/message"
)

type Config struct {
	URL        string            `mapstructure:"url" validate:"required,url"`
	Headers    map[string]string `mapstructure:"headers"`
	RetryCount int               `mapstructure:"retry_count" default:"3"`
}

// Payload is the JSON body posted for every notification
type Payload struct {
	User      string                 `json:"user"`
	Type      string                 `json:"type"`
	Text      string                 `json:"text"`
	Labels    map[string]string      `json:"labels,omitempty"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// Notifier posts notifications to an http endpoint, retrying gateway errors
type Notifier struct {
	url        string
	headers    map[string]string
	renderer   *message.Renderer
	httpClient *http.Client
}

func NewNotifier(config *Config, renderer *message.Renderer, httpClient *http.Client) (*Notifier, error) {
	if _, err := url.ParseRequestURI(config.URL); err != nil {
		return nil, fmt.Errorf("invalid webhook url %q: %w", config.URL, err)
	}
	client := &http.Client{}
	if httpClient != nil {
		*client = *httpClient
	}
	client.Transport = &httpUtil.RetryableTransport{
		Transport:  client.Transport,
		RetryCount: config.RetryCount,
	}

	return &Notifier{
		url:        config.URL,
		headers:    config.Headers,
		renderer:   renderer,
		httpClient: otelhttpclient.New("WebhookNotifier", client),
	}, nil
}

func (n *Notifier) Notify(ctx context.Context, items []domain.Notification) []error {
	errs := make([]error, 0)
	for _, item := range items {
		text, err := n.renderer.Render(item.Message)
		if err != nil {
			errs = append(errs, fmt.Errorf("error parsing message for user %q: %w", item.User, err))
			continue
		}

		payload := Payload{
			User:      item.User,
			Type:      item.Message.Type,
			Text:      text,
			Labels:    item.Labels,
			Variables: item.Message.Variables,
		}
		if err := n.post(ctx, payload); err != nil {
			errs = append(errs, fmt.Errorf("error sending webhook for user %q: %w", item.User, err))
		}
	}
	return errs
}

func (n *Notifier) post(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range n.headers {
		req.Header.Set(k, v)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
