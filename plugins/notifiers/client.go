package notifiers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/log"
	"github.com/goto/approvals/pkg/slices"
	"github.com/goto/approvals/plugins/notifiers/email"
	"github.com/goto/approvals/plugins/notifiers/lark"
	"github.com/goto/approvals/plugins/notifiers/message"
	"github.com/goto/approvals/plugins/notifiers/webhook"
)

var (
	ErrUnknownChannel       = errors.New("unknown notification channel")
	ErrChannelNotConfigured = errors.New("notification channel is not configured")
)

type Client interface {
	Notify(context.Context, []domain.Notification) []error
}

type Config struct {
	// DefaultChannels receive notifications that don't name their own channels
	DefaultChannels []string `mapstructure:"default_channels"`
	// RetryCount is how many times a failed email or lark message is resent
	RetryCount int `mapstructure:"retry_count" default:"2"`

	Email   *email.Config   `mapstructure:"email"`
	Lark    *lark.Config    `mapstructure:"lark"`
	Webhook *webhook.Config `mapstructure:"webhook"`

	// custom messages
	Messages domain.NotificationMessages `mapstructure:"messages"`
}

// NewClient returns a client delivering each notification to its channels, or to the default channels when it names none
func NewClient(config *Config, logger log.Logger) (Client, error) {
	renderer := message.NewRenderer(config.Messages)

	channels := map[string]Client{
		domain.NotificationChannelLog: &logNotifier{renderer: renderer, logger: logger},
	}
	if config.Email != nil {
		n, err := email.NewNotifier(config.Email, renderer, logger)
		if err != nil {
			return nil, fmt.Errorf("initializing email notifier: %w", err)
		}
		channels[domain.NotificationChannelEmail] = withRetry(n, config.RetryCount)
	}
	if config.Lark != nil {
		n, err := lark.NewNotifier(config.Lark, renderer, logger)
		if err != nil {
			return nil, fmt.Errorf("initializing lark notifier: %w", err)
		}
		channels[domain.NotificationChannelLark] = withRetry(n, config.RetryCount)
	}
	if config.Webhook != nil {
		httpClient := &http.Client{Timeout: 10 * time.Second}
		n, err := webhook.NewNotifier(config.Webhook, renderer, httpClient)
		if err != nil {
			return nil, fmt.Errorf("initializing webhook notifier: %w", err)
		}
		channels[domain.NotificationChannelWebhook] = n
	}

	defaults := config.DefaultChannels
	if len(defaults) == 0 {
		defaults = []string{domain.NotificationChannelLog}
	}
	for _, c := range defaults {
		if _, ok := channels[c]; !ok {
			return nil, fmt.Errorf("%w: default channel %q", ErrChannelNotConfigured, c)
		}
	}

	return &router{channels: channels, defaults: defaults}, nil
}

type router struct {
	channels map[string]Client
	defaults []string
}

func (r *router) Notify(ctx context.Context, items []domain.Notification) []error {
	errs := make([]error, 0)

	byChannel := map[string][]domain.Notification{}
	var order []string
	for _, item := range items {
		channels := item.Channels
		if len(channels) == 0 {
			channels = r.defaults
		}
		for _, c := range slices.GenericsUniqueSliceValues(channels) {
			if !domain.IsNotificationChannel(c) {
				errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownChannel, c))
				continue
			}
			if _, ok := r.channels[c]; !ok {
				errs = append(errs, fmt.Errorf("%w: %q for user %q", ErrChannelNotConfigured, c, item.User))
				continue
			}
			if _, ok := byChannel[c]; !ok {
				order = append(order, c)
			}
			byChannel[c] = append(byChannel[c], item)
		}
	}

	for _, c := range order {
		errs = append(errs, r.channels[c].Notify(ctx, byChannel[c])...)
	}

	return errs
}
