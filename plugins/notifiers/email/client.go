package email

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/log"
	"github.com/goto/approvals/plugins/notifiers/message"
)

const defaultSubjectPrefix = "[Approvals]"

type Config struct {
	Host          string `mapstructure:"host" validate:"required"`
	Port          int    `mapstructure:"port" default:"587"`
	Username      string `mapstructure:"username"`
	Password      string `mapstructure:"password"`
	From          string `mapstructure:"from" validate:"required,email"`
	FromName      string `mapstructure:"from_name"`
	SubjectPrefix string `mapstructure:"subject_prefix"`
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Notifier delivers notifications as plain text emails over SMTP. The notification user is the recipient address.
type Notifier struct {
	sender        sender
	from          string
	subjectPrefix string
	renderer      *message.Renderer
	logger        log.Logger
}

func NewNotifier(config *Config, renderer *message.Renderer, logger log.Logger) (*Notifier, error) {
	if config.Host == "" || config.From == "" {
		return nil, fmt.Errorf("host and from are required")
	}

	port := config.Port
	if port == 0 {
		port = 587
	}
	dialer := gomail.NewDialer(config.Host, port, config.Username, config.Password)

	from := config.From
	if config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", config.FromName, config.From)
	}
	return newNotifier(dialer, from, config.SubjectPrefix, renderer, logger), nil
}

func newNotifier(s sender, from, subjectPrefix string, renderer *message.Renderer, logger log.Logger) *Notifier {
	if subjectPrefix == "" {
		subjectPrefix = defaultSubjectPrefix
	}
	return &Notifier{
		sender:        s,
		from:          from,
		subjectPrefix: subjectPrefix,
		renderer:      renderer,
		logger:        logger,
	}
}

func (n *Notifier) Notify(ctx context.Context, items []domain.Notification) []error {
	errs := make([]error, 0)
	for _, item := range items {
		n.logger.Debug(ctx, "sending email notification", "user", item.User, "type", item.Message.Type)

		text, err := n.renderer.Render(item.Message)
		if err != nil {
			errs = append(errs, fmt.Errorf("error parsing message for user %q: %w", item.User, err))
			continue
		}

		m := gomail.NewMessage()
		m.SetHeader("From", n.from)
		m.SetHeader("To", item.User)
		m.SetHeader("Subject", n.subject(item.Message.Type))
		m.SetBody("text/plain", text)
		if err := n.sender.DialAndSend(m); err != nil {
			errs = append(errs, fmt.Errorf("error sending email to %q: %w", item.User, err))
		}
	}
	return errs
}

// subject turns "approval_assigned" into "[Approvals] Approval assigned"
func (n *Notifier) subject(notificationType string) string {
	words := strings.ReplaceAll(notificationType, "_", " ")
	if words != "" {
		words = strings.ToUpper(words[:1]) + words[1:]
	}
	return strings.TrimSpace(n.subjectPrefix + " " + words)
}
