package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/mcuadros/go-defaults"
	"github.com/mitchellh/mapstructure"

	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/log"
	"github.com/goto/approvals/plugins/notifiers"
)

type Type string

const (
	TypeEscalateOverdueApprovals Type = "escalate_overdue_approvals"
	TypePendingApprovalsReminder Type = "pending_approvals_reminder"
)

// Config holds the job specific settings as read from the configuration file
type Config map[string]interface{}

// Decode fills v with the config values on top of v's default tags
func (c Config) Decode(v interface{}) error {
	defaults.SetDefaults(v)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
		Result: v,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(map[string]interface{}(c))
}

type Job struct {
	Type     Type          `mapstructure:"type"`
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
	Config   Config        `mapstructure:"config"`
}

type approvalService interface {
	ListPending(context.Context) ([]*domain.Instance, error)
	Escalate(ctx context.Context, id string, levelOrder int) (*domain.Instance, bool, error)
}

type handler struct {
	logger          log.Logger
	approvalService approvalService
	notifier        notifiers.Client

	TimeNow func() time.Time
}

func NewHandler(logger log.Logger, approvalService approvalService, notifier notifiers.Client) *handler {
	return &handler{
		logger:          logger,
		approvalService: approvalService,
		notifier:        notifier,
		TimeNow:         time.Now,
	}
}

// Handlers maps every job type to the handler method running one tick of it
func (h *handler) Handlers() map[Type]func(context.Context, Config) error {
	return map[Type]func(context.Context, Config) error{
		TypeEscalateOverdueApprovals: h.EscalateOverdueApprovals,
		TypePendingApprovalsReminder: h.PendingApprovalsReminder,
	}
}

func (h *handler) Run(ctx context.Context, t Type, cfg Config) error {
	fn, ok := h.Handlers()[t]
	if !ok {
		return fmt.Errorf("invalid job type %q", t)
	}
	return fn(ctx, cfg)
}
