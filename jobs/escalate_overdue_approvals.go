package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/goto/approvals/domain"
)

type EscalateOverdueApprovalsConfig struct {
	Concurrency int  `mapstructure:"concurrency" default:"10"`
	DryRun      bool `mapstructure:"dry_run"`
}

// EscalateOverdueApprovals hands every level that waited longer than its template's escalation duration
// over to the escalation role. A failing instance never stops the others.
func (h *handler) EscalateOverdueApprovals(ctx context.Context, c Config) error {
	var cfg EscalateOverdueApprovalsConfig
	if err := c.Decode(&cfg); err != nil {
		return fmt.Errorf("invalid config for %s job: %w", TypeEscalateOverdueApprovals, err)
	}

	pending, err := h.approvalService.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("listing pending instances: %w", err)
	}

	now := h.TimeNow()
	var due []*domain.Instance
	for _, i := range pending {
		isDue, err := i.EscalationDue(now)
		if err != nil {
			h.logger.Error(ctx, "invalid escalation rule", "instance_id", i.ID, "error", err)
			continue
		}
		if isDue {
			due = append(due, i)
		}
	}
	h.logger.Info(ctx, "overdue approvals", "pending", len(pending), "due", len(due))

	if cfg.DryRun || len(due) == 0 {
		return nil
	}

	var escalated, failed int64
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}
	for _, i := range due {
		i := i
		level := i.CurrentLevel()
		g.Go(func() error {
			_, ok, err := h.approvalService.Escalate(gctx, i.ID, level.Order)
			switch {
			case errors.Is(err, domain.ErrStaleInstance), errors.Is(err, domain.ErrNotPending):
				h.logger.Debug(ctx, "instance moved on before escalation", "instance_id", i.ID, "reason", err.Error())
			case err != nil:
				atomic.AddInt64(&failed, 1)
				h.logger.Error(ctx, "failed to escalate instance", "instance_id", i.ID, "level_order", level.Order, "error", err)
			case ok:
				atomic.AddInt64(&escalated, 1)
			}
			return nil
		})
	}
	_ = g.Wait()

	h.logger.Info(ctx, "escalation tick done", "escalated", escalated, "failed", failed)
	return nil
}
