package jobs

import (
	"context"
	"sort"
	"strings"

	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/slices"
)

// PendingApprovalsReminder sends each assignee one digest of the requests waiting on them
func (h *handler) PendingApprovalsReminder(ctx context.Context, _ Config) error {
	h.logger.Info(ctx, "running pending approvals reminder job")

	pending, err := h.approvalService.ListPending(ctx)
	if err != nil {
		h.logger.Error(ctx, "failed to retrieve pending approvals", "error", err)
		return err
	}
	h.logger.Info(ctx, "retrieved pending approvals", "count", len(pending))

	byAssignee := slices.GenericsGroupBy(pending, func(i *domain.Instance) string {
		return strings.ToLower(i.CurrentAssigneeID)
	})
	delete(byAssignee, "")

	assignees := make([]string, 0, len(byAssignee))
	for a := range byAssignee {
		assignees = append(assignees, a)
	}
	sort.Strings(assignees)

	notifications := make([]domain.Notification, 0, len(assignees))
	for _, assignee := range assignees {
		instances := byAssignee[assignee]
		items := make([]map[string]interface{}, 0, len(instances))
		for _, i := range instances {
			items = append(items, map[string]interface{}{
				"instance_id":  i.ID,
				"request_type": i.Context.RequestType,
				"requester":    i.Context.RequesterID,
			})
		}

		h.logger.Info(ctx, "preparing notification", "pending approvals count", len(instances), "to", assignee)
		notifications = append(notifications, domain.Notification{
			User: instances[0].CurrentAssigneeID,
			Message: domain.NotificationMessage{
				Type: domain.NotificationTypePendingApprovalsReminder,
				Variables: map[string]interface{}{
					"pending_count": len(instances),
					"instances":     items,
				},
			},
		})
	}

	if len(notifications) == 0 {
		return nil
	}
	if errs := h.notifier.Notify(ctx, notifications); errs != nil {
		for _, e := range errs {
			h.logger.Error(ctx, "failed to send notifications", "error", e)
		}
	}

	h.logger.Info(ctx, "pending approvals notifications sent", "count", len(notifications))
	return nil
}
