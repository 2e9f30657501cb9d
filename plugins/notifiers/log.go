package notifiers

import (
	"context"
	"fmt"

	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/log"
	"github.com/goto/approvals/plugins/notifiers/message"
)

// logNotifier writes rendered notifications to the application log
type logNotifier struct {
	renderer *message.Renderer
	logger   log.Logger
}

func (n *logNotifier) Notify(ctx context.Context, items []domain.Notification) []error {
	errs := make([]error, 0)
	for _, item := range items {
		text, err := n.renderer.Render(item.Message)
		if err != nil {
			errs = append(errs, fmt.Errorf("rendering %q message for user %q: %w", item.Message.Type, item.User, err))
			continue
		}
		n.logger.Info(ctx, "notification", "user", item.User, "type", item.Message.Type, "labels", item.Labels, "message", text)
	}
	return errs
}
