package notifiers

import (
	"context"
	"time"

	"github.com/goto/approvals/domain"
)

// retryNotifier sends items one by one and resends an item that failed, up to retryCount more times
type retryNotifier struct {
	next       Client
	retryCount int
	backoff    func(retries int) time.Duration
}

func withRetry(next Client, retryCount int) Client {
	if retryCount <= 0 {
		return next
	}
	return &retryNotifier{next: next, retryCount: retryCount, backoff: backoff}
}

func (n *retryNotifier) Notify(ctx context.Context, items []domain.Notification) []error {
	errs := make([]error, 0)
	for _, item := range items {
		errs = append(errs, n.send(ctx, item)...)
	}
	return errs
}

func (n *retryNotifier) send(ctx context.Context, item domain.Notification) []error {
	for retries := 0; ; retries++ {
		errs := n.next.Notify(ctx, []domain.Notification{item})
		if len(errs) == 0 || retries >= n.retryCount {
			return errs
		}

		select {
		case <-ctx.Done():
			return append(errs, ctx.Err())
		case <-time.After(n.backoff(retries)):
		}
	}
}

func backoff(retries int) time.Duration {
	return time.Duration(1<<retries) * time.Second
}
