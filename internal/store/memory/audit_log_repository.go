package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/slices"
	"github.com/goto/salt/audit"
)

type AuditLogRepository struct {
	mu   sync.RWMutex
	logs []*audit.Log
}

func NewAuditLogRepository() *AuditLogRepository {
	return &AuditLogRepository{}
}

func (r *AuditLogRepository) Insert(_ context.Context, l *audit.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *l
	r.logs = append(r.logs, &stored)
	return nil
}

// List returns the matching records, newest first
func (r *AuditLogRepository) List(_ context.Context, filter *domain.ListAuditLogFilter) ([]*audit.Log, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*audit.Log{}
	for _, l := range r.logs {
		if filter != nil && !matchAuditLog(l, filter) {
			continue
		}
		copied := *l
		result = append(result, &copied)
	}

	sort.SliceStable(result, func(i, j int) bool { return result[i].Timestamp.After(result[j].Timestamp) })
	return result, nil
}

func matchAuditLog(l *audit.Log, filter *domain.ListAuditLogFilter) bool {
	if len(filter.Actions) > 0 && !slices.GenericsSliceContainsOne(filter.Actions, l.Action) {
		return false
	}
	if filter.ParentID != "" {
		key, ok := domain.EventParentIDKey(filter.ParentType)
		if !ok {
			return false
		}
		data, ok := l.Data.(map[string]interface{})
		if !ok || data[key] != filter.ParentID {
			return false
		}
	}
	return true
}
