package event

import (
	"context"
	"fmt"

	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/log"
	"github.com/goto/salt/audit"
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	List(context.Context, *domain.ListAuditLogFilter) ([]*audit.Log, error)
}

// Service reads the audit trail of instances and templates
type Service struct {
	repo repository
	log  log.Logger
}

func NewService(repo repository, log log.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) List(ctx context.Context, filter *domain.ListEventsFilter) ([]*domain.Event, error) {
	var auditLogFilter *domain.ListAuditLogFilter
	if filter != nil {
		if filter.ParentID != "" {
			if _, ok := domain.EventParentIDKey(filter.ParentType); !ok {
				return nil, fmt.Errorf("invalid parent type %q", filter.ParentType)
			}
		}
		auditLogFilter = &domain.ListAuditLogFilter{
			Actions:    filter.Types,
			ParentType: filter.ParentType,
			ParentID:   filter.ParentID,
		}
	}

	logs, err := s.repo.List(ctx, auditLogFilter)
	if err != nil {
		return nil, err
	}

	events := make([]*domain.Event, 0, len(logs))
	for _, l := range logs {
		e := new(domain.Event)
		if err := e.FromAuditLog(l); err != nil {
			s.log.Warn(ctx, "skipping unparseable audit log", "action", l.Action, "error", err)
			continue
		}
		events = append(events, e)
	}

	return events, nil
}
