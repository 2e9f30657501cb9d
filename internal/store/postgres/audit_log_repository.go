package postgres

import (
	"context"

	"github.com/goto/salt/audit"
	"gorm.io/gorm"

	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/internal/store/postgres/model"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Insert(ctx context.Context, l *audit.Log) error {
	m := new(model.AuditLog)
	if err := m.FromDomain(l); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *AuditLogRepository) List(ctx context.Context, filter *domain.ListAuditLogFilter) ([]*audit.Log, error) {
	db := r.db.WithContext(ctx)

	if filter != nil {
		if filter.Actions != nil {
			db = db.Where(`"action" IN ?`, filter.Actions)
		}
		if filter.ParentID != "" {
			if key, ok := domain.EventParentIDKey(filter.ParentType); ok {
				db = db.Where(`"data" ->> ? = ?`, key, filter.ParentID)
			}
		}
	}
	db = db.Order("timestamp DESC")

	records := []*model.AuditLog{}
	if err := db.Find(&records).Error; err != nil {
		return nil, err
	}

	logs := make([]*audit.Log, 0, len(records))
	for _, record := range records {
		l, err := record.ToDomain()
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, nil
}
