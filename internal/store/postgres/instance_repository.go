package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/goto/approvals/core/approval"
	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/internal/store/postgres/model"
)

type InstanceRepository struct {
	db *gorm.DB
}

func NewInstanceRepository(db *gorm.DB) *InstanceRepository {
	return &InstanceRepository{db}
}

func (r *InstanceRepository) Create(ctx context.Context, i *domain.Instance) error {
	m := new(model.Instance)
	if err := m.FromDomain(i); err != nil {
		return fmt.Errorf("serializing instance: %w", err)
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *InstanceRepository) GetByID(ctx context.Context, id string) (*domain.Instance, error) {
	var m model.Instance
	if err := r.db.WithContext(ctx).Where(`"id" = ?`, id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", approval.ErrInstanceNotFound, id)
		}
		return nil, err
	}
	return m.ToDomain()
}

func (r *InstanceRepository) Find(ctx context.Context, filter domain.ListInstancesFilter) ([]*domain.Instance, error) {
	db := r.db.WithContext(ctx)
	if len(filter.Statuses) > 0 {
		db = db.Where(`"status" IN ?`, filter.Statuses)
	}
	if filter.AssigneeID != "" {
		db = db.Where(`LOWER("current_assignee_id") = LOWER(?)`, filter.AssigneeID)
	}
	if filter.RequesterID != "" {
		db = db.Where(`"requester_id" = ?`, filter.RequesterID)
	}
	if filter.TemplateID != "" {
		db = db.Where(`"template_id" = ?`, filter.TemplateID)
	}
	if len(filter.RequestTypes) > 0 {
		db = db.Where(`"request_type" IN ?`, filter.RequestTypes)
	}
	db = applyPagination(db.Order("created_at, id"), filter.Size, filter.Offset)

	var models []*model.Instance
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]*domain.Instance, 0, len(models))
	for _, m := range models {
		i, err := m.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("parsing instance %q: %w", m.ID, err)
		}
		records = append(records, i)
	}
	return records, nil
}

// Update writes i only when the stored revision still equals i.Revision, then bumps i.Revision
func (r *InstanceRepository) Update(ctx context.Context, i *domain.Instance) error {
	m := new(model.Instance)
	if err := m.FromDomain(i); err != nil {
		return fmt.Errorf("serializing instance: %w", err)
	}
	m.Revision = i.Revision + 1

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Instance{}).
			Where(`"id" = ? AND "revision" = ?`, i.ID, i.Revision).
			Updates(m.UpdateColumns())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.Instance{}).Where(`"id" = ?`, i.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("%w: %q", approval.ErrInstanceNotFound, i.ID)
			}
			return fmt.Errorf("%w: %q revision %d", domain.ErrStaleInstance, i.ID, i.Revision)
		}

		i.Revision = m.Revision
		return nil
	})
}
