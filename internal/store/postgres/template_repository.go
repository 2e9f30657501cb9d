package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/goto/approvals/core/template"
	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/internal/store/postgres/model"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db}
}

func (r *TemplateRepository) Create(ctx context.Context, t *domain.FlowTemplate) error {
	m := new(model.FlowTemplate)
	if err := m.FromDomain(t); err != nil {
		return fmt.Errorf("serializing template: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q version %d", template.ErrTemplateAlreadyExists, t.ID, t.Version)
		}
		return err
	}
	return nil
}

// Find returns the latest version of every template matching the filter
func (r *TemplateRepository) Find(ctx context.Context, filter domain.ListFlowTemplatesFilter) ([]*domain.FlowTemplate, error) {
	latest := r.db.Model(&model.FlowTemplate{}).
		Select("DISTINCT ON (id) *").
		Order("id, version DESC")

	db := r.db.WithContext(ctx).Table("(?) AS latest", latest)
	if len(filter.IDs) > 0 {
		db = db.Where(`"id" IN ?`, filter.IDs)
	}
	if filter.RequestType != "" {
		db = db.Where(`"request_type" = ?`, filter.RequestType)
	}
	if filter.IsActive != nil {
		db = db.Where(`"is_active" = ?`, *filter.IsActive)
	}

	var models []*model.FlowTemplate
	if err := db.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]*domain.FlowTemplate, 0, len(models))
	for _, m := range models {
		t, err := m.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("parsing template %q: %w", m.ID, err)
		}
		records = append(records, t)
	}
	return records, nil
}

// GetOne returns the latest version when version is 0
func (r *TemplateRepository) GetOne(ctx context.Context, id string, version uint) (*domain.FlowTemplate, error) {
	db := r.db.WithContext(ctx).Where(`"id" = ?`, id)
	if version == 0 {
		db = db.Order("version DESC")
	} else {
		db = db.Where(`"version" = ?`, version)
	}

	var m model.FlowTemplate
	if err := db.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q version %d", template.ErrTemplateNotFound, id, version)
		}
		return nil, err
	}
	return m.ToDomain()
}

// Update overwrites the stored row of t.Version
func (r *TemplateRepository) Update(ctx context.Context, t *domain.FlowTemplate) error {
	m := new(model.FlowTemplate)
	if err := m.FromDomain(t); err != nil {
		return fmt.Errorf("serializing template: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&model.FlowTemplate{}).
		Where(`"id" = ? AND "version" = ?`, t.ID, t.Version).
		Select("*").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %q version %d", template.ErrTemplateNotFound, t.ID, t.Version)
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where(`"id" = ?`, id).Delete(&model.FlowTemplate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %q", template.ErrTemplateNotFound, id)
	}
	return nil
}
