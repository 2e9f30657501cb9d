package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/goto/approvals/core/delegation"
	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/internal/store/postgres/model"
)

type BackupApproverRepository struct {
	db *gorm.DB
}

func NewBackupApproverRepository(db *gorm.DB) *BackupApproverRepository {
	return &BackupApproverRepository{db}
}

func (r *BackupApproverRepository) Create(ctx context.Context, b *domain.BackupApprover) error {
	m := new(model.BackupApprover)
	m.FromDomain(b)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *BackupApproverRepository) Find(ctx context.Context, filter domain.ListBackupApproversFilter) ([]*domain.BackupApprover, error) {
	db := r.db.WithContext(ctx)
	if len(filter.PrimaryApproverIDs) > 0 {
		db = db.Where(`"primary_approver_id" IN ?`, filter.PrimaryApproverIDs)
	}
	if filter.BackupApproverID != "" {
		db = db.Where(`"backup_approver_id" = ?`, filter.BackupApproverID)
	}
	if filter.ActiveAt != nil {
		db = db.Where(`"valid_from" <= ? AND "valid_to" >= ?`, *filter.ActiveAt, *filter.ActiveAt)
	}

	var models []*model.BackupApprover
	if err := db.Order("created_at, id").Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]*domain.BackupApprover, 0, len(models))
	for _, m := range models {
		records = append(records, m.ToDomain())
	}
	return records, nil
}

func (r *BackupApproverRepository) GetByID(ctx context.Context, id string) (*domain.BackupApprover, error) {
	var m model.BackupApprover
	if err := r.db.WithContext(ctx).Where(`"id" = ?`, id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", delegation.ErrBackupApproverNotFound, id)
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *BackupApproverRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where(`"id" = ?`, id).Delete(&model.BackupApprover{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %q", delegation.ErrBackupApproverNotFound, id)
	}
	return nil
}

type RoleMappingRepository struct {
	db *gorm.DB
}

func NewRoleMappingRepository(db *gorm.DB) *RoleMappingRepository {
	return &RoleMappingRepository{db}
}

func (r *RoleMappingRepository) Upsert(ctx context.Context, m *domain.RoleMapping) error {
	record := new(model.RoleMapping)
	record.FromDomain(m)

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_ids", "updated_at"}),
	}).Create(record).Error
}

func (r *RoleMappingRepository) GetByRole(ctx context.Context, role string) (*domain.RoleMapping, error) {
	var m model.RoleMapping
	if err := r.db.WithContext(ctx).Where(`"role" = ?`, role).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", delegation.ErrRoleMappingNotFound, role)
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *RoleMappingRepository) Find(ctx context.Context) ([]*domain.RoleMapping, error) {
	var models []*model.RoleMapping
	if err := r.db.WithContext(ctx).Order("role").Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]*domain.RoleMapping, 0, len(models))
	for _, m := range models {
		records = append(records, m.ToDomain())
	}
	return records, nil
}
