package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goto/approvals/core/delegation"
	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/slices"
)

type BackupApproverRepository struct {
	mu      sync.RWMutex
	backups map[string]domain.BackupApprover
}

func NewBackupApproverRepository() *BackupApproverRepository {
	return &BackupApproverRepository{backups: map[string]domain.BackupApprover{}}
}

func (r *BackupApproverRepository) Create(_ context.Context, b *domain.BackupApprover) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.backups[b.ID]; ok {
		return fmt.Errorf("backup approver %q already exists", b.ID)
	}
	r.backups[b.ID] = *b
	return nil
}

func (r *BackupApproverRepository) Find(_ context.Context, filter domain.ListBackupApproversFilter) ([]*domain.BackupApprover, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*domain.BackupApprover{}
	for _, b := range r.backups {
		if len(filter.PrimaryApproverIDs) > 0 && !slices.GenericsSliceContainsOne(filter.PrimaryApproverIDs, b.PrimaryApproverID) {
			continue
		}
		if filter.BackupApproverID != "" && b.BackupApproverID != filter.BackupApproverID {
			continue
		}
		if filter.ActiveAt != nil && !b.Covers(*filter.ActiveAt) {
			continue
		}
		b := b
		result = append(result, &b)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *BackupApproverRepository) GetByID(_ context.Context, id string) (*domain.BackupApprover, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.backups[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", delegation.ErrBackupApproverNotFound, id)
	}
	return &b, nil
}

func (r *BackupApproverRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.backups[id]; !ok {
		return fmt.Errorf("%w: %q", delegation.ErrBackupApproverNotFound, id)
	}
	delete(r.backups, id)
	return nil
}

type RoleMappingRepository struct {
	mu    sync.RWMutex
	roles map[string]domain.RoleMapping
}

func NewRoleMappingRepository() *RoleMappingRepository {
	return &RoleMappingRepository{roles: map[string]domain.RoleMapping{}}
}

func (r *RoleMappingRepository) Upsert(_ context.Context, m *domain.RoleMapping) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *m
	stored.UserIDs = append([]string(nil), m.UserIDs...)
	r.roles[m.Role] = stored
	return nil
}

func (r *RoleMappingRepository) GetByRole(_ context.Context, role string) (*domain.RoleMapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.roles[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", delegation.ErrRoleMappingNotFound, role)
	}
	m.UserIDs = append([]string(nil), m.UserIDs...)
	return &m, nil
}

func (r *RoleMappingRepository) Find(_ context.Context) ([]*domain.RoleMapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.RoleMapping, 0, len(r.roles))
	for _, m := range r.roles {
		m := m
		m.UserIDs = append([]string(nil), m.UserIDs...)
		result = append(result, &m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Role < result[j].Role })
	return result, nil
}
