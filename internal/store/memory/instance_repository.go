package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goto/approvals/core/approval"
	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/slices"
)

type InstanceRepository struct {
	mu        sync.RWMutex
	instances map[string]*domain.Instance
}

func NewInstanceRepository() *InstanceRepository {
	return &InstanceRepository{instances: map[string]*domain.Instance{}}
}

func (r *InstanceRepository) Create(_ context.Context, i *domain.Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.instances[i.ID]; ok {
		return fmt.Errorf("instance %q already exists", i.ID)
	}
	r.instances[i.ID] = i.Clone()
	return nil
}

func (r *InstanceRepository) GetByID(_ context.Context, id string) (*domain.Instance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.instances[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", approval.ErrInstanceNotFound, id)
	}
	return i.Clone(), nil
}

func (r *InstanceRepository) Find(_ context.Context, filter domain.ListInstancesFilter) ([]*domain.Instance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*domain.Instance{}
	for _, i := range r.instances {
		if matchInstance(i, filter) {
			result = append(result, i)
		}
	}

	sort.Slice(result, func(a, b int) bool {
		if !result[a].CreatedAt.Equal(result[b].CreatedAt) {
			return result[a].CreatedAt.Before(result[b].CreatedAt)
		}
		return result[a].ID < result[b].ID
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return []*domain.Instance{}, nil
		}
		result = result[filter.Offset:]
	}
	if filter.Size > 0 && filter.Size < len(result) {
		result = result[:filter.Size]
	}

	clones := make([]*domain.Instance, 0, len(result))
	for _, i := range result {
		clones = append(clones, i.Clone())
	}
	return clones, nil
}

// Update replaces the stored instance when the revisions agree and bumps i.Revision
func (r *InstanceRepository) Update(_ context.Context, i *domain.Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.instances[i.ID]
	if !ok {
		return fmt.Errorf("%w: %q", approval.ErrInstanceNotFound, i.ID)
	}
	if stored.Revision != i.Revision {
		return fmt.Errorf("%w: %q stored revision %d, got %d", domain.ErrStaleInstance, i.ID, stored.Revision, i.Revision)
	}

	i.Revision++
	r.instances[i.ID] = i.Clone()
	return nil
}

func matchInstance(i *domain.Instance, filter domain.ListInstancesFilter) bool {
	if len(filter.Statuses) > 0 && !slices.GenericsSliceContainsOne(filter.Statuses, i.Status) {
		return false
	}
	if filter.AssigneeID != "" && !strings.EqualFold(i.CurrentAssigneeID, filter.AssigneeID) {
		return false
	}
	if filter.RequesterID != "" && i.Context.RequesterID != filter.RequesterID {
		return false
	}
	if filter.TemplateID != "" && i.TemplateID != filter.TemplateID {
		return false
	}
	if len(filter.RequestTypes) > 0 && !slices.GenericsSliceContainsOne(filter.RequestTypes, i.Context.RequestType) {
		return false
	}
	return true
}
