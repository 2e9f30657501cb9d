// Package memory keeps every record in process memory. It backs tests and single node deployments
// that don't need durability.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goto/approvals/core/template"
	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/slices"
)

type TemplateRepository struct {
	mu       sync.RWMutex
	versions map[string][]*domain.FlowTemplate
}

func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{versions: map[string][]*domain.FlowTemplate{}}
}

// Create stores t as a new version. Versions of a template must be created in increasing order.
func (r *TemplateRepository) Create(_ context.Context, t *domain.FlowTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	versions := r.versions[t.ID]
	if n := len(versions); n > 0 && versions[n-1].Version >= t.Version {
		return fmt.Errorf("%w: %q version %d", template.ErrTemplateAlreadyExists, t.ID, t.Version)
	}
	r.versions[t.ID] = append(versions, t.Clone())
	return nil
}

func (r *TemplateRepository) Find(_ context.Context, filter domain.ListFlowTemplatesFilter) ([]*domain.FlowTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*domain.FlowTemplate{}
	for id, versions := range r.versions {
		latest := versions[len(versions)-1]
		if len(filter.IDs) > 0 && !slices.GenericsSliceContainsOne(filter.IDs, id) {
			continue
		}
		if filter.RequestType != "" && latest.RequestType != filter.RequestType {
			continue
		}
		if filter.IsActive != nil && latest.IsActive != *filter.IsActive {
			continue
		}
		result = append(result, latest.Clone())
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *TemplateRepository) GetOne(_ context.Context, id string, version uint) (*domain.FlowTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	versions := r.versions[id]
	if len(versions) == 0 {
		return nil, fmt.Errorf("%w: %q", template.ErrTemplateNotFound, id)
	}
	if version == 0 {
		return versions[len(versions)-1].Clone(), nil
	}
	for _, t := range versions {
		if t.Version == version {
			return t.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q version %d", template.ErrTemplateNotFound, id, version)
}

// Update overwrites the stored copy of t.Version
func (r *TemplateRepository) Update(_ context.Context, t *domain.FlowTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.versions[t.ID] {
		if existing.Version == t.Version {
			r.versions[t.ID][i] = t.Clone()
			return nil
		}
	}
	return fmt.Errorf("%w: %q version %d", template.ErrTemplateNotFound, t.ID, t.Version)
}

func (r *TemplateRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.versions[id]; !ok {
		return fmt.Errorf("%w: %q", template.ErrTemplateNotFound, id)
	}
	delete(r.versions, id)
	return nil
}
