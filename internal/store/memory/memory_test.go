package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/goto/approvals/core/approval"
	"github.com/goto/approvals/core/delegation"
	"github.com/goto/approvals/core/template"
	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/internal/store/memory"
	"github.com/goto/salt/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	ctx context.Context
	now time.Time
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}

func (s *MemoryStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
}

func (s *MemoryStoreTestSuite) TestTemplateVersions() {
	repo := memory.NewTemplateRepository()
	v1 := &domain.FlowTemplate{ID: "expense", Version: 1, Name: "v1", RequestType: domain.RequestTypeExpense, IsActive: true}
	s.Require().NoError(repo.Create(s.ctx, v1))
	s.Require().NoError(repo.Create(s.ctx, &domain.FlowTemplate{ID: "expense", Version: 2, Name: "v2", RequestType: domain.RequestTypeExpense, IsActive: true}))

	s.Run("should refuse versions that are not newer", func() {
		err := repo.Create(s.ctx, &domain.FlowTemplate{ID: "expense", Version: 2})
		s.ErrorIs(err, template.ErrTemplateAlreadyExists)
	})

	s.Run("should read the latest and past versions", func() {
		latest, err := repo.GetOne(s.ctx, "expense", 0)
		s.Require().NoError(err)
		s.Equal("v2", latest.Name)

		first, err := repo.GetOne(s.ctx, "expense", 1)
		s.Require().NoError(err)
		s.Equal("v1", first.Name)

		_, err = repo.GetOne(s.ctx, "expense", 9)
		s.ErrorIs(err, template.ErrTemplateNotFound)
	})

	s.Run("should not leak stored values", func() {
		v1.Name = "mutated"
		first, err := repo.GetOne(s.ctx, "expense", 1)
		s.Require().NoError(err)
		s.Equal("v1", first.Name)
	})

	s.Run("should filter the latest versions", func() {
		inactive := false
		s.Require().NoError(repo.Create(s.ctx, &domain.FlowTemplate{ID: "leave", Version: 1, RequestType: domain.RequestTypeLeave}))

		active, err := repo.Find(s.ctx, domain.ListFlowTemplatesFilter{RequestType: domain.RequestTypeExpense})
		s.Require().NoError(err)
		s.Require().Len(active, 1)
		s.EqualValues(2, active[0].Version)

		off, err := repo.Find(s.ctx, domain.ListFlowTemplatesFilter{IsActive: &inactive})
		s.Require().NoError(err)
		s.Require().Len(off, 1)
		s.Equal("leave", off[0].ID)
	})

	s.Run("should delete every version", func() {
		s.Require().NoError(repo.Delete(s.ctx, "expense"))
		_, err := repo.GetOne(s.ctx, "expense", 1)
		s.ErrorIs(err, template.ErrTemplateNotFound)
		s.ErrorIs(repo.Delete(s.ctx, "expense"), template.ErrTemplateNotFound)
	})
}

func (s *MemoryStoreTestSuite) TestInstanceRevisions() {
	repo := memory.NewInstanceRepository()
	i := &domain.Instance{ID: "i1", Status: domain.InstanceStatusPending, CreatedAt: s.now}
	s.Require().NoError(repo.Create(s.ctx, i))

	a, err := repo.GetByID(s.ctx, "i1")
	s.Require().NoError(err)
	b, err := repo.GetByID(s.ctx, "i1")
	s.Require().NoError(err)

	a.Status = domain.InstanceStatusApproved
	s.Require().NoError(repo.Update(s.ctx, a))
	s.EqualValues(1, a.Revision)

	b.Status = domain.InstanceStatusRejected
	s.ErrorIs(repo.Update(s.ctx, b), domain.ErrStaleInstance)

	stored, err := repo.GetByID(s.ctx, "i1")
	s.Require().NoError(err)
	s.Equal(domain.InstanceStatusApproved, stored.Status)

	_, err = repo.GetByID(s.ctx, "missing")
	s.ErrorIs(err, approval.ErrInstanceNotFound)
}

func (s *MemoryStoreTestSuite) TestInstanceFind() {
	repo := memory.NewInstanceRepository()
	for idx, i := range []*domain.Instance{
		{ID: "c", Status: domain.InstanceStatusPending, CurrentAssigneeID: "Bob@example.com", TemplateID: "t1", Context: domain.RequestContext{RequestType: domain.RequestTypeExpense, RequesterID: "u1"}},
		{ID: "a", Status: domain.InstanceStatusPending, CurrentAssigneeID: "bob@example.com", TemplateID: "t2", Context: domain.RequestContext{RequestType: domain.RequestTypeLeave, RequesterID: "u2"}},
		{ID: "b", Status: domain.InstanceStatusApproved, TemplateID: "t1", Context: domain.RequestContext{RequestType: domain.RequestTypeExpense, RequesterID: "u1"}},
	} {
		i.CreatedAt = s.now.Add(time.Duration(idx) * time.Minute)
		s.Require().NoError(repo.Create(s.ctx, i))
	}

	ids := func(instances []*domain.Instance) []string {
		var result []string
		for _, i := range instances {
			result = append(result, i.ID)
		}
		return result
	}

	pending, err := repo.Find(s.ctx, domain.ListInstancesFilter{Statuses: []string{domain.InstanceStatusPending}, AssigneeID: "bob@example.com"})
	s.Require().NoError(err)
	s.Equal([]string{"c", "a"}, ids(pending))

	byTemplate, err := repo.Find(s.ctx, domain.ListInstancesFilter{TemplateID: "t1", RequesterID: "u1", RequestTypes: []string{domain.RequestTypeExpense}})
	s.Require().NoError(err)
	s.Equal([]string{"c", "b"}, ids(byTemplate))

	page, err := repo.Find(s.ctx, domain.ListInstancesFilter{Offset: 1, Size: 1})
	s.Require().NoError(err)
	s.Equal([]string{"a"}, ids(page))

	empty, err := repo.Find(s.ctx, domain.ListInstancesFilter{Offset: 5})
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *MemoryStoreTestSuite) TestBackupApprovers() {
	repo := memory.NewBackupApproverRepository()
	b := &domain.BackupApprover{
		ID:                "b1",
		PrimaryApproverID: "alice@example.com",
		BackupApproverID:  "bob@example.com",
		ValidFrom:         s.now,
		ValidTo:           s.now.Add(24 * time.Hour),
	}
	s.Require().NoError(repo.Create(s.ctx, b))

	outside := s.now.Add(48 * time.Hour)
	found, err := repo.Find(s.ctx, domain.ListBackupApproversFilter{PrimaryApproverIDs: []string{"alice@example.com"}, ActiveAt: &outside})
	s.Require().NoError(err)
	s.Empty(found)

	found, err = repo.Find(s.ctx, domain.ListBackupApproversFilter{BackupApproverID: "bob@example.com"})
	s.Require().NoError(err)
	s.Len(found, 1)

	s.Require().NoError(repo.Delete(s.ctx, "b1"))
	_, err = repo.GetByID(s.ctx, "b1")
	s.ErrorIs(err, delegation.ErrBackupApproverNotFound)
}

func (s *MemoryStoreTestSuite) TestRoleMappings() {
	repo := memory.NewRoleMappingRepository()
	_, err := repo.GetByRole(s.ctx, "finance")
	s.ErrorIs(err, delegation.ErrRoleMappingNotFound)

	m := &domain.RoleMapping{Role: "finance", UserIDs: []string{"carol@example.com"}}
	s.Require().NoError(repo.Upsert(s.ctx, m))
	m.UserIDs[0] = "mutated"

	stored, err := repo.GetByRole(s.ctx, "finance")
	s.Require().NoError(err)
	s.Equal([]string{"carol@example.com"}, stored.UserIDs)

	s.Require().NoError(repo.Upsert(s.ctx, &domain.RoleMapping{Role: "cfo", UserIDs: []string{"dan@example.com"}}))
	all, err := repo.Find(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("cfo", all[0].Role)
}

func TestAuditLogRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAuditLogRepository()
	now := time.Now()
	require.NoError(t, repo.Insert(ctx, &audit.Log{Timestamp: now, Action: "instance.submit", Data: map[string]interface{}{"instance_id": "i1"}}))
	require.NoError(t, repo.Insert(ctx, &audit.Log{Timestamp: now.Add(time.Second), Action: "instance.approve", Data: map[string]interface{}{"instance_id": "i1"}}))
	require.NoError(t, repo.Insert(ctx, &audit.Log{Timestamp: now, Action: "template.create", Data: map[string]interface{}{"template_id": "t1"}}))

	logs, err := repo.List(ctx, &domain.ListAuditLogFilter{ParentType: domain.EventParentTypeInstance, ParentID: "i1"})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "instance.approve", logs[0].Action)

	logs, err = repo.List(ctx, &domain.ListAuditLogFilter{Actions: []string{"template.create"}})
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	logs, err = repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}
