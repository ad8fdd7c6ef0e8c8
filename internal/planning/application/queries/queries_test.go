package queries

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/plan"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

type stubPlanRepo struct {
	plans []*plan.Plan
}

func (s *stubPlanRepo) Save(ctx context.Context, p *plan.Plan) error {
	s.plans = append(s.plans, p)
	return nil
}

func (s *stubPlanRepo) FindByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	for _, p := range s.plans {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, plan.ErrPlanNotFound
}

func (s *stubPlanRepo) FindLatest(ctx context.Context) (*plan.Plan, error) {
	if len(s.plans) == 0 {
		return nil, plan.ErrPlanNotFound
	}
	return s.plans[len(s.plans)-1], nil
}

func (s *stubPlanRepo) List(ctx context.Context, limit int) ([]*plan.Plan, error) {
	if limit > len(s.plans) {
		limit = len(s.plans)
	}
	out := make([]*plan.Plan, limit)
	for i := 0; i < limit; i++ {
		out[i] = s.plans[len(s.plans)-1-i]
	}
	return out, nil
}

type stubItemRepo struct {
	items []workitem.ScoredWorkItem
}

func (s *stubItemRepo) Save(ctx context.Context, item workitem.ScoredWorkItem) error {
	s.items = append(s.items, item)
	return nil
}

func (s *stubItemRepo) FindByID(ctx context.Context, id string) (workitem.ScoredWorkItem, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return workitem.ScoredWorkItem{}, workitem.ErrItemNotFound
}

func (s *stubItemRepo) FindAll(ctx context.Context) ([]workitem.ScoredWorkItem, error) {
	return s.items, nil
}

func (s *stubItemRepo) DeleteAll(ctx context.Context) error {
	s.items = nil
	return nil
}

func mustNewPlan(t *testing.T, name string) *plan.Plan {
	t.Helper()
	p, err := plan.NewPlan(name, 10, []string{"a", "b"}, []string{"a"}, nil)
	require.NoError(t, err)
	return p
}

func TestGetPlanHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches a plan by id", func(t *testing.T) {
		repo := &stubPlanRepo{}
		p := mustNewPlan(t, "sprint-1")
		require.NoError(t, repo.Save(ctx, p))

		handler := NewGetPlanHandler(repo)
		view, err := handler.Handle(ctx, GetPlanQuery{PlanID: p.ID()})
		require.NoError(t, err)

		assert.Equal(t, p.ID(), view.ID)
		assert.Equal(t, "sprint-1", view.Name)
		assert.Equal(t, []string{"a", "b"}, view.ItemOrder)
		assert.Equal(t, []string{"a"}, view.SelectedIDs)
	})

	t.Run("zero id fetches the latest plan", func(t *testing.T) {
		repo := &stubPlanRepo{}
		require.NoError(t, repo.Save(ctx, mustNewPlan(t, "older")))
		require.NoError(t, repo.Save(ctx, mustNewPlan(t, "newest")))

		handler := NewGetPlanHandler(repo)
		view, err := handler.Handle(ctx, GetPlanQuery{})
		require.NoError(t, err)

		assert.Equal(t, "newest", view.Name)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		handler := NewGetPlanHandler(&stubPlanRepo{})

		_, err := handler.Handle(ctx, GetPlanQuery{PlanID: uuid.New()})
		assert.ErrorIs(t, err, plan.ErrPlanNotFound)
	})
}

func TestListPlansHandler_Handle(t *testing.T) {
	ctx := context.Background()
	repo := &stubPlanRepo{}
	for _, name := range []string{"p1", "p2", "p3"} {
		require.NoError(t, repo.Save(ctx, mustNewPlan(t, name)))
	}

	handler := NewListPlansHandler(repo)

	t.Run("lists newest first", func(t *testing.T) {
		views, err := handler.Handle(ctx, ListPlansQuery{})
		require.NoError(t, err)

		require.Len(t, views, 3)
		assert.Equal(t, "p3", views[0].Name)
	})

	t.Run("applies the limit", func(t *testing.T) {
		views, err := handler.Handle(ctx, ListPlansQuery{Limit: 1})
		require.NoError(t, err)

		assert.Len(t, views, 1)
	})
}

func TestListWorkItemsHandler_Handle(t *testing.T) {
	ctx := context.Background()
	repo := &stubItemRepo{items: []workitem.ScoredWorkItem{
		{ID: "u", Tier: value_objects.TierUrgent},
		{ID: "m", Tier: value_objects.TierMedium},
		{ID: "l", Tier: value_objects.TierLow},
	}}

	handler := NewListWorkItemsHandler(repo)

	t.Run("returns the whole backlog by default", func(t *testing.T) {
		items, err := handler.Handle(ctx, ListWorkItemsQuery{})
		require.NoError(t, err)

		assert.Len(t, items, 3)
	})

	t.Run("filters by tier", func(t *testing.T) {
		tier := value_objects.TierMedium
		items, err := handler.Handle(ctx, ListWorkItemsQuery{Tier: &tier})
		require.NoError(t, err)

		require.Len(t, items, 1)
		assert.Equal(t, "m", items[0].ID)
	})
}
