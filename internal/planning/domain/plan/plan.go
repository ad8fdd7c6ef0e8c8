// Package plan contains the release plan aggregate produced by an
// optimization run.
package plan

import (
	"errors"
	"time"

	"github.com/felixgeelhaar/cadence/internal/shared/domain"
	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("plan name cannot be empty")
)

// Plan is the persisted outcome of a backlog optimization run: the final
// execution sequence plus the subset selected to fit team capacity.
type Plan struct {
	domain.BaseAggregateRoot

	name        string
	capacity    float64
	itemOrder   []string
	selectedIDs []string
	unresolved  []string
	optimizedAt time.Time
}

// NewPlan creates a new plan from an optimization result.
func NewPlan(name string, capacity float64, itemOrder, selectedIDs, unresolved []string) (*Plan, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	p := &Plan{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		name:              name,
		capacity:          capacity,
		itemOrder:         append([]string(nil), itemOrder...),
		selectedIDs:       append([]string(nil), selectedIDs...),
		unresolved:        append([]string(nil), unresolved...),
		optimizedAt:       time.Now().UTC(),
	}

	p.AddDomainEvent(NewPlanOptimized(p.ID(), name, len(itemOrder), len(selectedIDs)))

	return p, nil
}

// Rehydrate recreates a plan from persisted state.
func Rehydrate(
	id uuid.UUID,
	name string,
	capacity float64,
	itemOrder, selectedIDs, unresolved []string,
	optimizedAt, createdAt, updatedAt time.Time,
	version int,
) *Plan {
	return &Plan{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(
			domain.RehydrateBaseEntity(id, createdAt, updatedAt), version),
		name:        name,
		capacity:    capacity,
		itemOrder:   itemOrder,
		selectedIDs: selectedIDs,
		unresolved:  unresolved,
		optimizedAt: optimizedAt,
	}
}

func (p *Plan) Name() string           { return p.name }
func (p *Plan) Capacity() float64      { return p.capacity }
func (p *Plan) OptimizedAt() time.Time { return p.optimizedAt }

// ItemOrder returns the final execution sequence of item IDs.
func (p *Plan) ItemOrder() []string {
	return append([]string(nil), p.itemOrder...)
}

// SelectedIDs returns the IDs that fit within the capacity budget.
func (p *Plan) SelectedIDs() []string {
	return append([]string(nil), p.selectedIDs...)
}

// UnresolvedIDs returns IDs appended by the fail-open dependency policy.
func (p *Plan) UnresolvedIDs() []string {
	return append([]string(nil), p.unresolved...)
}
