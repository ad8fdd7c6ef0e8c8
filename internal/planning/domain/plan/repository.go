package plan

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
)

// Repository defines persistence for plans.
type Repository interface {
	Save(ctx context.Context, p *Plan) error
	FindByID(ctx context.Context, id uuid.UUID) (*Plan, error)
	FindLatest(ctx context.Context) (*Plan, error)
	List(ctx context.Context, limit int) ([]*Plan, error)
}
