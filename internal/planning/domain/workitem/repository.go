package workitem

import (
	"context"
	"errors"
)

var (
	ErrItemNotFound = errors.New("work item not found")
)

// Repository defines persistence for scored work items.
type Repository interface {
	Save(ctx context.Context, item ScoredWorkItem) error
	FindByID(ctx context.Context, id string) (ScoredWorkItem, error)
	FindAll(ctx context.Context) ([]ScoredWorkItem, error)
	DeleteAll(ctx context.Context) error
}
