// Package domain contains base building blocks shared across bounded contexts.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity is anything in the planning domain with a stable identity and
// lifecycle timestamps. Identity, not field values, decides equality.
type Entity interface {
	ID() uuid.UUID
	CreatedAt() time.Time
	UpdatedAt() time.Time
	Equals(other Entity) bool
}

// BaseEntity carries the identity and timestamps every entity embeds.
// Timestamps are always UTC.
type BaseEntity struct {
	id        uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// NewBaseEntity creates an entity with a fresh random ID.
func NewBaseEntity() BaseEntity {
	return NewBaseEntityWithID(uuid.New())
}

// NewBaseEntityWithID creates an entity under a caller-chosen ID.
func NewBaseEntityWithID(id uuid.UUID) BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		id:        id,
		createdAt: now,
		updatedAt: now,
	}
}

// RehydrateBaseEntity rebuilds an entity from stored state, keeping the
// persisted timestamps instead of minting new ones.
func RehydrateBaseEntity(id uuid.UUID, createdAt, updatedAt time.Time) BaseEntity {
	return BaseEntity{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (e BaseEntity) ID() uuid.UUID        { return e.id }
func (e BaseEntity) CreatedAt() time.Time { return e.createdAt }
func (e BaseEntity) UpdatedAt() time.Time { return e.updatedAt }

// Touch records a modification by moving updatedAt to now.
func (e *BaseEntity) Touch() {
	e.updatedAt = time.Now().UTC()
}

// Equals reports whether two entities share the same identity.
func (e BaseEntity) Equals(other Entity) bool {
	if other == nil {
		return false
	}
	return e.id == other.ID()
}
