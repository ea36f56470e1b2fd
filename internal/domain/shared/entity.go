package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetModifiedAt() *time.Time
}

// BaseEntity provides common fields for all entities.
// ModifiedAt stays nil until the first update.
type BaseEntity struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	ModifiedAt *time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetModifiedAt returns the last modification timestamp, nil if never modified
func (e *BaseEntity) GetModifiedAt() *time.Time {
	return e.ModifiedAt
}

// IsNew reports whether the entity has not been assigned an identifier yet
func (e *BaseEntity) IsNew() bool {
	return e.ID == uuid.Nil
}

// Stamp assigns a fresh identifier and the creation timestamp.
// It is a no-op for entities that already carry an identifier.
func (e *BaseEntity) Stamp(now time.Time) {
	if !e.IsNew() {
		return
	}
	e.ID = uuid.New()
	e.CreatedAt = now
	e.ModifiedAt = nil
}

// Touch sets the modification timestamp
func (e *BaseEntity) Touch(now time.Time) {
	e.ModifiedAt = &now
}

// ParseID parses a canonical identifier string.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || !isCanonical(raw) {
		return uuid.Nil, NewInvalidArgumentError("Invalid UUID string: %s", raw)
	}
	return id, nil
}

// isCanonical accepts only the 8-4-4-4-12 hex form; uuid.Parse also takes
// urn and braced variants.
func isCanonical(raw string) bool {
	if len(raw) != 36 {
		return false
	}
	return raw[8] == '-' && raw[13] == '-' && raw[18] == '-' && raw[23] == '-'
}
