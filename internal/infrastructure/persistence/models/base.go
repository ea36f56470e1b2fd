package models

import (
	"time"

	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time  `gorm:"not null;index"`
	ModifiedAt *time.Time `gorm:"column:modified_at"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:         m.ID,
		CreatedAt:  m.CreatedAt,
		ModifiedAt: m.ModifiedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.ModifiedAt = e.ModifiedAt
}

// AllModels lists every model for AutoMigrate, parents first
func AllModels() []any {
	return []any{
		&CustomerModel{},
		&ProductModel{},
	}
}
