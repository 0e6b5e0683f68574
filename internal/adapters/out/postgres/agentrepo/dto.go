package agentrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO is the "delivery_agents" row.
type AgentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index:idx_agents_store_active,priority:1"`
	Name      string    `gorm:"not null"`
	Phone     string
	Active    bool      `gorm:"not null;index:idx_agents_store_active,priority:2"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

func (AgentDTO) TableName() string {
	return "delivery_agents"
}

func fromDomain(a *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:        a.ID().Bytes(),
		StoreID:   a.StoreID().Bytes(),
		Name:      a.Name(),
		Phone:     a.Phone(),
		Active:    a.IsActive(),
		CreatedAt: a.CreatedAt(),
	}
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(id, storeID, dto.Name, dto.Phone, dto.Active, dto.CreatedAt)
}
