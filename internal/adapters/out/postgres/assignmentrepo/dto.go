package assignmentrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO is the "delivery_assignments" row. The unique index on
// order_id keeps an order from being handed to two agents.
type AssignmentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	StoreID      uuid.UUID `gorm:"type:uuid;not null;index"`
	AgentID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Status       int       `gorm:"not null"`
	AssignedAt   time.Time `gorm:"not null"`
	PickupTime   time.Time `gorm:"not null"`
	DeliveryTime *time.Time
	Notes        string
}

func (AssignmentDTO) TableName() string {
	return "delivery_assignments"
}

func fromDomain(a *delivery.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:           a.ID().Bytes(),
		OrderID:      a.OrderID().Bytes(),
		StoreID:      a.StoreID().Bytes(),
		AgentID:      a.AgentID().Bytes(),
		Status:       int(a.Status()),
		AssignedAt:   a.AssignedAt(),
		PickupTime:   a.PickupTime(),
		DeliveryTime: a.DeliveryTime(),
		Notes:        a.Notes(),
	}
}

func toDomain(dto AssignmentDTO) (*delivery.Assignment, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.OrderID, dto.StoreID, dto.AgentID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	var deliveryTime *time.Time
	if dto.DeliveryTime != nil {
		t := dto.DeliveryTime.UTC()
		deliveryTime = &t
	}

	return delivery.RestoreAssignment(
		ids[0], ids[1], ids[2], ids[3],
		delivery.Status(dto.Status),
		dto.AssignedAt, dto.PickupTime,
		deliveryTime,
		dto.Notes,
	)
}
