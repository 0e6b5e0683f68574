// Package assignmentrepo persists delivery assignments.
package assignmentrepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements ports.AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db *gorm.DB
}

func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Add persists a new assignment. A duplicate order id means another worker
// assigned the order first.
func (r *GormAssignmentRepository) Add(ctx context.Context, assignment *delivery.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	dto := fromDomain(assignment)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConcurrencyConflictError("assignment", assignment.OrderID(), "unassigned")
		}
		return errs.NewStoreUnavailableError("add assignment", err)
	}
	return nil
}

func (r *GormAssignmentRepository) Update(ctx context.Context, assignment *delivery.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	dto := fromDomain(assignment)
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":        dto.Status,
			"pickup_time":   dto.PickupTime,
			"delivery_time": dto.DeliveryTime,
			"notes":         dto.Notes,
		})
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update assignment", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", assignment.ID())
	}
	return nil
}

func (r *GormAssignmentRepository) GetByStoreAndOrder(
	ctx context.Context,
	storeID, orderID kernel.UUID,
) (*delivery.Assignment, error) {
	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND order_id = ?", storeID.Bytes(), orderID.Bytes()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", orderID)
		}
		return nil, errs.NewStoreUnavailableError("get assignment", err)
	}

	return toDomain(dto)
}
