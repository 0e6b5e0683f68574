package queries

import (
	"context"

	"pizzeria/internal/core/domain/services"

	"gorm.io/gorm"
)

type KitchenWorkloadQueryHandler struct {
	db        *gorm.DB
	estimator services.KitchenLoadEstimator
}

func NewKitchenWorkloadQueryHandler(db *gorm.DB, estimator services.KitchenLoadEstimator) KitchenWorkloadQueryHandler {
	return KitchenWorkloadQueryHandler{db: db, estimator: estimator}
}

func (h KitchenWorkloadQueryHandler) Handle(
	ctx context.Context,
	query KitchenWorkloadQuery,
) (KitchenWorkloadQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return KitchenWorkloadQueryResponse{}, err
	}

	tickets, err := loadKitchenTickets(ctx, h.db, query.StoreID())
	if err != nil {
		return KitchenWorkloadQueryResponse{}, err
	}

	return KitchenWorkloadQueryResponse{
		StoreID:  query.StoreID(),
		Workload: h.estimator.Workload(tickets),
	}, nil
}

type OptimizeKitchenQueueQueryHandler struct {
	db        *gorm.DB
	estimator services.KitchenLoadEstimator
}

func NewOptimizeKitchenQueueQueryHandler(
	db *gorm.DB,
	estimator services.KitchenLoadEstimator,
) OptimizeKitchenQueueQueryHandler {
	return OptimizeKitchenQueueQueryHandler{db: db, estimator: estimator}
}

func (h OptimizeKitchenQueueQueryHandler) Handle(
	ctx context.Context,
	query OptimizeKitchenQueueQuery,
) (OptimizeKitchenQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OptimizeKitchenQueueQueryResponse{}, err
	}

	tickets, err := loadKitchenTickets(ctx, h.db, query.StoreID())
	if err != nil {
		return OptimizeKitchenQueueQueryResponse{}, err
	}

	return OptimizeKitchenQueueQueryResponse{
		OriginalQueueLength: len(tickets),
		OptimizedQueue:      h.estimator.OptimizeQueue(tickets),
	}, nil
}
