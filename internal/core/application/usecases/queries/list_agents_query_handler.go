package queries

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListAgentsQueryHandler struct {
	db *gorm.DB
}

func NewListAgentsQueryHandler(db *gorm.DB) ListAgentsQueryHandler {
	return ListAgentsQueryHandler{db: db}
}

func (h ListAgentsQueryHandler) Handle(ctx context.Context, query ListAgentsQuery) ([]ListAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			name,
			phone,
			active,
			created_at
		FROM delivery_agents
		WHERE store_id = ?`
	args := []any{query.StoreID().Bytes()}
	if active, ok := query.Active(); ok {
		stmt += " AND active = ?"
		args = append(args, active)
	}
	stmt += " ORDER BY created_at, id"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("list agents", err)
	}
	defer rows.Close()

	agents := make([]ListAgentsQueryResponse, 0)
	for rows.Next() {
		var a ListAgentsQueryResponse
		var id uuid.UUID
		var createdAt time.Time
		if err = rows.Scan(&id, &a.Name, &a.Phone, &a.Active, &createdAt); err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		a.ID = agentID
		a.CreatedAt = createdAt.UTC()
		agents = append(agents, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return agents, nil
}
