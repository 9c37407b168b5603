package repository

import (
	"context"
	"time"

	"ecogood/internal/domain/model"
)

type AuditLogFilter struct {
	ActorUserID *int64
	Action      *model.AuditAction
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

type AuditLogRepository interface {
	Create(ctx context.Context, log model.AuditLog) error
	List(ctx context.Context, filter AuditLogFilter) ([]model.AuditLog, error)
}
