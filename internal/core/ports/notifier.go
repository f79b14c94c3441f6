package ports

import (
	"context"

	"github.com/aurasalon/salon-system/internal/core/domain"
)

// NotifierService processes lead follow-up events off the request path.
type NotifierService interface {
	Process(ctx context.Context, event domain.LeadEvent) error
}

// ActivityLog records recent lead events for the manager dashboard.
type ActivityLog interface {
	Record(ctx context.Context, event domain.LeadEvent) error
	Recent(ctx context.Context, limit int64) ([]domain.LeadEvent, error)
}

// LeadNotifier is the enqueue side of the follow-up pipeline, implemented by
// the queue dispatcher. Enqueue must not block the request path.
type LeadNotifier interface {
	Enqueue(event domain.LeadEvent)
}
