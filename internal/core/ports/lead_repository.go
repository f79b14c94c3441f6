package ports

import (
	"context"

	"github.com/aurasalon/salon-system/internal/core/domain"
)

// LeadRepository defines the interface for lead persistence.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	FindByID(ctx context.Context, id int64) (*domain.Lead, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Lead, error)
	Update(ctx context.Context, lead *domain.Lead) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Lead, error)
	CountByStatus(ctx context.Context, status domain.LeadStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
}
