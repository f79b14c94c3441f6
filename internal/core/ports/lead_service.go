package ports

import (
	"context"

	"github.com/aurasalon/salon-system/internal/core/domain"
)

// SubmitLeadInput carries the contact form fields. FromManager switches on
// the stricter inquiry-length rule used on the manager's add screen.
type SubmitLeadInput struct {
	Name        string
	Services    []string
	Phone       string
	Inquiry     string
	FromManager bool
}

// UpdateLeadInput carries a partial lead update; at least one of the nil-able
// fields must be present.
type UpdateLeadInput struct {
	ID      int64
	Name    *string
	Service *string
	Inquiry *string
	Status  *domain.LeadStatus
}

// LeadCounts aggregates the manager dashboard numbers.
type LeadCounts struct {
	Total    int64                       `json:"total"`
	ByStatus map[domain.LeadStatus]int64 `json:"by_status"`
}

type LeadService interface {
	SubmitLead(ctx context.Context, in SubmitLeadInput) (*domain.Lead, error)
	UpdateLead(ctx context.Context, in UpdateLeadInput) (*domain.Lead, error)
	DeleteLead(ctx context.Context, id int64) error
	ListLeads(ctx context.Context) ([]*domain.Lead, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Lead, error)
	DashboardCounts(ctx context.Context) (*LeadCounts, error)
}
