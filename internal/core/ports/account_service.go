package ports

import (
	"context"

	"github.com/aurasalon/salon-system/internal/core/domain"
)

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	Name          string
	Email         string
	Phone         string
	Password      string
	RequestedRole domain.Role
}

// UpdateAccountInput carries a partial account update; nil fields are left
// untouched.
type UpdateAccountInput struct {
	ID    int64
	Name  *string
	Email *string
	Phone *string
	Role  *domain.Role
}

type AccountService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, in UpdateAccountInput) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}
