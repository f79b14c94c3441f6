package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aurasalon/salon-system/internal/core/domain"
	"github.com/aurasalon/salon-system/internal/core/ports"
)

// AccountService implements registration, authentication, and the
// administrator's account CRUD.
type AccountService struct {
	accounts ports.AccountRepository
	leads    ports.LeadRepository
	policy   domain.RolePolicy
	log      zerolog.Logger
}

func NewAccountService(accounts ports.AccountRepository, leads ports.LeadRepository, policy domain.RolePolicy, log zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, leads: leads, policy: policy, log: log}
}

// Register validates the signup and persists the account with a hashed
// password and the policy-resolved role.
func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Password == "" {
		return nil, &domain.ValidationError{Reason: "please fill out all fields"}
	}
	if !domain.ValidPhone(in.Phone) {
		return nil, &domain.ValidationError{Reason: "phone number must be exactly 10 digits"}
	}
	if !domain.ValidPassword(in.Password) {
		return nil, &domain.ValidationError{
			Reason: fmt.Sprintf("password must be between %d to %d characters", domain.PasswordMinLen, domain.PasswordMaxLen),
		}
	}

	role, err := s.policy.ResolveRole(in.Email, in.RequestedRole)
	if err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, in.Email, in.Phone, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         role,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("account registered")
	return created, nil
}

// Authenticate verifies credentials against the stored hash. Unknown email
// and wrong password produce the same ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return account, nil
}

// UpdateAccount applies only the provided fields, re-validating the
// role/email-domain pairing and the phone format when touched.
func (s *AccountService) UpdateAccount(ctx context.Context, in ports.UpdateAccountInput) (*domain.Account, error) {
	if in.Name == nil && in.Email == nil && in.Phone == nil && in.Role == nil {
		return nil, &domain.ValidationError{Reason: "enter at least one field to proceed further"}
	}

	account, err := s.accounts.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		account.Name = *in.Name
	}
	if in.Email != nil {
		account.Email = *in.Email
	}
	if in.Phone != nil {
		if !domain.ValidPhone(*in.Phone) {
			return nil, &domain.ValidationError{Reason: "phone number must be exactly 10 digits"}
		}
		account.Phone = *in.Phone
	}
	if in.Role != nil {
		account.Role = *in.Role
	}

	// Email or role changes must still satisfy the domain policy.
	if in.Email != nil || in.Role != nil {
		if _, err := s.policy.ResolveRole(account.Email, account.Role); err != nil {
			return nil, err
		}
	}

	if in.Email != nil || in.Phone != nil {
		if err := s.checkUnique(ctx, account.Email, account.Phone, account.ID); err != nil {
			return nil, err
		}
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	s.log.Info().Int64("id", account.ID).Msg("account updated")
	return account, nil
}

// DeleteAccount removes the account immediately and permanently.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("id", id).Msg("account deleted")
	return nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.List(ctx)
}

// checkUnique is the pre-commit uniqueness check across accounts and leads.
// The store's unique indexes remain the guard of record against races; this
// turns the common case into a friendly message. selfID skips the account
// being updated.
func (s *AccountService) checkUnique(ctx context.Context, email, phone string, selfID int64) error {
	if other, err := s.accounts.FindByEmail(ctx, email); err == nil && other.ID != selfID {
		return &domain.ConflictError{Reason: "email already exists"}
	} else if err != nil && !isNotFound(err) {
		return err
	}

	if other, err := s.accounts.FindByPhone(ctx, phone); err == nil && other.ID != selfID {
		return &domain.ConflictError{Reason: "phone number already exists"}
	} else if err != nil && !isNotFound(err) {
		return err
	}

	if _, err := s.leads.FindByPhone(ctx, phone); err == nil {
		return &domain.ConflictError{Reason: "phone number already exists"}
	} else if !isNotFound(err) {
		return err
	}

	return nil
}

func isNotFound(err error) bool {
	var nf *domain.NotFoundError
	return errors.As(err, &nf)
}
