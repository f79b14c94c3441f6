package domain

import "strings"

// Role is the closed set of account roles.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "administrator"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Account models a registered identity: a customer, a manager, or an
// administrator. Email and phone number are each unique across all accounts.
type Account struct {
	ID           int64  `json:"id"`
	Name         string `json:"lead_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone_number"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// Password length bounds, inclusive on both ends.
const (
	PasswordMinLen = 8
	PasswordMaxLen = 13
)

// RolePolicy holds the email-domain suffixes that gate the privileged roles.
type RolePolicy struct {
	AdminDomain   string
	ManagerDomain string
}

// ResolveRole applies the email-domain policy to a requested role:
//   - administrator requires an email under the admin domain
//   - manager requires an email under the manager domain
//   - customer must NOT use either restricted domain
//
// It returns the resolved role, or a ValidationError describing the refusal.
func (p RolePolicy) ResolveRole(email string, requested Role) (Role, error) {
	if !requested.Valid() {
		return "", &ValidationError{Reason: "unknown role: " + string(requested)}
	}

	isAdminDomain := strings.HasSuffix(email, p.AdminDomain)
	isManagerDomain := strings.HasSuffix(email, p.ManagerDomain)

	switch requested {
	case RoleAdmin:
		if !isAdminDomain {
			return "", &ValidationError{Reason: "invalid email for administrator role"}
		}
	case RoleManager:
		if !isManagerDomain {
			return "", &ValidationError{Reason: "invalid email for manager role"}
		}
	case RoleCustomer:
		if isAdminDomain || isManagerDomain {
			return "", &ValidationError{Reason: "invalid email for customer role"}
		}
	}
	return requested, nil
}

// ValidPassword reports whether the plaintext password satisfies the length
// policy.
func ValidPassword(password string) bool {
	return len(password) >= PasswordMinLen && len(password) <= PasswordMaxLen
}

// ValidPhone reports whether phone is exactly ten ASCII digits.
func ValidPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
