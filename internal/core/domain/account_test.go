package domain

import "testing"

var testPolicy = RolePolicy{AdminDomain: "@marvel.com", ManagerDomain: "@manager.com"}

func TestResolveRole(t *testing.T) {
	cases := []struct {
		name      string
		email     string
		requested Role
		wantErr   bool
	}{
		{"admin with admin domain", "tony@marvel.com", RoleAdmin, false},
		{"admin with other domain", "tony@gmail.com", RoleAdmin, true},
		{"manager with manager domain", "lin@manager.com", RoleManager, false},
		{"manager with admin domain", "lin@marvel.com", RoleManager, true},
		{"customer with plain domain", "asha@gmail.com", RoleCustomer, false},
		{"customer with admin domain", "asha@marvel.com", RoleCustomer, true},
		{"customer with manager domain", "asha@manager.com", RoleCustomer, true},
		{"unknown role", "x@gmail.com", Role("wizard"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := testPolicy.ResolveRole(tc.email, tc.requested)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got role %q", role)
				}
				if _, ok := err.(*ValidationError); !ok {
					t.Fatalf("expected *ValidationError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role != tc.requested {
				t.Fatalf("expected role %q, got %q", tc.requested, role)
			}
		})
	}
}

func TestValidPassword_Boundaries(t *testing.T) {
	cases := map[string]bool{
		"1234567":        false, // 7
		"12345678":       true,  // 8
		"1234567890123":  true,  // 13
		"12345678901234": false, // 14
	}
	for pw, want := range cases {
		if got := ValidPassword(pw); got != want {
			t.Errorf("ValidPassword(len=%d) = %v, want %v", len(pw), got, want)
		}
	}
}

func TestValidPhone(t *testing.T) {
	cases := map[string]bool{
		"9876543210":  true,
		"987654321":   false, // 9 digits
		"98765432100": false, // 11 digits
		"987654321a":  false,
		"":            false,
	}
	for phone, want := range cases {
		if got := ValidPhone(phone); got != want {
			t.Errorf("ValidPhone(%q) = %v, want %v", phone, got, want)
		}
	}
}
