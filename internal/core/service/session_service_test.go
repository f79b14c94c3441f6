package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aurasalon/salon-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub session store
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	sessions map[string]*domain.Session
	flashes  map[string]string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{
		sessions: make(map[string]*domain.Session),
		flashes:  make(map[string]string),
	}
}

func (s *stubSessionStore) Save(_ context.Context, sid string, sess *domain.Session, _ time.Duration) error {
	clone := *sess
	s.sessions[sid] = &clone
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, sid string) (*domain.Session, error) {
	if sess, ok := s.sessions[sid]; ok {
		clone := *sess
		return &clone, nil
	}
	return nil, domain.ErrInvalidSession
}

func (s *stubSessionStore) Delete(_ context.Context, sid string) error {
	delete(s.sessions, sid)
	delete(s.flashes, sid)
	return nil
}

func (s *stubSessionStore) SetFlash(_ context.Context, sid, message string) error {
	s.flashes[sid] = message
	return nil
}

func (s *stubSessionStore) TakeFlash(_ context.Context, sid string) (string, error) {
	msg := s.flashes[sid]
	delete(s.flashes, sid)
	return msg, nil
}

func newSessionFixture(t *testing.T) (*SessionService, *stubSessionStore) {
	t.Helper()
	accounts := newAccountService(newStubAccountRepo(), newStubLeadRepo())
	if _, err := accounts.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}
	store := newStubSessionStore()
	return NewSessionService(accounts, store, "test-secret", time.Hour, zerolog.Nop()), store
}

func TestSessionService_Login_Success(t *testing.T) {
	svc, store := newSessionFixture(t)

	result, err := svc.Login(context.Background(), "asha@gmail.com", "sup3rsecret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a session token")
	}
	if result.Landing != "/login/user" {
		t.Fatalf("expected customer landing, got %q", result.Landing)
	}
	if result.Session.Phone != "9876543210" || result.Session.Role != domain.RoleCustomer {
		t.Fatalf("unexpected session: %+v", result.Session)
	}
	if len(store.sessions) != 1 {
		t.Fatalf("expected one stored session, got %d", len(store.sessions))
	}
}

func TestSessionService_Login_BadCredentials(t *testing.T) {
	svc, store := newSessionFixture(t)

	if _, err := svc.Login(context.Background(), "asha@gmail.com", "wrongpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatal("expected no session stored on failed login")
	}
}

func TestSessionService_ResolveAndLogout(t *testing.T) {
	svc, store := newSessionFixture(t)

	result, err := svc.Login(context.Background(), "asha@gmail.com", "sup3rsecret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	sid, sess, err := svc.Resolve(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if sess.Email != "asha@gmail.com" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if _, ok := store.sessions[sid]; !ok {
		t.Fatal("resolved sid not present in store")
	}

	if err := svc.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, _, err := svc.Resolve(context.Background(), result.Token); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected revoked session to be invalid, got %v", err)
	}
}

func TestSessionService_Resolve_TamperedToken(t *testing.T) {
	svc, _ := newSessionFixture(t)

	if _, _, err := svc.Resolve(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}

	// Token signed with a different secret must not resolve.
	accounts := newAccountService(newStubAccountRepo(), newStubLeadRepo())
	if _, err := accounts.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}
	other := NewSessionService(accounts, newStubSessionStore(), "other-secret", time.Hour, zerolog.Nop())
	result, err := other.Login(context.Background(), "asha@gmail.com", "sup3rsecret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, _, err := svc.Resolve(context.Background(), result.Token); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected foreign-signed token to be invalid, got %v", err)
	}
}

func TestSessionService_Flash_OneShot(t *testing.T) {
	svc, _ := newSessionFixture(t)

	result, err := svc.Login(context.Background(), "asha@gmail.com", "sup3rsecret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	sid, _, err := svc.Resolve(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	svc.Flash(context.Background(), sid, "lead updated successfully")
	if msg := svc.TakeFlash(context.Background(), sid); msg != "lead updated successfully" {
		t.Fatalf("unexpected flash: %q", msg)
	}
	if msg := svc.TakeFlash(context.Background(), sid); msg != "" {
		t.Fatalf("expected flash to be one-shot, got %q", msg)
	}
}

func TestSessionService_LandingPerRole(t *testing.T) {
	cases := []struct {
		email   string
		role    domain.Role
		landing string
	}{
		{"nick@marvel.com", domain.RoleAdmin, "/login/admin"},
		{"lin@manager.com", domain.RoleManager, "/login/manager"},
	}
	for _, tc := range cases {
		accounts := newAccountService(newStubAccountRepo(), newStubLeadRepo())
		in := registerInput()
		in.Email = tc.email
		in.RequestedRole = tc.role
		if _, err := accounts.Register(context.Background(), in); err != nil {
			t.Fatalf("register %s failed: %v", tc.role, err)
		}

		svc := NewSessionService(accounts, newStubSessionStore(), "test-secret", time.Hour, zerolog.Nop())
		result, err := svc.Login(context.Background(), tc.email, "sup3rsecret")
		if err != nil {
			t.Fatalf("login %s failed: %v", tc.role, err)
		}
		if result.Landing != tc.landing {
			t.Errorf("%s: expected landing %q, got %q", tc.role, tc.landing, result.Landing)
		}
	}
}
