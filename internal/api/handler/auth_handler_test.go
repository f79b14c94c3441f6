package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aurasalon/salon-system/internal/api/middleware"
	"github.com/aurasalon/salon-system/internal/core/domain"
	"github.com/aurasalon/salon-system/internal/core/ports"
)

type stubAccountService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.Account, error)
	updateFn   func(ctx context.Context, in ports.UpdateAccountInput) (*domain.Account, error)
	deleteFn   func(ctx context.Context, id int64) error
	listFn     func(ctx context.Context) ([]*domain.Account, error)
}

func (s *stubAccountService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAccountService) Authenticate(context.Context, string, string) (*domain.Account, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubAccountService) UpdateAccount(ctx context.Context, in ports.UpdateAccountInput) (*domain.Account, error) {
	return s.updateFn(ctx, in)
}

func (s *stubAccountService) DeleteAccount(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubAccountService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.listFn(ctx)
}

type stubSessionService struct {
	loginFn func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	flashes map[string]string
}

func (s *stubSessionService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) Logout(context.Context, string) error { return nil }

func (s *stubSessionService) Resolve(context.Context, string) (string, *domain.Session, error) {
	return "", nil, domain.ErrInvalidSession
}

func (s *stubSessionService) Flash(_ context.Context, sid, message string) {
	if s.flashes == nil {
		s.flashes = make(map[string]string)
	}
	s.flashes[sid] = message
}

func (s *stubSessionService) TakeFlash(_ context.Context, sid string) string {
	msg := s.flashes[sid]
	delete(s.flashes, sid)
	return msg
}

func newFormContext(t *testing.T, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	accounts := &stubAccountService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.Account, error) {
			if in.Name != "Asha" || in.Phone != "9876543210" || in.RequestedRole != domain.RoleCustomer {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Account{ID: 1, Name: in.Name, Email: in.Email, Phone: in.Phone, Role: in.RequestedRole}, nil
		},
	}
	h := NewAuthHandler(accounts, &stubSessionService{})

	form := url.Values{
		"lead_name":    {"Asha"},
		"email":        {"asha@gmail.com"},
		"phone_number": {"9876543210"},
		"password":     {"sup3rsecret"},
		"options":      {"customer"},
	}
	c, rec := newFormContext(t, "/signup", form)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect"] != "/login" {
		t.Fatalf("expected /login redirect hint, got %v", resp["redirect"])
	}
}

func TestAuthHandler_Signup_BadPhoneRejectedBeforeService(t *testing.T) {
	accounts := &stubAccountService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.Account, error) {
			t.Fatal("service must not be reached on invalid form")
			return nil, nil
		},
	}
	h := NewAuthHandler(accounts, &stubSessionService{})

	form := url.Values{
		"lead_name":    {"Asha"},
		"email":        {"asha@gmail.com"},
		"phone_number": {"123"},
		"password":     {"sup3rsecret"},
		"options":      {"customer"},
	}
	c, _ := newFormContext(t, "/signup", form)

	err := h.Signup(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthHandler_Login_SetsCookieAndRedirects(t *testing.T) {
	sessions := &stubSessionService{
		loginFn: func(_ context.Context, email, password string) (*ports.LoginResult, error) {
			if email != "lin@manager.com" || password != "sup3rsecret" {
				t.Fatalf("unexpected credentials: %s", email)
			}
			return &ports.LoginResult{
				Token:   "signed-token",
				Session: &domain.Session{Name: "Lin", Role: domain.RoleManager},
				Landing: "/login/manager",
			}, nil
		},
	}
	h := NewAuthHandler(&stubAccountService{}, sessions)

	form := url.Values{"email": {"lin@manager.com"}, "password": {"sup3rsecret"}}
	c, rec := newFormContext(t, "/login", form)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login/manager" {
		t.Fatalf("expected manager landing, got %q", loc)
	}

	cookies := rec.Result().Cookies()
	var found bool
	for _, ck := range cookies {
		if ck.Name == middleware.SessionCookie && ck.Value == "signed-token" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected session cookie set, got %+v", cookies)
	}
}

func TestAuthHandler_Login_Failure(t *testing.T) {
	sessions := &stubSessionService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(&stubAccountService{}, sessions)

	form := url.Values{"email": {"ghost@gmail.com"}, "password": {"whatever1"}}
	c, _ := newFormContext(t, "/login", form)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
