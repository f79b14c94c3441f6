package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/aurasalon/salon-system/internal/core/domain"
	"github.com/aurasalon/salon-system/internal/core/ports"
)

// Landing paths per role, used for the post-login redirect.
var roleLanding = map[domain.Role]string{
	domain.RoleAdmin:    "/login/admin",
	domain.RoleManager:  "/login/manager",
	domain.RoleCustomer: "/login/user",
}

// SessionService establishes and revokes browser sessions. The session record
// lives server-side; the cookie carries only an opaque session ID wrapped in a
// signed token, so logout is an immediate server-side revocation.
type SessionService struct {
	accounts ports.AccountService
	store    ports.SessionStore
	secret   []byte
	ttl      time.Duration
	log      zerolog.Logger
}

func NewSessionService(accounts ports.AccountService, store ports.SessionStore, secret string, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{accounts: accounts, store: store, secret: []byte(secret), ttl: ttl, log: log}
}

// Login authenticates the credentials and creates the session.
func (s *SessionService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	account, err := s.accounts.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess := &domain.Session{
		Name:  account.Name,
		Email: account.Email,
		Phone: account.Phone,
		Role:  account.Role,
	}

	sid, err := newSessionID()
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sid, sess, s.ttl); err != nil {
		return nil, err
	}

	token, err := s.signToken(sid)
	if err != nil {
		_ = s.store.Delete(ctx, sid)
		return nil, err
	}

	s.log.Info().Str("email", account.Email).Str("role", string(account.Role)).Msg("session established")
	return &ports.LoginResult{Token: token, Session: sess, Landing: roleLanding[account.Role]}, nil
}

// Logout revokes the session behind the cookie token. A token that no longer
// resolves is treated as already logged out.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	sid, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	return s.store.Delete(ctx, sid)
}

// Resolve validates the cookie token and loads the live session.
func (s *SessionService) Resolve(ctx context.Context, token string) (string, *domain.Session, error) {
	sid, err := s.parseToken(token)
	if err != nil {
		return "", nil, domain.ErrInvalidSession
	}
	sess, err := s.store.Find(ctx, sid)
	if err != nil {
		return "", nil, domain.ErrInvalidSession
	}
	return sid, sess, nil
}

// Flash stores a one-shot message for the session. Failures only cost the
// message, never the operation that produced it.
func (s *SessionService) Flash(ctx context.Context, sid, message string) {
	if sid == "" {
		return
	}
	if err := s.store.SetFlash(ctx, sid, message); err != nil {
		s.log.Warn().Err(err).Msg("failed to set flash message")
	}
}

// TakeFlash returns and clears the pending flash message, if any.
func (s *SessionService) TakeFlash(ctx context.Context, sid string) string {
	if sid == "" {
		return ""
	}
	msg, err := s.store.TakeFlash(ctx, sid)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read flash message")
		return ""
	}
	return msg
}

func (s *SessionService) signToken(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *SessionService) parseToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidSession
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", domain.ErrInvalidSession
	}
	return sid, nil
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
