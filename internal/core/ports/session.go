package ports

import (
	"context"
	"time"

	"github.com/aurasalon/salon-system/internal/core/domain"
)

// SessionStore is the server-side session storage (Redis). Sessions are keyed
// by an opaque ID; flash messages are one-shot per session.
type SessionStore interface {
	Save(ctx context.Context, sid string, sess *domain.Session, ttl time.Duration) error
	Find(ctx context.Context, sid string) (*domain.Session, error)
	Delete(ctx context.Context, sid string) error
	SetFlash(ctx context.Context, sid, message string) error
	TakeFlash(ctx context.Context, sid string) (string, error)
}

// LoginResult is what a successful login hands back to the transport layer.
type LoginResult struct {
	Token   string
	Session *domain.Session
	// Landing is the role-specific dashboard path to redirect to.
	Landing string
}

type SessionService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	// Resolve validates a cookie token and loads the live session behind it.
	Resolve(ctx context.Context, token string) (sid string, sess *domain.Session, err error)
	Flash(ctx context.Context, sid, message string)
	TakeFlash(ctx context.Context, sid string) string
}
