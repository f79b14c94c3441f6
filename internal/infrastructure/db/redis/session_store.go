package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aurasalon/salon-system/internal/core/domain"
)

// SessionStore keeps session records and their one-shot flash messages in
// Redis. Key format: session:<sid> and flash:<sid>; both expire with the
// session TTL, and logout deletes both.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, sid string, sess *domain.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sid), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Find(ctx context.Context, sid string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(sid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrInvalidSession
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, sessionKey(sid), flashKey(sid)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// SetFlash stores the one-shot message. The flash inherits the session TTL so
// it cannot outlive its session.
func (s *SessionStore) SetFlash(ctx context.Context, sid, message string) error {
	ttl, err := s.client.TTL(ctx, sessionKey(sid)).Result()
	if err != nil || ttl <= 0 {
		ttl = time.Hour
	}
	if err := s.client.Set(ctx, flashKey(sid), message, ttl).Err(); err != nil {
		return fmt.Errorf("set flash: %w", err)
	}
	return nil
}

// TakeFlash returns the pending message and removes it in one round trip.
func (s *SessionStore) TakeFlash(ctx context.Context, sid string) (string, error) {
	msg, err := s.client.GetDel(ctx, flashKey(sid)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("take flash: %w", err)
	}
	return msg, nil
}

func sessionKey(sid string) string { return "session:" + sid }
func flashKey(sid string) string   { return "flash:" + sid }
