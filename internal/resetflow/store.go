// Package resetflow holds the state of in-progress password reset flows.
// One flow exists per email; it lives in Redis so any API instance can serve
// any step, and it disappears on its own when the TTL runs out.
package resetflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Step is the wizard position: email entry, code entry, new password.
type Step int

const (
	StepEmailEntry    Step = 1
	StepOTPEntry      Step = 2
	StepPasswordReset Step = 3
)

// MaxAttempts caps OTP verification tries per flow.
const MaxAttempts = 3

// SessionTTL bounds the whole flow's lifetime. Distinct from the advisory
// 5-minute code expiry, which is display-only.
const SessionTTL = 15 * time.Minute

// OTPValidity is the advertised code lifetime. Verification does not reject
// on it locally; it is surfaced for display.
const OTPValidity = 5 * time.Minute

// ErrNotFound is returned when no flow exists for the email.
var ErrNotFound = errors.New("no reset flow for this email")

// Session is one in-progress reset flow.
type Session struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Step         Step      `json:"step"`
	Code         string    `json:"code"`
	AttemptsLeft int       `json:"attemptsLeft"`
	IssuedAt     time.Time `json:"issuedAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// NewSession builds a step-2 session for a freshly issued code.
func NewSession(email, code string, now time.Time) *Session {
	return &Session{
		ID:           uuid.NewString(),
		Email:        email,
		Step:         StepOTPEntry,
		Code:         code,
		AttemptsLeft: MaxAttempts,
		IssuedAt:     now,
		ExpiresAt:    now.Add(OTPValidity),
	}
}

// Store persists reset flow sessions and the per-email in-flight marker that
// serializes submissions for the same flow.
type Store interface {
	Get(ctx context.Context, email string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, email string) error

	// TryBegin marks the flow as having a request in flight. Returns false
	// when another request already holds the marker.
	TryBegin(ctx context.Context, email string) (bool, error)
	End(ctx context.Context, email string)
}

// inFlightTTL caps how long a crashed request can block the flow.
const inFlightTTL = 30 * time.Second

// RedisStore keeps sessions in Redis under resetflow:<email>.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore uses the package-level client initialized by InitRedis.
func NewRedisStore() *RedisStore {
	return &RedisStore{rdb: GetRedisClient()}
}

func sessionKey(email string) string  { return fmt.Sprintf("resetflow:%s", email) }
func inFlightKey(email string) string { return fmt.Sprintf("resetflow:%s:inflight", email) }

func (s *RedisStore) Get(ctx context.Context, email string) (*Session, error) {
	if s.rdb == nil {
		return nil, fmt.Errorf("Redis client not available")
	}
	data, err := s.rdb.Get(ctx, sessionKey(email)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reset session: %w", err)
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reset session: %w", err)
	}
	return &session, nil
}

func (s *RedisStore) Save(ctx context.Context, session *Session) error {
	if s.rdb == nil {
		return fmt.Errorf("Redis client not available")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal reset session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(session.Email), data, SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save reset session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, email string) error {
	if s.rdb == nil {
		return fmt.Errorf("Redis client not available")
	}
	if err := s.rdb.Del(ctx, sessionKey(email)).Err(); err != nil {
		return fmt.Errorf("failed to delete reset session: %w", err)
	}
	return nil
}

func (s *RedisStore) TryBegin(ctx context.Context, email string) (bool, error) {
	if s.rdb == nil {
		return false, fmt.Errorf("Redis client not available")
	}
	ok, err := s.rdb.SetNX(ctx, inFlightKey(email), "1", inFlightTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire in-flight marker: %w", err)
	}
	return ok, nil
}

func (s *RedisStore) End(ctx context.Context, email string) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(ctx, inFlightKey(email))
}
