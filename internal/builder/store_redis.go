package builder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "builder:session:"

	// Sessions outlive short breaks but not abandonment.
	defaultSessionTTL = 7 * 24 * time.Hour
)

// RedisStore persists sessions in Redis as JSON values with a TTL. Every
// write refreshes the TTL, so only idle sessions expire.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore constructs a RedisStore. A zero ttl selects the default.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, resumeID string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+resumeID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (s *RedisStore) Put(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.ResumeID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, resumeID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+resumeID).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
