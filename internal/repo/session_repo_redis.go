package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type sessionRepoRedis struct {
	rdb *redis.Client
}

func NewSessionRepoRedis(rdb *redis.Client) SessionRepo {
	return &sessionRepoRedis{rdb: rdb}
}

type sessionValue struct {
	UserID    string `json:"user_id"`
	ExpiresAt string `json:"expires_at"` // RFC3339
}

func (s *sessionRepoRedis) key(tok string) string { return "sess:" + tok }

func (s *sessionRepoRedis) Create(ctx context.Context, token string, userID string, expiresRFC3339 string) error {
	// TTL mirrors the stored expiry; the payload keeps it for explicit checks.
	// A zero expiration would store the key without any TTL, so a session
	// that is already expired is rejected rather than leaked into Redis.
	exp, err := time.Parse(time.RFC3339, expiresRFC3339)
	if err != nil { return err }
	ttl := time.Until(exp)
	if ttl <= 0 { return errors.New("session already expired") }
	val, _ := json.Marshal(sessionValue{UserID: userID, ExpiresAt: exp.UTC().Format(time.RFC3339)})
	return s.rdb.Set(ctx, s.key(token), val, ttl).Err()
}

func (s *sessionRepoRedis) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, s.key(token)).Err()
}

func (s *sessionRepoRedis) Lookup(ctx context.Context, token string) (string, string, error) {
	v, err := s.rdb.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) { return "", "", ErrNotFound }
	if err != nil { return "", "", err }
	var sv sessionValue
	if err := json.Unmarshal([]byte(v), &sv); err != nil { return "", "", err }
	return sv.UserID, sv.ExpiresAt, nil
}
