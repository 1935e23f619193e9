package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"anoa.com/clubrank/pkg/apperror"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Data is what the server keeps about a logged-in user. The cookie only
// ever carries the opaque session ID.
type Data struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Store interface {
	Create(ctx context.Context, data Data, ttl time.Duration) (string, error)
	Get(ctx context.Context, id string) (*Data, error)
	Delete(ctx context.Context, id string) error
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore keeps sessions server-side in redis with a TTL matching
// the session lifetime.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Create(ctx context.Context, data Data, ttl time.Duration) (string, error) {
	if s.client == nil {
		return "", apperror.ErrInternal
	}

	id, err := newSessionID()
	if err != nil {
		return "", err
	}

	data.ExpiresAt = time.Now().UTC().Add(ttl)
	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, keyPrefix+id, payload, ttl).Err(); err != nil {
		return "", err
	}

	return id, nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*Data, error) {
	if s.client == nil {
		return nil, apperror.ErrUnauthorized
	}

	payload, err := s.client.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}

	var data Data
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, apperror.ErrUnauthorized
	}

	// redis TTL already expires sessions; the timestamp check covers
	// clients replaying a dump or a store without eviction.
	if time.Now().UTC().After(data.ExpiresAt) {
		_ = s.Delete(ctx, id)
		return nil, apperror.ErrUnauthorized
	}

	return &data, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if s.client == nil {
		return nil
	}
	return s.client.Del(ctx, keyPrefix+id).Err()
}

func newSessionID() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
