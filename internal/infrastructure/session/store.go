// Package session holds the gateway-side session state: one remote API token
// per browser session, cached in memory in front of redis. Redis plays the
// role the browser's protected storage played in the old client.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:token:"

type ctxKey struct{}

// WithID attaches a gateway session id to ctx; the remote adapter resolves
// the bearer token from it on every call.
func WithID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sid)
}

func IDFrom(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(ctxKey{}).(string)
	return sid, ok && sid != ""
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration

	mu    sync.RWMutex
	cache map[string]string
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl, cache: make(map[string]string)}
}

// Token implements remote.TokenSource: memory first, then redis, caching on
// the way back. A missing session yields ("", nil); expiry is not checked
// here (see Valid).
func (s *Store) Token(ctx context.Context) (string, error) {
	sid, ok := IDFrom(ctx)
	if !ok {
		return "", nil
	}

	s.mu.RLock()
	tok, hit := s.cache[sid]
	s.mu.RUnlock()
	if hit && tok != "" {
		return tok, nil
	}

	tok, err := s.rdb.Get(ctx, keyPrefix+sid).Result()
	if err == redis.Nil || tok == "" {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.cache[sid] = tok
	s.mu.Unlock()
	return tok, nil
}

func (s *Store) Save(ctx context.Context, sid, token string) error {
	if err := s.rdb.Set(ctx, keyPrefix+sid, token, s.ttl).Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.cache[sid] = token
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(ctx context.Context, sid string) error {
	s.mu.Lock()
	delete(s.cache, sid)
	s.mu.Unlock()
	return s.rdb.Del(ctx, keyPrefix+sid).Err()
}
