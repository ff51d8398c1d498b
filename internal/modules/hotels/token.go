// README: Credential cache for the provider bearer token (in-memory and Redis backed).
package hotels

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// expirySkew is how long before the recorded expiry a token stops being reused.
const expirySkew = 60 * time.Second

// defaultTokenLifetime applies when the provider omits expires_in.
const defaultTokenLifetime = 1800 * time.Second

// Credential is a bearer token with its absolute expiry instant.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// IssueFunc performs one client-credentials exchange.
type IssueFunc func(ctx context.Context) (Credential, error)

// CredentialCache hands out a valid bearer token, refreshing it when absent or
// within expirySkew of expiry.
type CredentialCache interface {
	GetOrRefresh(ctx context.Context) (string, error)
}

// MemoryCredentialCache is the process-lifetime cache. Concurrent refreshes are
// safe but not deduplicated: racing requests each run the exchange and the last
// write wins, which is acceptable at this call volume.
type MemoryCredentialCache struct {
	issue IssueFunc

	mu   sync.Mutex
	cred Credential

	now func() time.Time
}

// NewMemoryCredentialCache returns an empty cache that obtains tokens via issue.
func NewMemoryCredentialCache(issue IssueFunc) *MemoryCredentialCache {
	return &MemoryCredentialCache{issue: issue, now: time.Now}
}

func (c *MemoryCredentialCache) GetOrRefresh(ctx context.Context) (string, error) {
	c.mu.Lock()
	cred := c.cred
	now := c.now()
	c.mu.Unlock()

	if cred.Token != "" && now.Before(cred.ExpiresAt.Add(-expirySkew)) {
		return cred.Token, nil
	}

	// Exchange runs outside the lock.
	fresh, err := c.issue(ctx)
	if err != nil {
		return "", err
	}
	c.mu.Lock()
	c.cred = fresh
	c.mu.Unlock()
	return fresh.Token, nil
}

// RedisCredentialCache shares one bearer token across service instances. The key
// TTL already accounts for expirySkew, so a hit is always a usable token.
type RedisCredentialCache struct {
	rdb   *redis.Client
	issue IssueFunc
	key   string
}

const redisTokenKey = "hotels:amadeus:token"

// NewRedisCredentialCache returns a cache storing the token under a fixed key.
func NewRedisCredentialCache(rdb *redis.Client, issue IssueFunc) *RedisCredentialCache {
	return &RedisCredentialCache{rdb: rdb, issue: issue, key: redisTokenKey}
}

func (c *RedisCredentialCache) GetOrRefresh(ctx context.Context) (string, error) {
	token, err := c.rdb.Get(ctx, c.key).Result()
	if err == nil && token != "" {
		return token, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}

	fresh, issueErr := c.issue(ctx)
	if issueErr != nil {
		return "", issueErr
	}
	ttl := time.Until(fresh.ExpiresAt) - expirySkew
	if ttl > 0 {
		if setErr := c.rdb.Set(ctx, c.key, fresh.Token, ttl).Err(); setErr != nil {
			return "", setErr
		}
	}
	return fresh.Token, nil
}
