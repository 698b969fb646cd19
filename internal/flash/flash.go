// Package flash implements one-shot notification messages that survive a
// redirect. A handler writes a message before redirecting; the next rendered
// page reads and clears it exactly once.
//
// Messages live in Redis under a key derived from a random client cookie,
// so flash state is scoped to a single browser and never shared between
// clients. Abandoned messages expire after a short TTL.
package flash

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Message categories. A page renders errors and successes differently.
const (
	CategoryError   = "error"
	CategorySuccess = "success"
)

// cookieName identifies the browser's flash bucket in Redis.
const cookieName = "vidjot_flash"

// keyPrefix is the Redis key prefix for flash buckets.
const keyPrefix = "flash:"

// bucketTTL is how long an unread flash survives before Redis expires it.
const bucketTTL = 10 * time.Minute

// idBytes is the number of random bytes in a flash bucket ID.
const idBytes = 16

// Store reads and writes flash messages in Redis.
type Store struct {
	rdb *redis.Client
}

// NewStore creates a flash store backed by the given Redis client.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Set records a message under the given category for the current browser.
// The flash cookie is created on first write. A later Set in the same
// category overwrites the earlier message; handlers write at most one
// message per request.
func (s *Store) Set(c echo.Context, category, message string) error {
	id := bucketID(c)
	if id == "" {
		var err error
		id, err = newBucketID()
		if err != nil {
			return fmt.Errorf("generating flash id: %w", err)
		}
		setBucketCookie(c, id)
	}

	ctx := c.Request().Context()
	key := keyPrefix + id

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, category, message)
	pipe.Expire(ctx, key, bucketTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("storing flash message: %w", err)
	}
	return nil
}

// Consume returns the pending error and success messages for the current
// browser and deletes them. A second Consume for the same request cycle
// returns empty strings -- the read-once contract.
func (s *Store) Consume(c echo.Context) (errMsg, successMsg string, err error) {
	id := bucketID(c)
	if id == "" {
		return "", "", nil
	}

	ctx := c.Request().Context()
	key := keyPrefix + id

	values, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return "", "", fmt.Errorf("reading flash messages: %w", err)
	}
	if len(values) == 0 {
		return "", "", nil
	}

	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return "", "", fmt.Errorf("clearing flash messages: %w", err)
	}

	return values[CategoryError], values[CategorySuccess], nil
}

// bucketID reads the flash bucket ID from the request cookie, or "".
func bucketID(c echo.Context) string {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// newBucketID creates a cryptographically random hex-encoded bucket ID.
func newBucketID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// setBucketCookie attaches the flash bucket cookie to the response and to
// the current request, so a Consume later in the same request sees it.
func setBucketCookie(c echo.Context, id string) {
	cookie := &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)
	c.Request().AddCookie(cookie)
}
