// Package redis caches resolved runner contacts. Entries expire on their own,
// so a stale mobile never outlives the configured TTL and a cold cache simply
// falls through to the directory.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/jre"

	"github.com/redis/go-redis/v9"
)

const contactKeyPrefix = "fulfillment:jre:contact:"

// NewClient creates a Redis client for the given address.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// ContactCache stores jre.Contact projections as JSON values keyed by runner
// id. Negative lookups are cached too, so unknown runners do not hammer the
// directory.
type ContactCache struct {
	client *redis.Client
}

// NewContactCache creates a cache over an existing Redis client.
func NewContactCache(client *redis.Client) *ContactCache {
	return &ContactCache{client: client}
}

// Get returns the cached contact for the runner id. The second return value
// reports whether an entry was present; a missing key is not an error.
func (c *ContactCache) Get(ctx context.Context, jreID string) (jre.Contact, bool, error) {
	data, err := c.client.Get(ctx, contactKeyPrefix+jreID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return jre.Contact{}, false, nil
		}
		return jre.Contact{}, false, fmt.Errorf("get contact %s: %w", jreID, err)
	}

	var contact jre.Contact
	if err := json.Unmarshal(data, &contact); err != nil {
		return jre.Contact{}, false, fmt.Errorf("decode contact %s: %w", jreID, err)
	}
	return contact, true, nil
}

// Put stores the contact under the runner id for the given TTL.
func (c *ContactCache) Put(ctx context.Context, contact jre.Contact, ttl time.Duration) error {
	data, err := json.Marshal(contact)
	if err != nil {
		return fmt.Errorf("encode contact %s: %w", contact.JREID, err)
	}

	if err := c.client.Set(ctx, contactKeyPrefix+contact.JREID, data, ttl).Err(); err != nil {
		return fmt.Errorf("put contact %s: %w", contact.JREID, err)
	}
	return nil
}
