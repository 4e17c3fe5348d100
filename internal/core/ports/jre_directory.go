package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/jre"
)

// JREDirectory reads runner registrations maintained by the external
// onboarding system.
type JREDirectory interface {
	// GetRegistration retrieves a runner's directory entry by id.
	// Returns errs.ErrObjectNotFound when no registration exists.
	GetRegistration(ctx context.Context, jreID string) (jre.Registration, error)
}

// ContactCache is a shared read-through cache for resolved runner contacts.
// Negative results are cached too, so a runner that is missing from the
// directory does not get looked up on every request.
type ContactCache interface {
	// Get retrieves a cached contact. The second return reports a cache hit;
	// a hit may carry a negative entry (Contact.Found == false).
	Get(ctx context.Context, jreID string) (jre.Contact, bool, error)

	// Put stores a contact under the runner id with the given TTL.
	Put(ctx context.Context, contact jre.Contact, ttl time.Duration) error
}
