// Package queries contains the read side of the CQRS split: status-filtered
// order lists and the assigned-order group view with per-group metrics and
// runner contacts.
package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/jre"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ContactResolver resolves runner ids to contact details through a shared
// cache. Misses hit the directory once; both hits and misses are cached, so
// a runner that is missing from the directory is not re-looked-up on every
// request. Concurrent resolves for the same id are not deduplicated beyond
// the cache, which is harmless since directory reads are idempotent.
type ContactResolver struct {
	directory ports.JREDirectory
	cache     ports.ContactCache
	ttl       time.Duration
}

// NewContactResolver creates a resolver over the given directory and cache.
func NewContactResolver(directory ports.JREDirectory, cache ports.ContactCache, ttl time.Duration) *ContactResolver {
	return &ContactResolver{
		directory: directory,
		cache:     cache,
		ttl:       ttl,
	}
}

// Resolve returns the contact for a runner id. Empty and sentinel ids
// resolve to an empty not-found contact without touching the cache or the
// directory. Directory lookup failures produce a negative cache entry
// rather than an error, matching the read-view's tolerance for missing
// registrations.
func (r *ContactResolver) Resolve(ctx context.Context, jreID string) (jre.Contact, error) {
	if jreID == "" || jreID == jre.NoJRE {
		return jre.Contact{JREID: jreID}, nil
	}

	if cached, hit, err := r.cache.Get(ctx, jreID); err == nil && hit {
		return cached, nil
	} else if err != nil {
		slog.Warn("contact cache read failed", "jreId", jreID, "error", err)
	}

	contact := jre.Contact{JREID: jreID}
	registration, err := r.directory.GetRegistration(ctx, jreID)
	switch {
	case err == nil:
		contact.Mobile = registration.PrimaryMobile.Digits()
		contact.OperatorNumber = registration.OperatorNumber
		contact.Found = true
	case errors.Is(err, errs.ErrObjectNotFound):
		// negative entry
	default:
		slog.Warn("jre directory lookup failed", "jreId", jreID, "error", err)
	}

	if err := r.cache.Put(ctx, contact, r.ttl); err != nil {
		slog.Warn("contact cache write failed", "jreId", jreID, "error", err)
	}

	return contact, nil
}
