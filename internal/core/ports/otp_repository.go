package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/otp"
)

// OtpRepository defines the persistence contract for one-time dispatch
// credentials.
type OtpRepository interface {
	// Put stores a record under its document id, replacing any previous
	// record for the same id. Issuance is last-write-wins.
	Put(ctx context.Context, record *otp.Record) error

	// Update persists changes to an existing record.
	Update(ctx context.Context, record *otp.Record) error

	// Get retrieves a record by its document id.
	Get(ctx context.Context, id string) (*otp.Record, error)

	// Delete removes a record by its document id.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes all records whose expiry instant is before now.
	// Returns the number of records removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
