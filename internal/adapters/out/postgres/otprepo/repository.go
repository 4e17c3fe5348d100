package otprepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/otp"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOtpRepository implements OtpRepository using GORM.
type GormOtpRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOtpRepository creates a new GORM OTP repository.
func NewGormOtpRepository(db *gorm.DB, tracker aggregateTracker) *GormOtpRepository {
	return &GormOtpRepository{
		db:      db,
		tracker: tracker,
	}
}

// Put stores a record under its document id. An existing record for the same
// id is replaced wholesale: issuance is last-write-wins, with no
// compare-and-swap on the previous record's state.
func (r *GormOtpRepository) Put(ctx context.Context, record *otp.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Update saves an existing record to the database.
func (r *GormOtpRepository) Update(ctx context.Context, record *otp.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).Model(&OtpDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("otp", record.ID())
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get retrieves a record by its document id.
func (r *GormOtpRepository) Get(ctx context.Context, id string) (*otp.Record, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("otpId")
	}

	var dto OtpDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("otp", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a record by its document id.
func (r *GormOtpRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("otpId")
	}

	return r.db.WithContext(ctx).Delete(&OtpDTO{}, "id = ?", id).Error
}

// DeleteExpired removes all records whose expiry instant is before now.
func (r *GormOtpRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&OtpDTO{}, "expires_at < ?", now)
	return result.RowsAffected, result.Error
}
