// Package otprepo persists one-time dispatch credentials. Records are keyed
// by their document id ("+91<mobile>_<USE_CASE>") and carry the dispatch
// summary snapshot captured at issuance.
package otprepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/otp"
)

// OtpDTO represents the database structure for persisting OTP records.
type OtpDTO struct {
	ID          string `gorm:"primaryKey"`
	Mobile      string
	OTPHash     string `gorm:"column:otp_hash"`
	UseCase     string
	Status      string
	CreatedAt   time.Time
	ExpiresAt   time.Time `gorm:"index"`
	Message     string
	SentByAdmin bool

	Details DispatchDetailsDTO `gorm:"embedded;embeddedPrefix:details_"`

	VerifiedAt *time.Time
	VerifiedBy string
}

// TableName specifies the database table name for OTP records.
func (OtpDTO) TableName() string {
	return "otps"
}

// DispatchDetailsDTO is the embedded group summary snapshot.
type DispatchDetailsDTO struct {
	GroupKey     string
	OperatorID   string
	JREID        string `gorm:"column:jre_id"`
	OrdersCount  int
	TotalItems   int
	TotalWeight  float64
	TotalPackets int
}

// fromDomain converts an OTP record to its database representation.
func fromDomain(record *otp.Record) OtpDTO {
	s := record.Snapshot()

	return OtpDTO{
		ID:          s.ID,
		Mobile:      s.Mobile.Digits(),
		OTPHash:     s.OTPHash,
		UseCase:     s.UseCase,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		ExpiresAt:   s.ExpiresAt,
		Message:     s.Message,
		SentByAdmin: s.SentByAdmin,
		Details: DispatchDetailsDTO{
			GroupKey:     s.DispatchDetails.GroupKey,
			OperatorID:   s.DispatchDetails.OperatorID,
			JREID:        s.DispatchDetails.JREID,
			OrdersCount:  s.DispatchDetails.OrdersCount,
			TotalItems:   s.DispatchDetails.TotalItems,
			TotalWeight:  s.DispatchDetails.TotalWeight,
			TotalPackets: s.DispatchDetails.TotalPackets,
		},
		VerifiedAt: s.VerifiedAt,
		VerifiedBy: s.VerifiedBy,
	}
}

// toDomain converts a database row to an OTP record via RestoreRecord.
func toDomain(dto OtpDTO) (*otp.Record, error) {
	mobile, err := kernel.NewMobile(dto.Mobile)
	if err != nil {
		return nil, err
	}

	return otp.RestoreRecord(otp.Snapshot{
		ID:          dto.ID,
		Mobile:      mobile,
		OTPHash:     dto.OTPHash,
		UseCase:     dto.UseCase,
		Status:      dto.Status,
		CreatedAt:   dto.CreatedAt,
		ExpiresAt:   dto.ExpiresAt,
		Message:     dto.Message,
		SentByAdmin: dto.SentByAdmin,
		DispatchDetails: otp.DispatchDetails{
			GroupKey:     dto.Details.GroupKey,
			OperatorID:   dto.Details.OperatorID,
			JREID:        dto.Details.JREID,
			OrdersCount:  dto.Details.OrdersCount,
			TotalItems:   dto.Details.TotalItems,
			TotalWeight:  dto.Details.TotalWeight,
			TotalPackets: dto.Details.TotalPackets,
		},
		VerifiedAt: dto.VerifiedAt,
		VerifiedBy: dto.VerifiedBy,
	})
}
