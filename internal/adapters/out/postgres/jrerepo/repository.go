// Package jrerepo reads the runner registration directory maintained by the
// external onboarding system. The table is never written by this service.
package jrerepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/jre"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// JREDTO represents a row of the runner registration directory.
type JREDTO struct {
	JREID          string `gorm:"column:jre_id;primaryKey"`
	PrimaryMobile  string
	OperatorNumber string
	VehicleNumber  string
}

// TableName specifies the database table name for runner registrations.
func (JREDTO) TableName() string {
	return "jreregistrations"
}

// GormJREDirectory implements JREDirectory using GORM.
type GormJREDirectory struct {
	db *gorm.DB
}

// NewGormJREDirectory creates a read-only directory over the registrations
// table.
func NewGormJREDirectory(db *gorm.DB) *GormJREDirectory {
	return &GormJREDirectory{db: db}
}

// GetRegistration retrieves a runner's directory entry by id.
func (d *GormJREDirectory) GetRegistration(ctx context.Context, jreID string) (jre.Registration, error) {
	if jreID == "" {
		return jre.Registration{}, errs.NewValueIsRequiredError("jreId")
	}

	var dto JREDTO
	if err := d.db.WithContext(ctx).First(&dto, "jre_id = ?", jreID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jre.Registration{}, errs.NewObjectNotFoundError("jreId", jreID)
		}
		return jre.Registration{}, err
	}

	mobile, err := kernel.NewMobile(dto.PrimaryMobile)
	if err != nil {
		return jre.Registration{}, err
	}

	return jre.NewRegistration(dto.JREID, mobile, dto.OperatorNumber, dto.VehicleNumber)
}
