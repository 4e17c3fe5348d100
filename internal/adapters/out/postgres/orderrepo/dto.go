// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// VariantsJSON persists the ordered size/quantity selections as a jsonb
// column, preserving slice order.
type VariantsJSON []order.Variant

// Value implements driver.Valuer.
func (v VariantsJSON) Value() (driver.Value, error) {
	if v == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v)
}

// Scan implements sql.Scanner.
func (v *VariantsJSON) Scan(value any) error {
	if value == nil {
		*v = nil
		return nil
	}

	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	default:
		return fmt.Errorf("cannot scan %T into VariantsJSON", value)
	}
}

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the hot queries: a seller's orders by status and the assigned
// set behind the pickup group view.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID   string    `gorm:"index:idx_orders_seller_status"`
	OperatorID string
	JREID      string `gorm:"column:jre_id"`

	ProductName   string
	Category      string
	ProductSource string
	Specification string

	NetWt                 float64
	GrossWt               float64
	Purity                float64
	Wastage               float64
	SpecificationMC       float64 `gorm:"column:specification_mc"`
	SpecificationGramRate float64
	SpecificationWt       float64
	SetMc                 float64
	NetGramMc             float64

	SelectedVariants VariantsJSON `gorm:"type:jsonb"`
	OrderWeight      float64
	OrderPiece       int

	Status int `gorm:"column:order_status;index:idx_orders_seller_status"`

	AssignedAt          *time.Time
	PickedUpAt          *time.Time
	WarehouseReceivedAt *time.Time
	DispatchedAt        *time.Time
	DeliveredAt         *time.Time
	BuyerPaidAt         *time.Time
	PaymentDispatchedAt *time.Time
	PaymentToSellerAt   *time.Time
	PaymentCompletedAt  *time.Time

	PickedUpBy   string
	VerifiedBy   string
	OTPVerified  bool   `gorm:"column:otp_verified"`
	OTPReference string `gorm:"column:otp_reference"`

	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	s := aggregate.Snapshot()

	return OrderDTO{
		ID:         s.ID.Bytes(),
		SellerID:   s.SellerID,
		OperatorID: s.OperatorID,
		JREID:      s.JREID,

		ProductName:   s.Details.ProductName,
		Category:      s.Details.Category,
		ProductSource: s.Details.ProductSource,
		Specification: s.Details.Specification,

		NetWt:                 s.Specs.NetWt,
		GrossWt:               s.Specs.GrossWt,
		Purity:                s.Specs.Purity,
		Wastage:               s.Specs.Wastage,
		SpecificationMC:       s.Specs.SpecificationMC,
		SpecificationGramRate: s.Specs.SpecificationGramRate,
		SpecificationWt:       s.Specs.SpecificationWt,
		SetMc:                 s.Specs.SetMc,
		NetGramMc:             s.Specs.NetGramMc,

		SelectedVariants: VariantsJSON(s.Variants),
		OrderWeight:      s.OrderWeight,
		OrderPiece:       s.OrderPiece,

		Status: int(s.Status),

		AssignedAt:          s.Stages.AssignedAt,
		PickedUpAt:          s.Stages.PickedUpAt,
		WarehouseReceivedAt: s.Stages.WarehouseReceivedAt,
		DispatchedAt:        s.Stages.DispatchedAt,
		DeliveredAt:         s.Stages.DeliveredAt,
		BuyerPaidAt:         s.Stages.BuyerPaidAt,
		PaymentDispatchedAt: s.Stages.PaymentDispatchedAt,
		PaymentToSellerAt:   s.Stages.PaymentToSellerAt,
		PaymentCompletedAt:  s.Stages.PaymentCompletedAt,

		PickedUpBy:   s.PickedUpBy,
		VerifiedBy:   s.VerifiedBy,
		OTPVerified:  s.OTPVerified,
		OTPReference: s.OTPReference,

		UpdatedAt: s.UpdatedAt,
	}
}

// toDomain converts a database row to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:         id,
		SellerID:   dto.SellerID,
		OperatorID: dto.OperatorID,
		JREID:      dto.JREID,
		Details: order.Details{
			ProductName:   dto.ProductName,
			Category:      dto.Category,
			ProductSource: dto.ProductSource,
			Specification: dto.Specification,
		},
		Specs: order.Specs{
			NetWt:                 dto.NetWt,
			GrossWt:               dto.GrossWt,
			Purity:                dto.Purity,
			Wastage:               dto.Wastage,
			SpecificationMC:       dto.SpecificationMC,
			SpecificationGramRate: dto.SpecificationGramRate,
			SpecificationWt:       dto.SpecificationWt,
			SetMc:                 dto.SetMc,
			NetGramMc:             dto.NetGramMc,
		},
		Variants:    []order.Variant(dto.SelectedVariants),
		OrderWeight: dto.OrderWeight,
		OrderPiece:  dto.OrderPiece,
		Status:      order.Status(dto.Status),
		Stages: order.StageTimes{
			AssignedAt:          dto.AssignedAt,
			PickedUpAt:          dto.PickedUpAt,
			WarehouseReceivedAt: dto.WarehouseReceivedAt,
			DispatchedAt:        dto.DispatchedAt,
			DeliveredAt:         dto.DeliveredAt,
			BuyerPaidAt:         dto.BuyerPaidAt,
			PaymentDispatchedAt: dto.PaymentDispatchedAt,
			PaymentToSellerAt:   dto.PaymentToSellerAt,
			PaymentCompletedAt:  dto.PaymentCompletedAt,
		},
		PickedUpBy:   dto.PickedUpBy,
		VerifiedBy:   dto.VerifiedBy,
		OTPVerified:  dto.OTPVerified,
		OTPReference: dto.OTPReference,
		UpdatedAt:    dto.UpdatedAt,
	})
}
