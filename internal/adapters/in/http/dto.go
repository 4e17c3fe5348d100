package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FinalCorrectionRequest carries the seller's final weight and piece count.
type FinalCorrectionRequest struct {
	OrderWeight float64 `json:"orderWeight"`
	OrderPiece  int     `json:"orderPiece"`
}

// BatchDispatchRequest carries the ids of final-corrected orders to dispatch.
type BatchDispatchRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// SendOtpRequest identifies the pickup group to issue a code for.
type SendOtpRequest struct {
	OperatorID string `json:"operatorId"`
	JREID      string `json:"jreId"`
}

// VerifyOtpRequest carries the runner-entered code back against a session.
type VerifyOtpRequest struct {
	OperatorID string `json:"operatorId"`
	JREID      string `json:"jreId"`
	OtpID      string `json:"otpId"`
	Code       string `json:"code"`
}

// VerifyOtpResponse reports a successful handover verification.
type VerifyOtpResponse struct {
	Verified bool `json:"verified"`
}

// OrderResponse is the wire form of one order with derived metrics.
type OrderResponse struct {
	ID            string    `json:"id"`
	SellerID      string    `json:"sellerId"`
	OperatorID    string    `json:"operatorId,omitempty"`
	JREID         string    `json:"jreId,omitempty"`
	ProductName   string    `json:"productName"`
	Category      string    `json:"category,omitempty"`
	Specification string    `json:"specification,omitempty"`
	NetWt         float64   `json:"netWt"`
	GrossWt       float64   `json:"grossWt"`
	OrderWeight   float64   `json:"orderWeight,omitempty"`
	OrderPiece    int       `json:"orderPiece,omitempty"`
	Status        string    `json:"status"`
	FineWeight    float64   `json:"fineWeight"`
	TotalMC       float64   `json:"totalMc"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// GroupResponse is the wire form of one pickup group.
type GroupResponse struct {
	GroupKey          string          `json:"groupKey"`
	OperatorID        string          `json:"operatorId"`
	JREID             string          `json:"jreId"`
	JREPrimaryMobile  string          `json:"jrePrimaryMobile,omitempty"`
	JREOperatorNumber string          `json:"jreOperatorNumber,omitempty"`
	TotalItems        int             `json:"totalItems"`
	TotalFineWeight   float64         `json:"totalFineWeight"`
	TotalMC           float64         `json:"totalMc"`
	Orders            []OrderResponse `json:"orders"`
}

// SessionResponse is the wire form of an issued dispatch OTP session.
type SessionResponse struct {
	GroupKey         string  `json:"groupKey"`
	OperatorID       string  `json:"operatorId"`
	JREID            string  `json:"jreId"`
	OtpID            string  `json:"otpId"`
	JREMobile        string  `json:"jreMobile"`
	OrdersCount      int     `json:"ordersCount"`
	TotalPackets     int     `json:"totalPackets"`
	TotalItems       int     `json:"totalItems"`
	TotalGrossWeight float64 `json:"totalGrossWeight"`
}

func toOrderResponse(r queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:            r.ID,
		SellerID:      r.SellerID,
		OperatorID:    r.OperatorID,
		JREID:         r.JREID,
		ProductName:   r.ProductName,
		Category:      r.Category,
		Specification: r.Specification,
		NetWt:         r.NetWt,
		GrossWt:       r.GrossWt,
		OrderWeight:   r.OrderWeight,
		OrderPiece:    r.OrderPiece,
		Status:        r.Status,
		FineWeight:    r.FineWeight,
		TotalMC:       r.TotalMC,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toOrderListResponse(orders []queries.OrderResponse) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, r := range orders {
		response[i] = toOrderResponse(r)
	}
	return response
}

func toGroupListResponse(groups []queries.GroupResponse) []GroupResponse {
	response := make([]GroupResponse, len(groups))
	for i, g := range groups {
		response[i] = GroupResponse{
			GroupKey:          g.GroupKey,
			OperatorID:        g.OperatorID,
			JREID:             g.JREID,
			JREPrimaryMobile:  g.JREPrimaryMobile,
			JREOperatorNumber: g.JREOperatorNumber,
			TotalItems:        g.TotalItems,
			TotalFineWeight:   g.TotalFineWeight,
			TotalMC:           g.TotalMC,
			Orders:            toOrderListResponse(g.Orders),
		}
	}
	return response
}

func toSessionResponse(s commands.DispatchOtpSession) SessionResponse {
	return SessionResponse{
		GroupKey:         s.GroupKey,
		OperatorID:       s.OperatorID,
		JREID:            s.JREID,
		OtpID:            s.OtpID,
		JREMobile:        s.JREMobile,
		OrdersCount:      s.OrdersCount,
		TotalPackets:     s.Summary.TotalPackets,
		TotalItems:       s.Summary.TotalItems,
		TotalGrossWeight: s.Summary.TotalGrossWeight,
	}
}
