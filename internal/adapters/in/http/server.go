// Package http exposes the fulfillment API over echo. Handlers translate
// between wire DTOs and application commands/queries; seller identity arrives
// as the X-Seller-Id header.
package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const sellerHeader = "X-Seller-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	acceptOrderHandler         commands.AcceptOrderCommandHandler
	rejectOrderHandler         commands.RejectOrderCommandHandler
	saveFinalCorrectionHandler commands.SaveFinalCorrectionCommandHandler
	markBatchDispatchedHandler commands.MarkBatchDispatchedCommandHandler
	sendDispatchOtpHandler     commands.SendDispatchOtpCommandHandler
	verifyDispatchOtpHandler   commands.VerifyDispatchOtpCommandHandler

	// Query handlers
	getOrdersByStatusHandler      queries.GetOrdersByStatusQueryHandler
	getAssignedOrderGroupsHandler queries.GetAssignedOrderGroupsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	saveFinalCorrectionHandler commands.SaveFinalCorrectionCommandHandler,
	markBatchDispatchedHandler commands.MarkBatchDispatchedCommandHandler,
	sendDispatchOtpHandler commands.SendDispatchOtpCommandHandler,
	verifyDispatchOtpHandler commands.VerifyDispatchOtpCommandHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getAssignedOrderGroupsHandler queries.GetAssignedOrderGroupsQueryHandler,
) *Server {
	return &Server{
		acceptOrderHandler:            acceptOrderHandler,
		rejectOrderHandler:            rejectOrderHandler,
		saveFinalCorrectionHandler:    saveFinalCorrectionHandler,
		markBatchDispatchedHandler:    markBatchDispatchedHandler,
		sendDispatchOtpHandler:        sendDispatchOtpHandler,
		verifyDispatchOtpHandler:      verifyDispatchOtpHandler,
		getOrdersByStatusHandler:      getOrdersByStatusHandler,
		getAssignedOrderGroupsHandler: getAssignedOrderGroupsHandler,
	}
}

// RegisterRoutes binds all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/final-correction", s.SaveFinalCorrection)
	api.POST("/orders/batch-dispatch", s.MarkBatchDispatched)
	api.GET("/orders", s.GetOrders)
	api.GET("/pickup/groups", s.GetPickupGroups)
	api.POST("/dispatch/otp", s.SendDispatchOtp)
	api.POST("/dispatch/verify", s.VerifyDispatchOtp)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	sellerID, ok := sellerIDFrom(ctx)
	if !ok {
		return missingSellerHeader(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, sellerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	sellerID, ok := sellerIDFrom(ctx)
	if !ok {
		return missingSellerHeader(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, sellerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SaveFinalCorrection handles POST /api/v1/orders/:id/final-correction.
func (s *Server) SaveFinalCorrection(ctx echo.Context) error {
	sellerID, ok := sellerIDFrom(ctx)
	if !ok {
		return missingSellerHeader(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req FinalCorrectionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSaveFinalCorrectionCommand(orderID, sellerID, req.OrderWeight, req.OrderPiece)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.saveFinalCorrectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkBatchDispatched handles POST /api/v1/orders/batch-dispatch.
func (s *Server) MarkBatchDispatched(ctx echo.Context) error {
	sellerID, ok := sellerIDFrom(ctx)
	if !ok {
		return missingSellerHeader(ctx)
	}

	var req BatchDispatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewMarkBatchDispatchedCommand(orderIDs, sellerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.markBatchDispatchedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders?status=S.
func (s *Server) GetOrders(ctx echo.Context) error {
	sellerID, ok := sellerIDFrom(ctx)
	if !ok {
		return missingSellerHeader(ctx)
	}

	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(sellerID, status)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderListResponse(orders))
}

// GetPickupGroups handles GET /api/v1/pickup/groups.
func (s *Server) GetPickupGroups(ctx echo.Context) error {
	sellerID, ok := sellerIDFrom(ctx)
	if !ok {
		return missingSellerHeader(ctx)
	}

	query, err := queries.NewGetAssignedOrderGroupsQuery(sellerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	groups, err := s.getAssignedOrderGroupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toGroupListResponse(groups))
}

// SendDispatchOtp handles POST /api/v1/dispatch/otp.
func (s *Server) SendDispatchOtp(ctx echo.Context) error {
	sellerID, ok := sellerIDFrom(ctx)
	if !ok {
		return missingSellerHeader(ctx)
	}

	var req SendOtpRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSendDispatchOtpCommand(sellerID, req.OperatorID, req.JREID)
	if err != nil {
		return badRequest(ctx, err)
	}

	session, err := s.sendDispatchOtpHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toSessionResponse(session))
}

// VerifyDispatchOtp handles POST /api/v1/dispatch/verify.
func (s *Server) VerifyDispatchOtp(ctx echo.Context) error {
	sellerID, ok := sellerIDFrom(ctx)
	if !ok {
		return missingSellerHeader(ctx)
	}

	var req VerifyOtpRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewVerifyDispatchOtpCommand(
		sellerID, req.OperatorID, req.JREID, req.OtpID, req.Code)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.verifyDispatchOtpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, VerifyOtpResponse{Verified: true})
}

func sellerIDFrom(ctx echo.Context) (string, bool) {
	sellerID := ctx.Request().Header.Get(sellerHeader)
	return sellerID, sellerID != ""
}

func missingSellerHeader(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: sellerHeader + " header is required",
	})
}
