// Package http exposes the portal API over echo: order submission,
// price quoting, the OTP login flow and the session-protected admin
// order history.
package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"nexye/internal/core/application/usecases/commands"
	"nexye/internal/core/application/usecases/queries"
	"nexye/internal/pkg/errs"
	"nexye/internal/pkg/session"
)

// SessionVerifier checks the bearer token guarding admin routes.
type SessionVerifier interface {
	Verify(token string) (*session.Claims, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler commands.SubmitOrderCommandHandler
	sendOtpHandler     commands.SendOtpCommandHandler
	verifyOtpHandler   commands.VerifyOtpCommandHandler

	// Query handlers
	getOrdersHandler      queries.GetOrdersQueryHandler
	getPriceHandler       queries.GetPriceQueryHandler
	listPickupLocsHandler queries.ListPickupLocationsQueryHandler

	sessions SessionVerifier
}

// NewServer creates a new HTTP server with the required command and
// query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	sendOtpHandler commands.SendOtpCommandHandler,
	verifyOtpHandler commands.VerifyOtpCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getPriceHandler queries.GetPriceQueryHandler,
	listPickupLocsHandler queries.ListPickupLocationsQueryHandler,
	sessions SessionVerifier,
) *Server {
	return &Server{
		submitOrderHandler:    submitOrderHandler,
		sendOtpHandler:        sendOtpHandler,
		verifyOtpHandler:      verifyOtpHandler,
		getOrdersHandler:      getOrdersHandler,
		getPriceHandler:       getPriceHandler,
		listPickupLocsHandler: listPickupLocsHandler,
		sessions:              sessions,
	}
}

// RegisterRoutes mounts all portal routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.SubmitOrder)
	api.GET("/price", s.GetPrice)
	api.POST("/otp/send", s.SendOtp)
	api.POST("/otp/verify", s.VerifyOtp)

	admin := api.Group("/admin", s.requireSession)
	admin.GET("/orders", s.GetOrders)
	admin.GET("/pickup-locations", s.GetPickupLocations)
}

// SubmitOrder handles POST /api/v1/orders - runs the fulfillment
// pipeline for one order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req submitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, failureResponse{
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSubmitOrderCommand(commands.SubmitOrderParams{
		SenderName:    req.SenderName,
		SenderPhone:   req.SenderPhone,
		SenderAddress: req.SenderAddress,
		SenderPincode: req.SenderPincode,
		SenderEmail:   req.SenderEmail,

		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		ReceiverAddress: req.ReceiverAddress,
		ReceiverPincode: req.ReceiverPincode,
		ReceiverEmail:   req.ReceiverEmail,

		Weight:      req.PackageWeight,
		Dimensions:  req.Dimensions,
		Description: req.Description,
		Price:       req.Price,

		ServiceType: req.ServiceType,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, submitOrderResponse{
		Message:           "Order created and AWB assigned successfully",
		OrderID:           result.OrderID,
		ShiprocketOrderID: result.UpstreamOrderID,
		ShipmentID:        result.ShipmentID,
		AWBCode:           result.TrackingCode,
		CourierName:       result.CourierName,
		Rate:              result.Rate,
		EstimatedDelivery: result.EstimatedDays,
		ShiprocketOrder:   result.OrderPayload,
		AssignAwb:         result.AssignmentPayload,
	})
}

// GetPrice handles GET /api/v1/price?weight= - quotes the weight-slab
// price without touching the carrier.
func (s *Server) GetPrice(ctx echo.Context) error {
	query, err := queries.NewGetPriceQuery(ctx.QueryParam("weight"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.getPriceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, priceResponse{
		WeightKg:  result.WeightKg,
		Price:     result.Price,
		Breakdown: result.Breakdown,
	})
}

// SendOtp handles POST /api/v1/otp/send - issues a login code.
func (s *Server) SendOtp(ctx echo.Context) error {
	var req sendOtpRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, failureResponse{
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSendOtpCommand(req.Email)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.sendOtpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"message": "OTP sent successfully!",
	})
}

// VerifyOtp handles POST /api/v1/otp/verify - exchanges a valid code
// for a session token.
func (s *Server) VerifyOtp(ctx echo.Context) error {
	var req verifyOtpRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, failureResponse{
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewVerifyOtpCommand(req.Email, req.OTP)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.verifyOtpHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			return ctx.JSON(http.StatusBadRequest, verifyOtpResponse{
				Message:  "Invalid OTP",
				Verified: false,
			})
		}
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, verifyOtpResponse{
		Message:  "OTP verified successfully!",
		Verified: true,
		Token:    result.Token,
	})
}

// GetOrders handles GET /api/v1/admin/orders - lists all terminal
// order records, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	records, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]orderRecordResponse, len(records))
	for i, record := range records {
		response[i] = orderRecordResponse{
			OrderID:         record.OrderID,
			SenderName:      record.SenderName,
			ReceiverName:    record.ReceiverName,
			ReceiverPincode: record.ReceiverPincode,
			Weight:          record.Weight,
			DeclaredValue:   record.DeclaredValue,
			ServiceType:     record.ServiceType,
			Status:          record.Status,
			AWBCode:         record.AWBCode,
			CourierName:     record.CourierName,
			FailureReason:   record.FailureReason,
			CreatedAt:       record.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPickupLocations handles GET /api/v1/admin/pickup-locations -
// lists the pickup locations registered with the carrier.
func (s *Server) GetPickupLocations(ctx echo.Context) error {
	query := queries.NewListPickupLocationsQuery()

	locations, err := s.listPickupLocsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]pickupLocationResponse, len(locations))
	for i, location := range locations {
		response[i] = pickupLocationResponse{
			ID:         location.ID,
			PickupName: location.PickupName,
			Address:    location.Address,
			City:       location.City,
			State:      location.State,
			PinCode:    location.PinCode,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// requireSession guards admin routes with the bearer session token.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return ctx.JSON(http.StatusUnauthorized, failureResponse{
				Message: "Missing session token",
			})
		}
		if _, err := s.sessions.Verify(token); err != nil {
			return ctx.JSON(http.StatusUnauthorized, failureResponse{
				Message: "Invalid session token",
			})
		}
		return next(ctx)
	}
}

// writeError maps the pipeline error taxonomy to the portal's HTTP
// contract. Upstream rejections keep the raw carrier payload in the
// body so callers can diagnose them.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var (
		validationErr   *errs.ValidationError
		lookupErr       *errs.LookupError
		provisioningErr *errs.ProvisioningError
		rateErr         *errs.RateUnavailableError
		authErr         *errs.AuthError
		upstreamErr     *errs.UpstreamOrderError
		assignmentErr   *errs.AssignmentError
	)

	switch {
	case errors.As(err, &validationErr):
		return ctx.JSON(http.StatusBadRequest, failureResponse{Message: validationErr.Message})
	case errors.As(err, &lookupErr):
		return ctx.JSON(http.StatusBadRequest, failureResponse{Message: lookupErr.Message})
	case errors.As(err, &provisioningErr):
		return ctx.JSON(http.StatusBadRequest, failureResponse{Message: provisioningErr.Message})
	case errors.As(err, &rateErr):
		return ctx.JSON(http.StatusBadRequest, failureResponse{Message: rateErr.Message})
	case errors.As(err, &authErr):
		return ctx.JSON(http.StatusUnauthorized, failureResponse{Message: "Shiprocket authentication failed."})
	case errors.As(err, &upstreamErr):
		return ctx.JSON(http.StatusBadRequest, upstreamFailureResponse{
			Message: upstreamErr.Message,
			Error:   upstreamErr.Payload,
		})
	case errors.As(err, &assignmentErr):
		return ctx.JSON(http.StatusBadRequest, upstreamFailureResponse{
			Message: assignmentErr.Message,
			Error:   assignmentErr.Payload,
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, serverErrorResponse{
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
}
