// Package http exposes the order workflow over HTTP. The API accepts raw
// order input as-is and answers with the emitted events; failure
// classification maps one-to-one onto status codes.
package http

import (
	"errors"
	"net/http"

	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler commands.PlaceOrderCommandHandler
	getOrderHandler   queries.GetPlacedOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	getOrderHandler queries.GetPlacedOrderQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler: placeOrderHandler,
		getOrderHandler:   getOrderHandler,
	}
}

// RegisterRoutes attaches the API routes to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/orders", s.PlaceOrder)
	e.GET("/api/v1/orders/:id", s.GetOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// PlaceOrder handles POST /api/v1/orders - runs the order workflow.
//
// Status codes follow the failure taxonomy: 400 for a validation failure,
// 422 for a pricing failure, 409 for a duplicate order id, 502 when a
// collaborator service failed.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd := commands.NewPlaceOrderCommand(toUnvalidatedOrder(request))

	events, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.placeOrderFailure(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PlaceOrderResponse{
		OrderID: request.OrderID,
		Events:  toEventResponses(events),
	})
}

func (s *Server) placeOrderFailure(ctx echo.Context, err error) error {
	var validationErr *order.ValidationError
	if errors.As(err, &validationErr) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: validationErr.Error(),
		})
	}

	var pricingErr *order.PricingError
	if errors.As(err, &pricingErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: pricingErr.Error(),
		})
	}

	if errors.Is(err, commands.ErrOrderAlreadyPlaced) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	var remoteErr *order.RemoteServiceError
	if errors.As(err, &remoteErr) {
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: remoteErr.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Failed to place order",
	})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a placed order.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetPlacedOrderQuery(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, toGetOrderResponse(result))
}
