// Package http implements the inbound HTTP API of the dispatch engine.
// It binds the generated server interface to the application's command and
// query handlers and maps domain failures onto the HTTP error taxonomy:
// invalid input is 400, unknown objects are 404, lost races and ownership
// violations are 409, and a busy order row is 503.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements servers.ServerInterface.
type Server struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	claimOrderHandler    commands.ClaimOrderCommandHandler
	advanceOrderHandler  commands.AdvanceOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	getUnclaimedOrdersHandler     queries.GetUnclaimedOrdersQueryHandler
	getCourierActiveOrdersHandler queries.GetCourierActiveOrdersQueryHandler
}

// NewServer creates an HTTP server wired to the given command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getUnclaimedOrdersHandler queries.GetUnclaimedOrdersQueryHandler,
	getCourierActiveOrdersHandler queries.GetCourierActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		claimOrderHandler:             claimOrderHandler,
		advanceOrderHandler:           advanceOrderHandler,
		completeOrderHandler:          completeOrderHandler,
		getUnclaimedOrdersHandler:     getUnclaimedOrdersHandler,
		getCourierActiveOrdersHandler: getCourierActiveOrdersHandler,
	}
}

// CreateOrder handles POST /orders: quotes the route and opens the offer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	clientID, err := kernel.UUIDFromBytes(newOrder.ClientId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	origin, err := kernel.NewLocation(newOrder.Origin.Lat, newOrder.Origin.Lon)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	destination, err := kernel.NewLocation(newOrder.Destination.Lat, newOrder.Destination.Lon)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	comment := ""
	if newOrder.Comment != nil {
		comment = *newOrder.Comment
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, origin, destination, comment)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetOpenOrders handles GET /orders/open: the offer board, oldest first.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetUnclaimedOrdersQuery()

	offers, err := s.getUnclaimedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to retrieve open orders")
	}

	response := make([]servers.OpenOffer, len(offers))
	for i, offer := range offers {
		response[i] = servers.OpenOffer{
			Id:          offer.ID.Bytes(),
			Origin:      geoPoint(offer.Origin),
			Destination: geoPoint(offer.Destination),
			Comment:     optionalComment(offer.Comment),
			DistanceKm:  offer.DistanceKm,
			Price:       offer.Price,
			CreatedAt:   offer.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClaimOrder handles POST /orders/{orderId}/claim.
func (s *Server) ClaimOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var claim servers.ClaimRequest
	if err := ctx.Bind(&claim); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := s.claimCommand(orderId, claim.CourierId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /orders/{orderId}/advance.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var advance servers.AdvanceRequest
	if err := ctx.Bind(&advance); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	orderID, courierID, err := identityPair(orderId, advance.CourierId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	target, err := order.StatusFromString(string(advance.Target))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, courierID, target)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var complete servers.CompleteRequest
	if err := ctx.Bind(&complete); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	orderID, courierID, err := identityPair(orderId, complete.CourierId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, courierID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCourierOrders handles GET /couriers/{courierId}/orders.
func (s *Server) GetCourierOrders(ctx echo.Context, courierId openapi_types.UUID) error {
	courierID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetCourierActiveOrdersQuery(courierID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	active, err := s.getCourierActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to retrieve courier orders")
	}

	response := make([]servers.ActiveOrder, len(active))
	for i, o := range active {
		actions := make([]servers.OrderStatus, len(o.NextActions))
		for j, action := range o.NextActions {
			actions[j] = servers.OrderStatus(action.String())
		}

		response[i] = servers.ActiveOrder{
			Id:          o.ID.Bytes(),
			Status:      servers.OrderStatus(o.Status.String()),
			Origin:      geoPoint(o.Origin),
			Destination: geoPoint(o.Destination),
			Comment:     optionalComment(o.Comment),
			Price:       o.Price,
			NextActions: actions,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) claimCommand(
	orderId, courierId openapi_types.UUID,
) (commands.ClaimOrderCommand, error) {
	orderID, courierID, err := identityPair(orderId, courierId)
	if err != nil {
		return commands.ClaimOrderCommand{}, err
	}
	return commands.NewClaimOrderCommand(orderID, courierID)
}

// domainError translates a failed command into the HTTP error taxonomy.
func (s *Server) domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, ports.ErrOrderBusy):
		return errorJSON(ctx, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, order.ErrAlreadyClaimed),
		errors.Is(err, order.ErrNotOwner),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, commands.ErrCourierIsBlocked):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "internal error")
	}
}

func identityPair(orderId, courierId openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	courierID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, courierID, nil
}

func geoPoint(location kernel.Location) servers.GeoPoint {
	return servers.GeoPoint{
		Lat: location.Latitude(),
		Lon: location.Longitude(),
	}
}

func optionalComment(comment string) *string {
	if comment == "" {
		return nil
	}
	return &comment
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}
