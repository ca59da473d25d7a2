package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/core/application/usecases/commands"
	"github.com/ayobami7/click-and-collect-notif/internal/core/application/usecases/queries"
	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/generated/servers"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler         commands.PlaceOrderCommandHandler
	markReadyHandler          commands.MarkReadyCommandHandler
	submitCollectionHandler   commands.SubmitCollectionCommandHandler
	completeCollectionHandler commands.CompleteCollectionCommandHandler
	cancelCollectionHandler   commands.CancelCollectionCommandHandler
	deleteCollectionHandler   commands.DeleteCollectionCommandHandler

	// Query handlers
	getCollectionsHandler queries.GetCollectionsQueryHandler
	getCollectionHandler  queries.GetCollectionQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	markReadyHandler commands.MarkReadyCommandHandler,
	submitCollectionHandler commands.SubmitCollectionCommandHandler,
	completeCollectionHandler commands.CompleteCollectionCommandHandler,
	cancelCollectionHandler commands.CancelCollectionCommandHandler,
	deleteCollectionHandler commands.DeleteCollectionCommandHandler,
	getCollectionsHandler queries.GetCollectionsQueryHandler,
	getCollectionHandler queries.GetCollectionQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:         placeOrderHandler,
		markReadyHandler:          markReadyHandler,
		submitCollectionHandler:   submitCollectionHandler,
		completeCollectionHandler: completeCollectionHandler,
		cancelCollectionHandler:   cancelCollectionHandler,
		deleteCollectionHandler:   deleteCollectionHandler,
		getCollectionsHandler:     getCollectionsHandler,
		getCollectionHandler:      getCollectionHandler,
	}
}

// GetIndex handles GET / - returns service metadata.
func (s *Server) GetIndex(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"service":   "click-and-collect-notification-service",
		"version":   "1.0",
		"websocket": "/ws",
		"docs":      "/swagger/index.html",
	})
}

// GetHealth handles GET /api/health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

// CreateOrder handles POST /api/orders - places a new click-and-collect order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(
		newOrder.CustomerName,
		stringValue(newOrder.CustomerEmail),
		stringValue(newOrder.CustomerPhone),
		stringValue(newOrder.OrderNumber),
		toDomainItems(newOrder.Items),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, toCollectionResponse(created))
}

// MarkOrderReady handles PATCH /api/orders/{id}/ready - moves a pending order
// to the ready state.
func (s *Server) MarkOrderReady(ctx echo.Context, id int64) error {
	cmd, err := commands.NewMarkReadyCommand(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid collection id: " + err.Error(),
		})
	}

	updated, err := s.markReadyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to mark order ready")
	}

	return ctx.JSON(http.StatusOK, toCollectionResponse(updated))
}

// SubmitCollection handles POST /api/collect - a customer presents a barcode
// at the collection point.
func (s *Server) SubmitCollection(ctx echo.Context) error {
	var request servers.CollectRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSubmitCollectionCommand(request.CustomerName, request.Barcode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid collection request: " + err.Error(),
		})
	}

	collected, err := s.submitCollectionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to submit collection")
	}

	return ctx.JSON(http.StatusOK, toCollectionResponse(collected))
}

// GetCollections handles GET /api/collections - lists collection records,
// newest first, optionally filtered by status.
func (s *Server) GetCollections(ctx echo.Context, params servers.GetCollectionsParams) error {
	statusFilter := ""
	if params.Status != nil {
		statusFilter = string(*params.Status)
	}

	query, err := queries.NewGetCollectionsQuery(statusFilter)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status filter: " + err.Error(),
		})
	}

	records, err := s.getCollectionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve collections",
		})
	}

	collections := make([]servers.Collection, len(records))
	for i, record := range records {
		collections[i] = fromQueryResponse(record)
	}

	return ctx.JSON(http.StatusOK, servers.CollectionList{
		Collections: collections,
		Count:       len(collections),
	})
}

// GetCollection handles GET /api/collections/{id} - fetches one record.
func (s *Server) GetCollection(ctx echo.Context, id int64) error {
	query, err := queries.NewGetCollectionQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid collection id: " + err.Error(),
		})
	}

	record, err := s.getCollectionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve collection")
	}

	response := fromQueryResponse(record)

	return ctx.JSON(http.StatusOK, response)
}

// CompleteCollection handles PATCH /api/collections/{id}/complete - staff
// closes out an order without the customer-facing barcode flow.
func (s *Server) CompleteCollection(ctx echo.Context, id int64) error {
	cmd, err := commands.NewCompleteCollectionCommand(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid collection id: " + err.Error(),
		})
	}

	updated, err := s.completeCollectionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to complete collection")
	}

	return ctx.JSON(http.StatusOK, toCollectionResponse(updated))
}

// CancelCollection handles PATCH /api/collections/{id}/cancel - staff
// cancels an order that will not be collected.
func (s *Server) CancelCollection(ctx echo.Context, id int64) error {
	cmd, err := commands.NewCancelCollectionCommand(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid collection id: " + err.Error(),
		})
	}

	updated, err := s.cancelCollectionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to cancel collection")
	}

	return ctx.JSON(http.StatusOK, toCollectionResponse(updated))
}

// DeleteCollection handles DELETE /api/collections/{id} - removes a record
// regardless of its status.
func (s *Server) DeleteCollection(ctx echo.Context, id int64) error {
	cmd, err := commands.NewDeleteCollectionCommand(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid collection id: " + err.Error(),
		})
	}

	if err := s.deleteCollectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err, "Failed to delete collection")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps application errors onto HTTP status codes. Domain guard
// failures and invalid values become 400, missing records 404, barcode
// uniqueness conflicts 409, and everything else 500.
func (s *Server) errorResponse(ctx echo.Context, err error, fallback string) error {
	var transitionErr *errs.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: transitionErr.Reason,
		})
	}

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

func toCollectionResponse(aggregate *collection.Collection) servers.Collection {
	items := make([]servers.Item, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = servers.Item{Name: item.Name, Quantity: item.Quantity}
	}

	response := servers.Collection{
		Id:           aggregate.ID(),
		CustomerName: aggregate.CustomerName(),
		Barcode:      aggregate.Barcode().String(),
		OrderNumber:  aggregate.OrderNumber().String(),
		Items:        items,
		Status:       servers.CollectionStatus(aggregate.Status().String()),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		CollectedAt:  aggregate.CollectedAt(),
	}

	if email := aggregate.CustomerEmail(); email != "" {
		response.CustomerEmail = &email
	}
	if phone := aggregate.CustomerPhone(); phone != "" {
		response.CustomerPhone = &phone
	}

	return response
}

func fromQueryResponse(record queries.CollectionResponse) servers.Collection {
	items := make([]servers.Item, len(record.Items))
	for i, item := range record.Items {
		items[i] = servers.Item{Name: item.Name, Quantity: item.Quantity}
	}

	response := servers.Collection{
		Id:           record.ID,
		CustomerName: record.CustomerName,
		Barcode:      record.Barcode,
		OrderNumber:  record.OrderNumber,
		Items:        items,
		Status:       servers.CollectionStatus(record.Status),
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
		CollectedAt:  record.CollectedAt,
	}

	if record.CustomerEmail != "" {
		email := record.CustomerEmail
		response.CustomerEmail = &email
	}
	if record.CustomerPhone != "" {
		phone := record.CustomerPhone
		response.CustomerPhone = &phone
	}

	return response
}

func toDomainItems(items *[]servers.Item) []collection.Item {
	if items == nil {
		return nil
	}

	domainItems := make([]collection.Item, len(*items))
	for i, item := range *items {
		domainItems[i] = collection.Item{Name: item.Name, Quantity: item.Quantity}
	}

	return domainItems
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
