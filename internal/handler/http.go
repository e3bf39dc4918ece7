package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/SergeyBogomolovv/order-processor/internal/pricing"
	"github.com/SergeyBogomolovv/order-processor/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, userID string, order entities.Order) (entities.ProcessResult, error)
	QuoteOrder(ctx context.Context, userID string, order entities.Order) (pricing.Breakdown, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.OrderRecord, error)

	GetUser(ctx context.Context, userID string) (entities.User, error)
	SaveUser(ctx context.Context, u entities.User) (entities.User, error)
	GetStock(ctx context.Context, itemID string) (int, error)
	SetStock(ctx context.Context, itemID string, quantity int) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", h.PlaceOrder)
	r.Post("/orders/quote", h.QuoteOrder)
	r.Get("/order/{order_id}", h.GetOrderByID)

	r.Get("/users/{user_id}", h.GetUser)
	r.Put("/users/{user_id}", h.SaveUser)

	r.Get("/inventory/{item_id}", h.GetStock)
	r.Put("/inventory/{item_id}", h.SetStock)
}

func (h *HTTPHandler) decodeOrder(w http.ResponseWriter, r *http.Request) (OrderRequest, bool) {
	var req OrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return req, false
	}
	return req, true
}

// PlaceOrder processes an order.
// @Summary      Place order
// @Description  Validates the order, reserves stock, prices it and confirms it
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      OrderRequest  true  "Order"
// @Success      201    {object}  OrderResponse
// @Failure      400    {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      422    {object}  FailureResponse "Order rejected"
// @Failure      500    {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeOrder(w, r)
	if !ok {
		return
	}
	if req.OrderID == "" {
		req.OrderID = uuid.NewString()
	}

	res, err := h.svc.PlaceOrder(ctx, req.UserID, OrderRequestToEntity(req))
	if err != nil {
		orderRequestTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to place order", slog.Any("error", err), slog.String("order_id", req.OrderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if !res.Success {
		orderRequestTotal.WithLabelValues("rejected").Inc()
		utils.WriteJSON(w, FailureToJSON(res.Err), http.StatusUnprocessableEntity)
		return
	}

	orderRequestTotal.WithLabelValues("confirmed").Inc()
	utils.WriteJSON(w, ResultToJSON(res), http.StatusCreated)
}

// QuoteOrder prices an order without reserving stock.
// @Summary      Quote order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      OrderRequest  true  "Order"
// @Success      200    {object}  Quote
// @Failure      400    {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      422    {object}  FailureResponse "Order rejected"
// @Failure      500    {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/quote [post]
func (h *HTTPHandler) QuoteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeOrder(w, r)
	if !ok {
		return
	}

	b, err := h.svc.QuoteOrder(ctx, req.UserID, OrderRequestToEntity(req))
	if err != nil {
		if entities.Reason(err) != entities.ReasonUnknown {
			utils.WriteJSON(w, FailureToJSON(err), http.StatusUnprocessableEntity)
			return
		}
		h.logger.ErrorContext(ctx, "failed to quote order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, BreakdownToJSON(b), http.StatusOK)
}

// GetOrderByID returns a recently confirmed order.
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  OrderRecord
// @Failure      404       {object}  utils.ErrorResponse "Order not found"
// @Failure      500       {object}  utils.ErrorResponse "Internal server error"
// @Router       /order/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	record, err := h.svc.GetOrderByID(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderRecordEntityToJSON(record), http.StatusOK)
}
