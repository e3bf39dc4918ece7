package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/SergeyBogomolovv/order-processor/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// GetUser
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  User
// @Failure      404      {object}  utils.ErrorResponse "User not found"
// @Router       /users/{user_id} [get]
func (h *HTTPHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")

	u, err := h.svc.GetUser(ctx, userID)
	if errors.Is(err, entities.ErrUserNotFound) {
		utils.WriteError(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err), slog.String("user_id", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(u), http.StatusOK)
}

// SaveUser
// @Summary      Create or update user
// @Description  Loyalty points in the body are ignored
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user_id  path      string  true  "User ID"
// @Param        user     body      User    true  "User"
// @Success      200      {object}  User
// @Failure      400      {object}  utils.ValidationErrorResponse "Validation error"
// @Router       /users/{user_id} [put]
func (h *HTTPHandler) SaveUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req User
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.ID = chi.URLParam(r, "user_id")
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	u, err := h.svc.SaveUser(ctx, UserJSONToEntity(req))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save user", slog.Any("error", err), slog.String("user_id", req.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(u), http.StatusOK)
}

// GetStock
// @Summary      Get stock
// @Tags         inventory
// @Produce      json
// @Param        item_id  path      string  true  "Item ID"
// @Success      200      {object}  Stock
// @Failure      404      {object}  utils.ErrorResponse "Item not found"
// @Router       /inventory/{item_id} [get]
func (h *HTTPHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := chi.URLParam(r, "item_id")

	q, err := h.svc.GetStock(ctx, itemID)
	if errors.Is(err, entities.ErrItemNotFound) {
		utils.WriteError(w, "item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get stock", slog.Any("error", err), slog.String("item_id", itemID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, Stock{ItemID: itemID, Quantity: q}, http.StatusOK)
}

// SetStock
// @Summary      Set stock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        item_id  path      string  true  "Item ID"
// @Param        stock    body      Stock   true  "Stock"
// @Success      200      {object}  Stock
// @Failure      400      {object}  utils.ValidationErrorResponse "Validation error"
// @Router       /inventory/{item_id} [put]
func (h *HTTPHandler) SetStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Stock
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.ItemID = chi.URLParam(r, "item_id")
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.SetStock(ctx, req.ItemID, req.Quantity); err != nil {
		h.logger.ErrorContext(ctx, "failed to set stock", slog.Any("error", err), slog.String("item_id", req.ItemID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, req, http.StatusOK)
}
