package handler

import (
	"time"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/SergeyBogomolovv/order-processor/internal/pricing"
)

// OrderRequest is an order placed by a user
type OrderRequest struct {
	OrderID       string `json:"order_id,omitempty"`
	UserID        string `json:"user_id" validate:"required"`
	Items         []Item `json:"items" validate:"dive"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

// Item is an order line
type Item struct {
	ID       string  `json:"id" validate:"required"`
	Quantity int     `json:"quantity" validate:"gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// OrderRecord is a confirmed order
type OrderRecord struct {
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification is a notification scheduled for delivery
type Notification struct {
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
}

// OrderResponse is returned for a confirmed order
type OrderResponse struct {
	Success       bool           `json:"success"`
	Order         OrderRecord    `json:"order"`
	Message       string         `json:"message"`
	Notifications []Notification `json:"notifications"`
}

// FailureResponse is returned when an order is rejected
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Reason  string `json:"reason"`
	ItemID  string `json:"item_id,omitempty"`
}

// Line is the price of one order line
type Line struct {
	ItemID string  `json:"item_id"`
	Base   float64 `json:"base"`
	Price  float64 `json:"price"`
}

// Quote is a price breakdown without reservation
type Quote struct {
	Lines      []Line  `json:"lines"`
	Subtotal   float64 `json:"subtotal"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	PaymentFee float64 `json:"payment_fee"`
	Total      float64 `json:"total"`
}

// User is a customer profile
type User struct {
	ID            string `json:"id"`
	Status        string `json:"status" validate:"required"`
	Tier          string `json:"tier"`
	State         string `json:"state,omitempty"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty" validate:"omitempty,e164"`
	LoyaltyPoints int    `json:"loyalty_points"`
}

// Stock is the quantity on hand of an item
type Stock struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

func OrderRequestToEntity(r OrderRequest) entities.Order {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.LineItem{ID: it.ID, Quantity: it.Quantity, Price: it.Price})
	}

	return entities.Order{
		ID:            r.OrderID,
		Items:         items,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
	}
}

func OrderRecordEntityToJSON(r entities.OrderRecord) OrderRecord {
	return OrderRecord{
		OrderID:   r.OrderID,
		UserID:    r.UserID,
		Total:     r.Total,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

func ResultToJSON(res entities.ProcessResult) OrderResponse {
	notifications := make([]Notification, 0, len(res.Notifications))
	for _, n := range res.Notifications {
		notifications = append(notifications, Notification{Type: string(n.Type), Recipient: n.Recipient})
	}

	return OrderResponse{
		Success:       true,
		Order:         OrderRecordEntityToJSON(*res.Order),
		Message:       res.Message,
		Notifications: notifications,
	}
}

func FailureToJSON(err error) FailureResponse {
	itemID, _ := entities.FailedItem(err)
	return FailureResponse{
		Error:  err.Error(),
		Reason: entities.Reason(err),
		ItemID: itemID,
	}
}

func BreakdownToJSON(b pricing.Breakdown) Quote {
	lines := make([]Line, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, Line{ItemID: l.ItemID, Base: l.Base, Price: l.Price})
	}

	return Quote{
		Lines:      lines,
		Subtotal:   b.Subtotal,
		Shipping:   b.Shipping,
		Tax:        b.Tax,
		PaymentFee: b.PaymentFee,
		Total:      b.Total,
	}
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:            u.ID,
		Status:        u.Status,
		Tier:          string(u.Tier),
		State:         u.State,
		Email:         u.Email,
		Phone:         u.Phone,
		LoyaltyPoints: u.LoyaltyPoints,
	}
}

// UserJSONToEntity ignores loyalty points; they only change through orders.
func UserJSONToEntity(u User) entities.User {
	return entities.User{
		ID:     u.ID,
		Status: u.Status,
		Tier:   entities.Tier(u.Tier),
		State:  u.State,
		Email:  u.Email,
		Phone:  u.Phone,
	}
}
