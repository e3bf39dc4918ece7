package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentPayPal     PaymentMethod = "paypal"
)

type LineItem struct {
	ID       string
	Quantity int
	Price    float64
}

type Order struct {
	ID            string
	Items         []LineItem
	PaymentMethod PaymentMethod
}

type OrderStatus string

const OrderStatusConfirmed OrderStatus = "confirmed"

// OrderRecord is created only for a confirmed order and never changes afterwards.
type OrderRecord struct {
	OrderID   string
	UserID    string
	Total     float64
	Status    OrderStatus
	CreatedAt time.Time
}

func (r *OrderRecord) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *OrderRecord) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(r); err != nil {
		return ErrInvalidRecord
	}
	return nil
}

func init() {
	gob.Register(OrderRecord{})
}
