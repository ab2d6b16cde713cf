package models

import (
	"encoding/json"
	"time"
)

// Order is the snapshot persisted by the order-notify endpoint when a
// customer proceeds to checkout. Totals are stored exactly as submitted
// by the storefront (pre-formatted strings); they are display values,
// not an accounting source of truth.
type Order struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	OrderID         string    `gorm:"size:64;uniqueIndex" json:"order_id"`
	CustomerName    string    `gorm:"size:255" json:"customer_name"`
	CustomerEmail   string    `gorm:"size:255;not null" json:"customer_email"`
	CustomerPhone   string    `gorm:"size:64" json:"customer_phone"`
	ShippingAddress string    `gorm:"type:text" json:"-"`
	Items           string    `gorm:"type:text" json:"-"`
	Subtotal        string    `gorm:"size:32" json:"subtotal"`
	Shipping        string    `gorm:"size:32" json:"shipping"`
	Tax             string    `gorm:"size:32" json:"tax"`
	Total           string    `gorm:"size:32" json:"total"`
	Notes           string    `gorm:"type:text" json:"notes"`
	EmailStatus     string    `gorm:"size:20" json:"email_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) SetItems(items []CartItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	o.Items = string(b)
	return nil
}

func (o *Order) CartItems() []CartItem {
	var items []CartItem
	if o.Items != "" {
		_ = json.Unmarshal([]byte(o.Items), &items)
	}
	return items
}

func (o *Order) SetShippingAddress(a Address) {
	b, _ := json.Marshal(a)
	o.ShippingAddress = string(b)
}

func (o *Order) ShippingAddr() Address {
	var a Address
	if o.ShippingAddress != "" {
		_ = json.Unmarshal([]byte(o.ShippingAddress), &a)
	}
	return a
}
