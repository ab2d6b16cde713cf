package models

import (
	"encoding/json"
	"time"
)

// Transaction is the persisted record of one checkout attempt, keyed by
// the provider-issued session ID. Amount, currency and the cart/address
// snapshot are write-once at creation; only the status columns and
// NotifiedAt change afterwards.
type Transaction struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	SessionID       string     `gorm:"size:255;uniqueIndex" json:"session_id"`
	PaymentStatus   string     `gorm:"size:20;not null;index" json:"payment_status"`
	Status          string     `gorm:"size:20;not null" json:"status"`
	Amount          float64    `gorm:"not null" json:"amount"`
	Currency        string     `gorm:"size:8;not null" json:"currency"`
	CustomerEmail   string     `gorm:"size:255" json:"customer_email"`
	CustomerName    string     `gorm:"size:255" json:"customer_name"`
	CartItems       string     `gorm:"type:text" json:"-"`
	ShippingAddress string     `gorm:"type:text" json:"-"`
	BillingAddress  string     `gorm:"type:text" json:"-"`
	Metadata        string     `gorm:"type:text" json:"-"`
	NotifiedAt      *time.Time `json:"notified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Transaction) TableName() string {
	return "payment_transactions"
}

func (t *Transaction) SetCartItems(items []CartItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	t.CartItems = string(b)
	return nil
}

func (t *Transaction) Items() []CartItem {
	var items []CartItem
	if t.CartItems != "" {
		_ = json.Unmarshal([]byte(t.CartItems), &items)
	}
	return items
}

func (t *Transaction) SetShippingAddress(a Address) {
	b, _ := json.Marshal(a)
	t.ShippingAddress = string(b)
}

func (t *Transaction) SetBillingAddress(a Address) {
	b, _ := json.Marshal(a)
	t.BillingAddress = string(b)
}

func (t *Transaction) ShippingAddr() Address {
	var a Address
	if t.ShippingAddress != "" {
		_ = json.Unmarshal([]byte(t.ShippingAddress), &a)
	}
	return a
}

func (t *Transaction) BillingAddr() Address {
	var a Address
	if t.BillingAddress != "" {
		_ = json.Unmarshal([]byte(t.BillingAddress), &a)
	}
	return a
}

func (t *Transaction) SetMetadata(m map[string]string) {
	b, _ := json.Marshal(m)
	t.Metadata = string(b)
}

func (t *Transaction) MetadataMap() map[string]string {
	m := map[string]string{}
	if t.Metadata != "" {
		_ = json.Unmarshal([]byte(t.Metadata), &m)
	}
	return m
}
