package models

import "fmt"

// CartItem is the single line-item shape shared by the checkout flow and
// the order-notify flow. Specifications carries free-form product options
// (size, color, braille, custom text); flat string prices submitted by
// the storefront are parsed into UnitPrice at the handler boundary.
type CartItem struct {
	Name           string            `json:"name"`
	Quantity       int               `json:"quantity"`
	UnitPrice      float64           `json:"unit_price"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// DisplayPrice is the rendering-time projection of UnitPrice.
func (i CartItem) DisplayPrice() string {
	return fmt.Sprintf("%.2f", i.UnitPrice)
}

type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}
