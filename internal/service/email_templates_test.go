package service

import (
	"strings"
	"testing"

	"absign/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestContactEmailSubjects(t *testing.T) {
	plain := &models.Contact{Name: "Sam Ortiz", Email: "sam@example.com", Subject: "Shipping question"}
	subject, _, _ := renderContactEmail(plain)
	assert.Equal(t, "Contact Form Submission from Sam Ortiz", subject)

	quote := &models.Contact{Name: "Sam Ortiz", Email: "sam@example.com", Subject: "Custom Quote Request - Lobby Signage"}
	subject, _, _ = renderContactEmail(quote)
	assert.Equal(t, "Custom Quote Request from Sam Ortiz", subject)
}

func TestContactEmailPlaceholders(t *testing.T) {
	c := &models.Contact{Email: "sam@example.com", Message: "Need 4 door signs"}
	_, html, text := renderContactEmail(c)

	// missing name and phone render as fixed placeholders, never blank
	assert.Contains(t, html, "N/A")
	assert.Contains(t, html, "Not provided")
	assert.Contains(t, text, "Need 4 door signs")
}

func TestOrderBusinessEmailRendersItemsAndSpecs(t *testing.T) {
	o := &models.Order{
		OrderID:       "ABS-1042",
		CustomerName:  "Dana Whitfield",
		CustomerEmail: "dana@example.com",
		Subtotal:      "90.00",
		Shipping:      "15.00",
		Tax:           "11.70",
		Total:         "116.70",
	}
	_ = o.SetItems([]models.CartItem{
		{Name: "Braille Office Sign", Quantity: 2, UnitPrice: 45,
			Specifications: map[string]string{"size": "8x10", "color": "brushed silver"}},
		{Name: "ADA Restroom Sign", Quantity: 1, UnitPrice: 32.5},
	})

	subject, html, text := renderOrderBusinessEmail(o)
	assert.Equal(t, "New Order #ABS-1042 - $116.70", subject)

	// two-decimal currency throughout
	assert.Contains(t, html, "$45.00")
	assert.Contains(t, html, "$32.50")
	assert.Contains(t, text, "$116.70")

	// specification rows render sorted by key
	assert.Contains(t, html, "<strong>color:</strong> brushed silver")
	assert.Contains(t, html, "<strong>size:</strong> 8x10")
	assert.Less(t, strings.Index(html, "color:"), strings.Index(html, "size:"))

	// the spec section only lists items that have specifications
	assert.Contains(t, html, "<h4>Braille Office Sign</h4>")
	assert.NotContains(t, html, "<h4>ADA Restroom Sign</h4>")
}

func TestOrderBusinessEmailSkipsEmptySpecSection(t *testing.T) {
	o := &models.Order{OrderID: "ABS-1", Total: "10.00"}
	_ = o.SetItems([]models.CartItem{{Name: "Nameplate", Quantity: 1, UnitPrice: 10}})
	_, html, _ := renderOrderBusinessEmail(o)
	assert.NotContains(t, html, "Product Specifications")
}

func TestOrderCustomerEmail(t *testing.T) {
	o := &models.Order{OrderID: "ABS-7", CustomerName: "Lee", Total: "25.00"}
	_ = o.SetItems([]models.CartItem{{Name: "Door Sign", Quantity: 1, UnitPrice: 25}})
	subject, html, _ := renderOrderCustomerEmail(o)
	assert.Equal(t, "Order Confirmation #ABS-7 - AB Signs", subject)
	assert.Contains(t, html, "Thank you for your order, Lee!")
	assert.Contains(t, html, "$25.00")
}

func TestPaymentEmailsUseTransactionSnapshot(t *testing.T) {
	tx := &models.Transaction{
		SessionID:     "cs_test_1",
		Amount:        116.7,
		Currency:      "CAD",
		CustomerName:  "Dana Whitfield",
		CustomerEmail: "dana@example.com",
	}
	_ = tx.SetCartItems([]models.CartItem{{Name: "Braille Office Sign", Quantity: 2, UnitPrice: 45}})

	_, businessHTML, _ := renderPaymentBusinessEmail(tx)
	assert.Contains(t, businessHTML, "cs_test_1")
	assert.Contains(t, businessHTML, "116.70")
	assert.Contains(t, businessHTML, "Braille Office Sign")

	_, customerHTML, _ := renderPaymentCustomerEmail(tx)
	assert.Contains(t, customerHTML, "Dana Whitfield")
	assert.Contains(t, customerHTML, "116.70")
}

func TestMoneyFormatting(t *testing.T) {
	assert.Equal(t, "0.00", money(0))
	assert.Equal(t, "116.70", money(116.7))
	assert.Equal(t, "45.00", money(45))
}
