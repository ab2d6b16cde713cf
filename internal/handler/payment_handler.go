package handler

import (
	"errors"
	"fmt"
	"net/http"

	"absign/internal/models"
	"absign/internal/repository"
	"absign/internal/service"
	"absign/pkg/payment"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	checkout *service.CheckoutService
	txRepo   *repository.TransactionRepository
}

func NewPaymentHandler(checkout *service.CheckoutService, txRepo *repository.TransactionRepository) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, txRepo: txRepo}
}

type checkoutItemRequest struct {
	Name           string                 `json:"name" binding:"required"`
	Quantity       int                    `json:"quantity"`
	Price          float64                `json:"price"`
	Specifications map[string]interface{} `json:"specifications"`
}

type createCheckoutRequest struct {
	CartItems       []checkoutItemRequest `json:"cart_items" binding:"required"`
	CustomerEmail   string                `json:"customer_email" binding:"required,email"`
	CustomerName    string                `json:"customer_name"`
	ShippingAddress models.Address        `json:"shipping_address"`
	BillingAddress  models.Address        `json:"billing_address"`
	HostURL         string                `json:"host_url" binding:"required,url"`
	Subtotal        float64               `json:"subtotal"`
	Tax             float64               `json:"tax"`
	Shipping        float64               `json:"shipping"`
	Total           float64               `json:"total" binding:"required"`
	Currency        string                `json:"currency"`
}

// CreateCheckoutSession creates a hosted-checkout session and persists
// the Transaction snapshot. Returns the provider redirect URL unchanged.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req createCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]models.CartItem, 0, len(req.CartItems))
	for _, it := range req.CartItems {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		items = append(items, models.CartItem{
			Name:           it.Name,
			Quantity:       qty,
			UnitPrice:      it.Price,
			Specifications: flattenSpecs(it.Specifications),
		})
	}

	result, err := h.checkout.CreateSession(c.Request.Context(), service.CheckoutInput{
		CartItems:       items,
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		HostURL:         req.HostURL,
		Subtotal:        req.Subtotal,
		Tax:             req.Tax,
		Shipping:        req.Shipping,
		Total:           req.Total,
		Currency:        req.Currency,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrInvalidTotal),
			errors.Is(err, service.ErrTotalMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create checkout session"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": result.URL, "session_id": result.SessionID})
}

// GetCheckoutStatus returns the live provider status for a session,
// reconciling the stored transaction on the way.
func (h *PaymentHandler) GetCheckoutStatus(c *gin.Context) {
	sessionID := c.Param("session_id")
	status, err := h.checkout.GetStatus(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, payment.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch checkout status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         status.Status,
		"payment_status": status.PaymentStatus,
		"amount_total":   status.AmountTotal,
		"currency":       status.Currency,
		"metadata":       status.Metadata,
	})
}

// GetOrder returns the full stored Transaction for a session.
func (h *PaymentHandler) GetOrder(c *gin.Context) {
	sessionID := c.Param("session_id")
	tx, err := h.txRepo.GetBySessionID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id":       tx.SessionID,
		"payment_status":   tx.PaymentStatus,
		"status":           tx.Status,
		"amount":           tx.Amount,
		"currency":         tx.Currency,
		"customer_email":   tx.CustomerEmail,
		"customer_name":    tx.CustomerName,
		"cart_items":       tx.Items(),
		"shipping_address": tx.ShippingAddr(),
		"billing_address":  tx.BillingAddr(),
		"metadata":         tx.MetadataMap(),
		"created_at":       tx.CreatedAt,
		"updated_at":       tx.UpdatedAt,
	})
}

// flattenSpecs projects the storefront's nested specification object
// (size/color/braille/customizations) onto flat display strings.
func flattenSpecs(specs map[string]interface{}) map[string]string {
	if len(specs) == 0 {
		return nil
	}
	out := make(map[string]string, len(specs))
	for k, v := range specs {
		out[k] = fmt.Sprint(v)
	}
	return out
}
