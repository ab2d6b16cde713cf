package handler

import (
	"log"
	"net/http"
	"strconv"

	"absign/internal/domain"
	"absign/internal/models"
	"absign/internal/repository"
	"absign/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	repo   *repository.OrderRepository
	emails *service.EmailService
}

func NewOrderHandler(repo *repository.OrderRepository, emails *service.EmailService) *OrderHandler {
	return &OrderHandler{repo: repo, emails: emails}
}

type orderItemRequest struct {
	Name           string            `json:"name" binding:"required"`
	Quantity       int               `json:"quantity"`
	Price          string            `json:"price"`
	Specifications map[string]string `json:"specifications"`
}

type orderNotifyRequest struct {
	OrderID         string             `json:"order_id" binding:"required"`
	CustomerName    string             `json:"customer_name" binding:"required"`
	CustomerEmail   string             `json:"customer_email" binding:"required,email"`
	CustomerPhone   string             `json:"customer_phone"`
	ShippingAddress models.Address     `json:"shipping_address"`
	Items           []orderItemRequest `json:"items" binding:"required,min=1"`
	Subtotal        string             `json:"subtotal"`
	Shipping        string             `json:"shipping"`
	Tax             string             `json:"tax"`
	Total           string             `json:"total" binding:"required"`
	Notes           string             `json:"notes"`
}

// Notify persists the order snapshot and fires the dual notification.
// Persistence is unconditional; the emails are best-effort and only
// soften the response status: success when both landed, partial_success
// when one failed, warning when both failed. HTTP stays 200 throughout.
func (h *OrderHandler) Notify(c *gin.Context) {
	var req orderNotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]models.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		price, err := strconv.ParseFloat(it.Price, 64)
		if err != nil {
			log.Printf("[orders] unparsable price %q on item %q in order %s, using 0", it.Price, it.Name, req.OrderID)
			price = 0
		}
		items = append(items, models.CartItem{
			Name:           it.Name,
			Quantity:       qty,
			UnitPrice:      price,
			Specifications: it.Specifications,
		})
	}

	order := &models.Order{
		OrderID:       req.OrderID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Subtotal:      req.Subtotal,
		Shipping:      req.Shipping,
		Tax:           req.Tax,
		Total:         req.Total,
		Notes:         req.Notes,
	}
	if err := order.SetItems(items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid items"})
		return
	}
	order.SetShippingAddress(req.ShippingAddress)

	if err := h.repo.Create(order); err != nil {
		log.Printf("[orders] persist %s failed: %v", req.OrderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save order"})
		return
	}

	businessOK := h.emails.SendNewOrderNotification(order)
	customerOK := h.emails.SendCustomerConfirmation(order)

	status := domain.NotifySuccess
	message := "Order received and notification emails sent successfully"
	switch {
	case !businessOK && !customerOK:
		status = domain.NotifyWarning
		message = "Order received but notification emails failed"
	case !customerOK:
		status = domain.NotifyPartialSuccess
		message = "Order received; customer confirmation email failed"
	case !businessOK:
		status = domain.NotifyPartialSuccess
		message = "Order received; business notification email failed"
	}
	if err := h.repo.UpdateEmailStatus(order.OrderID, status); err != nil {
		log.Printf("[orders] email status update for %s failed: %v", order.OrderID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"message":  message,
		"order_id": order.OrderID,
	})
}

// Get returns a persisted order snapshot by order ID.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.repo.GetByOrderID(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_id":         order.OrderID,
		"customer_name":    order.CustomerName,
		"customer_email":   order.CustomerEmail,
		"customer_phone":   order.CustomerPhone,
		"shipping_address": order.ShippingAddr(),
		"items":            order.CartItems(),
		"subtotal":         order.Subtotal,
		"shipping":         order.Shipping,
		"tax":              order.Tax,
		"total":            order.Total,
		"notes":            order.Notes,
		"email_status":     order.EmailStatus,
		"created_at":       order.CreatedAt,
	})
}
