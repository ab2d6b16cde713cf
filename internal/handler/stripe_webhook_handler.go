package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"absign/internal/service"
	"absign/pkg/payment"

	"github.com/gin-gonic/gin"
)

type StripeWebhookHandler struct {
	checkout *service.CheckoutService
}

func NewStripeWebhookHandler(checkout *service.CheckoutService) *StripeWebhookHandler {
	return &StripeWebhookHandler{checkout: checkout}
}

// Stripe events are a few KB; anything bigger is not a real event.
const maxWebhookBody = 64 << 10

// Handle verifies and applies one Stripe event. The raw body and the
// Stripe-Signature header go to signature verification unmodified; a
// verification failure returns 400 with no store mutation so Stripe
// retries. Duplicate deliveries are acknowledged as successes.
func (h *StripeWebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		log.Printf("[stripe webhook] read body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	signature := c.GetHeader("Stripe-Signature")

	if err := h.checkout.HandleWebhook(c.Request.Context(), body, signature); err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			log.Printf("[stripe webhook] signature verification failed: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}
		log.Printf("[stripe webhook] processing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook processing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
