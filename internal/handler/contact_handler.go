package handler

import (
	"log"
	"net/http"

	"absign/internal/domain"
	"absign/internal/models"
	"absign/internal/repository"
	"absign/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	repo   *repository.ContactRepository
	emails *service.EmailService
}

func NewContactHandler(repo *repository.ContactRepository, emails *service.EmailService) *ContactHandler {
	return &ContactHandler{repo: repo, emails: emails}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
	Company string `json:"company"`
	Urgency string `json:"urgency"`
	Budget  string `json:"budget"`
}

// Submit persists the contact form and emails the business inbox. The
// record write is unconditional; an email failure only softens the
// response status.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Company: req.Company,
		Urgency: req.Urgency,
		Budget:  req.Budget,
	}
	if err := h.repo.Create(contact); err != nil {
		log.Printf("[contact] persist failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save submission"})
		return
	}

	if h.emails.SendContactNotification(contact) {
		c.JSON(http.StatusOK, gin.H{
			"status":  domain.NotifySuccess,
			"message": "Message received, we'll get back to you shortly",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  domain.NotifyWarning,
		"message": "Message received, but the notification email failed",
	})
}
