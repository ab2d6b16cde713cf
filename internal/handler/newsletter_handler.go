package handler

import (
	"net/http"
	"strings"

	"absign/internal/models"
	"absign/internal/repository"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	repo *repository.NewsletterRepository
}

func NewNewsletterHandler(repo *repository.NewsletterRepository) *NewsletterHandler {
	return &NewsletterHandler{repo: repo}
}

type subscribeRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Source string `json:"source"`
}

// Subscribe adds an address to the newsletter list, deduplicating by
// email. Subscribing twice is not an error.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := h.repo.GetByEmail(email); err == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":            "success",
			"message":           "You're already subscribed",
			"alreadySubscribed": true,
		})
		return
	}

	sub := &models.NewsletterSubscriber{Email: email, Source: req.Source}
	if err := h.repo.Create(sub); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not subscribe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":            "success",
		"message":           "Subscribed to newsletter",
		"alreadySubscribed": false,
	})
}
