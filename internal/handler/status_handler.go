package handler

import (
	"net/http"
	"time"

	"absign/internal/models"
	"absign/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StatusHandler struct {
	repo *repository.StatusRepository
}

func NewStatusHandler(repo *repository.StatusRepository) *StatusHandler {
	return &StatusHandler{repo: repo}
}

type statusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

func (h *StatusHandler) Create(c *gin.Context) {
	var req statusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	check := &models.StatusCheck{
		CheckID:    uuid.New().String(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := h.repo.Create(check); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save status check"})
		return
	}
	c.JSON(http.StatusOK, check)
}

func (h *StatusHandler) List(c *gin.Context) {
	checks, err := h.repo.List(1000)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load status checks"})
		return
	}
	c.JSON(http.StatusOK, checks)
}
