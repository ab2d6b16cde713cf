package handler

import (
	"math"
	"net/http"
	"strconv"

	"absign/internal/models"
	"absign/internal/repository"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	repo *repository.ReviewRepository
}

func NewReviewHandler(repo *repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{repo: repo}
}

type reviewRequest struct {
	ProductID    string `json:"product_id" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
	PhotoURL     string `json:"photo_url"`
}

// Create stores a review awaiting moderation; it will not appear in the
// public listing until approved.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review := &models.Review{
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		PhotoURL:     req.PhotoURL,
		Approved:     false,
	}
	if err := h.repo.Create(review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"review":  review,
		"message": "Review submitted and pending moderation",
	})
}

// ListByProduct returns approved reviews with aggregate rating stats.
// An unknown product yields an empty list, not an error.
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID := c.Param("product_id")
	reviews, err := h.repo.ListApprovedByProduct(productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load reviews"})
		return
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	average := 0.0
	if len(reviews) > 0 {
		average = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews":       reviews,
		"averageRating": average,
		"totalReviews":  len(reviews),
	})
}

// ListPending returns reviews awaiting moderation (admin only).
func (h *ReviewHandler) ListPending(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	reviews, err := h.repo.ListPending(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Approve publishes a pending review (admin only).
func (h *ReviewHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}
	if err := h.repo.Approve(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not approve review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
