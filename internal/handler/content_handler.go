package handler

import (
	"errors"
	"net/http"

	"absign/internal/models"
	"absign/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContentHandler struct {
	repo *repository.ContentRepository
}

func NewContentHandler(repo *repository.ContentRepository) *ContentHandler {
	return &ContentHandler{repo: repo}
}

type contentRequest struct {
	Content    string `json:"content" binding:"required"`
	FontSize   string `json:"font_size"`
	FontFamily string `json:"font_family"`
	PlainText  string `json:"plain_text"`
}

// Save upserts one editable content section. Saving the same section_id
// twice updates in place; the total section count stays constant.
func (h *ContentHandler) Save(c *gin.Context) {
	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.repo.Upsert(&models.ContentSection{
		SectionID:  c.Param("section_id"),
		Content:    req.Content,
		FontSize:   req.FontSize,
		FontFamily: req.FontFamily,
		PlainText:  req.PlainText,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save content"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *ContentHandler) Get(c *gin.Context) {
	section, err := h.repo.GetBySectionID(c.Param("section_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "content section not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load content"})
		return
	}
	c.JSON(http.StatusOK, section)
}

func (h *ContentHandler) List(c *gin.Context) {
	sections, err := h.repo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load content"})
		return
	}
	c.JSON(http.StatusOK, sections)
}
