package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"absign/internal/models"
	"absign/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func reviewRouter(db *gorm.DB) (*gin.Engine, *repository.ReviewRepository) {
	repo := repository.NewReviewRepository(db)
	h := NewReviewHandler(repo)
	r := gin.New()
	r.POST("/api/reviews", h.Create)
	r.GET("/api/reviews/:product_id", h.ListByProduct)
	r.GET("/api/admin/reviews/pending", h.ListPending)
	r.PUT("/api/admin/reviews/:id/approve", h.Approve)
	return r, repo
}

func TestReviewCreateStartsUnapproved(t *testing.T) {
	r, _ := reviewRouter(testDB(t))

	w := postJSON(t, r, "/api/reviews", map[string]interface{}{
		"product_id": "braille-office-sign", "customer_name": "Lee", "rating": 5, "comment": "Great quality",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// not yet visible in the public listing
	req := httptest.NewRequest(http.MethodGet, "/api/reviews/braille-office-sign", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Reviews      []models.Review `json:"reviews"`
		TotalReviews int             `json:"totalReviews"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Reviews)
	assert.Zero(t, resp.TotalReviews)
}

func TestReviewRatingBounds(t *testing.T) {
	r, _ := reviewRouter(testDB(t))
	for _, rating := range []int{0, 6} {
		w := postJSON(t, r, "/api/reviews", map[string]interface{}{
			"product_id": "p1", "customer_name": "Lee", "rating": rating,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
	}
}

func TestReviewApprovePublishesAndAverages(t *testing.T) {
	db := testDB(t)
	r, repo := reviewRouter(db)

	for _, rating := range []int{5, 4} {
		w := postJSON(t, r, "/api/reviews", map[string]interface{}{
			"product_id": "p1", "customer_name": "Lee", "rating": rating,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	pending, err := repo.ListPending(50, 0)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	for _, rev := range pending {
		req := httptest.NewRequest(http.MethodPut,
			"/api/admin/reviews/"+itoa(rev.ID)+"/approve", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/p1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Reviews       []models.Review `json:"reviews"`
		AverageRating float64         `json:"averageRating"`
		TotalReviews  int             `json:"totalReviews"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Reviews, 2)
	assert.Equal(t, 4.5, resp.AverageRating)
	assert.Equal(t, 2, resp.TotalReviews)
}

func TestReviewApproveUnknownID(t *testing.T) {
	r, _ := reviewRouter(testDB(t))
	req := httptest.NewRequest(http.MethodPut, "/api/admin/reviews/999/approve", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
