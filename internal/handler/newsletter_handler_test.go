package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"absign/internal/models"
	"absign/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsletterSubscribeDedupes(t *testing.T) {
	db := testDB(t)
	h := NewNewsletterHandler(repository.NewNewsletterRepository(db))
	r := gin.New()
	r.POST("/api/newsletter/subscribe", h.Subscribe)

	w := postJSON(t, r, "/api/newsletter/subscribe", map[string]string{"email": "Lee@Example.com", "source": "footer"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["alreadySubscribed"])

	// same address with different casing is the same subscriber
	w = postJSON(t, r, "/api/newsletter/subscribe", map[string]string{"email": "lee@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["alreadySubscribed"])

	var count int64
	require.NoError(t, db.Model(&models.NewsletterSubscriber{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestNewsletterSubscribeRejectsInvalidEmail(t *testing.T) {
	h := NewNewsletterHandler(repository.NewNewsletterRepository(testDB(t)))
	r := gin.New()
	r.POST("/api/newsletter/subscribe", h.Subscribe)

	w := postJSON(t, r, "/api/newsletter/subscribe", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
