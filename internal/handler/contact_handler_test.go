package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"absign/internal/domain"
	"absign/internal/models"
	"absign/internal/repository"
	"absign/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func contactRouter(db *gorm.DB, transport *fakeTransport) *gin.Engine {
	h := NewContactHandler(repository.NewContactRepository(db), service.NewEmailService(transport, "shop@example.com"))
	r := gin.New()
	r.POST("/api/contact", h.Submit)
	return r
}

func TestContactSubmit(t *testing.T) {
	db := testDB(t)
	transport := &fakeTransport{fail: map[string]bool{}}
	r := contactRouter(db, transport)

	w := postJSON(t, r, "/api/contact", map[string]string{
		"name": "Sam Ortiz", "email": "sam@example.com", "message": "Need 4 door signs",
		"subject": "Custom Quote Request - Door Signs", "company": "Ortiz Dental",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.NotifySuccess, resp["status"])
	assert.Equal(t, []string{"shop@example.com"}, transport.sent)

	var saved models.Contact
	require.NoError(t, db.First(&saved).Error)
	assert.Equal(t, "Sam Ortiz", saved.Name)
	assert.True(t, saved.IsQuoteRequest())
}

func TestContactSubmitPersistsDespiteEmailFailure(t *testing.T) {
	db := testDB(t)
	transport := &fakeTransport{fail: map[string]bool{"shop@example.com": true}}
	r := contactRouter(db, transport)

	w := postJSON(t, r, "/api/contact", map[string]string{
		"name": "Sam Ortiz", "email": "sam@example.com", "message": "Hello",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.NotifyWarning, resp["status"])

	var count int64
	require.NoError(t, db.Model(&models.Contact{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestContactSubmitValidation(t *testing.T) {
	r := contactRouter(testDB(t), &fakeTransport{fail: map[string]bool{}})
	w := postJSON(t, r, "/api/contact", map[string]string{"name": "Sam Ortiz"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
