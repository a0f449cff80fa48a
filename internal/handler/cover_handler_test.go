package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiopay/studio-pay-api/internal/models"
	"github.com/studiopay/studio-pay-api/internal/service"
)

type coverServiceMock struct {
	listResp      []models.CoverDetalle
	listErr       error
	enlazarResp   *service.EnlazarCoversResult
	enlazarErr    error
	listCalled    bool
	enlazarCalled bool
	lastPeriodoID int64
}

func (m *coverServiceMock) List(ctx context.Context, periodoID int64) ([]models.CoverDetalle, error) {
	m.listCalled = true
	m.lastPeriodoID = periodoID
	return m.listResp, m.listErr
}

func (m *coverServiceMock) Enlazar(ctx context.Context, req service.EnlazarCoversRequest) (*service.EnlazarCoversResult, error) {
	m.enlazarCalled = true
	m.lastPeriodoID = req.PeriodoID
	return m.enlazarResp, m.enlazarErr
}

func TestCoverHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &coverServiceMock{listResp: []models.CoverDetalle{{Cover: models.Cover{ID: 1, PeriodoID: 3}}}}
	handler := NewCoverHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/covers?periodoId=3", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.listCalled)
	assert.Equal(t, int64(3), mockSvc.lastPeriodoID)
}

func TestCoverHandlerListMissingPeriodo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &coverServiceMock{}
	handler := NewCoverHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/covers", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.listCalled)
}

func TestCoverHandlerEnlazar(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &coverServiceMock{
		enlazarResp: &service.EnlazarCoversResult{Message: "4 covers actualizados correctamente", UpdatedCount: 4},
	}
	handler := NewCoverHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/covers/enlazar", bytes.NewBufferString(`{"periodoId":3}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Enlazar(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.enlazarCalled)
	assert.Contains(t, w.Body.String(), "4 covers actualizados correctamente")
}

func TestCoverHandlerEnlazarInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &coverServiceMock{}
	handler := NewCoverHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/covers/enlazar", bytes.NewBufferString(`{"periodoId":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Enlazar(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.enlazarCalled)
}
