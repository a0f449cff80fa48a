package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiopay/studio-pay-api/internal/models"
	"github.com/studiopay/studio-pay-api/internal/service"
	appErrors "github.com/studiopay/studio-pay-api/pkg/errors"
)

type periodoServiceMock struct {
	listResp     []models.Periodo
	listErr      error
	createResp   *models.Periodo
	createErr    error
	exportName   string
	exportType   string
	exportData   []byte
	exportErr    error
	exportCalled bool
	lastFormato  string
}

func (m *periodoServiceMock) List(ctx context.Context) ([]models.Periodo, error) {
	return m.listResp, m.listErr
}

func (m *periodoServiceMock) Create(ctx context.Context, req service.CreatePeriodoRequest) (*models.Periodo, error) {
	return m.createResp, m.createErr
}

func (m *periodoServiceMock) Export(ctx context.Context, id int64, formato string) (string, string, []byte, error) {
	m.exportCalled = true
	m.lastFormato = formato
	return m.exportName, m.exportType, m.exportData, m.exportErr
}

func TestPeriodoHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	inicio := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	mockSvc := &periodoServiceMock{
		createResp: &models.Periodo{ID: 3, Numero: 5, Anio: 2025, FechaInicio: inicio},
	}
	handler := NewPeriodoHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"numero":5,"año":2025,"fechaInicio":"2025-03-01","fechaFin":"2025-03-14","fechaPago":"2025-03-19"}`
	req, _ := http.NewRequest(http.MethodPost, "/periodos", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"año":2025`)
}

func TestPeriodoHandlerCreateInvalidDates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &periodoServiceMock{
		createErr: appErrors.Clone(appErrors.ErrValidation, "fechaInicio debe ser anterior a fechaFin"),
	}
	handler := NewPeriodoHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"numero":5,"año":2025,"fechaInicio":"2025-03-14","fechaFin":"2025-03-01","fechaPago":"2025-03-19"}`
	req, _ := http.NewRequest(http.MethodPost, "/periodos", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPeriodoHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &periodoServiceMock{
		exportName: "periodo_2025_5.csv",
		exportType: "text/csv",
		exportData: []byte("Disciplina\n"),
	}
	handler := NewPeriodoHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/periodos/3/export", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "3"}}

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", mockSvc.lastFormato)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "periodo_2025_5.csv")
}

func TestPeriodoHandlerExportNonNumericID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &periodoServiceMock{}
	handler := NewPeriodoHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/periodos/abc/export", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Export(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.exportCalled)
}

func TestPeriodoHandlerExportUnknownPeriodo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &periodoServiceMock{
		exportErr: appErrors.Clone(appErrors.ErrNotFound, "periodo no encontrado"),
	}
	handler := NewPeriodoHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/periodos/99/export?formato=pdf", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	handler.Export(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "pdf", mockSvc.lastFormato)
}
