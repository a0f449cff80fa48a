package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studiopay/studio-pay-api/internal/models"
	"github.com/studiopay/studio-pay-api/internal/service"
	appErrors "github.com/studiopay/studio-pay-api/pkg/errors"
	"github.com/studiopay/studio-pay-api/pkg/response"
)

// PeriodoService abstracts the period use cases for the handler.
type PeriodoService interface {
	List(ctx context.Context) ([]models.Periodo, error)
	Create(ctx context.Context, req service.CreatePeriodoRequest) (*models.Periodo, error)
	Export(ctx context.Context, id int64, formato string) (string, string, []byte, error)
}

// PeriodoHandler exposes payroll period endpoints.
type PeriodoHandler struct {
	service PeriodoService
}

// NewPeriodoHandler constructs a period handler.
func NewPeriodoHandler(svc PeriodoService) *PeriodoHandler {
	return &PeriodoHandler{service: svc}
}

// List godoc
// @Summary List payroll periods
// @Description List every period, newest start date first
// @Tags Periodos
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /periodos [get]
func (h *PeriodoHandler) List(c *gin.Context) {
	periodos, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, periodos)
}

// Create godoc
// @Summary Create payroll period
// @Tags Periodos
// @Accept json
// @Produce json
// @Param payload body service.CreatePeriodoRequest true "Period payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /periodos [post]
func (h *PeriodoHandler) Create(c *gin.Context) {
	var req service.CreatePeriodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	periodo, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, periodo)
}

// Export godoc
// @Summary Export period payroll summary
// @Description Download the formula summary of one period as CSV or PDF
// @Tags Periodos
// @Produce octet-stream
// @Param id path int true "Period ID"
// @Param formato query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /periodos/{id}/export [get]
func (h *PeriodoHandler) Export(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "id inválido"))
		return
	}

	filename, contentType, data, err := h.service.Export(c.Request.Context(), id, c.DefaultQuery("formato", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
