package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studiopay/studio-pay-api/internal/models"
	"github.com/studiopay/studio-pay-api/internal/service"
	appErrors "github.com/studiopay/studio-pay-api/pkg/errors"
	"github.com/studiopay/studio-pay-api/pkg/response"
)

// FormulaService abstracts the payment-formula use cases for the handler.
type FormulaService interface {
	List(ctx context.Context) ([]models.FormulaDetalle, error)
	Create(ctx context.Context, req service.CreateFormulaRequest) (*models.Formula, error)
	UpdateParametros(ctx context.Context, id int64, req service.UpdateFormulaRequest) (*models.Formula, error)
	Delete(ctx context.Context, id int64) error
}

// FormulaHandler exposes payment-formula endpoints. Update and delete are
// path scoped only; the id always comes from the URL.
type FormulaHandler struct {
	service FormulaService
}

// NewFormulaHandler constructs a formula handler.
func NewFormulaHandler(svc FormulaService) *FormulaHandler {
	return &FormulaHandler{service: svc}
}

// List godoc
// @Summary List formulas
// @Description List every formula with its discipline and period expanded
// @Tags Formulas
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /formulas [get]
func (h *FormulaHandler) List(c *gin.Context) {
	formulas, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, formulas)
}

// Create godoc
// @Summary Create formula
// @Tags Formulas
// @Accept json
// @Produce json
// @Param payload body service.CreateFormulaRequest true "Formula payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /formulas [post]
func (h *FormulaHandler) Create(c *gin.Context) {
	var req service.CreateFormulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	formula, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, formula)
}

// Update godoc
// @Summary Update formula parameters
// @Tags Formulas
// @Accept json
// @Produce json
// @Param id path int true "Formula ID"
// @Param payload body service.UpdateFormulaRequest true "Parameters payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /formulas/{id} [put]
func (h *FormulaHandler) Update(c *gin.Context) {
	id, ok := parseFormulaID(c)
	if !ok {
		return
	}
	var req service.UpdateFormulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	formula, err := h.service.UpdateParametros(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, formula)
}

// Delete godoc
// @Summary Delete formula
// @Tags Formulas
// @Produce json
// @Param id path int true "Formula ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /formulas/{id} [delete]
func (h *FormulaHandler) Delete(c *gin.Context) {
	id, ok := parseFormulaID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "fórmula eliminada correctamente"})
}

// parseFormulaID rejects non-numeric ids before any storage call.
func parseFormulaID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "id inválido"))
		return 0, false
	}
	return id, true
}
