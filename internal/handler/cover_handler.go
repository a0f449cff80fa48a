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

// CoverService abstracts the substitute-cover use cases for the handler.
type CoverService interface {
	List(ctx context.Context, periodoID int64) ([]models.CoverDetalle, error)
	Enlazar(ctx context.Context, req service.EnlazarCoversRequest) (*service.EnlazarCoversResult, error)
}

// CoverHandler exposes substitute-cover endpoints.
type CoverHandler struct {
	service CoverService
}

// NewCoverHandler constructs a cover handler.
func NewCoverHandler(svc CoverService) *CoverHandler {
	return &CoverHandler{service: svc}
}

// List godoc
// @Summary List covers of a period
// @Tags Covers
// @Produce json
// @Param periodoId query int true "Period ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /covers [get]
func (h *CoverHandler) List(c *gin.Context) {
	periodoID, err := strconv.ParseInt(c.Query("periodoId"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "periodoId es obligatorio"))
		return
	}
	covers, err := h.service.List(c.Request.Context(), periodoID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, covers)
}

// Enlazar godoc
// @Summary Link pending covers
// @Description Promote clase_temp to clase_id for every pending cover of the period whose staged class exists
// @Tags Covers
// @Accept json
// @Produce json
// @Param payload body service.EnlazarCoversRequest true "Period payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /covers/enlazar [post]
func (h *CoverHandler) Enlazar(c *gin.Context) {
	var req service.EnlazarCoversRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "periodoId es obligatorio"))
		return
	}
	result, err := h.service.Enlazar(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
