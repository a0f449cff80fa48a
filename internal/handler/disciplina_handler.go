package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studiopay/studio-pay-api/internal/models"
	"github.com/studiopay/studio-pay-api/internal/service"
	appErrors "github.com/studiopay/studio-pay-api/pkg/errors"
	"github.com/studiopay/studio-pay-api/pkg/response"
)

// DisciplinaService abstracts the discipline use cases for the handler.
type DisciplinaService interface {
	List(ctx context.Context) ([]models.Disciplina, error)
	Create(ctx context.Context, req service.CreateDisciplinaRequest) (*models.Disciplina, error)
}

// DisciplinaHandler exposes discipline endpoints.
type DisciplinaHandler struct {
	service DisciplinaService
}

// NewDisciplinaHandler constructs a discipline handler.
func NewDisciplinaHandler(svc DisciplinaService) *DisciplinaHandler {
	return &DisciplinaHandler{service: svc}
}

// List godoc
// @Summary List disciplines
// @Description List every discipline ordered by name
// @Tags Disciplinas
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /disciplinas [get]
func (h *DisciplinaHandler) List(c *gin.Context) {
	disciplinas, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, disciplinas)
}

// Create godoc
// @Summary Create discipline
// @Tags Disciplinas
// @Accept json
// @Produce json
// @Param payload body service.CreateDisciplinaRequest true "Discipline payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /disciplinas [post]
func (h *DisciplinaHandler) Create(c *gin.Context) {
	var req service.CreateDisciplinaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	disciplina, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, disciplina)
}
