package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx/types"
	"go.uber.org/zap"

	"github.com/studiopay/studio-pay-api/internal/models"
	"github.com/studiopay/studio-pay-api/internal/repository"
	appErrors "github.com/studiopay/studio-pay-api/pkg/errors"
)

const formulasCacheKey = "formulas:all"

type formulaRepository interface {
	List(ctx context.Context) ([]models.FormulaDetalle, error)
	FindByID(ctx context.Context, id int64) (*models.Formula, error)
	Create(ctx context.Context, f *models.Formula) error
	UpdateParametros(ctx context.Context, id int64, parametros types.JSONText) (*models.Formula, error)
	Delete(ctx context.Context, id int64) error
}

// CreateFormulaRequest describes the payload for creating formulas.
type CreateFormulaRequest struct {
	DisciplinaID int64          `json:"disciplinaId" validate:"required,min=1"`
	PeriodoID    int64          `json:"periodoId" validate:"required,min=1"`
	Parametros   types.JSONText `json:"parametros" validate:"required"`
}

// UpdateFormulaRequest replaces the parameter document of a formula.
type UpdateFormulaRequest struct {
	Parametros types.JSONText `json:"parametros" validate:"required"`
}

// FormulaService orchestrates payment-formula workflows.
type FormulaService struct {
	repo      formulaRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFormulaService creates a new formula service instance.
func NewFormulaService(repo formulaRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *FormulaService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormulaService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns every formula with discipline and period expanded.
func (s *FormulaService) List(ctx context.Context) ([]models.FormulaDetalle, error) {
	cached := []models.FormulaDetalle{}
	if s.cache.Get(ctx, formulasCacheKey, &cached) {
		return cached, nil
	}

	formulas, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron obtener las fórmulas")
	}

	s.cache.Set(ctx, formulasCacheKey, formulas)
	return formulas, nil
}

// Create stores a new formula. Referential integrity of disciplinaId and
// periodoId is enforced by the database foreign keys.
func (s *FormulaService) Create(ctx context.Context, req CreateFormulaRequest) (*models.Formula, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "disciplinaId, periodoId y parametros son obligatorios")
	}

	formula := &models.Formula{
		DisciplinaID: req.DisciplinaID,
		PeriodoID:    req.PeriodoID,
		Parametros:   req.Parametros,
	}

	if err := s.repo.Create(ctx, formula); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "la disciplina o el periodo referenciado no existe")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo crear la fórmula")
	}

	s.cache.Invalidate(ctx, formulasCacheKey)
	return formula, nil
}

// UpdateParametros replaces the parameter document of the formula.
func (s *FormulaService) UpdateParametros(ctx context.Context, id int64, req UpdateFormulaRequest) (*models.Formula, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "parametros es obligatorio")
	}

	formula, err := s.repo.UpdateParametros(ctx, id, req.Parametros)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "fórmula no encontrada")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo actualizar la fórmula")
	}

	s.cache.Invalidate(ctx, formulasCacheKey)
	return formula, nil
}

// Delete removes the formula.
func (s *FormulaService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "fórmula no encontrada")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo eliminar la fórmula")
	}

	s.cache.Invalidate(ctx, formulasCacheKey)
	return nil
}
