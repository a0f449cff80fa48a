package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/studiopay/studio-pay-api/internal/models"
	appErrors "github.com/studiopay/studio-pay-api/pkg/errors"
)

type coverRepository interface {
	ListByPeriodo(ctx context.Context, periodoID int64) ([]models.CoverDetalle, error)
	LinkPendientes(ctx context.Context, periodoID int64) (int64, error)
}

// EnlazarCoversRequest identifies the period whose pending covers should
// be linked to their staged classes.
type EnlazarCoversRequest struct {
	PeriodoID int64 `json:"periodoId" validate:"required,min=1"`
}

// EnlazarCoversResult reports the outcome of a linkage run.
type EnlazarCoversResult struct {
	Message      string `json:"message"`
	UpdatedCount int64  `json:"updatedCount"`
}

// CoverService orchestrates substitute-cover workflows.
type CoverService struct {
	repo      coverRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCoverService creates a new cover service instance.
func NewCoverService(repo coverRepository, validate *validator.Validate, logger *zap.Logger) *CoverService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoverService{repo: repo, validator: validate, logger: logger}
}

// List returns the covers of a period with class names expanded.
func (s *CoverService) List(ctx context.Context, periodoID int64) ([]models.CoverDetalle, error) {
	covers, err := s.repo.ListByPeriodo(ctx, periodoID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron obtener los covers")
	}
	return covers, nil
}

// Enlazar links every pending cover of the period whose staged class
// exists. The conditional update is a single statement, so concurrent
// invocations cannot double-link a row and the operation is retry safe.
// Covers staging a missing class remain pending and are not counted.
func (s *CoverService) Enlazar(ctx context.Context, req EnlazarCoversRequest) (*EnlazarCoversResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "periodoId es obligatorio")
	}

	updated, err := s.repo.LinkPendientes(ctx, req.PeriodoID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron enlazar los covers")
	}

	s.logger.Info("covers enlazados",
		zap.Int64("periodo_id", req.PeriodoID),
		zap.Int64("updated", updated),
	)

	return &EnlazarCoversResult{
		Message:      fmt.Sprintf("%d covers actualizados correctamente", updated),
		UpdatedCount: updated,
	}, nil
}
