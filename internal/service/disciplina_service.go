package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/studiopay/studio-pay-api/internal/models"
	"github.com/studiopay/studio-pay-api/internal/repository"
	appErrors "github.com/studiopay/studio-pay-api/pkg/errors"
)

const disciplinasCacheKey = "disciplinas:all"

type disciplinaRepository interface {
	List(ctx context.Context) ([]models.Disciplina, error)
	ExistsByNombre(ctx context.Context, nombre string) (bool, error)
	Create(ctx context.Context, d *models.Disciplina) error
}

// CreateDisciplinaRequest describes the payload for creating disciplines.
type CreateDisciplinaRequest struct {
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion *string `json:"descripcion"`
	Color       *string `json:"color"`
	Activo      *bool   `json:"activo"`
}

// DisciplinaService orchestrates discipline workflows.
type DisciplinaService struct {
	repo      disciplinaRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDisciplinaService creates a new discipline service instance.
func NewDisciplinaService(repo disciplinaRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *DisciplinaService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DisciplinaService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns every discipline ordered by name.
func (s *DisciplinaService) List(ctx context.Context) ([]models.Disciplina, error) {
	cached := []models.Disciplina{}
	if s.cache.Get(ctx, disciplinasCacheKey, &cached) {
		return cached, nil
	}

	disciplinas, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron obtener las disciplinas")
	}

	s.cache.Set(ctx, disciplinasCacheKey, disciplinas)
	return disciplinas, nil
}

// Create adds a new discipline enforcing name uniqueness. Activo defaults
// to true when omitted.
func (s *DisciplinaService) Create(ctx context.Context, req CreateDisciplinaRequest) (*models.Disciplina, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "el nombre es obligatorio")
	}

	exists, err := s.repo.ExistsByNombre(ctx, req.Nombre)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo verificar la disciplina")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "ya existe una disciplina con ese nombre")
	}

	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}

	disciplina := &models.Disciplina{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Color:       req.Color,
		Activo:      activo,
	}

	if err := s.repo.Create(ctx, disciplina); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "ya existe una disciplina con ese nombre")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo crear la disciplina")
	}

	s.cache.Invalidate(ctx, disciplinasCacheKey)
	return disciplina, nil
}
