package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/studiopay/studio-pay-api/internal/models"
	"github.com/studiopay/studio-pay-api/pkg/export"
	appErrors "github.com/studiopay/studio-pay-api/pkg/errors"
)

type periodoRepository interface {
	List(ctx context.Context) ([]models.Periodo, error)
	FindByID(ctx context.Context, id int64) (*models.Periodo, error)
	Create(ctx context.Context, p *models.Periodo) error
}

type periodoFormulaRepository interface {
	ListByPeriodo(ctx context.Context, periodoID int64) ([]models.FormulaDetalle, error)
}

// CreatePeriodoRequest describes the payload for creating payroll periods.
// Dates arrive as strings and are parsed before persistence.
type CreatePeriodoRequest struct {
	Numero      int    `json:"numero" validate:"required,min=1"`
	Anio        int    `json:"año" validate:"required,min=2000"`
	FechaInicio string `json:"fechaInicio" validate:"required"`
	FechaFin    string `json:"fechaFin" validate:"required"`
	FechaPago   string `json:"fechaPago" validate:"required"`
}

// PeriodoService orchestrates payroll period workflows.
type PeriodoService struct {
	repo      periodoRepository
	formulas  periodoFormulaRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPeriodoService creates a new period service instance.
func NewPeriodoService(repo periodoRepository, formulas periodoFormulaRepository, validate *validator.Validate, logger *zap.Logger) *PeriodoService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PeriodoService{repo: repo, formulas: formulas, validator: validate, logger: logger}
}

// List returns every period, newest first.
func (s *PeriodoService) List(ctx context.Context) ([]models.Periodo, error) {
	periodos, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron obtener los periodos")
	}
	return periodos, nil
}

// Create adds a new period after parsing and validating its dates.
func (s *PeriodoService) Create(ctx context.Context, req CreatePeriodoRequest) (*models.Periodo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "numero, año y las tres fechas son obligatorios")
	}

	inicio, err := parseFecha(req.FechaInicio)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "fechaInicio inválida")
	}
	fin, err := parseFecha(req.FechaFin)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "fechaFin inválida")
	}
	pago, err := parseFecha(req.FechaPago)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "fechaPago inválida")
	}
	if !inicio.Before(fin) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "fechaInicio debe ser anterior a fechaFin")
	}

	periodo := &models.Periodo{
		Numero:      req.Numero,
		Anio:        req.Anio,
		FechaInicio: inicio,
		FechaFin:    fin,
		FechaPago:   pago,
	}

	if err := s.repo.Create(ctx, periodo); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo crear el periodo")
	}
	return periodo, nil
}

// Export renders the payroll summary of one period (formula parameters per
// discipline) as CSV or PDF.
func (s *PeriodoService) Export(ctx context.Context, id int64, formato string) (string, string, []byte, error) {
	periodo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", nil, appErrors.Clone(appErrors.ErrNotFound, "periodo no encontrado")
		}
		return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo obtener el periodo")
	}

	formulas, err := s.formulas.ListByPeriodo(ctx, id)
	if err != nil {
		return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron obtener las fórmulas del periodo")
	}

	table := export.Table{
		Title:   fmt.Sprintf("Periodo %d/%d", periodo.Numero, periodo.Anio),
		Headers: []string{"Disciplina", "Parámetros", "Inicio", "Fin", "Pago"},
	}
	for _, f := range formulas {
		table.Rows = append(table.Rows, []string{
			f.Disciplina.Nombre,
			string(f.Parametros),
			periodo.FechaInicio.Format("2006-01-02"),
			periodo.FechaFin.Format("2006-01-02"),
			periodo.FechaPago.Format("2006-01-02"),
		})
	}

	base := fmt.Sprintf("periodo_%d_%d", periodo.Anio, periodo.Numero)
	switch formato {
	case "pdf":
		data, err := export.RenderPDF(table)
		if err != nil {
			return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo generar el PDF")
		}
		return base + ".pdf", "application/pdf", data, nil
	case "", "csv":
		data, err := export.RenderCSV(table)
		if err != nil {
			return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo generar el CSV")
		}
		return base + ".csv", "text/csv", data, nil
	default:
		return "", "", nil, appErrors.Clone(appErrors.ErrValidation, "formato no soportado")
	}
}

func parseFecha(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}
