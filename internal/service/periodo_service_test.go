package service

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiopay/studio-pay-api/internal/models"
	appErrors "github.com/studiopay/studio-pay-api/pkg/errors"
)

type mockPeriodoRepo struct {
	items   map[int64]*models.Periodo
	created []models.Periodo
}

func (m *mockPeriodoRepo) List(ctx context.Context) ([]models.Periodo, error) {
	out := []models.Periodo{}
	for _, p := range m.items {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockPeriodoRepo) FindByID(ctx context.Context, id int64) (*models.Periodo, error) {
	if p, ok := m.items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockPeriodoRepo) Create(ctx context.Context, p *models.Periodo) error {
	p.ID = int64(len(m.created) + 1)
	m.created = append(m.created, *p)
	return nil
}

type mockPeriodoFormulaRepo struct {
	items []models.FormulaDetalle
}

func (m *mockPeriodoFormulaRepo) ListByPeriodo(ctx context.Context, periodoID int64) ([]models.FormulaDetalle, error) {
	return m.items, nil
}

func TestPeriodoServiceCreate(t *testing.T) {
	repo := &mockPeriodoRepo{}
	svc := NewPeriodoService(repo, &mockPeriodoFormulaRepo{}, nil, nil)

	p, err := svc.Create(context.Background(), CreatePeriodoRequest{
		Numero:      5,
		Anio:        2025,
		FechaInicio: "2025-03-01",
		FechaFin:    "2025-03-14",
		FechaPago:   "2025-03-19",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), p.FechaInicio)
}

func TestPeriodoServiceCreateAcceptsRFC3339(t *testing.T) {
	repo := &mockPeriodoRepo{}
	svc := NewPeriodoService(repo, &mockPeriodoFormulaRepo{}, nil, nil)

	p, err := svc.Create(context.Background(), CreatePeriodoRequest{
		Numero:      1,
		Anio:        2025,
		FechaInicio: "2025-01-01T00:00:00Z",
		FechaFin:    "2025-01-14T00:00:00Z",
		FechaPago:   "2025-01-19T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 2025, p.Anio)
}

func TestPeriodoServiceCreateRejectsInvertedDates(t *testing.T) {
	svc := NewPeriodoService(&mockPeriodoRepo{}, &mockPeriodoFormulaRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), CreatePeriodoRequest{
		Numero:      5,
		Anio:        2025,
		FechaInicio: "2025-03-14",
		FechaFin:    "2025-03-01",
		FechaPago:   "2025-03-19",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "fechaInicio debe ser anterior a fechaFin", appErr.Message)
}

func TestPeriodoServiceCreateRejectsMalformedDate(t *testing.T) {
	svc := NewPeriodoService(&mockPeriodoRepo{}, &mockPeriodoFormulaRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), CreatePeriodoRequest{
		Numero:      5,
		Anio:        2025,
		FechaInicio: "01/03/2025",
		FechaFin:    "2025-03-14",
		FechaPago:   "2025-03-19",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestPeriodoServiceExportCSV(t *testing.T) {
	inicio := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockPeriodoRepo{items: map[int64]*models.Periodo{
		3: {ID: 3, Numero: 5, Anio: 2025, FechaInicio: inicio, FechaFin: inicio.AddDate(0, 0, 13), FechaPago: inicio.AddDate(0, 0, 18)},
	}}
	formulas := &mockPeriodoFormulaRepo{items: []models.FormulaDetalle{{
		Formula:    models.Formula{ID: 1, DisciplinaID: 2, PeriodoID: 3, Parametros: types.JSONText(`{"tarifaBase":350}`)},
		Disciplina: models.DisciplinaResumen{Nombre: "Cycling"},
	}}}
	svc := NewPeriodoService(repo, formulas, nil, nil)

	name, contentType, data, err := svc.Export(context.Background(), 3, "csv")
	require.NoError(t, err)
	assert.Equal(t, "periodo_2025_5.csv", name)
	assert.Equal(t, "text/csv", contentType)
	assert.True(t, strings.Contains(string(data), "Cycling"))
}

func TestPeriodoServiceExportUnknownPeriodo(t *testing.T) {
	svc := NewPeriodoService(&mockPeriodoRepo{items: map[int64]*models.Periodo{}}, &mockPeriodoFormulaRepo{}, nil, nil)

	_, _, _, err := svc.Export(context.Background(), 99, "csv")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestPeriodoServiceExportUnsupportedFormat(t *testing.T) {
	inicio := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockPeriodoRepo{items: map[int64]*models.Periodo{
		3: {ID: 3, Numero: 5, Anio: 2025, FechaInicio: inicio, FechaFin: inicio.AddDate(0, 0, 13), FechaPago: inicio.AddDate(0, 0, 18)},
	}}
	svc := NewPeriodoService(repo, &mockPeriodoFormulaRepo{}, nil, nil)

	_, _, _, err := svc.Export(context.Background(), 3, "xlsx")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}
