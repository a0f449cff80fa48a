package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiopay/studio-pay-api/internal/models"
)

func newFormulaRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func formulaDetalleRows() *sqlmock.Rows {
	inicio := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "disciplina_id", "periodo_id", "parametros", "created_at", "updated_at",
		"disciplina.nombre", "disciplina.color",
		"periodo.numero", "periodo.anio", "periodo.fecha_inicio", "periodo.fecha_fin",
	}).AddRow(
		1, 2, 3, []byte(`{"tarifaBase": 350}`), time.Now(), time.Now(),
		"Cycling", "#FF5500",
		5, 2025, inicio, inicio.AddDate(0, 0, 13),
	)
}

func TestFormulaRepositoryList(t *testing.T) {
	db, mock, cleanup := newFormulaRepoMock(t)
	defer cleanup()
	repo := NewFormulaRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM formulas f").
		WillReturnRows(formulaDetalleRows())

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Cycling", list[0].Disciplina.Nombre)
	assert.Equal(t, 5, list[0].Periodo.Numero)
	assert.JSONEq(t, `{"tarifaBase": 350}`, string(list[0].Parametros))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormulaRepositoryListByPeriodo(t *testing.T) {
	db, mock, cleanup := newFormulaRepoMock(t)
	defer cleanup()
	repo := NewFormulaRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM formulas f").
		WithArgs(int64(3)).
		WillReturnRows(formulaDetalleRows())

	list, err := repo.ListByPeriodo(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(3), list[0].PeriodoID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormulaRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newFormulaRepoMock(t)
	defer cleanup()
	repo := NewFormulaRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO formulas").
		WithArgs(int64(2), int64(3), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))

	f := &models.Formula{DisciplinaID: 2, PeriodoID: 3, Parametros: types.JSONText(`{"tarifaBase": 350}`)}
	require.NoError(t, repo.Create(context.Background(), f))
	assert.Equal(t, int64(1), f.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormulaRepositoryCreateUnknownReference(t *testing.T) {
	db, mock, cleanup := newFormulaRepoMock(t)
	defer cleanup()
	repo := NewFormulaRepository(db)

	mock.ExpectQuery("INSERT INTO formulas").
		WillReturnError(&pq.Error{Code: "23503"})

	err := repo.Create(context.Background(), &models.Formula{DisciplinaID: 99, PeriodoID: 3, Parametros: types.JSONText(`{}`)})
	assert.ErrorIs(t, err, ErrForeignKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormulaRepositoryUpdateParametros(t *testing.T) {
	db, mock, cleanup := newFormulaRepoMock(t)
	defer cleanup()
	repo := NewFormulaRepository(db)

	now := time.Now()
	mock.ExpectQuery("UPDATE formulas SET parametros").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "disciplina_id", "periodo_id", "parametros", "created_at", "updated_at"}).
			AddRow(1, 2, 3, []byte(`{"tarifaBase": 400}`), now, now))

	f, err := repo.UpdateParametros(context.Background(), 1, types.JSONText(`{"tarifaBase": 400}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"tarifaBase": 400}`, string(f.Parametros))

	mock.ExpectQuery("UPDATE formulas SET parametros").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "disciplina_id", "periodo_id", "parametros", "created_at", "updated_at"}))

	_, err = repo.UpdateParametros(context.Background(), 99, types.JSONText(`{}`))
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormulaRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newFormulaRepoMock(t)
	defer cleanup()
	repo := NewFormulaRepository(db)

	mock.ExpectExec("DELETE FROM formulas").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 1))

	mock.ExpectExec("DELETE FROM formulas").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 99), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
