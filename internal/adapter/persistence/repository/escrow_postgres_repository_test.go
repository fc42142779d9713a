package repository

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase/interfaces"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertEscrowSQL = "INSERT INTO escrows (id, status, version, payload, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)"
	selectEscrowSQL = "SELECT payload, version FROM escrows WHERE id = $1"
	updateEscrowSQL = "UPDATE escrows SET status = $1, version = $2, payload = $3, updated_at = $4 WHERE id = $5 AND version = $6"
	listActiveSQL   = "SELECT id FROM escrows WHERE status <> ALL($1) ORDER BY created_at, id"
)

func TestEscrowPostgresRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEscrowPostgresRepository(db)
	e := newTestEscrow(t, "esc-1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	mock.ExpectExec(regexp.QuoteMeta(insertEscrowSQL)).
		WithArgs("esc-1", "draft", int64(1), sqlmock.AnyArg(), e.CreatedAt, e.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := repo.Create(context.Background(), e)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)

	mock.ExpectExec(regexp.QuoteMeta(insertEscrowSQL)).
		WillReturnError(&pq.Error{Code: pqUniqueViolation})

	_, err = repo.Create(context.Background(), e)
	assert.ErrorIs(t, err, interfaces.ErrEscrowAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscrowPostgresRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEscrowPostgresRepository(db)
	e := newTestEscrow(t, "esc-1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	payload, err := json.Marshal(e)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(selectEscrowSQL)).
		WithArgs("esc-1").
		WillReturnRows(sqlmock.NewRows([]string{"payload", "version"}).AddRow(payload, int64(4)))

	got, err := repo.GetByID(context.Background(), "esc-1")
	require.NoError(t, err)
	assert.Equal(t, "esc-1", got.ID)
	assert.Equal(t, int64(4), got.Version)
	assert.Len(t, got.Buckets, 3)
	assert.Equal(t, entities.PolicyManual, got.Buckets[2].Policy.Type)

	mock.ExpectQuery(regexp.QuoteMeta(selectEscrowSQL)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"payload", "version"}))

	got, err = repo.GetByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Empty(t, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscrowPostgresRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEscrowPostgresRepository(db)
	e := newTestEscrow(t, "esc-1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	e.Version = 3

	mock.ExpectExec(regexp.QuoteMeta(updateEscrowSQL)).
		WithArgs("draft", int64(4), sqlmock.AnyArg(), e.UpdatedAt, "esc-1", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.Update(context.Background(), e)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), saved.Version)

	mock.ExpectExec(regexp.QuoteMeta(updateEscrowSQL)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = repo.Update(context.Background(), e)
	assert.ErrorIs(t, err, interfaces.ErrVersionConflict)

	mock.ExpectExec(regexp.QuoteMeta(updateEscrowSQL)).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.Update(context.Background(), e)
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscrowPostgresRepository_ListActiveIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEscrowPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(listActiveSQL)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("esc-2").AddRow("esc-1"))

	ids, err := repo.ListActiveIDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"esc-2", "esc-1"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscrowPostgresRepository_Migrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS escrows")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, NewEscrowPostgresRepository(db).Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
