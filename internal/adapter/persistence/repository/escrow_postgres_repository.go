package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase/interfaces"

	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// EscrowSchema creates the table used by EscrowPostgresRepository.
const EscrowSchema = `
CREATE TABLE IF NOT EXISTS escrows (
	id         TEXT PRIMARY KEY,
	status     TEXT NOT NULL,
	version    BIGINT NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// EscrowPostgresRepository stores the aggregate as a JSONB document with
// status and version lifted into columns for filtering and optimistic
// locking.
type EscrowPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IEscrowRepository = (*EscrowPostgresRepository)(nil)

func NewEscrowPostgresRepository(db *sql.DB) *EscrowPostgresRepository {
	return &EscrowPostgresRepository{db: db}
}

// Migrate applies EscrowSchema.
func (r *EscrowPostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, EscrowSchema); err != nil {
		return fmt.Errorf("failed to migrate escrows: %w", err)
	}
	return nil
}

func (r *EscrowPostgresRepository) Create(ctx context.Context, e entities.Escrow) (entities.Escrow, error) {
	e.Version = 1
	payload, err := json.Marshal(e)
	if err != nil {
		return entities.Escrow{}, err
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO escrows (id, status, version, payload, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)",
		e.ID, string(e.Status), e.Version, payload, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return entities.Escrow{}, interfaces.ErrEscrowAlreadyExists
		}
		return entities.Escrow{}, fmt.Errorf("failed to insert escrow: %w", err)
	}
	return e, nil
}

func (r *EscrowPostgresRepository) GetByID(ctx context.Context, id string) (entities.Escrow, error) {
	row := r.db.QueryRowContext(ctx, "SELECT payload, version FROM escrows WHERE id = $1", id)

	var (
		payload []byte
		version int64
	)
	err := row.Scan(&payload, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Escrow{}, nil
	}
	if err != nil {
		return entities.Escrow{}, fmt.Errorf("failed to get escrow: %w", err)
	}

	var e entities.Escrow
	if err := json.Unmarshal(payload, &e); err != nil {
		return entities.Escrow{}, fmt.Errorf("failed to decode escrow %s: %w", id, err)
	}
	e.Version = version
	return e, nil
}

func (r *EscrowPostgresRepository) Update(ctx context.Context, e entities.Escrow) (entities.Escrow, error) {
	expected := e.Version
	e.Version++
	payload, err := json.Marshal(e)
	if err != nil {
		return entities.Escrow{}, err
	}

	res, err := r.db.ExecContext(ctx,
		"UPDATE escrows SET status = $1, version = $2, payload = $3, updated_at = $4 WHERE id = $5 AND version = $6",
		string(e.Status), e.Version, payload, e.UpdatedAt, e.ID, expected)
	if err != nil {
		return entities.Escrow{}, fmt.Errorf("failed to update escrow: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Escrow{}, err
	}
	if n == 0 {
		return entities.Escrow{}, interfaces.ErrVersionConflict
	}
	return e, nil
}

func (r *EscrowPostgresRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id FROM escrows WHERE status <> ALL($1) ORDER BY created_at, id",
		pq.Array([]string{string(entities.EscrowStatusClosed), string(entities.EscrowStatusCancelled)}))
	if err != nil {
		return nil, fmt.Errorf("failed to list escrows: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
