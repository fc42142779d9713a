package interfaces

import (
	"context"
	"errors"

	"rental_escrow/internal/domain/entities"
)

//go:generate mockgen -source=escrow_repository_interface.go -destination=mocks/escrow_repository_interface_mock.go -package=mock_interfaces

var (
	// ErrVersionConflict is returned by Update when the stored escrow moved
	// on since it was loaded.
	ErrVersionConflict     = errors.New("escrow version conflict")
	ErrEscrowAlreadyExists = errors.New("escrow already exists")
)

// IEscrowRepository is the persistence boundary for the escrow aggregate.
//
// The whole aggregate (buckets and votes included) is saved atomically per
// escrow id:
//   - Create fails if the id already exists
//   - GetByID returns a zero Escrow (empty ID) when nothing is stored
//   - Update succeeds only if the stored version equals e.Version, and
//     returns the escrow with its version incremented
//   - ListActiveIDs returns the ids of non-terminal escrows, oldest first

type IEscrowRepository interface {
	Create(ctx context.Context, e entities.Escrow) (entities.Escrow, error)
	GetByID(ctx context.Context, id string) (entities.Escrow, error)
	Update(ctx context.Context, e entities.Escrow) (entities.Escrow, error)
	ListActiveIDs(ctx context.Context) ([]string, error)
}
