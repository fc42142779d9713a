package interfaces

import (
	"context"
	"errors"

	"rental_escrow/internal/domain/entities"
)

//go:generate mockgen -source=identity_provider_interface.go -destination=mocks/identity_provider_interface_mock.go -package=mock_interfaces

var ErrPartyNotFound = errors.New("party not found")

// IIdentityProvider resolves party references owned by the identity
// collaborator. It returns ErrPartyNotFound for unknown references.
type IIdentityProvider interface {
	ResolveParty(ctx context.Context, ref string) (entities.Party, error)
}
