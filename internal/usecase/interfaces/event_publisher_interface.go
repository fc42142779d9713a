package interfaces

import (
	"context"

	"rental_escrow/internal/domain/entities"
)

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/event_publisher_interface_mock.go -package=mock_interfaces

// IEventPublisher hands escrow events to the notification collaborator.
// Delivery is the collaborator's job; the service does not retry.
type IEventPublisher interface {
	Publish(ctx context.Context, events ...entities.Event) error
}
