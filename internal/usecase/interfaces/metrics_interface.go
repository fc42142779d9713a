package interfaces

import "rental_escrow/internal/domain/entities"

// IEscrowMetrics receives counters from the use cases.
type IEscrowMetrics interface {
	ObserveTick(evaluated, failed int)
	ObserveEvent(eventType entities.EventType)
	ObservePayoutError()
}
