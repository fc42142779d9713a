package messaging

import (
	"context"
	"encoding/json"
	"log"

	"rental_escrow/internal/domain/entities"
)

// LogPublisher writes events to the service log. Used when no broker is
// configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher { return &LogPublisher{} }

func (LogPublisher) Publish(_ context.Context, events ...entities.Event) error {
	for _, ev := range events {
		b, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		log.Printf("[escrow][notify] %s", b)
	}
	return nil
}
