package entity

import "time"

// ProcessingFailure is a journal entry for a message that was negatively
// acknowledged. Failed messages are not requeued automatically; this record
// is what an operator or a retry producer works from.
type ProcessingFailure struct {
	ID          string    `bson:"_id,omitempty"`
	Queue       string    `bson:"queue"`
	DeliveryTag uint64    `bson:"deliveryTag"`
	Body        string    `bson:"body"`
	Error       string    `bson:"error"`
	OccurredAt  time.Time `bson:"occurredAt"`
}
