package repository

import (
	"context"
	"errors"

	"touristar-consumer/internal/domain/entity"
)

// ErrNoResult is returned when the extractor cannot derive structured
// ticket data from the source text. Retrying with the same text will not
// produce a different answer.
var ErrNoResult = errors.New("extractor could not decode reservation text")

// ExtractorRepository converts raw travel-document text into candidate leg
// records. The result is positional: index 0 is the outbound leg (or nil),
// index 1 is the inbound leg or nil when no return flight exists.
type ExtractorRepository interface {
	TicketDataFromText(ctx context.Context, text string, destination *entity.Location) ([]*entity.TicketLegData, error)
}
