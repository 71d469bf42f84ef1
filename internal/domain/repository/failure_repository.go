package repository

import (
	"context"

	"touristar-consumer/internal/domain/entity"
)

// FailureRepository journals negatively acknowledged messages for
// operational follow-up
type FailureRepository interface {
	RecordFailure(ctx context.Context, failure *entity.ProcessingFailure) error
}
