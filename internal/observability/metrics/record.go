package metrics

import (
	"errors"
	"time"

	"noticeboard/internal/domain/entity"
)

// Classify maps an error to an outcome label.
func Classify(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, entity.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, entity.ErrInvalidInput), errors.Is(err, entity.ErrValidationFailed):
		return ResultInvalid
	default:
		return ResultError
	}
}

// RecordStoreOperation records the duration of one store call.
func RecordStoreOperation(operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(operation, Classify(err)).Observe(duration.Seconds())
}

// RecordMutation counts a create, update or delete by outcome.
func RecordMutation(operation string, err error) {
	MutationsTotal.WithLabelValues(operation, Classify(err)).Inc()
}
