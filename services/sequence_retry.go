package services

import (
	"taskboard/logger"
	"taskboard/repositories"
)

// createWithSequenceRetry inserts a row and, on a primary-key collision
// caused by a stale serial sequence, resyncs the sequence and retries the
// insert exactly once. Seeded fixtures carry explicit ids, which leaves
// the sequence behind max(id) until the first conflicting insert.
func createWithSequenceRetry[T any](create func(*T) error, resync func() error, row *T) error {
	err := create(row)
	if err == nil || !repositories.IsUniqueViolation(err) {
		return err
	}

	logger.L().Warn("duplicate id on insert, resyncing sequence and retrying")
	if resyncErr := resync(); resyncErr != nil {
		return resyncErr
	}
	return create(row)
}
