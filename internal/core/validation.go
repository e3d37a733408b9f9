package core

import "fmt"

func ValidateBatchSize(size, limit int) error {
	if size == 0 {
		return ErrEmptyBatch
	}

	if size > limit {
		return fmt.Errorf("%w: %d cases, at most %d allowed", ErrBatchTooLarge, size, limit)
	}

	return nil
}
